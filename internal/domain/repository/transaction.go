package repository

import "context"

// TransactionManager defines the interface for executing operations within a
// database transaction. The callback receives a RepositoryFactory whose
// repositories share the transaction; any error returned rolls it back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(ctx context.Context, factory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the active transaction.
type RepositoryFactory interface {
	UserRepository() UserRepository
	CredentialRepository() CredentialRepository
	RefreshTokenRepository() RefreshTokenRepository
	PatientRepository() PatientRepository
}
