package postgres

import (
	"context"

	"gorm.io/gorm"

	"clinic/internal/domain/repository"
	"clinic/internal/errors"
)

// TransactionManager implements repository.TransactionManager with gorm
// transactions.
type TransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a gorm-backed transaction manager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &TransactionManager{db: db}
}

// Execute runs fn inside a transaction. The factory passed to fn hands out
// repositories bound to that transaction. Any error or panic rolls back.
func (m *TransactionManager) Execute(ctx context.Context, fn func(ctx context.Context, factory repository.RepositoryFactory) error) error {
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &txRepositoryFactory{tx: tx})
	})
	if err != nil {
		return errors.Wrap(err, "transaction failed")
	}
	return nil
}

// txRepositoryFactory creates repositories sharing a single transaction.
type txRepositoryFactory struct {
	tx *gorm.DB
}

func (f *txRepositoryFactory) UserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *txRepositoryFactory) CredentialRepository() repository.CredentialRepository {
	return NewCredentialRepository(f.tx)
}

func (f *txRepositoryFactory) RefreshTokenRepository() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(f.tx)
}

func (f *txRepositoryFactory) PatientRepository() repository.PatientRepository {
	return NewPatientRepository(f.tx)
}
