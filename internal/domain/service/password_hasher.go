package service

// PasswordHasher defines password hashing and verification.
type PasswordHasher interface {
	// HashPassword hashes a plaintext password for storage.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a stored hash against a plaintext password.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength checks the password against the configured
	// strength policy before hashing.
	ValidatePasswordStrength(password string) error
}
