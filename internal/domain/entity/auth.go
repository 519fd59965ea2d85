// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential stores the bcrypt-hashed password for a user. Keeping it apart
// from the User entity means the raw hash never travels with profile data.
type Credential struct {
	ID           uuid.UUID // The unique ID for this credential record.
	UserID       uuid.UUID // Links the credential to the User it belongs to.
	PasswordHash string    // The bcrypt hash of the password. The raw password is never stored.
	CreatedAt    time.Time
}

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new access token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // A SHA-256 hash of the raw refresh token for secure comparison in the database.
	ExpiresAt time.Time // The exact time when this refresh token becomes invalid.
	CreatedAt time.Time // When this session was created (i.e., when the user logged in).
}
