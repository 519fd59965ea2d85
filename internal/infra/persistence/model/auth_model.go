package model

import (
	"time"

	"github.com/google/uuid"

	"clinic/internal/domain/entity"
)

// Credential is the persistence model for password credentials. Password
// material lives here, apart from the user profile row.
type Credential struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	User         User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for the Credential model
func (Credential) TableName() string {
	return "credentials"
}

// ToEntity converts the persistence model to a domain entity.
func (m *Credential) ToEntity() *entity.Credential {
	return &entity.Credential{
		ID:           m.ID,
		UserID:       m.UserID,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

// CredentialFromEntity converts a domain entity to the persistence model.
func CredentialFromEntity(e *entity.Credential) *Credential {
	return &Credential{
		ID:           e.ID,
		UserID:       e.UserID,
		PasswordHash: e.PasswordHash,
		CreatedAt:    e.CreatedAt,
	}
}

// RefreshToken is the persistence model for refresh tokens. Only the SHA-256
// hash of the token is stored.
type RefreshToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	TokenHash string    `gorm:"size:64;uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for the RefreshToken model
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

// ToEntity converts the persistence model to a domain entity.
func (m *RefreshToken) ToEntity() *entity.RefreshToken {
	return &entity.RefreshToken{
		ID:        m.ID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

// RefreshTokenFromEntity converts a domain entity to the persistence model.
func RefreshTokenFromEntity(e *entity.RefreshToken) *RefreshToken {
	return &RefreshToken{
		ID:        e.ID,
		UserID:    e.UserID,
		TokenHash: e.TokenHash,
		ExpiresAt: e.ExpiresAt,
		CreatedAt: e.CreatedAt,
	}
}
