// Package model defines the gorm persistence models and their mappings to
// and from domain entities.
package model

import (
	"time"

	"github.com/google/uuid"

	"clinic/internal/domain/entity"
)

// User is the persistence model for user accounts.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"size:150;uniqueIndex;not null"`
	Email     string    `gorm:"size:254;uniqueIndex;not null"`
	FirstName string    `gorm:"size:150;not null"`
	LastName  string    `gorm:"size:150;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	IsStaff   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// ToEntity converts the persistence model to a domain entity.
func (m *User) ToEntity() *entity.User {
	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		IsActive:  m.IsActive,
		IsStaff:   m.IsStaff,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// UserFromEntity converts a domain entity to the persistence model.
func UserFromEntity(e *entity.User) *User {
	return &User{
		ID:        e.ID,
		Username:  e.Username,
		Email:     e.Email,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		IsActive:  e.IsActive,
		IsStaff:   e.IsStaff,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
