package model

import (
	"time"

	"github.com/google/uuid"

	"clinic/internal/domain/entity"
)

// Location is the persistence model for care locations.
type Location struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:255;not null"`
	AddressLine *string   `gorm:"size:255"`
	City        *string   `gorm:"size:100"`
	State       *string   `gorm:"size:100"`
	ZipCode     *string   `gorm:"size:20"`
	Country     *string   `gorm:"size:100"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for the Location model
func (Location) TableName() string {
	return "locations"
}

// ToEntity converts the persistence model to a domain entity.
func (m *Location) ToEntity() *entity.Location {
	return &entity.Location{
		ID:          m.ID,
		Name:        m.Name,
		AddressLine: m.AddressLine,
		City:        m.City,
		State:       m.State,
		ZipCode:     m.ZipCode,
		Country:     m.Country,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// LocationFromEntity converts a domain entity to the persistence model.
func LocationFromEntity(e *entity.Location) *Location {
	return &Location{
		ID:          e.ID,
		Name:        e.Name,
		AddressLine: e.AddressLine,
		City:        e.City,
		State:       e.State,
		ZipCode:     e.ZipCode,
		Country:     e.Country,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
