package model

import (
	"time"

	"github.com/google/uuid"

	"clinic/internal/domain/entity"
)

// Patient is the persistence model for patient records. The composite unique
// index enforces one record per (caregiver, first name, last name, birth
// date). Deleting the owning user removes the patient; deleting the place
// only clears the reference.
type Patient struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_patients_identity;index"`
	User          User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	FirstName     string     `gorm:"size:150;not null;uniqueIndex:idx_patients_identity"`
	LastName      string     `gorm:"size:150;not null;uniqueIndex:idx_patients_identity"`
	DateOfBirth   time.Time  `gorm:"type:date;not null;uniqueIndex:idx_patients_identity"`
	Gender        string     `gorm:"size:10;not null"`
	PlaceID       *uuid.UUID `gorm:"type:uuid;index"`
	Place         *Location  `gorm:"foreignKey:PlaceID;constraint:OnDelete:SET NULL"`
	Email         *string    `gorm:"size:254"`
	ContactNumber *string    `gorm:"size:15"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

// TableName specifies the table name for the Patient model
func (Patient) TableName() string {
	return "patients"
}

// ToEntity converts the persistence model to a domain entity.
func (m *Patient) ToEntity() *entity.Patient {
	p := &entity.Patient{
		ID:            m.ID,
		UserID:        m.UserID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		DateOfBirth:   m.DateOfBirth,
		Gender:        entity.Gender(m.Gender),
		PlaceID:       m.PlaceID,
		Email:         m.Email,
		ContactNumber: m.ContactNumber,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Place != nil {
		p.Place = m.Place.ToEntity()
	}
	return p
}

// PatientFromEntity converts a domain entity to the persistence model.
func PatientFromEntity(e *entity.Patient) *Patient {
	return &Patient{
		ID:            e.ID,
		UserID:        e.UserID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		DateOfBirth:   e.DateOfBirth,
		Gender:        e.Gender.String(),
		PlaceID:       e.PlaceID,
		Email:         e.Email,
		ContactNumber: e.ContactNumber,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
