package model

import (
	"time"

	"github.com/google/uuid"

	"clinic/internal/domain/entity"
)

// HeartRate is the persistence model for heart rate readings. Deleting the
// patient removes its readings; deleting the recording user only clears the
// recorded_by reference.
type HeartRate struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PatientID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	Patient      *Patient   `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
	RecordedByID *uuid.UUID `gorm:"type:uuid;index"`
	RecordedBy   *User      `gorm:"foreignKey:RecordedByID;constraint:OnDelete:SET NULL"`
	BPM          int        `gorm:"not null"`
	RecordedAt   time.Time  `gorm:"index;not null"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
}

// TableName specifies the table name for the HeartRate model
func (HeartRate) TableName() string {
	return "heart_rates"
}

// ToEntity converts the persistence model to a domain entity.
func (m *HeartRate) ToEntity() *entity.HeartRate {
	hr := &entity.HeartRate{
		ID:           m.ID,
		PatientID:    m.PatientID,
		RecordedByID: m.RecordedByID,
		BPM:          m.BPM,
		RecordedAt:   m.RecordedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Patient != nil {
		hr.Patient = m.Patient.ToEntity()
	}
	if m.RecordedBy != nil {
		hr.RecordedBy = m.RecordedBy.ToEntity()
	}
	return hr
}

// HeartRateFromEntity converts a domain entity to the persistence model.
func HeartRateFromEntity(e *entity.HeartRate) *HeartRate {
	return &HeartRate{
		ID:           e.ID,
		PatientID:    e.PatientID,
		RecordedByID: e.RecordedByID,
		BPM:          e.BPM,
		RecordedAt:   e.RecordedAt,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
