package entity

import (
	"time"

	"github.com/google/uuid"
)

// BPM bounds accepted for a heart rate reading.
const (
	MinBPM = 30
	MaxBPM = 250
)

// HeartRate is a single beats-per-minute reading for a patient. The reading
// is attributed to the user who recorded it; when that user is deleted the
// attribution is nulled while the reading itself is kept.
type HeartRate struct {
	ID           uuid.UUID
	PatientID    uuid.UUID // The patient the reading belongs to. Deleting the patient deletes the reading.
	Patient      *Patient  // Loaded alongside the reading when present.
	RecordedByID *uuid.UUID
	RecordedBy   *User
	BPM          int
	RecordedAt   time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
