package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender is the patient's recorded gender.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// String returns the string representation of the gender.
func (g Gender) String() string {
	return string(g)
}

// IsValid checks if the Gender is one of the accepted values.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// Patient is a person under the care of a User. Every patient belongs to
// exactly one owning user; the combination of owner, first name, last name
// and date of birth is unique. The optional Place reference survives the
// location being deleted (it is nulled, not cascaded).
type Patient struct {
	ID            uuid.UUID
	UserID        uuid.UUID // The owning user. Deleting the user deletes the patient.
	FirstName     string
	LastName      string
	DateOfBirth   time.Time // Date only; the time component is always midnight UTC.
	Gender        Gender
	PlaceID       *uuid.UUID // Optional location reference.
	Place         *Location  // Loaded alongside the patient when present.
	Email         *string
	ContactNumber *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FullName returns the patient's display name.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
