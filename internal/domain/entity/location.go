package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location is a physical address record. Only the name is required; a
// location may be referenced by any number of patients.
type Location struct {
	ID          uuid.UUID
	Name        string
	AddressLine *string
	City        *string
	State       *string
	ZipCode     *string
	Country     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
