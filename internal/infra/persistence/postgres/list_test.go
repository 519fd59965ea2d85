package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveOrdering(t *testing.T) {
	tests := []struct {
		name     string
		ordering string
		allowed  map[string]string
		def      string
		want     string
	}{
		{
			name:     "allowed field ascending",
			ordering: "bpm",
			allowed:  heartRateOrderColumns,
			def:      "heart_rates.recorded_at DESC",
			want:     "heart_rates.bpm ASC",
		},
		{
			name:     "leading dash requests descending",
			ordering: "-recorded_at",
			allowed:  heartRateOrderColumns,
			def:      "heart_rates.recorded_at DESC",
			want:     "heart_rates.recorded_at DESC",
		},
		{
			name:     "unknown field falls back to the default",
			ordering: "date_of_birth",
			allowed:  patientOrderColumns,
			def:      "patients.created_at ASC, patients.id ASC",
			want:     "patients.created_at ASC, patients.id ASC",
		},
		{
			name:     "empty ordering falls back to the default",
			ordering: "",
			allowed:  patientOrderColumns,
			def:      "patients.created_at ASC, patients.id ASC",
			want:     "patients.created_at ASC, patients.id ASC",
		},
		{
			name:     "bare dash falls back to the default",
			ordering: "-",
			allowed:  locationOrderColumns,
			def:      "created_at ASC",
			want:     "created_at ASC",
		},
		{
			name:     "surrounding whitespace is trimmed",
			ordering: " name ",
			allowed:  locationOrderColumns,
			def:      "created_at ASC",
			want:     "name ASC",
		},
		{
			name:     "qualified column from the allow-list",
			ordering: "first_name",
			allowed:  patientOrderColumns,
			def:      "patients.created_at ASC, patients.id ASC",
			want:     "patients.first_name ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveOrdering(tt.ordering, tt.allowed, tt.def))
		})
	}
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%smith%", likePattern("smith"))
	assert.Equal(t, "%%", likePattern(""))
}
