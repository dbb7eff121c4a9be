package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Education represents a row of the education table
// swagger:model Education
type Education struct {
	ID          uuid.UUID `json:"id" db:"id" swaggertype:"string" format:"uuid"`
	Degree      string    `json:"degree" db:"degree"`
	Institution string    `json:"institution" db:"institution"`
	Period      string    `json:"period" db:"period"` // Free text, e.g. "August 2023 – August 2027"
	GPA         *float64  `json:"gpa,omitempty" db:"gpa"`
	MaxGPA      *float64  `json:"max_gpa,omitempty" db:"max_gpa"`
	Status      *string   `json:"status,omitempty" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// EducationCreate is the JSON body for creating an education entry
// swagger:model EducationCreate
type EducationCreate struct {
	// required: true
	Degree string `json:"degree"`
	// required: true
	Institution string `json:"institution"`
	// required: true
	Period string   `json:"period"`
	GPA    *float64 `json:"gpa,omitempty"`
	MaxGPA *float64 `json:"max_gpa,omitempty"`
	Status *string  `json:"status,omitempty"`
}

// Validate checks that required fields are present.
func (c EducationCreate) Validate() error {
	switch {
	case strings.TrimSpace(c.Degree) == "":
		return requiredError("degree")
	case strings.TrimSpace(c.Institution) == "":
		return requiredError("institution")
	case strings.TrimSpace(c.Period) == "":
		return requiredError("period")
	}
	return nil
}

// EducationUpdate is the JSON body for updating an education entry. Nil fields are left unchanged.
// swagger:model EducationUpdate
type EducationUpdate struct {
	// required: true
	ID          uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Degree      *string   `json:"degree,omitempty"`
	Institution *string   `json:"institution,omitempty"`
	Period      *string   `json:"period,omitempty"`
	GPA         *float64  `json:"gpa,omitempty"`
	MaxGPA      *float64  `json:"max_gpa,omitempty"`
	Status      *string   `json:"status,omitempty"`
}

// Validate checks that the target row is identified.
func (u EducationUpdate) Validate() error {
	if u.ID == uuid.Nil {
		return requiredError("id")
	}
	return nil
}
