package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Certification represents a row of the certifications table
// swagger:model Certification
type Certification struct {
	ID        uuid.UUID `json:"id" db:"id" swaggertype:"string" format:"uuid"`
	Name      string    `json:"name" db:"name"`
	Issuer    string    `json:"issuer" db:"issuer"`
	Year      int       `json:"year" db:"year"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CertificationCreate is the JSON body for creating a certification
// swagger:model CertificationCreate
type CertificationCreate struct {
	// required: true
	Name string `json:"name"`
	// required: true
	Issuer string `json:"issuer"`
	// required: true
	// example: 2024
	Year int `json:"year"`
}

// Validate checks that required fields are present.
func (c CertificationCreate) Validate() error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return requiredError("name")
	case strings.TrimSpace(c.Issuer) == "":
		return requiredError("issuer")
	case c.Year == 0:
		return requiredError("year")
	}
	return nil
}

// CertificationUpdate is the JSON body for updating a certification. Nil fields are left unchanged.
// swagger:model CertificationUpdate
type CertificationUpdate struct {
	// required: true
	ID     uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Name   *string   `json:"name,omitempty"`
	Issuer *string   `json:"issuer,omitempty"`
	Year   *int      `json:"year,omitempty"`
}

// Validate checks that the target row is identified.
func (u CertificationUpdate) Validate() error {
	if u.ID == uuid.Nil {
		return requiredError("id")
	}
	return nil
}
