package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Hackathon represents a row of the hackathons table
// swagger:model Hackathon
type Hackathon struct {
	ID          uuid.UUID `json:"id" db:"id" swaggertype:"string" format:"uuid"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Role        string    `json:"role" db:"role"`
	Year        int       `json:"year" db:"year"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// HackathonCreate is the JSON body for creating a hackathon entry
// swagger:model HackathonCreate
type HackathonCreate struct {
	// required: true
	Name string `json:"name"`
	// required: true
	Description string `json:"description"`
	// required: true
	Role string `json:"role"`
	// required: true
	// example: 2025
	Year int `json:"year"`
}

// Validate checks that required fields are present.
func (c HackathonCreate) Validate() error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return requiredError("name")
	case strings.TrimSpace(c.Description) == "":
		return requiredError("description")
	case strings.TrimSpace(c.Role) == "":
		return requiredError("role")
	case c.Year == 0:
		return requiredError("year")
	}
	return nil
}

// HackathonUpdate is the JSON body for updating a hackathon entry. Nil fields are left unchanged.
// swagger:model HackathonUpdate
type HackathonUpdate struct {
	// required: true
	ID          uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Role        *string   `json:"role,omitempty"`
	Year        *int      `json:"year,omitempty"`
}

// Validate checks that the target row is identified.
func (u HackathonUpdate) Validate() error {
	if u.ID == uuid.Nil {
		return requiredError("id")
	}
	return nil
}
