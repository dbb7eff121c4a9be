package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Experience represents a row of the experiences table
// swagger:model Experience
type Experience struct {
	ID          uuid.UUID `json:"id" db:"id" swaggertype:"string" format:"uuid"`
	Role        string    `json:"role" db:"role"`
	Company     string    `json:"company" db:"company"`
	Duration    string    `json:"duration" db:"duration"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ExperienceCreate is the JSON body for creating an experience entry
// swagger:model ExperienceCreate
type ExperienceCreate struct {
	// required: true
	Role string `json:"role"`
	// required: true
	Company string `json:"company"`
	// required: true
	Duration string `json:"duration"`
	// required: true
	Description string `json:"description"`
}

// Validate checks that required fields are present.
func (c ExperienceCreate) Validate() error {
	switch {
	case strings.TrimSpace(c.Role) == "":
		return requiredError("role")
	case strings.TrimSpace(c.Company) == "":
		return requiredError("company")
	case strings.TrimSpace(c.Duration) == "":
		return requiredError("duration")
	case strings.TrimSpace(c.Description) == "":
		return requiredError("description")
	}
	return nil
}

// ExperienceUpdate is the JSON body for updating an experience entry. Nil fields are left unchanged.
// swagger:model ExperienceUpdate
type ExperienceUpdate struct {
	// required: true
	ID          uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Role        *string   `json:"role,omitempty"`
	Company     *string   `json:"company,omitempty"`
	Duration    *string   `json:"duration,omitempty"`
	Description *string   `json:"description,omitempty"`
}

// Validate checks that the target row is identified.
func (u ExperienceUpdate) Validate() error {
	if u.ID == uuid.Nil {
		return requiredError("id")
	}
	return nil
}
