package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Skill represents a row of the skills table
// swagger:model Skill
type Skill struct {
	ID          uuid.UUID `json:"id" db:"id" swaggertype:"string" format:"uuid"`
	Category    string    `json:"category" db:"category"`       // Grouping shown on the public page, e.g. "Programming"
	Name        string    `json:"name" db:"name"`               // Skill name
	Proficiency int       `json:"proficiency" db:"proficiency"` // Percentage 0..100
	Icon        *string   `json:"icon,omitempty" db:"icon"`     // Optional icon identifier
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// SkillCreate is the JSON body for creating a skill
// swagger:model SkillCreate
type SkillCreate struct {
	// required: true
	// example: Programming
	Category string `json:"category"`
	// required: true
	// example: Go
	Name string `json:"name"`
	// required: true
	// example: 90
	Proficiency int     `json:"proficiency"`
	Icon        *string `json:"icon,omitempty"`
}

// Validate checks that required fields are present.
func (c SkillCreate) Validate() error {
	switch {
	case strings.TrimSpace(c.Category) == "":
		return requiredError("category")
	case strings.TrimSpace(c.Name) == "":
		return requiredError("name")
	}
	return nil
}

// SkillUpdate is the JSON body for updating a skill. Nil fields are left unchanged.
// swagger:model SkillUpdate
type SkillUpdate struct {
	// required: true
	ID          uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Category    *string   `json:"category,omitempty"`
	Name        *string   `json:"name,omitempty"`
	Proficiency *int      `json:"proficiency,omitempty"`
	Icon        *string   `json:"icon,omitempty"`
}

// Validate checks that the target row is identified.
func (u SkillUpdate) Validate() error {
	if u.ID == uuid.Nil {
		return requiredError("id")
	}
	return nil
}
