package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Project represents a row of the projects table
// swagger:model Project
type Project struct {
	ID                   uuid.UUID      `json:"id" db:"id" swaggertype:"string" format:"uuid"`
	Title                string         `json:"title" db:"title"`
	Description          string         `json:"description" db:"description"`
	TechStack            pq.StringArray `json:"tech_stack" db:"tech_stack" swaggertype:"array,string"`
	ArchitectureOverview *string        `json:"architecture_overview,omitempty" db:"architecture_overview"` // e.g. "Client -> API -> DB"
	GithubLink           *string        `json:"github_link,omitempty" db:"github_link"`
	LiveLink             *string        `json:"live_link,omitempty" db:"live_link"`
	Featured             bool           `json:"featured" db:"featured"`
	CreatedAt            time.Time      `json:"created_at" db:"created_at"`
}

// ProjectCreate is the JSON body for creating a project
// swagger:model ProjectCreate
type ProjectCreate struct {
	// required: true
	Title string `json:"title"`
	// required: true
	Description          string   `json:"description"`
	TechStack            []string `json:"tech_stack"`
	ArchitectureOverview *string  `json:"architecture_overview,omitempty"`
	GithubLink           *string  `json:"github_link,omitempty"`
	LiveLink             *string  `json:"live_link,omitempty"`
	Featured             bool     `json:"featured"`
}

// Validate checks that required fields are present.
func (c ProjectCreate) Validate() error {
	switch {
	case strings.TrimSpace(c.Title) == "":
		return requiredError("title")
	case strings.TrimSpace(c.Description) == "":
		return requiredError("description")
	}
	return nil
}

// ProjectUpdate is the JSON body for updating a project. Nil fields are left unchanged.
// swagger:model ProjectUpdate
type ProjectUpdate struct {
	// required: true
	ID                   uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Title                *string   `json:"title,omitempty"`
	Description          *string   `json:"description,omitempty"`
	TechStack            *[]string `json:"tech_stack,omitempty"`
	ArchitectureOverview *string   `json:"architecture_overview,omitempty"`
	GithubLink           *string   `json:"github_link,omitempty"`
	LiveLink             *string   `json:"live_link,omitempty"`
	Featured             *bool     `json:"featured,omitempty"`
}

// Validate checks that the target row is identified.
func (u ProjectUpdate) Validate() error {
	if u.ID == uuid.Nil {
		return requiredError("id")
	}
	return nil
}
