package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContactMessage represents a message submitted through the contact form
// swagger:model ContactMessage
type ContactMessage struct {
	ID        uuid.UUID `json:"id" db:"id" swaggertype:"string" format:"uuid"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ContactRequest represents the JSON body of the contact form
// swagger:model ContactRequest
type ContactRequest struct {
	// required: true
	// example: Jane Doe
	Name string `json:"name"`
	// required: true
	// example: jane@example.com
	Email string `json:"email"`
	// required: true
	// example: Hello!
	Message string `json:"message"`
}

// Validate checks that all fields are present. The values are not validated further.
func (c ContactRequest) Validate() error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return requiredError("name")
	case strings.TrimSpace(c.Email) == "":
		return requiredError("email")
	case strings.TrimSpace(c.Message) == "":
		return requiredError("message")
	}
	return nil
}
