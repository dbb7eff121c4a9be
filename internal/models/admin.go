package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminDB represents an admin account in the database
type AdminDB struct {
	AdminID      uuid.UUID `json:"id" db:"id"`                 // Primary key
	Email        string    `json:"email" db:"email"`           // Unique login email
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// LoginRequest represents the JSON body for admin login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: admin@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: admin
	Password string `json:"password"`
}

// SessionResponse describes the authenticated admin
// swagger:model SessionResponse
type SessionResponse struct {
	AdminID uuid.UUID `json:"admin_id" swaggertype:"string" format:"uuid"`
	Email   string    `json:"email"`
}
