package models

// ErrorResponse represents an error returned by any endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// SuccessResponse represents a successful operation without a payload
// swagger:model SuccessResponse
type SuccessResponse struct {
	// example: true
	Success bool `json:"success"`
	// example: Logged in successfully
	Message string `json:"message,omitempty"`
}
