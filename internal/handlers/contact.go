package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mannsoni/portfolio/internal/logger"
	"github.com/mannsoni/portfolio/internal/models"
)

//go:generate mockgen -source=contact.go -destination=contact_mock.go -package=handlers

// ContactSubmitter accepts contact form submissions.
type ContactSubmitter interface {
	Submit(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error)
}

// MessageLister lists stored contact messages.
type MessageLister interface {
	List(ctx context.Context) ([]models.ContactMessage, error)
}

// NewContactHandler returns an HTTP handler for the public contact form.
// @Summary Send a message
// @Description Stores the message and notifies the owner by email when mail is configured
// @Tags public
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Message"
// @Success 200 {object} models.SuccessResponse "Message sent successfully"
// @Failure 400 {object} models.ErrorResponse "All fields are required"
// @Failure 500 {object} models.ErrorResponse "Error submitting message"
// @Router /contact [post]
func NewContactHandler(svc ContactSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, "All fields are required")
			return
		}

		if _, err := svc.Submit(r.Context(), req); err != nil {
			logger.Log.Errorw("contact form error", "error", err)
			writeError(w, http.StatusInternalServerError, "Error submitting message")
			return
		}

		writeJSON(w, http.StatusOK, models.SuccessResponse{Success: true, Message: "Message sent successfully"})
	}
}

// NewListMessagesHandler returns an HTTP handler listing contact messages, newest first.
// @Summary List contact messages
// @Tags admin
// @Produce json
// @Success 200 {array} models.ContactMessage
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Error fetching messages"
// @Router /admin/messages [get]
// @Security CookieAuth
func NewListMessagesHandler(svc MessageLister) http.HandlerFunc {
	return listHandler("messages", svc.List)
}
