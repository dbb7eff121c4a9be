package services

import (
	"context"

	"github.com/mannsoni/portfolio/internal/logger"
	"github.com/mannsoni/portfolio/internal/models"
)

//go:generate mockgen -source=contact.go -destination=contact_mock.go -package=services

// ContactStore persists contact messages.
type ContactStore interface {
	Save(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error)
	List(ctx context.Context) ([]models.ContactMessage, error)
}

// Mailer relays a contact message by email.
type Mailer interface {
	SendContactNotification(ctx context.Context, msg models.ContactMessage) error
}

// ContactPublisher announces a contact message to other systems.
type ContactPublisher interface {
	PublishContactMessage(ctx context.Context, msg models.ContactMessage) error
}

// ContactService handles contact form submissions.
type ContactService struct {
	store     ContactStore
	mailer    Mailer
	publisher ContactPublisher
}

// NewContactService creates a new ContactService. mailer and publisher are optional.
func NewContactService(store ContactStore, mailer Mailer, publisher ContactPublisher) *ContactService {
	return &ContactService{
		store:     store,
		mailer:    mailer,
		publisher: publisher,
	}
}

// Submit persists the message and then relays it.
// The row is stored before any notification is attempted, so a mail failure
// still leaves the message in storage. Publishing is best effort.
func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error) {
	msg, err := s.store.Save(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to save contact message", "error", err)
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendContactNotification(ctx, *msg); err != nil {
			logger.Log.Errorw("failed to send contact notification", "message_id", msg.ID, "error", err)
			return nil, err
		}
	} else {
		logger.Log.Debugw("mailer not configured, skipping notification", "message_id", msg.ID)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishContactMessage(ctx, *msg); err != nil {
			logger.Log.Errorw("failed to publish contact message", "message_id", msg.ID, "error", err)
		}
	}

	return msg, nil
}

// List returns all stored messages, newest first.
func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	messages, err := s.store.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list contact messages", "error", err)
		return nil, err
	}
	return messages, nil
}
