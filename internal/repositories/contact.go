package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/mannsoni/portfolio/internal/models"
)

const contactColumns = `id, name, email, message, created_at`

// ContactRepository stores contact form submissions.
type ContactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Save(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error) {
	const query = `
		INSERT INTO contact_messages (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING ` + contactColumns
	args := []any{req.Name, req.Email, req.Message}

	var msg models.ContactMessage
	err := r.db.GetContext(ctx, &msg, query, args...)
	logQuery(query, []any{req.Name, req.Email}, msg.ID, err)

	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// List returns all messages, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	const query = `SELECT ` + contactColumns + ` FROM contact_messages ORDER BY created_at DESC`

	messages := []models.ContactMessage{}
	err := r.db.SelectContext(ctx, &messages, query)
	logQuery(query, nil, len(messages), err)

	return messages, err
}
