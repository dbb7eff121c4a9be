package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mannsoni/portfolio/internal/models"
)

const experienceColumns = `id, role, company, duration, description, created_at`

type ExperienceRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewExperienceRepository(db *sqlx.DB, txGetter TxGetter) *ExperienceRepository {
	return &ExperienceRepository{db: db, txGetter: txGetter}
}

// List returns all experience entries, newest first.
func (r *ExperienceRepository) List(ctx context.Context) ([]models.Experience, error) {
	const query = `SELECT ` + experienceColumns + ` FROM experiences ORDER BY created_at DESC`

	experiences := []models.Experience{}
	err := sqlx.SelectContext(ctx, r.db, &experiences, query)
	logQuery(query, nil, len(experiences), err)

	return experiences, err
}

func (r *ExperienceRepository) Create(ctx context.Context, c models.ExperienceCreate) (*models.Experience, error) {
	const query = `
		INSERT INTO experiences (role, company, duration, description)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + experienceColumns
	args := []any{c.Role, c.Company, c.Duration, c.Description}

	var experience models.Experience
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &experience, query, args...)
	logQuery(query, args, experience.ID, err)

	if err != nil {
		return nil, err
	}
	return &experience, nil
}

func (r *ExperienceRepository) Update(ctx context.Context, u models.ExperienceUpdate) (*models.Experience, error) {
	const query = `
		UPDATE experiences SET
			role = COALESCE($2, role),
			company = COALESCE($3, company),
			duration = COALESCE($4, duration),
			description = COALESCE($5, description)
		WHERE id = $1
		RETURNING ` + experienceColumns
	args := []any{u.ID, u.Role, u.Company, u.Duration, u.Description}

	var experience models.Experience
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &experience, query, args...)
	logQuery(query, args, experience.ID, err)

	if err != nil {
		return nil, err
	}
	return &experience, nil
}

func (r *ExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, executor(ctx, r.db, r.txGetter), "experiences", id)
}

func (r *ExperienceRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, executor(ctx, r.db, r.txGetter), "experiences")
}
