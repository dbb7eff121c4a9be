package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mannsoni/portfolio/internal/models"
)

const hackathonColumns = `id, name, description, role, year, created_at`

type HackathonRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewHackathonRepository(db *sqlx.DB, txGetter TxGetter) *HackathonRepository {
	return &HackathonRepository{db: db, txGetter: txGetter}
}

// List returns all hackathons, most recent year first.
func (r *HackathonRepository) List(ctx context.Context) ([]models.Hackathon, error) {
	const query = `SELECT ` + hackathonColumns + ` FROM hackathons ORDER BY year DESC, created_at ASC`

	hackathons := []models.Hackathon{}
	err := sqlx.SelectContext(ctx, r.db, &hackathons, query)
	logQuery(query, nil, len(hackathons), err)

	return hackathons, err
}

func (r *HackathonRepository) Create(ctx context.Context, c models.HackathonCreate) (*models.Hackathon, error) {
	const query = `
		INSERT INTO hackathons (name, description, role, year)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + hackathonColumns
	args := []any{c.Name, c.Description, c.Role, c.Year}

	var hackathon models.Hackathon
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &hackathon, query, args...)
	logQuery(query, args, hackathon.ID, err)

	if err != nil {
		return nil, err
	}
	return &hackathon, nil
}

func (r *HackathonRepository) Update(ctx context.Context, u models.HackathonUpdate) (*models.Hackathon, error) {
	const query = `
		UPDATE hackathons SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			role = COALESCE($4, role),
			year = COALESCE($5, year)
		WHERE id = $1
		RETURNING ` + hackathonColumns
	args := []any{u.ID, u.Name, u.Description, u.Role, u.Year}

	var hackathon models.Hackathon
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &hackathon, query, args...)
	logQuery(query, args, hackathon.ID, err)

	if err != nil {
		return nil, err
	}
	return &hackathon, nil
}

func (r *HackathonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, executor(ctx, r.db, r.txGetter), "hackathons", id)
}

func (r *HackathonRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, executor(ctx, r.db, r.txGetter), "hackathons")
}
