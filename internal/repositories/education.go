package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mannsoni/portfolio/internal/models"
)

const educationColumns = `id, degree, institution, period, gpa, max_gpa, status, created_at`

// EducationRepository stores education entries.
type EducationRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewEducationRepository(db *sqlx.DB, txGetter TxGetter) *EducationRepository {
	return &EducationRepository{db: db, txGetter: txGetter}
}

// List returns all education entries, oldest first.
func (r *EducationRepository) List(ctx context.Context) ([]models.Education, error) {
	const query = `SELECT ` + educationColumns + ` FROM education ORDER BY created_at ASC`

	education := []models.Education{}
	err := sqlx.SelectContext(ctx, r.db, &education, query)
	logQuery(query, nil, len(education), err)

	return education, err
}

func (r *EducationRepository) Create(ctx context.Context, c models.EducationCreate) (*models.Education, error) {
	const query = `
		INSERT INTO education (degree, institution, period, gpa, max_gpa, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + educationColumns
	args := []any{c.Degree, c.Institution, c.Period, c.GPA, c.MaxGPA, c.Status}

	var education models.Education
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &education, query, args...)
	logQuery(query, args, education.ID, err)

	if err != nil {
		return nil, err
	}
	return &education, nil
}

func (r *EducationRepository) Update(ctx context.Context, u models.EducationUpdate) (*models.Education, error) {
	const query = `
		UPDATE education SET
			degree = COALESCE($2, degree),
			institution = COALESCE($3, institution),
			period = COALESCE($4, period),
			gpa = COALESCE($5, gpa),
			max_gpa = COALESCE($6, max_gpa),
			status = COALESCE($7, status)
		WHERE id = $1
		RETURNING ` + educationColumns
	args := []any{u.ID, u.Degree, u.Institution, u.Period, u.GPA, u.MaxGPA, u.Status}

	var education models.Education
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &education, query, args...)
	logQuery(query, args, education.ID, err)

	if err != nil {
		return nil, err
	}
	return &education, nil
}

func (r *EducationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, executor(ctx, r.db, r.txGetter), "education", id)
}

func (r *EducationRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, executor(ctx, r.db, r.txGetter), "education")
}
