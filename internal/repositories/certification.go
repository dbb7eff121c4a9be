package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mannsoni/portfolio/internal/models"
)

const certificationColumns = `id, name, issuer, year, created_at`

type CertificationRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCertificationRepository(db *sqlx.DB, txGetter TxGetter) *CertificationRepository {
	return &CertificationRepository{db: db, txGetter: txGetter}
}

// List returns all certifications, most recent year first.
func (r *CertificationRepository) List(ctx context.Context) ([]models.Certification, error) {
	const query = `SELECT ` + certificationColumns + ` FROM certifications ORDER BY year DESC, created_at ASC`

	certifications := []models.Certification{}
	err := sqlx.SelectContext(ctx, r.db, &certifications, query)
	logQuery(query, nil, len(certifications), err)

	return certifications, err
}

func (r *CertificationRepository) Create(ctx context.Context, c models.CertificationCreate) (*models.Certification, error) {
	const query = `
		INSERT INTO certifications (name, issuer, year)
		VALUES ($1, $2, $3)
		RETURNING ` + certificationColumns
	args := []any{c.Name, c.Issuer, c.Year}

	var certification models.Certification
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &certification, query, args...)
	logQuery(query, args, certification.ID, err)

	if err != nil {
		return nil, err
	}
	return &certification, nil
}

func (r *CertificationRepository) Update(ctx context.Context, u models.CertificationUpdate) (*models.Certification, error) {
	const query = `
		UPDATE certifications SET
			name = COALESCE($2, name),
			issuer = COALESCE($3, issuer),
			year = COALESCE($4, year)
		WHERE id = $1
		RETURNING ` + certificationColumns
	args := []any{u.ID, u.Name, u.Issuer, u.Year}

	var certification models.Certification
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &certification, query, args...)
	logQuery(query, args, certification.ID, err)

	if err != nil {
		return nil, err
	}
	return &certification, nil
}

func (r *CertificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, executor(ctx, r.db, r.txGetter), "certifications", id)
}

func (r *CertificationRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, executor(ctx, r.db, r.txGetter), "certifications")
}
