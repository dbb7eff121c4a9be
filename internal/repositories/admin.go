package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/mannsoni/portfolio/internal/models"
)

type AdminReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAdminReadRepository(db *sqlx.DB, txGetter TxGetter) *AdminReadRepository {
	return &AdminReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns the admin with the given email, or nil when none exists.
func (r *AdminReadRepository) GetByEmail(ctx context.Context, email string) (*models.AdminDB, error) {
	const query = `
		SELECT id, email, password_hash, created_at
		FROM admins
		WHERE email = $1
		LIMIT 1
	`

	var admin models.AdminDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &admin, query, email)

	// password hash is never logged
	logQuery(query, []any{email}, admin.AdminID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &admin, nil
}

type AdminWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAdminWriteRepository(db *sqlx.DB, txGetter TxGetter) *AdminWriteRepository {
	return &AdminWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts an admin; an existing email keeps its current password.
func (r *AdminWriteRepository) Save(ctx context.Context, email, passwordHash string) error {
	const query = `
		INSERT INTO admins (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (email) DO NOTHING
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, email, passwordHash)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{email}, rowsAffected, err)

	return err
}
