package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAdminReadRepository_GetByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAdminReadRepository(db, nil)
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta("FROM admins")).
			WithArgs("admin@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
				AddRow(id.String(), "admin@example.com", "$2a$10$hash", time.Now()))

		admin, err := repo.GetByEmail(context.Background(), "admin@example.com")
		assert.NoError(t, err)
		assert.Equal(t, id, admin.AdminID)
		assert.Equal(t, "$2a$10$hash", admin.PasswordHash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAdminReadRepository(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("FROM admins")).
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		admin, err := repo.GetByEmail(context.Background(), "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, admin)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAdminReadRepository(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("FROM admins")).WillReturnError(sql.ErrConnDone)

		admin, err := repo.GetByEmail(context.Background(), "admin@example.com")
		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.Nil(t, admin)
	})
}

func TestAdminWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAdminWriteRepository(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO admins")).
		WithArgs("admin@example.com", "hash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(context.Background(), "admin@example.com", "hash"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
