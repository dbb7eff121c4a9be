package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mannsoni/portfolio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func strPtr(s string) *string { return &s }

func TestSkillRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSkillRepository(db, nil)

	id1, id2 := uuid.New(), uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "category", "name", "proficiency", "icon", "created_at"}).
		AddRow(id1.String(), "Programming", "Go", 95, nil, now).
		AddRow(id2.String(), "Databases", "PostgreSQL", 80, "pg", now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM skills ORDER BY proficiency DESC")).WillReturnRows(rows)

	skills, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, skills, 2)
	assert.Equal(t, id1, skills[0].ID)
	assert.Equal(t, 95, skills[0].Proficiency)
	assert.Nil(t, skills[0].Icon)
	assert.Equal(t, "pg", *skills[1].Icon)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillRepository_List_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSkillRepository(db, nil)

	mock.ExpectQuery("FROM skills").WillReturnError(errors.New("connection reset"))

	_, err := repo.List(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSkillRepository(db, nil)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "category", "name", "proficiency", "icon", "created_at"}).
		AddRow(id.String(), "Programming", "Go", 90, nil, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO skills")).
		WithArgs("Programming", "Go", 90, nil).
		WillReturnRows(rows)

	skill, err := repo.Create(context.Background(), models.SkillCreate{Category: "Programming", Name: "Go", Proficiency: 90})
	assert.NoError(t, err)
	assert.Equal(t, id, skill.ID)
	assert.Equal(t, "Go", skill.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSkillRepository(db, nil)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "category", "name", "proficiency", "icon", "created_at"}).
		AddRow(id.String(), "Programming", "Rust", 90, nil, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE skills SET")).
		WithArgs(id, nil, "Rust", nil, nil).
		WillReturnRows(rows)

	skill, err := repo.Update(context.Background(), models.SkillUpdate{ID: id, Name: strPtr("Rust")})
	assert.NoError(t, err)
	assert.Equal(t, "Rust", skill.Name)
	assert.Equal(t, "Programming", skill.Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSkillRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE skills SET")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	skill, err := repo.Update(context.Background(), models.SkillUpdate{ID: uuid.New()})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, skill)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillRepository_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "not found", affected: 0, wantErr: sql.ErrNoRows},
		{name: "db error", execErr: sql.ErrConnDone, wantErr: sql.ErrConnDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewSkillRepository(db, nil)
			id := uuid.New()

			exp := mock.ExpectExec(regexp.QuoteMeta("DELETE FROM skills WHERE id = $1")).WithArgs(id)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.Delete(context.Background(), id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSkillRepository_Count(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSkillRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM skills")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(29))

	n, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 29, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSkillRepository_UsesContextTransaction(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM skills")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	called := false
	repo := NewSkillRepository(db, func(ctx context.Context) *sqlx.Tx {
		called = true
		return tx
	})

	assert.NoError(t, repo.Delete(context.Background(), uuid.New()))
	assert.NoError(t, tx.Commit())
	assert.True(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}
