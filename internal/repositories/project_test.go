package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mannsoni/portfolio/internal/models"
	"github.com/stretchr/testify/assert"
)

var projectRowColumns = []string{"id", "title", "description", "tech_stack", "architecture_overview", "github_link", "live_link", "featured", "created_at"}

func TestProjectRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db, nil)

	id := uuid.New()
	rows := sqlmock.NewRows(projectRowColumns).
		AddRow(id.String(), "HEARTSYNC", "Matchmaking app", "{Django,React}", "Frontend -> API", nil, nil, true, time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("FROM projects ORDER BY created_at DESC")).WillReturnRows(rows)

	projects, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, projects, 1)
	assert.Equal(t, pq.StringArray{"Django", "React"}, projects[0].TechStack)
	assert.Equal(t, "Frontend -> API", *projects[0].ArchitectureOverview)
	assert.True(t, projects[0].Featured)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Create_EmptyTechStack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db, nil)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO projects")).
		WithArgs("Title", "Desc", "{}", nil, nil, nil, false).
		WillReturnRows(sqlmock.NewRows(projectRowColumns).
			AddRow(id.String(), "Title", "Desc", "{}", nil, nil, nil, false, time.Now()))

	project, err := repo.Create(context.Background(), models.ProjectCreate{Title: "Title", Description: "Desc"})
	assert.NoError(t, err)
	assert.Equal(t, id, project.ID)
	assert.Empty(t, project.TechStack)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Update_TechStack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db, nil)

	id := uuid.New()
	stack := []string{"Go", "Redis"}
	featured := true

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE projects SET")).
		WithArgs(id, nil, nil, "{\"Go\",\"Redis\"}", nil, nil, nil, true).
		WillReturnRows(sqlmock.NewRows(projectRowColumns).
			AddRow(id.String(), "Title", "Desc", "{Go,Redis}", nil, nil, nil, true, time.Now()))

	project, err := repo.Update(context.Background(), models.ProjectUpdate{ID: id, TechStack: &stack, Featured: &featured})
	assert.NoError(t, err)
	assert.Equal(t, pq.StringArray{"Go", "Redis"}, project.TechStack)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db, nil)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM projects WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}
