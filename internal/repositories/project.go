package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mannsoni/portfolio/internal/models"
)

// tech_stack is selected in its text form so pq.StringArray can scan it through database/sql.
const projectColumns = `id, title, description, tech_stack::TEXT AS tech_stack, architecture_overview, github_link, live_link, featured, created_at`

// ProjectRepository stores projects. The tech stack is a TEXT[] column.
type ProjectRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewProjectRepository(db *sqlx.DB, txGetter TxGetter) *ProjectRepository {
	return &ProjectRepository{db: db, txGetter: txGetter}
}

// List returns all projects, newest first.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`

	projects := []models.Project{}
	err := sqlx.SelectContext(ctx, r.db, &projects, query)
	logQuery(query, nil, len(projects), err)

	return projects, err
}

func (r *ProjectRepository) Create(ctx context.Context, c models.ProjectCreate) (*models.Project, error) {
	const query = `
		INSERT INTO projects (title, description, tech_stack, architecture_overview, github_link, live_link, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + projectColumns

	techStack := pq.StringArray(c.TechStack)
	if techStack == nil {
		techStack = pq.StringArray{}
	}
	args := []any{c.Title, c.Description, techStack, c.ArchitectureOverview, c.GithubLink, c.LiveLink, c.Featured}

	var project models.Project
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &project, query, args...)
	logQuery(query, args, project.ID, err)

	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Update changes only the non-nil fields. sql.ErrNoRows is returned for an unknown id.
func (r *ProjectRepository) Update(ctx context.Context, u models.ProjectUpdate) (*models.Project, error) {
	const query = `
		UPDATE projects SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			tech_stack = COALESCE($4, tech_stack),
			architecture_overview = COALESCE($5, architecture_overview),
			github_link = COALESCE($6, github_link),
			live_link = COALESCE($7, live_link),
			featured = COALESCE($8, featured)
		WHERE id = $1
		RETURNING ` + projectColumns

	var techStack any
	if u.TechStack != nil {
		techStack = pq.StringArray(*u.TechStack)
	}
	args := []any{u.ID, u.Title, u.Description, techStack, u.ArchitectureOverview, u.GithubLink, u.LiveLink, u.Featured}

	var project models.Project
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &project, query, args...)
	logQuery(query, args, project.ID, err)

	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, executor(ctx, r.db, r.txGetter), "projects", id)
}

func (r *ProjectRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, executor(ctx, r.db, r.txGetter), "projects")
}
