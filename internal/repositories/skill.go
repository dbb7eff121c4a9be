package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mannsoni/portfolio/internal/models"
)

const skillColumns = `id, category, name, proficiency, icon, created_at`

// SkillRepository stores skills.
type SkillRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSkillRepository(db *sqlx.DB, txGetter TxGetter) *SkillRepository {
	return &SkillRepository{db: db, txGetter: txGetter}
}

// List returns all skills, most proficient first.
func (r *SkillRepository) List(ctx context.Context) ([]models.Skill, error) {
	const query = `SELECT ` + skillColumns + ` FROM skills ORDER BY proficiency DESC, created_at ASC`

	skills := []models.Skill{}
	err := sqlx.SelectContext(ctx, r.db, &skills, query)
	logQuery(query, nil, len(skills), err)

	return skills, err
}

func (r *SkillRepository) Create(ctx context.Context, c models.SkillCreate) (*models.Skill, error) {
	const query = `
		INSERT INTO skills (category, name, proficiency, icon)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + skillColumns
	args := []any{c.Category, c.Name, c.Proficiency, c.Icon}

	var skill models.Skill
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &skill, query, args...)
	logQuery(query, args, skill.ID, err)

	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Update changes only the non-nil fields. sql.ErrNoRows is returned for an unknown id.
func (r *SkillRepository) Update(ctx context.Context, u models.SkillUpdate) (*models.Skill, error) {
	const query = `
		UPDATE skills SET
			category = COALESCE($2, category),
			name = COALESCE($3, name),
			proficiency = COALESCE($4, proficiency),
			icon = COALESCE($5, icon)
		WHERE id = $1
		RETURNING ` + skillColumns
	args := []any{u.ID, u.Category, u.Name, u.Proficiency, u.Icon}

	var skill models.Skill
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &skill, query, args...)
	logQuery(query, args, skill.ID, err)

	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, executor(ctx, r.db, r.txGetter), "skills", id)
}

func (r *SkillRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, executor(ctx, r.db, r.txGetter), "skills")
}
