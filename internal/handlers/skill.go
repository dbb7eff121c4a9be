package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/mannsoni/portfolio/internal/models"
)

//go:generate mockgen -source=skill.go -destination=skill_mock.go -package=handlers

// SkillReader lists skills.
type SkillReader interface {
	List(ctx context.Context) ([]models.Skill, error)
}

// SkillWriter changes skills.
type SkillWriter interface {
	Create(ctx context.Context, c models.SkillCreate) (*models.Skill, error)
	Update(ctx context.Context, u models.SkillUpdate) (*models.Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewListSkillsHandler returns an HTTP handler listing skills.
// @Summary List skills
// @Description Skills ordered by proficiency, highest first.
// @Tags public
// @Produce json
// @Success 200 {array} models.Skill
// @Failure 500 {object} models.ErrorResponse "Error fetching skills"
// @Router /public/skills [get]
func NewListSkillsHandler(svc SkillReader) http.HandlerFunc {
	return listHandler("skills", svc.List)
}

// NewCreateSkillHandler returns an HTTP handler creating a skill.
// @Summary Create skill
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.SkillCreate true "New skill"
// @Success 200 {object} models.Skill
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Error creating skill"
// @Router /admin/skills [post]
// @Security CookieAuth
func NewCreateSkillHandler(svc SkillWriter) http.HandlerFunc {
	return createHandler("skill", svc.Create)
}

// NewUpdateSkillHandler returns an HTTP handler updating a skill. Omitted fields keep their value.
// @Summary Update skill
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.SkillUpdate true "Fields to change"
// @Success 200 {object} models.Skill
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Failure 500 {object} models.ErrorResponse "Error updating skill"
// @Router /admin/skills [put]
// @Security CookieAuth
func NewUpdateSkillHandler(svc SkillWriter) http.HandlerFunc {
	return updateHandler("skill", svc.Update)
}

// NewDeleteSkillHandler returns an HTTP handler deleting the skill given by ?id=.
// @Summary Delete skill
// @Tags admin
// @Produce json
// @Param id query string true "Skill ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "ID is required"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Failure 500 {object} models.ErrorResponse "Error deleting skill"
// @Router /admin/skills [delete]
// @Security CookieAuth
func NewDeleteSkillHandler(svc SkillWriter) http.HandlerFunc {
	return deleteHandler("skill", svc.Delete)
}
