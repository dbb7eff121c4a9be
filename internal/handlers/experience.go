package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/mannsoni/portfolio/internal/models"
)

//go:generate mockgen -source=experience.go -destination=experience_mock.go -package=handlers

// ExperienceReader lists experience.
type ExperienceReader interface {
	List(ctx context.Context) ([]models.Experience, error)
}

// ExperienceWriter changes experience.
type ExperienceWriter interface {
	Create(ctx context.Context, c models.ExperienceCreate) (*models.Experience, error)
	Update(ctx context.Context, u models.ExperienceUpdate) (*models.Experience, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewListExperienceHandler returns an HTTP handler listing experience.
// @Summary List experience
// @Description Work experience, newest first.
// @Tags public
// @Produce json
// @Success 200 {array} models.Experience
// @Failure 500 {object} models.ErrorResponse "Error fetching experience"
// @Router /public/experience [get]
func NewListExperienceHandler(svc ExperienceReader) http.HandlerFunc {
	return listHandler("experience", svc.List)
}

// NewCreateExperienceHandler returns an HTTP handler creating a experience.
// @Summary Create experience
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.ExperienceCreate true "New experience"
// @Success 200 {object} models.Experience
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Error creating experience"
// @Router /admin/experience [post]
// @Security CookieAuth
func NewCreateExperienceHandler(svc ExperienceWriter) http.HandlerFunc {
	return createHandler("experience", svc.Create)
}

// NewUpdateExperienceHandler returns an HTTP handler updating a experience. Omitted fields keep their value.
// @Summary Update experience
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.ExperienceUpdate true "Fields to change"
// @Success 200 {object} models.Experience
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Failure 500 {object} models.ErrorResponse "Error updating experience"
// @Router /admin/experience [put]
// @Security CookieAuth
func NewUpdateExperienceHandler(svc ExperienceWriter) http.HandlerFunc {
	return updateHandler("experience", svc.Update)
}

// NewDeleteExperienceHandler returns an HTTP handler deleting the experience given by ?id=.
// @Summary Delete experience
// @Tags admin
// @Produce json
// @Param id query string true "Experience ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "ID is required"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Failure 500 {object} models.ErrorResponse "Error deleting experience"
// @Router /admin/experience [delete]
// @Security CookieAuth
func NewDeleteExperienceHandler(svc ExperienceWriter) http.HandlerFunc {
	return deleteHandler("experience", svc.Delete)
}
