package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/mannsoni/portfolio/internal/models"
)

//go:generate mockgen -source=education.go -destination=education_mock.go -package=handlers

// EducationReader lists education.
type EducationReader interface {
	List(ctx context.Context) ([]models.Education, error)
}

// EducationWriter changes education.
type EducationWriter interface {
	Create(ctx context.Context, c models.EducationCreate) (*models.Education, error)
	Update(ctx context.Context, u models.EducationUpdate) (*models.Education, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewListEducationHandler returns an HTTP handler listing education.
// @Summary List education
// @Description Education entries, oldest first.
// @Tags public
// @Produce json
// @Success 200 {array} models.Education
// @Failure 500 {object} models.ErrorResponse "Error fetching education"
// @Router /public/education [get]
func NewListEducationHandler(svc EducationReader) http.HandlerFunc {
	return listHandler("education", svc.List)
}

// NewCreateEducationHandler returns an HTTP handler creating a education.
// @Summary Create education
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.EducationCreate true "New education"
// @Success 200 {object} models.Education
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Error creating education"
// @Router /admin/education [post]
// @Security CookieAuth
func NewCreateEducationHandler(svc EducationWriter) http.HandlerFunc {
	return createHandler("education", svc.Create)
}

// NewUpdateEducationHandler returns an HTTP handler updating a education. Omitted fields keep their value.
// @Summary Update education
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.EducationUpdate true "Fields to change"
// @Success 200 {object} models.Education
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Failure 500 {object} models.ErrorResponse "Error updating education"
// @Router /admin/education [put]
// @Security CookieAuth
func NewUpdateEducationHandler(svc EducationWriter) http.HandlerFunc {
	return updateHandler("education", svc.Update)
}

// NewDeleteEducationHandler returns an HTTP handler deleting the education given by ?id=.
// @Summary Delete education
// @Tags admin
// @Produce json
// @Param id query string true "Education ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "ID is required"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Failure 500 {object} models.ErrorResponse "Error deleting education"
// @Router /admin/education [delete]
// @Security CookieAuth
func NewDeleteEducationHandler(svc EducationWriter) http.HandlerFunc {
	return deleteHandler("education", svc.Delete)
}
