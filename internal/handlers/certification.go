package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/mannsoni/portfolio/internal/models"
)

//go:generate mockgen -source=certification.go -destination=certification_mock.go -package=handlers

// CertificationReader lists certifications.
type CertificationReader interface {
	List(ctx context.Context) ([]models.Certification, error)
}

// CertificationWriter changes certifications.
type CertificationWriter interface {
	Create(ctx context.Context, c models.CertificationCreate) (*models.Certification, error)
	Update(ctx context.Context, u models.CertificationUpdate) (*models.Certification, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewListCertificationsHandler returns an HTTP handler listing certifications.
// @Summary List certifications
// @Description Certifications by year, most recent first.
// @Tags public
// @Produce json
// @Success 200 {array} models.Certification
// @Failure 500 {object} models.ErrorResponse "Error fetching certifications"
// @Router /public/certifications [get]
func NewListCertificationsHandler(svc CertificationReader) http.HandlerFunc {
	return listHandler("certifications", svc.List)
}

// NewCreateCertificationHandler returns an HTTP handler creating a certification.
// @Summary Create certification
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.CertificationCreate true "New certification"
// @Success 200 {object} models.Certification
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Error creating certification"
// @Router /admin/certifications [post]
// @Security CookieAuth
func NewCreateCertificationHandler(svc CertificationWriter) http.HandlerFunc {
	return createHandler("certification", svc.Create)
}

// NewUpdateCertificationHandler returns an HTTP handler updating a certification. Omitted fields keep their value.
// @Summary Update certification
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.CertificationUpdate true "Fields to change"
// @Success 200 {object} models.Certification
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Failure 500 {object} models.ErrorResponse "Error updating certification"
// @Router /admin/certifications [put]
// @Security CookieAuth
func NewUpdateCertificationHandler(svc CertificationWriter) http.HandlerFunc {
	return updateHandler("certification", svc.Update)
}

// NewDeleteCertificationHandler returns an HTTP handler deleting the certification given by ?id=.
// @Summary Delete certification
// @Tags admin
// @Produce json
// @Param id query string true "Certification ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "ID is required"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Failure 500 {object} models.ErrorResponse "Error deleting certification"
// @Router /admin/certifications [delete]
// @Security CookieAuth
func NewDeleteCertificationHandler(svc CertificationWriter) http.HandlerFunc {
	return deleteHandler("certification", svc.Delete)
}
