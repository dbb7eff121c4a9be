package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/mannsoni/portfolio/internal/models"
)

//go:generate mockgen -source=hackathon.go -destination=hackathon_mock.go -package=handlers

// HackathonReader lists hackathons.
type HackathonReader interface {
	List(ctx context.Context) ([]models.Hackathon, error)
}

// HackathonWriter changes hackathons.
type HackathonWriter interface {
	Create(ctx context.Context, c models.HackathonCreate) (*models.Hackathon, error)
	Update(ctx context.Context, u models.HackathonUpdate) (*models.Hackathon, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewListHackathonsHandler returns an HTTP handler listing hackathons.
// @Summary List hackathons
// @Description Hackathons by year, most recent first.
// @Tags public
// @Produce json
// @Success 200 {array} models.Hackathon
// @Failure 500 {object} models.ErrorResponse "Error fetching hackathons"
// @Router /public/hackathons [get]
func NewListHackathonsHandler(svc HackathonReader) http.HandlerFunc {
	return listHandler("hackathons", svc.List)
}

// NewCreateHackathonHandler returns an HTTP handler creating a hackathon.
// @Summary Create hackathon
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.HackathonCreate true "New hackathon"
// @Success 200 {object} models.Hackathon
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Error creating hackathon"
// @Router /admin/hackathons [post]
// @Security CookieAuth
func NewCreateHackathonHandler(svc HackathonWriter) http.HandlerFunc {
	return createHandler("hackathon", svc.Create)
}

// NewUpdateHackathonHandler returns an HTTP handler updating a hackathon. Omitted fields keep their value.
// @Summary Update hackathon
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.HackathonUpdate true "Fields to change"
// @Success 200 {object} models.Hackathon
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Failure 500 {object} models.ErrorResponse "Error updating hackathon"
// @Router /admin/hackathons [put]
// @Security CookieAuth
func NewUpdateHackathonHandler(svc HackathonWriter) http.HandlerFunc {
	return updateHandler("hackathon", svc.Update)
}

// NewDeleteHackathonHandler returns an HTTP handler deleting the hackathon given by ?id=.
// @Summary Delete hackathon
// @Tags admin
// @Produce json
// @Param id query string true "Hackathon ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "ID is required"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Failure 500 {object} models.ErrorResponse "Error deleting hackathon"
// @Router /admin/hackathons [delete]
// @Security CookieAuth
func NewDeleteHackathonHandler(svc HackathonWriter) http.HandlerFunc {
	return deleteHandler("hackathon", svc.Delete)
}
