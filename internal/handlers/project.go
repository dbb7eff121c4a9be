package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/mannsoni/portfolio/internal/models"
)

//go:generate mockgen -source=project.go -destination=project_mock.go -package=handlers

// ProjectReader lists projects.
type ProjectReader interface {
	List(ctx context.Context) ([]models.Project, error)
}

// ProjectWriter changes projects.
type ProjectWriter interface {
	Create(ctx context.Context, c models.ProjectCreate) (*models.Project, error)
	Update(ctx context.Context, u models.ProjectUpdate) (*models.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewListProjectsHandler returns an HTTP handler listing projects.
// @Summary List projects
// @Description Projects, newest first.
// @Tags public
// @Produce json
// @Success 200 {array} models.Project
// @Failure 500 {object} models.ErrorResponse "Error fetching projects"
// @Router /public/projects [get]
func NewListProjectsHandler(svc ProjectReader) http.HandlerFunc {
	return listHandler("projects", svc.List)
}

// NewCreateProjectHandler returns an HTTP handler creating a project.
// @Summary Create project
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.ProjectCreate true "New project"
// @Success 200 {object} models.Project
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Error creating project"
// @Router /admin/projects [post]
// @Security CookieAuth
func NewCreateProjectHandler(svc ProjectWriter) http.HandlerFunc {
	return createHandler("project", svc.Create)
}

// NewUpdateProjectHandler returns an HTTP handler updating a project. Omitted fields keep their value.
// @Summary Update project
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.ProjectUpdate true "Fields to change"
// @Success 200 {object} models.Project
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Failure 500 {object} models.ErrorResponse "Error updating project"
// @Router /admin/projects [put]
// @Security CookieAuth
func NewUpdateProjectHandler(svc ProjectWriter) http.HandlerFunc {
	return updateHandler("project", svc.Update)
}

// NewDeleteProjectHandler returns an HTTP handler deleting the project given by ?id=.
// @Summary Delete project
// @Tags admin
// @Produce json
// @Param id query string true "Project ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "ID is required"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Failure 500 {object} models.ErrorResponse "Error deleting project"
// @Router /admin/projects [delete]
// @Security CookieAuth
func NewDeleteProjectHandler(svc ProjectWriter) http.HandlerFunc {
	return deleteHandler("project", svc.Delete)
}
