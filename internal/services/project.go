package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/mannsoni/portfolio/internal/logger"
	"github.com/mannsoni/portfolio/internal/models"
)

//go:generate mockgen -source=project.go -destination=project_mock.go -package=services

// ProjectStore persists projects.
type ProjectStore interface {
	List(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, c models.ProjectCreate) (*models.Project, error)
	Update(ctx context.Context, u models.ProjectUpdate) (*models.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProjectService manages projects and keeps the public list cache fresh.
type ProjectService struct {
	store ProjectStore
	cache ContentCache
}

// NewProjectService creates a new ProjectService. cache may be nil.
func NewProjectService(store ProjectStore, cache ContentCache) *ProjectService {
	return &ProjectService{store: store, cache: cache}
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return listCached(ctx, s.cache, ProjectsCacheKey, s.store.List)
}

func (s *ProjectService) Create(ctx context.Context, c models.ProjectCreate) (*models.Project, error) {
	item, err := s.store.Create(ctx, c)
	if err != nil {
		logger.Log.Errorw("failed to create project", "error", err)
		return nil, err
	}
	invalidate(ctx, s.cache, ProjectsCacheKey)
	return item, nil
}

func (s *ProjectService) Update(ctx context.Context, u models.ProjectUpdate) (*models.Project, error) {
	item, err := s.store.Update(ctx, u)
	if err != nil {
		logger.Log.Errorw("failed to update project", "id", u.ID, "error", err)
		return nil, storageError(err)
	}
	invalidate(ctx, s.cache, ProjectsCacheKey)
	return item, nil
}

func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete project", "id", id, "error", err)
		return storageError(err)
	}
	invalidate(ctx, s.cache, ProjectsCacheKey)
	return nil
}
