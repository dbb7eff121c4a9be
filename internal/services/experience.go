package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/mannsoni/portfolio/internal/logger"
	"github.com/mannsoni/portfolio/internal/models"
)

//go:generate mockgen -source=experience.go -destination=experience_mock.go -package=services

// ExperienceStore persists experience entries.
type ExperienceStore interface {
	List(ctx context.Context) ([]models.Experience, error)
	Create(ctx context.Context, c models.ExperienceCreate) (*models.Experience, error)
	Update(ctx context.Context, u models.ExperienceUpdate) (*models.Experience, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExperienceService manages experience entries and keeps the public list cache fresh.
type ExperienceService struct {
	store ExperienceStore
	cache ContentCache
}

// NewExperienceService creates a new ExperienceService. cache may be nil.
func NewExperienceService(store ExperienceStore, cache ContentCache) *ExperienceService {
	return &ExperienceService{store: store, cache: cache}
}

func (s *ExperienceService) List(ctx context.Context) ([]models.Experience, error) {
	return listCached(ctx, s.cache, ExperienceCacheKey, s.store.List)
}

func (s *ExperienceService) Create(ctx context.Context, c models.ExperienceCreate) (*models.Experience, error) {
	item, err := s.store.Create(ctx, c)
	if err != nil {
		logger.Log.Errorw("failed to create experience entry", "error", err)
		return nil, err
	}
	invalidate(ctx, s.cache, ExperienceCacheKey)
	return item, nil
}

func (s *ExperienceService) Update(ctx context.Context, u models.ExperienceUpdate) (*models.Experience, error) {
	item, err := s.store.Update(ctx, u)
	if err != nil {
		logger.Log.Errorw("failed to update experience entry", "id", u.ID, "error", err)
		return nil, storageError(err)
	}
	invalidate(ctx, s.cache, ExperienceCacheKey)
	return item, nil
}

func (s *ExperienceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete experience entry", "id", id, "error", err)
		return storageError(err)
	}
	invalidate(ctx, s.cache, ExperienceCacheKey)
	return nil
}
