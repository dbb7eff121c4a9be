package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/mannsoni/portfolio/internal/logger"
	"github.com/mannsoni/portfolio/internal/models"
)

//go:generate mockgen -source=education.go -destination=education_mock.go -package=services

// EducationStore persists education entries.
type EducationStore interface {
	List(ctx context.Context) ([]models.Education, error)
	Create(ctx context.Context, c models.EducationCreate) (*models.Education, error)
	Update(ctx context.Context, u models.EducationUpdate) (*models.Education, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EducationService manages education entries and keeps the public list cache fresh.
type EducationService struct {
	store EducationStore
	cache ContentCache
}

// NewEducationService creates a new EducationService. cache may be nil.
func NewEducationService(store EducationStore, cache ContentCache) *EducationService {
	return &EducationService{store: store, cache: cache}
}

func (s *EducationService) List(ctx context.Context) ([]models.Education, error) {
	return listCached(ctx, s.cache, EducationCacheKey, s.store.List)
}

func (s *EducationService) Create(ctx context.Context, c models.EducationCreate) (*models.Education, error) {
	item, err := s.store.Create(ctx, c)
	if err != nil {
		logger.Log.Errorw("failed to create education entry", "error", err)
		return nil, err
	}
	invalidate(ctx, s.cache, EducationCacheKey)
	return item, nil
}

func (s *EducationService) Update(ctx context.Context, u models.EducationUpdate) (*models.Education, error) {
	item, err := s.store.Update(ctx, u)
	if err != nil {
		logger.Log.Errorw("failed to update education entry", "id", u.ID, "error", err)
		return nil, storageError(err)
	}
	invalidate(ctx, s.cache, EducationCacheKey)
	return item, nil
}

func (s *EducationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete education entry", "id", id, "error", err)
		return storageError(err)
	}
	invalidate(ctx, s.cache, EducationCacheKey)
	return nil
}
