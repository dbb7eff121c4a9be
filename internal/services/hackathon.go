package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/mannsoni/portfolio/internal/logger"
	"github.com/mannsoni/portfolio/internal/models"
)

//go:generate mockgen -source=hackathon.go -destination=hackathon_mock.go -package=services

// HackathonStore persists hackathons.
type HackathonStore interface {
	List(ctx context.Context) ([]models.Hackathon, error)
	Create(ctx context.Context, c models.HackathonCreate) (*models.Hackathon, error)
	Update(ctx context.Context, u models.HackathonUpdate) (*models.Hackathon, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// HackathonService manages hackathons and keeps the public list cache fresh.
type HackathonService struct {
	store HackathonStore
	cache ContentCache
}

// NewHackathonService creates a new HackathonService. cache may be nil.
func NewHackathonService(store HackathonStore, cache ContentCache) *HackathonService {
	return &HackathonService{store: store, cache: cache}
}

func (s *HackathonService) List(ctx context.Context) ([]models.Hackathon, error) {
	return listCached(ctx, s.cache, HackathonsCacheKey, s.store.List)
}

func (s *HackathonService) Create(ctx context.Context, c models.HackathonCreate) (*models.Hackathon, error) {
	item, err := s.store.Create(ctx, c)
	if err != nil {
		logger.Log.Errorw("failed to create hackathon", "error", err)
		return nil, err
	}
	invalidate(ctx, s.cache, HackathonsCacheKey)
	return item, nil
}

func (s *HackathonService) Update(ctx context.Context, u models.HackathonUpdate) (*models.Hackathon, error) {
	item, err := s.store.Update(ctx, u)
	if err != nil {
		logger.Log.Errorw("failed to update hackathon", "id", u.ID, "error", err)
		return nil, storageError(err)
	}
	invalidate(ctx, s.cache, HackathonsCacheKey)
	return item, nil
}

func (s *HackathonService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete hackathon", "id", id, "error", err)
		return storageError(err)
	}
	invalidate(ctx, s.cache, HackathonsCacheKey)
	return nil
}
