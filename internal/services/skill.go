package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/mannsoni/portfolio/internal/logger"
	"github.com/mannsoni/portfolio/internal/models"
)

//go:generate mockgen -source=skill.go -destination=skill_mock.go -package=services

// SkillStore persists skills.
type SkillStore interface {
	List(ctx context.Context) ([]models.Skill, error)
	Create(ctx context.Context, c models.SkillCreate) (*models.Skill, error)
	Update(ctx context.Context, u models.SkillUpdate) (*models.Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SkillService manages skills and keeps the public list cache fresh.
type SkillService struct {
	store SkillStore
	cache ContentCache
}

// NewSkillService creates a new SkillService. cache may be nil.
func NewSkillService(store SkillStore, cache ContentCache) *SkillService {
	return &SkillService{store: store, cache: cache}
}

func (s *SkillService) List(ctx context.Context) ([]models.Skill, error) {
	return listCached(ctx, s.cache, SkillsCacheKey, s.store.List)
}

func (s *SkillService) Create(ctx context.Context, c models.SkillCreate) (*models.Skill, error) {
	item, err := s.store.Create(ctx, c)
	if err != nil {
		logger.Log.Errorw("failed to create skill", "error", err)
		return nil, err
	}
	invalidate(ctx, s.cache, SkillsCacheKey)
	return item, nil
}

func (s *SkillService) Update(ctx context.Context, u models.SkillUpdate) (*models.Skill, error) {
	item, err := s.store.Update(ctx, u)
	if err != nil {
		logger.Log.Errorw("failed to update skill", "id", u.ID, "error", err)
		return nil, storageError(err)
	}
	invalidate(ctx, s.cache, SkillsCacheKey)
	return item, nil
}

func (s *SkillService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete skill", "id", id, "error", err)
		return storageError(err)
	}
	invalidate(ctx, s.cache, SkillsCacheKey)
	return nil
}
