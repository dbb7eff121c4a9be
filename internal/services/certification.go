package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/mannsoni/portfolio/internal/logger"
	"github.com/mannsoni/portfolio/internal/models"
)

//go:generate mockgen -source=certification.go -destination=certification_mock.go -package=services

// CertificationStore persists certifications.
type CertificationStore interface {
	List(ctx context.Context) ([]models.Certification, error)
	Create(ctx context.Context, c models.CertificationCreate) (*models.Certification, error)
	Update(ctx context.Context, u models.CertificationUpdate) (*models.Certification, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CertificationService manages certifications and keeps the public list cache fresh.
type CertificationService struct {
	store CertificationStore
	cache ContentCache
}

// NewCertificationService creates a new CertificationService. cache may be nil.
func NewCertificationService(store CertificationStore, cache ContentCache) *CertificationService {
	return &CertificationService{store: store, cache: cache}
}

func (s *CertificationService) List(ctx context.Context) ([]models.Certification, error) {
	return listCached(ctx, s.cache, CertificationsCacheKey, s.store.List)
}

func (s *CertificationService) Create(ctx context.Context, c models.CertificationCreate) (*models.Certification, error) {
	item, err := s.store.Create(ctx, c)
	if err != nil {
		logger.Log.Errorw("failed to create certification", "error", err)
		return nil, err
	}
	invalidate(ctx, s.cache, CertificationsCacheKey)
	return item, nil
}

func (s *CertificationService) Update(ctx context.Context, u models.CertificationUpdate) (*models.Certification, error) {
	item, err := s.store.Update(ctx, u)
	if err != nil {
		logger.Log.Errorw("failed to update certification", "id", u.ID, "error", err)
		return nil, storageError(err)
	}
	invalidate(ctx, s.cache, CertificationsCacheKey)
	return item, nil
}

func (s *CertificationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete certification", "id", id, "error", err)
		return storageError(err)
	}
	invalidate(ctx, s.cache, CertificationsCacheKey)
	return nil
}
