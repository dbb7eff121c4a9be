package services

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/mannsoni/portfolio/internal/logger"
)

//go:generate mockgen -source=content.go -destination=content_mock.go -package=services

// ErrNotFound is returned when an update or delete targets a row that does not exist.
var ErrNotFound = errors.New("resource not found")

// Cache keys of the public lists.
const (
	SkillsCacheKey         = "skills"
	ProjectsCacheKey       = "projects"
	EducationCacheKey      = "education"
	ExperienceCacheKey     = "experience"
	HackathonsCacheKey     = "hackathons"
	CertificationsCacheKey = "certifications"
)

// AllCacheKeys lists every public list key.
var AllCacheKeys = []string{
	SkillsCacheKey,
	ProjectsCacheKey,
	EducationCacheKey,
	ExperienceCacheKey,
	HackathonsCacheKey,
	CertificationsCacheKey,
}

// ContentCache stores serialized public lists.
type ContentCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// fillGuard orders cache fills against invalidations. Each invalidation bumps
// the generation of its keys, and a fill whose load started under an older
// generation is dropped instead of written back.
type fillGuard struct {
	mu   sync.Mutex
	gens map[string]uint64
}

var fills = &fillGuard{gens: make(map[string]uint64)}

func (g *fillGuard) generation(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gens[key]
}

func (g *fillGuard) bump(keys ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, k := range keys {
		g.gens[k]++
	}
}

// fill stores value only if key was not invalidated since gen was read.
// The lock is held across Set so an invalidation cannot slip in between.
func (g *fillGuard) fill(ctx context.Context, cache ContentCache, key string, gen uint64, value any) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.gens[key] != gen {
		logger.Log.Debugw("dropping stale cache fill", "key", key)
		return nil
	}
	return cache.Set(ctx, key, value)
}

// listCached serves key from cache, loading and storing it on a miss.
// Cache failures are logged and never fail the read.
func listCached[T any](ctx context.Context, cache ContentCache, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	var gen uint64
	if cache != nil {
		gen = fills.generation(key)

		var cached []T
		hit, err := cache.Get(ctx, key, &cached)
		if err != nil {
			logger.Log.Warnw("cache read failed, loading from storage", "key", key, "error", err)
		}
		if hit {
			return cached, nil
		}
	}

	items, err := load(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list resource", "resource", key, "error", err)
		return nil, err
	}

	if cache != nil {
		if err := fills.fill(ctx, cache, key, gen, items); err != nil {
			logger.Log.Warnw("cache write failed", "key", key, "error", err)
		}
	}
	return items, nil
}

// invalidate drops cached lists after a successful write.
func invalidate(ctx context.Context, cache ContentCache, keys ...string) {
	if cache == nil {
		return
	}
	fills.bump(keys...)
	if err := cache.Delete(ctx, keys...); err != nil {
		logger.Log.Warnw("cache invalidation failed", "keys", keys, "error", err)
	}
}

// storageError maps a missing row to ErrNotFound.
func storageError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
