package services

import (
	"context"
	"fmt"

	"github.com/mannsoni/portfolio/internal/logger"
	"github.com/mannsoni/portfolio/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "admin"
)

// SeedStore is the subset of a content repository the seeder needs.
type SeedStore[C, T any] interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, c C) (*T, error)
}

// AdminWriter stores admin accounts.
type AdminWriter interface {
	Save(ctx context.Context, email, passwordHash string) error
}

// SeedStores groups the content repositories filled by the seeder.
type SeedStores struct {
	Skills         SeedStore[models.SkillCreate, models.Skill]
	Projects       SeedStore[models.ProjectCreate, models.Project]
	Education      SeedStore[models.EducationCreate, models.Education]
	Experience     SeedStore[models.ExperienceCreate, models.Experience]
	Hackathons     SeedStore[models.HackathonCreate, models.Hackathon]
	Certifications SeedStore[models.CertificationCreate, models.Certification]
}

// SeedService fills an empty database with an admin account and demo content.
type SeedService struct {
	adminReader   AdminReader
	adminWriter   AdminWriter
	adminEmail    string
	adminPassword string
	stores        SeedStores
	cache         ContentCache
	afterCommit   CommitHook
}

// CommitHook defers fn until the transaction carried by ctx commits.
type CommitHook func(ctx context.Context, fn func())

type SeedOpt func(*SeedService)

func WithAdminCredentials(email, password string) SeedOpt {
	return func(s *SeedService) {
		if email != "" {
			s.adminEmail = email
		}
		if password != "" {
			s.adminPassword = password
		}
	}
}

func WithSeedCache(cache ContentCache) SeedOpt {
	return func(s *SeedService) {
		s.cache = cache
	}
}

// WithCommitHook delays cache invalidation until the seeding transaction commits.
func WithCommitHook(hook CommitHook) SeedOpt {
	return func(s *SeedService) {
		if hook != nil {
			s.afterCommit = hook
		}
	}
}

func NewSeedService(adminReader AdminReader, adminWriter AdminWriter, stores SeedStores, opts ...SeedOpt) *SeedService {
	s := &SeedService{
		adminReader:   adminReader,
		adminWriter:   adminWriter,
		adminEmail:    DefaultAdminEmail,
		adminPassword: DefaultAdminPassword,
		stores:        stores,
		afterCommit:   func(_ context.Context, fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed creates the admin when absent and inserts demo rows into every empty table.
// Running it twice leaves the database unchanged.
func (s *SeedService) Seed(ctx context.Context) error {
	if err := s.seedAdmin(ctx); err != nil {
		return err
	}

	steps := []func(context.Context) error{
		func(ctx context.Context) error { return seedIfEmpty(ctx, "skills", s.stores.Skills, demoSkills) },
		func(ctx context.Context) error { return seedIfEmpty(ctx, "projects", s.stores.Projects, demoProjects) },
		func(ctx context.Context) error { return seedIfEmpty(ctx, "education", s.stores.Education, demoEducation) },
		func(ctx context.Context) error { return seedIfEmpty(ctx, "experience", s.stores.Experience, demoExperience) },
		func(ctx context.Context) error { return seedIfEmpty(ctx, "hackathons", s.stores.Hackathons, demoHackathons) },
		func(ctx context.Context) error {
			return seedIfEmpty(ctx, "certifications", s.stores.Certifications, demoCertifications)
		},
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}

	s.afterCommit(ctx, func() {
		invalidate(context.WithoutCancel(ctx), s.cache, AllCacheKeys...)
	})
	logger.Log.Infow("database seeded")
	return nil
}

func (s *SeedService) seedAdmin(ctx context.Context) error {
	admin, err := s.adminReader.GetByEmail(ctx, s.adminEmail)
	if err != nil {
		return fmt.Errorf("lookup admin: %w", err)
	}
	if admin != nil {
		logger.Log.Debugw("admin already exists", "email", s.adminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if err := s.adminWriter.Save(ctx, s.adminEmail, string(hash)); err != nil {
		return fmt.Errorf("save admin: %w", err)
	}

	logger.Log.Infow("admin created", "email", s.adminEmail)
	return nil
}

func seedIfEmpty[C, T any](ctx context.Context, name string, store SeedStore[C, T], rows []C) error {
	if store == nil {
		return nil
	}

	n, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("count %s: %w", name, err)
	}
	if n > 0 {
		logger.Log.Debugw("table not empty, skipping", "table", name, "rows", n)
		return nil
	}

	for _, row := range rows {
		if _, err := store.Create(ctx, row); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
	}

	logger.Log.Infow("table seeded", "table", name, "rows", len(rows))
	return nil
}
