package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mannsoni/portfolio/internal/models"
	"github.com/mannsoni/portfolio/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeSeedStore[C, T any] struct {
	rows     []C
	countErr error
}

func (f *fakeSeedStore[C, T]) Count(context.Context) (int, error) {
	return len(f.rows), f.countErr
}

func (f *fakeSeedStore[C, T]) Create(_ context.Context, c C) (*T, error) {
	f.rows = append(f.rows, c)
	return new(T), nil
}

type fakeAdminWriter struct {
	email string
	hash  string
	calls int
}

func (f *fakeAdminWriter) Save(_ context.Context, email, hash string) error {
	f.email, f.hash = email, hash
	f.calls++
	return nil
}

type seedFixture struct {
	skills         *fakeSeedStore[models.SkillCreate, models.Skill]
	projects       *fakeSeedStore[models.ProjectCreate, models.Project]
	education      *fakeSeedStore[models.EducationCreate, models.Education]
	experience     *fakeSeedStore[models.ExperienceCreate, models.Experience]
	hackathons     *fakeSeedStore[models.HackathonCreate, models.Hackathon]
	certifications *fakeSeedStore[models.CertificationCreate, models.Certification]
}

func newSeedFixture() *seedFixture {
	return &seedFixture{
		skills:         &fakeSeedStore[models.SkillCreate, models.Skill]{},
		projects:       &fakeSeedStore[models.ProjectCreate, models.Project]{},
		education:      &fakeSeedStore[models.EducationCreate, models.Education]{},
		experience:     &fakeSeedStore[models.ExperienceCreate, models.Experience]{},
		hackathons:     &fakeSeedStore[models.HackathonCreate, models.Hackathon]{},
		certifications: &fakeSeedStore[models.CertificationCreate, models.Certification]{},
	}
}

func (f *seedFixture) stores() services.SeedStores {
	return services.SeedStores{
		Skills:         f.skills,
		Projects:       f.projects,
		Education:      f.education,
		Experience:     f.experience,
		Hackathons:     f.hackathons,
		Certifications: f.certifications,
	}
}

func TestSeedService_Seed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockAdminReader(ctrl)
	writer := &fakeAdminWriter{}
	cache := services.NewMockContentCache(ctrl)
	fx := newSeedFixture()

	svc := services.NewSeedService(reader, writer, fx.stores(),
		services.WithAdminCredentials("owner@example.com", "s3cret"),
		services.WithSeedCache(cache),
	)

	reader.EXPECT().GetByEmail(gomock.Any(), "owner@example.com").Return(nil, nil)
	cache.EXPECT().Delete(gomock.Any(), services.AllCacheKeys).Return(nil)

	require.NoError(t, svc.Seed(context.Background()))

	assert.Equal(t, "owner@example.com", writer.email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(writer.hash), []byte("s3cret")))
	assert.NotEmpty(t, fx.skills.rows)
	assert.Len(t, fx.projects.rows, 3)
	assert.Len(t, fx.education.rows, 1)
	assert.Len(t, fx.experience.rows, 1)
	assert.Len(t, fx.hackathons.rows, 4)
	assert.Len(t, fx.certifications.rows, 5)
	for _, s := range fx.skills.rows {
		assert.NoError(t, s.Validate())
	}
}

func TestSeedService_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockAdminReader(ctrl)
	writer := &fakeAdminWriter{}
	fx := newSeedFixture()
	fx.skills.rows = []models.SkillCreate{{Category: "Mine", Name: "Go", Proficiency: 99}}

	svc := services.NewSeedService(reader, writer, fx.stores())

	reader.EXPECT().GetByEmail(gomock.Any(), services.DefaultAdminEmail).Return(nil, nil)
	require.NoError(t, svc.Seed(context.Background()))
	assert.Len(t, fx.skills.rows, 1, "non-empty tables are left alone")
	assert.Equal(t, 1, writer.calls)

	before := len(fx.certifications.rows)
	reader.EXPECT().GetByEmail(gomock.Any(), services.DefaultAdminEmail).
		Return(&models.AdminDB{AdminID: uuid.New(), Email: services.DefaultAdminEmail}, nil)
	require.NoError(t, svc.Seed(context.Background()))
	assert.Equal(t, 1, writer.calls, "existing admin is kept")
	assert.Equal(t, before, len(fx.certifications.rows))
}

func TestSeedService_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockAdminReader(ctrl)
	fx := newSeedFixture()
	svc := services.NewSeedService(reader, &fakeAdminWriter{}, fx.stores())

	reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
	assert.Error(t, svc.Seed(context.Background()))

	reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
	fx.projects.countErr = errors.New("db error")
	err := svc.Seed(context.Background())
	assert.ErrorContains(t, err, "count projects")
}

func TestSeedService_InvalidatesAfterCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockAdminReader(ctrl)
	cache := services.NewMockContentCache(ctrl)
	fx := newSeedFixture()

	var pending []func()
	svc := services.NewSeedService(reader, &fakeAdminWriter{}, fx.stores(),
		services.WithSeedCache(cache),
		services.WithCommitHook(func(_ context.Context, fn func()) { pending = append(pending, fn) }),
	)

	reader.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
	require.NoError(t, svc.Seed(context.Background()))
	require.Len(t, pending, 1, "invalidation waits for the commit")

	cache.EXPECT().Delete(gomock.Any(), services.AllCacheKeys).Return(nil)
	pending[0]()
}
