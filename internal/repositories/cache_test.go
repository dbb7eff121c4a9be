package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mannsoni/portfolio/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestMemoryContentCache(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryContentCache(time.Minute)

	var got []models.Skill
	hit, err := cache.Get(ctx, "skills", &got)
	assert.NoError(t, err)
	assert.False(t, hit)

	skills := []models.Skill{{Name: "Go", Proficiency: 90}}
	assert.NoError(t, cache.Set(ctx, "skills", skills))

	// mutating the source must not leak into the cache
	skills[0].Name = "changed"

	hit, err = cache.Get(ctx, "skills", &got)
	assert.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "Go", got[0].Name)

	assert.NoError(t, cache.Delete(ctx, "skills", "projects"))
	hit, err = cache.Get(ctx, "skills", &got)
	assert.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryContentCache_Expiration(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryContentCache(50 * time.Millisecond)

	assert.NoError(t, cache.Set(ctx, "hackathons", []models.Hackathon{{Name: "x"}}))
	time.Sleep(100 * time.Millisecond)

	var got []models.Hackathon
	hit, err := cache.Get(ctx, "hackathons", &got)
	assert.NoError(t, err)
	assert.False(t, hit)
}

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()
	tc.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "6379")

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%d", host, port.Int())})
	require.NoError(t, client.Ping(ctx).Err())

	return client, func() {
		client.Close()
		container.Terminate(ctx)
	}
}

func TestRedisContentCache(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	ctx := context.Background()
	cache := NewRedisContentCache(client, time.Minute)

	var got []models.Certification
	hit, err := cache.Get(ctx, "certifications", &got)
	assert.NoError(t, err)
	assert.False(t, hit)

	certs := []models.Certification{{Name: "Intro to Java", Issuer: "Coursera", Year: 2023}}
	assert.NoError(t, cache.Set(ctx, "certifications", certs))

	hit, err = cache.Get(ctx, "certifications", &got)
	assert.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, certs[0].Name, got[0].Name)

	ttl, err := client.TTL(ctx, cacheKeyPrefix+"certifications").Result()
	assert.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	assert.NoError(t, cache.Delete(ctx, "certifications"))
	hit, err = cache.Get(ctx, "certifications", &got)
	assert.NoError(t, err)
	assert.False(t, hit)
}
