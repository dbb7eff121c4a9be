package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath, seed := parseFlags()

	assert.Equal(t, "config.env", configPath)
	assert.False(t, seed)
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env", "-seed"}
	configPath, seed := parseFlags()

	assert.Equal(t, "myconfig.env", configPath)
	assert.True(t, seed)
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-10-01"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2026-10-01")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.False(t, cfg.production())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.CORSOrigins)

	assert.Equal(t, "localhost", cfg.PGHost)
	assert.Equal(t, 5432, cfg.PGPort)
	assert.Equal(t, "portfolio", cfg.PGDB)
	assert.Equal(t, 16, cfg.PGMaxOpenConns)
	assert.Equal(t, 8, cfg.PGMaxIdleConns)

	assert.Equal(t, "none", cfg.CacheDriver)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, 6379, cfg.RedisPort)

	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "9090", cfg.GRPCPort)

	assert.Equal(t, 24*time.Hour, cfg.JWTExp)
	assert.Empty(t, cfg.SeedSecret)
	assert.Equal(t, "admin@example.com", cfg.AdminEmail)
	assert.Equal(t, "admin", cfg.AdminPassword)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, "587", cfg.SMTPPort)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "3000")
	os.Setenv("APP_ENV", "production")
	os.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("CACHE_DRIVER", "redis")
	os.Setenv("CACHE_TTL_SECOND", "120")
	os.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	os.Setenv("KAFKA_TOPIC", "contacts")
	os.Setenv("JWT_EXP_SECOND", "300")
	os.Setenv("SEED_SECRET", "s3cret")
	os.Setenv("EMAIL_USER", "owner@example.com")
	os.Setenv("EMAIL_PASS", "app-password")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.AppHost)
	assert.Equal(t, "3000", cfg.AppPort)
	assert.True(t, cfg.production())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, 5433, cfg.PGPort)
	assert.Equal(t, "redis", cfg.CacheDriver)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "contacts", cfg.KafkaTopic)
	assert.Equal(t, 5*time.Minute, cfg.JWTExp)
	assert.Equal(t, "s3cret", cfg.SeedSecret)
	assert.Equal(t, "owner@example.com", cfg.AdminEmail)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantKey string
	}{
		{"bad postgres port", map[string]string{"POSTGRES_PORT": "abc"}, "POSTGRES_PORT"},
		{"bad jwt expiration", map[string]string{"JWT_EXP_SECOND": "1d"}, "JWT_EXP_SECOND"},
		{"unknown cache driver", map[string]string{"CACHE_DRIVER": "memcached"}, "CACHE_DRIVER"},
		{"zero cache ttl", map[string]string{"CACHE_DRIVER": "redis", "CACHE_TTL_SECOND": "0"}, "CACHE_TTL_SECOND"},
		{"negative cache ttl", map[string]string{"CACHE_DRIVER": "memory", "CACHE_TTL_SECOND": "-5"}, "CACHE_TTL_SECOND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv()
			for k, v := range tt.env {
				os.Setenv(k, v)
			}

			_, err := parseConfig("nonexistent.env")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestParseConfig_TTLIgnoredWithoutCache(t *testing.T) {
	resetEnv()
	os.Setenv("CACHE_TTL_SECOND", "0")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)
	assert.Equal(t, "none", cfg.CacheDriver)
}

func newTestApp(t *testing.T) (*app, sqlmock.Sqlmock, config) {
	t.Helper()
	resetEnv()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	conn := sqlx.NewDb(sqlDB, "sqlmock")
	t.Cleanup(func() { conn.Close() })

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)
	cfg.CacheDriver = "none"

	a, cleanup, err := newApp(context.Background(), cfg, conn)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	return a, mock, cfg
}

func TestNewRouter(t *testing.T) {
	a, mock, cfg := newTestApp(t)
	router := newRouter(a, cfg)

	tests := []struct {
		name         string
		method       string
		path         string
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{name: "robots", method: http.MethodGet, path: "/robots.txt", wantStatus: http.StatusOK, wantBody: "Disallow: /admin/"},
		{name: "login page", method: http.MethodGet, path: "/admin/login", wantStatus: http.StatusOK},
		{name: "dashboard without session", method: http.MethodGet, path: "/admin", wantStatus: http.StatusTemporaryRedirect, wantLocation: "/admin/login"},
		{name: "resource page without session", method: http.MethodGet, path: "/admin/skills", wantStatus: http.StatusTemporaryRedirect, wantLocation: "/admin/login"},
		{name: "admin api without session", method: http.MethodPost, path: "/api/admin/skills", wantStatus: http.StatusUnauthorized, wantBody: "Unauthorized"},
		{name: "messages without session", method: http.MethodGet, path: "/api/admin/messages", wantStatus: http.StatusUnauthorized},
		{name: "session without cookie", method: http.MethodGet, path: "/api/auth/me", wantStatus: http.StatusUnauthorized},
		{name: "logout", method: http.MethodPost, path: "/api/auth/logout", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			}
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewRouter_SeedDisabled(t *testing.T) {
	a, mock, cfg := newTestApp(t)
	router := newRouter(a, cfg)

	mock.ExpectBegin()
	mock.ExpectRollback()

	req := httptest.NewRequest(http.MethodPost, "/api/seed?secret=anything", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewRouter_CORS(t *testing.T) {
	a, _, cfg := newTestApp(t)
	cfg.CORSOrigins = []string{"https://front.example.com"}
	router := newRouter(a, cfg)

	req := httptest.NewRequest(http.MethodOptions, "/api/public/skills", nil)
	req.Header.Set("Origin", "https://front.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "https://front.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func startPostgres(t *testing.T) (string, int) {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgContainer.Terminate(ctx) })

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return host, port.Int()
}

func freePort(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()
	return fmt.Sprint(lis.Addr().(*net.TCPAddr).Port)
}

func integrationConfig(t *testing.T) config {
	t.Helper()
	pgHost, pgPort := startPostgres(t)

	resetEnv()
	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	cfg.AppHost = "127.0.0.1"
	cfg.AppPort = freePort(t)
	cfg.GRPCPort = freePort(t)
	cfg.PGHost = pgHost
	cfg.PGPort = pgPort
	cfg.PGUser = "user"
	cfg.PGDB = "testdb"
	cfg.LogLevel = "debug"
	cfg.SeedSecret = "seed-secret"
	return cfg
}

func TestRun_Success(t *testing.T) {
	cfg := integrationConfig(t)
	cfg.CacheDriver = "memory"

	testCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg, false)
	}()

	base := "http://" + net.JoinHostPort(cfg.AppHost, cfg.AppPort)
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/api/public/skills")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 8*time.Second, 200*time.Millisecond)

	countSkills := func() int {
		resp, err := http.Get(base + "/api/public/skills")
		require.NoError(t, err)
		defer resp.Body.Close()
		var skills []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&skills))
		return len(skills)
	}
	assert.Zero(t, countSkills(), "empty list is now cached")

	resp, err := http.Post(base+"/api/seed?secret=seed-secret", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotZero(t, countSkills(), "seeded rows are visible once committed")

	resp, err = http.Post(base+"/api/auth/login", "application/json",
		strings.NewReader(`{"email":"admin@example.com","password":"admin"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Cookies())

	select {
	case <-time.After(11 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}

func TestRun_SeedOnly(t *testing.T) {
	cfg := integrationConfig(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, run(ctx, cfg, true))
	// Seeding an already populated database is a no-op.
	require.NoError(t, run(ctx, cfg, true))
}

func TestRun_HTTPFailureStopsGRPC(t *testing.T) {
	cfg := integrationConfig(t)

	busy, err := net.Listen("tcp", net.JoinHostPort(cfg.AppHost, cfg.AppPort))
	require.NoError(t, err)
	defer busy.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = run(ctx, cfg, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP server failed")

	lis, err := net.Listen("tcp", net.JoinHostPort(cfg.AppHost, cfg.GRPCPort))
	require.NoError(t, err, "gRPC port must be released")
	lis.Close()
}
