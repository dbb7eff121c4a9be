package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/segmentio/kafka-go"

	"github.com/mannsoni/portfolio/docs"
	"github.com/mannsoni/portfolio/internal/db"
	"github.com/mannsoni/portfolio/internal/facades"
	"github.com/mannsoni/portfolio/internal/handlers"
	"github.com/mannsoni/portfolio/internal/jwt"
	"github.com/mannsoni/portfolio/internal/logger"
	"github.com/mannsoni/portfolio/internal/middlewares"
	"github.com/mannsoni/portfolio/internal/repositories"
	"github.com/mannsoni/portfolio/internal/services"
	"github.com/mannsoni/portfolio/internal/web"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title portfolio API
// @version 1.0.0
// @description Content, contact and admin API of a personal portfolio site
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name admin_token
func main() {
	printBuildInfo()
	configPath, seedOnly := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg, seedOnly); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags returns the config file path and whether to seed the database and exit.
func parseFlags() (string, bool) {
	c := flag.String("c", "config.env", "Path to configuration file")
	seed := flag.Bool("seed", false, "Seed the database with demo content and exit")
	flag.Parse()
	return *c, *seed
}

type config struct {
	AppHost     string
	AppPort     string
	AppEnv      string
	BaseURL     string
	LogLevel    string
	LogEncoding string
	CORSOrigins []string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGSSLMode      string
	PGMaxOpenConns int
	PGMaxIdleConns int

	CacheDriver   string
	CacheTTL      time.Duration
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	RedisPoolSize int

	KafkaBrokers []string
	KafkaTopic   string

	GRPCPort string

	JWTSecretKey string
	JWTExp       time.Duration

	SeedSecret    string
	AdminEmail    string
	AdminPassword string

	SMTPHost  string
	SMTPPort  string
	EmailUser string
	EmailPass string
}

// production reports whether cookies must be Secure.
func (c config) production() bool {
	return c.AppEnv == "production"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseConfig loads environment variables from a file and the process environment.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		n, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return n, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.AppEnv = getEnv("APP_ENV", "development")
	cfg.BaseURL = getEnv("APP_BASE_URL", "http://localhost:8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogEncoding = getEnv("APP_LOG_ENCODING", "json")
	cfg.CORSOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", ""))

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "portfolio")
	cfg.PGSSLMode = getEnv("POSTGRES_SSLMODE", "disable")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Cache config, lists are read straight from storage unless a driver is chosen
	cfg.CacheDriver = getEnv("CACHE_DRIVER", "none")
	switch cfg.CacheDriver {
	case "redis", "memory", "none":
	default:
		err = fmt.Errorf("CACHE_DRIVER: unknown driver %q", cfg.CacheDriver)
		return
	}
	var ttl int
	if ttl, err = getInt("CACHE_TTL_SECOND", "60"); err != nil {
		return
	}
	if ttl <= 0 && cfg.CacheDriver != "none" {
		err = fmt.Errorf("CACHE_TTL_SECOND: must be positive, got %d", ttl)
		return
	}
	cfg.CacheTTL = time.Duration(ttl) * time.Second

	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}

	// Kafka config, empty brokers disable publishing
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "portfolio.contact-messages")

	// gRPC health config, empty port disables the server
	cfg.GRPCPort = getEnv("GRPC_PORT", "9090")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "super_secret_fallback_key_portfolio")
	var jwtExp int
	if jwtExp, err = getInt("JWT_EXP_SECOND", "86400"); err != nil {
		return
	}
	cfg.JWTExp = time.Duration(jwtExp) * time.Second

	// Seeding and mail
	cfg.SeedSecret = getEnv("SEED_SECRET", "")
	cfg.EmailUser = getEnv("EMAIL_USER", "")
	cfg.EmailPass = getEnv("EMAIL_PASS", "")
	cfg.AdminEmail = getEnv("ADMIN_EMAIL", getEnv("EMAIL_USER", services.DefaultAdminEmail))
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", services.DefaultAdminPassword)
	cfg.SMTPHost = getEnv("SMTP_HOST", "smtp.gmail.com")
	cfg.SMTPPort = getEnv("SMTP_PORT", "587")

	return
}

// app holds everything the router needs.
type app struct {
	db       *sqlx.DB
	tokens   *jwt.JWT
	site     *web.Site
	auth     *services.AuthService
	contact  *services.ContactService
	seed     *services.SeedService
	skills   *services.SkillService
	projects *services.ProjectService
	edu      *services.EducationService
	exp      *services.ExperienceService
	hacks    *services.HackathonService
	certs    *services.CertificationService
}

// newContentCache picks the list cache. A nil interface disables caching.
func newContentCache(ctx context.Context, cfg config) (services.ContentCache, func()) {
	switch cfg.CacheDriver {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, strconv.Itoa(cfg.RedisPort)),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			PoolSize: cfg.RedisPoolSize,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("Redis unavailable, falling back to in-memory cache", "error", err)
			_ = rdb.Close()
			return repositories.NewMemoryContentCache(cfg.CacheTTL), func() {}
		}
		logger.Log.Infow("Using Redis content cache", "addr", rdb.Options().Addr)
		return repositories.NewRedisContentCache(rdb, cfg.CacheTTL), func() { _ = rdb.Close() }
	case "memory":
		return repositories.NewMemoryContentCache(cfg.CacheTTL), func() {}
	default:
		return nil, func() {}
	}
}

func newApp(ctx context.Context, cfg config, conn *sqlx.DB) (*app, func(), error) {
	cache, closeCache := newContentCache(ctx, cfg)
	cleanup := []func(){closeCache}
	closeAll := func() {
		for i := len(cleanup) - 1; i >= 0; i-- {
			cleanup[i]()
		}
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExp),
		jwt.WithSecureCookie(cfg.production()),
	)

	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)

	// Repositories
	skillRepo := repositories.NewSkillRepository(conn, txGetter)
	projectRepo := repositories.NewProjectRepository(conn, txGetter)
	educationRepo := repositories.NewEducationRepository(conn, txGetter)
	experienceRepo := repositories.NewExperienceRepository(conn, txGetter)
	hackathonRepo := repositories.NewHackathonRepository(conn, txGetter)
	certificationRepo := repositories.NewCertificationRepository(conn, txGetter)
	adminReadRepo := repositories.NewAdminReadRepository(conn, txGetter)
	adminWriteRepo := repositories.NewAdminWriteRepository(conn, txGetter)
	contactRepo := repositories.NewContactRepository(conn)

	// Optional contact relays, kept as nil interfaces when disabled
	var mailer services.Mailer
	if m := facades.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass); m != nil {
		mailer = m
		logger.Log.Infow("Contact notifications enabled", "smtp", cfg.SMTPHost)
	}

	var publisher services.ContactPublisher
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		p := facades.NewContactEventPublisher(writer)
		publisher = p
		cleanup = append(cleanup, func() { _ = p.Close() })
		logger.Log.Infow("Contact events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	a := &app{
		db:       conn,
		tokens:   tokens,
		auth:     services.NewAuthService(adminReadRepo, tokens),
		contact:  services.NewContactService(contactRepo, mailer, publisher),
		skills:   services.NewSkillService(skillRepo, cache),
		projects: services.NewProjectService(projectRepo, cache),
		edu:      services.NewEducationService(educationRepo, cache),
		exp:      services.NewExperienceService(experienceRepo, cache),
		hacks:    services.NewHackathonService(hackathonRepo, cache),
		certs:    services.NewCertificationService(certificationRepo, cache),
	}

	a.seed = services.NewSeedService(adminReadRepo, adminWriteRepo, services.SeedStores{
		Skills:         skillRepo,
		Projects:       projectRepo,
		Education:      educationRepo,
		Experience:     experienceRepo,
		Hackathons:     hackathonRepo,
		Certifications: certificationRepo,
	},
		services.WithAdminCredentials(cfg.AdminEmail, cfg.AdminPassword),
		services.WithSeedCache(cache),
		services.WithCommitHook(middlewares.AfterCommit),
	)

	site, err := web.New(web.Sources{
		Skills:         a.skills,
		Projects:       a.projects,
		Education:      a.edu,
		Experience:     a.exp,
		Hackathons:     a.hacks,
		Certifications: a.certs,
		Messages:       a.contact,
	}, web.WithBaseURL(cfg.BaseURL))
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	a.site = site

	return a, closeAll, nil
}

// newRouter mounts the pages, the JSON API and the API docs.
func newRouter(a *app, cfg config) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.AdminPageGate(a.tokens))

	// Pages
	r.Get("/", a.site.Home())
	r.Get("/robots.txt", a.site.Robots())
	r.Get("/sitemap.xml", a.site.Sitemap())
	r.Handle("/static/*", a.site.Static())
	r.Get("/admin", a.site.Dashboard())
	r.Get("/admin/login", a.site.Login())
	r.Get("/admin/{resource}", a.site.ResourcePage())

	authMiddleware := middlewares.AuthMiddleware(a.tokens)

	r.Route("/api", func(r chi.Router) {
		r.Route("/public", func(r chi.Router) {
			r.Get("/skills", handlers.NewListSkillsHandler(a.skills))
			r.Get("/projects", handlers.NewListProjectsHandler(a.projects))
			r.Get("/education", handlers.NewListEducationHandler(a.edu))
			r.Get("/experience", handlers.NewListExperienceHandler(a.exp))
			r.Get("/hackathons", handlers.NewListHackathonsHandler(a.hacks))
			r.Get("/certifications", handlers.NewListCertificationsHandler(a.certs))
		})

		r.Post("/contact", handlers.NewContactHandler(a.contact))
		r.With(middlewares.TxMiddleware(a.db)).Post("/seed", handlers.NewSeedHandler(a.seed, cfg.SeedSecret))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", handlers.NewLoginHandler(a.auth, a.tokens))
			r.Post("/logout", handlers.NewLogoutHandler(a.tokens))
			r.With(authMiddleware).Get("/me", handlers.NewSessionHandler())
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware)

			r.Post("/skills", handlers.NewCreateSkillHandler(a.skills))
			r.Put("/skills", handlers.NewUpdateSkillHandler(a.skills))
			r.Delete("/skills", handlers.NewDeleteSkillHandler(a.skills))

			r.Post("/projects", handlers.NewCreateProjectHandler(a.projects))
			r.Put("/projects", handlers.NewUpdateProjectHandler(a.projects))
			r.Delete("/projects", handlers.NewDeleteProjectHandler(a.projects))

			r.Post("/education", handlers.NewCreateEducationHandler(a.edu))
			r.Put("/education", handlers.NewUpdateEducationHandler(a.edu))
			r.Delete("/education", handlers.NewDeleteEducationHandler(a.edu))

			r.Post("/experience", handlers.NewCreateExperienceHandler(a.exp))
			r.Put("/experience", handlers.NewUpdateExperienceHandler(a.exp))
			r.Delete("/experience", handlers.NewDeleteExperienceHandler(a.exp))

			r.Post("/hackathons", handlers.NewCreateHackathonHandler(a.hacks))
			r.Put("/hackathons", handlers.NewUpdateHackathonHandler(a.hacks))
			r.Delete("/hackathons", handlers.NewDeleteHackathonHandler(a.hacks))

			r.Post("/certifications", handlers.NewCreateCertificationHandler(a.certs))
			r.Put("/certifications", handlers.NewUpdateCertificationHandler(a.certs))
			r.Delete("/certifications", handlers.NewDeleteCertificationHandler(a.certs))

			r.Get("/messages", handlers.NewListMessagesHandler(a.contact))
		})
	})

	docs.SwaggerInfo.Host = net.JoinHostPort(cfg.AppHost, cfg.AppPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", docs.SwaggerInfo.Host)),
	))

	if len(cfg.CORSOrigins) == 0 {
		return r
	}
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)
}

// seedOnce seeds inside a single transaction, for the -seed flag.
func seedOnce(ctx context.Context, a *app) error {
	return middlewares.RunInTx(ctx, a.db, a.seed.Seed)
}

// run initializes the logger, database, caches and servers.
// It blocks until ctx is canceled or a shutdown signal arrives.
func run(ctx context.Context, cfg config, seedOnly bool) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.PGUser, cfg.PGPassword, net.JoinHostPort(cfg.PGHost, strconv.Itoa(cfg.PGPort)), cfg.PGDB, cfg.PGSSLMode)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	conn, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer conn.Close()
	conn.SetMaxOpenConns(cfg.PGMaxOpenConns)
	conn.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := db.CreateSchema(ctx, conn); err != nil {
		return err
	}

	a, cleanup, err := newApp(ctx, cfg, conn)
	if err != nil {
		return err
	}
	defer cleanup()

	if seedOnly {
		if err := seedOnce(ctx, a); err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
		logger.Log.Info("Database seeded, exiting")
		return nil
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(a, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	var grpcSrv *grpc.Server
	if cfg.GRPCPort != "" {
		lis, err := net.Listen("tcp", net.JoinHostPort(cfg.AppHost, cfg.GRPCPort))
		if err != nil {
			return fmt.Errorf("gRPC listen failed: %w", err)
		}
		// Serve closes lis too; this covers a stop that wins the race against Serve.
		defer lis.Close()

		grpcSrv = grpc.NewServer()
		healthSrv := health.NewServer()
		healthpb.RegisterHealthServer(grpcSrv, healthSrv)
		go facades.NewHealthReporter(healthSrv, conn, 15*time.Second).Run(ctxShutdown)

		go func() {
			logger.Log.Infof("gRPC health server listening on %s", lis.Addr())
			if err := grpcSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				errChan <- fmt.Errorf("gRPC server failed: %w", err)
			}
		}()
	}

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
		logger.Log.Errorw("Server failed, stopping the others", "error", serveErr)
	}

	stopServers(srv, grpcSrv)
	if serveErr != nil {
		return serveErr
	}

	logger.Log.Info("Servers stopped gracefully")
	return nil
}

// stopServers drains both servers. grpcSrv may be nil.
func stopServers(srv *http.Server, grpcSrv *grpc.Server) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}
}
