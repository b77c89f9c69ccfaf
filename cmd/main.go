package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
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
	"github.com/segmentio/kafka-go"

	"github.com/felirami/neetme/internal/handlers"
	"github.com/felirami/neetme/internal/jwt"
	"github.com/felirami/neetme/internal/logger"
	"github.com/felirami/neetme/internal/middlewares"
	"github.com/felirami/neetme/internal/repositories"
	"github.com/felirami/neetme/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title neetme API
// @version 1.0.0
// @description Link-in-bio service with wallet sign-in, profiles and ordered links
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, appEnv, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		cacheTTLSecond,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExpSecond,
		avatarMaxBytes,
		err := parseConfig(configPath)
	if err != nil {
		stdlog.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, appEnv, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		cacheTTLSecond,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExpSecond,
		avatarMaxBytes,
	); err != nil {
		stdlog.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, JWT and upload configuration.
func parseConfig(path string) (
	appHost, appPort, appEnv, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	cacheTTLSecond int,
	kafkaBrokers []string, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	avatarMaxBytes int64,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	appEnv = getEnv("APP_ENV", "development")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "neetme")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if cacheTTLSecond, err = strconv.Atoi(getEnv("PROFILE_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	// Kafka config; empty brokers disable event publishing
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaBrokers = strings.Split(brokers, ",")
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "profile-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	// Upload config
	if avatarMaxBytes, err = strconv.ParseInt(getEnv("AVATAR_MAX_BYTES", "2097152"), 10, 64); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, appEnv, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	cacheTTLSecond int,
	kafkaBrokers []string, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	avatarMaxBytes int64,
) error {
	start := time.Now()

	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer; nil disables event publishing
	var events services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBrokers...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer writer.Close()
		events = writer
		logger.Log.Infof("Kafka events enabled, topic %s", kafkaTopic)
	} else {
		logger.Log.Info("Kafka brokers not configured, event publishing disabled")
	}

	// Initialize JWT service
	tokener := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	linkReadRepo := repositories.NewLinkReadRepository(db)
	linkWriteRepo := repositories.NewLinkWriteRepository(db, middlewares.GetTxFromContext)
	profileCache := repositories.NewProfileCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)

	// Initialize services
	identityService := services.NewIdentityService(userReadRepo, userWriteRepo, tokener, events)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo, profileCache, events)
	linkService := services.NewLinkService(userReadRepo, linkReadRepo, linkWriteRepo, profileCache, events)
	renderService := services.NewRenderService(userReadRepo, linkReadRepo, profileCache)

	// Initialize handlers
	authenticateHandler := handlers.NewAuthenticateHandler(identityService)
	claimUsernameHandler := handlers.NewClaimUsernameHandler(profileService)
	updateProfileHandler := handlers.NewUpdateProfileHandler(profileService)
	uploadAvatarHandler := handlers.NewUploadAvatarHandler(profileService, avatarMaxBytes)
	avatarImageHandler := handlers.NewAvatarImageHandler(profileService)
	listLinksHandler := handlers.NewListLinksHandler(linkService)
	addLinkHandler := handlers.NewAddLinkHandler(linkService)
	updateLinkHandler := handlers.NewUpdateLinkHandler(linkService)
	deleteLinkHandler := handlers.NewDeleteLinkHandler(linkService)
	publicProfileHandler := handlers.NewPublicProfileHandler(renderService)
	suggestPlatformsHandler := handlers.NewSuggestPlatformsHandler()
	detectPlatformHandler := handlers.NewDetectPlatformHandler()
	healthHandler := handlers.NewHealthHandler(start)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Post("/api/auth/user", authenticateHandler)
	r.Get("/api/health", healthHandler)
	r.Get("/api/platforms", suggestPlatformsHandler)
	r.Get("/api/platforms/detect", detectPlatformHandler)
	r.Get("/images/avatar/{userId}", avatarImageHandler)

	// Protected routes
	authMiddleware := middlewares.AuthMiddleware(tokener, identityService, appEnv != "production")
	txMiddleware := middlewares.TxMiddleware(db)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/api/links", listLinksHandler)
		r.Group(func(r chi.Router) {
			r.Use(txMiddleware)
			r.Post("/api/links", addLinkHandler)
			r.Patch("/api/links/{id}", updateLinkHandler)
			r.Delete("/api/links/{id}", deleteLinkHandler)
			r.Patch("/api/profile", updateProfileHandler)
			r.Post("/api/user/username", claimUsernameHandler)
			r.Post("/api/upload/avatar", uploadAvatarHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	// Public profile pages, registered last so fixed routes win
	r.Get("/{username}", publicProfileHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
