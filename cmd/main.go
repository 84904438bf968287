package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/small-lei/ya-admin/internal/handlers"
	"github.com/small-lei/ya-admin/internal/jwt"
	"github.com/small-lei/ya-admin/internal/logger"
	"github.com/small-lei/ya-admin/internal/middlewares"
	"github.com/small-lei/ya-admin/internal/repositories"
	"github.com/small-lei/ya-admin/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title ya-admin API
// @version 1.0.0
// @description Order-management backend for prescription eyewear orders
// @host localhost:8000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, databaseURL,
		pgMaxOpenConns, pgMaxIdleConns,
		logLevel, jwtSecretKey, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, databaseURL,
		pgMaxOpenConns, pgMaxIdleConns,
		logLevel, jwtSecretKey, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
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
// application, database, logging, and token configuration. DATABASE_URL
// and JWT_SECRET_KEY are required; startup aborts without them.
func parseConfig(path string) (
	appHost, appPort, databaseURL string,
	pgMaxOpenConns, pgMaxIdleConns int,
	logLevel, jwtSecretKey string, jwtExpSecond int,
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
	appPort = getEnv("APP_PORT", "8000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	databaseURL = getEnv("DATABASE_URL", "")
	if databaseURL == "" {
		err = errors.New("DATABASE_URL must be set")
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Token config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "")
	if jwtSecretKey == "" {
		err = errors.New("JWT_SECRET_KEY must be set")
		return
	}
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, and HTTP server. It wires routes,
// applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, databaseURL string,
	pgMaxOpenConns, pgMaxIdleConns int,
	logLevel, jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Initialize token service
	tokenService := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	orderReadRepo := repositories.NewOrderReadRepository(db)
	orderWriteRepo := repositories.NewOrderWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, tokenService)
	orderService := services.NewOrderService(orderReadRepo, orderWriteRepo)

	// Initialize handlers
	loginHandler := handlers.NewLoginHandler(authService)
	createOrderHandler := handlers.NewCreateOrderHandler(orderService)
	listOrdersHandler := handlers.NewListOrdersHandler(orderService)
	updateOrderHandler := handlers.NewUpdateOrderHandler(orderService)
	deleteOrderHandler := handlers.NewDeleteOrderHandler(orderService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// Public routes
	r.Post("/api/auth/login", loginHandler)

	// Protected routes
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokenService))
		r.Post("/", createOrderHandler)
		r.Get("/", listOrdersHandler)
		r.Put("/{id}", updateOrderHandler)
		r.Delete("/{id}", deleteOrderHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

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
