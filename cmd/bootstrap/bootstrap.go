package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"care-scheduler/config"
	deliveryHttp "care-scheduler/internal/delivery/http"
	"care-scheduler/internal/delivery/http/handler"
	"care-scheduler/internal/delivery/http/middleware"
	"care-scheduler/internal/infrastructure/cache"
	"care-scheduler/internal/infrastructure/database"
	"care-scheduler/internal/repository"
	"care-scheduler/internal/service"
	"care-scheduler/internal/store"
	"care-scheduler/internal/usecase"
	"care-scheduler/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Resolve the display timezone once; all day boundaries and grid
	// anchoring derive from it.
	loc, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Schedule.Timezone, err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.Schedule.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Apply schema migrations
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient, loc)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, loc *time.Location) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	appointmentRepo := repository.NewAppointmentRepository()
	categoryRepo := repository.NewCategoryRepository()
	patientRepo := repository.NewPatientRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize clock and the shared appointment store
	clock := store.RealClock{}
	source := store.NewRepositorySource(db, appointmentRepo, clock, loc)
	appointments := store.New(source, log, cfg.Schedule.PastPageSize)

	// Prime the store; a failed initial load is retried via refresh, the
	// server still starts.
	if err := appointments.LoadInitial(context.Background()); err != nil {
		log.Warnf("Initial appointment load failed: %+v", err)
	}

	// Initialize reference data cache and warm it
	referenceCache := service.NewReferenceCache(db, redisClient, log, categoryRepo, patientRepo, cfg.Schedule.ReferenceTTL)
	if err := referenceCache.Warm(context.Background()); err != nil {
		log.Warnf("Reference cache warm-up failed: %+v", err)
	}

	// Initialize usecases
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, categoryRepo, patientRepo, appointments, clock, loc, cfg.Schedule.PastPageSize)
	referenceUsecase := usecase.NewReferenceUsecase(log, referenceCache)

	// Initialize handlers
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	referenceHandler := handler.NewReferenceHandler(referenceUsecase)
	viewHandler := handler.NewViewHandler(appointments, clock, loc)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(appointmentHandler, referenceHandler, viewHandler, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
