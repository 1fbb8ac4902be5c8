package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-profiles-service/config"
	deliveryHttp "clinic-profiles-service/internal/delivery/http"
	"clinic-profiles-service/internal/delivery/http/handler"
	"clinic-profiles-service/internal/delivery/http/middleware"
	"clinic-profiles-service/internal/infrastructure/broker"
	"clinic-profiles-service/internal/infrastructure/database"
	"clinic-profiles-service/internal/messaging"
	"clinic-profiles-service/internal/repository"
	"clinic-profiles-service/internal/usecase"
	"clinic-profiles-service/pkg/jwt"
	"clinic-profiles-service/pkg/validator"

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
	Consumer    *messaging.StatusSyncConsumer
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

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis (broker)
	redisClient, err := broker.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, consumer := initialize(cfg, db, redisClient)
	app.Server = server
	app.Consumer = consumer

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initialize wires repositories, usecases, handlers, the HTTP server and
// the status sync consumer.
func initialize(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *messaging.StatusSyncConsumer) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	receptionistRepo := repository.NewReceptionistRepository()
	profileRepo := repository.NewProfileRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize messaging
	publisher := messaging.NewRedisPublisher(redisClient, log)
	consumer := messaging.NewStatusSyncConsumer(db, redisClient, log, doctorRepo, cfg.App.ConsumerName)

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(db, log, customValidator, doctorRepo, profileRepo, publisher)
	patientUsecase := usecase.NewPatientUsecase(db, log, customValidator, patientRepo, profileRepo)
	receptionistUsecase := usecase.NewReceptionistUsecase(db, log, customValidator, receptionistRepo, profileRepo)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	patientHandler := handler.NewPatientHandler(patientUsecase)
	receptionistHandler := handler.NewReceptionistHandler(receptionistUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, patientHandler, receptionistHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return server, consumer
}

// Run starts the status sync consumer and HTTP server, then handles
// graceful shutdown.
func (app *App) Run() {
	// Start consuming broker messages
	app.Consumer.Start()

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

	// Stop the consumer before closing its connections
	app.Consumer.Stop()

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
