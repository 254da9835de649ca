package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "lightevent-backend/internal/api/http"
	"lightevent-backend/internal/config"
	"lightevent-backend/internal/feed"
	"lightevent-backend/internal/logger"
	"lightevent-backend/internal/repository/postgres"
	"lightevent-backend/internal/security"
	"lightevent-backend/internal/service"
	"lightevent-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting LightEvent backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	// Initialize Storage
	localStorage, err := storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize Notification Feed
	var feedPub feed.Publisher = feed.NoopPublisher{}
	if cfg.Feed.Enabled {
		rabbitPub, err := feed.NewRabbitPublisher(cfg.Feed.URL, cfg.Feed.Exchange)
		if err != nil {
			logger.Error("Failed to connect to notification feed", "error", err)
			log.Fatalf("Failed to connect to notification feed: %v", err)
		}
		defer rabbitPub.Close()
		feedPub = rabbitPub
		logger.Info("Notification feed connected", "exchange", cfg.Feed.Exchange)
	}

	// Initialize Services
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)
	noteSvc := service.NewNotificationService(store.NotificationRepository, feedPub)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository)
	regSvc := service.NewRegistrationService(
		store.RegistrationRepository,
		store.EventRepository,
		store.UserRepository,
		noteSvc,
		emailSvc,
	)
	eventSvc := service.NewEventService(
		store.EventRepository,
		store.UserRepository,
		regSvc,
		noteSvc,
	)
	reviewSvc := service.NewReviewService(
		store.ReviewRepository,
		store.RegistrationRepository,
		store.EventRepository,
		noteSvc,
	)
	discSvc := service.NewDiscussionService(
		store.DiscussionRepository,
		store.EventRepository,
		store.UserRepository,
		noteSvc,
	)
	adminSvc := service.NewAdminService(
		store.ApplicationRepository,
		store.UserRepository,
		noteSvc,
		emailSvc,
	)

	// Initialize HTTP server
	server := httpapi.NewServer(
		authSvc,
		userSvc,
		eventSvc,
		regSvc,
		noteSvc,
		reviewSvc,
		discSvc,
		adminSvc,
		localStorage,
		tokenManager,
	)

	httpServer := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Failed to shut down cleanly", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
