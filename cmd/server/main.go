package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "camrent-backend/internal/api/http"
	"camrent-backend/internal/cart"
	"camrent-backend/internal/config"
	"camrent-backend/internal/logger"
	"camrent-backend/internal/repository/postgres"
	"camrent-backend/internal/security"
	"camrent-backend/internal/service"
	"camrent-backend/internal/session"
	"camrent-backend/internal/storage"

	_ "github.com/lib/pq"
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
	logger.Info("Starting CamRent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Auth configuration", "provider", cfg.Auth.Provider)

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
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize the session verifier for the configured provider
	var verifier session.Verifier
	switch cfg.Auth.Provider {
	case config.AuthProviderFirebase:
		verifier, err = session.NewFirebaseVerifier(context.Background(), cfg.Auth.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize firebase verifier", "error", err)
			log.Fatalf("Failed to initialize firebase verifier: %v", err)
		}
	default:
		verifier = session.NewLocalVerifier(tokenManager)
	}

	profiles := session.NewProfileResolver(store.UserRepository, session.RetryPolicy{
		MaxAttempts: cfg.Profile.MaxAttempts,
		Delay:       time.Duration(cfg.Profile.RetryDelayMs) * time.Millisecond,
	})
	sessions := session.NewManager(verifier, profiles)

	// Initialize Image Storage
	images, err := storage.NewImageStore(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize image store", "error", err)
		log.Fatalf("Failed to initialize image store: %v", err)
	}

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.From, cfg.SendGrid.FromName)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository)
	orderSvc := service.NewOrderService(store.OrderRepository)
	userSvc := service.NewUserService(store.UserRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository, store.UserRepository)
	suggestionSvc := service.NewSuggestionService(store.SuggestionRepository, noteSvc, emailSvc)
	checkoutSvc := service.NewCheckoutService(
		store.OrderRepository,
		store.EquipmentRepository,
		emailSvc,
		noteSvc,
		cfg.Checkout.Policy,
	)

	// Initialize the cart store with its durable snapshot mirror
	carts := cart.NewStore(store.CartSnapshotRepository)

	// Build the route table
	router := httpapi.NewRouter(httpapi.Services{
		Auth:          authSvc,
		Equipment:     equipmentSvc,
		Checkout:      checkoutSvc,
		Orders:        orderSvc,
		Users:         userSvc,
		Suggestions:   suggestionSvc,
		Notifications: noteSvc,
		Carts:         carts,
		Sessions:      sessions,
		Images:        images,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
