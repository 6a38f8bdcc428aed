package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "usespace-backend/internal/api/http"
	"usespace-backend/internal/config"
	"usespace-backend/internal/domain"
	"usespace-backend/internal/identity"
	"usespace-backend/internal/logger"
	"usespace-backend/internal/repository"
	firestorerepo "usespace-backend/internal/repository/firestore"
	"usespace-backend/internal/repository/postgres"
	"usespace-backend/internal/security"
	"usespace-backend/internal/service"
	"usespace-backend/internal/storage"
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
	logger.Info("Starting Usespace Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Store configuration", "backend", cfg.Store.Backend)

	ctx := context.Background()

	// Initialize Storage Backend
	store, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize store", "backend", cfg.Store.Backend, "error", err)
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer cleanup()

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	// Initialize Identity Verifier
	var verifier identity.Verifier
	if cfg.Auth.Mode == "firebase" {
		app, err := identity.NewFirebaseApp(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize firebase app", "error", err)
			log.Fatalf("Failed to initialize firebase app: %v", err)
		}
		verifier, err = identity.NewFirebaseVerifier(ctx, app)
		if err != nil {
			logger.Error("Failed to initialize firebase verifier", "error", err)
			log.Fatalf("Failed to initialize firebase verifier: %v", err)
		}
		logger.Info("Firebase auth enabled", "project_id", cfg.Firebase.ProjectID)
	} else {
		logger.Info("Local email+password auth enabled")
	}

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.Email.Disabled {
		logger.Info("Email sending disabled")
		emailSvc = service.NewNoopEmailService()
	} else {
		emailSvc = service.NewSendGridEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromAddress, cfg.Email.FromName)
	}

	// Initialize Services
	authSvc := service.NewAuthService(store.Users, tokenManager, verifier, domain.Role(cfg.Auth.DefaultRole))
	userSvc := service.NewUserService(store.Users)
	catalogSvc := service.NewCatalogService(store.Properties)
	availabilitySvc := service.NewAvailabilityService(store.Appointments)
	appointmentSvc := service.NewAppointmentService(store.Appointments, store.Properties, store.Users, emailSvc)

	// Initialize Image Storage
	var imageHandler *httpapi.ImageHandler
	if cfg.Storage.UploadDir != "" {
		imageStore, err := storage.NewLocalImageStore(cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize image storage", "error", err)
			log.Fatalf("Failed to initialize image storage: %v", err)
		}
		imageHandler = httpapi.NewImageHandler(imageStore, cfg.Storage.MaxFileSizeMB<<20)
		logger.Info("Local image storage enabled", "upload_dir", cfg.Storage.UploadDir)
	}

	// Set up HTTP server
	router := httpapi.NewRouter(authSvc, userSvc, catalogSvc, availabilitySvc, appointmentSvc, imageHandler)
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}

// buildStore opens the configured storage backend and returns the
// repositories plus a close function.
func buildStore(ctx context.Context, cfg *config.Config) (*repository.Store, func(), error) {
	switch cfg.Store.Backend {
	case "postgres":
		logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			return nil, nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("Database connection established")
		return postgres.NewStore(db), func() { db.Close() }, nil

	case "firestore":
		logger.Info("Connecting to Firestore...", "project_id", cfg.Firebase.ProjectID)
		app, err := identity.NewFirebaseApp(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			return nil, nil, err
		}
		client, err := app.Firestore(ctx)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Firestore client ready")
		return firestorerepo.NewStore(client), func() { client.Close() }, nil

	default:
		// config.Load already validates the backend; this is unreachable.
		return nil, nil, fmt.Errorf("unknown store backend: %q", cfg.Store.Backend)
	}
}
