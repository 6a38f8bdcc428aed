package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"usespace-backend/internal/config"
	"usespace-backend/internal/identity"
	"usespace-backend/internal/jobs"
	"usespace-backend/internal/logger"
	"usespace-backend/internal/repository"
	firestorerepo "usespace-backend/internal/repository/firestore"
	"usespace-backend/internal/repository/postgres"
	"usespace-backend/internal/scheduler"
	"usespace-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'send-pending-reminders', 'all-daily')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Usespace Cronjob Runner...", "log_level", cfg.Log.Level)

	ctx := context.Background()

	// Initialize Storage Backend
	store, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize store", "backend", cfg.Store.Backend, "error", err)
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer cleanup()

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.Email.Disabled {
		emailSvc = service.NewNoopEmailService()
	} else {
		emailSvc = service.NewSendGridEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromAddress, cfg.Email.FromName)
	}

	jobServices := &jobs.Services{
		Email: emailSvc,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(store, jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "send-pending-reminders":
		jobRunner.SendPendingReminders()
	case "sweep-overdue-pending":
		jobRunner.SweepOverduePending()
	case "all-daily":
		jobRunner.RunAllDailyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - send-pending-reminders\n")
		fmt.Printf("  - sweep-overdue-pending\n")
		fmt.Printf("  - all-daily\n")
		os.Exit(1)
	}
}

// buildStore opens the configured storage backend and returns the
// repositories plus a close function.
func buildStore(ctx context.Context, cfg *config.Config) (*repository.Store, func(), error) {
	switch cfg.Store.Backend {
	case "postgres":
		logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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
		return firestorerepo.NewStore(client), func() { client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend: %q", cfg.Store.Backend)
	}
}
