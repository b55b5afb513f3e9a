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

	"emprius-backend/internal/config"
	"emprius-backend/internal/jobs"
	"emprius-backend/internal/logger"
	"emprius-backend/internal/repository/postgres"
	"emprius-backend/internal/scheduler"
	"emprius-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a job once and exit: mark-lapsed, return-reminders or all")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Emprius cronjob runner...", "log_level", cfg.Log.Level)

	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	ctx := context.Background()
	var notifiers []service.Notifier
	if cfg.SendGrid.APIKey != "" {
		notifiers = append(notifiers, service.NewEmailNotifier(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName))
	}
	if cfg.Push.CredentialsFile != "" {
		push, err := service.NewPushNotifier(ctx, cfg.Push.CredentialsFile, cfg.Push.ProjectID)
		if err != nil {
			logger.Error("Push notifications disabled", "error", err)
		} else {
			notifiers = append(notifiers, push)
		}
	}
	dispatcher := service.NewDispatcher(store.NotificationRepository, store.UserRepository, notifiers...)

	jobRunner := jobs.NewJobRunner(db, dispatcher, cfg)

	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		if err := jobRunner.Run(*runOnce); err != nil {
			logger.Error("Unknown job name", "job", *runOnce)
			fmt.Println("Available jobs: mark-lapsed, return-reminders, all")
			os.Exit(1)
		}
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	cronScheduler, err := scheduler.NewScheduler(jobRunner)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped")
}
