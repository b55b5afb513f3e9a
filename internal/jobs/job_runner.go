package jobs

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"emprius-backend/internal/config"
	"emprius-backend/internal/logger"
	"emprius-backend/internal/service"
)

// Dispatcher delivers a notification to a user.
type Dispatcher interface {
	Dispatch(ctx context.Context, userID int32, msg service.Message)
}

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	db         *sql.DB
	dispatcher Dispatcher
	config     *config.Config
	now        func() time.Time
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(db *sql.DB, dispatcher Dispatcher, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:         db,
		dispatcher: dispatcher,
		config:     cfg,
		now:        time.Now,
	}
}

// Config returns the configuration the runner was built with.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	start := time.Now()
	logger.Info("Starting job", "job", jobName)
	if err := jobFunc(context.Background()); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err, "duration", time.Since(start))
		return
	}
	logger.Info("Job completed", "job", jobName, "duration", time.Since(start))
}

// RunAll runs every job once (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.MarkLapsedBookings()
	jr.SendReturnReminders()
}

// Run executes a single job by name.
func (jr *JobRunner) Run(name string) error {
	switch name {
	case "all":
		jr.RunAll()
	case "mark-lapsed":
		jr.MarkLapsedBookings()
	case "return-reminders":
		jr.SendReturnReminders()
	default:
		return fmt.Errorf("unknown job %q", name)
	}
	return nil
}
