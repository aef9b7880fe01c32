// Package scheduler runs periodic database maintenance jobs.
package scheduler

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/aman7heaven/Personal-portfolio/internal/store"
)

// Job schedules.
const (
	ScheduleMaintenance = "0 3 * * *" // daily at 03:00
	ScheduleCheckpoint  = "0 4 * * 0" // weekly, Sunday at 04:00
)

// jobTimeout bounds each maintenance run.
const jobTimeout = 5 * time.Minute

// Scheduler owns the cron instance and the registered maintenance jobs.
type Scheduler struct {
	cron    *cron.Cron
	db      *sql.DB
	queries *store.Queries
	logger  *slog.Logger
}

// New creates a scheduler for the given database.
func New(db *sql.DB, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		db:      db,
		queries: store.New(db),
		logger:  logger,
	}
}

// Start registers the maintenance jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(ScheduleMaintenance, s.runMaintenance); err != nil {
		return fmt.Errorf("scheduling maintenance job: %w", err)
	}
	if _, err := s.cron.AddFunc(ScheduleCheckpoint, s.runCheckpoint); err != nil {
		return fmt.Errorf("scheduling checkpoint job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("scheduler started",
		"maintenance", ScheduleMaintenance,
		"checkpoint", ScheduleCheckpoint,
	)
	return nil
}

// Stop stops the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// runMaintenance prunes expired session rows and refreshes the query
// planner statistics.
func (s *Scheduler) runMaintenance() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	pruned, err := s.queries.PruneExpiredSessions(ctx)
	if err != nil {
		s.logger.Error("pruning expired sessions", "error", err)
	} else if pruned > 0 {
		s.logger.Info("pruned expired sessions", "count", pruned)
	}

	if _, err := s.db.ExecContext(ctx, "PRAGMA optimize"); err != nil {
		s.logger.Error("running PRAGMA optimize", "error", err)
	}
}

// runCheckpoint truncates the write-ahead log.
func (s *Scheduler) runCheckpoint() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		s.logger.Error("running wal checkpoint", "error", err)
	}
}
