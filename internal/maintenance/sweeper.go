// Package maintenance runs the cron job that evicts listings older than the
// configured retention window.
package maintenance

import (
	"context"
	"fmt"
	"log"
	"time"

	"jobradar/internal/config"
	"jobradar/internal/repository"

	"github.com/robfig/cron/v3"
)

type Sweeper struct {
	cron   *cron.Cron
	repo   repository.JobListingRepository
	logger *log.Logger
	cfg    config.RetentionConfig
}

func NewSweeper(repo repository.JobListingRepository, cfg config.RetentionConfig, logger *log.Logger) *Sweeper {
	return &Sweeper{
		cron:   cron.New(),
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// Start registers the sweep and runs one immediately so a long-idle
// deployment does not wait a full interval for its first eviction. It is a
// no-op when retention is disabled.
func (s *Sweeper) Start(ctx context.Context) error {
	if s.cfg.Days <= 0 {
		return nil
	}

	every := s.cfg.SweepEvery
	if every <= 0 {
		every = 6 * time.Hour
	}

	spec := fmt.Sprintf("@every %s", every)
	if _, err := s.cron.AddFunc(spec, func() {
		s.sweep(ctx)
	}); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	if s.logger != nil {
		s.logger.Printf("[Sweeper] Started | retention_days=%d spec=%s", s.cfg.Days, spec)
	}

	go s.sweep(ctx)
	return nil
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
	if s.logger != nil {
		s.logger.Printf("[Sweeper] Stopped")
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.cfg.Days)
	deleted, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("[Sweeper] Sweep error: %v", err)
		}
		return
	}
	if s.logger != nil {
		s.logger.Printf("[Sweeper] Swept | deleted=%d cutoff=%s", deleted, cutoff.Format("2006-01-02"))
	}
}
