// Package worker runs background maintenance jobs.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/AnuragChougule/venuebook/internal/clock"
)

// ExpiryStore deletes rows whose expiry is at or before now and reports
// how many were removed.
type ExpiryStore interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Sweeper periodically clears expired verification codes and sessions.
type Sweeper struct {
	codes    ExpiryStore
	sessions ExpiryStore
	clock    clock.Clock
	interval time.Duration
	logger   *slog.Logger
}

func NewSweeper(codes, sessions ExpiryStore, clk clock.Clock, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		codes:    codes,
		sessions: sessions,
		clock:    clk,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once immediately, then on every tick until ctx is done.
func (s *Sweeper) Run(ctx context.Context) error {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	now := s.clock.Now()

	codes, err := s.codes.DeleteExpired(ctx, now)
	if err != nil {
		s.logger.Error("sweep expired codes", "error", err)
	}
	sessions, err := s.sessions.DeleteExpired(ctx, now)
	if err != nil {
		s.logger.Error("sweep expired sessions", "error", err)
	}
	if codes > 0 || sessions > 0 {
		s.logger.Info("swept expired records", "codes", codes, "sessions", sessions)
	}
}
