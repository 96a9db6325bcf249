// Package cleanup removes expired PDF files from the output directory.
package cleanup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Defaults for the background loop.
const (
	DefaultInterval = 300 * time.Second
	DefaultExpiry   = 15 * time.Minute

	stopGracePeriod = 5 * time.Second
)

// Sweeper periodically deletes PDF files older than the expiry threshold.
// Expiry is computed purely from filesystem modification time; the output
// directory carries no sidecar metadata.
type Sweeper struct {
	dir      string
	expiry   time.Duration
	interval time.Duration
	logger   *zap.Logger

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// NewSweeper returns a sweeper over dir. Non-positive durations fall back to
// the defaults.
func NewSweeper(dir string, expiry, interval time.Duration, logger *zap.Logger) *Sweeper {
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sweeper{
		dir:      dir,
		expiry:   expiry,
		interval: interval,
		logger:   logger,
	}
}

// Sweep deletes expired PDFs once and reports how many were removed.
// Per-file stat or remove errors are logged and skipped so a single locked
// file cannot block eviction of the rest.
func (s *Sweeper) Sweep() int {
	files, err := filepath.Glob(filepath.Join(s.dir, "*.pdf"))
	if err != nil {
		s.logger.Error("cleanup scan failed", zap.String("dir", s.dir), zap.Error(err))
		return 0
	}

	now := time.Now()
	removed := 0

	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			s.logger.Warn("failed to stat pdf, skipping",
				zap.String("file", path), zap.Error(err))
			continue
		}

		age := now.Sub(info.ModTime())
		if age <= s.expiry {
			continue
		}

		if err := os.Remove(path); err != nil {
			s.logger.Warn("failed to remove expired pdf, skipping",
				zap.String("file", path), zap.Error(err))
			continue
		}

		removed++
		s.logger.Info("removed expired pdf",
			zap.String("file", filepath.Base(path)),
			zap.Duration("age", age))
	}

	return removed
}

// Start launches the background loop. The first sweep fires immediately, not
// after the first interval. Starting an already-running sweeper is a no-op
// that returns the existing run handle; the returned channel closes when the
// loop exits.
func (s *Sweeper) Start() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return s.done
	}

	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	s.logger.Info("starting cleanup loop",
		zap.String("dir", s.dir),
		zap.Duration("interval", s.interval),
		zap.Duration("expiry", s.expiry))

	go s.loop(s.stop, s.done)
	return s.done
}

func (s *Sweeper) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Sweep()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-stop:
			s.logger.Info("cleanup loop stopped")
			return
		}
	}
}

// Stop requests a graceful exit and waits for the loop to finish, bounded by
// a grace period and by ctx. Stopping a sweeper that is not running is a
// no-op.
func (s *Sweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	close(s.stop)
	done := s.done
	s.mu.Unlock()

	timer := time.NewTimer(stopGracePeriod)
	defer timer.Stop()

	select {
	case <-done:
		return nil
	case <-timer.C:
		return errors.New("cleanup loop did not stop within grace period")
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsRunning reports whether the background loop is active.
func (s *Sweeper) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
