package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFileAged(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\n"), 0o644))
	if age > 0 {
		old := time.Now().Add(-age)
		require.NoError(t, os.Chtimes(path, old, old))
	}
	return path
}

func TestSweep_RemovesOnlyExpiredPDFs(t *testing.T) {
	dir := t.TempDir()
	expired := writeFileAged(t, dir, "old.pdf", time.Hour)
	fresh := writeFileAged(t, dir, "new.pdf", 0)
	notPDF := writeFileAged(t, dir, "old.txt", time.Hour)

	s := NewSweeper(dir, 15*time.Minute, time.Minute, zap.NewNop())
	removed := s.Sweep()

	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, expired)
	assert.FileExists(t, fresh)
	assert.FileExists(t, notPDF)
}

func TestSweep_EmptyDirectory(t *testing.T) {
	s := NewSweeper(t.TempDir(), 15*time.Minute, time.Minute, zap.NewNop())
	assert.Equal(t, 0, s.Sweep())
}

func TestSweep_ExactlyAtThresholdKept(t *testing.T) {
	dir := t.TempDir()
	kept := writeFileAged(t, dir, "boundary.pdf", 0)

	// Zero expiry falls back to the 15 minute default, so a fresh file stays.
	s := NewSweeper(dir, 0, 0, zap.NewNop())
	assert.Equal(t, 0, s.Sweep())
	assert.FileExists(t, kept)
}

func TestStart_SweepsImmediately(t *testing.T) {
	dir := t.TempDir()
	expired := writeFileAged(t, dir, "old.pdf", time.Hour)

	s := NewSweeper(dir, 15*time.Minute, time.Hour, zap.NewNop())
	s.Start()
	defer s.Stop(context.Background())

	// The first sweep fires on start, not after the first interval.
	require.Eventually(t, func() bool {
		_, err := os.Stat(expired)
		return os.IsNotExist(err)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStart_Idempotent(t *testing.T) {
	s := NewSweeper(t.TempDir(), 15*time.Minute, time.Hour, zap.NewNop())

	first := s.Start()
	second := s.Start()
	assert.True(t, first == second, "second start must return the existing run handle")
	assert.True(t, s.IsRunning())

	require.NoError(t, s.Stop(context.Background()))
}

func TestStop_GracefulAndIdempotent(t *testing.T) {
	s := NewSweeper(t.TempDir(), 15*time.Minute, time.Hour, zap.NewNop())

	done := s.Start()
	require.NoError(t, s.Stop(context.Background()))
	assert.False(t, s.IsRunning())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not exit after stop")
	}

	// Stopping again is a no-op.
	require.NoError(t, s.Stop(context.Background()))
}

func TestIsRunning_FalseBeforeStart(t *testing.T) {
	s := NewSweeper(t.TempDir(), 15*time.Minute, time.Hour, zap.NewNop())
	assert.False(t, s.IsRunning())
}
