package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/c360studio/ldmodel/config"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sources.yaml")
	require.NoError(t, validConfig().SaveToFile(path))

	w, err := config.NewWatcher(config.WatcherConfig{
		Path:          path,
		DebounceDelay: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	updated := validConfig()
	updated.DefaultSources.Listed = "https://ex.com/new-public"
	require.NoError(t, updated.SaveToFile(path))

	select {
	case cfg := <-w.Events():
		require.Equal(t, "https://ex.com/new-public", cfg.DefaultListed)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}

func TestWatcherSkipsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sources.yaml")
	require.NoError(t, validConfig().SaveToFile(path))

	w, err := config.NewWatcher(config.WatcherConfig{
		Path:          path,
		DebounceDelay: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	// An invalid file is logged and skipped; no event fires.
	require.NoError(t, os.WriteFile(path, []byte("default_sources: {}\n"), 0644))

	select {
	case cfg, ok := <-w.Events():
		if ok {
			t.Fatalf("unexpected reload event: %+v", cfg)
		}
	case <-time.After(300 * time.Millisecond):
	}
}
