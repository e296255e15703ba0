package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/driftnote/driftnote/internal/logging"
)

func TestSettingsWatcherFiresOnWrite(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	changed := make(chan struct{}, 8)

	sw, err := newSettingsWatcher(configPath, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, logging.New(logging.Config{Level: "error"}))
	if err != nil {
		t.Fatalf("newSettingsWatcher failed: %v", err)
	}
	defer sw.Stop()

	if err := os.WriteFile(configPath, []byte("[desktop]\ntheme = \"light\"\n"), 0o600); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change notification after writing config.toml")
	}
}

func TestSettingsWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	changed := make(chan struct{}, 8)

	sw, err := newSettingsWatcher(configPath, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}, logging.New(logging.Config{Level: "error"}))
	if err != nil {
		t.Fatalf("newSettingsWatcher failed: %v", err)
	}
	defer sw.Stop()

	if err := os.WriteFile(filepath.Join(dir, "scratch.txt"), []byte("x"), 0o600); err != nil {
		t.Fatalf("write scratch failed: %v", err)
	}

	select {
	case <-changed:
		t.Fatal("unrelated file should not trigger a settings notification")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestSettingsWatcherStopIsIdempotent(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	sw, err := newSettingsWatcher(configPath, func() {}, logging.New(logging.Config{Level: "error"}))
	if err != nil {
		t.Fatalf("newSettingsWatcher failed: %v", err)
	}

	sw.Stop()
	sw.Stop()
}
