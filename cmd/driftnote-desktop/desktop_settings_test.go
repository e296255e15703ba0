package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/driftnote/driftnote/internal/logging"
)

func newTestSettings(t *testing.T) *DesktopSettingsManager {
	t.Helper()
	return &DesktopSettingsManager{
		configPath: filepath.Join(t.TempDir(), "config.toml"),
		log:        logging.New(logging.Config{Level: "error"}),
	}
}

func TestDesktopSettingsGetThemeDefault(t *testing.T) {
	dsm := newTestSettings(t)

	theme, err := dsm.GetTheme()
	if err != nil {
		t.Fatalf("GetTheme failed: %v", err)
	}
	if theme != "dark" {
		t.Errorf("Expected default theme 'dark', got '%s'", theme)
	}
}

func TestDesktopSettingsSetTheme(t *testing.T) {
	dsm := newTestSettings(t)

	for _, want := range []string{"light", "dark", "auto"} {
		if err := dsm.SetTheme(want); err != nil {
			t.Fatalf("SetTheme(%q) failed: %v", want, err)
		}
		theme, err := dsm.GetTheme()
		if err != nil {
			t.Fatalf("GetTheme failed: %v", err)
		}
		if theme != want {
			t.Errorf("Expected theme '%s', got '%s'", want, theme)
		}
	}
}

func TestDesktopSettingsInvalidTheme(t *testing.T) {
	dsm := newTestSettings(t)

	if err := dsm.SetTheme("solarized"); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	theme, _ := dsm.GetTheme()
	if theme != "dark" {
		t.Errorf("Invalid theme should fall back to 'dark', got '%s'", theme)
	}
}

func TestDesktopSettingsWindowSizeDefault(t *testing.T) {
	dsm := newTestSettings(t)

	width, height := dsm.GetWindowSize()
	if width != defaultWindowWidth || height != defaultWindowHeight {
		t.Errorf("Expected default size %dx%d, got %dx%d",
			defaultWindowWidth, defaultWindowHeight, width, height)
	}
}

func TestDesktopSettingsWindowSizeRoundTrip(t *testing.T) {
	dsm := newTestSettings(t)

	if err := dsm.SetWindowSize(1440, 900); err != nil {
		t.Fatalf("SetWindowSize failed: %v", err)
	}
	width, height := dsm.GetWindowSize()
	if width != 1440 || height != 900 {
		t.Errorf("Expected 1440x900, got %dx%d", width, height)
	}
}

func TestDesktopSettingsWindowSizeClamped(t *testing.T) {
	dsm := newTestSettings(t)

	if err := dsm.SetWindowSize(10, 10); err != nil {
		t.Fatalf("SetWindowSize failed: %v", err)
	}
	width, height := dsm.GetWindowSize()
	if width != minWindowWidth || height != minWindowHeight {
		t.Errorf("Expected clamped size %dx%d, got %dx%d",
			minWindowWidth, minWindowHeight, width, height)
	}
}

func TestDesktopSettingsPreservesUnknownSections(t *testing.T) {
	dsm := newTestSettings(t)

	existing := "[sync]\nendpoint = \"https://sync.example.net\"\n"
	if err := os.WriteFile(dsm.configPath, []byte(existing), 0o600); err != nil {
		t.Fatalf("seed config failed: %v", err)
	}

	if err := dsm.SetTheme("light"); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}

	data, err := os.ReadFile(dsm.configPath)
	if err != nil {
		t.Fatalf("read config failed: %v", err)
	}
	if !strings.Contains(string(data), "sync.example.net") {
		t.Errorf("Saving settings dropped the [sync] section:\n%s", data)
	}
}

func TestDesktopSettingsCorruptFileFallsBackToDefaults(t *testing.T) {
	dsm := newTestSettings(t)

	if err := os.WriteFile(dsm.configPath, []byte("not [valid toml"), 0o600); err != nil {
		t.Fatalf("seed config failed: %v", err)
	}

	theme, err := dsm.GetTheme()
	if err != nil {
		t.Fatalf("GetTheme on corrupt file failed: %v", err)
	}
	if theme != "dark" {
		t.Errorf("Expected 'dark' on corrupt config, got '%s'", theme)
	}
}
