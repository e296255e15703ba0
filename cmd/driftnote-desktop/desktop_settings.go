package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/driftnote/driftnote/internal/appdata"
	"github.com/driftnote/driftnote/internal/logging"
)

const configFileName = "config.toml"

const (
	defaultWindowWidth  = 1024
	defaultWindowHeight = 768
	minWindowWidth      = 400
	minWindowHeight     = 300
)

// DesktopConfig represents the [desktop] section of config.toml
type DesktopConfig struct {
	Theme  string       `toml:"theme"`  // "dark", "light", or "auto"
	Window WindowConfig `toml:"window"` // persisted main window geometry
}

// WindowConfig holds the last known main window size, restored on launch.
type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// DesktopSettingsManager manages desktop-specific settings in config.toml
type DesktopSettingsManager struct {
	configPath string
	log        *logging.Logger
}

// NewDesktopSettingsManager creates a new desktop settings manager
func NewDesktopSettingsManager(log *logging.Logger) *DesktopSettingsManager {
	dir, err := appdata.Dir()
	if err != nil {
		// Settings become per-working-directory; better than refusing to start.
		log.Warn().Err(err).Msg("could not resolve app data dir for settings")
		dir = "."
	}
	return &DesktopSettingsManager{
		configPath: filepath.Join(dir, configFileName),
		log:        log,
	}
}

// ConfigPath returns the absolute path of the settings file.
func (dsm *DesktopSettingsManager) ConfigPath() string {
	return dsm.configPath
}

// fullConfig represents the config.toml structure we care about.
// Other sections are preserved as raw TOML on save.
type fullConfig struct {
	Desktop DesktopConfig `toml:"desktop"`
}

// loadDesktopSettings loads the desktop section from config.toml
func (dsm *DesktopSettingsManager) loadDesktopSettings() (*DesktopConfig, error) {
	defaults := &DesktopConfig{
		Theme: "dark",
		Window: WindowConfig{
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
		},
	}

	data, err := os.ReadFile(dsm.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return nil, err
	}

	var config fullConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return defaults, nil // Return defaults on parse error
	}

	switch config.Desktop.Theme {
	case "dark", "light", "auto":
		// Valid
	default:
		config.Desktop.Theme = "dark"
	}

	if config.Desktop.Window.Width < minWindowWidth {
		config.Desktop.Window.Width = defaultWindowWidth
	}
	if config.Desktop.Window.Height < minWindowHeight {
		config.Desktop.Window.Height = defaultWindowHeight
	}

	return &config.Desktop, nil
}

// saveDesktopSettings saves the desktop config, preserving other sections
func (dsm *DesktopSettingsManager) saveDesktopSettings(desktop *DesktopConfig) error {
	existingData, _ := os.ReadFile(dsm.configPath)

	// Parse existing config into a map to preserve unknown sections
	var existingConfig map[string]interface{}
	if len(existingData) > 0 {
		if err := toml.Unmarshal(existingData, &existingConfig); err != nil {
			existingConfig = make(map[string]interface{})
		}
	} else {
		existingConfig = make(map[string]interface{})
	}

	existingConfig["desktop"] = map[string]interface{}{
		"theme": desktop.Theme,
		"window": map[string]interface{}{
			"width":  desktop.Window.Width,
			"height": desktop.Window.Height,
		},
	}

	if err := os.MkdirAll(filepath.Dir(dsm.configPath), 0o700); err != nil {
		return err
	}

	var buf bytes.Buffer
	if len(existingData) == 0 {
		buf.WriteString("# Driftnote configuration\n\n")
	}
	if err := toml.NewEncoder(&buf).Encode(existingConfig); err != nil {
		return err
	}

	return os.WriteFile(dsm.configPath, buf.Bytes(), 0o600)
}

// GetTheme returns the current desktop theme preference
func (dsm *DesktopSettingsManager) GetTheme() (string, error) {
	config, err := dsm.loadDesktopSettings()
	if err != nil {
		return "dark", err
	}
	return config.Theme, nil
}

// SetTheme sets the desktop theme preference
func (dsm *DesktopSettingsManager) SetTheme(theme string) error {
	theme = strings.ToLower(strings.TrimSpace(theme))
	switch theme {
	case "dark", "light", "auto":
		// Valid
	default:
		theme = "dark"
	}

	config, err := dsm.loadDesktopSettings()
	if err != nil {
		config = &DesktopConfig{
			Window: WindowConfig{Width: defaultWindowWidth, Height: defaultWindowHeight},
		}
	}

	config.Theme = theme
	return dsm.saveDesktopSettings(config)
}

// GetWindowSize returns the persisted main window size, falling back to the
// defaults when unset or implausibly small.
func (dsm *DesktopSettingsManager) GetWindowSize() (width, height int) {
	config, err := dsm.loadDesktopSettings()
	if err != nil {
		return defaultWindowWidth, defaultWindowHeight
	}
	return config.Window.Width, config.Window.Height
}

// SetWindowSize persists the main window size, clamping to the minimum.
func (dsm *DesktopSettingsManager) SetWindowSize(width, height int) error {
	if width < minWindowWidth {
		width = minWindowWidth
	}
	if height < minWindowHeight {
		height = minWindowHeight
	}

	config, err := dsm.loadDesktopSettings()
	if err != nil {
		config = &DesktopConfig{Theme: "dark"}
	}

	config.Window.Width = width
	config.Window.Height = height
	return dsm.saveDesktopSettings(config)
}
