package main

import (
	"context"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/driftnote/driftnote/internal/appdata"
	"github.com/driftnote/driftnote/internal/cachegate"
	"github.com/driftnote/driftnote/internal/logging"
	"github.com/driftnote/driftnote/internal/version"
)

// App struct holds the application state.
type App struct {
	ctx      context.Context
	log      *logging.Logger
	settings *DesktopSettingsManager
	watcher  *settingsWatcher

	// startupWarnings collects non-fatal problems from the cache reconcile so
	// the frontend can surface them; startup itself is never blocked.
	startupWarnings []string
}

// NewApp creates a new App application struct.
func NewApp(log *logging.Logger, settings *DesktopSettingsManager) *App {
	return &App{
		log:      log,
		settings: settings,
	}
}

// startup is called when the app starts, before the main window becomes
// interactive. The cache reconcile runs here first: after an update the
// webview must never see cached assets from the previous version.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	dataDir, err := appdata.Dir()
	if err != nil {
		// Matches the reconcile's own contract: cache maintenance is
		// best-effort and never blocks the app from opening.
		a.log.Warn().Err(err).Msg("could not resolve app data dir, skipping cache check")
	} else {
		warnings := cachegate.Reconcile(dataDir, version.Version, a.log.WithComponent("cachegate").Logger)
		for _, w := range warnings {
			a.startupWarnings = append(a.startupWarnings, w.String())
		}
	}

	watcher, err := newSettingsWatcher(a.settings.ConfigPath(), a.onSettingsChanged, a.log)
	if err != nil {
		a.log.Warn().Err(err).Msg("settings watcher unavailable, external config edits need a restart")
	} else {
		a.watcher = watcher
	}
}

// shutdown is called when the app is closing.
func (a *App) shutdown(ctx context.Context) {
	if a.watcher != nil {
		a.watcher.Stop()
	}

	width, height := wailsRuntime.WindowGetSize(ctx)
	if err := a.settings.SetWindowSize(width, height); err != nil {
		a.log.Warn().Err(err).Msg("failed to persist window size")
	}
}

// onSettingsChanged notifies the frontend that config.toml changed on disk.
func (a *App) onSettingsChanged() {
	if a.ctx == nil {
		return
	}
	wailsRuntime.EventsEmit(a.ctx, "settings:changed")
}

// GetVersion returns the application version.
func (a *App) GetVersion() string {
	return version.Version
}

// GetAppDataDir returns the platform application data directory.
func (a *App) GetAppDataDir() (string, error) {
	return appdata.Dir()
}

// GetStartupWarnings returns non-fatal problems from the startup cache check,
// formatted for display. Empty on a clean start.
func (a *App) GetStartupWarnings() []string {
	return a.startupWarnings
}

// GetDesktopTheme returns the current desktop theme preference.
// Returns "dark", "light", or "auto".
func (a *App) GetDesktopTheme() string {
	theme, err := a.settings.GetTheme()
	if err != nil {
		return "dark"
	}
	return theme
}

// SetDesktopTheme sets the desktop theme preference.
// Valid values: "dark", "light", "auto".
func (a *App) SetDesktopTheme(theme string) error {
	return a.settings.SetTheme(theme)
}
