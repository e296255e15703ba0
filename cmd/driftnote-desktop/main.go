package main

import (
	"embed"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/driftnote/driftnote/internal/appdata"
	"github.com/driftnote/driftnote/internal/logging"
	"github.com/driftnote/driftnote/internal/version"
)

//go:embed all:frontend/dist
var assets embed.FS

const appID = "Driftnote"

func main() {
	// A second launch must not open a second window over the same app data
	// directory; it exits immediately and leaves the running instance alone.
	primary, release, err := tryAcquireSingleInstance(appID)
	if err == nil && !primary {
		return
	}
	if release != nil {
		defer release()
	}

	// Detect development mode
	isDev := os.Getenv("WAILS_DEV") != "" || logging.IsDevBuild()

	level := "info"
	if isDev {
		level = "debug"
	}

	logDir, dirErr := appdata.LogDir()
	log := logging.New(logging.Config{
		Level:    level,
		Path:     logDir,
		Compress: true,
	})
	defer log.Close()

	if dirErr != nil {
		log.Warn().Err(dirErr).Msg("could not resolve log directory, logging to console only")
	}
	log.Info().Str("version", version.Version).Msg("starting Driftnote")

	settings := NewDesktopSettingsManager(log)
	width, height := settings.GetWindowSize()

	app := NewApp(log, settings)

	logLevel := logger.INFO
	if isDev {
		logLevel = logger.DEBUG
	}

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "Driftnote",
		Width:  width,
		Height: height,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
		},
		LogLevel:           logLevel,
		LogLevelProduction: logger.ERROR,
		// Enable DevTools in development mode
		Debug: options.Debug{
			OpenInspectorOnStartup: isDev,
		},
	})

	if err != nil {
		log.Error().Err(err).Msg("wails run failed")
	}
}
