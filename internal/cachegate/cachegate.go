// Package cachegate clears persisted webview state when the application
// version changes between launches. Browsers cache aggressively and the
// webview runtime keeps local storage, indexed data and on-disk caches under
// the app data directory; after an update those must not leak into the new
// frontend.
package cachegate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// MarkerFileName is the version marker file kept in the app data directory.
// It records the last version that initialized cache state.
const MarkerFileName = ".app_version"

// cacheSubdirs hold state the webview runtime rebuilds lazily. They are only
// ever deleted here, never created.
var cacheSubdirs = []string{"webview", "cache"}

// Warning records a single failed filesystem operation during a reconcile.
// Warnings are best-effort diagnostics: a reconcile never fails as a whole.
type Warning struct {
	Op   string // "remove", "mkdir" or "write"
	Path string
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s %s: %v", w.Op, w.Path, w.Err)
}

// Reconcile compares the stored version marker under dataDir against
// currentVersion and, on a mismatch, clears the cache subdirectories and
// rewrites the marker. A missing, empty or unreadable marker counts as a
// mismatch, so a fresh install always starts from deterministic cache state.
// The comparison is an exact string match on the whitespace-trimmed stored
// value; no semantic version parsing is done.
//
// The marker is written only after the deletions have been attempted, so a
// crash mid-invalidation is detected and retried on the next launch.
//
// Reconcile never returns an error. Every failure is recorded as a Warning
// and logged, and application startup proceeds regardless.
func Reconcile(dataDir, currentVersion string, log zerolog.Logger) []Warning {
	markerPath := filepath.Join(dataDir, MarkerFileName)

	stored := readStoredVersion(markerPath, log)
	if stored == currentVersion {
		log.Debug().
			Str("version", currentVersion).
			Msg("version marker up to date, keeping cache")
		return nil
	}

	log.Info().
		Str("storedVersion", stored).
		Str("currentVersion", currentVersion).
		Msg("version changed, clearing webview cache")

	var warnings []Warning
	for _, name := range cacheSubdirs {
		dir := filepath.Join(dataDir, name)
		if _, err := os.Lstat(dir); err != nil {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			warnings = append(warnings, Warning{Op: "remove", Path: dir, Err: err})
			log.Warn().Err(err).Str("dir", dir).Msg("failed to clear cache directory")
			continue
		}
		log.Info().Str("dir", dir).Msg("cleared cache directory")
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		warnings = append(warnings, Warning{Op: "mkdir", Path: dataDir, Err: err})
		log.Warn().Err(err).Str("dir", dataDir).Msg("failed to create app data directory")
	}
	if err := os.WriteFile(markerPath, []byte(currentVersion), 0o644); err != nil {
		warnings = append(warnings, Warning{Op: "write", Path: markerPath, Err: err})
		log.Warn().Err(err).Str("file", markerPath).Msg("failed to write version marker")
	}

	return warnings
}

// readStoredVersion maps every read failure to the empty string. A first run,
// a deleted marker and a corrupted one all take the invalidation path instead
// of blocking startup. The mapping is deliberate and kept in one place.
func readStoredVersion(path string, log zerolog.Logger) string {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Debug().Err(err).Str("file", path).Msg("version marker unreadable, treating as empty")
		}
		return ""
	}
	return strings.TrimSpace(string(data))
}
