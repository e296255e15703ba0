// Package version holds the build version of the running binary.
package version

// Version is the application version. Override at build time via ldflags:
//
//	wails build -ldflags "-X github.com/driftnote/driftnote/internal/version.Version=2.1.0"
var Version = "2.0.0"
