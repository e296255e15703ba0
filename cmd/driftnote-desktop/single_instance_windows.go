//go:build windows

package main

import (
	"errors"
	"strings"

	"golang.org/x/sys/windows"
)

var singleInstanceMutex windows.Handle

// tryAcquireSingleInstance creates a named mutex so a second launch can detect
// the running instance and exit instead of opening a second window over the
// same app data directory.
func tryAcquireSingleInstance(appID string) (primary bool, release func(), err error) {
	name := "Local\\" + sanitizeMutexName(appID)
	ptr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return false, nil, err
	}
	h, err := windows.CreateMutex(nil, false, ptr)
	// CreateMutex can return a valid handle together with
	// ERROR_ALREADY_EXISTS; that is the secondary-instance case, not a
	// failure.
	if err != nil && !errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
		return false, nil, err
	}
	already := windows.GetLastError() == windows.ERROR_ALREADY_EXISTS || errors.Is(err, windows.ERROR_ALREADY_EXISTS)
	if already {
		_ = windows.CloseHandle(h)
		return false, func() {}, nil
	}

	singleInstanceMutex = h
	return true, func() {
		if singleInstanceMutex != 0 {
			_ = windows.CloseHandle(singleInstanceMutex)
			singleInstanceMutex = 0
		}
	}, nil
}

func sanitizeMutexName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "app"
	}
	replacer := strings.NewReplacer("\\", "_", "/", "_", ":", "_", " ", "_")
	return replacer.Replace(s)
}
