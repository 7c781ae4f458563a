// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// appDataDir returns the default root directory for appName's config and
// log files, following the per-OS convention of the wider btcsuite-style
// ecosystem's chainutil.AppDataDir (LOCALAPPDATA, or APPDATA when roaming,
// on Windows; Application Support on macOS), which isn't available to this
// module. Elsewhere it uses $XDG_DATA_HOME/appName when that variable is
// set, and a dotted directory in the home directory otherwise.
func appDataDir(appName string, roaming bool) string {
	if appName == "" || appName == "." {
		return "."
	}
	appName = strings.TrimPrefix(appName, ".")
	appNameUpper := strings.ToUpper(appName[:1]) + appName[1:]

	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		if roaming || appData == "" {
			appData = os.Getenv("APPDATA")
		}
		if appData != "" {
			return filepath.Join(appData, appNameUpper)
		}
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Application Support", appNameUpper)
		}
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			break
		}
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, appName)
		}
		return filepath.Join(home, "."+appName)
	}
	return "." + appName
}
