package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// For mocking in tests
var (
	osUserConfigDir = os.UserConfigDir
	osGetenv        = os.Getenv
	runtimeGOOS     = runtime.GOOS
)

const (
	appDirName       = "strata"
	profileExtension = ".toml"
)

// CandidatePaths returns the ordered file system locations probed for a
// profile file, most specific first. No I/O happens here; existence checks
// are up to the caller.
func CandidatePaths(filename string) []string {
	return candidatePaths(runtimeGOOS, filename, osUserConfigDir, osGetenv)
}

// candidatePaths is a pure function of the platform identifier and the
// environment, so every platform branch is testable on any host. Sources
// that cannot be determined are omitted, never an error.
func candidatePaths(goos, filename string, userConfigDir func() (string, error), getenv func(string) string) []string {
	var paths []string
	if dir, err := userConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, appDirName, filename))
	}
	if dir := systemConfigDir(goos, getenv); dir != "" {
		paths = append(paths, filepath.Join(dir, filename))
	}
	return append(paths, filepath.Join(".", filename))
}

// systemConfigDir returns the platform's system-wide configuration
// directory, or "" where the platform has none.
func systemConfigDir(goos string, getenv func(string) string) string {
	switch goos {
	case "windows":
		if programData := getenv("PROGRAMDATA"); programData != "" {
			return filepath.Join(programData, appDirName, "config")
		}
		return ""
	case "ios", "js", "wasip1":
		return ""
	default:
		return filepath.Join("/etc", appDirName)
	}
}
