package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func noEnv(string) string { return "" }

func TestCandidatePathsLinux(t *testing.T) {
	userConfigDir := func() (string, error) { return "/home/user/.config", nil }

	got := candidatePaths("linux", "strata.toml", userConfigDir, noEnv)

	want := []string{
		filepath.Join("/home/user/.config", "strata", "strata.toml"),
		filepath.Join("/etc/strata", "strata.toml"),
		"strata.toml",
	}
	assert.Equal(t, want, got)
}

func TestCandidatePathsWindows(t *testing.T) {
	userConfigDir := func() (string, error) { return `C:\Users\user\AppData\Roaming`, nil }
	getenv := func(key string) string {
		if key == "PROGRAMDATA" {
			return `C:\ProgramData`
		}
		return ""
	}

	got := candidatePaths("windows", "strata.toml", userConfigDir, getenv)

	want := []string{
		filepath.Join(`C:\Users\user\AppData\Roaming`, "strata", "strata.toml"),
		filepath.Join(`C:\ProgramData`, "strata", "config", "strata.toml"),
		"strata.toml",
	}
	assert.Equal(t, want, got)
}

func TestCandidatePathsWindowsWithoutProgramData(t *testing.T) {
	userConfigDir := func() (string, error) { return `C:\Users\user\AppData\Roaming`, nil }

	got := candidatePaths("windows", "strata.toml", userConfigDir, noEnv)

	// No PROGRAMDATA means the system-wide location is simply omitted.
	want := []string{
		filepath.Join(`C:\Users\user\AppData\Roaming`, "strata", "strata.toml"),
		"strata.toml",
	}
	assert.Equal(t, want, got)
}

func TestCandidatePathsSandboxedPlatforms(t *testing.T) {
	userConfigDir := func() (string, error) { return "/home/user/.config", nil }

	for _, goos := range []string{"ios", "js", "wasip1"} {
		got := candidatePaths(goos, "strata.toml", userConfigDir, noEnv)
		want := []string{
			filepath.Join("/home/user/.config", "strata", "strata.toml"),
			"strata.toml",
		}
		assert.Equal(t, want, got, "platform %s", goos)
	}
}

func TestCandidatePathsWithoutUserConfigDir(t *testing.T) {
	userConfigDir := func() (string, error) { return "", errors.New("$HOME is not defined") }

	got := candidatePaths("linux", "strata.toml", userConfigDir, noEnv)

	want := []string{
		filepath.Join("/etc/strata", "strata.toml"),
		"strata.toml",
	}
	assert.Equal(t, want, got)
}

func TestCandidatePathsUsesPackageHooks(t *testing.T) {
	originalUserConfigDir := osUserConfigDir
	originalGOOS := runtimeGOOS
	originalGetenv := osGetenv
	defer func() {
		osUserConfigDir = originalUserConfigDir
		runtimeGOOS = originalGOOS
		osGetenv = originalGetenv
	}()

	osUserConfigDir = func() (string, error) { return "/cfg", nil }
	runtimeGOOS = "linux"
	osGetenv = noEnv

	got := CandidatePaths("home.toml")
	assert.Equal(t, filepath.Join("/cfg", "strata", "home.toml"), got[0])
	assert.Len(t, got, 3)
}
