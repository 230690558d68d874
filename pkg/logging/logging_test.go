package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		name string
		want LogLevel
	}{
		{"trace", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"ERROR", LevelError},
		{" off ", LevelOff},
	}
	for _, c := range cases {
		got, err := ParseLevel(c.name)
		if err != nil {
			t.Errorf("ParseLevel(%q) returned error: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestParseLevelRejectsUnknown(t *testing.T) {
	_, err := ParseLevel("loud")
	if err == nil {
		t.Fatal("Expected error for unknown level name")
	}
	if !strings.Contains(err.Error(), "loud") {
		t.Errorf("Expected error to quote the bad name, got: %v", err)
	}
}

func TestLogLevelString(t *testing.T) {
	cases := map[LogLevel]string{
		LevelTrace: "TRACE",
		LevelDebug: "DEBUG",
		LevelInfo:  "INFO",
		LevelWarn:  "WARN",
		LevelError: "ERROR",
		LevelOff:   "OFF",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func TestInitForCLIFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)

	Info("config", "should be filtered")
	Warn("config", "watch out for %s", "gaps")
	Error("engine", errors.New("exit 1"), "run failed")

	out := buf.String()
	if strings.Contains(out, "should be filtered") {
		t.Errorf("Info message leaked through warn filter: %q", out)
	}
	if !strings.Contains(out, "watch out for gaps") {
		t.Errorf("Expected warning in output, got: %q", out)
	}
	if !strings.Contains(out, "subsystem=config") {
		t.Errorf("Expected subsystem attribute, got: %q", out)
	}
	if !strings.Contains(out, "error=\"exit 1\"") {
		t.Errorf("Expected error attribute, got: %q", out)
	}
}

func TestLogArbitraryLevel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelTrace, &buf)

	Log(LevelInfo, "config", "using config %s", "/etc/strata/strata.toml")

	if !strings.Contains(buf.String(), "using config /etc/strata/strata.toml") {
		t.Errorf("Expected flushed entry in output, got: %q", buf.String())
	}
}

func TestInitWritesToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "strata.log")

	if err := Init(LevelDebug, logFile); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	defer Close()

	Debug("test", "into the file")

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Reading log file: %v", err)
	}
	if !strings.Contains(string(data), "into the file") {
		t.Errorf("Expected debug entry in log file, got: %q", string(data))
	}
}
