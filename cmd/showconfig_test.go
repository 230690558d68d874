package cmd

import (
	"bytes"
	"strings"
	"testing"

	"strata/internal/config"
)

func TestShowConfigOutput(t *testing.T) {
	originalCfg := cfg
	defer func() { cfg = originalCfg }()

	level := "debug"
	repo := "/backup/repo"
	hook, err := config.ParseCommandInput(`sh -c "echo hello"`)
	if err != nil {
		t.Fatalf("Error parsing hook command: %v", err)
	}

	cfg = config.Default()
	cfg.Global.LogLevel = &level
	cfg.Global.RunBefore = hook
	cfg.Repository.Repository = &repo
	cfg.Backup.Sources = []string{"/home"}

	showCmd := newShowConfigCmd()
	var buf bytes.Buffer
	showCmd.SetOut(&buf)

	if err := showCmd.RunE(showCmd, nil); err != nil {
		t.Fatalf("Error printing configuration: %v", err)
	}

	out := buf.String()
	expectedFragments := []string{
		"[global]",
		`log-level = "debug"`,
		`run-before = ["sh", "-c", "echo hello"]`,
		`repository = "/backup/repo"`,
		`sources = ["/home"]`,
	}
	for _, fragment := range expectedFragments {
		if !strings.Contains(out, fragment) {
			t.Errorf("Expected output to contain %q. Got: %q", fragment, out)
		}
	}
}
