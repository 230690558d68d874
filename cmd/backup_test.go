package cmd

import (
	"io"
	"strings"
	"testing"

	"strata/internal/config"
)

func TestBackupFlags(t *testing.T) {
	backupCmd := newBackupCmd()

	for _, name := range []string{"exclude", "tag", "host", "one-file-system", "ignore-ctime"} {
		if backupCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected backup flag --%s to be registered", name)
		}
	}
}

func TestBackupRequiresSources(t *testing.T) {
	originalCfg := cfg
	defer func() { cfg = originalCfg }()
	cfg = config.Config{}

	backupCmd := newBackupCmd()
	backupCmd.SetOut(io.Discard)
	backupCmd.SetErr(io.Discard)
	backupCmd.SetArgs([]string{})

	err := backupCmd.Execute()
	if err == nil {
		t.Fatal("Expected error when no sources are configured")
	}
	if !strings.Contains(err.Error(), "nothing to back up") {
		t.Errorf("Expected 'nothing to back up' error, got: %v", err)
	}
}

func TestBackupRequiresRepository(t *testing.T) {
	originalCfg := cfg
	defer func() { cfg = originalCfg }()
	cfg = config.Config{}
	cfg.Backup.Sources = []string{"/home"}

	backupCmd := newBackupCmd()
	backupCmd.SetOut(io.Discard)
	backupCmd.SetErr(io.Discard)
	backupCmd.SetArgs([]string{})

	err := backupCmd.Execute()
	if err == nil {
		t.Fatal("Expected error when no repository is configured")
	}
	if !strings.Contains(err.Error(), "no repository configured") {
		t.Errorf("Expected 'no repository configured' error, got: %v", err)
	}
}
