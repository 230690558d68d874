package cmd

import (
	"io"
	"strings"
	"testing"

	"strata/internal/config"
)

func TestSnapshotsFlags(t *testing.T) {
	snapshotsCmd := newSnapshotsCmd()

	output := snapshotsCmd.Flags().Lookup("output")
	if output == nil {
		t.Fatal("Expected snapshots flag --output to be registered")
	}
	if output.DefValue != "table" {
		t.Errorf("Expected --output default 'table', got %q", output.DefValue)
	}

	if snapshotsCmd.Flags().ShorthandLookup("g") == nil {
		t.Error("Expected -g shorthand for --group-by")
	}
	if snapshotsCmd.Flags().Lookup("long") == nil {
		t.Error("Expected snapshots flag --long to be registered")
	}
}

func TestSnapshotsRejectsBadGroupBy(t *testing.T) {
	originalCfg := cfg
	defer func() { cfg = originalCfg }()
	cfg = config.Config{}

	snapshotsCmd := newSnapshotsCmd()
	snapshotsCmd.SetOut(io.Discard)
	snapshotsCmd.SetErr(io.Discard)
	snapshotsCmd.SetArgs([]string{"--group-by", "color"})

	err := snapshotsCmd.Execute()
	if err == nil {
		t.Fatal("Expected error for unknown grouping criterion")
	}
	if !strings.Contains(err.Error(), "unknown grouping criterion") {
		t.Errorf("Expected grouping criterion error, got: %v", err)
	}
}

func TestSnapshotsRequiresRepository(t *testing.T) {
	originalCfg := cfg
	defer func() { cfg = originalCfg }()
	cfg = config.Config{}

	snapshotsCmd := newSnapshotsCmd()
	snapshotsCmd.SetOut(io.Discard)
	snapshotsCmd.SetErr(io.Discard)
	snapshotsCmd.SetArgs([]string{})

	err := snapshotsCmd.Execute()
	if err == nil {
		t.Fatal("Expected error without a repository")
	}
	if !strings.Contains(err.Error(), "no repository configured") {
		t.Errorf("Expected 'no repository configured' error, got: %v", err)
	}
}
