package engine

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"strata/pkg/logging"
)

// runCaptured executes the engine binary and returns its standard output.
// Standard error is captured separately and folded into the returned error
// so failures carry the engine's own diagnostics.
func runCaptured(ctx context.Context, binary string, args []string) ([]byte, error) {
	logging.Debug("engine", "running %s %s", binary, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, binary, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if err := cmd.Run(); err != nil {
		return stdoutBuf.Bytes(), fmt.Errorf("failed to execute '%s %s': %w. Stderr: %s",
			binary, strings.Join(args, " "), err, strings.TrimSpace(stderrBuf.String()))
	}
	return stdoutBuf.Bytes(), nil
}

// runInteractive executes the engine binary attached to the caller's stdio,
// for operations whose output the user should see as it happens.
func runInteractive(ctx context.Context, binary string, args []string) error {
	logging.Debug("engine", "running %s %s", binary, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to execute '%s %s': %w", binary, strings.Join(args, " "), err)
	}
	return nil
}
