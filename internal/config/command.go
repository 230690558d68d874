package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/BurntSushi/toml"
	shellwords "github.com/mattn/go-shellwords"
	"github.com/spf13/pflag"

	"strata/pkg/logging"
)

// CommandInput is an external command with its arguments. An empty value
// means the command is not configured and running it is a no-op.
//
// In a profile it can be written either as one shell-syntax string
//
//	run-before = "sh -c 'echo start'"
//
// or as an array of program and arguments
//
//	run-before = ["sh", "-c", "echo start"]
//
// Both forms yield the same value.
type CommandInput []string

var (
	_ toml.Unmarshaler = (*CommandInput)(nil)
	_ pflag.Value      = (*CommandInput)(nil)
)

// ParseCommandInput splits a shell-syntax string into a CommandInput.
func ParseCommandInput(s string) (CommandInput, error) {
	words, err := shellwords.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("parsing command %q: %w", s, err)
	}
	return CommandInput(words), nil
}

// IsSet reports whether a command is configured.
func (c CommandInput) IsSet() bool {
	return len(c) > 0
}

// Command returns the program to execute, or "" when unset.
func (c CommandInput) Command() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// Args returns the arguments passed to the program.
func (c CommandInput) Args() []string {
	if len(c) < 2 {
		return nil
	}
	return c[1:]
}

// Run executes the command and waits for it to finish. The label names the
// hook in log messages, e.g. "run-before (backup)". An unset command
// succeeds immediately. A command that runs but exits non-zero only logs a
// warning; failing to start it at all is an error.
func (c CommandInput) Run(label string) error {
	if !c.IsSet() {
		logging.Trace("hooks", "not calling %s: no command configured", label)
		return nil
	}
	logging.Debug("hooks", "calling %s: %q", label, []string(c))

	cmd := exec.Command(c.Command(), c.Args()...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logging.Warn("hooks", "running %s was not successful: %v", label, exitErr)
		return nil
	}
	if err != nil {
		return fmt.Errorf("running %s: %w", label, err)
	}
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler, accepting both the string and
// the array representation.
func (c *CommandInput) UnmarshalTOML(value interface{}) error {
	switch v := value.(type) {
	case []interface{}:
		words := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("command arrays may only contain strings, got %T", item)
			}
			words = append(words, s)
		}
		*c = words
		return nil
	case string:
		parsed, err := ParseCommandInput(v)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	default:
		return fmt.Errorf("command must be a string or an array of strings, got %T", value)
	}
}

// String implements pflag.Value.
func (c CommandInput) String() string {
	return strings.Join(c, " ")
}

// Set implements pflag.Value, parsing the flag argument as shell syntax.
func (c *CommandInput) Set(s string) error {
	parsed, err := ParseCommandInput(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Type implements pflag.Value.
func (c CommandInput) Type() string {
	return "command"
}
