package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strata/pkg/logging"
)

func TestParseCommandInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    CommandInput
		wantErr bool
	}{
		{
			name:  "plain words",
			input: "restic check",
			want:  CommandInput{"restic", "check"},
		},
		{
			name:  "quoted argument keeps spaces",
			input: `run-me --flag "value with spaces"`,
			want:  CommandInput{"run-me", "--flag", "value with spaces"},
		},
		{
			name:  "empty string means unset",
			input: "",
			want:  CommandInput{},
		},
		{
			name:    "unterminated quote fails",
			input:   `"unterminated`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommandInput(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCommandInputAccessors(t *testing.T) {
	var unset CommandInput
	assert.False(t, unset.IsSet())
	assert.Equal(t, "", unset.Command())
	assert.Nil(t, unset.Args())

	set := CommandInput{"rclone", "sync", "--dry-run"}
	assert.True(t, set.IsSet())
	assert.Equal(t, "rclone", set.Command())
	assert.Equal(t, []string{"sync", "--dry-run"}, set.Args())
}

func TestCommandInputTOMLShapes(t *testing.T) {
	var fromString struct {
		Hook CommandInput `toml:"hook"`
	}
	_, err := toml.Decode(`hook = "sh -c 'echo hi'"`, &fromString)
	require.NoError(t, err)
	assert.Equal(t, CommandInput{"sh", "-c", "echo hi"}, fromString.Hook)

	var fromArray struct {
		Hook CommandInput `toml:"hook"`
	}
	_, err = toml.Decode(`hook = ["sh", "-c", "echo hi"]`, &fromArray)
	require.NoError(t, err)
	assert.Equal(t, fromString.Hook, fromArray.Hook)

	var bad struct {
		Hook CommandInput `toml:"hook"`
	}
	_, err = toml.Decode(`hook = ["sh", 1]`, &bad)
	assert.Error(t, err)
}

func TestCommandInputRun(t *testing.T) {
	t.Run("unset command is a no-op", func(t *testing.T) {
		var buf bytes.Buffer
		logging.InitForCLI(logging.LevelWarn, &buf)

		var c CommandInput
		assert.NoError(t, c.Run("run-before (backup)"))
		assert.Empty(t, buf.String())
	})

	t.Run("non-zero exit only warns", func(t *testing.T) {
		var buf bytes.Buffer
		logging.InitForCLI(logging.LevelWarn, &buf)

		c := CommandInput{"false"}
		assert.NoError(t, c.Run("run-before (backup)"))
		assert.Contains(t, buf.String(), "was not successful")
	})

	t.Run("spawn failure is an error", func(t *testing.T) {
		var buf bytes.Buffer
		logging.InitForCLI(logging.LevelWarn, &buf)

		c := CommandInput{"/definitely/not/an/executable"}
		err := c.Run("run-after (backup)")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "run-after (backup)")
	})
}

func TestCommandInputFlagValue(t *testing.T) {
	var c CommandInput
	require.NoError(t, c.Set(`notify-send "backup done"`))
	assert.Equal(t, CommandInput{"notify-send", "backup done"}, c)
	assert.Equal(t, "command", c.Type())
	assert.True(t, strings.HasPrefix(c.String(), "notify-send"))

	assert.Error(t, c.Set(`"unterminated`))
}
