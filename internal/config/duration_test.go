package config

import (
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationParsing(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"90s", 90 * time.Second},
		{"1h30m", 90 * time.Minute},
		{"10d", 240 * time.Hour},
		{"2w", 14 * 24 * time.Hour},
	}

	for _, tt := range tests {
		var d Duration
		require.NoError(t, d.UnmarshalText([]byte(tt.input)), "input %q", tt.input)
		assert.Equal(t, tt.want, d.Std(), "input %q", tt.input)
	}

	var d Duration
	assert.Error(t, d.UnmarshalText([]byte("soon")))
}

func TestDurationInProfileDocument(t *testing.T) {
	var cfg Config
	_, err := toml.Decode(`
[global]
progress-interval = "1m"

[forget]
keep-within = "10d"
`, &cfg)
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.Global.ProgressInterval.Std())
	assert.Equal(t, 240*time.Hour, cfg.Forget.KeepWithin.Std())
}
