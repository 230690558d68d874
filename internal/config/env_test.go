package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := Config{
		Global: GlobalOptions{
			LogLevel:  strPtr("info"),
			RunBefore: CommandInput{"echo", "from-profile"},
		},
	}

	err := cfg.ApplyEnvOverrides(lookupFrom(map[string]string{
		"STRATA_DRY_RUN":           "true",
		"STRATA_LOG_LEVEL":         "debug",
		"STRATA_LOG_FILE":          "/tmp/strata.log",
		"STRATA_PROGRESS_INTERVAL": "30s",
		"STRATA_RUN_BEFORE":        `sh -c "echo from-env"`,
		"STRATA_REPOSITORY":        "/srv/env-repo",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.Global.DryRun)
	assert.Equal(t, "debug", *cfg.Global.LogLevel)
	assert.Equal(t, "/tmp/strata.log", *cfg.Global.LogFile)
	assert.Equal(t, 30*time.Second, cfg.Global.ProgressInterval.Std())
	assert.Equal(t, CommandInput{"sh", "-c", "echo from-env"}, cfg.Global.RunBefore)
	assert.Equal(t, "/srv/env-repo", *cfg.Repository.Repository)
}

func TestApplyEnvOverridesUntouchedWithoutVariables(t *testing.T) {
	cfg := Config{Global: GlobalOptions{CheckIndex: true}}
	require.NoError(t, cfg.ApplyEnvOverrides(lookupFrom(nil)))
	assert.True(t, cfg.Global.CheckIndex)
	assert.Nil(t, cfg.Global.LogLevel)
}

func TestApplyEnvOverridesRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad bool", map[string]string{"STRATA_DRY_RUN": "maybe"}},
		{"bad duration", map[string]string{"STRATA_PROGRESS_INTERVAL": "soon"}},
		{"bad command quoting", map[string]string{"STRATA_RUN_AFTER": `"unterminated`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			assert.Error(t, cfg.ApplyEnvOverrides(lookupFrom(tt.env)))
		})
	}
}
