package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables recognized next to profiles and flags. They beat
// profile values and lose to explicitly-set CLI flags.
const (
	EnvUseProfile       = "STRATA_USE_PROFILE"
	EnvDryRun           = "STRATA_DRY_RUN"
	EnvCheckIndex       = "STRATA_CHECK_INDEX"
	EnvLogLevel         = "STRATA_LOG_LEVEL"
	EnvLogFile          = "STRATA_LOG_FILE"
	EnvNoProgress       = "STRATA_NO_PROGRESS"
	EnvProgressInterval = "STRATA_PROGRESS_INTERVAL"
	EnvRunBefore        = "STRATA_RUN_BEFORE"
	EnvRunAfter         = "STRATA_RUN_AFTER"
	EnvRepository       = "STRATA_REPOSITORY"
	EnvPasswordFile     = "STRATA_PASSWORD_FILE"
)

// ApplyEnvOverrides overlays STRATA_* environment variables onto the
// resolved configuration. The lookup is a parameter so tests can run
// without touching the real environment; callers pass os.LookupEnv.
//
// EnvUseProfile is not handled here: profile selection has to happen before
// resolution and is read by the command layer.
func (c *Config) ApplyEnvOverrides(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDryRun); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDryRun, err)
		}
		c.Global.DryRun = b
	}
	if v, ok := lookup(EnvCheckIndex); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCheckIndex, err)
		}
		c.Global.CheckIndex = b
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Global.LogLevel = &v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.Global.LogFile = &v
	}
	if v, ok := lookup(EnvNoProgress); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvNoProgress, err)
		}
		c.Global.NoProgress = b
	}
	if v, ok := lookup(EnvProgressInterval); ok {
		var d Duration
		if err := d.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%s: %w", EnvProgressInterval, err)
		}
		c.Global.ProgressInterval = &d
	}
	if v, ok := lookup(EnvRunBefore); ok {
		parsed, err := ParseCommandInput(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRunBefore, err)
		}
		c.Global.RunBefore = parsed
	}
	if v, ok := lookup(EnvRunAfter); ok {
		parsed, err := ParseCommandInput(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRunAfter, err)
		}
		c.Global.RunAfter = parsed
	}
	if v, ok := lookup(EnvRepository); ok {
		c.Repository.Repository = &v
	}
	if v, ok := lookup(EnvPasswordFile); ok {
		c.Repository.PasswordFile = &v
	}
	return nil
}

// ExportEnv publishes the [global] env entries into the process
// environment so hooks and the engine child process see them.
func (g GlobalOptions) ExportEnv() error {
	for key, value := range g.Env {
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
	}
	return nil
}
