package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"strata/internal/config"
	"strata/internal/engine"
	"strata/internal/progress"
	"strata/pkg/logging"
)

// cfg is the configuration every subcommand works from. initConfig builds it
// before any RunE fires: defaults, then profiles, then STRATA_* environment
// variables, then explicitly set persistent flags.
var cfg config.Config

// Persistent flag storage. A value only takes effect when its flag was
// explicitly set, so unset flags never shadow profile or environment values.
var (
	flagUseProfiles      []string
	flagDryRun           bool
	flagCheckIndex       bool
	flagLogLevel         string
	flagLogFile          string
	flagNoProgress       bool
	flagProgressInterval time.Duration
	flagRunBefore        config.CommandInput
	flagRunAfter         config.CommandInput
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "strata",
	Short: "Profile-layered front end for a restic-compatible backup engine",
	Long: `strata resolves layered TOML configuration profiles, fires the command
hooks they configure and drives an external restic-compatible backup
engine for the actual repository work.

Profiles are looked up in the user configuration directory, the system
configuration directory and the working directory. A profile can pull in
further profiles through [global] use-profiles; values of the referencing
profile win over the profiles it includes.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. broken profiles, failed engine runs)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set up version template
	rootCmd.SetVersionTemplate(`{{printf "strata version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// initConfig resolves the configuration for the invoked command. Merge log
// entries are buffered during resolution and flushed once the resolved log
// level is known.
func initConfig(cmd *cobra.Command, args []string) error {
	cfg = config.Default()

	var mergeLog config.MergeLog
	for _, name := range profileNames() {
		if err := cfg.MergeProfile(name, &mergeLog, logging.LevelInfo); err != nil {
			return err
		}
	}

	if err := cfg.ApplyEnvOverrides(os.LookupEnv); err != nil {
		return err
	}
	applyFlagOverrides()

	level := logging.LevelInfo
	if cfg.Global.LogLevel != nil {
		parsed, err := logging.ParseLevel(*cfg.Global.LogLevel)
		if err != nil {
			return err
		}
		level = parsed
	}
	logFile := ""
	if cfg.Global.LogFile != nil {
		logFile = *cfg.Global.LogFile
	}
	if err := logging.Init(level, logFile); err != nil {
		return err
	}
	mergeLog.Flush()

	if err := cfg.Global.ExportEnv(); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		text.DisableColors()
	}
	return nil
}

// profileNames returns the profiles to resolve, in order: -P flags, then
// STRATA_USE_PROFILE (comma separated), then the default profile.
func profileNames() []string {
	if len(flagUseProfiles) > 0 {
		return flagUseProfiles
	}
	if v, ok := os.LookupEnv(config.EnvUseProfile); ok {
		var names []string
		for _, name := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				names = append(names, trimmed)
			}
		}
		if len(names) > 0 {
			return names
		}
	}
	return []string{config.DefaultProfile}
}

// applyFlagOverrides overlays explicitly set persistent flags onto the
// resolved configuration. Flags are the last layer, above environment
// variables and profiles.
func applyFlagOverrides() {
	flags := rootCmd.PersistentFlags()
	if flags.Changed("dry-run") {
		cfg.Global.DryRun = flagDryRun
	}
	if flags.Changed("check-index") {
		cfg.Global.CheckIndex = flagCheckIndex
	}
	if flags.Changed("log-level") {
		cfg.Global.LogLevel = &flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Global.LogFile = &flagLogFile
	}
	if flags.Changed("no-progress") {
		cfg.Global.NoProgress = flagNoProgress
	}
	if flags.Changed("progress-interval") {
		interval := config.Duration(flagProgressInterval)
		cfg.Global.ProgressInterval = &interval
	}
	if flags.Changed("run-before") {
		cfg.Global.RunBefore = flagRunBefore
	}
	if flags.Changed("run-after") {
		cfg.Global.RunAfter = flagRunAfter
	}
}

// runWithHooks fires the run-before hook, the action, then the run-after
// hook. run-after only fires when the action succeeded. A hook exiting
// non-zero is a warning; a hook that cannot be spawned aborts.
func runWithHooks(label string, action func() error) error {
	if err := cfg.Global.RunBefore.Run("run-before (" + label + ")"); err != nil {
		return err
	}
	if err := action(); err != nil {
		return err
	}
	return cfg.Global.RunAfter.Run("run-after (" + label + ")")
}

// openEngine builds the engine client for the resolved repository and runs
// the index check first when check-index is set.
func openEngine(ctx context.Context) (*engine.Client, error) {
	client, err := engine.Open(cfg.Repository, cfg.Global.DryRun)
	if err != nil {
		return nil, err
	}
	if cfg.Global.CheckIndex {
		if err := client.Check(ctx); err != nil {
			return nil, fmt.Errorf("repository check failed: %w", err)
		}
	}
	return client, nil
}

// newSpinner builds a progress spinner honoring the resolved progress
// settings.
func newSpinner(message string) *progress.Spinner {
	var interval time.Duration
	if cfg.Global.ProgressInterval != nil {
		interval = cfg.Global.ProgressInterval.Std()
	}
	return progress.New(message, cfg.Global.NoProgress, interval)
}

func init() {
	// Assigned here rather than in the rootCmd literal: initConfig reads
	// rootCmd's flag set, which would make package initialization cyclic.
	rootCmd.PersistentPreRunE = initConfig

	rootCmd.AddCommand(newBackupCmd())
	rootCmd.AddCommand(newCopyCmd())
	rootCmd.AddCommand(newForgetCmd())
	rootCmd.AddCommand(newLockCmd())
	rootCmd.AddCommand(newSnapshotsCmd())
	rootCmd.AddCommand(newShowConfigCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newVersionCmd())

	flags := rootCmd.PersistentFlags()
	flags.StringArrayVarP(&flagUseProfiles, "use-profile", "P", nil,
		"profile to resolve, repeatable ("+config.EnvUseProfile+")")
	flags.BoolVarP(&flagDryRun, "dry-run", "n", false,
		"plan only, do not change the repository ("+config.EnvDryRun+")")
	flags.BoolVar(&flagCheckIndex, "check-index", false,
		"check the repository before the main action ("+config.EnvCheckIndex+")")
	flags.StringVar(&flagLogLevel, "log-level", "",
		"minimum level to log: trace, debug, info, warn, error or off ("+config.EnvLogLevel+")")
	flags.StringVar(&flagLogFile, "log-file", "",
		"write logs to this file instead of stderr ("+config.EnvLogFile+")")
	flags.BoolVar(&flagNoProgress, "no-progress", false,
		"disable progress indicators ("+config.EnvNoProgress+")")
	flags.DurationVar(&flagProgressInterval, "progress-interval", 0,
		"progress refresh interval ("+config.EnvProgressInterval+")")
	flags.Var(&flagRunBefore, "run-before",
		"command to run before the main action ("+config.EnvRunBefore+")")
	flags.Var(&flagRunAfter, "run-after",
		"command to run after a successful main action ("+config.EnvRunAfter+")")
}
