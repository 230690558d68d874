package config

// Config is the top-level configuration document for strata. A parsed
// profile and the accumulated result of resolution share this shape.
type Config struct {
	Global         GlobalOptions     `toml:"global"`
	Repository     RepositoryOptions `toml:"repository"`
	SnapshotFilter SnapshotFilter    `toml:"snapshot-filter"`
	Backup         BackupOptions     `toml:"backup"`
	Forget         ForgetOptions     `toml:"forget"`
	Copy           CopyOptions       `toml:"copy"`
}

// GlobalOptions holds settings that apply to every command.
type GlobalOptions struct {
	// UseProfiles names further profiles that are resolved and merged in
	// before the profile that lists them.
	UseProfiles []string `toml:"use-profiles,omitempty"`

	DryRun     bool `toml:"dry-run,omitempty"`
	CheckIndex bool `toml:"check-index,omitempty"`

	LogLevel *string `toml:"log-level,omitempty"` // trace, debug, info, warn, error or off
	LogFile  *string `toml:"log-file,omitempty"`

	NoProgress       bool      `toml:"no-progress,omitempty"`
	ProgressInterval *Duration `toml:"progress-interval,omitempty"`

	// Env entries are exported into the process environment after
	// resolution, so hooks and the engine child process inherit them.
	Env map[string]string `toml:"env,omitempty"`

	// RunBefore and RunAfter fire around the main action of every
	// repository command.
	RunBefore CommandInput `toml:"run-before,omitempty"`
	RunAfter  CommandInput `toml:"run-after,omitempty"`
}

// RepositoryOptions describes how to reach the backup repository. The
// values are handed to the external engine binary and never interpreted
// beyond argument assembly.
type RepositoryOptions struct {
	Repository      *string      `toml:"repository,omitempty"`
	PasswordFile    *string      `toml:"password-file,omitempty"`
	PasswordCommand CommandInput `toml:"password-command,omitempty"`
	CacheDir        *string      `toml:"cache-dir,omitempty"`
	NoCache         bool         `toml:"no-cache,omitempty"`

	// Engine overrides the backup engine binary, default "restic".
	Engine *string `toml:"engine,omitempty"`

	// Options are passed through as repeated -o key=value arguments.
	Options map[string]string `toml:"options,omitempty"`
}

// SnapshotFilter restricts which snapshots commands operate on.
type SnapshotFilter struct {
	FilterHosts []string `toml:"filter-hosts,omitempty"`
	FilterPaths []string `toml:"filter-paths,omitempty"`
	FilterTags  []string `toml:"filter-tags,omitempty"`
}

// BackupOptions configures the backup command.
type BackupOptions struct {
	Sources       []string `toml:"sources,omitempty"`
	Excludes      []string `toml:"excludes,omitempty"`
	Tags          []string `toml:"tags,omitempty"`
	Host          *string  `toml:"host,omitempty"`
	OneFileSystem bool     `toml:"one-file-system,omitempty"`
	IgnoreCtime   bool     `toml:"ignore-ctime,omitempty"`
}

// ForgetOptions configures the retention policy applied by forget.
type ForgetOptions struct {
	KeepLast    *int      `toml:"keep-last,omitempty"`
	KeepDaily   *int      `toml:"keep-daily,omitempty"`
	KeepWeekly  *int      `toml:"keep-weekly,omitempty"`
	KeepMonthly *int      `toml:"keep-monthly,omitempty"`
	KeepYearly  *int      `toml:"keep-yearly,omitempty"`
	KeepWithin  *Duration `toml:"keep-within,omitempty"`
	Prune       bool      `toml:"prune,omitempty"`
}

// CopyOptions lists the repositories the copy command copies snapshots to.
type CopyOptions struct {
	Targets []RepositoryOptions `toml:"targets,omitempty"`
}

// IsEmpty reports whether no filter criteria are set.
func (f SnapshotFilter) IsEmpty() bool {
	return len(f.FilterHosts) == 0 && len(f.FilterPaths) == 0 && len(f.FilterTags) == 0
}
