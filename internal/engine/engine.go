// Package engine shells out to a restic-compatible backup engine. strata
// resolves configuration and runs hooks; every repository operation becomes
// one engine child process. Repository internals, locking and encryption
// are entirely the engine's business.
package engine

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"strata/internal/config"
)

// DefaultBinary is the engine executed when [repository] engine is not set.
const DefaultBinary = "restic"

// Client runs operations against one repository.
type Client struct {
	binary string
	repo   config.RepositoryOptions
	dryRun bool
}

// Open validates the repository configuration and returns a client for it.
// Nothing is executed here; the engine is spawned once per operation.
func Open(repo config.RepositoryOptions, dryRun bool) (*Client, error) {
	if repo.Repository == nil || *repo.Repository == "" {
		return nil, fmt.Errorf("no repository configured, set [repository] repository in a profile or %s", config.EnvRepository)
	}
	binary := DefaultBinary
	if repo.Engine != nil && *repo.Engine != "" {
		binary = *repo.Engine
	}
	return &Client{binary: binary, repo: repo, dryRun: dryRun}, nil
}

// Binary returns the engine executable this client spawns.
func (c *Client) Binary() string {
	return c.binary
}

// Snapshots lists the repository's snapshots. With explicit ids only those
// snapshots are fetched; otherwise the filter is applied locally. The result
// is sorted by snapshot time.
func (c *Client) Snapshots(ctx context.Context, filter config.SnapshotFilter, ids []string) ([]Snapshot, error) {
	args := append(c.baseArgs(), "snapshots", "--json")
	args = append(args, ids...)

	out, err := runCaptured(ctx, c.binary, args)
	if err != nil {
		return nil, err
	}
	snapshots, err := decodeSnapshots(out)
	if err != nil {
		return nil, fmt.Errorf("parsing engine snapshot list: %w", err)
	}
	if len(ids) == 0 {
		snapshots = applyFilter(snapshots, filter)
	}
	sortByTime(snapshots)
	return snapshots, nil
}

// Check verifies repository consistency. It runs when check-index is set,
// before the main action.
func (c *Client) Check(ctx context.Context) error {
	return runInteractive(ctx, c.binary, append(c.baseArgs(), "check"))
}

// Backup backs up the configured sources.
func (c *Client) Backup(ctx context.Context, opts config.BackupOptions) error {
	args := append(c.baseArgs(), backupArgs(opts, c.dryRun)...)
	return runInteractive(ctx, c.binary, args)
}

// Forget applies the retention policy, optionally restricted to explicit
// snapshot ids.
func (c *Client) Forget(ctx context.Context, opts config.ForgetOptions, filter config.SnapshotFilter, ids []string) error {
	args := append(c.baseArgs(), forgetArgs(opts, filter, ids, c.dryRun)...)
	return runInteractive(ctx, c.binary, args)
}

// Lock extends the protection of the given snapshots.
func (c *Client) Lock(ctx context.Context, opts LockOptions, ids []string) error {
	args := append(c.baseArgs(), lockArgs(opts, ids)...)
	return runInteractive(ctx, c.binary, args)
}

// Copy copies snapshots from this repository into the target repository.
// The engine runs against the target with this repository as the source.
func (c *Client) Copy(ctx context.Context, target config.RepositoryOptions, ids []string) error {
	args, err := copyArgs(c.repo, target, ids)
	if err != nil {
		return err
	}
	return runInteractive(ctx, c.binary, args)
}

// baseArgs assembles the repository-selection arguments shared by every
// operation.
func (c *Client) baseArgs() []string {
	return repoArgs(c.repo)
}

func repoArgs(repo config.RepositoryOptions) []string {
	args := []string{"--repo", *repo.Repository}
	if repo.PasswordFile != nil && *repo.PasswordFile != "" {
		args = append(args, "--password-file", *repo.PasswordFile)
	}
	if repo.PasswordCommand.IsSet() {
		args = append(args, "--password-command", repo.PasswordCommand.String())
	}
	if repo.CacheDir != nil && *repo.CacheDir != "" {
		args = append(args, "--cache-dir", *repo.CacheDir)
	}
	if repo.NoCache {
		args = append(args, "--no-cache")
	}
	for _, key := range sortedKeys(repo.Options) {
		args = append(args, "-o", key+"="+repo.Options[key])
	}
	return args
}

// fromRepoArgs renders the source-repository flags used by copy.
func fromRepoArgs(repo config.RepositoryOptions) []string {
	args := []string{"--from-repo", *repo.Repository}
	if repo.PasswordFile != nil && *repo.PasswordFile != "" {
		args = append(args, "--from-password-file", *repo.PasswordFile)
	}
	if repo.PasswordCommand.IsSet() {
		args = append(args, "--from-password-command", repo.PasswordCommand.String())
	}
	return args
}

func backupArgs(opts config.BackupOptions, dryRun bool) []string {
	args := []string{"backup"}
	args = append(args, opts.Sources...)
	for _, exclude := range opts.Excludes {
		args = append(args, "--exclude", exclude)
	}
	for _, tag := range opts.Tags {
		args = append(args, "--tag", tag)
	}
	if opts.Host != nil && *opts.Host != "" {
		args = append(args, "--host", *opts.Host)
	}
	if opts.OneFileSystem {
		args = append(args, "--one-file-system")
	}
	if opts.IgnoreCtime {
		args = append(args, "--ignore-ctime")
	}
	if dryRun {
		args = append(args, "--dry-run")
	}
	return args
}

func forgetArgs(opts config.ForgetOptions, filter config.SnapshotFilter, ids []string, dryRun bool) []string {
	args := []string{"forget"}
	args = append(args, ids...)
	if opts.KeepLast != nil {
		args = append(args, "--keep-last", strconv.Itoa(*opts.KeepLast))
	}
	if opts.KeepDaily != nil {
		args = append(args, "--keep-daily", strconv.Itoa(*opts.KeepDaily))
	}
	if opts.KeepWeekly != nil {
		args = append(args, "--keep-weekly", strconv.Itoa(*opts.KeepWeekly))
	}
	if opts.KeepMonthly != nil {
		args = append(args, "--keep-monthly", strconv.Itoa(*opts.KeepMonthly))
	}
	if opts.KeepYearly != nil {
		args = append(args, "--keep-yearly", strconv.Itoa(*opts.KeepYearly))
	}
	if opts.KeepWithin != nil {
		args = append(args, "--keep-within", retentionSpan(opts.KeepWithin.Std()))
	}
	if opts.Prune {
		args = append(args, "--prune")
	}
	// Explicit ids already select the snapshots; otherwise the filter does.
	if len(ids) == 0 {
		for _, host := range filter.FilterHosts {
			args = append(args, "--host", host)
		}
		for _, path := range filter.FilterPaths {
			args = append(args, "--path", path)
		}
		for _, tag := range filter.FilterTags {
			args = append(args, "--tag", tag)
		}
	}
	if dryRun {
		args = append(args, "--dry-run")
	}
	return args
}

func lockArgs(opts LockOptions, ids []string) []string {
	args := []string{"lock"}
	if opts.AlwaysExtend {
		args = append(args, "--always-extend-lock")
	}
	args = append(args, "--duration", opts.Duration.String())
	args = append(args, ids...)
	return args
}

func copyArgs(source, target config.RepositoryOptions, ids []string) ([]string, error) {
	if target.Repository == nil || *target.Repository == "" {
		return nil, fmt.Errorf("copy target has no repository configured")
	}
	args := repoArgs(target)
	args = append(args, "copy")
	args = append(args, fromRepoArgs(source)...)
	args = append(args, ids...)
	return args, nil
}

// retentionSpan renders a duration in the engine's retention syntax, which
// knows days and hours but nothing smaller.
func retentionSpan(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	switch {
	case days > 0 && hours > 0:
		return fmt.Sprintf("%dd%dh", days, hours)
	case days > 0:
		return fmt.Sprintf("%dd", days)
	default:
		return fmt.Sprintf("%dh", hours)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
