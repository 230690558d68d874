package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// githubRepoSlug is the GitHub repository self-update checks for releases
var githubRepoSlug = "strata-backup/strata"

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update strata to the latest released version",
		Long: `Checks for the latest release of strata on GitHub and, if the running
binary is older, downloads the release asset for this platform and
replaces the binary in place.`,
		RunE: runSelfUpdate,
	}
}

// runSelfUpdate tolerates a nil cmd so the dev-version guard can be
// exercised directly.
func runSelfUpdate(cmd *cobra.Command, args []string) error {
	version := rootCmd.Version
	if version == "" || version == "dev" {
		return fmt.Errorf("cannot self-update a development version (%q), install a released build first", version)
	}

	ctx := context.Background()
	if cmd != nil && cmd.Context() != nil {
		ctx = cmd.Context()
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(githubRepoSlug))
	if err != nil {
		return fmt.Errorf("checking %s for releases: %w", githubRepoSlug, err)
	}
	if !found {
		return fmt.Errorf("no release for %s/%s found in %s", runtime.GOOS, runtime.GOARCH, githubRepoSlug)
	}

	if latest.LessOrEqual(version) {
		fmt.Printf("strata %s is already the latest version\n", version)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("locating the running executable: %w", err)
	}

	fmt.Printf("updating strata %s to %s\n", version, latest.Version())
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("updating binary: %w", err)
	}

	fmt.Printf("successfully updated to strata %s\n", latest.Version())
	return nil
}
