package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"strata/pkg/logging"
)

func newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy [flags] [ID...]",
		Short: "Copy snapshots to the configured target repositories",
		Long: `Copies snapshots from the resolved repository into every repository
listed under [[copy.targets]]. Without explicit snapshot IDs the
snapshot filter decides what is copied.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(cfg.Copy.Targets) == 0 {
				return fmt.Errorf("no copy targets configured, add [[copy.targets]] to a profile")
			}

			client, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			return runWithHooks("copy", func() error {
				for _, target := range cfg.Copy.Targets {
					name := "(unnamed)"
					if target.Repository != nil && *target.Repository != "" {
						name = *target.Repository
					}
					if cfg.Global.DryRun {
						logging.Info("copy", "dry-run: skipping copy to %s", name)
						continue
					}
					logging.Info("copy", "copying snapshots to %s", name)
					if err := client.Copy(cmd.Context(), target, args); err != nil {
						return fmt.Errorf("copy to %s: %w", name, err)
					}
				}
				return nil
			})
		},
	}
}
