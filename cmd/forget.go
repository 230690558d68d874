package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"strata/internal/config"
)

func newForgetCmd() *cobra.Command {
	var (
		keepLast    int
		keepDaily   int
		keepWeekly  int
		keepMonthly int
		keepYearly  int
		keepWithin  string
		prune       bool
	)

	cmd := &cobra.Command{
		Use:   "forget [flags] [ID...]",
		Short: "Remove snapshots according to the retention policy",
		Long: `Applies the [forget] retention policy to the repository, or removes
exactly the given snapshot IDs. Explicit IDs bypass the snapshot filter.
With --dry-run the engine reports what it would remove.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("keep-last") {
				cfg.Forget.KeepLast = &keepLast
			}
			if cmd.Flags().Changed("keep-daily") {
				cfg.Forget.KeepDaily = &keepDaily
			}
			if cmd.Flags().Changed("keep-weekly") {
				cfg.Forget.KeepWeekly = &keepWeekly
			}
			if cmd.Flags().Changed("keep-monthly") {
				cfg.Forget.KeepMonthly = &keepMonthly
			}
			if cmd.Flags().Changed("keep-yearly") {
				cfg.Forget.KeepYearly = &keepYearly
			}
			if cmd.Flags().Changed("keep-within") {
				var d config.Duration
				if err := d.UnmarshalText([]byte(keepWithin)); err != nil {
					return fmt.Errorf("invalid --keep-within: %w", err)
				}
				cfg.Forget.KeepWithin = &d
			}
			if cmd.Flags().Changed("prune") {
				cfg.Forget.Prune = prune
			}

			client, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			return runWithHooks("forget", func() error {
				return client.Forget(cmd.Context(), cfg.Forget, cfg.SnapshotFilter, args)
			})
		},
	}

	cmd.Flags().IntVar(&keepLast, "keep-last", 0, "keep the last n snapshots")
	cmd.Flags().IntVar(&keepDaily, "keep-daily", 0, "keep the last n daily snapshots")
	cmd.Flags().IntVar(&keepWeekly, "keep-weekly", 0, "keep the last n weekly snapshots")
	cmd.Flags().IntVar(&keepMonthly, "keep-monthly", 0, "keep the last n monthly snapshots")
	cmd.Flags().IntVar(&keepYearly, "keep-yearly", 0, "keep the last n yearly snapshots")
	cmd.Flags().StringVar(&keepWithin, "keep-within", "", `keep snapshots newer than this, e.g. "10d" or "2w"`)
	cmd.Flags().BoolVar(&prune, "prune", false, "prune unreferenced data after forgetting")
	return cmd
}
