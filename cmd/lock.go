package cmd

import (
	"github.com/spf13/cobra"

	"strata/internal/engine"
)

func newLockCmd() *cobra.Command {
	opts := engine.LockOptions{Duration: engine.Forever()}

	cmd := &cobra.Command{
		Use:   "lock [flags] [ID...]",
		Short: "Extend the protection of snapshots",
		Long: `Asks the engine to protect the given snapshots, or every snapshot the
snapshot filter matches, for the requested duration. The default locks
forever.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Global.DryRun {
				cmd.Println("lock is not supported in dry-run mode")
				return nil
			}

			client, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			return runWithHooks("lock", func() error {
				return client.Lock(cmd.Context(), opts, args)
			})
		},
	}

	cmd.Flags().Var(&opts.Duration, "duration", `how long to lock, "forever" or a duration like "10d"`)
	cmd.Flags().BoolVar(&opts.AlwaysExtend, "always-extend-lock", false, "extend locks even when they already last longer")
	return cmd
}
