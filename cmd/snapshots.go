package cmd

import (
	"github.com/spf13/cobra"

	"strata/internal/cli"
	"strata/internal/engine"
)

func newSnapshotsCmd() *cobra.Command {
	var (
		groupBy engine.GroupBy
		long    bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "snapshots [flags] [ID...]",
		Short: "List snapshots in the repository",
		Long: `Lists the repository's snapshots, newest last. Without explicit snapshot
IDs the [snapshot-filter] from the profiles applies; with IDs exactly
those snapshots are shown. Snapshots can be grouped by host, paths and
tags, and the listing is available as a table, JSON or YAML.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}

			var snapshots []engine.Snapshot
			err = runWithHooks("snapshots", func() error {
				spin := newSpinner("loading snapshots")
				spin.Start()
				defer spin.Stop()

				var err error
				snapshots, err = client.Snapshots(cmd.Context(), cfg.SnapshotFilter, args)
				return err
			})
			if err != nil {
				return err
			}

			groups := engine.Group(snapshots, groupBy)
			printer := cli.NewPrinter(cli.OutputFormat(output), cmd.OutOrStdout())
			return printer.Snapshots(groups, long)
		},
	}

	cmd.Flags().VarP(&groupBy, "group-by", "g", `group criteria, a comma separated list of "host", "paths" and "tags"`)
	cmd.Flags().BoolVar(&long, "long", false, "show full snapshot details")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, json or yaml")
	return cmd
}
