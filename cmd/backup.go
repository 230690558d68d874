package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBackupCmd() *cobra.Command {
	var (
		excludes      []string
		tags          []string
		host          string
		oneFileSystem bool
		ignoreCtime   bool
	)

	cmd := &cobra.Command{
		Use:   "backup [flags] [SOURCE...]",
		Short: "Back up the configured or given sources",
		Long: `Runs the engine's backup against the resolved repository. Sources given
on the command line replace the [backup] sources from the profiles. With
--dry-run the engine plans the backup without writing to the repository.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				cfg.Backup.Sources = args
			}
			if cmd.Flags().Changed("exclude") {
				cfg.Backup.Excludes = excludes
			}
			if cmd.Flags().Changed("tag") {
				cfg.Backup.Tags = tags
			}
			if cmd.Flags().Changed("host") {
				cfg.Backup.Host = &host
			}
			if oneFileSystem {
				cfg.Backup.OneFileSystem = true
			}
			if ignoreCtime {
				cfg.Backup.IgnoreCtime = true
			}
			if len(cfg.Backup.Sources) == 0 {
				return fmt.Errorf("nothing to back up, pass sources as arguments or set [backup] sources in a profile")
			}

			client, err := openEngine(cmd.Context())
			if err != nil {
				return err
			}
			return runWithHooks("backup", func() error {
				return client.Backup(cmd.Context(), cfg.Backup)
			})
		},
	}

	cmd.Flags().StringArrayVar(&excludes, "exclude", nil, "exclude pattern, repeatable")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag for the new snapshot, repeatable")
	cmd.Flags().StringVar(&host, "host", "", "hostname to record in the snapshot")
	cmd.Flags().BoolVar(&oneFileSystem, "one-file-system", false, "do not cross filesystem boundaries")
	cmd.Flags().BoolVar(&ignoreCtime, "ignore-ctime", false, "ignore ctime changes when detecting modified files")
	return cmd
}
