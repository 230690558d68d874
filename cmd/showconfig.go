package cmd

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

func newShowConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-config",
		Short: "Print the fully merged configuration",
		Long: `Prints the configuration the invoked command would run with, after
profile resolution, environment overrides and flag overrides, as TOML.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
		},
	}
}
