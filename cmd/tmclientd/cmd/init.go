package cmd

import (
	"github.com/spf13/cobra"
)

func newInitCmd(clientCtx *clientContext) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to the home directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := WriteDefaultConfig(clientCtx.config.Home)
			if err != nil {
				return err
			}

			clientCtx.logger.Info("wrote default configuration", "path", path)
			return nil
		},
	}
}
