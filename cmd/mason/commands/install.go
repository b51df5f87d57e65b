package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Build native modules and install them into the destination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Install(cmd.Context(), hookOptions(cmd))
		},
	}
	cmd.Flags().StringP("dest", "d", "", "Destination directory for installed artifacts (overrides mason.yaml)")
	cmd.Flags().Bool("skip-native", false, "Skip the native module build, run only the configured hook")
	return cmd
}
