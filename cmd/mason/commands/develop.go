package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDevelopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "develop",
		Short: "Build native modules in place for an editable install",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Develop(cmd.Context(), hookOptions(cmd))
		},
	}
	cmd.Flags().Bool("skip-native", false, "Skip the native module build, run only the configured hook")
	return cmd
}
