package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build native modules staged into the distribution destination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Build(cmd.Context(), hookOptions(cmd))
		},
	}
	cmd.Flags().StringP("dest", "d", "", "Destination directory for staged artifacts (overrides mason.yaml)")
	cmd.Flags().Bool("skip-native", false, "Skip the native module build, run only the configured hook")
	return cmd
}
