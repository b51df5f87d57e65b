package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/mason/internal/adapters/meson"
	"go.trai.ch/mason/internal/core/domain"
)

func (c *CLI) newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Verify the build tools are installed and working",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			versions, err := c.app.Probe(cmd.Context())
			if err != nil {
				if errors.Is(err, domain.ErrToolsMissing) {
					for _, hint := range meson.InstallHints() {
						fmt.Fprintln(cmd.OutOrStdout(), hint)
					}
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "configurator: %s\nexecutor: %s\n", versions.Configurator, versions.Executor)
			return nil
		},
	}
}
