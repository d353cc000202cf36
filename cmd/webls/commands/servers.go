package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/webls/internal/app"
)

func (c *CLI) newServersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "servers",
		Short: "List configured servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			probe, _ := cmd.Flags().GetBool("probe")
			asJSON, _ := cmd.Flags().GetBool("json")

			return c.app.Servers(cmd.Context(), app.ServersOptions{
				Probe: probe,
				JSON:  asJSON,
			})
		},
	}
	cmd.Flags().BoolP("probe", "p", false, "Probe each server for reachability")
	cmd.Flags().Bool("json", false, "Emit the server list as JSON")
	return cmd
}
