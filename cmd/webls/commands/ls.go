package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/webls/internal/app"
)

func (c *CLI) newLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls [server] [path]",
		Short: "Print a directory listing",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			server, path := serverAndPath(args)
			bookmark, _ := cmd.Flags().GetString("bookmark")
			refresh, _ := cmd.Flags().GetBool("refresh")
			asJSON, _ := cmd.Flags().GetBool("json")

			return c.app.List(cmd.Context(), app.ListOptions{
				Server:   server,
				Bookmark: bookmark,
				Path:     path,
				Refresh:  refresh,
				JSON:     asJSON,
			})
		},
	}
	cmd.Flags().StringP("bookmark", "b", "", "List a saved bookmark instead of a server path")
	cmd.Flags().BoolP("refresh", "r", false, "Bypass the cache and fetch a fresh listing")
	cmd.Flags().Bool("json", false, "Emit the listing as JSON")
	return cmd
}
