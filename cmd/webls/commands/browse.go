package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/webls/internal/app"
)

func (c *CLI) newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [server] [path]",
		Short: "Open the interactive directory browser",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			server, path := serverAndPath(args)
			bookmark, _ := cmd.Flags().GetString("bookmark")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			asJSON, _ := cmd.Flags().GetBool("json")

			return c.app.Browse(cmd.Context(), app.BrowseOptions{
				Server:     server,
				Bookmark:   bookmark,
				Path:       path,
				OutputMode: outputMode,
				JSON:       asJSON,
			})
		},
	}
	cmd.Flags().StringP("bookmark", "b", "", "Start at a saved bookmark instead of a server path")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or plain")
	cmd.Flags().Bool("json", false, "Emit JSON when falling back to plain output")
	return cmd
}
