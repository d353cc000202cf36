package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/webls/internal/app"
)

func (c *CLI) newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [server] [path]",
		Short: "Download files from a directory",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			server, path := serverAndPath(args)
			bookmark, _ := cmd.Flags().GetString("bookmark")
			file, _ := cmd.Flags().GetString("file")
			dir, _ := cmd.Flags().GetString("dir")
			refresh, _ := cmd.Flags().GetBool("refresh")

			return c.app.Get(cmd.Context(), app.GetOptions{
				Server:   server,
				Bookmark: bookmark,
				Path:     path,
				File:     file,
				Dir:      dir,
				Refresh:  refresh,
			})
		},
	}
	cmd.Flags().StringP("bookmark", "b", "", "Download from a saved bookmark instead of a server path")
	cmd.Flags().StringP("file", "f", "", "Download a single file by name instead of the whole directory")
	cmd.Flags().StringP("dir", "d", "", "Destination directory (defaults to the configured download dir)")
	cmd.Flags().BoolP("refresh", "r", false, "Bypass the cache and fetch a fresh listing first")
	return cmd
}
