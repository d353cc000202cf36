package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/webls/internal/app"
)

func (c *CLI) newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play [server] [path]",
		Short: "Play media from a directory with mpv, VLC, or IINA",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			server, path := serverAndPath(args)
			bookmark, _ := cmd.Flags().GetString("bookmark")
			file, _ := cmd.Flags().GetString("file")
			all, _ := cmd.Flags().GetBool("all")

			return c.app.Play(cmd.Context(), app.PlayOptions{
				Server:   server,
				Bookmark: bookmark,
				Path:     path,
				File:     file,
				All:      all,
			})
		},
	}
	cmd.Flags().StringP("bookmark", "b", "", "Play from a saved bookmark instead of a server path")
	cmd.Flags().StringP("file", "f", "", "Play a single file by name")
	cmd.Flags().BoolP("all", "a", false, "Queue every video in the directory")
	return cmd
}
