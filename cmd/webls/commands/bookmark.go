package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBookmarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bookmark",
		Aliases: []string{"bm"},
		Short:   "Manage saved directory bookmarks",
	}

	add := &cobra.Command{
		Use:   "add <name> [server] [path]",
		Short: "Save a bookmark for a directory",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			server, path := serverAndPath(args[1:])
			return c.app.BookmarkAdd(cmd.Context(), args[0], server, path)
		},
	}

	rm := &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.BookmarkRemove(cmd.Context(), args[0])
		},
	}

	ls := &cobra.Command{
		Use:   "ls",
		Short: "List bookmarks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server, _ := cmd.Flags().GetString("server")
			asJSON, _ := cmd.Flags().GetBool("json")
			return c.app.BookmarkList(cmd.Context(), server, asJSON)
		},
	}
	ls.Flags().StringP("server", "s", "", "Only show bookmarks for this server")
	ls.Flags().Bool("json", false, "Emit bookmarks as JSON")

	mv := &cobra.Command{
		Use:   "mv <name> [new-name]",
		Short: "Rename a bookmark or point it at a new URL",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var newName string
			if len(args) > 1 {
				newName = args[1]
			}
			url, _ := cmd.Flags().GetString("url")
			return c.app.BookmarkRename(cmd.Context(), args[0], newName, url)
		},
	}
	mv.Flags().String("url", "", "New URL for the bookmark")

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Remove all bookmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.BookmarkClear(cmd.Context())
		},
	}

	export := &cobra.Command{
		Use:   "export <file>",
		Short: "Export bookmarks to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.BookmarkExport(cmd.Context(), args[0])
		},
	}

	imp := &cobra.Command{
		Use:   "import <file>",
		Short: "Import bookmarks from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			merge, _ := cmd.Flags().GetBool("merge")
			return c.app.BookmarkImport(cmd.Context(), args[0], merge)
		},
	}
	imp.Flags().Bool("merge", false, "Keep existing bookmarks, skipping duplicate names")

	cmd.AddCommand(add, rm, ls, mv, clear, export, imp)
	return cmd
}
