// Package commands implements the CLI commands for the webls browser.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/webls/internal/app"
	"go.trai.ch/webls/internal/build"
)

// CLI represents the command line interface for webls.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Browse(ctx context.Context, opts app.BrowseOptions) error
	List(ctx context.Context, opts app.ListOptions) error
	Get(ctx context.Context, opts app.GetOptions) error
	Play(ctx context.Context, opts app.PlayOptions) error
	Servers(ctx context.Context, opts app.ServersOptions) error
	CacheStats(ctx context.Context, asJSON bool) error
	CacheClear(ctx context.Context) error
	CachePurge(ctx context.Context) error
	BookmarkAdd(ctx context.Context, name, server, path string) error
	BookmarkRemove(ctx context.Context, name string) error
	BookmarkList(ctx context.Context, server string, asJSON bool) error
	BookmarkRename(ctx context.Context, name, newName, newURL string) error
	BookmarkClear(ctx context.Context) error
	BookmarkExport(ctx context.Context, path string) error
	BookmarkImport(ctx context.Context, path string, merge bool) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "webls",
		Short:         "Browse and fetch media from HTML directory indexes",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBrowseCmd())
	rootCmd.AddCommand(c.newLsCmd())
	rootCmd.AddCommand(c.newGetCmd())
	rootCmd.AddCommand(c.newPlayCmd())
	rootCmd.AddCommand(c.newServersCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newBookmarkCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// serverAndPath splits positional [server] [path] arguments.
func serverAndPath(args []string) (string, string) {
	var server, path string
	if len(args) > 0 {
		server = args[0]
	}
	if len(args) > 1 {
		path = args[1]
	}
	return server, path
}
