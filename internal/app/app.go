// Package app implements the application layer for webls.
package app

import (
	"context"
	"io"
	"net/url"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/zerr"

	"go.trai.ch/webls/internal/adapters/detector"
	"go.trai.ch/webls/internal/adapters/tui"
	"go.trai.ch/webls/internal/core/domain"
	"go.trai.ch/webls/internal/core/ports"
	"go.trai.ch/webls/internal/engine/listing"
)

// App wires the listing engine and the adapters behind the CLI commands.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	store        ports.ListingStore
	player       ports.Player
	downloader   ports.Downloader
	bookmarks    ports.BookmarkStore
	listings     *listing.Service

	stdout     io.Writer
	teaOptions []tea.ProgramOption
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	store ports.ListingStore,
	fetcher ports.Fetcher,
	parser ports.Parser,
	player ports.Player,
	downloader ports.Downloader,
	bookmarks ports.BookmarkStore,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		store:        store,
		player:       player,
		downloader:   downloader,
		bookmarks:    bookmarks,
		listings:     listing.NewService(store, fetcher, parser, log),
		stdout:       os.Stdout,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithStdout redirects command output. Used for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// BrowseOptions configuration for the Browse method.
type BrowseOptions struct {
	Server     string
	Bookmark   string
	Path       string
	OutputMode string
	JSON       bool
}

// Browse opens the interactive browser, or falls back to a one-shot
// plain listing when the environment cannot host a TUI.
func (a *App) Browse(ctx context.Context, opts BrowseOptions) error {
	cfg, err := a.configLoader.Load()
	if err != nil {
		return err
	}

	server, startURL, err := a.resolveTarget(cfg, opts.Server, opts.Bookmark, opts.Path)
	if err != nil {
		return err
	}

	autoMode := detector.DetectEnvironment()
	mode := detector.ResolveMode(autoMode, opts.OutputMode)
	if mode != detector.ModeTUI {
		return a.List(ctx, ListOptions{
			Server:   opts.Server,
			Bookmark: opts.Bookmark,
			Path:     opts.Path,
			JSON:     opts.JSON,
		})
	}

	model := tui.NewModel(a.listings, a.player, a.downloader, a.bookmarks, server, startURL, downloadDir(cfg))
	optsTea := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
	browser := tui.NewBrowser(model, optsTea...)
	return browser.Run(ctx)
}

// resolveServer picks the named server, or the first configured one when
// name is empty.
func resolveServer(cfg domain.Config, name string) (domain.Server, error) {
	if len(cfg.Servers) == 0 {
		return domain.Server{}, domain.ErrNoServersConfigured
	}
	if name == "" {
		return cfg.Servers[0], nil
	}
	server, ok := cfg.ServerByName(name)
	if !ok {
		return domain.Server{}, zerr.With(domain.ErrUnknownServer, "server", name)
	}
	return server, nil
}

// resolveTarget turns server/bookmark/path selectors into a server (for
// credentials) and a concrete starting URL. A bookmark wins over a path.
func (a *App) resolveTarget(cfg domain.Config, serverName, bookmarkName, path string) (domain.Server, string, error) {
	if bookmarkName != "" {
		bookmark, err := a.bookmarks.Get(bookmarkName)
		if err != nil {
			return domain.Server{}, "", err
		}
		server, ok := cfg.ServerByName(bookmark.Server)
		if !ok {
			// The bookmark's server was removed from the config; browse
			// without credentials rather than failing.
			server = domain.Server{Name: bookmark.Server, URL: bookmark.URL}
		}
		return server, bookmark.URL, nil
	}

	server, err := resolveServer(cfg, serverName)
	if err != nil {
		return domain.Server{}, "", err
	}
	return server, joinURL(server.URL, path), nil
}

// joinURL resolves path against base. Absolute URLs pass through, and a
// bare directory name keeps its trailing slash so the server treats it
// as a directory index.
func joinURL(base, path string) string {
	if path == "" {
		return base
	}
	if strings.Contains(path, "://") {
		return path
	}

	parsed, err := url.Parse(base)
	if err != nil {
		return base
	}
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return base
	}
	return parsed.ResolveReference(ref).String()
}

// downloadDir returns the configured download directory, defaulting to
// the current directory.
func downloadDir(cfg domain.Config) string {
	if cfg.DownloadDir != "" {
		return cfg.DownloadDir
	}
	return "."
}

// findFile locates name in files, matched case-insensitively.
func findFile(files []domain.FileRef, name string) (domain.FileRef, error) {
	for _, f := range files {
		if strings.EqualFold(f.Name, name) {
			return f, nil
		}
	}
	return domain.FileRef{}, zerr.With(domain.ErrNotFound, "file", name)
}

// fetchListing resolves the target and loads its listing, optionally
// forcing a refresh.
func (a *App) fetchListing(ctx context.Context, serverName, bookmarkName, path string, refresh bool) (domain.Server, string, listing.Result, error) {
	cfg, err := a.configLoader.Load()
	if err != nil {
		return domain.Server{}, "", listing.Result{}, err
	}

	server, target, err := a.resolveTarget(cfg, serverName, bookmarkName, path)
	if err != nil {
		return domain.Server{}, "", listing.Result{}, err
	}

	var result listing.Result
	if refresh {
		result, _, err = a.listings.Refresh(ctx, target, server.Credentials)
	} else {
		result, err = a.listings.GetListing(ctx, target, server.Credentials, listing.Options{})
	}
	if err != nil {
		return domain.Server{}, "", listing.Result{}, err
	}
	return server, target, result, nil
}
