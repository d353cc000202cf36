package app

import (
	"context"
	"fmt"

	"go.trai.ch/webls/internal/core/domain"
)

// ListOptions configuration for the List method.
type ListOptions struct {
	Server   string
	Bookmark string
	Path     string
	Refresh  bool
	JSON     bool
}

// List prints a one-shot directory listing.
func (a *App) List(ctx context.Context, opts ListOptions) error {
	_, target, result, err := a.fetchListing(ctx, opts.Server, opts.Bookmark, opts.Path, opts.Refresh)
	if err != nil {
		return err
	}

	if opts.JSON {
		return renderListingJSON(a.stdout, target, result)
	}
	renderListing(a.stdout, target, result)
	return nil
}

// GetOptions configuration for the Get method.
type GetOptions struct {
	Server   string
	Bookmark string
	Path     string
	File     string
	Dir      string
	Refresh  bool
}

// Get downloads one file, or every file in the directory when no file
// name is given.
func (a *App) Get(ctx context.Context, opts GetOptions) error {
	server, _, result, err := a.fetchListing(ctx, opts.Server, opts.Bookmark, opts.Path, opts.Refresh)
	if err != nil {
		return err
	}

	dir := opts.Dir
	if dir == "" {
		cfg, err := a.configLoader.Load()
		if err != nil {
			return err
		}
		dir = downloadDir(cfg)
	}

	progress := renderProgress(a.stdout)

	if opts.File != "" {
		file, err := findFile(result.Files, opts.File)
		if err != nil {
			return err
		}
		if err := a.downloader.File(ctx, file, dir, server.Credentials, progress); err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "downloaded %s to %s\n", file.Name, dir)
		return nil
	}

	if len(result.Files) == 0 {
		fmt.Fprintln(a.stdout, "no files to download")
		return nil
	}

	n := a.downloader.All(ctx, result.Files, dir, server.Credentials, progress)
	fmt.Fprintf(a.stdout, "downloaded %d/%d files to %s\n", n, len(result.Files), dir)
	return nil
}

// PlayOptions configuration for the Play method.
type PlayOptions struct {
	Server   string
	Bookmark string
	Path     string
	File     string
	All      bool
}

// Play hands a file, or every video in the directory, to the first
// available media player.
func (a *App) Play(ctx context.Context, opts PlayOptions) error {
	_, _, result, err := a.fetchListing(ctx, opts.Server, opts.Bookmark, opts.Path, false)
	if err != nil {
		return err
	}

	if opts.All {
		return a.player.PlayAll(ctx, result.Files)
	}

	file, err := findFile(result.Files, opts.File)
	if err != nil {
		return err
	}
	return a.player.Play(ctx, file)
}

// ServersOptions configuration for the Servers method.
type ServersOptions struct {
	Probe bool
	JSON  bool
}

// Servers lists the configured servers, optionally probing each one for
// reachability.
func (a *App) Servers(ctx context.Context, opts ServersOptions) error {
	cfg, err := a.configLoader.Load()
	if err != nil {
		return err
	}
	if len(cfg.Servers) == 0 {
		return domain.ErrNoServersConfigured
	}

	statuses := make([]serverStatus, 0, len(cfg.Servers))
	for _, server := range cfg.Servers {
		status := serverStatus{Server: server}
		if opts.Probe {
			status.Probed = true
			status.Err = a.listings.Probe(ctx, server.URL, server.Credentials)
		}
		statuses = append(statuses, status)
	}

	if opts.JSON {
		return renderServersJSON(a.stdout, statuses)
	}
	renderServers(a.stdout, statuses)
	return nil
}
