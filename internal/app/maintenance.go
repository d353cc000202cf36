package app

import (
	"context"
	"fmt"

	"go.trai.ch/webls/internal/core/domain"
)

// CacheStats prints a snapshot of the durable cache tier.
func (a *App) CacheStats(_ context.Context, asJSON bool) error {
	stats := a.store.Stats()
	if asJSON {
		return renderCacheStatsJSON(a.stdout, stats)
	}
	renderCacheStats(a.stdout, stats)
	return nil
}

// CacheClear empties both cache tiers.
func (a *App) CacheClear(_ context.Context) error {
	if err := a.store.ClearAll(); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "cache cleared")
	return nil
}

// CachePurge removes expired entries from the durable tier.
func (a *App) CachePurge(_ context.Context) error {
	removed := a.store.PurgeExpired()
	fmt.Fprintf(a.stdout, "purged %d expired entries\n", removed)
	return nil
}

// BookmarkAdd saves a bookmark pointing at path on the named server.
func (a *App) BookmarkAdd(_ context.Context, name, serverName, path string) error {
	cfg, err := a.configLoader.Load()
	if err != nil {
		return err
	}
	server, err := resolveServer(cfg, serverName)
	if err != nil {
		return err
	}

	url := joinURL(server.URL, path)
	if err := a.bookmarks.Add(name, server.Name, url); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "bookmarked %s as %q\n", url, name)
	return nil
}

// BookmarkRemove deletes a bookmark by name.
func (a *App) BookmarkRemove(_ context.Context, name string) error {
	if err := a.bookmarks.Remove(name); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "removed bookmark %q\n", name)
	return nil
}

// BookmarkList prints all bookmarks, newest first.
func (a *App) BookmarkList(_ context.Context, server string, asJSON bool) error {
	var items []domain.Bookmark
	if server != "" {
		items = a.bookmarks.ByServer(server)
	} else {
		items = a.bookmarks.List()
	}

	if asJSON {
		return renderBookmarksJSON(a.stdout, items)
	}
	renderBookmarks(a.stdout, items)
	return nil
}

// BookmarkRename renames a bookmark and/or points it at a new URL.
// Empty arguments leave the respective field unchanged.
func (a *App) BookmarkRename(_ context.Context, name, newName, newURL string) error {
	if err := a.bookmarks.Update(name, newName, newURL); err != nil {
		return err
	}
	if newName == "" {
		newName = name
	}
	fmt.Fprintf(a.stdout, "updated bookmark %q\n", newName)
	return nil
}

// BookmarkClear removes all bookmarks.
func (a *App) BookmarkClear(_ context.Context) error {
	n, err := a.bookmarks.Clear()
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "removed %d bookmarks\n", n)
	return nil
}

// BookmarkExport writes all bookmarks to path.
func (a *App) BookmarkExport(_ context.Context, path string) error {
	if err := a.bookmarks.Export(path); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "exported bookmarks to %s\n", path)
	return nil
}

// BookmarkImport reads bookmarks from path. With merge set, existing
// names are kept; otherwise the store is replaced.
func (a *App) BookmarkImport(_ context.Context, path string, merge bool) error {
	n, err := a.bookmarks.Import(path, merge)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "imported %d bookmarks\n", n)
	return nil
}
