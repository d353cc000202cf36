package ports

import "go.trai.ch/webls/internal/core/domain"

// BookmarkStore persists user bookmarks as a JSON document in the user
// config directory. Name matching is case-insensitive everywhere.
//
//go:generate mockgen -source=bookmarks.go -destination=mocks/mock_bookmarks.go -package=mocks
type BookmarkStore interface {
	// Add stores a new bookmark. Returns domain.ErrBookmarkExists when
	// the name is already taken.
	Add(name, server, url string) error

	// Remove deletes a bookmark by name. Returns domain.ErrBookmarkNotFound
	// if absent.
	Remove(name string) error

	// Get returns a bookmark by name.
	Get(name string) (domain.Bookmark, error)

	// List returns all bookmarks, newest first.
	List() []domain.Bookmark

	// ByServer returns all bookmarks for the given server name.
	ByServer(server string) []domain.Bookmark

	// Find returns the bookmark name for url, if the URL is bookmarked.
	Find(url string) (string, bool)

	// Update renames and/or re-points an existing bookmark and bumps its
	// timestamp. Empty arguments leave the respective field unchanged.
	Update(name, newName, newURL string) error

	// Clear removes all bookmarks and returns how many were removed.
	Clear() (int, error)

	// Export writes all bookmarks to the given file.
	Export(path string) error

	// Import reads bookmarks from the given file. With merge set, names
	// already present are skipped; otherwise the store is replaced.
	// Returns the number of bookmarks imported.
	Import(path string, merge bool) (int, error)
}
