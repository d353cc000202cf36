package domain

import "time"

// Bookmark is a saved pointer to a directory on a server.
// Names are unique case-insensitively across the store.
type Bookmark struct {
	Name      string
	Server    string
	URL       string
	CreatedAt time.Time
}
