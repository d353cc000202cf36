package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

// Fetch error taxonomy. The five sentinels below form a closed set:
// every failure surfaced by the fetcher (and by the orchestrator when it
// is forced to fetch) matches exactly one of them via errors.Is.
var (
	// ErrConnection is returned for transport-level connection failures
	// (DNS, refused, reset) and for 4xx statuses that are not 401/403/404.
	ErrConnection = zerr.New("connection failed")

	// ErrTimeout is returned when a request exceeds its timeout.
	ErrTimeout = zerr.New("request timed out")

	// ErrAuthentication is returned for HTTP 401 and 403 responses.
	ErrAuthentication = zerr.New("authentication failed")

	// ErrNotFound is returned for HTTP 404 responses.
	ErrNotFound = zerr.New("resource not found")

	// ErrServer is returned for HTTP 5xx responses.
	ErrServer = zerr.New("server error")
)

var (
	// ErrCachePersistFailed is returned when the durable cache document
	// cannot be written. The store logs it and keeps going; it never
	// fails a lookup or put seen by callers.
	ErrCachePersistFailed = zerr.New("failed to persist listing cache")

	// ErrCacheClearFailed is returned when the durable cache file cannot
	// be deleted.
	ErrCacheClearFailed = zerr.New("failed to delete listing cache file")
)

var (
	// ErrConfigReadFailed is returned when the config file exists but
	// cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoServersConfigured is returned when an operation needs a server
	// and none are configured.
	ErrNoServersConfigured = zerr.New("no servers configured")

	// ErrUnknownServer is returned when a named server is not in the config.
	ErrUnknownServer = zerr.New("server not configured")
)

var (
	// ErrBookmarkExists is returned when adding a bookmark whose name is
	// already taken.
	ErrBookmarkExists = zerr.New("bookmark already exists")

	// ErrBookmarkNotFound is returned when a named bookmark does not exist.
	ErrBookmarkNotFound = zerr.New("bookmark not found")

	// ErrBookmarkReadFailed is returned when the bookmark file cannot be
	// read or parsed during import.
	ErrBookmarkReadFailed = zerr.New("failed to read bookmarks")

	// ErrBookmarkWriteFailed is returned when the bookmark file cannot be written.
	ErrBookmarkWriteFailed = zerr.New("failed to write bookmarks")
)

var (
	// ErrNoPlayerFound is returned when none of the supported media
	// players are installed.
	ErrNoPlayerFound = zerr.New("no supported media player found")

	// ErrPlaybackFailed is returned when the player process fails.
	ErrPlaybackFailed = zerr.New("playback failed")

	// ErrNothingToPlay is returned when a play-all request finds no videos.
	ErrNothingToPlay = zerr.New("no video files to play")
)

var (
	// ErrDownloadFailed is returned when a file download fails.
	ErrDownloadFailed = zerr.New("download failed")
)

// Transient reports whether err is worth retrying: connection problems,
// timeouts, and server-side errors. Authentication and not-found are
// terminal.
func Transient(err error) bool {
	return isAny(err, ErrConnection, ErrTimeout, ErrServer)
}

func isAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
