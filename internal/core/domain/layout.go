package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the per-user directory name under the OS config and
	// cache roots.
	AppDirName = "webls"

	// ConfigFileName is the name of the YAML configuration file.
	ConfigFileName = "config.yaml"

	// BookmarksFileName is the name of the bookmark store file.
	BookmarksFileName = "bookmarks.json"

	// ListingCacheFileName is the name of the durable listing cache document.
	ListingCacheFileName = "listings.json"

	// ConfigPathEnv overrides the config file location when set.
	ConfigPathEnv = "WEBLS_CONFIG"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultConfigPath returns the config file location: $WEBLS_CONFIG if
// set, otherwise <user config dir>/webls/config.yaml.
func DefaultConfigPath() (string, error) {
	if override := os.Getenv(ConfigPathEnv); override != "" {
		return override, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppDirName, ConfigFileName), nil
}

// DefaultBookmarksPath returns <user config dir>/webls/bookmarks.json.
func DefaultBookmarksPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppDirName, BookmarksFileName), nil
}

// DefaultListingCachePath returns <user cache dir>/webls/listings.json.
func DefaultListingCachePath() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppDirName, ListingCacheFileName), nil
}
