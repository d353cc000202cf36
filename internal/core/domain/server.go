package domain

import (
	"strings"
	"time"
)

// Default tunables. Each one can be overridden in the config file.
const (
	// DefaultCacheTTL is how long a cached listing stays fresh.
	DefaultCacheTTL = 300 * time.Second

	// DefaultFetchTimeout applies to listing and download requests.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultProbeTimeout applies to the connectivity probe only.
	DefaultProbeTimeout = 10 * time.Second

	// DefaultMaxRetries is the number of fetch attempts for transient failures.
	DefaultMaxRetries = 3
)

// Credentials is an optional basic-auth username/password pair.
type Credentials struct {
	Username string
	Password string
}

// Server is a configured directory-index server.
type Server struct {
	Name        string
	URL         string
	Credentials *Credentials
}

// Config is the resolved webls configuration: the server directory plus
// the cache/fetch tunables.
type Config struct {
	Servers      []Server
	CacheTTL     time.Duration
	FetchTimeout time.Duration
	ProbeTimeout time.Duration
	MaxRetries   int
	DownloadDir  string
}

// ServerByName returns the configured server with the given name,
// matched case-insensitively.
func (c Config) ServerByName(name string) (Server, bool) {
	for _, s := range c.Servers {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Server{}, false
}
