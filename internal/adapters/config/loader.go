// Package config provides the configuration loader for webls.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"go.trai.ch/webls/internal/core/domain"
	"go.trai.ch/webls/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	path   string
	logger ports.Logger
}

// NewLoader creates a Loader reading from path.
func NewLoader(path string, logger ports.Logger) *Loader {
	return &Loader{path: path, logger: logger}
}

// Path returns the location the loader reads from.
func (l *Loader) Path() string {
	return l.path
}

// Load reads and resolves the configuration. A missing file is not an
// error: it yields an empty server list with default tunables, so the
// cache and bookmark commands keep working before any server is set up.
func (l *Loader) Load() (domain.Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn(fmt.Sprintf("no configuration at %s, using defaults", l.path))
			return applyDefaults(domain.Config{}), nil
		}
		return domain.Config{}, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", l.path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Config{}, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", l.path)
	}

	cfg := domain.Config{
		CacheTTL:     time.Duration(file.Cache.TTLSeconds) * time.Second,
		FetchTimeout: time.Duration(file.Fetch.TimeoutSeconds) * time.Second,
		ProbeTimeout: time.Duration(file.Fetch.ProbeTimeoutSeconds) * time.Second,
		MaxRetries:   file.Fetch.MaxRetries,
		DownloadDir:  file.Download.Dir,
	}

	for _, dto := range file.Servers {
		if dto.URL == "" {
			l.logger.Warn(fmt.Sprintf("skipping server %q: no url configured", dto.Name))
			continue
		}
		server := domain.Server{Name: dto.Name, URL: dto.URL}
		if dto.Username != "" || dto.Password != "" {
			server.Credentials = &domain.Credentials{Username: dto.Username, Password: dto.Password}
		}
		cfg.Servers = append(cfg.Servers, server)
	}

	return applyDefaults(cfg), nil
}

// applyDefaults fills every unset tunable with its domain default.
func applyDefaults(cfg domain.Config) domain.Config {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = domain.DefaultCacheTTL
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = domain.DefaultFetchTimeout
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = domain.DefaultProbeTimeout
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = domain.DefaultMaxRetries
	}
	return cfg
}

var _ ports.ConfigLoader = (*Loader)(nil)
