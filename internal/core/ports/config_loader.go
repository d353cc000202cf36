package ports

import "go.trai.ch/webls/internal/core/domain"

// ConfigLoader reads the webls configuration file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load returns the resolved configuration. A missing file yields an
	// empty server list with default tunables, not an error.
	Load() (domain.Config, error)

	// Path returns the location the loader reads from.
	Path() string
}
