package ports

import "github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"

// ConfigLoader defines the interface for loading the tool settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings from the given working directory. A missing
	// settings file yields the defaults, not an error.
	Load(cwd string) (*domain.Settings, error)
}
