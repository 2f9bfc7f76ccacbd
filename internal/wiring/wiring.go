// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/IHP-GmbH/LibMan-sub000/internal/adapters/config"
	_ "github.com/IHP-GmbH/LibMan-sub000/internal/adapters/fs"
	_ "github.com/IHP-GmbH/LibMan-sub000/internal/adapters/gds"
	_ "github.com/IHP-GmbH/LibMan-sub000/internal/adapters/journal"
	_ "github.com/IHP-GmbH/LibMan-sub000/internal/adapters/logger"
	_ "github.com/IHP-GmbH/LibMan-sub000/internal/adapters/oasis"
	_ "github.com/IHP-GmbH/LibMan-sub000/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/IHP-GmbH/LibMan-sub000/internal/app"
	_ "github.com/IHP-GmbH/LibMan-sub000/internal/engine/loader"
)
