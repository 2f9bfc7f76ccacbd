package app

import (
	"context"
	"os"

	"github.com/grindlemire/graft"

	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/journal"   //nolint:depguard // Wired in app layer
	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/ports"
	"github.com/IHP-GmbH/LibMan-sub000/internal/engine/loader"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by
// the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings *domain.Settings
	// Tape is the progress stream the decode telemetry writes into;
	// the load command's TUI drains it.
	Tape *telemetry.Buffer
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			loader.NodeID,
			journal.NodeID,
			fs.HasherNodeID,
			fs.WalkerNodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			telemetry.BufferNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	coordinator, err := graft.Dep[*loader.Coordinator](ctx)
	if err != nil {
		return nil, err
	}

	decodeJournal, err := graft.Dep[ports.DecodeJournal](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[ports.Walker](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	return New(coordinator, decodeJournal, hasher, walker, log, settings), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	tape, err := graft.Dep[*telemetry.Buffer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      application,
		Logger:   log,
		Settings: settings,
		Tape:     tape,
	}, nil
}

func loadSettings(ctx context.Context) (*domain.Settings, error) {
	configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return configLoader.Load(cwd)
}
