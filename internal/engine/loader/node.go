package loader

import (
	"context"
	"os"

	"github.com/grindlemire/graft"

	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/gds"       //nolint:depguard // Wired in engine wiring
	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/oasis"     //nolint:depguard // Wired in engine wiring
	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/domain"
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/ports"
)

// NodeID is the unique identifier for the load coordinator Graft node.
const NodeID graft.ID = "engine.loader"

func init() {
	graft.Register(graft.Node[*Coordinator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			gds.NodeID,
			oasis.NodeID,
			config.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Coordinator, error) {
			gdsDecoder, err := graft.Dep[*gds.Decoder](ctx)
			if err != nil {
				return nil, err
			}

			oasisDecoder, err := graft.Dep[*oasis.Decoder](ctx)
			if err != nil {
				return nil, err
			}

			configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			settings, err := configLoader.Load(cwd)
			if err != nil {
				return nil, err
			}

			readers := map[domain.Format]ports.HierarchyReader{
				domain.FormatGDSII: gdsDecoder,
				domain.FormatOASIS: oasisDecoder,
			}
			return New(readers, settings.FormatOverrides, log, tel), nil
		},
	})
}
