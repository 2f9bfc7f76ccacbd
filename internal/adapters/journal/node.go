package journal

import (
	"context"
	"os"

	"github.com/grindlemire/graft"

	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/ports"
)

// NodeID is the unique identifier for the decode journal Graft node.
const NodeID graft.ID = "adapter.decode_journal"

func init() {
	graft.Register(graft.Node[ports.DecodeJournal]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.DecodeJournal, error) {
			configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
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

			return NewStore(settings.JournalPath)
		},
	})
}
