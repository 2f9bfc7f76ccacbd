package telemetry

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/IHP-GmbH/LibMan-sub000/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in adapter wiring
	"github.com/IHP-GmbH/LibMan-sub000/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the telemetry adapter Graft node.
	NodeID graft.ID = "adapter.telemetry"
	// BufferNodeID is the unique identifier for the tape buffer Graft node.
	BufferNodeID graft.ID = "adapter.telemetry.buffer"
)

// bufferSize bounds pending progress updates; the writer drops updates
// beyond it rather than stalling decodes.
const bufferSize = 256

func init() {
	graft.Register(graft.Node[*Buffer]{
		ID:        BufferNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Buffer, error) {
			return NewBuffer(bufferSize), nil
		},
	})

	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{BufferNodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			buffer, err := graft.Dep[*Buffer](ctx)
			if err != nil {
				return nil, err
			}
			return progrock.NewRecorder(buffer), nil
		},
	})
}
