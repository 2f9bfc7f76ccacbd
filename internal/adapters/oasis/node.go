package oasis

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the OASIS decoder Graft node.
const NodeID graft.ID = "adapter.oasis"

func init() {
	graft.Register(graft.Node[*Decoder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Decoder, error) {
			return NewDecoder(), nil
		},
	})
}
