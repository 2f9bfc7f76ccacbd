package gds

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the GDSII decoder Graft node.
const NodeID graft.ID = "adapter.gds"

func init() {
	graft.Register(graft.Node[*Decoder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Decoder, error) {
			return NewDecoder(), nil
		},
	})
}
