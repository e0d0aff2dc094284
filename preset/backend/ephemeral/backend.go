package ephemeral

import (
	"context"
	"sync"

	"github.com/mwantia/dumpargs/data"
	"github.com/mwantia/dumpargs/preset/backend"
	"github.com/tidwall/btree"
)

// EphemeralBackend keeps presets in an in-memory B-tree ordered by name.
// Everything is lost when the backend is closed.
type EphemeralBackend struct {
	mu sync.RWMutex

	presets *btree.Map[string, *data.Preset]
}

func NewEphemeralBackend() *EphemeralBackend {
	return &EphemeralBackend{
		presets: btree.NewMap[string, *data.Preset](0),
	}
}

// Returns the identifier name defined for this backend
func (*EphemeralBackend) Name() string {
	return "ephemeral"
}

// Open is part of the lifecycle behaviour and gets called when opening this backend.
func (eb *EphemeralBackend) Open(ctx context.Context) error {
	return nil
}

// Close is part of the lifecycle behaviour and gets called when closing this backend.
func (eb *EphemeralBackend) Close(ctx context.Context) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.presets.Clear()
	return nil
}

// GetCapabilities returns a list of capabilities supported by this backend.
func (eb *EphemeralBackend) GetCapabilities() *backend.BackendCapabilities {
	return &backend.BackendCapabilities{
		Capabilities: []backend.BackendCapability{
			backend.CapabilityPresets,
		},
		MaxPresetSize: 1048576, // 1 MB
	}
}
