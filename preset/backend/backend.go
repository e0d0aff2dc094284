package backend

import (
	"context"

	"github.com/mwantia/dumpargs/data"
)

// Backend is used as lifecycle entrypoint for other backend implementations.
type Backend interface {
	// Name returns the identifier name defined for this backend
	Name() string
	// Open is part of the lifecycle behaviour and gets called when opening this backend.
	Open(ctx context.Context) error
	// Close is part of the lifecycle behaviour and gets called when closing this backend.
	Close(ctx context.Context) error

	// GetCapabilities returns a list of capabilities supported by this backend.
	GetCapabilities() *BackendCapabilities
}

// PresetBackend stores presets keyed by their name.
type PresetBackend interface {
	Backend

	// CreatePreset stores a new preset, failing with data.ErrPresetExist on name collisions.
	CreatePreset(ctx context.Context, preset *data.Preset) error

	// ReadPreset returns the preset with the given name or data.ErrPresetNotExist.
	ReadPreset(ctx context.Context, name string) (*data.Preset, error)

	// UpdatePreset replaces an existing preset, keeping its ID and CreateTime.
	UpdatePreset(ctx context.Context, preset *data.Preset) error

	// DeletePreset removes the preset with the given name.
	DeletePreset(ctx context.Context, name string) error

	// ListPresets returns every preset whose name starts with prefix, sorted by name.
	ListPresets(ctx context.Context, prefix string) ([]*data.Preset, error)
}
