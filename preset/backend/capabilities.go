package backend

import "slices"

// BackendCapability represents a capability that a backend can provide
type BackendCapability string

const (
	// Stores presets at all
	CapabilityPresets BackendCapability = "presets"
	// Presets survive a restart of the process
	CapabilityPersistent BackendCapability = "persistent"
	// Presets can be shared between hosts
	CapabilityShared BackendCapability = "shared"
)

// BackendCapabilities describes what a backend supports
type BackendCapabilities struct {
	Capabilities  []BackendCapability `json:"capabilities"`
	MaxPresetSize int64               `json:"max_preset_size"`
}

// Contains checks if a capability is supported
func (bc *BackendCapabilities) Contains(cap BackendCapability) bool {
	return slices.Contains(bc.Capabilities, cap)
}

// Fits reports whether a preset of the given size can be stored.
// A zero MaxPresetSize means unlimited.
func (bc *BackendCapabilities) Fits(size int64) bool {
	return bc.MaxPresetSize <= 0 || size <= bc.MaxPresetSize
}
