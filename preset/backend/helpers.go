package backend

import (
	"maps"

	"github.com/mwantia/dumpargs/data"
)

// ClonePreset returns a copy that does not share the attribute map.
func ClonePreset(preset *data.Preset) *data.Preset {
	if preset == nil {
		return nil
	}

	c := *preset
	c.Attributes = maps.Clone(preset.Attributes)
	if c.Attributes == nil {
		c.Attributes = make(map[string]string)
	}
	return &c
}
