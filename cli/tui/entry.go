package tui

import (
	"fmt"

	"github.com/mwantia/dumpargs/data"
)

// Entry represents a stored preset in the preset pane
type Entry struct {
	Preset *data.Preset
}

func newEntries(presets []*data.Preset) []*Entry {
	entries := make([]*Entry, 0, len(presets))
	for _, preset := range presets {
		entries = append(entries, &Entry{Preset: preset})
	}
	return entries
}

// DisplayName returns the preset name followed by its command
func (e *Entry) DisplayName() string {
	return fmt.Sprintf("%s (%s)", e.Preset.Name, e.Preset.Command)
}

// DisplayModTime returns formatted modification time
func (e *Entry) DisplayModTime() string {
	return e.Preset.ModifyTime.Format("2006-01-02 15:04:05")
}

// DisplayOrigin returns where the preset came from, if recorded
func (e *Entry) DisplayOrigin() string {
	if origin, ok := e.Preset.Attributes[data.AttributeOrigin]; ok {
		return origin
	}
	return "manual"
}
