package data

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Preset is a named command line kept by a preset backend.
type Preset struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Command    string            `json:"command"`
	Line       string            `json:"line"`
	CreateTime time.Time         `json:"create_time"`
	ModifyTime time.Time         `json:"modify_time"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

const (
	// Origin of the preset, e.g. "default-profile" or "manual"
	AttributeOrigin = "origin"
	// System the preset was built for
	AttributeSystem = "system"
	// Media type the preset was built for
	AttributeMediaType = "media-type"
)

// NewPreset creates a preset with a fresh identifier.
func NewPreset(name string, command Command, line string) *Preset {
	now := time.Now()

	return &Preset{
		ID:         genPresetID(),
		Name:       name,
		Command:    command.Canonical(),
		Line:       line,
		CreateTime: now,
		ModifyTime: now,
		Attributes: make(map[string]string),
	}
}

// ValidPresetName reports whether name can be used as a key by every backend.
func ValidPresetName(name string) bool {
	if name == "" || strings.Contains(name, "/") {
		return false
	}
	return !strings.ContainsFunc(name, unicode.IsSpace)
}

// Size returns the approximate stored size in bytes.
func (p *Preset) Size() int64 {
	size := len(p.ID) + len(p.Name) + len(p.Command) + len(p.Line)
	for k, v := range p.Attributes {
		size += len(k) + len(v)
	}
	return int64(size)
}

func genPresetID() string {
	return uuid.Must(uuid.NewV7()).String()
}
