package ephemeral

import (
	"context"
	"strings"
	"time"

	"github.com/mwantia/dumpargs/data"
	"github.com/mwantia/dumpargs/data/errors"
	"github.com/mwantia/dumpargs/preset/backend"
)

func (eb *EphemeralBackend) CreatePreset(ctx context.Context, preset *data.Preset) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if _, exists := eb.presets.Get(preset.Name); exists {
		return errors.PresetExist(preset.Name)
	}

	eb.presets.Set(preset.Name, backend.ClonePreset(preset))
	return nil
}

func (eb *EphemeralBackend) ReadPreset(ctx context.Context, name string) (*data.Preset, error) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	preset, exists := eb.presets.Get(name)
	if !exists {
		return nil, errors.PresetNotExist(nil, name)
	}

	return backend.ClonePreset(preset), nil
}

func (eb *EphemeralBackend) UpdatePreset(ctx context.Context, preset *data.Preset) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	existing, exists := eb.presets.Get(preset.Name)
	if !exists {
		return errors.PresetNotExist(nil, preset.Name)
	}

	updated := backend.ClonePreset(preset)
	updated.ID = existing.ID
	updated.CreateTime = existing.CreateTime
	updated.ModifyTime = time.Now()

	eb.presets.Set(preset.Name, updated)
	return nil
}

func (eb *EphemeralBackend) DeletePreset(ctx context.Context, name string) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if _, deleted := eb.presets.Delete(name); !deleted {
		return errors.PresetNotExist(nil, name)
	}

	return nil
}

func (eb *EphemeralBackend) ListPresets(ctx context.Context, prefix string) ([]*data.Preset, error) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	result := make([]*data.Preset, 0)
	eb.presets.Ascend(prefix, func(name string, preset *data.Preset) bool {
		if !strings.HasPrefix(name, prefix) {
			return false
		}
		result = append(result, backend.ClonePreset(preset))
		return true
	})

	return result, nil
}
