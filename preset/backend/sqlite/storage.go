package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/mwantia/dumpargs/data"
	"github.com/mwantia/dumpargs/data/errors"
)

func (sb *SQLiteBackend) CreatePreset(ctx context.Context, preset *data.Preset) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if _, exists := sb.names.Get(preset.Name); exists {
		return errors.PresetExist(preset.Name)
	}

	return sb.writePresetUnsafe(ctx, preset)
}

func (sb *SQLiteBackend) ReadPreset(ctx context.Context, name string) (*data.Preset, error) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	id, exists := sb.names.Get(name)
	if !exists {
		return nil, errors.PresetNotExist(nil, name)
	}

	return sb.readPresetUnsafe(ctx, id)
}

func (sb *SQLiteBackend) UpdatePreset(ctx context.Context, preset *data.Preset) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	id, exists := sb.names.Get(preset.Name)
	if !exists {
		return errors.PresetNotExist(nil, preset.Name)
	}

	existing, err := sb.readPresetUnsafe(ctx, id)
	if err != nil {
		return err
	}

	updated := *preset
	updated.ID = existing.ID
	updated.CreateTime = existing.CreateTime
	updated.ModifyTime = time.Now()

	return sb.writePresetUnsafe(ctx, &updated)
}

func (sb *SQLiteBackend) DeletePreset(ctx context.Context, name string) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	id, exists := sb.names.Get(name)
	if !exists {
		return errors.PresetNotExist(nil, name)
	}

	if _, err := sb.db.ExecContext(ctx, `DELETE FROM presets WHERE id = ?`, id); err != nil {
		return err
	}

	sb.names.Delete(name)
	return nil
}

func (sb *SQLiteBackend) ListPresets(ctx context.Context, prefix string) ([]*data.Preset, error) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	var ids []string
	sb.names.Ascend(prefix, func(name, id string) bool {
		if !strings.HasPrefix(name, prefix) {
			return false
		}
		ids = append(ids, id)
		return true
	})

	result := make([]*data.Preset, 0, len(ids))
	for _, id := range ids {
		preset, err := sb.readPresetUnsafe(ctx, id)
		if err != nil {
			return nil, err
		}
		result = append(result, preset)
	}

	return result, nil
}
