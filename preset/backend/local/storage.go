package local

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/mwantia/dumpargs/data"
	dataerrors "github.com/mwantia/dumpargs/data/errors"
)

func (lb *LocalBackend) CreatePreset(ctx context.Context, preset *data.Preset) error {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	if _, err := os.Stat(lb.resolvePath(preset.Name)); err == nil {
		return dataerrors.PresetExist(preset.Name)
	}

	return lb.writeUnsafe(preset)
}

func (lb *LocalBackend) ReadPreset(ctx context.Context, name string) (*data.Preset, error) {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	return lb.readUnsafe(name)
}

func (lb *LocalBackend) UpdatePreset(ctx context.Context, preset *data.Preset) error {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	existing, err := lb.readUnsafe(preset.Name)
	if err != nil {
		return err
	}

	updated := *preset
	updated.ID = existing.ID
	updated.CreateTime = existing.CreateTime
	updated.ModifyTime = time.Now()

	return lb.writeUnsafe(&updated)
}

func (lb *LocalBackend) DeletePreset(ctx context.Context, name string) error {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	if err := os.Remove(lb.resolvePath(name)); err != nil {
		if notExist(err) {
			return dataerrors.PresetNotExist(err, name)
		}
		return err
	}

	return nil
}

func (lb *LocalBackend) ListPresets(ctx context.Context, prefix string) ([]*data.Preset, error) {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	entries, err := os.ReadDir(lb.path)
	if err != nil {
		return nil, err
	}

	result := make([]*data.Preset, 0)
	for _, entry := range entries {
		name, ok := presetName(entry)
		if !ok || !strings.HasPrefix(name, prefix) {
			continue
		}

		preset, err := lb.readUnsafe(name)
		if err != nil {
			return nil, err
		}
		result = append(result, preset)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result, nil
}

// readUnsafe MUST be called while holding at least a read lock.
func (lb *LocalBackend) readUnsafe(name string) (*data.Preset, error) {
	buffer, err := os.ReadFile(lb.resolvePath(name))
	if err != nil {
		if notExist(err) {
			return nil, dataerrors.PresetNotExist(err, name)
		}
		return nil, err
	}

	var preset data.Preset
	if err := json.Unmarshal(buffer, &preset); err != nil {
		return nil, err
	}
	if preset.Attributes == nil {
		preset.Attributes = make(map[string]string)
	}

	return &preset, nil
}

// writeUnsafe writes to a temporary file and renames it into place.
// MUST be called while holding the write lock.
func (lb *LocalBackend) writeUnsafe(preset *data.Preset) error {
	buffer, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return err
	}

	file, err := os.CreateTemp(lb.path, ".preset-*")
	if err != nil {
		return err
	}
	defer os.Remove(file.Name())

	if _, err := file.Write(buffer); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	return os.Rename(file.Name(), lb.resolvePath(preset.Name))
}
