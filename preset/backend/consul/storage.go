package consul

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/hashicorp/consul/api"
	"github.com/mwantia/dumpargs/data"
	"github.com/mwantia/dumpargs/data/errors"
)

func (cb *ConsulBackend) CreatePreset(ctx context.Context, preset *data.Preset) error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	value, err := cb.encode(preset)
	if err != nil {
		return err
	}

	// ModifyIndex 0 only succeeds when the key does not exist yet
	ok, _, err := cb.kv.CAS(&api.KVPair{
		Key:         cb.buildKey(preset.Name),
		Value:       value,
		ModifyIndex: 0,
	}, writeOptions(ctx))
	if err != nil {
		return err
	}
	if !ok {
		return errors.PresetExist(preset.Name)
	}

	return nil
}

func (cb *ConsulBackend) ReadPreset(ctx context.Context, name string) (*data.Preset, error) {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	pair, _, err := cb.kv.Get(cb.buildKey(name), queryOptions(ctx))
	if err != nil {
		return nil, err
	}
	if pair == nil {
		return nil, errors.PresetNotExist(nil, name)
	}

	return decode(pair.Value)
}

func (cb *ConsulBackend) UpdatePreset(ctx context.Context, preset *data.Preset) error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	key := cb.buildKey(preset.Name)
	pair, _, err := cb.kv.Get(key, queryOptions(ctx))
	if err != nil {
		return err
	}
	if pair == nil {
		return errors.PresetNotExist(nil, preset.Name)
	}

	existing, err := decode(pair.Value)
	if err != nil {
		return err
	}

	updated := *preset
	updated.ID = existing.ID
	updated.CreateTime = existing.CreateTime
	updated.ModifyTime = time.Now()

	value, err := cb.encode(&updated)
	if err != nil {
		return err
	}

	ok, _, err := cb.kv.CAS(&api.KVPair{
		Key:         key,
		Value:       value,
		ModifyIndex: pair.ModifyIndex,
	}, writeOptions(ctx))
	if err != nil {
		return err
	}
	if !ok {
		// Changed or removed concurrently
		return errors.PresetNotExist(nil, preset.Name)
	}

	return nil
}

func (cb *ConsulBackend) DeletePreset(ctx context.Context, name string) error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	key := cb.buildKey(name)
	pair, _, err := cb.kv.Get(key, queryOptions(ctx))
	if err != nil {
		return err
	}
	if pair == nil {
		return errors.PresetNotExist(nil, name)
	}

	_, err = cb.kv.Delete(key, writeOptions(ctx))
	return err
}

func (cb *ConsulBackend) ListPresets(ctx context.Context, prefix string) ([]*data.Preset, error) {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	pairs, _, err := cb.kv.List(cb.buildKey(prefix), queryOptions(ctx))
	if err != nil {
		return nil, err
	}

	result := make([]*data.Preset, 0, len(pairs))
	for _, pair := range pairs {
		// Nested keys are not presets
		if name := cb.presetName(pair.Key); name == "" || containsSlash(name) {
			continue
		}

		preset, err := decode(pair.Value)
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

func (cb *ConsulBackend) encode(preset *data.Preset) ([]byte, error) {
	value, err := json.Marshal(preset)
	if err != nil {
		return nil, err
	}

	if limit := cb.GetCapabilities().MaxPresetSize; int64(len(value)) > limit {
		return nil, errors.PresetTooLarge(preset.Name, int64(len(value)), limit)
	}

	return value, nil
}

func decode(value []byte) (*data.Preset, error) {
	var preset data.Preset
	if err := json.Unmarshal(value, &preset); err != nil {
		return nil, err
	}
	if preset.Attributes == nil {
		preset.Attributes = make(map[string]string)
	}
	return &preset, nil
}

func queryOptions(ctx context.Context) *api.QueryOptions {
	return (&api.QueryOptions{}).WithContext(ctx)
}

func writeOptions(ctx context.Context) *api.WriteOptions {
	return (&api.WriteOptions{}).WithContext(ctx)
}

func containsSlash(name string) bool {
	for _, r := range name {
		if r == '/' {
			return true
		}
	}
	return false
}
