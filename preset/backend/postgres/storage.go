package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mwantia/dumpargs/data"
	dataerrors "github.com/mwantia/dumpargs/data/errors"
)

func (pb *PostgresBackend) CreatePreset(ctx context.Context, preset *data.Preset) error {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	if _, exists := pb.names.Get(preset.Name); exists {
		return dataerrors.PresetExist(preset.Name)
	}

	attributes, err := json.Marshal(preset.Attributes)
	if err != nil {
		return err
	}

	tag, err := pb.pool.Exec(ctx, `
		INSERT INTO dumpargs_presets (id, name, command, line, create_time, modify_time, attributes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (name) DO NOTHING
	`, preset.ID, preset.Name, preset.Command, preset.Line,
		preset.CreateTime.Unix(), preset.ModifyTime.Unix(), attributes)
	if err != nil {
		return err
	}

	// Another frontend created the same name since our last Open
	if tag.RowsAffected() == 0 {
		return dataerrors.PresetExist(preset.Name)
	}

	pb.names.Set(preset.Name, preset.ID)
	return nil
}

func (pb *PostgresBackend) ReadPreset(ctx context.Context, name string) (*data.Preset, error) {
	pb.mu.RLock()
	defer pb.mu.RUnlock()

	return pb.readPresetUnsafe(ctx, name)
}

func (pb *PostgresBackend) UpdatePreset(ctx context.Context, preset *data.Preset) error {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	attributes, err := json.Marshal(preset.Attributes)
	if err != nil {
		return err
	}

	tag, err := pb.pool.Exec(ctx, `
		UPDATE dumpargs_presets
		SET command = $2, line = $3, modify_time = $4, attributes = $5
		WHERE name = $1
	`, preset.Name, preset.Command, preset.Line, time.Now().Unix(), attributes)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return dataerrors.PresetNotExist(nil, preset.Name)
	}

	return nil
}

func (pb *PostgresBackend) DeletePreset(ctx context.Context, name string) error {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	tag, err := pb.pool.Exec(ctx, `DELETE FROM dumpargs_presets WHERE name = $1`, name)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return dataerrors.PresetNotExist(nil, name)
	}

	pb.names.Delete(name)
	return nil
}

func (pb *PostgresBackend) ListPresets(ctx context.Context, prefix string) ([]*data.Preset, error) {
	pb.mu.RLock()
	defer pb.mu.RUnlock()

	rows, err := pb.pool.Query(ctx, `
		SELECT id, name, command, line, create_time, modify_time, attributes
		FROM dumpargs_presets WHERE name LIKE $1 ORDER BY name
	`, escapeLike(prefix)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*data.Preset, 0)
	for rows.Next() {
		preset, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, preset)
	}

	return result, rows.Err()
}

// readPresetUnsafe reads a preset by name.
// MUST be called while holding at least a read lock.
func (pb *PostgresBackend) readPresetUnsafe(ctx context.Context, name string) (*data.Preset, error) {
	row := pb.pool.QueryRow(ctx, `
		SELECT id, name, command, line, create_time, modify_time, attributes
		FROM dumpargs_presets WHERE name = $1
	`, name)

	preset, err := scanPreset(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, dataerrors.PresetNotExist(err, name)
	}

	return preset, err
}

// loadNamesUnsafe refreshes the name index.
// MUST be called while holding a write lock.
func (pb *PostgresBackend) loadNamesUnsafe(ctx context.Context) error {
	rows, err := pb.pool.Query(ctx, `SELECT name, id FROM dumpargs_presets`)
	if err != nil {
		return err
	}
	defer rows.Close()

	pb.names.Clear()
	for rows.Next() {
		var name, id string
		if err := rows.Scan(&name, &id); err != nil {
			return err
		}
		pb.names.Set(name, id)
	}

	return rows.Err()
}

func scanPreset(row pgx.Row) (*data.Preset, error) {
	var preset data.Preset
	var createTime, modifyTime int64
	var attributes []byte

	if err := row.Scan(&preset.ID, &preset.Name, &preset.Command, &preset.Line,
		&createTime, &modifyTime, &attributes); err != nil {
		return nil, err
	}

	preset.CreateTime = time.Unix(createTime, 0)
	preset.ModifyTime = time.Unix(modifyTime, 0)
	preset.Attributes = make(map[string]string)

	if len(attributes) > 0 {
		if err := json.Unmarshal(attributes, &preset.Attributes); err != nil {
			return nil, err
		}
		if preset.Attributes == nil {
			preset.Attributes = make(map[string]string)
		}
	}

	return &preset, nil
}

func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
