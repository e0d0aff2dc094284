package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/mwantia/dumpargs/data"
	"github.com/mwantia/dumpargs/data/errors"
)

// This file contains internal "unsafe" methods that perform operations without acquiring locks.
// These methods MUST only be called when the caller already holds the appropriate lock.

// readPresetUnsafe reads a preset by ID.
// MUST be called while holding at least a read lock.
func (sb *SQLiteBackend) readPresetUnsafe(ctx context.Context, id string) (*data.Preset, error) {
	var preset data.Preset
	var attributesJSON sql.NullString
	var createTime, modifyTime int64

	err := sb.db.QueryRowContext(ctx, `
		SELECT id, name, command, line, create_time, modify_time, attributes
		FROM presets WHERE id = ?
	`, id).Scan(&preset.ID, &preset.Name, &preset.Command, &preset.Line,
		&createTime, &modifyTime, &attributesJSON)

	if err == sql.ErrNoRows {
		return nil, errors.PresetNotExist(err, id)
	}
	if err != nil {
		return nil, err
	}

	preset.CreateTime = time.Unix(createTime, 0)
	preset.ModifyTime = time.Unix(modifyTime, 0)
	preset.Attributes = make(map[string]string)

	if attributesJSON.Valid && attributesJSON.String != "" {
		if err := json.Unmarshal([]byte(attributesJSON.String), &preset.Attributes); err != nil {
			return nil, err
		}
	}

	return &preset, nil
}

// writePresetUnsafe inserts or replaces a preset row.
// MUST be called while holding a write lock.
func (sb *SQLiteBackend) writePresetUnsafe(ctx context.Context, preset *data.Preset) error {
	attributesJSON, err := marshalAttributes(preset.Attributes)
	if err != nil {
		return err
	}

	_, err = sb.db.ExecContext(ctx, `
		INSERT INTO presets (id, name, command, line, create_time, modify_time, attributes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			command = excluded.command,
			line = excluded.line,
			modify_time = excluded.modify_time,
			attributes = excluded.attributes
	`, preset.ID, preset.Name, preset.Command, preset.Line,
		preset.CreateTime.Unix(), preset.ModifyTime.Unix(), attributesJSON)

	if err != nil {
		return err
	}

	sb.names.Set(preset.Name, preset.ID)
	return nil
}

func marshalAttributes(attributes map[string]string) (sql.NullString, error) {
	if len(attributes) == 0 {
		return sql.NullString{}, nil
	}

	bytes, err := json.Marshal(attributes)
	if err != nil {
		return sql.NullString{}, err
	}

	return sql.NullString{String: string(bytes), Valid: true}, nil
}
