package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"sort"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/mwantia/dumpargs/data"
	"github.com/mwantia/dumpargs/data/errors"
)

const contentType = "application/json"

func (sb *S3Backend) CreatePreset(ctx context.Context, preset *data.Preset) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	exists, err := sb.existsUnsafe(ctx, preset.Name)
	if err != nil {
		return err
	}
	if exists {
		return errors.PresetExist(preset.Name)
	}

	return sb.putUnsafe(ctx, preset)
}

func (sb *S3Backend) ReadPreset(ctx context.Context, name string) (*data.Preset, error) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	return sb.getUnsafe(ctx, name)
}

func (sb *S3Backend) UpdatePreset(ctx context.Context, preset *data.Preset) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	existing, err := sb.getUnsafe(ctx, preset.Name)
	if err != nil {
		return err
	}

	updated := *preset
	updated.ID = existing.ID
	updated.CreateTime = existing.CreateTime
	updated.ModifyTime = time.Now()

	return sb.putUnsafe(ctx, &updated)
}

func (sb *S3Backend) DeletePreset(ctx context.Context, name string) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	exists, err := sb.existsUnsafe(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return errors.PresetNotExist(nil, name)
	}

	return sb.client.RemoveObject(ctx, sb.config.Bucket, sb.objectName(name), minio.RemoveObjectOptions{})
}

func (sb *S3Backend) ListPresets(ctx context.Context, prefix string) ([]*data.Preset, error) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	objects := sb.client.ListObjects(ctx, sb.config.Bucket, minio.ListObjectsOptions{
		Prefix:    sb.config.Prefix + prefix,
		Recursive: false,
	})

	result := make([]*data.Preset, 0)
	for object := range objects {
		if object.Err != nil {
			return nil, object.Err
		}

		name, ok := sb.presetName(object.Key)
		if !ok {
			continue
		}

		preset, err := sb.getUnsafe(ctx, name)
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

func (sb *S3Backend) existsUnsafe(ctx context.Context, name string) (bool, error) {
	_, err := sb.client.StatObject(ctx, sb.config.Bucket, sb.objectName(name), minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, err
}

func (sb *S3Backend) getUnsafe(ctx context.Context, name string) (*data.Preset, error) {
	object, err := sb.client.GetObject(ctx, sb.config.Bucket, sb.objectName(name), minio.GetObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return nil, errors.PresetNotExist(err, name)
		}
		return nil, err
	}
	defer object.Close()

	buffer, err := io.ReadAll(object)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.PresetNotExist(err, name)
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

func (sb *S3Backend) putUnsafe(ctx context.Context, preset *data.Preset) error {
	buffer, err := json.Marshal(preset)
	if err != nil {
		return err
	}

	_, err = sb.client.PutObject(ctx, sb.config.Bucket, sb.objectName(preset.Name),
		bytes.NewReader(buffer), int64(len(buffer)), minio.PutObjectOptions{
			ContentType: contentType,
		})
	return err
}

func isNotFound(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
