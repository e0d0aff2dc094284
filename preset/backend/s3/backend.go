package s3

import (
	"context"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/mwantia/dumpargs/data/errors"
	"github.com/mwantia/dumpargs/preset/backend"
)

// S3Backend stores every preset as a JSON object "<prefix><name>.json" in a bucket.
type S3Backend struct {
	mu sync.RWMutex

	client *minio.Client
	config *S3BackendConfig
}

// S3BackendConfig contains configuration options for the S3 backend
type S3BackendConfig struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool

	// Prefix for all object names (default: "presets/")
	Prefix string
}

func NewS3Backend(config *S3BackendConfig) (*S3Backend, error) {
	if config == nil {
		config = &S3BackendConfig{}
	}

	if config.Prefix == "" {
		config.Prefix = "presets/"
	}
	if !strings.HasSuffix(config.Prefix, "/") {
		config.Prefix += "/"
	}

	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	return &S3Backend{
		client: client,
		config: config,
	}, nil
}

// Returns the identifier name defined for this backend
func (*S3Backend) Name() string {
	return "s3"
}

// Open verifies that the configured bucket exists.
func (sb *S3Backend) Open(ctx context.Context) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	exists, err := sb.client.BucketExists(ctx, sb.config.Bucket)
	if err != nil {
		return errors.BackendUnavailable(err, sb.Name())
	}

	if !exists {
		return errors.BackendUnavailable(nil, sb.Name())
	}

	return nil
}

// Close is part of the lifecycle behaviour and gets called when closing this backend.
func (sb *S3Backend) Close(ctx context.Context) error {
	return nil
}

// GetCapabilities returns a list of capabilities supported by this backend.
func (sb *S3Backend) GetCapabilities() *backend.BackendCapabilities {
	return &backend.BackendCapabilities{
		Capabilities: []backend.BackendCapability{
			backend.CapabilityPresets,
			backend.CapabilityPersistent,
			backend.CapabilityShared,
		},
	}
}

// objectName maps a preset name to its object name.
func (sb *S3Backend) objectName(name string) string {
	return sb.config.Prefix + name + ".json"
}

// presetName maps an object name back to a preset name.
func (sb *S3Backend) presetName(object string) (string, bool) {
	if !strings.HasPrefix(object, sb.config.Prefix) || !strings.HasSuffix(object, ".json") {
		return "", false
	}

	name := strings.TrimSuffix(strings.TrimPrefix(object, sb.config.Prefix), ".json")
	return name, name != "" && !strings.Contains(name, "/")
}
