package local

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	dataerrors "github.com/mwantia/dumpargs/data/errors"
	"github.com/mwantia/dumpargs/preset/backend"
)

// LocalBackend keeps one JSON file per preset in a directory on the local filesystem.
type LocalBackend struct {
	mu   sync.RWMutex
	path string
}

func NewLocalBackend(path string) *LocalBackend {
	return &LocalBackend{
		path: filepath.Clean(path),
	}
}

// Returns the identifier name defined for this backend
func (*LocalBackend) Name() string {
	return "local"
}

// Open creates the preset directory if it does not exist yet.
func (lb *LocalBackend) Open(ctx context.Context) error {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	if err := os.MkdirAll(lb.path, 0755); err != nil {
		return dataerrors.BackendUnavailable(err, lb.Name())
	}

	info, err := os.Stat(lb.path)
	if err != nil {
		return dataerrors.BackendUnavailable(err, lb.Name())
	}
	if !info.IsDir() {
		return dataerrors.BackendUnavailable(fs.ErrInvalid, lb.Name())
	}

	return nil
}

// Close is part of the lifecycle behaviour and gets called when closing this backend.
func (lb *LocalBackend) Close(ctx context.Context) error {
	// The underlying filesystem persists independently
	return nil
}

// GetCapabilities returns a list of capabilities supported by this backend.
func (lb *LocalBackend) GetCapabilities() *backend.BackendCapabilities {
	return &backend.BackendCapabilities{
		Capabilities: []backend.BackendCapability{
			backend.CapabilityPresets,
			backend.CapabilityPersistent,
		},
	}
}

// resolvePath maps a preset name to its file.
func (lb *LocalBackend) resolvePath(name string) string {
	return filepath.Join(lb.path, name+extension)
}

// presetName maps a directory entry back to a preset name.
func presetName(entry fs.DirEntry) (string, bool) {
	if entry.IsDir() || !strings.HasSuffix(entry.Name(), extension) {
		return "", false
	}

	name := strings.TrimSuffix(entry.Name(), extension)
	return name, name != ""
}

func notExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

const extension = ".json"
