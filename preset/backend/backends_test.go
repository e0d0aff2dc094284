package backend_test

import (
	"errors"
	"testing"

	"github.com/mwantia/dumpargs/data"
	"github.com/mwantia/dumpargs/preset/backend"
	"github.com/mwantia/dumpargs/preset/backend/ephemeral"
	"github.com/mwantia/dumpargs/preset/backend/local"
	"github.com/mwantia/dumpargs/preset/backend/sqlite"
)

// TestBackendFactory creates a new, opened backend instance for testing.
type TestBackendFactory func(tst *testing.T) (backend.PresetBackend, error)

// GetTestBackendFactories returns all backend implementations that run without a server.
func GetTestBackendFactories() map[string]TestBackendFactory {
	return map[string]TestBackendFactory{
		"ephemeral": func(tst *testing.T) (backend.PresetBackend, error) {
			return ephemeral.NewEphemeralBackend(), nil
		},
		"local": func(tst *testing.T) (backend.PresetBackend, error) {
			return local.NewLocalBackend(tst.TempDir() + "/presets"), nil
		},
		"sqlite-memory": func(tst *testing.T) (backend.PresetBackend, error) {
			return sqlite.NewSQLiteBackend(":memory:")
		},
	}
}

func openBackend(tst *testing.T, factory TestBackendFactory) backend.PresetBackend {
	ctx := tst.Context()

	presets, err := factory(tst)
	if err != nil {
		tst.Fatalf("Backend init failed: %v", err)
	}
	if err := presets.Open(ctx); err != nil {
		tst.Fatalf("Open failed: %v", err)
	}
	tst.Cleanup(func() {
		presets.Close(ctx)
	})

	return presets
}

var mediaDump = data.Command{Family: "media", Action: "dump"}

// TestAllBackends_PresetLifecycle verifies create, read, update and delete across all
// backend implementations.
func TestAllBackends_PresetLifecycle(t *testing.T) {
	for name, factory := range GetTestBackendFactories() {
		t.Run(name, func(tst *testing.T) {
			ctx := tst.Context()
			presets := openBackend(tst, factory)

			preset := data.NewPreset("cd", mediaDump, `media dump "D:" "disc.bin" --speed 8`)
			preset.Attributes[data.AttributeOrigin] = "default-profile"

			if err := presets.CreatePreset(ctx, preset); err != nil {
				tst.Fatalf("Create failed: %v", err)
			}

			if err := presets.CreatePreset(ctx, preset); !errors.Is(err, data.ErrPresetExist) {
				tst.Errorf("Expected ErrPresetExist, got %v", err)
			}

			got, err := presets.ReadPreset(ctx, "cd")
			if err != nil {
				tst.Fatalf("Read failed: %v", err)
			}
			if got.ID != preset.ID || got.Line != preset.Line || got.Command != "media dump" {
				tst.Errorf("Expected %+v, got %+v", preset, got)
			}
			if got.Attributes[data.AttributeOrigin] != "default-profile" {
				tst.Errorf("Expected origin attribute, got %v", got.Attributes)
			}

			update := data.NewPreset("cd", mediaDump, `media dump "E:" "disc.bin"`)
			if err := presets.UpdatePreset(ctx, update); err != nil {
				tst.Fatalf("Update failed: %v", err)
			}

			got, err = presets.ReadPreset(ctx, "cd")
			if err != nil {
				tst.Fatalf("Read after update failed: %v", err)
			}
			if got.ID != preset.ID {
				tst.Errorf("Expected update to keep ID %s, got %s", preset.ID, got.ID)
			}
			if got.Line != update.Line {
				tst.Errorf("Expected line %q, got %q", update.Line, got.Line)
			}
			if got.CreateTime.Unix() != preset.CreateTime.Unix() {
				tst.Errorf("Expected update to keep the create time")
			}

			if err := presets.DeletePreset(ctx, "cd"); err != nil {
				tst.Fatalf("Delete failed: %v", err)
			}

			if _, err := presets.ReadPreset(ctx, "cd"); !errors.Is(err, data.ErrPresetNotExist) {
				tst.Errorf("Expected ErrPresetNotExist, got %v", err)
			}
			if err := presets.DeletePreset(ctx, "cd"); !errors.Is(err, data.ErrPresetNotExist) {
				tst.Errorf("Expected ErrPresetNotExist on second delete, got %v", err)
			}
			if err := presets.UpdatePreset(ctx, update); !errors.Is(err, data.ErrPresetNotExist) {
				tst.Errorf("Expected ErrPresetNotExist on update, got %v", err)
			}
		})
	}
}

// TestAllBackends_ListPresets verifies prefix filtering and name ordering.
func TestAllBackends_ListPresets(t *testing.T) {
	for name, factory := range GetTestBackendFactories() {
		t.Run(name, func(tst *testing.T) {
			ctx := tst.Context()
			presets := openBackend(tst, factory)

			for _, name := range []string{"psx-b", "dvd", "psx-a", "ps2"} {
				preset := data.NewPreset(name, mediaDump, `media dump "D:" "`+name+`.bin"`)
				if err := presets.CreatePreset(ctx, preset); err != nil {
					tst.Fatalf("Create of '%s' failed: %v", name, err)
				}
			}

			all, err := presets.ListPresets(ctx, "")
			if err != nil {
				tst.Fatalf("List failed: %v", err)
			}
			expected := []string{"dvd", "ps2", "psx-a", "psx-b"}
			if len(all) != len(expected) {
				tst.Fatalf("Expected %d presets, got %d", len(expected), len(all))
			}
			for i, preset := range all {
				if preset.Name != expected[i] {
					tst.Errorf("Expected '%s' at %d, got '%s'", expected[i], i, preset.Name)
				}
			}

			psx, err := presets.ListPresets(ctx, "psx")
			if err != nil {
				tst.Fatalf("List with prefix failed: %v", err)
			}
			if len(psx) != 2 || psx[0].Name != "psx-a" || psx[1].Name != "psx-b" {
				tst.Errorf("Expected psx-a and psx-b, got %d presets", len(psx))
			}

			none, err := presets.ListPresets(ctx, "zzz")
			if err != nil {
				tst.Fatalf("List with unknown prefix failed: %v", err)
			}
			if len(none) != 0 {
				tst.Errorf("Expected no presets, got %d", len(none))
			}
		})
	}
}

// TestAllBackends_Isolation verifies that callers cannot mutate stored presets.
func TestAllBackends_Isolation(t *testing.T) {
	for name, factory := range GetTestBackendFactories() {
		t.Run(name, func(tst *testing.T) {
			ctx := tst.Context()
			presets := openBackend(tst, factory)

			preset := data.NewPreset("cd", mediaDump, `media dump "D:" "disc.bin"`)
			preset.Attributes["key"] = "value"
			if err := presets.CreatePreset(ctx, preset); err != nil {
				tst.Fatalf("Create failed: %v", err)
			}

			preset.Attributes["key"] = "changed"
			got, err := presets.ReadPreset(ctx, "cd")
			if err != nil {
				tst.Fatalf("Read failed: %v", err)
			}
			if got.Attributes["key"] != "value" {
				tst.Errorf("Expected stored attribute to be unchanged, got %q", got.Attributes["key"])
			}

			got.Attributes["key"] = "mutated"
			again, _ := presets.ReadPreset(ctx, "cd")
			if again.Attributes["key"] != "value" {
				tst.Errorf("Expected read copy to be detached, got %q", again.Attributes["key"])
			}
		})
	}
}

func TestBackendCapabilities(t *testing.T) {
	caps := &backend.BackendCapabilities{
		Capabilities:  []backend.BackendCapability{backend.CapabilityPresets},
		MaxPresetSize: 10,
	}

	if !caps.Contains(backend.CapabilityPresets) || caps.Contains(backend.CapabilityShared) {
		t.Errorf("Unexpected capability set %v", caps.Capabilities)
	}
	if !caps.Fits(10) || caps.Fits(11) {
		t.Errorf("Expected a limit of 10 bytes")
	}

	unlimited := &backend.BackendCapabilities{}
	if !unlimited.Fits(1 << 30) {
		t.Errorf("Expected no limit for a zero size")
	}
}
