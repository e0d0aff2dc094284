package dumpargs

import (
	"context"
	"errors"
	"sync"

	"github.com/mwantia/dumpargs/cmd"
	"github.com/mwantia/dumpargs/data"
	dataerrors "github.com/mwantia/dumpargs/data/errors"
	"github.com/mwantia/dumpargs/log"
	"github.com/mwantia/dumpargs/preset/backend"
	"github.com/mwantia/dumpargs/profile"
)

// Engine bundles the parser, the generator and an optional preset store behind a
// single logger. All methods are safe for concurrent use.
type Engine struct {
	mu      sync.RWMutex
	log     *log.Logger
	parser  *cmd.Parser
	presets backend.PresetBackend
}

func New(ctx context.Context, opts ...EngineOption) (*Engine, error) {
	options := newDefaultEngineOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	logger := options.Logger
	if logger == nil {
		logger = log.NewLogger("dumpargs", options.LogLevel, options.LogFile, options.NoTerminalLog)
		logger.JSON = options.JSONLog
	}

	e := &Engine{
		log:    logger,
		parser: cmd.NewParser(logger.Named("parser")),
	}

	if options.PresetBackend != nil {
		if err := options.PresetBackend.Open(ctx); err != nil {
			return nil, dataerrors.BackendUnavailable(err, options.PresetBackend.Name())
		}
		e.presets = options.PresetBackend
		logger.Debug("Opened preset backend '%s'", e.presets.Name())
	}

	return e, nil
}

// Parse converts a command line into a state.
func (e *Engine) Parse(line string) (*data.State, error) {
	return e.parser.Parse(line)
}

// ParseWithWarnings converts a command line into a state and returns the
// ignored flag values alongside.
func (e *Engine) ParseWithWarnings(line string) (*data.State, []error, error) {
	return e.parser.ParseWithWarnings(line)
}

// Generate renders a state as a command line.
func (e *Engine) Generate(state *data.State) (string, error) {
	line, err := cmd.Generate(state)
	if err != nil {
		e.log.Debug("Generation blocked: %v", err)
		return "", err
	}
	return line, nil
}

// Default builds and renders the default "media dump" line for a session.
func (e *Engine) Default(driveLetter rune, filename string, driveSpeed *int, system profile.System, mediaType profile.MediaType, options *profile.Options) (string, *data.State, error) {
	state := profile.BuildDefault(driveLetter, filename, driveSpeed, system, mediaType, options)
	if !system.Supports(mediaType) {
		e.log.Warn("Media type '%s' is not valid for system '%s', skipping media defaults", mediaType, system)
	}

	line, err := e.Generate(state)
	if err != nil {
		return "", nil, err
	}
	return line, state, nil
}

// SavePreset generates the line for state and stores it under name. An existing
// preset with the same name is replaced when overwrite is set.
func (e *Engine) SavePreset(ctx context.Context, name string, state *data.State, attributes map[string]string, overwrite bool) (*data.Preset, error) {
	presets, err := e.presetBackend()
	if err != nil {
		return nil, err
	}

	if !data.ValidPresetName(name) {
		return nil, dataerrors.InvalidPresetName(name)
	}

	line, err := e.Generate(state)
	if err != nil {
		return nil, err
	}

	preset := data.NewPreset(name, state.Command, line)
	for key, value := range attributes {
		preset.Attributes[key] = value
	}

	caps := presets.GetCapabilities()
	if size := preset.Size(); !caps.Fits(size) {
		return nil, dataerrors.PresetTooLarge(name, size, caps.MaxPresetSize)
	}

	err = presets.CreatePreset(ctx, preset)
	if overwrite && errors.Is(err, data.ErrPresetExist) {
		err = presets.UpdatePreset(ctx, preset)
	}
	if err != nil {
		return nil, err
	}

	e.log.With("backend", presets.Name()).Info("Saved preset '%s' for '%s'", name, preset.Command)
	return preset, nil
}

// LoadPreset reads the preset and parses its line back into a state.
func (e *Engine) LoadPreset(ctx context.Context, name string) (*data.State, *data.Preset, error) {
	presets, err := e.presetBackend()
	if err != nil {
		return nil, nil, err
	}

	preset, err := presets.ReadPreset(ctx, name)
	if err != nil {
		return nil, nil, err
	}

	state, err := e.Parse(preset.Line)
	if err != nil {
		return nil, preset, err
	}

	return state, preset, nil
}

// ListPresets returns every stored preset whose name starts with prefix.
func (e *Engine) ListPresets(ctx context.Context, prefix string) ([]*data.Preset, error) {
	presets, err := e.presetBackend()
	if err != nil {
		return nil, err
	}

	return presets.ListPresets(ctx, prefix)
}

func (e *Engine) DeletePreset(ctx context.Context, name string) error {
	presets, err := e.presetBackend()
	if err != nil {
		return err
	}

	if err := presets.DeletePreset(ctx, name); err != nil {
		return err
	}

	e.log.Info("Deleted preset '%s'", name)
	return nil
}

// Close closes the preset backend, if any. Further preset calls fail with
// data.ErrNoPresetBackend.
func (e *Engine) Close(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.presets == nil {
		return nil
	}

	err := e.presets.Close(ctx)
	e.presets = nil
	return err
}

func (e *Engine) presetBackend() (backend.PresetBackend, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.presets == nil {
		return nil, data.ErrNoPresetBackend
	}
	return e.presets, nil
}
