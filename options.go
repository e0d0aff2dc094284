package dumpargs

import (
	"github.com/mwantia/dumpargs/data"
	"github.com/mwantia/dumpargs/log"
	"github.com/mwantia/dumpargs/preset/backend"
)

type EngineOptions struct {
	LogLevel      log.LogLevel
	LogFile       string
	NoTerminalLog bool
	JSONLog       bool
	Logger        *log.Logger
	PresetBackend backend.PresetBackend
}

type EngineOption func(*EngineOptions) error

func newDefaultEngineOptions() *EngineOptions {
	return &EngineOptions{
		LogLevel: log.Info,
	}
}

func WithLogLevel(logLevel log.LogLevel) EngineOption {
	return func(opts *EngineOptions) error {
		opts.LogLevel = logLevel
		return nil
	}
}

func WithoutTerminalLog() EngineOption {
	return func(opts *EngineOptions) error {
		opts.NoTerminalLog = true
		return nil
	}
}

func WithLogFile(logFile string) EngineOption {
	return func(opts *EngineOptions) error {
		opts.LogFile = logFile
		return nil
	}
}

func WithJSONLog() EngineOption {
	return func(opts *EngineOptions) error {
		opts.JSONLog = true
		return nil
	}
}

// WithLogger replaces the engine logger; the log level and file options are ignored.
func WithLogger(logger *log.Logger) EngineOption {
	return func(opts *EngineOptions) error {
		opts.Logger = logger
		return nil
	}
}

// WithPresetBackend enables the preset store. The engine opens the backend in New
// and closes it in Close.
func WithPresetBackend(presets backend.PresetBackend) EngineOption {
	return func(opts *EngineOptions) error {
		if presets == nil {
			return data.ErrNoPresetBackend
		}
		opts.PresetBackend = presets
		return nil
	}
}
