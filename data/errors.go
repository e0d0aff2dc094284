package data

import (
	"errors"
	"sync"
)

// Standard errors returned by the parameter engine and the preset backends.
var (
	// Parse errors
	ErrEmptyInput           = errors.New("dumpargs: empty command line")
	ErrInvalidCommand       = errors.New("dumpargs: invalid command")
	ErrMissingRequiredValue = errors.New("dumpargs: missing required flag value")
	ErrMissingPositional    = errors.New("dumpargs: missing positional argument")
	ErrTrailingTokens       = errors.New("dumpargs: unrecognized trailing tokens")

	// Generation errors
	ErrGenerationBlocked = errors.New("dumpargs: generation blocked")

	// Preset errors
	ErrPresetNotExist     = errors.New("dumpargs: preset does not exist")
	ErrPresetExist        = errors.New("dumpargs: preset already exists")
	ErrInvalidPresetName  = errors.New("dumpargs: invalid preset name")
	ErrPresetTooLarge     = errors.New("dumpargs: preset exceeds backend size limit")
	ErrBackendUnavailable = errors.New("dumpargs: preset backend unavailable")
	ErrNoPresetBackend    = errors.New("dumpargs: no preset backend configured")
)

// Errors collects non-fatal problems, such as ignored flag values during parsing.
type Errors struct {
	mu     sync.RWMutex
	errors []error
}

func (e *Errors) Add(err error) {
	if err == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.errors = append(e.errors, err)
}

func (e *Errors) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.errors = nil
}

func (e *Errors) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.errors)
}

// List returns a copy of the collected errors.
func (e *Errors) List() []error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return append([]error(nil), e.errors...)
}

func (e *Errors) Errors() error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(e.errors) == 0 {
		return nil
	}

	return errors.Join(e.errors...)
}
