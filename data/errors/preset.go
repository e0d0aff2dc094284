package errors

import "github.com/mwantia/dumpargs/data"

func PresetNotExist(err error, name string) error {
	return newError(data.ErrPresetNotExist, err, "preset '%s'", name)
}

func PresetExist(name string) error {
	return newError(data.ErrPresetExist, nil, "preset '%s'", name)
}

func InvalidPresetName(name string) error {
	return newError(data.ErrInvalidPresetName, nil, "'%s' must be non-empty without whitespace or '/'", name)
}

func PresetTooLarge(name string, size, limit int64) error {
	return newError(data.ErrPresetTooLarge, nil, "preset '%s' has %d bytes, limit is %d", name, size, limit)
}

func BackendUnavailable(err error, name string) error {
	return newError(data.ErrBackendUnavailable, err, "backend '%s'", name)
}
