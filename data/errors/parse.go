package errors

import "github.com/mwantia/dumpargs/data"

func EmptyInput() error {
	return data.ErrEmptyInput
}

func InvalidCommand(tokens string) error {
	return newError(data.ErrInvalidCommand, nil, "unable to resolve '%s'", tokens)
}

func MissingCommand() error {
	return newError(data.ErrInvalidCommand, nil, "no command after global flags")
}

func MissingRequiredValue(err error, flag data.Flag, command data.Command) error {
	return newError(data.ErrMissingRequiredValue, err, "flag '--%s' of '%s'", flag.Long(), command.Canonical())
}

func IgnoredValue(err error, flag data.Flag, token string) error {
	return newError(data.ErrMissingRequiredValue, err, "value '%s' ignored for flag '--%s'", token, flag.Long())
}

func MissingPositional(name string, command data.Command) error {
	return newError(data.ErrMissingPositional, nil, "'%s' requires %s", command.Canonical(), name)
}

func TrailingTokens(tokens []string) error {
	return newError(data.ErrTrailingTokens, nil, "%q", tokens)
}

func GenerationBlocked(format string, args ...any) error {
	return newError(data.ErrGenerationBlocked, nil, format, args...)
}
