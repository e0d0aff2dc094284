package cmd

import (
	"strconv"
	"strings"

	"github.com/mwantia/dumpargs/data"
	"github.com/mwantia/dumpargs/data/errors"
)

// Generate renders the state as a command line:
//
//	[global flags] <command> [positionals] [flags]
//
// Global flags follow data.PreCommandFlags. Positionals are quoted. Command flags
// follow the emission order of SupportedFlags; flags outside the support set are
// never emitted.
func Generate(state *data.State) (string, error) {
	if state == nil {
		return "", errors.GenerationBlocked("no state")
	}

	var tokens []string
	for _, flag := range data.PreCommandFlags {
		if state.IsSet(flag) {
			tokens = append(tokens, flag.LongToken())
		}
	}

	command := state.Command
	if command.IsNone() {
		return "", errors.GenerationBlocked("no command selected")
	}
	if !Known(command) {
		return "", errors.GenerationBlocked("unknown command '%s'", command.Canonical())
	}
	tokens = append(tokens, command.Canonical())

	positionals, err := positionalTokens(state)
	if err != nil {
		return "", err
	}
	tokens = append(tokens, positionals...)

	for _, flag := range orderedFlags(command) {
		tokens = append(tokens, flagTokens(state, flag)...)
	}

	return strings.Join(tokens, " "), nil
}

func flagTokens(state *data.State, flag data.Flag) []string {
	if !state.IsSet(flag) {
		return nil
	}

	if flag.Kind() == data.KindBoolean {
		return []string{flag.LongToken()}
	}

	value, ok := state.Value(flag)
	if !ok {
		return nil
	}

	switch {
	case flag.Kind() == data.KindString:
		return []string{flag.LongToken(), Quote(value.Str)}
	case value.Int == SentinelAll:
		if literal, ok := Sentinel(state.Command, flag); ok {
			return []string{flag.LongToken(), literal}
		}
	}

	return []string{flag.LongToken(), strconv.FormatInt(value.Int, 10)}
}

func positionalTokens(state *data.State) ([]string, error) {
	var values []string
	var names []string

	switch ArityOf(state.Command) {
	case ArityInput:
		values, names = []string{state.Input}, []string{"an input"}
	case ArityInputPair:
		values, names = []string{state.Input, state.Input2}, []string{"an input", "a second input"}
	case ArityInputOutput:
		values, names = []string{state.Input, state.Output}, []string{"an input", "an output"}
	case ArityRemoteHost:
		values, names = []string{state.RemoteHost}, []string{"a remote host"}
	}

	tokens := make([]string, 0, len(values))
	for i, value := range values {
		if strings.TrimSpace(value) == "" {
			return nil, errors.GenerationBlocked("'%s' requires %s", state.Command.Canonical(), names[i])
		}
		tokens = append(tokens, Quote(value))
	}

	return tokens, nil
}
