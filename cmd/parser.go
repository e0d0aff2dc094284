package cmd

import (
	"strings"

	"github.com/mwantia/dumpargs/data"
	"github.com/mwantia/dumpargs/data/errors"
	"github.com/mwantia/dumpargs/log"
)

// Parser turns a command line into a data.State. A Parser keeps no per-call state
// and can be shared between goroutines.
type Parser struct {
	logger *log.Logger
}

func NewParser(logger *log.Logger) *Parser {
	if logger == nil {
		logger = log.Discard()
	}

	return &Parser{
		logger: logger,
	}
}

var defaultParser = NewParser(nil)

// Parse parses line with a parser that does not log.
func Parse(line string) (*data.State, error) {
	return defaultParser.Parse(line)
}

// Parse parses line and logs every ignored flag value as a warning.
func (cp *Parser) Parse(line string) (*data.State, error) {
	state, warnings, err := cp.ParseWithWarnings(line)
	for _, warning := range warnings {
		cp.logger.Warn("%v", warning)
	}
	if err != nil {
		cp.logger.Debug("Rejected command line %q: %v", line, err)
		return nil, err
	}

	cp.logger.Debug("Parsed '%s' with %d flags", state.Command, len(state.Flags()))
	return state, nil
}

// ParseWithWarnings parses line and additionally returns the typed flag values
// that were left unset because they were missing or malformed.
func (cp *Parser) ParseWithWarnings(line string) (*data.State, []error, error) {
	warnings := &data.Errors{}

	if strings.TrimSpace(line) == "" {
		return nil, nil, errors.EmptyInput()
	}

	cur := newCursor(Tokenize(line))
	state := data.NewState()

	for matchPreCommand(cur, state) {
	}

	if cur.done() {
		return nil, nil, errors.MissingCommand()
	}

	first, _ := cur.peek(0)
	second, _ := cur.peek(1)
	command, err := Normalize(first, second)
	if err != nil {
		return nil, nil, err
	}
	cur.advance(command.Tokens())
	state.Command = command

	arity := ArityOf(command)
	consumed := false
	if arity != ArityNone {
		if token, ok := cur.peek(0); ok && !isFlagToken(command, token) {
			if err := consumePositionals(cur, state, arity); err != nil {
				return nil, warnings.List(), err
			}
			consumed = true
		}
	}

	for {
		matched, err := matchFlag(cur, state, warnings)
		if err != nil {
			return nil, warnings.List(), err
		}
		if !matched {
			break
		}
	}

	if !consumed {
		if err := consumePositionals(cur, state, arity); err != nil {
			return nil, warnings.List(), err
		}
	}

	if !cur.done() {
		return nil, warnings.List(), errors.TrailingTokens(cur.remaining())
	}

	return state, warnings.List(), nil
}

// matchPreCommand consumes one global flag at the cursor, if any.
func matchPreCommand(cur *cursor, state *data.State) bool {
	token, ok := cur.peek(0)
	if !ok {
		return false
	}

	for _, flag := range data.PreCommandFlags {
		if flag.Matches(token) {
			state.Set(flag, true)
			cur.advance(1)
			return true
		}
	}

	return false
}

// matchFlag consumes one supported flag, and its value, at the cursor.
func matchFlag(cur *cursor, state *data.State, warnings *data.Errors) (bool, error) {
	token, ok := cur.peek(0)
	if !ok {
		return false, nil
	}

	for _, flag := range orderedFlags(state.Command) {
		if !flag.Matches(token) {
			continue
		}

		if flag.Kind() == data.KindBoolean {
			state.Set(flag, true)
			cur.advance(1)
			return true, nil
		}

		return true, matchValue(cur, state, flag, warnings)
	}

	return false, nil
}

func matchValue(cur *cursor, state *data.State, flag data.Flag, warnings *data.Errors) error {
	command := state.Command

	token, ok := cur.peek(1)
	if !ok || isFlagToken(command, token) {
		if RequiresValue(command, flag) {
			return errors.MissingRequiredValue(nil, flag, command)
		}

		warnings.Add(errors.IgnoredValue(nil, flag, ""))
		cur.advance(1)
		return nil
	}

	value, err := parseFlagValue(command, flag, Unquote(token))
	if err != nil {
		if RequiresValue(command, flag) {
			return errors.MissingRequiredValue(err, flag, command)
		}

		warnings.Add(errors.IgnoredValue(err, flag, token))
		cur.advance(2)
		return nil
	}

	state.SetValue(flag, value)
	cur.advance(2)
	return nil
}

func parseFlagValue(command data.Command, flag data.Flag, token string) (data.Value, error) {
	if literal, ok := Sentinel(command, flag); ok && strings.EqualFold(token, literal) {
		return data.Int64Value(SentinelAll), nil
	}

	return data.ParseValue(flag.Kind(), token)
}

// isFlagToken reports whether token spells a flag supported by the command.
func isFlagToken(command data.Command, token string) bool {
	for _, flag := range orderedFlags(command) {
		if flag.Matches(token) {
			return true
		}
	}
	return false
}

func consumePositionals(cur *cursor, state *data.State, arity Arity) error {
	var names []string
	var targets []*string

	switch arity {
	case ArityInput:
		names = []string{"an input"}
		targets = []*string{&state.Input}
	case ArityInputPair:
		names = []string{"an input", "a second input"}
		targets = []*string{&state.Input, &state.Input2}
	case ArityInputOutput:
		names = []string{"an input", "an output"}
		targets = []*string{&state.Input, &state.Output}
	case ArityRemoteHost:
		names = []string{"a remote host"}
		targets = []*string{&state.RemoteHost}
	}

	for i, target := range targets {
		token, ok := cur.peek(0)
		if !ok {
			return errors.MissingPositional(names[i], state.Command)
		}

		value := Unquote(token)
		if strings.TrimSpace(value) == "" {
			return errors.MissingPositional(names[i], state.Command)
		}

		*target = value
		cur.advance(1)
	}

	return nil
}
