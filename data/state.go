package data

import (
	"maps"
	"slices"
)

// State is the structured form of a single command line. It is owned by the caller
// and never retained by the generator or parser.
type State struct {
	Command Command

	presence map[Flag]bool
	values   map[Flag]Value

	// Positional arguments, empty means unset
	Input      string
	Input2     string
	Output     string
	RemoteHost string
}

// NewState creates an empty state with no command selected.
func NewState() *State {
	return &State{
		presence: make(map[Flag]bool),
		values:   make(map[Flag]Value),
	}
}

// NewCommandState creates an empty state for the given command.
func NewCommandState(command Command) *State {
	s := NewState()
	s.Command = command
	return s
}

func (s *State) init() {
	if s.presence == nil {
		s.presence = make(map[Flag]bool)
	}
	if s.values == nil {
		s.values = make(map[Flag]Value)
	}
}

// Set records the presence of a flag. Setting false keeps the entry but the flag
// is treated as absent.
func (s *State) Set(flag Flag, present bool) {
	s.init()
	s.presence[flag] = present
}

// IsSet reports whether the flag is present.
func (s *State) IsSet(flag Flag) bool {
	return s.presence[flag]
}

// Presence returns the raw presence entry and whether one exists.
func (s *State) Presence(flag Flag) (bool, bool) {
	present, ok := s.presence[flag]
	return present, ok
}

// SetValue stores a typed value and marks the flag present.
func (s *State) SetValue(flag Flag, value Value) {
	s.init()
	s.presence[flag] = true
	s.values[flag] = value
}

func (s *State) SetInt8(flag Flag, v int8) {
	s.SetValue(flag, Int8Value(v))
}

func (s *State) SetInt16(flag Flag, v int16) {
	s.SetValue(flag, Int16Value(v))
}

func (s *State) SetInt32(flag Flag, v int32) {
	s.SetValue(flag, Int32Value(v))
}

func (s *State) SetInt64(flag Flag, v int64) {
	s.SetValue(flag, Int64Value(v))
}

func (s *State) SetString(flag Flag, v string) {
	s.SetValue(flag, StringValue(v))
}

// Value returns the typed value stored for a flag.
func (s *State) Value(flag Flag) (Value, bool) {
	v, ok := s.values[flag]
	return v, ok
}

// Unset removes both the presence and the value of a flag.
func (s *State) Unset(flag Flag) {
	delete(s.presence, flag)
	delete(s.values, flag)
}

// Flags returns every flag currently present, in vocabulary order.
func (s *State) Flags() []Flag {
	flags := make([]Flag, 0, len(s.presence))
	for flag, present := range s.presence {
		if present {
			flags = append(flags, flag)
		}
	}
	slices.Sort(flags)
	return flags
}

// Restrict drops every command flag for which keep returns false.
// Pre-command flags live outside any support set and are always kept.
func (s *State) Restrict(keep func(Flag) bool) {
	for flag := range s.presence {
		if !flag.IsPreCommand() && !keep(flag) {
			s.Unset(flag)
		}
	}
	for flag := range s.values {
		if !flag.IsPreCommand() && !keep(flag) {
			s.Unset(flag)
		}
	}
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.presence = maps.Clone(s.presence)
	c.values = maps.Clone(s.values)
	c.init()
	return &c
}

// Equal compares the effective content of two states: command, positionals, the
// set of present flags and the values of present typed flags.
func (s *State) Equal(other *State) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Command != other.Command ||
		s.Input != other.Input ||
		s.Input2 != other.Input2 ||
		s.Output != other.Output ||
		s.RemoteHost != other.RemoteHost {
		return false
	}

	flags := s.Flags()
	if !slices.Equal(flags, other.Flags()) {
		return false
	}

	for _, flag := range flags {
		if flag.Kind() == KindBoolean {
			continue
		}
		a, aok := s.values[flag]
		b, bok := other.values[flag]
		if aok != bok || a != b {
			return false
		}
	}

	return true
}
