package data_test

import (
	"slices"
	"testing"

	"github.com/mwantia/dumpargs/data"
)

var mediaDump = data.Command{Family: "media", Action: "dump"}

func TestState_PresenceAndValues(t *testing.T) {
	state := data.NewCommandState(mediaDump)

	state.Set(data.FlagTrim, true)
	state.SetInt8(data.FlagSpeed, 8)
	state.Set(data.FlagForce, false)

	if !state.IsSet(data.FlagTrim) {
		t.Errorf("Expected trim to be set")
	}
	if state.IsSet(data.FlagForce) {
		t.Errorf("Expected force to be absent")
	}
	if present, ok := state.Presence(data.FlagForce); !ok || present {
		t.Errorf("Expected an explicit false entry for force, got %v (%v)", present, ok)
	}

	speed, ok := state.Value(data.FlagSpeed)
	if !ok || speed.Kind != data.KindInt8 || speed.Int8() != 8 {
		t.Errorf("Expected int8 speed 8, got %+v", speed)
	}

	expected := []data.Flag{data.FlagTrim, data.FlagSpeed}
	if got := state.Flags(); !slices.Equal(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	state.Unset(data.FlagSpeed)
	if _, ok := state.Value(data.FlagSpeed); ok || state.IsSet(data.FlagSpeed) {
		t.Errorf("Expected speed to be removed")
	}
}

func TestState_ZeroValueUsable(t *testing.T) {
	var state data.State

	if state.IsSet(data.FlagTrim) {
		t.Errorf("Expected empty state")
	}

	state.SetString(data.FlagEncoding, "utf-8")
	if v, ok := state.Value(data.FlagEncoding); !ok || v.Str != "utf-8" {
		t.Errorf("Expected encoding utf-8, got %+v", v)
	}
}

func TestState_CloneIsDeep(t *testing.T) {
	state := data.NewCommandState(mediaDump)
	state.Input = "D:"
	state.Set(data.FlagTrim, true)

	clone := state.Clone()
	clone.Set(data.FlagEject, true)
	clone.Input = "E:"

	if state.IsSet(data.FlagEject) || state.Input != "D:" {
		t.Errorf("Expected original state to be unchanged")
	}
	if !clone.IsSet(data.FlagTrim) {
		t.Errorf("Expected clone to keep trim")
	}
}

func TestState_Restrict(t *testing.T) {
	state := data.NewCommandState(mediaDump)
	state.Set(data.FlagDebug, true)
	state.Set(data.FlagTrim, true)
	state.Set(data.FlagMD5, true)
	state.SetInt64(data.FlagStart, 10)

	state.Restrict(func(flag data.Flag) bool {
		return flag == data.FlagTrim
	})

	expected := []data.Flag{data.FlagDebug, data.FlagTrim}
	if got := state.Flags(); !slices.Equal(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if _, ok := state.Value(data.FlagStart); ok {
		t.Errorf("Expected start value to be dropped")
	}
}

func TestState_Equal(t *testing.T) {
	build := func() *data.State {
		s := data.NewCommandState(mediaDump)
		s.Input = "D:"
		s.Output = "disc.bin"
		s.Set(data.FlagTrim, true)
		s.SetInt8(data.FlagSpeed, 8)
		return s
	}

	a, b := build(), build()
	if !a.Equal(b) {
		t.Fatalf("Expected equal states")
	}

	// Explicit false equals absent
	b.Set(data.FlagForce, false)
	if !a.Equal(b) {
		t.Errorf("Expected explicit false to equal absence")
	}

	b.SetInt8(data.FlagSpeed, 4)
	if a.Equal(b) {
		t.Errorf("Expected different speed to differ")
	}

	c := build()
	c.Output = "other.bin"
	if a.Equal(c) {
		t.Errorf("Expected different output to differ")
	}

	if a.Equal(nil) {
		t.Errorf("Expected state to differ from nil")
	}
}
