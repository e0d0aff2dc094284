package profile_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/mwantia/dumpargs/cmd"
	"github.com/mwantia/dumpargs/data"
	"github.com/mwantia/dumpargs/profile"
)

func TestBuildDefault_Line(t *testing.T) {
	speed := 8
	state := profile.BuildDefault('D', "disc.bin", &speed, profile.SystemIBMPCCompatible, profile.MediaTypeCDROM, nil)

	line, err := cmd.Generate(state)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !strings.HasPrefix(line, `media dump "D:" "disc.bin"`) {
		t.Errorf("Expected line to start with the command and positionals, got %q", line)
	}
	if !strings.Contains(line, "--speed 8") {
		t.Errorf("Expected line to contain the speed, got %q", line)
	}

	parsed, err := cmd.Parse(line)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !parsed.Equal(state) {
		t.Errorf("Expected default profile to round trip, got %v", parsed.Flags())
	}
}

func TestBuildDefault_MediaDefaults(t *testing.T) {
	tests := map[string]struct {
		system   profile.System
		media    profile.MediaType
		expected []data.Flag
	}{
		"cdrom": {
			system:   profile.SystemSonyPlayStation,
			media:    profile.MediaTypeCDROM,
			expected: []data.Flag{data.FlagFirstPregap, data.FlagFixOffset},
		},
		"dvd": {
			system:   profile.SystemSonyPlayStation2,
			media:    profile.MediaTypeDVD,
			expected: []data.Flag{data.FlagStoreEncrypted, data.FlagTrim},
		},
		"bluray": {
			system:   profile.SystemBDVideo,
			media:    profile.MediaTypeBluRay,
			expected: []data.Flag{data.FlagStoreEncrypted, data.FlagTrim},
		},
		"floppy": {
			system:   profile.SystemIBMPCCompatible,
			media:    profile.MediaTypeFloppyDisk,
			expected: []data.Flag{},
		},
	}

	for name, test := range tests {
		t.Run(name, func(tst *testing.T) {
			state := profile.BuildDefault('E', "out.bin", nil, test.system, test.media, nil)

			if got := state.Flags(); !slices.Equal(got, test.expected) {
				tst.Errorf("Expected %v, got %v", test.expected, got)
			}
			if state.IsSet(data.FlagTitleKeys) {
				tst.Errorf("Expected title-keys to stay off")
			}
			if state.Input != "E:" || state.Output != "out.bin" {
				tst.Errorf("Expected E: and out.bin, got %q and %q", state.Input, state.Output)
			}
		})
	}
}

func TestBuildDefault_Options(t *testing.T) {
	options := &profile.Options{
		RereadCount:       5,
		EnableDebug:       true,
		EnableVerbose:     false,
		ForceDumping:      true,
		StripPersonalData: true,
	}

	state := profile.BuildDefault('D', "disc.bin", nil, profile.SystemIBMPCCompatible, profile.MediaTypeHardDisk, options)

	expected := []data.Flag{data.FlagDebug, data.FlagForce, data.FlagPrivate, data.FlagRetryPasses}
	if got := state.Flags(); !slices.Equal(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	retries, _ := state.Value(data.FlagRetryPasses)
	if retries.Int16() != 5 {
		t.Errorf("Expected 5 retry passes, got %d", retries.Int16())
	}
}

// TestBuildDefault_InvalidMedia verifies the early exit for a media type the
// system does not use.
func TestBuildDefault_InvalidMedia(t *testing.T) {
	speed := 4
	options := &profile.Options{EnableDebug: true, RereadCount: 3}

	state := profile.BuildDefault('D', "disc.bin", &speed, profile.SystemNintendoWii, profile.MediaTypeCDROM, options)

	expected := []data.Flag{data.FlagSpeed}
	if got := state.Flags(); !slices.Equal(got, expected) {
		t.Errorf("Expected only speed, got %v", got)
	}
	if state.Command != cmd.CommandMediaDump {
		t.Errorf("Expected %s, got %s", cmd.CommandMediaDump, state.Command)
	}
	if state.Input != "D:" || state.Output != "disc.bin" {
		t.Errorf("Expected positionals to be set, got %q and %q", state.Input, state.Output)
	}
}

func TestBuildDefault_SpeedClamped(t *testing.T) {
	speed := 1000
	state := profile.BuildDefault('D', "disc.bin", &speed, profile.SystemAudioCD, profile.MediaTypeCDROM, nil)

	value, ok := state.Value(data.FlagSpeed)
	if !ok || value.Int8() != 127 {
		t.Errorf("Expected speed 127, got %v (%v)", value, ok)
	}
}

func TestSystems(t *testing.T) {
	for _, system := range profile.Systems() {
		parsed, err := profile.ParseSystem(system.String())
		if err != nil || parsed != system {
			t.Errorf("Expected %s to parse back, got %s (%v)", system, parsed, err)
		}

		if len(system.MediaTypes()) == 0 {
			t.Errorf("Expected %s to have media types", system)
		}
		for _, media := range system.MediaTypes() {
			if !system.Supports(media) {
				t.Errorf("Expected %s to support %s", system, media)
			}
		}
	}

	for _, media := range profile.MediaTypes() {
		parsed, err := profile.ParseMediaType(media.String())
		if err != nil || parsed != media {
			t.Errorf("Expected %s to parse back, got %s (%v)", media, parsed, err)
		}
	}

	if _, err := profile.ParseSystem("amiga"); err == nil {
		t.Errorf("Expected unknown system to fail")
	}
}
