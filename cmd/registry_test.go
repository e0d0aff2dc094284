package cmd_test

import (
	"testing"

	"github.com/mwantia/dumpargs/cmd"
	"github.com/mwantia/dumpargs/data"
)

// TestRegistry_ShortNamesUnique verifies that no two supported flags of a command
// share a short spelling.
func TestRegistry_ShortNamesUnique(t *testing.T) {
	for _, command := range cmd.Commands() {
		t.Run(command.Canonical(), func(tst *testing.T) {
			seen := make(map[string]data.Flag)
			for _, flag := range cmd.SupportedFlags(command) {
				short := flag.Short()
				if short == "" {
					continue
				}
				if other, exists := seen[short]; exists {
					tst.Errorf("Short name '-%s' used by both %s and %s", short, other, flag)
				}
				seen[short] = flag
			}
		})
	}
}

func TestRegistry_FlagsValid(t *testing.T) {
	for _, command := range cmd.Commands() {
		for _, flag := range cmd.SupportedFlags(command) {
			if !flag.Valid() {
				t.Errorf("%s references invalid flag %d", command, flag)
			}
			if flag.IsPreCommand() {
				t.Errorf("%s lists global flag %s", command, flag)
			}
		}
	}
}

// TestRegistry_EmissionOrder verifies kind groups first, then long names.
func TestRegistry_EmissionOrder(t *testing.T) {
	for _, command := range cmd.Commands() {
		flags := cmd.SupportedFlags(command)
		for i := 1; i < len(flags); i++ {
			prev, cur := flags[i-1], flags[i]
			if prev.Kind() > cur.Kind() || (prev.Kind() == cur.Kind() && prev.Long() >= cur.Long()) {
				t.Errorf("%s: %s emitted before %s", command, prev, cur)
			}
		}
	}
}

func TestRegistry_Commands(t *testing.T) {
	commands := cmd.Commands()
	if len(commands) != 29 {
		t.Errorf("Expected 29 commands, got %d", len(commands))
	}

	seen := make(map[data.Command]bool)
	for _, command := range commands {
		if seen[command] {
			t.Errorf("Duplicate command %s", command)
		}
		seen[command] = true

		if !cmd.Known(command) {
			t.Errorf("Expected %s to be known", command)
		}
	}

	if cmd.Known(data.CommandNone) {
		t.Errorf("Expected no command to be unknown")
	}
	if len(cmd.SupportedFlags(data.CommandNone)) != 0 {
		t.Errorf("Expected no flags for no command")
	}
}

func TestRegistry_RequiresValue(t *testing.T) {
	if !cmd.RequiresValue(cmd.CommandImageDecode, data.FlagStart) {
		t.Errorf("Expected start to be mandatory for image decode")
	}
	if !cmd.RequiresValue(cmd.CommandImagePrint, data.FlagStart) {
		t.Errorf("Expected start to be mandatory for image print")
	}
	if cmd.RequiresValue(cmd.CommandImageDecode, data.FlagLength) {
		t.Errorf("Expected length to be optional")
	}
	if cmd.RequiresValue(cmd.CommandMediaDump, data.FlagSpeed) {
		t.Errorf("Expected speed to be optional")
	}
}

func TestUsage(t *testing.T) {
	tests := map[data.Command]string{
		cmd.CommandMediaDump:      "media dump <input> <output> [flags]",
		cmd.CommandImageCompare:   "image compare <input> <input2>",
		cmd.CommandRemote:         "remote <host>",
		cmd.CommandFormats:        "formats",
		cmd.CommandDatabaseUpdate: "database update [flags]",
	}

	for command, expected := range tests {
		if got := cmd.Usage(command); got != expected {
			t.Errorf("Expected %q, got %q", expected, got)
		}
	}
}
