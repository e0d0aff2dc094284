package cmd_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/mwantia/dumpargs/cmd"
	"github.com/mwantia/dumpargs/data"
)

func TestNormalize_Spellings(t *testing.T) {
	tests := map[string]data.Command{
		"archive extract": cmd.CommandArchiveExtract,
		"arc x":           cmd.CommandArchiveExtract,
		"arc ls":          cmd.CommandArchiveList,
		"db stats":        cmd.CommandDatabaseStats,
		"dev ls":          cmd.CommandDeviceList,
		"device report":   cmd.CommandDeviceReport,
		"fs x":            cmd.CommandFilesystemExtract,
		"fi info":         cmd.CommandFilesystemInfo,
		"filesystem ls":   cmd.CommandFilesystemList,
		"i chk":           cmd.CommandImageChecksum,
		"img cs":          cmd.CommandImageCreateSidecar,
		"image cmp":       cmd.CommandImageCompare,
		"m dump":          cmd.CommandMediaDump,
		"media scan":      cmd.CommandMediaScan,
		"media compare":   cmd.CommandImageCompare,
		"m cmp":           cmd.CommandImageCompare,
		"configure":       cmd.CommandConfigure,
		"list-encodings":  cmd.CommandListEncodings,
		"list-namespaces": cmd.CommandListNamespaces,
		"remote":          cmd.CommandRemote,
	}

	for line, expected := range tests {
		t.Run(line, func(tst *testing.T) {
			tokens := strings.Fields(line)
			tokens = append(tokens, "")

			got, err := cmd.Normalize(tokens[0], tokens[1])
			if err != nil {
				tst.Fatalf("Normalize failed: %v", err)
			}
			if got != expected {
				tst.Errorf("Expected %s, got %s", expected, got)
			}
			if got.Tokens() != len(strings.Fields(line)) {
				tst.Errorf("Expected %d tokens, got %d", len(strings.Fields(line)), got.Tokens())
			}
		})
	}
}

// TestNormalize_Idempotent verifies that every canonical form resolves to itself.
func TestNormalize_Idempotent(t *testing.T) {
	for _, command := range cmd.Commands() {
		t.Run(command.Canonical(), func(tst *testing.T) {
			tokens := append(strings.Fields(command.Canonical()), "")

			got, err := cmd.Normalize(tokens[0], tokens[1])
			if err != nil {
				tst.Fatalf("Normalize failed: %v", err)
			}
			if got != command {
				tst.Errorf("Expected %s, got %s", command, got)
			}

			again := append(strings.Fields(got.Canonical()), "")
			if second, err := cmd.Normalize(again[0], again[1]); err != nil || second != got {
				tst.Errorf("Expected %s on second pass, got %s (%v)", got, second, err)
			}
		})
	}
}

func TestNormalize_Invalid(t *testing.T) {
	tests := map[string][2]string{
		"unknown":        {"not-a-real-command", ""},
		"family only":    {"media", ""},
		"unknown action": {"media", "burn"},
		"cross family":   {"archive", "dump"},
		"case sensitive": {"Media", "Dump"},
		"empty":          {"", ""},
	}

	for name, tokens := range tests {
		t.Run(name, func(tst *testing.T) {
			got, err := cmd.Normalize(tokens[0], tokens[1])
			if !errors.Is(err, data.ErrInvalidCommand) {
				tst.Fatalf("Expected ErrInvalidCommand, got %v", err)
			}
			if !got.IsNone() {
				tst.Errorf("Expected no command, got %s", got)
			}
		})
	}
}

func TestIsFamily(t *testing.T) {
	for _, token := range []string{"archive", "arc", "db", "dev", "fs", "fi", "i", "img", "m"} {
		if !cmd.IsFamily(token) {
			t.Errorf("Expected '%s' to be a family", token)
		}
	}

	if cmd.IsFamily("remote") {
		t.Errorf("Expected 'remote' to be a standalone command")
	}
}
