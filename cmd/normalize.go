package cmd

import (
	"slices"
	"strings"

	"github.com/mwantia/dumpargs/data"
	"github.com/mwantia/dumpargs/data/errors"
)

// Normalize resolves one or two command tokens into a canonical command.
// When first names a family, second is required and resolved against that
// family's actions; otherwise first is resolved against the standalone actions.
// The returned command consumes Command.Tokens() tokens.
func Normalize(first, second string) (data.Command, error) {
	if fam, ok := lookupFamily(first); ok {
		if second == "" {
			return data.CommandNone, errors.InvalidCommand(first)
		}
		if command, ok := lookupAction(fam.actions, second); ok {
			return command, nil
		}
		return data.CommandNone, errors.InvalidCommand(strings.Join([]string{first, second}, " "))
	}

	if command, ok := lookupAction(standalones, first); ok {
		return command, nil
	}

	return data.CommandNone, errors.InvalidCommand(first)
}

// IsFamily reports whether token is one of the family spellings.
func IsFamily(token string) bool {
	_, ok := lookupFamily(token)
	return ok
}

func lookupFamily(token string) (family, bool) {
	for _, fam := range families {
		if slices.Contains(fam.spellings, token) {
			return fam, true
		}
	}
	return family{}, false
}

func lookupAction(actions []action, token string) (data.Command, bool) {
	for _, act := range actions {
		if slices.Contains(act.spellings, token) {
			return act.command, true
		}
	}
	return data.CommandNone, false
}
