package data_test

import (
	"testing"

	"github.com/mwantia/dumpargs/data"
)

func TestFlag_Vocabulary(t *testing.T) {
	seen := make(map[string]data.Flag)
	for _, flag := range data.AllFlags() {
		if flag.Long() == "" {
			t.Errorf("Flag %d has no long name", flag)
		}
		if other, exists := seen[flag.Long()]; exists {
			t.Errorf("Long name '%s' used by %d and %d", flag.Long(), other, flag)
		}
		seen[flag.Long()] = flag

		found, ok := data.LookupFlag(flag.Long())
		if !ok || found != flag {
			t.Errorf("Expected lookup of '%s' to return %d, got %d", flag.Long(), flag, found)
		}
	}

	if data.FlagNone.Valid() {
		t.Errorf("Expected FlagNone to be invalid")
	}
}

func TestFlag_Matches(t *testing.T) {
	tests := map[string]struct {
		flag     data.Flag
		token    string
		expected bool
	}{
		"long":                {flag: data.FlagSpeed, token: "--speed", expected: true},
		"short":               {flag: data.FlagStart, token: "-s", expected: true},
		"single dash":         {flag: data.FlagSpeed, token: "-speed", expected: false},
		"no short":            {flag: data.FlagTrim, token: "-t", expected: false},
		"quoted":              {flag: data.FlagMD5, token: `"--md5"`, expected: false},
		"help alias":          {flag: data.FlagHelp, token: "-?", expected: true},
		"alias only for help": {flag: data.FlagVerbose, token: "-?", expected: false},
		"none":                {flag: data.FlagNone, token: "--", expected: false},
	}

	for name, test := range tests {
		t.Run(name, func(tst *testing.T) {
			if got := test.flag.Matches(test.token); got != test.expected {
				tst.Errorf("Expected %v, got %v", test.expected, got)
			}
		})
	}
}

func TestFlag_PreCommand(t *testing.T) {
	for _, flag := range data.PreCommandFlags {
		if !flag.IsPreCommand() {
			t.Errorf("Expected %s to be a global flag", flag)
		}
		if flag.Kind() != data.KindBoolean {
			t.Errorf("Expected %s to be boolean", flag)
		}
	}

	if data.FlagAdler32.IsPreCommand() {
		t.Errorf("Expected adler32 to be a command flag")
	}
}
