package cmd_test

import (
	"slices"
	"testing"

	"github.com/mwantia/dumpargs/cmd"
)

func TestTokenize(t *testing.T) {
	tests := map[string]struct {
		line     string
		expected []string
	}{
		"plain":        {line: "media dump a b", expected: []string{"media", "dump", "a", "b"}},
		"whitespace":   {line: "  image\tinfo   x  ", expected: []string{"image", "info", "x"}},
		"quoted":       {line: `--comments "hello world"`, expected: []string{"--comments", `"hello world"`}},
		"backslash":    {line: `"C:\My Images\a.iso"`, expected: []string{`"C:\My Images\a.iso"`}},
		"empty quotes": {line: `a "" b`, expected: []string{"a", `""`, "b"}},
		"unterminated": {line: `a "b c`, expected: []string{"a", `"b c`}},
		"empty":        {line: "", expected: nil},
	}

	for name, test := range tests {
		t.Run(name, func(tst *testing.T) {
			got := cmd.Tokenize(test.line)
			if !slices.Equal(got, test.expected) {
				tst.Errorf("Expected %q, got %q", test.expected, got)
			}
		})
	}
}

func TestQuoteUnquote(t *testing.T) {
	for _, value := range []string{"", "plain", "with space", `C:\dir\file.iso`} {
		if got := cmd.Unquote(cmd.Quote(value)); got != value {
			t.Errorf("Expected %q, got %q", value, got)
		}
	}

	if got := cmd.Unquote(`"`); got != `"` {
		t.Errorf("Expected a single quote to stay, got %q", got)
	}
	if got := cmd.Unquote("bare"); got != "bare" {
		t.Errorf("Expected bare token to stay, got %q", got)
	}
}
