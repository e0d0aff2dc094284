package cmd

import (
	"strings"
	"unicode"
)

// Tokenize splits a command line on runs of whitespace, except inside double
// quotes. Quotes are kept in the tokens; use Unquote when consuming a value.
// An unterminated quote extends to the end of the line.
func Tokenize(line string) []string {
	var tokens []string
	var current strings.Builder

	quoted := false
	started := false
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
			current.WriteRune(r)
		case unicode.IsSpace(r) && !quoted:
			if started {
				tokens = append(tokens, current.String())
				current.Reset()
				started = false
			}
		default:
			started = true
			current.WriteRune(r)
		}
	}

	if started {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// Unquote strips one pair of surrounding double quotes.
func Unquote(token string) string {
	if len(token) >= 2 && strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`) {
		return token[1 : len(token)-1]
	}
	return token
}

// Quote wraps a value in double quotes for emission.
func Quote(value string) string {
	return `"` + value + `"`
}
