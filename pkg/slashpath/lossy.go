package slashpath

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// coerce returns raw as valid UTF-8, replacing each ill-formed byte with
// U+FFFD. It returns raw itself, and false, when raw is already valid.
func coerce(raw string) (string, bool) {
	if utf8.ValidString(raw) {
		return raw, false
	}

	s, _, err := transform.String(runes.ReplaceIllFormed(), raw)
	if err != nil {
		// Unreachable for an in-memory source; keep the result valid anyway.
		return strings.ToValidUTF8(raw, string(utf8.RuneError)), true
	}

	return s, true
}
