package slashpath

import "strings"

// rewriteSeparator replaces every from byte in s with to. It returns s itself,
// and false, when s contains no from byte.
//
// Both separators are ASCII, so a byte scan never matches inside a multi-byte
// UTF-8 sequence or an ill-formed byte.
func rewriteSeparator(s string, from, to byte) (string, bool) {
	i := strings.IndexByte(s, from)
	if i < 0 {
		return s, false
	}

	b := []byte(s)
	for ; i < len(b); i++ {
		if b[i] == from {
			b[i] = to
		}
	}

	return string(b), true
}
