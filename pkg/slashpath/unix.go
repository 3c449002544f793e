package slashpath

import (
	"strings"
	"unicode/utf8"
)

type unixStyle struct{}

func (unixStyle) name() string { return "unix" }

func (unixStyle) separator() byte { return '/' }

func (unixStyle) components(p string) []Component {
	var comps []Component

	rest := p
	if strings.HasPrefix(rest, "/") {
		comps = append(comps, Component{Kind: KindRootDir, Text: "/"})
		rest = rest[1:]
	}

	for seg := range strings.SplitSeq(rest, "/") {
		if seg == "" {
			continue
		}

		comps = append(comps, classify(seg))
	}

	return comps
}

func (u unixStyle) encode(p string, lossy bool) (string, bool, error) {
	text, coerced := p, false

	switch {
	case lossy:
		text, coerced = coerce(p)
	case !utf8.ValidString(p):
		_, bad := render(u.components(p), len(p), false)
		if bad == nil {
			bad = &Component{Kind: KindNormal, Text: p}
		}

		return "", false, &EncodingError{Path: p, Component: *bad}
	}

	if unixCanonical(text) {
		return text, coerced, nil
	}

	s, _ := render(u.components(text), len(text), false)

	return s, true, nil
}

func (unixStyle) decode(s string) (string, bool) {
	return s, false
}

func (unixStyle) decodeBackslash(s string) (string, bool) {
	return rewriteSeparator(s, '\\', '/')
}

// unixCanonical reports whether s already renders to itself: no empty
// segments and no trailing separator other than a lone root.
func unixCanonical(s string) bool {
	if strings.Contains(s, "//") {
		return false
	}

	return s == "/" || !strings.HasSuffix(s, "/")
}
