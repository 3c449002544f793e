package slashpath

import "strings"

type windowsStyle struct{}

func (windowsStyle) name() string { return "windows" }

func (windowsStyle) separator() byte { return '\\' }

// components walks p the way Windows parses paths: an optional prefix, an
// optional root, then body segments. Both '\' and '/' separate, except after
// a verbatim prefix where only '\' does.
func (windowsStyle) components(p string) []Component {
	var comps []Component

	rest := p
	verbatim := false

	prefix, hasPrefix := parsePrefix(p)
	if hasPrefix {
		comps = append(comps, Component{Kind: KindPrefix, Text: prefix.Raw, Prefix: prefix})
		rest = p[len(prefix.Raw):]
		verbatim = prefix.IsVerbatim()
	}

	isSep := func(r rune) bool {
		return r == '\\' || (!verbatim && r == '/')
	}

	switch {
	case rest != "" && isSep(rune(rest[0])):
		comps = append(comps, Component{Kind: KindRootDir, Text: rest[:1]})
		rest = rest[1:]
	case hasPrefix && prefix.HasImplicitRoot() && !verbatim:
		comps = append(comps, Component{Kind: KindRootDir})
	}

	for _, seg := range strings.FieldsFunc(rest, isSep) {
		comps = append(comps, classify(seg))
	}

	return comps
}

func (w windowsStyle) encode(p string, lossy bool) (string, bool, error) {
	s, bad := render(w.components(p), len(p), lossy)
	if bad != nil {
		return "", false, &EncodingError{Path: p, Component: *bad}
	}

	if s == p {
		return p, false, nil
	}

	return s, true, nil
}

func (windowsStyle) decode(s string) (string, bool) {
	return rewriteSeparator(s, '/', '\\')
}

func (windowsStyle) decodeBackslash(s string) (string, bool) {
	return s, false
}
