package slashpath

import (
	"strings"
	"unicode/utf8"
)

// ComponentKind identifies the role of a [Component] within a native path.
type ComponentKind uint8

const (
	// KindPrefix is a Windows path prefix such as "C:" or `\\server\share`.
	KindPrefix ComponentKind = iota
	// KindRootDir is the root directory marker.
	KindRootDir
	// KindCurDir is a "." segment.
	KindCurDir
	// KindParentDir is a ".." segment.
	KindParentDir
	// KindNormal is a plain name segment.
	KindNormal
)

func (k ComponentKind) String() string {
	switch k {
	case KindPrefix:
		return "prefix"
	case KindRootDir:
		return "root_dir"
	case KindCurDir:
		return "cur_dir"
	case KindParentDir:
		return "parent_dir"
	case KindNormal:
		return "normal"
	}

	return "unknown"
}

// Component is one structural element of a native path.
type Component struct {
	// Text is the raw native text of the component. It is empty for a root
	// implied by a UNC or device prefix.
	Text string
	// Prefix describes the prefix. It is only set when Kind is [KindPrefix].
	Prefix Prefix
	Kind   ComponentKind
}

func (c Component) equal(o Component) bool {
	if c.Kind != o.Kind {
		return false
	}

	switch c.Kind {
	case KindPrefix:
		return c.Prefix.equal(o.Prefix)
	case KindRootDir, KindCurDir, KindParentDir:
		return true
	case KindNormal:
		return c.Text == o.Text
	}

	return false
}

func equalComponents(a, b []Component) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].equal(b[i]) {
			return false
		}
	}

	return true
}

// classify returns the component for a single non-empty body segment.
func classify(seg string) Component {
	switch seg {
	case ".":
		return Component{Kind: KindCurDir, Text: seg}
	case "..":
		return Component{Kind: KindParentDir, Text: seg}
	}

	return Component{Kind: KindNormal, Text: seg}
}

// render joins components with '/'.
//
// A prefix is written verbatim and is not followed by a separator, so the
// root that usually follows it does not produce "C://". The trailing
// separator is dropped unless it stands for a root written in the native
// path, as in "/" or `C:\`.
//
// In strict mode, the first prefix or normal component that is not valid
// UTF-8 is returned as bad. In lossy mode such components are coerced.
func render(comps []Component, sizeHint int, lossy bool) (string, *Component) {
	var b strings.Builder

	b.Grow(sizeHint + 1)

	for i := range comps {
		c := &comps[i]

		switch c.Kind {
		case KindRootDir:
		case KindCurDir:
			b.WriteByte('.')
		case KindParentDir:
			b.WriteString("..")
		case KindPrefix, KindNormal:
			text := c.Text
			if lossy {
				text, _ = coerce(text)
			} else if !utf8.ValidString(text) {
				return "", c
			}

			b.WriteString(text)

			if c.Kind == KindPrefix {
				continue
			}
		}

		b.WriteByte('/')
	}

	s := b.String()
	if s != "/" && strings.HasSuffix(s, "/") && !endsWithPhysicalRoot(comps) {
		s = s[:len(s)-1]
	}

	return s, nil
}

func endsWithPhysicalRoot(comps []Component) bool {
	if len(comps) == 0 {
		return false
	}

	last := comps[len(comps)-1]

	return last.Kind == KindRootDir && last.Text != ""
}
