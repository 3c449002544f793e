package slashpath

import (
	"fmt"
	"strings"
)

// Converter converts between slash paths and one platform's native paths.
// Use [Unix], [Windows] or [Native]. A Converter holds no mutable state and is
// safe for concurrent use.
type Converter struct {
	style style
}

var (
	// Unix converts paths for platforms whose separator is '/'.
	Unix = &Converter{style: unixStyle{}}

	// Windows converts paths for platforms whose separator is '\'.
	Windows = &Converter{style: windowsStyle{}}
)

// Lookup returns the converter named "unix", "windows" or "native".
func Lookup(name string) (*Converter, error) {
	switch strings.ToLower(name) {
	case "", "native":
		return Native, nil
	case Unix.String():
		return Unix, nil
	case Windows.String():
		return Windows, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// String returns the style name, "unix" or "windows".
func (c *Converter) String() string {
	return c.style.name()
}

// Separator returns the native path separator.
func (c *Converter) Separator() byte {
	return c.style.separator()
}

// Components returns the structural components of the native path p.
// Redundant separators produce no components; "." and ".." are kept.
func (c *Converter) Components(p string) []Component {
	return c.style.components(p)
}

// Equal reports whether a and b are the same native path, component by
// component.
func (c *Converter) Equal(a, b string) bool {
	return equalComponents(c.style.components(a), c.style.components(b))
}

// ToSlash converts the native path p to a slash path. It returns an
// [*EncodingError] if any component of p is not valid UTF-8.
func (c *Converter) ToSlash(p string) (string, error) {
	s, _, err := c.style.encode(p, false)

	return s, err
}

// ToSlashLossy converts the native path p to a slash path, replacing each
// ill-formed byte with U+FFFD.
func (c *Converter) ToSlashLossy(p string) string {
	s, _, _ := c.style.encode(p, true)

	return s
}

// ToSlashCow is like [Converter.ToSlash], but borrows p when it is already a
// slash path.
func (c *Converter) ToSlashCow(p string) (Cow, error) {
	s, rewritten, err := c.style.encode(p, false)
	if err != nil {
		return Cow{}, err
	}

	return newCow(p, s, rewritten), nil
}

// ToSlashLossyCow is like [Converter.ToSlashLossy], but borrows p when it is
// already a valid slash path.
func (c *Converter) ToSlashLossyCow(p string) Cow {
	s, rewritten, _ := c.style.encode(p, true)

	return newCow(p, s, rewritten)
}

// FromSlash converts the slash path s to a native path. Every '/' becomes the
// native separator.
func (c *Converter) FromSlash(s string) string {
	p, _ := c.style.decode(s)

	return p
}

// FromSlashLossy is like [Converter.FromSlash] for raw text that may not be
// valid UTF-8. Ill-formed bytes are replaced with U+FFFD first.
func (c *Converter) FromSlashLossy(raw string) string {
	return c.FromSlashLossyCow(raw).String()
}

// FromSlashCow is like [Converter.FromSlash], but borrows s when no
// separator had to be rewritten.
func (c *Converter) FromSlashCow(s string) Cow {
	p, rewritten := c.style.decode(s)

	return newCow(s, p, rewritten)
}

// FromSlashLossyCow is like [Converter.FromSlashLossy], but borrows raw when
// it needed neither coercion nor rewriting.
func (c *Converter) FromSlashLossyCow(raw string) Cow {
	s, coerced := coerce(raw)
	p, rewritten := c.style.decode(s)

	return newCow(raw, p, coerced || rewritten)
}

// FromBackslash converts a '\'-separated path to a native path. It only
// rewrites on [Unix]; on [Windows] '\' is already the separator.
func (c *Converter) FromBackslash(s string) string {
	p, _ := c.style.decodeBackslash(s)

	return p
}

// FromBackslashLossy is like [Converter.FromBackslash] for raw text that may
// not be valid UTF-8.
func (c *Converter) FromBackslashLossy(raw string) string {
	return c.FromBackslashLossyCow(raw).String()
}

// FromBackslashCow is like [Converter.FromBackslash], but borrows s when no
// separator had to be rewritten.
func (c *Converter) FromBackslashCow(s string) Cow {
	p, rewritten := c.style.decodeBackslash(s)

	return newCow(s, p, rewritten)
}

// FromBackslashLossyCow is like [Converter.FromBackslashLossy], but borrows
// raw when it needed neither coercion nor rewriting.
func (c *Converter) FromBackslashLossyCow(raw string) Cow {
	s, coerced := coerce(raw)
	p, rewritten := c.style.decodeBackslash(s)

	return newCow(raw, p, coerced || rewritten)
}
