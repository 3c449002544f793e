package slashpath

// style is the platform-specific half of a [Converter]. It is implemented
// exactly twice, by unixStyle and windowsStyle.
type style interface {
	name() string
	separator() byte
	components(p string) []Component

	// encode renders the native path p as slash text. The bool reports
	// whether the result differs from p; when it does not, p itself is
	// returned.
	encode(p string, lossy bool) (string, bool, error)

	// decode and decodeBackslash map slash (or backslash) text to native
	// text. The bool reports whether any character was rewritten; when none
	// was, s itself is returned.
	decode(s string) (string, bool)
	decodeBackslash(s string) (string, bool)
}
