package slashpath

// CowKind tags a [Cow] as borrowed or owned.
type CowKind uint8

const (
	// Borrowed means the value is the caller's input, unchanged.
	Borrowed CowKind = iota
	// Owned means the value was newly built by the conversion.
	Owned
)

func (k CowKind) String() string {
	if k == Owned {
		return "owned"
	}

	return "borrowed"
}

// Cow is the result of a copy-on-write conversion. A borrowed Cow holds the
// input string itself; an owned Cow holds a newly allocated string. Both
// compare equal to what the copying conversion returns.
type Cow struct {
	value string
	kind  CowKind
}

// Borrow returns a borrowed [Cow] holding s.
func Borrow(s string) Cow {
	return Cow{value: s, kind: Borrowed}
}

// Own returns an owned [Cow] holding s.
func Own(s string) Cow {
	return Cow{value: s, kind: Owned}
}

func newCow(in, out string, rewritten bool) Cow {
	if rewritten {
		return Own(out)
	}

	return Borrow(in)
}

// Kind returns whether c is borrowed or owned.
func (c Cow) Kind() CowKind {
	return c.kind
}

// IsBorrowed reports whether c holds the original input.
func (c Cow) IsBorrowed() bool {
	return c.kind == Borrowed
}

// IsOwned reports whether c holds a newly built value.
func (c Cow) IsOwned() bool {
	return c.kind == Owned
}

// String returns the held value.
func (c Cow) String() string {
	return c.value
}
