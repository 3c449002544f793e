package slashpath

// ToSlash converts a native path to a slash path using [Native].
// See [Converter.ToSlash].
func ToSlash(p string) (string, error) {
	return Native.ToSlash(p)
}

// ToSlashLossy converts a native path to a slash path using [Native].
// See [Converter.ToSlashLossy].
func ToSlashLossy(p string) string {
	return Native.ToSlashLossy(p)
}

// ToSlashCow is [Converter.ToSlashCow] for [Native].
func ToSlashCow(p string) (Cow, error) {
	return Native.ToSlashCow(p)
}

// ToSlashLossyCow is [Converter.ToSlashLossyCow] for [Native].
func ToSlashLossyCow(p string) Cow {
	return Native.ToSlashLossyCow(p)
}

// FromSlash converts a slash path to a native path using [Native].
// See [Converter.FromSlash].
func FromSlash(s string) string {
	return Native.FromSlash(s)
}

// FromSlashLossy is [Converter.FromSlashLossy] for [Native].
func FromSlashLossy(raw string) string {
	return Native.FromSlashLossy(raw)
}

// FromSlashCow is [Converter.FromSlashCow] for [Native].
func FromSlashCow(s string) Cow {
	return Native.FromSlashCow(s)
}

// FromSlashLossyCow is [Converter.FromSlashLossyCow] for [Native].
func FromSlashLossyCow(raw string) Cow {
	return Native.FromSlashLossyCow(raw)
}

// FromBackslash is [Converter.FromBackslash] for [Native].
func FromBackslash(s string) string {
	return Native.FromBackslash(s)
}

// FromBackslashLossy is [Converter.FromBackslashLossy] for [Native].
func FromBackslashLossy(raw string) string {
	return Native.FromBackslashLossy(raw)
}

// FromBackslashCow is [Converter.FromBackslashCow] for [Native].
func FromBackslashCow(s string) Cow {
	return Native.FromBackslashCow(s)
}

// FromBackslashLossyCow is [Converter.FromBackslashLossyCow] for [Native].
func FromBackslashLossyCow(raw string) Cow {
	return Native.FromBackslashLossyCow(raw)
}

// Components is [Converter.Components] for [Native].
func Components(p string) []Component {
	return Native.Components(p)
}

// Equal is [Converter.Equal] for [Native].
func Equal(a, b string) bool {
	return Native.Equal(a, b)
}
