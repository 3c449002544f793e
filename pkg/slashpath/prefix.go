package slashpath

import "strings"

// PrefixKind identifies the form of a Windows path [Prefix].
type PrefixKind uint8

const (
	// PrefixVerbatim is a verbatim prefix such as `\\?\pictures`.
	PrefixVerbatim PrefixKind = iota
	// PrefixVerbatimUNC is a verbatim UNC prefix such as `\\?\UNC\server\share`.
	PrefixVerbatimUNC
	// PrefixVerbatimDisk is a verbatim disk prefix such as `\\?\C:`.
	PrefixVerbatimDisk
	// PrefixDeviceNS is a device namespace prefix such as `\\.\COM1`.
	PrefixDeviceNS
	// PrefixUNC is a UNC prefix such as `\\server\share`.
	PrefixUNC
	// PrefixDisk is a drive letter prefix such as "C:".
	PrefixDisk
)

func (k PrefixKind) String() string {
	switch k {
	case PrefixVerbatim:
		return "verbatim"
	case PrefixVerbatimUNC:
		return "verbatim_unc"
	case PrefixVerbatimDisk:
		return "verbatim_disk"
	case PrefixDeviceNS:
		return "device_ns"
	case PrefixUNC:
		return "unc"
	case PrefixDisk:
		return "disk"
	}

	return "unknown"
}

// Prefix is a parsed Windows path prefix. Its payload is opaque to the
// conversions: Raw is written out as-is and is never separator-translated.
type Prefix struct {
	// Raw is the prefix exactly as it appears in the native path.
	Raw string
	// Server and Share are set for UNC prefixes.
	Server string
	Share  string
	// Name is set for verbatim and device namespace prefixes.
	Name string
	// Drive is the upper-cased drive letter for disk prefixes.
	Drive byte
	Kind  PrefixKind
}

// IsVerbatim reports whether the prefix disables path normalization, in
// which case only '\' separates components.
func (p Prefix) IsVerbatim() bool {
	return p.Kind == PrefixVerbatim || p.Kind == PrefixVerbatimUNC || p.Kind == PrefixVerbatimDisk
}

// HasImplicitRoot reports whether a path with this prefix is rooted even
// without a separator after the prefix. Only drive letters can be followed by
// a relative path.
func (p Prefix) HasImplicitRoot() bool {
	return p.Kind != PrefixDisk
}

func (p Prefix) equal(o Prefix) bool {
	return p.Kind == o.Kind &&
		p.Drive == o.Drive &&
		p.Server == o.Server &&
		p.Share == o.Share &&
		p.Name == o.Name
}

// parsePrefix parses the Windows prefix at the start of p, if any.
func parsePrefix(p string) (Prefix, bool) {
	if len(p) < 2 || !isWindowsSep(p[0]) || !isWindowsSep(p[1]) {
		if d, ok := parseDrive(p); ok {
			return Prefix{Kind: PrefixDisk, Raw: p[:2], Drive: d}, true
		}

		return Prefix{}, false
	}

	// Verbatim paths change meaning with a different separator, so they are
	// only recognized when spelled with backslashes.
	if strings.HasPrefix(p, `\\?\`) && !strings.ContainsRune(p[:min(len(p), 8)], '/') {
		return parseVerbatim(p)
	}

	rest := p[2:]
	if len(rest) >= 2 && rest[0] == '.' && isWindowsSep(rest[1]) {
		name, _ := nextComponent(rest[2:], false)

		return Prefix{Kind: PrefixDeviceNS, Raw: p[:4+len(name)], Name: name}, true
	}

	server, after := nextComponent(rest, false)
	share, _ := nextComponent(after, false)

	if server == "" || share == "" {
		return Prefix{}, false
	}

	return Prefix{
		Kind:   PrefixUNC,
		Raw:    p[:2+len(server)+1+len(share)],
		Server: server,
		Share:  share,
	}, true
}

func parseVerbatim(p string) (Prefix, bool) {
	body := p[4:]

	if unc, ok := strings.CutPrefix(body, `UNC\`); ok {
		server, after := nextComponent(unc, true)
		share, _ := nextComponent(after, true)

		n := 8 + len(server)
		if share != "" {
			n += 1 + len(share)
		}

		return Prefix{Kind: PrefixVerbatimUNC, Raw: p[:n], Server: server, Share: share}, true
	}

	// Only an exact drive is a disk here: `\\?\C:foo` is an opaque name.
	if d, ok := parseDrive(body); ok && (len(body) == 2 || body[2] == '\\') {
		return Prefix{Kind: PrefixVerbatimDisk, Raw: p[:6], Drive: d}, true
	}

	name, _ := nextComponent(body, true)

	return Prefix{Kind: PrefixVerbatim, Raw: p[:4+len(name)], Name: name}, true
}

// parseDrive parses a leading "X:" and returns the upper-cased letter.
func parseDrive(p string) (byte, bool) {
	if len(p) < 2 || p[1] != ':' {
		return 0, false
	}

	c := p[0]

	switch {
	case 'A' <= c && c <= 'Z':
		return c, true
	case 'a' <= c && c <= 'z':
		return c - ('a' - 'A'), true
	}

	return 0, false
}

// nextComponent splits p at its first separator. In verbatim mode only '\'
// separates.
func nextComponent(p string, verbatim bool) (string, string) {
	for i := range len(p) {
		if p[i] == '\\' || (!verbatim && p[i] == '/') {
			return p[:i], p[i+1:]
		}
	}

	return p, ""
}

func isWindowsSep(b byte) bool {
	return b == '\\' || b == '/'
}
