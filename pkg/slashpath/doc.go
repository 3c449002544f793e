// Package slashpath converts file paths to and from "slash paths".
//
// A slash path is a path whose components are always separated by '/' and
// never by '\'. On Unix-like systems the native separator is already '/', so
// conversion is (almost) the identity. On Windows the native separator is '\',
// and the conversion walks the path's structure so that prefixes such as
// drive letters (C:), UNC shares (\\server\share) and verbatim prefixes
// (\\?\C:, \\?\UNC\server\share) are carried through untranslated.
//
// Two [Converter] values are provided, [Unix] and [Windows]. [Native] is bound
// to the one matching the build target, and the package-level functions
// delegate to it:
//
//	s, err := slashpath.ToSlash(`foo\bar\piyo.txt`) // "foo/bar/piyo.txt" on Windows
//	p := slashpath.FromSlash("foo/bar/piyo.txt")    // `foo\bar\piyo.txt` on Windows
//
// Every encode operation has a strict variant, which fails with an
// [*EncodingError] when the path is not valid UTF-8, and a lossy variant, which
// replaces each ill-formed byte with U+FFFD. Every operation also has a Cow
// variant returning a [Cow] that reuses the input when nothing was rewritten.
//
// Paths are never cleaned: "." and ".." are preserved, and nothing touches the
// filesystem.
package slashpath
