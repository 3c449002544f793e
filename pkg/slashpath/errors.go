package slashpath

import (
	"errors"
	"fmt"
)

var (
	// ErrEncoding indicates a path could not be represented as valid UTF-8.
	ErrEncoding = errors.New("path is not valid unicode")

	// ErrUnknownStyle indicates a path style name was not recognized.
	ErrUnknownStyle = errors.New("unknown path style")
)

// EncodingError is returned by strict encode operations when a component of
// the native path is not valid UTF-8. It wraps [ErrEncoding].
type EncodingError struct {
	// Path is the native path that failed to encode.
	Path string
	// Component is the first component that is not valid UTF-8.
	Component Component
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%v: %s component %q in %q", ErrEncoding, e.Component.Kind, e.Component.Text, e.Path)
}

func (e *EncodingError) Unwrap() error {
	return ErrEncoding
}
