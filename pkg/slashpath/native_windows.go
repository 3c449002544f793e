//go:build windows

package slashpath

// Native is the converter for the build target.
var Native = Windows
