// Package log builds [log/slog] handlers from level and format names, as used
// by the command line flags.
package log
