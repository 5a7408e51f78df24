// Package ui provides terminal color themes for CLI output.
// Themes are plain ANSI escape sequences selected at startup; the
// active theme is process-global and guarded for concurrent reads.
package ui
