// Package util provides common helpers used across the map assistant.
package util

import (
	"path/filepath"
	"strings"
)

// StripSpaces removes every space from a string. Map display names like
// "Streets of Tarkov" are often stored on disk without spaces.
func StripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// BaseName returns the file name without its directory or extension, e.g.
// "maps/Shoreline.svg" -> "Shoreline".
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
