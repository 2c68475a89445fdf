// Package fileutil holds small path and number helpers shared by the
// pattern and sequence packages.
package fileutil

import (
	"strconv"
	"strings"
)

// SplitPath splits an absolute filename into its directory (with the
// trailing separator kept) and the bare filename. Both '/' and '\\' are
// recognized so Windows-style paths split the same way. A name with no
// separator yields an empty directory.
func SplitPath(filename string) (dir, name string) {
	pos := strings.LastIndexByte(filename, '/')
	if pos == -1 {
		pos = strings.LastIndexByte(filename, '\\')
	}
	if pos == -1 {
		return "", filename
	}
	return filename[:pos+1], filename[pos+1:]
}

// SplitExt splits a filename into its stem and the extension after the
// last dot. A name with no dot has an empty extension.
func SplitExt(name string) (stem, ext string) {
	pos := strings.LastIndexByte(name, '.')
	if pos == -1 {
		return name, ""
	}
	return name[:pos], name[pos+1:]
}

// Atoi is the permissive integer parse used throughout the engine:
// malformed input yields 0 rather than an error.
func Atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
