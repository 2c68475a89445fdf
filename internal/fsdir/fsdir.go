// Package fsdir provides the two filesystem seams the sequence engine
// depends on: listing the entries of one directory and probing a file's
// byte length. Both are interfaces so tests and callers can substitute
// in-memory implementations; the engine itself never touches the
// filesystem directly.
package fsdir

import (
	"os"
)

// Lister returns the file entry names of one directory, in a stable
// order, with subdirectories and the "."/".." entries excluded.
// A failure (path not found, permission) is a hard failure of whatever
// operation depends on the listing.
type Lister interface {
	List(path string) ([]string, error)
}

// Sizer reports the byte length of a file. Used only when size
// estimation is enabled; a failure contributes zero bytes and is never
// fatal.
type Sizer interface {
	Size(absolutePath string) int64
}

// OSLister lists directories via os.ReadDir. Entries come back in the
// lexical order ReadDir guarantees, which keeps scans deterministic.
type OSLister struct{}

// List implements Lister.
func (OSLister) List(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// OSSizer probes file sizes via os.Stat.
type OSSizer struct{}

// Size implements Sizer. Stat failures yield 0.
func (OSSizer) Size(absolutePath string) int64 {
	fi, err := os.Stat(absolutePath)
	if err != nil {
		return 0
	}
	return fi.Size()
}
