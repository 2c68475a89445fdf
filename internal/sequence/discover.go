package sequence

import (
	"fmt"
	"strings"

	"github.com/backmassage/seqscan/internal/fsdir"
)

// Discover seeds a sequence from one file, then offers every other
// entry of its directory. Entries that do not belong are simply not
// accepted; only a listing failure is an error.
func Discover(absolutePath string, lister fsdir.Lister, sizer fsdir.Sizer) (*Sequence, error) {
	seed := Parse(absolutePath)
	seq := New(sizer)
	seq.TryInsert(seed)

	entries, err := lister.List(seed.Path())
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", seed.Path(), err)
	}
	for _, entry := range entries {
		full := seed.Path() + entry
		if full == absolutePath {
			continue
		}
		seq.TryInsert(Parse(full))
	}
	return seq, nil
}

// ScanDirectory aggregates every entry of dir into sequences: each file
// joins the first existing sequence that accepts it, otherwise it seeds
// a new one. Sequences come back in order of first appearance;
// unrelated lone files end up as single-file sequences.
func ScanDirectory(dir string, lister fsdir.Lister, sizer fsdir.Sizer) ([]*Sequence, error) {
	entries, err := lister.List(dir)
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", dir, err)
	}
	prefix := dir
	if prefix != "" && !strings.HasSuffix(prefix, "/") && !strings.HasSuffix(prefix, "\\") {
		prefix += "/"
	}

	var seqs []*Sequence
	for _, entry := range entries {
		fc := Parse(prefix + entry)
		accepted := false
		for _, s := range seqs {
			if s.TryInsert(fc) {
				accepted = true
				break
			}
		}
		if !accepted {
			s := New(sizer)
			s.TryInsert(fc)
			seqs = append(seqs, s)
		}
	}
	return seqs, nil
}
