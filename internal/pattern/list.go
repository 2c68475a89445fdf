package pattern

import (
	"fmt"
	"sort"

	"github.com/backmassage/seqscan/internal/fileutil"
	"github.com/backmassage/seqscan/internal/fsdir"
)

// Sequence is the result of expanding a pattern against a directory:
// frame number → view index → absolute path. Files without a view field
// sit under view -1.
type Sequence map[int]map[int]string

// ListFiles compiles pattern, lists its directory and collects every
// entry that instantiates it. The pattern's directory prefix decides
// which directory is listed; a listing failure fails the whole
// operation. When two entries claim the same (frame, view) pair the
// first one listed wins.
func ListFiles(pattern string, lister fsdir.Lister) (Sequence, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	dir, name := fileutil.SplitPath(pattern)
	stem, ext := fileutil.SplitExt(name)
	p, err := Compile(stem, ext)
	if err != nil {
		return nil, err
	}

	listDir := dir
	if listDir == "" {
		listDir = "."
	}
	entries, err := lister.List(listDir)
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", listDir, err)
	}

	seq := make(Sequence)
	for _, entry := range entries {
		frame, view, ok := p.Match(entry)
		if !ok {
			continue
		}
		views := seq[frame]
		if views == nil {
			views = make(map[int]string)
			seq[frame] = views
		}
		if _, taken := views[view]; !taken {
			views[view] = dir + entry
		}
	}
	return seq, nil
}

// Flatten returns the sequence's absolute paths ordered by frame then
// view. onlyView filters to a single view index; -1 keeps everything,
// and entries without a view (index -1) always pass the filter.
func Flatten(seq Sequence, onlyView int) []string {
	frames := make([]int, 0, len(seq))
	for f := range seq {
		frames = append(frames, f)
	}
	sort.Ints(frames)

	var out []string
	for _, f := range frames {
		views := seq[f]
		idxs := make([]int, 0, len(views))
		for v := range views {
			idxs = append(idxs, v)
		}
		sort.Ints(idxs)
		for _, v := range idxs {
			if onlyView != -1 && v != onlyView && v != -1 {
				continue
			}
			out = append(out, views[v])
		}
	}
	return out
}
