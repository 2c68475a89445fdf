// Package sequence discovers groups of files that form a numbered
// sequence. It tokenizes filenames into alternating text and digit
// runs, decides whether two filenames belong to the same sequence, and
// aggregates members while tracking which digit run carries the frame
// number.
package sequence

import (
	"strconv"
	"strings"

	"github.com/backmassage/seqscan/internal/fileutil"
)

// ElementKind discriminates the runs a filename stem splits into.
type ElementKind uint8

const (
	Text ElementKind = iota
	FrameNumber
)

// Element is one maximal run of a filename stem: either text or digits.
type Element struct {
	Kind ElementKind
	Data string
}

// FileNameContent is the parsed, immutable view of one file path: its
// directory (trailing separator kept), stem, extension, and the ordered
// text/digit runs of the stem. It is cheap to copy by value.
type FileNameContent struct {
	absoluteName string
	dir          string
	name         string // filename without directory, extension kept
	stem         string
	ext          string
	elements     []Element
	numberRuns   int
	pattern      string // stem with digit runs as "#"-runs + ordinal tags
}

// Parse builds the FileNameContent of one absolute file path. The stem
// (extension stripped) is split into maximal alternating text and digit
// runs; the canonical pattern replaces each digit run with as many '#'
// as it has digits, followed by the run's 0-based ordinal so a specific
// run can be targeted later (stem "file08_001" → "file##0_###1").
func Parse(absolutePath string) FileNameContent {
	dir, name := fileutil.SplitPath(absolutePath)
	stem, ext := fileutil.SplitExt(name)

	fc := FileNameContent{
		absoluteName: absolutePath,
		dir:          dir,
		name:         name,
		stem:         stem,
		ext:          ext,
	}

	runStart := 0
	runIsDigit := false
	flush := func(end int) {
		if end == runStart {
			return
		}
		kind := Text
		if runIsDigit {
			kind = FrameNumber
			fc.numberRuns++
		}
		fc.elements = append(fc.elements, Element{Kind: kind, Data: stem[runStart:end]})
		runStart = end
	}
	for i := 0; i < len(stem); i++ {
		d := stem[i] >= '0' && stem[i] <= '9'
		if i == runStart {
			runIsDigit = d
			continue
		}
		if d != runIsDigit {
			flush(i)
			runIsDigit = d
		}
	}
	flush(len(stem))

	var b strings.Builder
	ordinal := 0
	for _, e := range fc.elements {
		if e.Kind == Text {
			b.WriteString(e.Data)
			continue
		}
		b.WriteString(strings.Repeat("#", len(e.Data)))
		b.WriteString(strconv.Itoa(ordinal))
		ordinal++
	}
	fc.pattern = b.String()
	return fc
}

// AbsoluteFileName returns the path the content was parsed from.
func (fc FileNameContent) AbsoluteFileName() string { return fc.absoluteName }

// Path returns the directory with its trailing separator, empty when
// the path had none.
func (fc FileNameContent) Path() string { return fc.dir }

// FileName returns the filename without its directory.
func (fc FileNameContent) FileName() string { return fc.name }

// Extension returns the substring after the last dot, empty if none.
func (fc FileNameContent) Extension() string { return fc.ext }

// Elements returns the ordered text/digit runs of the stem.
func (fc FileNameContent) Elements() []Element { return fc.elements }

// Pattern returns the canonical "#"-run pattern of the stem.
func (fc FileNameContent) Pattern() string { return fc.pattern }

// HasSingleNumber reports whether exactly one digit run exists.
func (fc FileNameContent) HasSingleNumber() bool { return fc.numberRuns == 1 }

// IsDigitsOnly reports whether the stem is one single digit run.
func (fc FileNameContent) IsDigitsOnly() bool {
	return len(fc.elements) == 1 && fc.elements[0].Kind == FrameNumber
}

// TextElements returns the data of every text run, in order.
func (fc FileNameContent) TextElements() []string {
	var out []string
	for _, e := range fc.elements {
		if e.Kind == Text {
			out = append(out, e.Data)
		}
	}
	return out
}

// NumberByIndex returns the digit run with the given 0-based ordinal.
func (fc FileNameContent) NumberByIndex(index int) (string, bool) {
	ordinal := 0
	for _, e := range fc.elements {
		if e.Kind != FrameNumber {
			continue
		}
		if ordinal == index {
			return e.Data, true
		}
		ordinal++
	}
	return "", false
}

// MatchesPattern decides whether other belongs to the same sequence as
// fc and, if so, which digit-run ordinals are candidates for the frame
// number. The two stems must have the same run structure, byte-equal
// text runs and an equal extension. Digit runs that differ are
// candidates only when the length difference cannot be explained by
// spurious zero-padding: with runs of different lengths, a leading zero
// on either side would imply a width no pattern could have produced
// (010000 can never come from "##", while 10000 and 01 both can).
//
// Among the candidates, the runs whose integer values are closest
// between the two files win; ties are all kept, in ordinal order.
// Returns false when nothing differs.
func (fc FileNameContent) MatchesPattern(other FileNameContent) ([]int, bool) {
	if len(fc.elements) != len(other.elements) || fc.ext != other.ext {
		return nil, false
	}

	type candidate struct {
		ordinal    int
		this, that string
	}
	var candidates []candidate
	ordinal := 0
	for i, e := range fc.elements {
		o := other.elements[i]
		if e.Kind != o.Kind {
			return nil, false
		}
		if e.Kind == Text {
			if e.Data != o.Data {
				return nil, false
			}
			continue
		}
		if e.Data != o.Data && validFrameVariation(e.Data, o.Data) {
			candidates = append(candidates, candidate{ordinal, e.Data, o.Data})
		}
		ordinal++
	}
	if len(candidates) == 0 {
		return nil, false
	}

	var indexes []int
	minimum := -1
	for _, c := range candidates {
		diff := fileutil.Atoi(c.this) - fileutil.Atoi(c.that)
		if diff < 0 {
			diff = -diff
		}
		switch {
		case minimum == -1 || diff < minimum:
			minimum = diff
			indexes = indexes[:0]
			indexes = append(indexes, c.ordinal)
		case diff == minimum:
			indexes = append(indexes, c.ordinal)
		}
	}
	return indexes, true
}

// validFrameVariation applies the padding rule to a pair of differing
// digit runs: equal lengths always vary legally; unequal lengths are
// legal only when neither run starts with a zero (the shorter counts
// only when longer than one digit).
func validFrameVariation(a, b string) bool {
	if len(a) == len(b) {
		return true
	}
	longer, shorter := a, b
	if len(b) > len(a) {
		longer, shorter = b, a
	}
	if shorter[0] == '0' && len(shorter) > 1 {
		return false
	}
	return longer[0] != '0'
}

// PatternWithFrameIndexes renders the stem pattern with only the digit
// runs named by indexes abstracted as bare "#"-runs; every other digit
// run is frozen back to its literal digits. The extension is appended.
// Returns false when an index exceeds the number of digit runs.
func (fc FileNameContent) PatternWithFrameIndexes(indexes []int) (string, bool) {
	for _, idx := range indexes {
		if idx >= fc.numberRuns {
			return "", false
		}
	}
	var b strings.Builder
	ordinal := 0
	for _, e := range fc.elements {
		if e.Kind == Text {
			b.WriteString(e.Data)
			continue
		}
		if containsInt(indexes, ordinal) {
			b.WriteString(strings.Repeat("#", len(e.Data)))
		} else {
			b.WriteString(e.Data)
		}
		ordinal++
	}
	if fc.ext != "" {
		b.WriteString(".")
		b.WriteString(fc.ext)
	}
	return b.String(), true
}

func containsInt(s []int, n int) bool {
	for _, v := range s {
		if v == n {
			return true
		}
	}
	return false
}
