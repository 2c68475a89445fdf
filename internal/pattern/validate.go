package pattern

import (
	"strings"

	"github.com/backmassage/seqscan/internal/fileutil"
)

// valueKind is the semantic interpretation requested for a matched
// substring: a frame number, a short view name (l/r/view2) or a long
// view name (left/right/view2).
type valueKind uint8

const (
	frameValue valueKind = iota
	shortViewValue
	longViewValue
)

// checkVariable validates raw, the substring matched against tok, under
// the requested semantic kind, and extracts its integer value. A token
// asked to hold an inconsistent kind (a view token as a frame number,
// or vice versa) is rejected.
//
// Width rule for frame fields: raw must be at least Width digits, and
// may only be longer when the number itself is larger — a longer raw
// with a leading zero would imply padding beyond the declared width and
// is rejected.
func checkVariable(tok Token, raw string, kind valueKind) (int, bool) {
	switch tok.Kind {
	case ShortView:
		if kind != shortViewValue {
			return 0, false
		}
		switch {
		case raw == "l":
			return 0, true
		case raw == "r":
			return 1, true
		case hasPrefixFold(raw, "view"):
			return fileutil.Atoi(raw[4:]), true
		}
		return 0, false

	case LongView:
		if kind != longViewValue {
			return 0, false
		}
		switch {
		case raw == "left":
			return 0, true
		case raw == "right":
			return 1, true
		case hasPrefixFold(raw, "view"):
			return fileutil.Atoi(raw[4:]), true
		}
		return 0, false

	case FrameField:
		if kind != frameValue {
			return 0, false
		}
		if len(raw) < tok.Width {
			return 0, false
		}
		if len(raw) > tok.Width && strings.HasPrefix(raw, "0") {
			return 0, false
		}
		return fileutil.Atoi(raw), true

	case FrameFieldLoose:
		return fileutil.Atoi(raw), true
	}
	return 0, false
}

// hasPrefixFold reports whether s begins with prefix, ignoring ASCII
// case.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
