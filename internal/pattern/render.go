package pattern

import (
	"fmt"
	"strconv"

	"github.com/backmassage/seqscan/internal/fileutil"
)

// RenderFileName substitutes every variable of pattern with its concrete
// rendering for the given frame and view and returns the resulting
// filename. The pattern may carry a directory prefix and an extension;
// both pass through untouched, so a pattern with no variables comes
// back unchanged.
//
// Frame fields render zero-padded to their width, %d renders unpadded.
// View 0 renders as "l"/"left", view 1 as "r"/"right", anything else as
// "view<N>".
func RenderFileName(pattern string, frameNumber, viewNumber int) (string, error) {
	_, name := fileutil.SplitPath(pattern)
	stem, ext := fileutil.SplitExt(name)
	p, err := Compile(stem, ext)
	if err != nil {
		return "", err
	}

	// Replace each variable occurrence in the original string, scanning
	// with a cursor that only moves forward so identical variable texts
	// resolve in order.
	out := pattern
	cursor := 0
	for _, tok := range p.Variables() {
		idx := indexFrom(out, tok.Text, cursor)
		if idx < 0 {
			return "", fmt.Errorf("render %q: variable %q not found past offset %d", pattern, tok.Text, cursor)
		}
		repl, err := renderVariable(tok, frameNumber, viewNumber)
		if err != nil {
			return "", err
		}
		out = out[:idx] + repl + out[idx+len(tok.Text):]
		cursor = idx + len(repl)
	}
	return out, nil
}

func renderVariable(tok Token, frameNumber, viewNumber int) (string, error) {
	switch tok.Kind {
	case FrameField:
		return fmt.Sprintf("%0*d", tok.Width, frameNumber), nil
	case FrameFieldLoose:
		return strconv.Itoa(frameNumber), nil
	case ShortView:
		switch viewNumber {
		case 0:
			return "l", nil
		case 1:
			return "r", nil
		}
		return "view" + strconv.Itoa(viewNumber), nil
	case LongView:
		switch viewNumber {
		case 0:
			return "left", nil
		case 1:
			return "right", nil
		}
		return "view" + strconv.Itoa(viewNumber), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariable, tok.Text)
}
