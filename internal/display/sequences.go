// Package display formats scan results for terminal output.
package display

import (
	"fmt"
	"io"

	"github.com/backmassage/seqscan/internal/sequence"
	"github.com/backmassage/seqscan/internal/term"
)

// PrintSequences writes one line per sequence: the friendly pattern,
// the file count, and optionally the estimated total size.
func PrintSequences(w io.Writer, seqs []*sequence.Sequence, withSizes bool) {
	for _, s := range seqs {
		line := term.Accent.Sprint(s.GenerateUserFriendlySequencePattern())
		if s.Count() == 1 {
			fmt.Fprintf(w, "%s\n", line)
			continue
		}
		if withSizes {
			fmt.Fprintf(w, "%s  %d files, %s\n", line, s.Count(), FormatBytes(s.EstimatedTotalSize()))
		} else {
			fmt.Fprintf(w, "%s  %d files\n", line, s.Count())
		}
	}
}

// PrintSequence writes the full description of one sequence: its valid
// pattern, friendly summary, frame bounds and optionally its size.
func PrintSequence(w io.Writer, s *sequence.Sequence, withSizes bool) {
	fmt.Fprintf(w, "pattern: %s\n", term.Accent.Sprint(s.GenerateValidSequencePattern()))
	fmt.Fprintf(w, "summary: %s\n", s.GenerateUserFriendlySequencePattern())
	if !s.IsSingleFile() {
		fmt.Fprintf(w, "frames:  %d-%d (%d files)\n", s.FirstFrame(), s.LastFrame(), s.Count())
	}
	if withSizes {
		fmt.Fprintf(w, "size:    %s\n", FormatBytes(s.EstimatedTotalSize()))
	}
}
