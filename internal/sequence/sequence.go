package sequence

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/backmassage/seqscan/internal/fileutil"
	"github.com/backmassage/seqscan/internal/fsdir"
)

// maxSequenceHole bounds how many consecutive absent frame numbers the
// friendly-range scan tolerates before treating the sequence as ended.
const maxSequenceHole = 1000

// Sequence accumulates files that belong to one numbered sequence. The
// first accepted file seeds the shape; the second fixes which digit
// run(s) carry the frame number; every later file must vary in exactly
// those runs. A Sequence is owned by a single caller and is not safe
// for concurrent mutation.
type Sequence struct {
	members     []FileNameContent
	files       []string // absolute names, insertion order
	frameToPath map[int]string
	frameSlots  []int // digit-run ordinals carrying the frame number

	sizer     fsdir.Sizer // nil disables size estimation
	totalSize int64
}

// New returns an empty Sequence. A non-nil sizer enables size
// estimation: each accepted member is probed once, and a probe failure
// contributes zero bytes.
func New(sizer fsdir.Sizer) *Sequence {
	return &Sequence{frameToPath: make(map[int]string), sizer: sizer}
}

// TryInsert offers a file to the sequence. The first file is accepted
// unconditionally. The second must match the first's shape; the
// candidate slots it produces become the sequence's frame slots for
// good, and when several slots are kept they must alias the same
// number within each file. Later files must come from the same
// directory, produce exactly the locked slots, and carry an unused
// frame number. Returns whether the file was accepted.
func (s *Sequence) TryInsert(file FileNameContent) bool {
	if len(s.members) == 0 {
		s.accept(file)
		return true
	}

	baseline := s.members[0]
	if file.Path() != baseline.Path() {
		return false
	}
	if s.Contains(file.AbsoluteFileName()) {
		return false
	}

	indexes, ok := file.MatchesPattern(baseline)
	if !ok {
		return false
	}

	if len(s.frameSlots) == 0 {
		// Second member: the candidate slots become permanent.
		baseFrame, ok := frameAt(baseline, indexes)
		if !ok {
			return false
		}
		newFrame, ok := frameAt(file, indexes)
		if !ok {
			return false
		}
		s.frameSlots = indexes
		s.frameToPath[baseFrame] = baseline.AbsoluteFileName()
		s.frameToPath[newFrame] = file.AbsoluteFileName()
		s.accept(file)
		return true
	}

	if !equalInts(indexes, s.frameSlots) {
		return false
	}
	frame, ok := frameAt(file, s.frameSlots)
	if !ok {
		return false
	}
	if _, taken := s.frameToPath[frame]; taken {
		return false
	}
	s.frameToPath[frame] = file.AbsoluteFileName()
	s.accept(file)
	return true
}

func (s *Sequence) accept(file FileNameContent) {
	s.members = append(s.members, file)
	s.files = append(s.files, file.AbsoluteFileName())
	if s.sizer != nil {
		s.totalSize += s.sizer.Size(file.AbsoluteFileName())
	}
}

// frameAt extracts the frame number of one file at the given slots.
// With several slots they must all hold the same integer value; a
// disagreement, or a slot with no digit run behind it, fails.
func frameAt(file FileNameContent, slots []int) (int, bool) {
	frame := 0
	for i, slot := range slots {
		raw, ok := file.NumberByIndex(slot)
		if !ok {
			return 0, false
		}
		n := fileutil.Atoi(raw)
		if i == 0 {
			frame = n
			continue
		}
		if n != frame {
			return 0, false
		}
	}
	return frame, true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Contains reports whether the absolute filename was accepted.
func (s *Sequence) Contains(absoluteFileName string) bool {
	for _, f := range s.files {
		if f == absoluteFileName {
			return true
		}
	}
	return false
}

// IsEmpty reports whether no file was accepted yet.
func (s *Sequence) IsEmpty() bool { return len(s.files) == 0 }

// Count returns the number of accepted files.
func (s *Sequence) Count() int { return len(s.files) }

// IsSingleFile reports whether exactly one file was accepted.
func (s *Sequence) IsSingleFile() bool { return len(s.members) == 1 }

// FirstFrame returns the smallest frame number, or math.MinInt when no
// frame numbers are known yet.
func (s *Sequence) FirstFrame() int {
	first := math.MinInt
	for f := range s.frameToPath {
		if first == math.MinInt || f < first {
			first = f
		}
	}
	return first
}

// LastFrame returns the largest frame number, or math.MaxInt when no
// frame numbers are known yet.
func (s *Sequence) LastFrame() int {
	last := math.MaxInt
	for f := range s.frameToPath {
		if last == math.MaxInt || f > last {
			last = f
		}
	}
	return last
}

// FrameIndexes returns the frame number → absolute path mapping.
func (s *Sequence) FrameIndexes() map[int]string { return s.frameToPath }

// FilesList returns the accepted absolute filenames in insertion order.
func (s *Sequence) FilesList() []string { return s.files }

// EstimatedTotalSize returns the accumulated byte size of accepted
// members; zero unless size estimation was enabled.
func (s *Sequence) EstimatedTotalSize() int64 { return s.totalSize }

// FileExtension returns the extension shared by the sequence.
func (s *Sequence) FileExtension() string {
	if s.IsEmpty() {
		return ""
	}
	return s.members[0].Extension()
}

// Path returns the directory shared by the sequence, with its trailing
// separator.
func (s *Sequence) Path() string {
	if s.IsEmpty() {
		return ""
	}
	return s.members[0].Path()
}

// GenerateValidSequencePattern returns a pattern string that, expanded
// against the sequence's directory, designates its files: empty for an
// empty sequence, the absolute filename for a single file, and
// otherwise the baseline's pattern with the frame slots abstracted,
// prefixed with the directory.
func (s *Sequence) GenerateValidSequencePattern() string {
	if s.IsEmpty() {
		return ""
	}
	if s.IsSingleFile() {
		return s.members[0].AbsoluteFileName()
	}
	pat, _ := s.members[0].PatternWithFrameIndexes(s.frameSlots)
	return s.members[0].Path() + pat
}

// GenerateUserFriendlySequencePattern returns a short human-readable
// description: the bare filename for a single file, otherwise the
// path-free pattern followed by the frame ranges present. Consecutive
// frames group into "start-end" ranges; distinct ranges render as
// " ( 1-3 / 7-9 ) " with lone frames as a bare number. Scanning stops
// at the first hole wider than maxSequenceHole frames.
func (s *Sequence) GenerateUserFriendlySequencePattern() string {
	if s.IsEmpty() {
		return ""
	}
	if s.IsSingleFile() {
		return s.members[0].FileName()
	}

	pat, _ := s.members[0].PatternWithFrameIndexes(s.frameSlots)
	chunks := s.frameChunks()

	var b strings.Builder
	b.WriteString(pat)
	if len(chunks) == 1 {
		fmt.Fprintf(&b, " %d-%d", chunks[0][0], chunks[0][1])
		return b.String()
	}
	b.WriteString(" (")
	for i, c := range chunks {
		if c[0] != c[1] {
			fmt.Fprintf(&b, " %d-%d", c[0], c[1])
		} else {
			fmt.Fprintf(&b, " %d", c[0])
		}
		if i < len(chunks)-1 {
			b.WriteString(" /")
		}
	}
	b.WriteString(" ) ")
	return b.String()
}

// frameChunks groups the present frame numbers into closed consecutive
// ranges, walking from the first to the last frame and giving up at a
// hole of maxSequenceHole or more.
func (s *Sequence) frameChunks() [][2]int {
	present := make([]int, 0, len(s.frameToPath))
	for f := range s.frameToPath {
		present = append(present, f)
	}
	sort.Ints(present)
	if len(present) == 0 {
		return nil
	}

	inSequence := func(f int) bool {
		_, ok := s.frameToPath[f]
		return ok
	}

	var chunks [][2]int
	first := present[0]
	last := present[len(present)-1]
	for first <= last {
		hole := 0
		for !inSequence(first) && hole < maxSequenceHole {
			first++
			hole++
		}
		if hole >= maxSequenceHole {
			break
		}
		end := first
		for end+1 <= last && inSequence(end+1) {
			end++
		}
		chunks = append(chunks, [2]int{first, end})
		first = end + 1
	}
	return chunks
}
