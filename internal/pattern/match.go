package pattern

import "strings"

// Match tests filename against the compiled pattern. On success it
// returns the extracted frame number and view index; view is -1 when
// the pattern carries no view field. Matching is a normal negative, not
// an error.
//
// Literal containment is checked with a monotonic cursor: each literal
// token must be found, case-sensitively, after the end of the previous
// one. A literal may match inside a longer word (the literal "marleen"
// is found in "marleenBG"), which can admit false positives; this is
// long-standing behavior and callers rely on it being cheap rather than
// exact.
//
// Variable extraction then walks the filename once, validating each
// digit run and view name against the next expected variable token,
// anchored by the count of non-variable characters consumed so far.
// Several frame fields in one pattern must extract the same number, and
// several view fields the same view. The match succeeds only when every
// variable token was consumed exactly once, in order.
func (p *Pattern) Match(filename string) (frame, view int, ok bool) {
	view = -1

	cursor := 0
	for _, lt := range p.Literals() {
		idx := indexFrom(filename, lt.Text, cursor)
		if idx < 0 {
			return 0, -1, false
		}
		cursor = idx + len(lt.Text)
	}

	vars := p.Variables()
	if len(vars) == 0 {
		return 0, -1, true
	}

	m := matcher{filename: filename, vars: vars, view: -1}
	if !m.run() {
		return 0, -1, false
	}
	return m.frame, m.view, true
}

func indexFrom(s, substr string, from int) int {
	if from > len(s) {
		return -1
	}
	idx := strings.Index(s[from:], substr)
	if idx < 0 {
		return -1
	}
	return from + idx
}

// matcher holds the single-pass extraction state: the run of digits
// being accumulated, the count of non-variable characters seen, and the
// frame/view agreement flags.
type matcher struct {
	filename string
	vars     []Token

	digits   []byte // pending digit run
	litSeen  int    // non-variable characters consumed
	next     int    // index of the next expected variable token
	frame    int
	view     int
	frameSet bool
	viewSet  bool
}

func (m *matcher) run() bool {
	i := 0
	for i < len(m.filename) {
		c := m.filename[i]
		if isDigit(c) {
			m.digits = append(m.digits, c)
			i++
			continue
		}
		if !m.flushDigits() {
			return false
		}

		lc := lowerByte(c)
		if lc != 'l' && lc != 'r' && lc != 'v' {
			m.litSeen++
			i++
			continue
		}

		mid := m.filename[i:]
		switch {
		case lc == 'l' && !hasPrefixFold(mid, "left"):
			// A bare 'l' only counts as a view when a %v field is
			// expected at exactly this offset; otherwise it is
			// ordinary text.
			if !m.shortView(0) {
				return false
			}
			i++
		case lc == 'r' && !hasPrefixFold(mid, "right"):
			if !m.shortView(1) {
				return false
			}
			i++
		case lc == 'l':
			if !m.longView("left") {
				return false
			}
			i += len("left")
		case lc == 'r':
			if !m.longView("right") {
				return false
			}
			i += len("right")
		case hasPrefixFold(mid, "view"):
			consumed, matched := m.viewN(mid)
			if !matched {
				return false
			}
			i += consumed
		default:
			m.litSeen++
			i++
		}
	}
	if !m.flushDigits() {
		return false
	}
	return m.next == len(m.vars)
}

// flushDigits validates a pending digit run as the next expected frame
// field. An empty run is fine; a run with no variable left, at the
// wrong offset, failing the width rule, or disagreeing with an earlier
// frame field fails the match.
func (m *matcher) flushDigits() bool {
	if len(m.digits) == 0 {
		return true
	}
	if m.next >= len(m.vars) {
		return false
	}
	tok := m.vars[m.next]
	if tok.PrecedingLiterals != m.litSeen {
		return false
	}
	n, ok := checkVariable(tok, string(m.digits), frameValue)
	if !ok {
		return false
	}
	if m.frameSet && n != m.frame {
		return false
	}
	m.frame = n
	m.frameSet = true
	m.next++
	m.digits = m.digits[:0]
	return true
}

// shortView consumes a bare 'l' or 'r'. When no %v token is expected at
// this offset the letter is treated as ordinary text; a conflicting
// earlier view value fails the match.
func (m *matcher) shortView(value int) bool {
	if m.next < len(m.vars) &&
		m.vars[m.next].Kind == ShortView &&
		m.vars[m.next].PrecedingLiterals == m.litSeen {
		if m.viewSet && m.view != value {
			return false
		}
		m.view = value
		m.viewSet = true
		m.next++
		return true
	}
	m.litSeen++
	return true
}

// longView consumes a "left" or "right" word, which must line up with
// the next expected variable.
func (m *matcher) longView(name string) bool {
	if m.next >= len(m.vars) || m.vars[m.next].PrecedingLiterals != m.litSeen {
		return false
	}
	n, ok := checkVariable(m.vars[m.next], name, longViewValue)
	if !ok {
		return false
	}
	if m.viewSet && n != m.view {
		return false
	}
	m.view = n
	m.viewSet = true
	m.next++
	return true
}

// viewN consumes a "view<digits>" token. A bare "view" with no digits
// is ordinary text (4 characters). With digits, the token must line up
// with the next expected view variable; its kind decides whether the
// value is validated as a short or long view.
func (m *matcher) viewN(mid string) (consumed int, ok bool) {
	j := len("view")
	for j < len(mid) && isDigit(mid[j]) {
		j++
	}
	if j == len("view") {
		m.litSeen += j
		return j, true
	}
	if m.next >= len(m.vars) || m.vars[m.next].PrecedingLiterals != m.litSeen {
		return 0, false
	}
	kind := longViewValue
	if m.vars[m.next].Kind == ShortView {
		kind = shortViewValue
	}
	raw := "view" + mid[len("view"):j]
	n, valid := checkVariable(m.vars[m.next], raw, kind)
	if !valid {
		return 0, false
	}
	if m.viewSet && n != m.view {
		return 0, false
	}
	m.view = n
	m.viewSet = true
	m.next++
	return j, true
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
