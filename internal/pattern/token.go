// Package pattern compiles filename patterns ("shot_####", "file%04d",
// "img_%V") into ordered tokens, matches directory entries against them,
// and renders concrete filenames back out of them.
//
// A pattern mixes literal text with variables:
//
//	####   frame number, zero-padded to the hash count
//	%04d   frame number, printf style (same meaning as ####)
//	%d     frame number, no width constraint
//	%v     short view name: l, r, view2, ...
//	%V     long view name: left, right, view2, ...
//	%%     a literal percent sign
//
// Invalid printf-like fields (e.g. "%x", "%4d") are not errors: the text
// falls back to being matched literally. Only opening a new %-field while
// another is still open fails the compile.
package pattern

import (
	"strings"

	"github.com/backmassage/seqscan/internal/fileutil"
)

// Kind discriminates the token variants of a compiled pattern.
type Kind uint8

const (
	Literal         Kind = iota // fixed text, matched verbatim and in order
	FrameField                  // "#"-run or %0Nd, width-constrained frame number
	FrameFieldLoose             // bare %d
	ShortView                   // %v
	LongView                    // %V
)

// Token is one element of a compiled pattern, ordered left to right.
// PrecedingLiterals counts the literal characters that appeared before
// this token in the pattern; the matcher uses it to anchor a variable's
// expected position inside a candidate filename.
type Token struct {
	Kind              Kind
	Text              string // raw pattern text ("name", "####", "%04d")
	Width             int    // required digit count for FrameField
	PrecedingLiterals int
}

// IsVariable reports whether the token is a placeholder rather than
// literal text.
func (t Token) IsVariable() bool { return t.Kind != Literal }

// Pattern is a compiled pattern: the ordered token stream of one
// path-free pattern string plus its extension.
type Pattern struct {
	tokens []Token
}

// Tokens returns the full ordered token stream.
func (p *Pattern) Tokens() []Token { return p.tokens }

// Literals returns the literal tokens in order.
func (p *Pattern) Literals() []Token {
	var out []Token
	for _, t := range p.tokens {
		if t.Kind == Literal {
			out = append(out, t)
		}
	}
	return out
}

// Variables returns the variable tokens in order.
func (p *Pattern) Variables() []Token {
	var out []Token
	for _, t := range p.tokens {
		if t.IsVariable() {
			out = append(out, t)
		}
	}
	return out
}

// compileState tracks whether the scanner is inside an open %-field.
type compileState uint8

const (
	stateIdle compileState = iota
	stateInPrintf
)

// Compile scans a path-free, extension-free pattern string into its
// ordered tokens. ext, when non-empty, is appended as a trailing
// "."+ext literal so matching covers the full entry name.
func Compile(stem, ext string) (*Pattern, error) {
	c := &compiler{}
	if err := c.scan(stem); err != nil {
		return nil, err
	}
	if err := c.finish(ext); err != nil {
		return nil, err
	}
	return &Pattern{tokens: c.tokens}, nil
}

type compiler struct {
	tokens   []Token
	lit      []byte // pending literal text
	variable []byte // pending variable text ("#"-run or open %-field)
	litCount int    // literal characters emitted so far
	state    compileState
	printfAt int // characters consumed since the opening '%'
}

func (c *compiler) scan(stem string) error {
	i := 0
	for i < len(stem) {
		ch := stem[i]
		switch {
		case ch == '#':
			c.flushLiteral()
			if c.state == stateInPrintf || !c.hashPending() {
				if err := c.flushVariable(); err != nil {
					return err
				}
			}
			c.variable = append(c.variable, ch)
			i++

		case ch == '%' && i+1 < len(stem) && stem[i+1] == '%':
			// Escaped percent: emit a single literal '%'.
			if err := c.flushVariable(); err != nil {
				return err
			}
			c.lit = append(c.lit, '%')
			i += 2

		case ch == '%' && i+1 < len(stem):
			if c.state == stateInPrintf {
				return ErrNestedVariable
			}
			if err := c.flushVariable(); err != nil {
				return err
			}
			c.flushLiteral()
			c.state = stateInPrintf
			c.printfAt = 0
			c.variable = append(c.variable, ch)
			i++

		case c.state == stateInPrintf && (ch == 'd' || ch == 'v' || ch == 'V'):
			c.variable = append(c.variable, ch)
			c.state = stateIdle
			if err := c.flushVariable(); err != nil {
				return err
			}
			i++

		case c.state == stateInPrintf:
			c.printfAt++
			c.variable = append(c.variable, ch)
			if isAlpha(ch) || (c.printfAt == 1 && ch != '0') {
				// Not valid printf syntax; the field becomes
				// literal text instead of failing the compile.
				c.emitLiteral(string(c.variable))
				c.variable = c.variable[:0]
				c.state = stateIdle
			}
			i++

		default:
			if err := c.flushVariable(); err != nil {
				return err
			}
			c.lit = append(c.lit, ch)
			i++
		}
	}
	return nil
}

// finish flushes pending buffers and appends the extension literal.
func (c *compiler) finish(ext string) error {
	if err := c.flushVariable(); err != nil {
		return err
	}
	c.flushLiteral()
	if ext != "" {
		c.emitLiteral("." + ext)
	}
	return nil
}

// hashPending reports whether the pending variable is a "#"-run that the
// next '#' should extend.
func (c *compiler) hashPending() bool {
	return len(c.variable) > 0 && c.variable[0] == '#'
}

func (c *compiler) emitLiteral(text string) {
	c.tokens = append(c.tokens, Token{
		Kind:              Literal,
		Text:              text,
		PrecedingLiterals: c.litCount,
	})
	c.litCount += len(text)
}

func (c *compiler) flushLiteral() {
	if len(c.lit) == 0 {
		return
	}
	c.emitLiteral(string(c.lit))
	c.lit = c.lit[:0]
}

// flushVariable classifies and emits the pending variable buffer.
// A %-field that closed on the wrong shape ("%0v") has no valid
// interpretation and fails with ErrUnknownVariable.
func (c *compiler) flushVariable() error {
	if len(c.variable) == 0 {
		return nil
	}
	text := string(c.variable)
	tok := Token{Text: text, PrecedingLiterals: c.litCount}
	switch {
	case text[0] == '#':
		tok.Kind = FrameField
		tok.Width = len(text)
	case text == "%d":
		tok.Kind = FrameFieldLoose
	case text == "%v":
		tok.Kind = ShortView
	case text == "%V":
		tok.Kind = LongView
	case strings.HasPrefix(text, "%0") && strings.HasSuffix(text, "d"):
		tok.Kind = FrameField
		tok.Width = fileutil.Atoi(text[2 : len(text)-1])
	default:
		return ErrUnknownVariable
	}
	c.tokens = append(c.tokens, tok)
	c.variable = c.variable[:0]
	c.state = stateIdle
	return nil
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
