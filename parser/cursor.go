// Package parser implements a recursive-descent/Pratt parser that turns
// the lexer's token vector into an ast.Program (spec 4.3). It never
// panics on malformed input: every construct it cannot parse is replaced
// with an ast.Missing placeholder and a diagnostic, so the rest of the
// tree stays well-formed (spec 4.3 "error recovery").
package parser

import (
	"github.com/phpcore/phpast/span"
	"github.com/phpcore/phpast/token"
)

// cursor is a read-only view over the token vector with unlimited
// lookahead (spec 4.3 "cursor contract": peek(n), bump, expect, at, eat).
// The final element of toks is always EndOfInput; bump never advances
// past it, so peek beyond the end keeps returning it.
type cursor struct {
	toks []token.Token
	pos  int
}

func newCursor(toks []token.Token) *cursor {
	if len(toks) == 0 {
		toks = []token.Token{{Kind: token.EndOfInput}}
	}
	return &cursor{toks: toks}
}

// peek returns the token n positions ahead of the cursor (peek(0) is the
// current token).
func (c *cursor) peek(n int) token.Token {
	i := c.pos + n
	if i < 0 {
		i = 0
	}
	if i >= len(c.toks) {
		return c.toks[len(c.toks)-1]
	}
	return c.toks[i]
}

func (c *cursor) cur() token.Token { return c.peek(0) }

// bump consumes and returns the current token, advancing the cursor
// unless already at the final EndOfInput.
func (c *cursor) bump() token.Token {
	t := c.cur()
	if c.pos < len(c.toks)-1 {
		c.pos++
	}
	return t
}

// at reports whether the current token has kind k.
func (c *cursor) at(k token.Kind) bool { return c.cur().Kind == k }

// atAny reports whether the current token has any of the given kinds.
func (c *cursor) atAny(ks ...token.Kind) bool {
	cur := c.cur().Kind
	for _, k := range ks {
		if cur == k {
			return true
		}
	}
	return false
}

// eat consumes the current token and returns true if it has kind k,
// otherwise leaves the cursor in place and returns false.
func (c *cursor) eat(k token.Kind) bool {
	if c.at(k) {
		c.bump()
		return true
	}
	return false
}

func (c *cursor) eof() bool { return c.at(token.EndOfInput) }

// curSpan is the zero-width span of the current token's start, useful for
// synthesizing Missing nodes at the point parsing got stuck.
func (c *cursor) curSpan() span.Span { return span.Zero(c.cur().Span.Start) }
