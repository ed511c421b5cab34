// Package lexer turns PHP source bytes into a finite token sequence,
// switching among the lexical states a context-sensitive PHP scanner
// needs: outside-PHP literal text, in-PHP code, and the several
// string/interpolation substates (spec section 4.2).
package lexer

import (
	"strings"

	"github.com/phpcore/phpast/diag"
	"github.com/phpcore/phpast/internal/interner"
	"github.com/phpcore/phpast/span"
	"github.com/phpcore/phpast/token"
)

// Options configures lexing behavior that is not part of the PHP grammar
// itself.
type Options struct {
	// AttachTrivia, when true (the default), attaches comments to the
	// following token as leading trivia instead of discarding them
	// (spec 3 "Comments").
	AttachTrivia bool
	// AllowGenericSyntax is off by default (spec open question 3). The
	// lexer does not read it: `<T>` / `::<T>` fragments are lexed as
	// ordinary tokens whatever its value, and are neither specially
	// diagnosed nor skipped.
	AllowGenericSyntax bool
}

// DefaultOptions returns the default lexing configuration (trivia
// attached, generics off).
func DefaultOptions() Options {
	return Options{AttachTrivia: true}
}

// Lexer is a single-use scanner over one immutable source buffer. It is
// not safe for concurrent use; each parse owns its own Lexer and Interner.
type Lexer struct {
	src []byte
	pos int // byte offset of the next unread byte

	states   stateStack
	curly    []int // brace-balance counters, one per pushed {$...} substate
	heredocs []heredocLabel

	in    *interner.Interner
	diags *diag.Bag
	opts  Options

	pendingTrivia []token.Trivia

	// propertyArrowConsumed tracks which half of the two-call `->prop`
	// interpolation sequence (see scanLookingForProperty) is next.
	propertyArrowConsumed bool
}

// New constructs a Lexer over src. The caller supplies the Interner so the
// same table can be shared with the parser for the duration of one parse.
func New(src []byte, in *interner.Interner, opts Options) *Lexer {
	l := &Lexer{
		src:   src,
		in:    in,
		diags: &diag.Bag{},
		opts:  opts,
	}
	l.skipShebang()
	l.states.push(stInitial)
	return l
}

// skipShebang advances past a `#!...\n` first line, as PHP permits
// (spec section 6 "Input format").
func (l *Lexer) skipShebang() {
	if len(l.src) < 2 || l.src[0] != '#' || l.src[1] != '!' {
		return
	}
	i := 2
	for i < len(l.src) && l.src[i] != '\n' {
		i++
	}
	if i < len(l.src) {
		i++ // consume the newline itself
	}
	l.pos = i
}

// Diagnostics returns every diagnostic accumulated so far.
func (l *Lexer) Diagnostics() *diag.Bag {
	return l.diags
}

func (l *Lexer) eof() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) byteAt(offset int) (byte, bool) {
	i := l.pos + offset
	if i < 0 || i >= len(l.src) {
		return 0, false
	}
	return l.src[i], true
}

func (l *Lexer) cur() (byte, bool) {
	return l.byteAt(0)
}

func (l *Lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	return c
}

func (l *Lexer) startsWith(s string) bool {
	return strings.HasPrefix(string(l.src[l.pos:]), s)
}

func (l *Lexer) startsWithFold(s string) bool {
	if l.pos+len(s) > len(l.src) {
		return false
	}
	return strings.EqualFold(string(l.src[l.pos:l.pos+len(s)]), s)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// NextToken scans and returns the next token from the input, driving the
// state machine. It always eventually returns an EndOfInput token and
// keeps returning it on subsequent calls.
func (l *Lexer) NextToken() token.Token {
	switch l.states.top() {
	case stInitial:
		return l.scanInitial()
	case stDoubleQuote:
		return l.scanInterpolated(stDoubleQuote, '"', false)
	case stBackquote:
		return l.scanInterpolated(stBackquote, '`', false)
	case stHeredoc:
		return l.scanHeredocChunk()
	case stNowdoc:
		return l.scanNowdoc()
	case stLookingForVarName:
		return l.scanLookingForVarName()
	case stLookingForProperty:
		return l.scanLookingForProperty()
	case stVarOffset:
		return l.scanVarOffset()
	default:
		return l.scanScripting()
	}
}

// Tokenize runs the lexer to completion and returns the full token vector
// (spec 6 "tokenize" entry point).
func Tokenize(src []byte, in *interner.Interner, opts Options) ([]token.Token, *diag.Bag) {
	l := New(src, in, opts)
	var toks []token.Token
	for {
		t := l.NextToken()
		toks = append(toks, t)
		if t.Kind == token.EndOfInput {
			break
		}
	}
	return toks, l.diags
}

func (l *Lexer) makeToken(kind token.Kind, start int) token.Token {
	t := token.Token{Kind: kind, Span: span.New(uint32(start), uint32(l.pos))}
	if l.opts.AttachTrivia && len(l.pendingTrivia) > 0 {
		t.Leading = l.pendingTrivia
		l.pendingTrivia = nil
	}
	return t
}

func (l *Lexer) eofToken() token.Token {
	return token.Token{Kind: token.EndOfInput, Span: span.Zero(uint32(l.pos))}
}

// scanInitial emits a single InlineHTML token spanning up to the next
// open tag or end of input (spec 4.2 "Initial state").
func (l *Lexer) scanInitial() token.Token {
	start := l.pos
	if l.eof() {
		return l.eofToken()
	}
	for !l.eof() {
		if l.startsWithFold("<?php") {
			if start == l.pos {
				l.pos += len("<?php")
				// PHP consumes one whitespace/newline char after <?php.
				if c, ok := l.cur(); ok && isSpace(c) {
					l.pos++
				}
				l.states.replaceTop(stScripting)
				return l.makeToken(token.OpenTag, start)
			}
			break
		}
		if l.startsWith("<?=") {
			if start == l.pos {
				l.pos += len("<?=")
				l.states.replaceTop(stScripting)
				return l.makeToken(token.OpenTagEcho, start)
			}
			break
		}
		l.pos++
	}
	return l.makeToken(token.InlineHTML, start)
}
