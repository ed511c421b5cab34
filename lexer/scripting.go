package lexer

import (
	"strings"

	"github.com/phpcore/phpast/span"
	"github.com/phpcore/phpast/token"
)

// scanScripting is the main in-PHP-code dispatcher (spec 4.2 "Scripting
// state"). It skips whitespace and comments (attaching the latter as
// trivia), then recognizes one token: an identifier/keyword, a variable,
// a number, a string opener, an attribute opener, a close tag, or an
// operator/punctuation via maximal-munch.
func (l *Lexer) scanScripting() token.Token {
	for {
		l.skipWhitespace()
		if !l.skipComment() {
			break
		}
	}
	if l.eof() {
		return l.eofToken()
	}

	start := l.pos
	c, _ := l.cur()

	switch {
	case l.startsWith("?>"):
		l.pos += 2
		// A single trailing newline is consumed with the close tag.
		if nc, ok := l.cur(); ok && nc == '\n' {
			l.pos++
		} else if l.startsWith("\r\n") {
			l.pos += 2
		}
		l.states.replaceTop(stInitial)
		return l.makeToken(token.CloseTag, start)

	case c == '$':
		return l.scanVariable(start)

	case isIdentStart(c):
		return l.scanIdentifierOrKeyword(start)

	case isDigit(c) || (c == '.' && l.peekIsDigit(1)):
		return l.scanNumber(start)

	case c == '\'':
		return l.scanSingleQuoted(start)

	case c == '"':
		l.pos++
		l.states.push(stDoubleQuote)
		return l.makeToken(token.DoubleQuote, start)

	case c == '`':
		l.pos++
		l.states.push(stBackquote)
		return l.makeToken(token.Backtick, start)

	case l.startsWith("<<<"):
		if tok, ok := l.scanHeredocStart(start); ok {
			return tok
		}
		l.pos++
		return l.makeToken(token.Lt, start)

	case l.startsWith("#["):
		l.pos += 2
		return l.makeToken(token.Attribute, start)

	case c == '(':
		if tok, ok := l.scanCast(start); ok {
			return tok
		}
		return l.scanOperator(start)

	default:
		return l.scanOperator(start)
	}
}

// castKinds maps a cast type name, lowercased, to its token kind
// (spec 4.3 disambiguation: "(Name)" is a cast iff Name is one of these).
var castKinds = map[string]token.Kind{
	"int":     token.IntCast,
	"integer": token.IntCast,
	"float":   token.DoubleCast,
	"double":  token.DoubleCast,
	"real":    token.DoubleCast,
	"string":  token.StringCast,
	"binary":  token.StringCast,
	"bool":    token.BoolCast,
	"boolean": token.BoolCast,
	"array":   token.ArrayCast,
	"object":  token.ObjectCast,
	"unset":   token.UnsetCast,
}

// scanCast looks ahead from an opening "(" for "(keyword)" where keyword
// is one of the cast type names, and if so consumes it as a single cast
// token. On any mismatch it restores the position and reports false so
// the caller can fall back to lexing a plain LParen (spec 4.2
// "checkTypeCast", ported from the teacher's lexer).
func (l *Lexer) scanCast(start int) (token.Token, bool) {
	savedPos := l.pos
	l.pos++ // skip '('

	for {
		c, ok := l.cur()
		if !ok || (c != ' ' && c != '\t') {
			break
		}
		l.pos++
	}

	nameStart := l.pos
	if c, ok := l.cur(); !ok || !isIdentStart(c) {
		l.pos = savedPos
		return token.Token{}, false
	}
	for {
		c, ok := l.cur()
		if !ok || !isIdentPart(c) {
			break
		}
		l.pos++
	}
	name := string(l.src[nameStart:l.pos])

	for {
		c, ok := l.cur()
		if !ok || (c != ' ' && c != '\t') {
			break
		}
		l.pos++
	}

	kind, isCast := castKinds[strings.ToLower(name)]
	if !isCast {
		l.pos = savedPos
		return token.Token{}, false
	}
	if c, ok := l.cur(); !ok || c != ')' {
		l.pos = savedPos
		return token.Token{}, false
	}
	l.pos++ // skip ')'
	return l.makeToken(kind, start), true
}

func (l *Lexer) peekIsDigit(offset int) bool {
	c, ok := l.byteAt(offset)
	return ok && isDigit(c)
}

func (l *Lexer) skipWhitespace() {
	for {
		c, ok := l.cur()
		if !ok || !isSpace(c) {
			return
		}
		l.pos++
	}
}

// skipComment consumes one `//`, `#`, `/* */`, or `/** */` comment at the
// current position if present, recording it as trivia, and reports
// whether it consumed anything (so the caller can loop for whitespace
// that follows).
func (l *Lexer) skipComment() bool {
	start := l.pos
	switch {
	case l.startsWith("/**") && !l.startsWith("/**/"):
		l.pos += 3
		l.scanBlockCommentBody()
		l.recordTrivia(token.DocComment, start)
		return true

	case l.startsWith("/*"):
		l.pos += 2
		l.scanBlockCommentBody()
		l.recordTrivia(token.Comment, start)
		return true

	case l.startsWith("//"), l.startsWith("#") && !l.startsWith("#["):
		// A `//` or `#` line comment also ends at `?>` without consuming it,
		// matching PHP's own tokenizer.
		for !l.eof() {
			if c, _ := l.cur(); c == '\n' {
				break
			}
			if l.startsWith("?>") {
				break
			}
			l.pos++
		}
		l.recordTrivia(token.Comment, start)
		return true
	}
	return false
}

func (l *Lexer) scanBlockCommentBody() {
	for !l.eof() {
		if l.startsWith("*/") {
			l.pos += 2
			return
		}
		l.pos++
	}
	l.diags.Addf("lex.unterminated-comment", span.New(uint32(l.pos), uint32(l.pos)), "unterminated block comment")
}

func (l *Lexer) recordTrivia(kind token.Kind, start int) {
	if !l.opts.AttachTrivia {
		return
	}
	l.pendingTrivia = append(l.pendingTrivia, token.Trivia{Kind: kind, Span: span.New(uint32(start), uint32(l.pos))})
}

func (l *Lexer) scanVariable(start int) token.Token {
	l.pos++ // consume '$'
	if c, ok := l.cur(); !ok || !isIdentStart(c) {
		// A lone '$' (e.g. before `{` in `${expr}` form) is emitted as a
		// Dollar token; the parser reads it as the start of a
		// variable-variable (`$$name`, `${expr}`).
		return l.makeToken(token.Dollar, start)
	}
	nameStart := l.pos
	for {
		c, ok := l.cur()
		if !ok || !isIdentPart(c) {
			break
		}
		l.pos++
	}
	name := string(l.src[nameStart:l.pos])
	t := l.makeToken(token.Variable, start)
	t.Data.Sym = l.in.Intern(name)
	return t
}

func (l *Lexer) scanIdentifierOrKeyword(start int) token.Token {
	for {
		c, ok := l.cur()
		if !ok || !isIdentPart(c) {
			break
		}
		l.pos++
	}
	text := string(l.src[start:l.pos])
	if kind, ok := token.LookupKeyword(text); ok {
		t := l.makeToken(kind, start)
		t.Data.Sym = l.in.Intern(text)
		return t
	}
	t := l.makeToken(token.Identifier, start)
	t.Data.Sym = l.in.Intern(text)
	return t
}

// operators, longest spelling first within each starting byte so maximal
// munch always finds the longest match (spec 4.2 "maximal-munch
// longest-prefix match").
var operatorTable = []struct {
	text string
	kind token.Kind
}{
	{"<=>", token.Spaceship},
	{"===", token.IsIdentical},
	{"!==", token.IsNotIdentical},
	{"**=", token.PowEqual},
	{"<<=", token.ShlEqual},
	{">>=", token.ShrEqual},
	{"??=", token.CoalesceEqual},
	{"...", token.Ellipsis},
	{"?->", token.NullsafeArrow},
	{"<>", token.IsNotEqual},
	{"==", token.IsEqual},
	{"!=", token.IsNotEqual},
	{"<=", token.LessOrEqual},
	{">=", token.GreaterOrEqual},
	{"+=", token.PlusEqual},
	{"-=", token.MinusEqual},
	{"*=", token.StarEqual},
	{"/=", token.SlashEqual},
	{".=", token.DotEqual},
	{"%=", token.PercentEqual},
	{"&=", token.AmpEqual},
	{"|=", token.PipeEqual},
	{"^=", token.CaretEqual},
	{"->", token.Arrow},
	{"=>", token.DoubleArrow},
	{"::", token.DoubleColon},
	{"++", token.Inc},
	{"--", token.Dec},
	{"||", token.BooleanOr},
	{"&&", token.BooleanAnd},
	{"??", token.Coalesce},
	{"<<", token.Shl},
	{">>", token.Shr},
	{"**", token.Pow},
	{";", token.Semicolon},
	{",", token.Comma},
	{".", token.Dot},
	{"{", token.LBrace},
	{"}", token.RBrace},
	{"(", token.LParen},
	{")", token.RParen},
	{"[", token.LBracket},
	{"]", token.RBracket},
	{"+", token.Plus},
	{"-", token.Minus},
	{"*", token.Star},
	{"/", token.Slash},
	{"%", token.Percent},
	{"&", token.Amp},
	{"|", token.Pipe},
	{"^", token.Caret},
	{"~", token.Tilde},
	{"<", token.Lt},
	{">", token.Gt},
	{"=", token.Assign},
	{"!", token.Bang},
	{"?", token.Question},
	{":", token.Colon},
	{"@", token.At},
	{"$", token.Dollar},
	{"\\", token.NamespaceSep},
}

func (l *Lexer) scanOperator(start int) token.Token {
	for _, op := range operatorTable {
		if strings.HasPrefix(string(l.src[l.pos:]), op.text) {
			l.pos += len(op.text)
			switch op.kind {
			case token.LBrace:
				l.bumpCurlyOpen()
			case token.RBrace:
				if closed := l.bumpCurlyClose(); closed {
					// The matching `}` of a `{$...}` interpolation opener: pop
					// back out of the nested Scripting substate the opener
					// pushed, resuming the enclosing string/heredoc state.
					l.states.pop()
				}
			}
			return l.makeToken(op.kind, start)
		}
	}
	// Unrecognized byte: diagnose and emit it as Invalid so the parser can
	// still advance (spec 4.2 error handling).
	c, _ := l.cur()
	l.pos++
	l.diags.Addf("lex.bad-character", span.New(uint32(start), uint32(l.pos)), "unexpected byte 0x%02x", c)
	return l.makeToken(token.Invalid, start)
}

// bumpCurlyOpen tracks brace balance for the innermost active `{$...}`
// interpolation substate, if any is on the stack; a `{` that occurs in
// plain top-level Scripting (no active interpolation substate) needs no
// tracking since the parser matches those braces itself.
func (l *Lexer) bumpCurlyOpen() {
	if len(l.curly) == 0 {
		return
	}
	l.curly[len(l.curly)-1]++
}

// bumpCurlyClose decrements the innermost brace-balance counter and
// reports whether this `}` was the one that closes the active `{$...}`
// interpolation substate itself (counter was already at 0).
func (l *Lexer) bumpCurlyClose() bool {
	if len(l.curly) == 0 {
		return false
	}
	top := len(l.curly) - 1
	if l.curly[top] == 0 {
		l.curly = l.curly[:top]
		return true
	}
	l.curly[top]--
	return false
}
