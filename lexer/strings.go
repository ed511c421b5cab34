package lexer

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/phpcore/phpast/span"
	"github.com/phpcore/phpast/token"
)

// scanSingleQuoted scans a '...' literal. Only \\ and \' are recognized
// escapes (spec 4.2 "Single-quoted strings"); everything else, including a
// bare backslash, is copied through verbatim.
func (l *Lexer) scanSingleQuoted(start int) token.Token {
	l.pos++ // opening '
	var decoded strings.Builder
	for {
		c, ok := l.cur()
		if !ok {
			l.diags.Addf("lex.unterminated-string", span.New(uint32(start), uint32(l.pos)), "unterminated single-quoted string")
			break
		}
		if c == '\'' {
			l.pos++
			break
		}
		if c == '\\' {
			if next, ok2 := l.byteAt(1); ok2 && (next == '\'' || next == '\\') {
				decoded.WriteByte(next)
				l.pos += 2
				continue
			}
		}
		decoded.WriteByte(c)
		l.pos++
	}
	t := l.makeToken(token.SingleQuotedString, start)
	t.Data.Sym = l.in.Intern(decoded.String())
	t.Data.Raw = l.in.Intern(string(l.src[start:l.pos]))
	return t
}

// scanInterpolated is the dispatcher for the DoubleQuote and Backquote
// states: the current byte is either the closing delimiter, the start of
// a variable/complex interpolation, or the start of a literal chunk.
func (l *Lexer) scanInterpolated(st state, closeByte byte, _ bool) token.Token {
	start := l.pos
	c, ok := l.cur()
	if !ok {
		l.diags.Addf("lex.unterminated-string", span.New(uint32(start), uint32(l.pos)), "unterminated string")
		return l.eofToken()
	}
	if c == closeByte {
		l.pos++
		l.states.pop()
		kind := token.DoubleQuote
		if closeByte == '`' {
			kind = token.Backtick
		}
		return l.makeToken(kind, start)
	}
	if tok, handled := l.scanInterpolationTrigger(start); handled {
		return tok
	}
	return l.scanLiteralRun(start, func() bool {
		c, ok := l.cur()
		if !ok {
			return true
		}
		if c == closeByte {
			return true
		}
		return l.atInterpolationTrigger()
	}, 0, true)
}

// atInterpolationTrigger reports whether the lexer is positioned at '$' +
// identifier-start (simple variable form) or "{$" (complex form) or "${"
// (braced variable-name form).
func (l *Lexer) atInterpolationTrigger() bool {
	c, ok := l.cur()
	if !ok {
		return false
	}
	if c == '$' {
		if n, ok2 := l.byteAt(1); ok2 && (isIdentStart(n) || n == '{') {
			return true
		}
		return false
	}
	if c == '{' {
		if n, ok2 := l.byteAt(1); ok2 && n == '$' {
			return true
		}
	}
	return false
}

// scanInterpolationTrigger consumes and emits the token for a variable or
// complex-expression interpolation opener at the current position, if
// there is one. It is only ever called at a position where
// atInterpolationTrigger (or the heredoc equivalent) already returned true
// or where chunk scanning just stopped, so "handled" is false only when
// called speculatively and nothing matched.
func (l *Lexer) scanInterpolationTrigger(start int) (token.Token, bool) {
	c, ok := l.cur()
	if !ok {
		return token.Token{}, false
	}
	switch {
	case c == '{' && l.startsWith("{$"):
		l.pos++ // consume '{' only; '$' begins the nested Scripting token stream
		l.states.push(stScripting)
		l.curly = append(l.curly, 0)
		return l.makeToken(token.CurlyOpen, start), true

	case c == '$' && l.startsWith("${"):
		l.pos += 2
		l.states.push(stLookingForVarName)
		return l.makeToken(token.DollarOpenCurlyBrace, start), true

	case c == '$':
		return l.scanInterpVariable(start), true
	}
	return token.Token{}, false
}

// scanInterpVariable scans the simple `$name` form inside an interpolated
// string and arranges for a following `->prop` or `[offset]` to be
// recognized on subsequent NextToken calls (spec 4.2 "A simple variable
// form $a, $a->b, $a[expr] is recognized in-line").
func (l *Lexer) scanInterpVariable(start int) token.Token {
	l.pos++ // '$'
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

	if l.startsWith("->") {
		if n, ok := l.byteAt(2); ok && isIdentStart(n) {
			l.states.push(stLookingForProperty)
			return t
		}
	}
	if c, ok := l.cur(); ok && c == '[' {
		l.states.push(stVarOffset)
	}
	return t
}

// scanLookingForProperty handles the two-call sequence after a simple
// `$var->` interpolation trigger: first it emits the Arrow, then the bare
// property identifier, then pops back to the outer string state.
func (l *Lexer) scanLookingForProperty() token.Token {
	if !l.propertyArrowConsumed {
		start := l.pos
		l.pos += 2 // "->"
		l.propertyArrowConsumed = true
		return l.makeToken(token.Arrow, start)
	}
	start := l.pos
	for {
		c, ok := l.cur()
		if !ok || !isIdentPart(c) {
			break
		}
		l.pos++
	}
	name := string(l.src[start:l.pos])
	l.propertyArrowConsumed = false
	l.states.pop()
	t := l.makeToken(token.Identifier, start)
	t.Data.Sym = l.in.Intern(name)
	return t
}

// scanVarOffset handles the restricted `[...]` index grammar allowed
// inline inside interpolation (spec: ST_VAR_OFFSET): a bare integer, a
// bare unquoted name, or a `$variable`, then the closing `]`.
func (l *Lexer) scanVarOffset() token.Token {
	start := l.pos
	c, ok := l.cur()
	if !ok {
		l.states.pop()
		return l.eofToken()
	}
	switch {
	case c == '[':
		l.pos++
		return l.makeToken(token.LBracket, start)
	case c == ']':
		l.pos++
		l.states.pop()
		return l.makeToken(token.RBracket, start)
	case c == '$':
		return l.scanVariable(start)
	case c == '-' || isDigit(c):
		l.pos++
		for {
			d, ok2 := l.cur()
			if !ok2 || !isDigit(d) {
				break
			}
			l.pos++
		}
		t := l.makeToken(token.Int, start)
		text := string(l.src[start:l.pos])
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			t.Data.IntValue = v
		}
		t.Data.Raw = l.in.Intern(text)
		return t
	case isIdentStart(c):
		for {
			d, ok2 := l.cur()
			if !ok2 || !isIdentPart(d) {
				break
			}
			l.pos++
		}
		t := l.makeToken(token.Identifier, start)
		t.Data.Sym = l.in.Intern(string(l.src[start:l.pos]))
		return t
	default:
		l.pos++
		l.diags.Addf("lex.bad-character", span.New(uint32(start), uint32(l.pos)), "unexpected byte in string offset")
		return l.makeToken(token.Invalid, start)
	}
}

// scanLookingForVarName handles `${name` (and its `[offset]}` or plain
// `}` continuation).
func (l *Lexer) scanLookingForVarName() token.Token {
	start := l.pos
	c, ok := l.cur()
	if !ok {
		l.states.pop()
		return l.eofToken()
	}
	switch {
	case isIdentStart(c):
		for {
			d, ok2 := l.cur()
			if !ok2 || !isIdentPart(d) {
				break
			}
			l.pos++
		}
		t := l.makeToken(token.StringVarName, start)
		t.Data.Sym = l.in.Intern(string(l.src[start:l.pos]))
		return t
	case c == '[':
		l.states.push(stVarOffset)
		return l.scanVarOffset()
	case c == '}':
		l.pos++
		l.states.pop()
		return l.makeToken(token.RBrace, start)
	default:
		l.pos++
		l.diags.Addf("lex.bad-character", span.New(uint32(start), uint32(l.pos)), "malformed ${...} variable name")
		return l.makeToken(token.Invalid, start)
	}
}

// scanLiteralRun scans a run of literal text bounded by stop(). When
// decodeEscapes is true (double-quoted strings and heredocs) it decodes
// `\x`-style escapes as it goes; nowdoc bodies pass false and are copied
// verbatim (spec "Nowdoc ... no escape processing at all"). It applies
// heredoc indentation stripping (stripWidth > 0) at the start of the chunk
// and after every embedded newline.
func (l *Lexer) scanLiteralRun(start int, stop func() bool, stripWidth int, decodeEscapes bool) token.Token {
	var decoded strings.Builder
	atLineStart := l.atChunkLineStart(start)
	if atLineStart && stripWidth > 0 {
		l.skipIndent(stripWidth)
	}
	for !stop() {
		c, ok := l.cur()
		if !ok {
			break
		}
		if c == '\\' && decodeEscapes {
			consumed, text := l.decodeDoubleQuoteEscape()
			if consumed {
				decoded.WriteString(text)
				continue
			}
		}
		if c == '\n' {
			decoded.WriteByte(c)
			l.pos++
			if stripWidth > 0 && !stop() {
				l.skipIndent(stripWidth)
			}
			continue
		}
		decoded.WriteByte(c)
		l.pos++
	}
	t := l.makeToken(token.EncapsedAndWhitespace, start)
	t.Data.Sym = l.in.Intern(decoded.String())
	t.Data.Raw = l.in.Intern(string(l.src[start:l.pos]))
	return t
}

func (l *Lexer) atChunkLineStart(pos int) bool {
	return pos == 0 || l.src[pos-1] == '\n'
}

func (l *Lexer) skipIndent(width int) {
	for i := 0; i < width; i++ {
		c, ok := l.cur()
		if !ok || (c != ' ' && c != '\t') {
			return
		}
		l.pos++
	}
}

// decodeDoubleQuoteEscape decodes one `\x` escape sequence starting at the
// current position (a backslash), returning whether it recognized one and
// its decoded text. An unrecognized sequence is left as a literal
// backslash followed by the next byte, with a warning diagnostic (spec
// 7 "invalid escape ... (warning)").
func (l *Lexer) decodeDoubleQuoteEscape() (bool, string) {
	start := l.pos
	n, ok := l.byteAt(1)
	if !ok {
		return false, ""
	}
	simple := map[byte]byte{
		'n': '\n', 't': '\t', 'r': '\r', 'v': '\v', 'f': '\f',
		'e': 0x1b, '\\': '\\', '$': '$', '"': '"', '`': '`',
	}
	if b, ok2 := simple[n]; ok2 {
		l.pos += 2
		return true, string(b)
	}
	switch {
	case n == 'x' && l.isHexDigitAt(2):
		l.pos += 2
		hs := l.pos
		for i := 0; i < 2 && l.isHexDigitAt(0); i++ {
			l.pos++
		}
		v := parseHexByte(l.src[hs:l.pos])
		return true, string(rune(v))
	case n == 'u' && l.byteAtEq(2, '{'):
		l.pos += 3
		us := l.pos
		for {
			c, ok2 := l.cur()
			if !ok2 || c == '}' {
				break
			}
			l.pos++
		}
		cp := parseHexRune(l.src[us:l.pos])
		if c, ok2 := l.cur(); ok2 && c == '}' {
			l.pos++
		}
		return true, string(cp)
	case n >= '0' && n <= '7':
		l.pos++
		os := l.pos
		for i := 0; i < 3 && l.octDigitAt(0); i++ {
			l.pos++
		}
		v := parseOctByte(l.src[os:l.pos])
		return true, string(rune(v))
	}
	l.diags.Warnf("lex.bad-escape", span.New(uint32(start), uint32(start+2)), "unknown escape sequence \\%c", n)
	l.pos += 2
	return true, "\\" + string(n)
}

func (l *Lexer) isHexDigitAt(offset int) bool {
	c, ok := l.byteAt(offset)
	return ok && isHexDigit(c)
}

func (l *Lexer) octDigitAt(offset int) bool {
	c, ok := l.byteAt(offset)
	return ok && isOctDigit(c)
}

func (l *Lexer) byteAtEq(offset int, want byte) bool {
	c, ok := l.byteAt(offset)
	return ok && c == want
}

func parseHexByte(b []byte) byte {
	var v int
	for _, c := range b {
		v = v*16 + hexVal(c)
	}
	return byte(v)
}

func parseHexRune(b []byte) rune {
	var v int64
	for _, c := range b {
		v = v*16 + int64(hexVal(c))
	}
	return rune(v)
}

func parseOctByte(b []byte) byte {
	var v int
	for _, c := range b {
		v = v*8 + int(c-'0')
	}
	return byte(v)
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}

// ---- heredoc / nowdoc ----

// scanHeredocStart attempts to parse a `<<<LABEL`/`<<<"LABEL"`/`<<<'LABEL'`
// opener at the current position. On failure (no valid label follows) it
// restores the position so the caller can fall back to lexing `<` as an
// operator.
func (l *Lexer) scanHeredocStart(start int) (token.Token, bool) {
	save := l.pos
	l.pos += 3 // "<<<"
	for {
		c, ok := l.cur()
		if ok && (c == ' ' || c == '\t') {
			l.pos++
			continue
		}
		break
	}

	interpolates := true
	var quote byte
	if c, ok := l.cur(); ok && (c == '"' || c == '\'') {
		quote = c
		interpolates = c == '"'
		l.pos++
	}
	labelStart := l.pos
	for {
		c, ok := l.cur()
		if ok && isIdentPart(c) {
			l.pos++
			continue
		}
		break
	}
	label := string(l.src[labelStart:l.pos])
	if label == "" {
		l.pos = save
		return token.Token{}, false
	}
	if quote != 0 {
		c, ok := l.cur()
		if !ok || c != quote {
			l.pos = save
			return token.Token{}, false
		}
		l.pos++
	}
	if c, ok := l.cur(); ok && c == '\r' {
		l.pos++
	}
	if c, ok := l.cur(); ok && c == '\n' {
		l.pos++
	} else if !l.eof() {
		l.pos = save
		return token.Token{}, false
	}

	bodyStart := l.pos
	lineStart, width, found := l.findHeredocClose(label, bodyStart)
	var valueEnd int
	if found {
		valueEnd = lineStart
		if valueEnd > bodyStart && l.src[valueEnd-1] == '\n' {
			valueEnd--
			if valueEnd > bodyStart && l.src[valueEnd-1] == '\r' {
				valueEnd--
			}
		}
	} else {
		lineStart = len(l.src)
		valueEnd = len(l.src)
		l.diags.Addf("lex.unterminated-heredoc", span.New(uint32(start), uint32(l.pos)), "unterminated heredoc/nowdoc label %q", label)
	}

	l.heredocs = append(l.heredocs, heredocLabel{
		text:         label,
		interpolates: interpolates,
		bodyStart:    bodyStart,
		valueEnd:     valueEnd,
		lineStart:    lineStart,
		indentWidth:  width,
		found:        found,
	})

	kind := token.StartHeredoc
	if !interpolates {
		kind = token.StartNowdoc
		l.states.push(stNowdoc)
	} else {
		l.states.push(stHeredoc)
	}
	return l.makeToken(kind, start), true
}

// findHeredocClose scans line by line from `from` looking for a line whose
// (possibly indented) start matches label, followed by a non-identifier
// byte or end of input.
func (l *Lexer) findHeredocClose(label string, from int) (lineStart, width int, found bool) {
	p := from
	for p <= len(l.src) {
		w := 0
		for p+w < len(l.src) && (l.src[p+w] == ' ' || l.src[p+w] == '\t') {
			w++
		}
		if p+w+len(label) <= len(l.src) && string(l.src[p+w:p+w+len(label)]) == label {
			after := p + w + len(label)
			if after >= len(l.src) || !isIdentPart(l.src[after]) {
				return p, w, true
			}
		}
		nl := bytes.IndexByte(l.src[p:], '\n')
		if nl < 0 {
			break
		}
		p = p + nl + 1
	}
	return 0, 0, false
}

func (l *Lexer) currentHeredoc() *heredocLabel {
	return &l.heredocs[len(l.heredocs)-1]
}

// scanHeredocChunk scans the interpolating heredoc body the same way a
// double-quoted string is scanned, bounded by the precomputed valueEnd
// instead of a closing quote byte, and stripping each content line's
// shared indentation (spec "Heredoc/Nowdoc" + the flexible-heredoc open
// question).
func (l *Lexer) scanHeredocChunk() token.Token {
	hl := l.currentHeredoc()
	if l.pos >= hl.valueEnd {
		return l.closeHeredoc()
	}
	start := l.pos
	if tok, handled := l.scanInterpolationTrigger(start); handled {
		return tok
	}
	return l.scanLiteralRun(start, func() bool {
		return l.pos >= hl.valueEnd || l.atInterpolationTrigger()
	}, hl.indentWidth, true)
}

// scanNowdoc emits the entire (non-interpolating) body as one literal
// token, then the closing label on the next call.
func (l *Lexer) scanNowdoc() token.Token {
	hl := l.currentHeredoc()
	if l.pos >= hl.valueEnd {
		return l.closeHeredoc()
	}
	start := l.pos
	return l.scanLiteralRun(start, func() bool {
		return l.pos >= hl.valueEnd
	}, hl.indentWidth, false)
}

func (l *Lexer) closeHeredoc() token.Token {
	hl := l.currentHeredoc()
	start := hl.lineStart
	l.pos = hl.lineStart
	if hl.found {
		l.pos += hl.indentWidth + len(hl.text)
	}
	l.heredocs = l.heredocs[:len(l.heredocs)-1]
	l.states.pop()
	kind := token.EndHeredoc
	return l.makeToken(kind, start)
}
