package token

import (
	"fmt"

	"github.com/phpcore/phpast/internal/interner"
	"github.com/phpcore/phpast/span"
)

// Data holds the payload optionally attached to a Token. Exactly which
// fields are meaningful is determined by the Token's Kind:
//   - Identifier, Variable, StringVarName, keywords: Sym is the interned
//     spelling (without the leading '$' for Variable).
//   - Int: IntValue holds the decoded value.
//   - Float: FloatValue holds the decoded value; Overflow is set when the
//     literal was written as an integer whose text did not fit in an int64
//     and PHP's own rule promoted it to a float (spec 4.2 "overflow to
//     float").
//   - SingleQuotedString, ConstantEncapsedString, EncapsedAndWhitespace:
//     Sym is the decoded payload (escapes resolved); Raw is the interned
//     original source text for round-trip verification.
type Data struct {
	Sym        interner.Symbol
	Raw        interner.Symbol
	IntValue   int64
	FloatValue float64
	Overflow   bool
}

// Trivia is a comment attached to the token that follows it (default
// attach mode; spec 3 "Comments").
type Trivia struct {
	Kind Kind // Comment or DocComment
	Span span.Span
}

// Token is the lexer's atomic output unit: a Kind, its source Span, and an
// optional Data payload. Leading comment trivia is carried alongside it.
type Token struct {
	Kind    Kind
	Span    span.Span
	Data    Data
	Leading []Trivia
}

// String renders a compact debug form; it is not used for diagnostics
// rendering (out of scope for this core, spec section 1).
func (t Token) String() string {
	return fmt.Sprintf("%s@%s", t.Kind, t.Span)
}

// Text returns the text of the token's Sym for literal- and
// identifier-shaped tokens, resolving through in: the spelling for names
// and keywords, the decoded payload for string chunks (the raw source
// text is in Data.Raw). Returns "" for tokens with no attached symbol.
func (t Token) Text(in *interner.Interner) string {
	if t.Data.Sym == 0 {
		return ""
	}
	return in.Resolve(t.Data.Sym)
}
