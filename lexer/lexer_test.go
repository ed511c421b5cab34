package lexer_test

import (
	"testing"

	"github.com/phpcore/phpast/internal/interner"
	"github.com/phpcore/phpast/lexer"
	"github.com/phpcore/phpast/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestTokenizeBasicScripting(t *testing.T) {
	in := interner.New()
	toks, diags := lexer.Tokenize([]byte("<?php $a = 1 + 2;"), in, lexer.DefaultOptions())
	require.Equal(t, 0, diags.Len())
	require.Equal(t, []token.Kind{
		token.OpenTag, token.Variable, token.Assign, token.Int,
		token.Plus, token.Int, token.Semicolon, token.EndOfInput,
	}, kinds(toks))
	assert.Equal(t, "a", toks[1].Text(in))
}

func TestTokenizeInlineHTMLBeforeOpenTag(t *testing.T) {
	in := interner.New()
	toks, diags := lexer.Tokenize([]byte("hello <?php echo 1;"), in, lexer.DefaultOptions())
	require.Equal(t, 0, diags.Len())
	require.Equal(t, token.InlineHTML, toks[0].Kind)
	assert.Equal(t, token.OpenTag, toks[1].Kind)
}

func TestTokenizeCloseTagReturnsToInlineHTML(t *testing.T) {
	in := interner.New()
	toks, _ := lexer.Tokenize([]byte("<?php $a = 1; ?>tail"), in, lexer.DefaultOptions())
	ks := kinds(toks)
	require.Contains(t, ks, token.CloseTag)
	// the byte run after "?>" is lexed as InlineHTML again.
	assert.Equal(t, token.InlineHTML, toks[len(toks)-2].Kind)
}

func TestKeywordsAreCaseInsensitiveButPreserveCase(t *testing.T) {
	in := interner.New()
	toks, diags := lexer.Tokenize([]byte("<?php RETURN;"), in, lexer.DefaultOptions())
	require.Equal(t, 0, diags.Len())
	require.Equal(t, token.KwReturn, toks[1].Kind)
	assert.Equal(t, "RETURN", toks[1].Text(in), "the interned symbol preserves source casing")
}

func TestOperatorMaximalMunch(t *testing.T) {
	in := interner.New()
	toks, diags := lexer.Tokenize([]byte("<?php $a <=> $b;"), in, lexer.DefaultOptions())
	require.Equal(t, 0, diags.Len())
	require.Equal(t, []token.Kind{
		token.OpenTag, token.Variable, token.Spaceship, token.Variable, token.Semicolon, token.EndOfInput,
	}, kinds(toks))
}

func TestSingleQuotedStringEscapes(t *testing.T) {
	in := interner.New()
	toks, diags := lexer.Tokenize([]byte(`<?php 'it\'s a \\test';`), in, lexer.DefaultOptions())
	require.Equal(t, 0, diags.Len())
	require.Equal(t, token.SingleQuotedString, toks[1].Kind)
	assert.Equal(t, `it's a \test`, toks[1].Text(in))
}

func TestSingleQuotedLeavesOtherBackslashesVerbatim(t *testing.T) {
	in := interner.New()
	toks, _ := lexer.Tokenize([]byte(`<?php '\n';`), in, lexer.DefaultOptions())
	assert.Equal(t, `\n`, toks[1].Text(in), "only \\\\ and \\' are recognized escapes in single-quoted strings")
}

func TestUnterminatedSingleQuotedStringDiagnoses(t *testing.T) {
	in := interner.New()
	_, diags := lexer.Tokenize([]byte(`<?php 'abc`), in, lexer.DefaultOptions())
	require.Equal(t, 1, diags.Len())
	assert.Equal(t, "lex.unterminated-string", diags.All()[0].Code)
}

func TestDoubleQuotedWithSimpleVariableInterpolation(t *testing.T) {
	in := interner.New()
	toks, diags := lexer.Tokenize([]byte(`<?php "hi $name!";`), in, lexer.DefaultOptions())
	require.Equal(t, 0, diags.Len())
	require.Equal(t, []token.Kind{
		token.OpenTag, token.DoubleQuote, token.EncapsedAndWhitespace, token.Variable,
		token.EncapsedAndWhitespace, token.DoubleQuote, token.Semicolon, token.EndOfInput,
	}, kinds(toks))
	assert.Equal(t, "hi ", toks[2].Text(in))
	assert.Equal(t, "name", toks[3].Text(in))
	assert.Equal(t, "!", toks[4].Text(in))
}

func TestDoubleQuotedDecodesEscapes(t *testing.T) {
	in := interner.New()
	toks, diags := lexer.Tokenize([]byte(`<?php "a\tb\n";`), in, lexer.DefaultOptions())
	require.Equal(t, 0, diags.Len())
	assert.Equal(t, "a\tb\n", toks[2].Text(in))
}

func TestHeredocStripsSharedIndentation(t *testing.T) {
	src := "<?php $x = <<<EOT\n    line one\n    line two\n    EOT;\n"
	in := interner.New()
	toks, diags := lexer.Tokenize([]byte(src), in, lexer.DefaultOptions())
	require.Equal(t, 0, diags.Len())
	var chunk string
	for _, tok := range toks {
		if tok.Kind == token.EncapsedAndWhitespace {
			chunk = tok.Text(in)
		}
	}
	assert.Equal(t, "line one\nline two", chunk)
}

func TestNowdocDoesNotDecodeEscapes(t *testing.T) {
	src := "<?php $x = <<<'EOT'\nraw\\nvalue\nEOT;\n"
	in := interner.New()
	toks, diags := lexer.Tokenize([]byte(src), in, lexer.DefaultOptions())
	require.Equal(t, 0, diags.Len())
	var chunk string
	for _, tok := range toks {
		if tok.Kind == token.EncapsedAndWhitespace {
			chunk = tok.Text(in)
		}
	}
	assert.Equal(t, `raw\nvalue`, chunk)
}

func TestUnterminatedHeredocDiagnoses(t *testing.T) {
	src := "<?php $x = <<<EOT\nno closing label\n"
	in := interner.New()
	_, diags := lexer.Tokenize([]byte(src), in, lexer.DefaultOptions())
	require.Equal(t, 1, diags.Len())
	assert.Equal(t, "lex.unterminated-heredoc", diags.All()[0].Code)
}

func TestIntegerLiteralBases(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int64
	}{
		{"decimal", "42", 42},
		{"hex", "0x2A", 42},
		{"octal-prefixed", "0o52", 42},
		{"binary", "0b101010", 42},
		{"legacy-octal", "052", 42},
		{"underscore-separators", "1_000_000", 1000000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := interner.New()
			toks, diags := lexer.Tokenize([]byte("<?php "+tt.src+";"), in, lexer.DefaultOptions())
			require.Equal(t, 0, diags.Len())
			require.Equal(t, token.Int, toks[1].Kind)
			assert.Equal(t, tt.want, toks[1].Data.IntValue)
		})
	}
}

func TestFloatLiteral(t *testing.T) {
	in := interner.New()
	toks, diags := lexer.Tokenize([]byte("<?php 3.14e2;"), in, lexer.DefaultOptions())
	require.Equal(t, 0, diags.Len())
	require.Equal(t, token.Float, toks[1].Kind)
	assert.InDelta(t, 314.0, toks[1].Data.FloatValue, 0.0001)
}

func TestIntegerOverflowPromotesToFloat(t *testing.T) {
	in := interner.New()
	toks, diags := lexer.Tokenize([]byte("<?php 99999999999999999999;"), in, lexer.DefaultOptions())
	require.Equal(t, 0, diags.Len())
	require.Equal(t, token.Float, toks[1].Kind)
}

func TestMisplacedNumericSeparatorDiagnoses(t *testing.T) {
	in := interner.New()
	_, diags := lexer.Tokenize([]byte("<?php 1__000;"), in, lexer.DefaultOptions())
	require.Equal(t, 1, diags.Len())
	assert.Equal(t, "lex.bad-number", diags.All()[0].Code)
}

func TestScanCastRecognizesEachTypeName(t *testing.T) {
	tests := []struct {
		src  string
		want token.Kind
	}{
		{"(int)", token.IntCast},
		{"(integer)", token.IntCast},
		{"( int )", token.IntCast},
		{"(float)", token.DoubleCast},
		{"(double)", token.DoubleCast},
		{"(real)", token.DoubleCast},
		{"(string)", token.StringCast},
		{"(binary)", token.StringCast},
		{"(BOOL)", token.BoolCast},
		{"(boolean)", token.BoolCast},
		{"(array)", token.ArrayCast},
		{"(object)", token.ObjectCast},
		{"(unset)", token.UnsetCast},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			in := interner.New()
			toks, diags := lexer.Tokenize([]byte("<?php "+tt.src+"$x;"), in, lexer.DefaultOptions())
			require.Equal(t, 0, diags.Len())
			require.Equal(t, tt.want, toks[1].Kind)
			assert.Equal(t, token.Variable, toks[2].Kind)
		})
	}
}

func TestParenthesizedExpressionIsNotMistakenForCast(t *testing.T) {
	in := interner.New()
	toks, diags := lexer.Tokenize([]byte("<?php ($x);"), in, lexer.DefaultOptions())
	require.Equal(t, 0, diags.Len())
	require.Equal(t, []token.Kind{
		token.OpenTag, token.LParen, token.Variable, token.RParen, token.Semicolon, token.EndOfInput,
	}, kinds(toks))
}

func TestUnknownParenthesizedNameIsNotACast(t *testing.T) {
	in := interner.New()
	toks, diags := lexer.Tokenize([]byte("<?php (Foo)$x;"), in, lexer.DefaultOptions())
	require.Equal(t, 0, diags.Len())
	require.Equal(t, token.LParen, toks[1].Kind)
	require.Equal(t, token.Identifier, toks[2].Kind)
	require.Equal(t, token.RParen, toks[3].Kind)
}

func TestTokenizeIsTotalOverEntireInput(t *testing.T) {
	in := interner.New()
	toks, _ := lexer.Tokenize([]byte("<?php $a = 'x' . 1;"), in, lexer.DefaultOptions())
	require.NotEmpty(t, toks)
	last := toks[len(toks)-1]
	assert.Equal(t, token.EndOfInput, last.Kind)
}
