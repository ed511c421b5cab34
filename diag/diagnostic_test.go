package diag_test

import (
	"testing"

	"github.com/phpcore/phpast/diag"
	"github.com/phpcore/phpast/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsError(t *testing.T) {
	d := diag.New("parse.expected-token", "expected ;", span.New(0, 1))
	assert.Equal(t, diag.Error, d.Severity)
	assert.Equal(t, "parse.expected-token", d.Code)
}

func TestNewWarningIsWarning(t *testing.T) {
	d := diag.NewWarning("lex.bad-escape", "unknown escape", span.New(0, 1))
	assert.Equal(t, diag.Warning, d.Severity)
}

func TestWithNoteAppends(t *testing.T) {
	d := diag.New("type.invalid-dnf-grouping", "bad grouping", span.New(0, 1)).
		WithNote(span.New(2, 3), "did you mean this?")
	require.Len(t, d.Notes, 1)
	assert.Equal(t, "did you mean this?", d.Notes[0].Text)
}

func TestBagHasErrors(t *testing.T) {
	var b diag.Bag
	assert.False(t, b.HasErrors())
	b.Warnf("lex.bad-escape", span.New(0, 1), "warn only")
	assert.False(t, b.HasErrors())
	b.Addf("parse.expected-token", span.New(1, 2), "expected %s", "foo")
	assert.True(t, b.HasErrors())
	assert.Equal(t, 2, b.Len())
}

func TestBagPreservesOrder(t *testing.T) {
	var b diag.Bag
	b.Addf("a", span.New(0, 1), "first")
	b.Addf("b", span.New(1, 2), "second")
	all := b.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].Code)
	assert.Equal(t, "b", all[1].Code)
}

func TestBagExtendPreservesRelativeOrder(t *testing.T) {
	var lex, parse diag.Bag
	lex.Addf("lex.x", span.New(0, 1), "lex finding")
	parse.Addf("parse.y", span.New(1, 2), "parse finding")

	var combined diag.Bag
	combined.Extend(&lex)
	combined.Extend(&parse)

	all := combined.All()
	require.Len(t, all, 2)
	assert.Equal(t, "lex.x", all[0].Code)
	assert.Equal(t, "parse.y", all[1].Code)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", diag.Error.String())
	assert.Equal(t, "warning", diag.Warning.String())
}

func TestDiagnosticString(t *testing.T) {
	d := diag.New("parse.expected-token", "expected ;", span.New(0, 1))
	assert.Contains(t, d.String(), "parse.expected-token")
	assert.Contains(t, d.String(), "expected ;")
}
