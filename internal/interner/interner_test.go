package interner_test

import (
	"testing"

	"github.com/phpcore/phpast/internal/interner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternReturnsSameSymbolForEqualStrings(t *testing.T) {
	in := interner.New()
	a := in.Intern("foo")
	b := in.Intern("foo")
	assert.Equal(t, a, b)
}

func TestInternDistinctStringsGetDistinctSymbols(t *testing.T) {
	in := interner.New()
	a := in.Intern("foo")
	b := in.Intern("bar")
	assert.NotEqual(t, a, b)
}

func TestInternReservesZero(t *testing.T) {
	in := interner.New()
	assert.NotEqual(t, interner.Symbol(0), in.Intern("anything"),
		"index 0 is reserved so the zero value of Symbol can mean \"absent\"")
}

func TestResolveRoundTrips(t *testing.T) {
	in := interner.New()
	sym := in.Intern("hello")
	assert.Equal(t, "hello", in.Resolve(sym))
}

func TestResolveOutOfRangePanics(t *testing.T) {
	in := interner.New()
	assert.Panics(t, func() { in.Resolve(interner.Symbol(9999)) })
}

func TestInternCopiesString(t *testing.T) {
	in := interner.New()
	buf := []byte("mutable")
	sym := in.Intern(string(buf))
	copy(buf, "XXXXXXX")
	require.Equal(t, "mutable", in.Resolve(sym))
}

func TestLen(t *testing.T) {
	in := interner.New()
	before := in.Len()
	in.Intern("a")
	in.Intern("b")
	in.Intern("a")
	assert.Equal(t, before+2, in.Len())
}
