package token_test

import (
	"testing"

	"github.com/phpcore/phpast/token"
	"github.com/stretchr/testify/assert"
)

func TestIsKeyword(t *testing.T) {
	assert.True(t, token.KwIf.IsKeyword())
	assert.True(t, token.KwYield.IsKeyword())
	assert.False(t, token.Identifier.IsKeyword())
	assert.False(t, token.KwInt.IsKeyword(), "type atoms are tracked separately from reserved words")
}

func TestIsTypeAtomKeyword(t *testing.T) {
	assert.True(t, token.KwInt.IsTypeAtomKeyword())
	assert.True(t, token.KwParent.IsTypeAtomKeyword())
	assert.True(t, token.KwMixed.IsTypeAtomKeyword())
	assert.False(t, token.KwIf.IsTypeAtomKeyword())
}

func TestIsCast(t *testing.T) {
	assert.True(t, token.IntCast.IsCast())
	assert.True(t, token.UnsetCast.IsCast())
	assert.False(t, token.LParen.IsCast())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "**", token.Pow.String())
	assert.Equal(t, "__LINE__", token.MagicLine.String())
}

func TestLookupKeywordIsCaseInsensitive(t *testing.T) {
	tests := []struct {
		spelling string
		want     token.Kind
	}{
		{"if", token.KwIf},
		{"IF", token.KwIf},
		{"If", token.KwIf},
		{"CLASS", token.KwClass},
		{"Readonly", token.KwReadonly},
		{"__LINE__", token.MagicLine},
		{"__line__", token.MagicLine},
	}
	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			k, ok := token.LookupKeyword(tt.spelling)
			assert.True(t, ok)
			assert.Equal(t, tt.want, k)
		})
	}
}

func TestLookupKeywordRejectsNonKeywords(t *testing.T) {
	_, ok := token.LookupKeyword("notAKeyword")
	assert.False(t, ok)
}
