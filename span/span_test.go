package span_test

import (
	"testing"

	"github.com/phpcore/phpast/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := span.New(3, 7)
	assert.Equal(t, uint32(3), s.Start)
	assert.Equal(t, uint32(7), s.End)
	assert.Equal(t, uint32(4), s.Len())
}

func TestNewPanicsOnInvertedRange(t *testing.T) {
	assert.Panics(t, func() { span.New(7, 3) })
}

func TestZero(t *testing.T) {
	s := span.Zero(10)
	assert.True(t, s.Empty())
	assert.Equal(t, uint32(0), s.Len())
	assert.Equal(t, uint32(10), s.Start)
	assert.Equal(t, uint32(10), s.End)
}

func TestMerge(t *testing.T) {
	a := span.New(0, 5)
	b := span.New(3, 9)
	m := a.Merge(b)
	assert.Equal(t, span.New(0, 9), m)

	// Merge is commutative for the resulting bounding span.
	m2 := b.Merge(a)
	assert.Equal(t, m, m2)
}

func TestMergeDisjoint(t *testing.T) {
	a := span.New(0, 2)
	b := span.New(10, 12)
	assert.Equal(t, span.New(0, 12), a.Merge(b))
}

func TestContains(t *testing.T) {
	s := span.New(5, 10)
	assert.True(t, s.Contains(span.New(5, 6)))
	assert.True(t, s.Contains(span.New(9, 10)))
	assert.False(t, s.Contains(span.New(10, 11)), "end is exclusive (half-open)")
	assert.False(t, s.Contains(span.New(4, 5)))
}

func TestSlice(t *testing.T) {
	src := []byte("hello world")
	s := span.New(6, 11)
	assert.Equal(t, "world", string(s.Slice(src)))
}

func TestLocate(t *testing.T) {
	src := []byte("ab\ncd\nef")
	tests := []struct {
		name string
		pos  uint32
		want span.LineCol
	}{
		{"start of source", 0, span.LineCol{Line: 1, Column: 1}},
		{"mid first line", 1, span.LineCol{Line: 1, Column: 2}},
		{"start of second line", 3, span.LineCol{Line: 2, Column: 1}},
		{"start of third line", 6, span.LineCol{Line: 3, Column: 1}},
		{"end of third line", 8, span.LineCol{Line: 3, Column: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := span.Locate(src, tt.pos)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestString(t *testing.T) {
	s := span.New(2, 4)
	require.NotEmpty(t, s.String())
}
