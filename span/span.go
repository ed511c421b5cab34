// Package span defines the half-open byte ranges that every token and AST
// node in this module is anchored to.
package span

import "fmt"

// Span is a half-open [Start, End) byte range into an immutable source
// buffer. Zero-length spans are permitted; the parser inserts them on
// synthetic tokens produced during error recovery.
type Span struct {
	Start uint32
	End   uint32
}

// New builds a Span, panicking if end < start since that can never arise
// from a correctly functioning scanner.
func New(start, end uint32) Span {
	if end < start {
		panic(fmt.Sprintf("span: end %d before start %d", end, start))
	}
	return Span{Start: start, End: end}
}

// Zero returns a zero-length span at offset pos, used for synthetic tokens.
func Zero(pos uint32) Span {
	return Span{Start: pos, End: pos}
}

// Len returns the number of bytes the span covers.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Merge returns the smallest span containing both s and other. Spans are
// closed under this operation (spec: "Spans are closed under union").
func (s Span) Merge(other Span) Span {
	start, end := s.Start, s.End
	if other.Start < start {
		start = other.Start
	}
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Slice returns the source bytes the span covers. It panics if the span is
// out of range for src, which indicates a bug upstream in the lexer/parser.
func (s Span) Slice(src []byte) []byte {
	return src[s.Start:s.End]
}

// String renders the span as "start..end" for diagnostics and debugging.
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// LineCol is a 1-based line/column position derived on demand from a byte
// offset; it is never stored on tokens or nodes.
type LineCol struct {
	Line   int
	Column int
}

// Locate computes the line/column of byte offset pos within src by counting
// newlines. It is O(pos) and intended for diagnostic rendering callers, not
// for use in lexer/parser hot paths.
func Locate(src []byte, pos uint32) LineCol {
	line := 1
	col := 1
	limit := int(pos)
	if limit > len(src) {
		limit = len(src)
	}
	for i := 0; i < limit; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return LineCol{Line: line, Column: col}
}
