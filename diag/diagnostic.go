// Package diag is the diagnostic data model shared by the lexer and
// parser. It deliberately stops at structured data: rendering a
// source-annotated report is an external collaborator's job (spec
// section 1/7), not this package's.
package diag

import (
	"fmt"

	"github.com/phpcore/phpast/span"
)

// Severity classifies a Diagnostic. Warnings never prevent a construct
// from being retained in the AST; only Errors are counted by callers that
// decide a CLI exit code (spec section 6).
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Note is a secondary annotation attached to a Diagnostic, e.g. pointing
// at a DNF-grouping suggestion or the matching opening bracket of a
// mismatched-bracket error.
type Note struct {
	Span span.Span
	Text string
}

// Diagnostic is a single lexical or syntactic finding. Code is a stable,
// machine-matchable string (e.g. "type.nullable-in-union") so tooling can
// key off it without parsing Message.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	Primary  span.Span
	Notes    []Note
}

// New builds an Error-severity diagnostic.
func New(code, message string, primary span.Span) Diagnostic {
	return Diagnostic{Severity: Error, Code: code, Message: message, Primary: primary}
}

// NewWarning builds a Warning-severity diagnostic.
func NewWarning(code, message string, primary span.Span) Diagnostic {
	return Diagnostic{Severity: Warning, Code: code, Message: message, Primary: primary}
}

// WithNote appends a note and returns the updated Diagnostic (fluent style
// so callers can build it inline at the point of detection).
func (d Diagnostic) WithNote(s span.Span, text string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: s, Text: text})
	return d
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s[%s] %s at %s", d.Severity, d.Code, d.Message, d.Primary)
}

// Bag accumulates diagnostics in detection order (spec: "lexer first,
// then parser left-to-right"). It is a thin, allocation-friendly
// accumulator, not a reporter — formatting is the caller's job.
type Bag struct {
	items []Diagnostic
}

// Add appends d to the bag.
func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

// Addf is a convenience for New + Add.
func (b *Bag) Addf(code string, primary span.Span, format string, args ...interface{}) {
	b.Add(New(code, fmt.Sprintf(format, args...), primary))
}

// Warnf is a convenience for NewWarning + Add.
func (b *Bag) Warnf(code string, primary span.Span, format string, args ...interface{}) {
	b.Add(NewWarning(code, fmt.Sprintf(format, args...), primary))
}

// All returns every diagnostic added so far, in detection order.
func (b *Bag) All() []Diagnostic {
	return b.items
}

// HasErrors reports whether any accumulated diagnostic has Error severity.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Len reports how many diagnostics have been accumulated.
func (b *Bag) Len() int {
	return len(b.items)
}

// Extend appends another bag's diagnostics, preserving relative order —
// used after parsing to place lexer diagnostics ahead of the parser's
// (spec 4.5).
func (b *Bag) Extend(other *Bag) {
	b.items = append(b.items, other.items...)
}
