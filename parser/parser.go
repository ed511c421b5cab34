package parser

import (
	"github.com/phpcore/phpast/ast"
	"github.com/phpcore/phpast/diag"
	"github.com/phpcore/phpast/internal/interner"
	"github.com/phpcore/phpast/lexer"
	"github.com/phpcore/phpast/span"
	"github.com/phpcore/phpast/token"
)

// Options configures parsing behavior that is not part of the PHP
// grammar itself, mirroring lexer.Options (spec 4.3, Open Question 3).
type Options struct {
	Lexer lexer.Options
	// AllowGenericSyntax is off by default (spec Open Question 3). The
	// parser does not read it: `<T>`/`::<T>` fragments are parsed as
	// ordinary tokens whatever its value, and are neither specially
	// diagnosed nor skipped.
	AllowGenericSyntax bool
}

// DefaultOptions returns the default parsing configuration.
func DefaultOptions() Options {
	return Options{Lexer: lexer.DefaultOptions()}
}

// Parser drives the cursor across one token vector, accumulating
// diagnostics and allocating node ids through one shared ast.IDGen and
// interner.Interner per parse (spec 4.1 "the interner is per-parse").
type Parser struct {
	*cursor
	toks []token.Token

	in    *interner.Interner
	diags *diag.Bag
	ids   *ast.IDGen
	opts  Options

	// pendingAttrs is not read or written by the parser: `#[...]` groups
	// are handed straight from parseAttributeGroups to attach by the code
	// that parses the decorated node.
	pendingAttrs []*ast.AttributeGroup

	// yieldStack tracks, per function/method/closure body currently being
	// parsed, whether a `yield`/`yield from` was seen inside it, so the
	// body's own IsGenerator flag can be set without a second tree walk.
	yieldStack []bool
}

// pushYieldScope starts tracking yield occurrences for a new function body.
func (p *Parser) pushYieldScope() { p.yieldStack = append(p.yieldStack, false) }

// popYieldScope stops tracking and reports whether a yield was seen.
func (p *Parser) popYieldScope() bool {
	n := len(p.yieldStack) - 1
	saw := p.yieldStack[n]
	p.yieldStack = p.yieldStack[:n]
	return saw
}

// markYield records a yield in the innermost open scope; arrow functions
// never open one of their own (yield is not allowed inside them), so a
// yield always belongs to the nearest enclosing function/method/closure.
func (p *Parser) markYield() {
	if n := len(p.yieldStack); n > 0 {
		p.yieldStack[n-1] = true
	}
}

// Parse tokenizes src and parses it into a Program, returning the
// accumulated lexer and parser diagnostics in detection order (spec 4.5,
// spec 6 "parse" entry point).
func Parse(src []byte, opts Options) (*ast.Program, *diag.Bag) {
	in := interner.New()
	toks, lexDiags := lexer.Tokenize(src, in, opts.Lexer)

	p := &Parser{
		cursor: newCursor(toks),
		toks:   toks,
		in:     in,
		diags:  &diag.Bag{},
		ids:    &ast.IDGen{},
		opts:   opts,
	}
	prog := p.parseProgram()

	all := &diag.Bag{}
	all.Extend(lexDiags)
	all.Extend(p.diags)
	return prog, all
}

func (p *Parser) newID() uint32 { return p.ids.Next() }

func (p *Parser) base(kind ast.Kind, sp span.Span) ast.BaseNode {
	return ast.BaseNode{ID: p.newID(), Kind: kind, Span: sp}
}

// text resolves the interned symbol carried by a literal/identifier token.
func (p *Parser) text(t token.Token) string { return t.Text(p.in) }

// expect consumes the current token if it has kind k; otherwise it
// diagnoses and returns a zero-width synthetic token at the current
// position so callers can keep building a span without special-casing
// failure (spec 4.3 "expect(kind)").
func (p *Parser) expect(k token.Kind) token.Token {
	if p.at(k) {
		return p.bump()
	}
	cur := p.cur()
	p.diags.Addf("parse.expected-token", cur.Span, "expected %s, got %s", k, cur.Kind)
	return token.Token{Kind: k, Span: span.Zero(cur.Span.Start)}
}

// missing builds an ast.Missing node at the current position, recording
// why parsing could not produce a real node there.
func (p *Parser) missing(reason string) *ast.Missing {
	return &ast.Missing{BaseNode: p.base(ast.KindMissing, p.curSpan()), Reason: reason}
}

// recoverTo advances the cursor until it reaches one of the given
// synchronization kinds (or EndOfInput), discarding tokens in between.
// Used after a statement/declaration fails to parse so one bad construct
// does not cascade into spurious diagnostics for the rest of the file
// (spec 4.3 "error recovery via synchronization tokens").
func (p *Parser) recoverTo(kinds ...token.Kind) {
	for !p.eof() {
		if p.atAny(kinds...) {
			return
		}
		p.bump()
	}
}

// stmtSyncKinds are the statement-synchronizing tokens error recovery
// resumes at: `;`, a closing `}`, `?>`, end of input, or a top-level
// keyword that unambiguously starts a new declaration (spec 4.3 "error
// recovery" / "skips tokens until the next statement-synchronizing
// token").
var stmtSyncKinds = []token.Kind{
	token.Semicolon, token.RBrace, token.CloseTag, token.EndOfInput,
	token.KwFunction, token.KwClass, token.KwInterface, token.KwTrait,
	token.KwEnum, token.KwUse, token.KwNamespace,
}

// structuralFailureCodes are the diagnostic codes raised for a genuine
// syntax error (a missing or unrecognized token) as opposed to a
// semantic-lite finding on an otherwise well-formed parse (conflicting
// modifiers, DNF-grouping/nullable-union rules); only the former leaves
// the cursor in a position that needs statement-level resynchronization.
var structuralFailureCodes = map[string]bool{
	"parse.expected-token":   true,
	"parse.unexpected-token": true,
	"parse.expected-name":    true,
}

// hasStructuralFailure reports whether a structural diagnostic was
// recorded since the diagnostic count was at since.
func (p *Parser) hasStructuralFailure(since int) bool {
	for _, d := range p.diags.All()[since:] {
		if structuralFailureCodes[d.Code] {
			return true
		}
	}
	return false
}

// parseProgram parses the whole token vector into one flat sequence of
// top-level statements and declarations (spec 3 "Program").
func (p *Parser) parseProgram() *ast.Program {
	start := p.curSpan()
	prog := &ast.Program{BaseNode: p.base(ast.KindProgram, start)}

	for !p.eof() {
		if p.at(token.InlineHTML) {
			t := p.bump()
			prog.Statements = append(prog.Statements, &ast.InlineHTMLStatement{
				BaseNode: p.base(ast.KindInlineHTML, t.Span),
				Text:     p.text(t),
			})
			continue
		}
		if p.at(token.OpenTag) || p.at(token.OpenTagEcho) {
			isEcho := p.at(token.OpenTagEcho)
			openSpan := p.bump().Span
			if isEcho {
				// `<?=` is `<?php echo` at parse time (spec Open Question 2).
				values := p.parseExprList()
				p.eat(token.Semicolon)
				prog.Statements = append(prog.Statements, &ast.EchoStatement{
					BaseNode: p.base(ast.KindEcho, openSpan),
					Values:   values,
				})
			}
			continue
		}
		if p.at(token.CloseTag) {
			p.bump()
			continue
		}
		stmt := p.parseTopLevelStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	prog.Span = span.New(start.Start, p.cur().Span.End)
	return prog
}

// parseAttributeGroups consumes zero or more leading `#[...]` groups and
// returns them for the caller to attach to whatever declaration/statement
// follows (spec 3 "Attributes").
func (p *Parser) parseAttributeGroups() []*ast.AttributeGroup {
	var groups []*ast.AttributeGroup
	for p.at(token.Attribute) {
		groups = append(groups, p.parseAttributeGroup())
	}
	return groups
}

func (p *Parser) parseAttributeGroup() *ast.AttributeGroup {
	start := p.expect(token.Attribute).Span
	var attrs []*ast.Attribute
	for !p.at(token.RBracket) && !p.eof() {
		attrs = append(attrs, p.parseAttribute())
		if !p.eat(token.Comma) {
			break
		}
	}
	end := p.expect(token.RBracket).Span
	return &ast.AttributeGroup{BaseNode: p.base(ast.KindAttributeGroup, start.Merge(end)), Attributes: attrs}
}

func (p *Parser) parseAttribute() *ast.Attribute {
	name := p.parseName()
	var args []ast.Expression
	sp := name.Span
	if p.at(token.LParen) {
		p.bump()
		args = p.parseArgumentList()
		sp = sp.Merge(p.expect(token.RParen).Span)
	}
	return &ast.Attribute{BaseNode: p.base(ast.KindAttribute, sp), Name: name, Arguments: args}
}

// attach applies any pending attribute groups (parsed immediately before
// calling the statement/declaration parser that produced node) onto node,
// if it implements ast.Attributable.
func (p *Parser) attach(node ast.Node, groups []*ast.AttributeGroup) {
	if len(groups) == 0 {
		return
	}
	if a, ok := node.(ast.Attributable); ok {
		a.SetAttributeGroups(groups)
	}
}
