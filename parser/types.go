package parser

import (
	"strings"

	"github.com/phpcore/phpast/ast"
	"github.com/phpcore/phpast/span"
	"github.com/phpcore/phpast/token"
)

// parseName parses a (possibly namespaced) identifier path and classifies
// it per spec 3: a leading `\` makes it FullyQualified, a leading
// `namespace\` makes it Relative, an internal `\` with neither prefix
// makes it Qualified, and a bare segment is Unqualified.
func (p *Parser) parseName() *ast.Name {
	start := p.curSpan()
	kind := ast.NameUnqualified
	end := start

	if p.at(token.NamespaceSep) {
		end = p.bump().Span
		kind = ast.NameFullyQualified
	} else if p.at(token.KwNamespace) && p.peek(1).Kind == token.NamespaceSep {
		p.bump()
		end = p.bump().Span
		kind = ast.NameRelative
	}

	var segs []string
	for p.nameSegmentAhead() {
		t := p.bump()
		end = t.Span
		segs = append(segs, p.text(t))
		if p.at(token.NamespaceSep) {
			end = p.bump().Span
			if kind == ast.NameUnqualified {
				kind = ast.NameQualified
			}
			continue
		}
		break
	}
	if len(segs) == 0 {
		p.diags.Addf("parse.expected-name", p.cur().Span, "expected a name, got %s", p.cur().Kind)
	}

	text := strings.Join(segs, "\\")
	switch kind {
	case ast.NameFullyQualified:
		text = "\\" + text
	case ast.NameRelative:
		text = "namespace\\" + text
	}

	n := &ast.Name{
		BaseNode: p.base(ast.KindName, start.Merge(end)),
		Text:     text,
		NameKind: kind,
	}
	for _, s := range segs {
		n.Parts = append(n.Parts, p.in.Intern(s))
	}
	return n
}

// nameSegmentAhead reports whether the current token can start/continue
// a name segment: a bare identifier, or a reserved word used where the
// grammar permits it as a class/constant/type name.
func (p *Parser) nameSegmentAhead() bool {
	k := p.cur().Kind
	return k == token.Identifier || k.IsTypeAtomKeyword() || k == token.KwStatic ||
		k == token.KwArray || k == token.KwCallable
}

// parseType parses a type per spec 4.4: union is lowest precedence,
// intersection binds tighter, a leading `?` makes a type nullable (and
// cannot combine directly with union/intersection), and parens are used
// only to group an intersection clause inside a union (DNF).
func (p *Parser) parseType() ast.Type {
	if p.eat(token.Question) {
		start := p.toks[max0(p.pos-1)].Span
		inner := p.parseIntersectionType()
		nt := &ast.NullableType{BaseNode: p.base(ast.KindNullableType, start.Merge(lastSpan(inner))), Inner: inner}
		if p.at(token.Pipe) {
			p.diags.Addf("type.nullable-in-union", p.cur().Span, "a nullable type cannot be combined with a union using `|`; use a union member of `null` instead")
			members := []ast.Type{ast.Type(nt)}
			for p.eat(token.Pipe) {
				members = append(members, p.parseIntersectionType())
			}
			return &ast.UnionType{BaseNode: p.base(ast.KindUnionType, unionSpan(members)), Members: members}
		}
		return nt
	}
	first := p.parseIntersectionType()
	if !p.at(token.Pipe) {
		return first
	}
	members := []ast.Type{first}
	for p.eat(token.Pipe) {
		members = append(members, p.parseIntersectionType())
	}
	return &ast.UnionType{BaseNode: p.base(ast.KindUnionType, unionSpan(members)), Members: members}
}

func (p *Parser) parseIntersectionType() ast.Type {
	first := p.parseTypeAtom()
	if !p.atIntersectionAmp() {
		return first
	}
	members := []ast.Type{first}
	for p.atIntersectionAmp() {
		p.bump()
		members = append(members, p.parseTypeAtom())
	}
	return &ast.IntersectionType{BaseNode: p.base(ast.KindIntersectionType, unionSpan(members)), Members: members}
}

// atIntersectionAmp disambiguates `&` as the intersection-type operator
// from the reference sigil: in type position, `&` followed by something
// that can start a type atom (not `...` variadic, not `$`) is intersection
// (spec 4.4; spec 4.3 "& reference-vs-bitwise-and").
func (p *Parser) atIntersectionAmp() bool {
	if !p.at(token.Amp) {
		return false
	}
	n := p.peek(1).Kind
	return n == token.Identifier || n == token.NamespaceSep || n.IsTypeAtomKeyword() || n == token.LParen
}

func (p *Parser) parseTypeAtom() ast.Type {
	if p.at(token.LParen) {
		start := p.bump().Span
		inner := p.parseType()
		end := p.expect(token.RParen).Span
		sp := start.Merge(end)
		if _, ok := inner.(*ast.IntersectionType); !ok {
			p.diags.Addf("type.invalid-dnf-grouping", sp, "parentheses in a disjunctive-normal-form type may only group an intersection (`A&B`)")
		}
		return &ast.ParenthesizedType{BaseNode: p.base(ast.KindParenthesizedType, sp), Inner: inner}
	}
	name := p.parseName()
	return &ast.NamedType{BaseNode: p.base(ast.KindNamedType, name.Span), Name: name}
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func lastSpan(n ast.Node) span.Span { return n.GetSpan() }

func unionSpan(members []ast.Type) span.Span {
	sp := members[0].GetSpan()
	for _, m := range members[1:] {
		sp = sp.Merge(m.GetSpan())
	}
	return sp
}
