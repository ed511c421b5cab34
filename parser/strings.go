package parser

import (
	"github.com/phpcore/phpast/ast"
	"github.com/phpcore/phpast/span"
	"github.com/phpcore/phpast/token"
)

// parseInterpolatedDoubleQuoted parses a `"..."` literal, collapsing to a
// plain StringLiteral when no interpolation actually occurred.
func (p *Parser) parseInterpolatedDoubleQuoted() ast.Expression {
	start := p.expect(token.DoubleQuote).Span
	parts, end := p.parseInterpolationParts(token.DoubleQuote)
	return p.collapseInterpolated(parts, start.Merge(end), false)
}

// parseShellExec parses a `` `...` `` backtick literal.
func (p *Parser) parseShellExec() ast.Expression {
	start := p.expect(token.Backtick).Span
	parts, end := p.parseInterpolationParts(token.Backtick)
	if len(parts) == 1 {
		if lit, ok := parts[0].(*ast.StringLiteral); ok {
			lit.Span = start.Merge(end)
			return &ast.ShellExecExpression{BaseNode: p.base(ast.KindShellExec, lit.Span), Parts: []ast.Expression{lit}}
		}
	}
	return &ast.ShellExecExpression{BaseNode: p.base(ast.KindShellExec, start.Merge(end)), Parts: parts}
}

// parseHeredoc parses a `<<<LABEL ... LABEL` body, which shares the same
// interpolation token stream as double-quoted strings.
func (p *Parser) parseHeredoc() ast.Expression {
	start := p.expect(token.StartHeredoc).Span
	parts, end := p.parseInterpolationParts(token.EndHeredoc)
	return p.collapseInterpolated(parts, start.Merge(end), true)
}

// parseNowdoc parses a `<<<'LABEL' ... LABEL` body. Nowdocs never
// interpolate, so the lexer only ever emits at most one literal chunk.
func (p *Parser) parseNowdoc() ast.Expression {
	start := p.expect(token.StartNowdoc).Span
	var lit *ast.StringLiteral
	if p.at(token.EncapsedAndWhitespace) {
		t := p.bump()
		lit = &ast.StringLiteral{BaseNode: p.base(ast.KindStringLiteral, t.Span), Value: p.text(t), Raw: p.rawText(t)}
	}
	end := p.expect(token.EndHeredoc).Span
	sp := start.Merge(end)
	if lit == nil {
		return &ast.StringLiteral{BaseNode: p.base(ast.KindStringLiteral, sp)}
	}
	lit.Span = sp
	return lit
}

// parseInterpolationParts consumes the token stream produced by the lexer's
// interpolation scanner until closeKind, returning the decoded literal runs
// and embedded expressions in source order.
func (p *Parser) parseInterpolationParts(closeKind token.Kind) ([]ast.Expression, span.Span) {
	var parts []ast.Expression
	for !p.at(closeKind) && !p.eof() {
		switch p.cur().Kind {
		case token.EncapsedAndWhitespace:
			t := p.bump()
			parts = append(parts, &ast.StringLiteral{BaseNode: p.base(ast.KindStringLiteral, t.Span), Value: p.text(t), Raw: p.rawText(t)})
		case token.Variable:
			parts = append(parts, p.parseInterpVariable())
		case token.CurlyOpen:
			p.bump()
			expr := p.parseExpr()
			p.expect(token.RBrace)
			parts = append(parts, expr)
		case token.DollarOpenCurlyBrace:
			parts = append(parts, p.parseDollarBraceVariable())
		default:
			p.diags.Addf("parse.unexpected-token", p.cur().Span, "unexpected %s inside interpolated string", p.cur().Kind)
			p.bump()
		}
	}
	end := p.expect(closeKind).Span
	return parts, end
}

// parseInterpVariable handles a bare `$name` inside an interpolated string,
// plus the single trailing `->prop` or `[offset]` access PHP allows in that
// position without braces.
func (p *Parser) parseInterpVariable() ast.Expression {
	t := p.bump()
	var expr ast.Expression = &ast.Variable{BaseNode: p.base(ast.KindVariable, t.Span), Name: p.text(t)}
	switch {
	case p.at(token.Arrow) && p.peek(1).Kind == token.Identifier:
		p.bump()
		prop := p.bump()
		member := &ast.Name{BaseNode: p.base(ast.KindName, prop.Span), Text: p.text(prop), NameKind: ast.NameUnqualified}
		expr = &ast.MemberAccessExpression{BaseNode: p.base(ast.KindPropertyFetch, expr.GetSpan().Merge(prop.Span)), Object: expr, Member: member}
	case p.at(token.LBracket):
		p.bump()
		offset := p.parseVarOffsetExpr()
		end := p.expect(token.RBracket).Span
		expr = &ast.ArrayAccessExpression{BaseNode: p.base(ast.KindArrayAccess, expr.GetSpan().Merge(end)), Array: expr, Offset: offset}
	}
	return expr
}

// parseDollarBraceVariable handles the `${name}` and `${name[offset]}`
// forms, which the lexer surfaces as a StringVarName token rather than a
// Variable token.
func (p *Parser) parseDollarBraceVariable() ast.Expression {
	start := p.expect(token.DollarOpenCurlyBrace).Span
	if p.at(token.StringVarName) {
		nameTok := p.bump()
		var expr ast.Expression = &ast.Variable{BaseNode: p.base(ast.KindVariable, nameTok.Span), Name: p.text(nameTok)}
		if p.at(token.LBracket) {
			p.bump()
			offset := p.parseVarOffsetExpr()
			end := p.expect(token.RBracket).Span
			expr = &ast.ArrayAccessExpression{BaseNode: p.base(ast.KindArrayAccess, expr.GetSpan().Merge(end)), Array: expr, Offset: offset}
		}
		end := p.expect(token.RBrace).Span
		if v, ok := expr.(*ast.Variable); ok {
			v.Span = start.Merge(end)
		}
		return expr
	}
	// `${expr}` with an arbitrary expression naming the variable.
	nameExpr := p.parseExpr()
	end := p.expect(token.RBrace).Span
	return &ast.Variable{BaseNode: p.base(ast.KindVariable, start.Merge(end)), NameExpr: nameExpr}
}

// parseVarOffsetExpr parses the restricted offset grammar allowed inside
// `$arr[offset]`/`${name[offset]}` interpolation: an integer, a variable, or
// a bare identifier treated as a string key (never a constant lookup).
func (p *Parser) parseVarOffsetExpr() ast.Expression {
	switch {
	case p.at(token.Int):
		t := p.bump()
		return &ast.IntLiteral{BaseNode: p.base(ast.KindIntLiteral, t.Span), Value: t.Data.IntValue, Raw: p.rawText(t)}
	case p.at(token.Variable):
		t := p.bump()
		return &ast.Variable{BaseNode: p.base(ast.KindVariable, t.Span), Name: p.text(t)}
	case p.at(token.Identifier):
		t := p.bump()
		name := p.text(t)
		return &ast.StringLiteral{BaseNode: p.base(ast.KindStringLiteral, t.Span), Value: name, Raw: name}
	default:
		return p.missing("expected an offset inside string interpolation")
	}
}

// collapseInterpolated implements the single-literal-chunk invariant: a
// string with no actual interpolation becomes a plain StringLiteral rather
// than a one-element InterpolatedStringExpression.
func (p *Parser) collapseInterpolated(parts []ast.Expression, sp span.Span, isHeredoc bool) ast.Expression {
	if len(parts) == 0 {
		return &ast.StringLiteral{BaseNode: p.base(ast.KindStringLiteral, sp)}
	}
	if len(parts) == 1 {
		if lit, ok := parts[0].(*ast.StringLiteral); ok {
			lit.Span = sp
			return lit
		}
	}
	return &ast.InterpolatedStringExpression{BaseNode: p.base(ast.KindInterpolated, sp), Parts: parts, IsHeredoc: isHeredoc}
}
