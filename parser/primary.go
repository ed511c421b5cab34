package parser

import (
	"strings"

	"github.com/phpcore/phpast/ast"
	"github.com/phpcore/phpast/span"
	"github.com/phpcore/phpast/token"
)

// parsePrimary parses the innermost expression forms: literals,
// variables, names, parenthesized expressions, array/list literals,
// closures, arrow functions, match, isset/empty, and the string/heredoc
// forms (spec 4.3 Pratt "prefix table", innermost level).
func (p *Parser) parsePrimary() ast.Expression {
	t := p.cur()
	switch t.Kind {
	case token.Int:
		p.bump()
		return &ast.IntLiteral{BaseNode: p.base(ast.KindIntLiteral, t.Span), Value: t.Data.IntValue, Raw: p.rawText(t)}
	case token.Float:
		p.bump()
		return &ast.FloatLiteral{BaseNode: p.base(ast.KindFloatLiteral, t.Span), Value: t.Data.FloatValue, Raw: p.rawText(t)}
	case token.SingleQuotedString, token.ConstantEncapsedString:
		p.bump()
		return &ast.StringLiteral{BaseNode: p.base(ast.KindStringLiteral, t.Span), Value: p.text(t), Raw: p.rawText(t)}
	case token.DoubleQuote:
		return p.parseInterpolatedDoubleQuoted()
	case token.Backtick:
		return p.parseShellExec()
	case token.StartHeredoc:
		return p.parseHeredoc()
	case token.StartNowdoc:
		return p.parseNowdoc()
	case token.Variable:
		p.bump()
		return &ast.Variable{BaseNode: p.base(ast.KindVariable, t.Span), Name: p.text(t)}
	case token.Dollar:
		return p.parseVariableVariable()
	case token.KwTrue:
		p.bump()
		return &ast.BoolLiteral{BaseNode: p.base(ast.KindBoolLiteral, t.Span), Value: true}
	case token.KwFalse:
		p.bump()
		return &ast.BoolLiteral{BaseNode: p.base(ast.KindBoolLiteral, t.Span), Value: false}
	case token.KwNull:
		p.bump()
		return &ast.NullLiteral{BaseNode: p.base(ast.KindNullLiteral, t.Span)}
	case token.MagicLine, token.MagicFile, token.MagicDir, token.MagicClass, token.MagicTrait,
		token.MagicMethod, token.MagicFunction, token.MagicNamespace:
		p.bump()
		return &ast.MagicConstantExpression{BaseNode: p.base(ast.KindMagicConstant, t.Span), Name: t.Kind.String()}
	case token.LParen:
		p.bump()
		inner := p.parseExpr()
		p.expect(token.RParen)
		return inner
	case token.LBracket:
		return p.parseArrayLiteral(true)
	case token.KwArray:
		return p.parseArrayLiteral(false)
	case token.KwList:
		return p.parseListExpression()
	case token.KwIsset:
		return p.parseIsset()
	case token.KwEmpty:
		p.bump()
		p.expect(token.LParen)
		operand := p.parseExpr()
		end := p.expect(token.RParen).Span
		return &ast.EmptyExpression{BaseNode: p.base(ast.KindEmpty, t.Span.Merge(end)), Operand: operand}
	case token.KwFunction:
		return p.parseClosure(false)
	case token.KwFn:
		return p.parseArrowFunction(false)
	case token.KwStatic:
		if p.peek(1).Kind == token.KwFunction {
			p.bump()
			return p.parseClosure(true)
		}
		if p.peek(1).Kind == token.KwFn {
			p.bump()
			return p.parseArrowFunction(true)
		}
		return p.parsePostfixChain(p.parseName())
	case token.KwMatch:
		return p.parseMatchExpression()
	case token.Identifier, token.NamespaceSep:
		if lower := strings.ToLower(p.identifierTextAhead()); (lower == "exit" || lower == "die") && t.Kind == token.Identifier {
			return p.parseExitExpression()
		}
		if lower := strings.ToLower(p.identifierTextAhead()); lower == "eval" && t.Kind == token.Identifier && p.peek(1).Kind == token.LParen {
			return p.parseEvalExpression()
		}
		return p.parseName()
	case token.KwSelf, token.KwParent:
		return p.parseName()
	default:
		p.diags.Addf("parse.unexpected-token", t.Span, "unexpected token %s in expression", t.Kind)
		p.bump()
		return p.missing("unexpected token in expression position")
	}
}

func (p *Parser) identifierTextAhead() string {
	if p.at(token.Identifier) {
		return p.text(p.cur())
	}
	return ""
}

// rawText resolves the Raw symbol (original spelling) a literal token
// carries, falling back to the decoded symbol when Raw is unset.
func (p *Parser) rawText(t token.Token) string {
	if t.Data.Raw != 0 {
		return p.in.Resolve(t.Data.Raw)
	}
	return p.text(t)
}

func (p *Parser) parseExitExpression() ast.Expression {
	start := p.bump().Span // consume "exit"/"die" identifier
	if !p.at(token.LParen) {
		return &ast.ExitExpression{BaseNode: p.base(ast.KindExit, start)}
	}
	p.bump()
	var operand ast.Expression
	end := start
	if !p.at(token.RParen) {
		operand = p.parseExpr()
	}
	end = p.expect(token.RParen).Span
	return &ast.ExitExpression{BaseNode: p.base(ast.KindExit, start.Merge(end)), Operand: operand}
}

func (p *Parser) parseEvalExpression() ast.Expression {
	start := p.bump().Span // "eval"
	p.expect(token.LParen)
	operand := p.parseExpr()
	end := p.expect(token.RParen).Span
	return &ast.EvalExpression{BaseNode: p.base(ast.KindEval, start.Merge(end)), Operand: operand}
}

func (p *Parser) parseVariableVariable() ast.Expression {
	start := p.bump().Span // '$'
	var nameExpr ast.Expression
	end := start
	switch {
	case p.at(token.Variable):
		v := p.bump()
		nameExpr = &ast.Variable{BaseNode: p.base(ast.KindVariable, v.Span), Name: p.text(v)}
		end = v.Span
	case p.at(token.LBrace):
		p.bump()
		nameExpr = p.parseExpr()
		end = p.expect(token.RBrace).Span
	default:
		nameExpr = p.missing("expected a variable name after '$'")
	}
	return &ast.Variable{BaseNode: p.base(ast.KindVariable, start.Merge(end)), NameExpr: nameExpr}
}

func (p *Parser) parseIsset() ast.Expression {
	start := p.bump().Span
	p.expect(token.LParen)
	var ops []ast.Expression
	for !p.at(token.RParen) && !p.eof() {
		ops = append(ops, p.parseExpr())
		if !p.eat(token.Comma) {
			break
		}
	}
	end := p.expect(token.RParen).Span
	return &ast.IssetExpression{BaseNode: p.base(ast.KindIsset, start.Merge(end)), Operands: ops}
}

// parseArrayLiteral parses `[...]` (shortForm true) or `array(...)`
// (shortForm false); entries may be plain values, `key => value`, spread
// (`...expr`), or by-reference (`&expr`).
func (p *Parser) parseArrayLiteral(shortForm bool) ast.Expression {
	start := p.cur().Span
	openKind, closeKind := token.LParen, token.RParen
	if shortForm {
		openKind, closeKind = token.LBracket, token.RBracket
	} else {
		p.bump() // consume `array` keyword
	}
	p.expect(openKind)
	var items []*ast.ArrayItem
	for !p.at(closeKind) && !p.eof() {
		items = append(items, p.parseArrayItem())
		if !p.eat(token.Comma) {
			break
		}
	}
	end := p.expect(closeKind).Span
	return &ast.ArrayExpression{BaseNode: p.base(ast.KindArray, start.Merge(end)), Items: items, ShortForm: shortForm}
}

func (p *Parser) parseArrayItem() *ast.ArrayItem {
	start := p.cur().Span
	if p.at(token.Ellipsis) {
		p.bump()
		value := p.parseExpression(precAssign)
		spread := &ast.SpreadExpression{BaseNode: p.base(ast.KindSpread, start.Merge(value.GetSpan())), Operand: value}
		return &ast.ArrayItem{BaseNode: p.base(ast.KindArrayItem, spread.Span), Value: spread}
	}
	var ref bool
	if p.at(token.Amp) {
		p.bump()
		ref = true
	}
	first := p.parseExpression(precAssign)
	if ref {
		first = &ast.ReferenceExpression{BaseNode: p.base(ast.KindReference, start.Merge(first.GetSpan())), Operand: first}
	}
	if p.eat(token.DoubleArrow) {
		var valRef bool
		if p.at(token.Amp) {
			p.bump()
			valRef = true
		}
		value := p.parseExpression(precAssign)
		if valRef {
			value = &ast.ReferenceExpression{BaseNode: p.base(ast.KindReference, value.GetSpan()), Operand: value}
		}
		return &ast.ArrayItem{BaseNode: p.base(ast.KindArrayItem, first.GetSpan().Merge(value.GetSpan())), Key: first, Value: value}
	}
	return &ast.ArrayItem{BaseNode: p.base(ast.KindArrayItem, first.GetSpan()), Value: first}
}

// parseListExpression parses `list(...)` destructuring; entries may be
// empty (skipped slots: `list(, $b) = $pair`).
func (p *Parser) parseListExpression() ast.Expression {
	start := p.bump().Span
	p.expect(token.LParen)
	var items []*ast.ArrayItem
	for !p.at(token.RParen) && !p.eof() {
		if p.at(token.Comma) {
			items = append(items, nil)
		} else {
			items = append(items, p.parseArrayItem())
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	end := p.expect(token.RParen).Span
	return &ast.ListExpression{BaseNode: p.base(ast.KindListExpr, start.Merge(end)), Items: items}
}

// parseArgumentList parses a call's comma-separated argument list up to
// (not including) the closing `)`; entries may be spread, named, or
// plain positional arguments.
func (p *Parser) parseArgumentList() []ast.Expression {
	var args []ast.Expression
	for !p.at(token.RParen) && !p.eof() {
		args = append(args, p.parseArgument())
		if !p.eat(token.Comma) {
			break
		}
	}
	return args
}

func (p *Parser) parseArgument() ast.Expression {
	if p.at(token.Ellipsis) {
		start := p.bump().Span
		value := p.parseExpression(precAssign)
		return &ast.SpreadExpression{BaseNode: p.base(ast.KindSpread, start.Merge(value.GetSpan())), Operand: value}
	}
	if p.at(token.Identifier) && p.peek(1).Kind == token.Colon && p.peek(2).Kind != token.Colon {
		nameTok := p.bump()
		p.bump() // ':'
		value := p.parseExpression(precAssign)
		return &ast.NamedArgument{BaseNode: p.base(ast.KindNamedArg, nameTok.Span.Merge(value.GetSpan())), Name: p.text(nameTok), Value: value}
	}
	return p.parseExpression(precAssign)
}

func (p *Parser) parseExprList() []ast.Expression {
	var list []ast.Expression
	list = append(list, p.parseExpr())
	for p.eat(token.Comma) {
		list = append(list, p.parseExpr())
	}
	return list
}

// parsePostfixChain consumes the highest-precedence postfix operators:
// member access (`->`, `?->`), static access (`::`), array indexing
// (`[...]`), and calls (`(...)`), plus postfix `++`/`--`. allowCall
// gates only the bare trailing `(` case, so callers that parse a `new`
// class reference (whose own trailing `(args)` belongs to the `new`
// expression, not the reference) can still permit calls reached through
// an intermediate `->`/`::` in the chain.
func (p *Parser) parsePostfixChain(left ast.Expression) ast.Expression {
	return p.parsePostfixChainOpt(left, true)
}

func (p *Parser) parsePostfixChainStopAtCall(left ast.Expression) ast.Expression {
	return p.parsePostfixChainOpt(left, false)
}

func (p *Parser) parsePostfixChainOpt(left ast.Expression, allowCall bool) ast.Expression {
	for {
		switch p.cur().Kind {
		case token.Arrow, token.NullsafeArrow:
			nullsafe := p.cur().Kind == token.NullsafeArrow
			p.bump()
			member := p.parseMemberRef()
			if p.at(token.LParen) {
				p.bump()
				if fc, ok := p.tryFirstClassCallable(); ok {
					left = &ast.FirstClassCallableExpression{
						BaseNode: p.base(ast.KindFirstClassCallable, left.GetSpan().Merge(fc)),
						Callee:   &ast.MemberAccessExpression{BaseNode: p.base(ast.KindPropertyFetch, left.GetSpan().Merge(member.GetSpan())), Object: left, Member: member, Nullsafe: nullsafe},
					}
					continue
				}
				args := p.parseArgumentList()
				end := p.expect(token.RParen).Span
				left = &ast.MethodCallExpression{BaseNode: p.base(ast.KindMethodCall, left.GetSpan().Merge(end)), Object: left, Method: member, Arguments: args, Nullsafe: nullsafe}
				continue
			}
			left = &ast.MemberAccessExpression{BaseNode: p.base(ast.KindPropertyFetch, left.GetSpan().Merge(member.GetSpan())), Object: left, Member: member, Nullsafe: nullsafe}

		case token.DoubleColon:
			p.bump()
			member := p.parseStaticMemberRef()
			if p.at(token.LParen) {
				p.bump()
				if fc, ok := p.tryFirstClassCallable(); ok {
					left = &ast.FirstClassCallableExpression{
						BaseNode: p.base(ast.KindFirstClassCallable, left.GetSpan().Merge(fc)),
						Callee:   &ast.StaticMemberAccessExpression{BaseNode: p.base(ast.KindClassConstFetch, left.GetSpan().Merge(member.GetSpan())), Class: left, Member: member},
					}
					continue
				}
				args := p.parseArgumentList()
				end := p.expect(token.RParen).Span
				left = &ast.StaticCallExpression{BaseNode: p.base(ast.KindStaticCall, left.GetSpan().Merge(end)), Class: left, Method: member, Arguments: args}
				continue
			}
			left = &ast.StaticMemberAccessExpression{BaseNode: p.base(ast.KindClassConstFetch, left.GetSpan().Merge(member.GetSpan())), Class: left, Member: member}

		case token.LBracket:
			p.bump()
			var offset ast.Expression
			if !p.at(token.RBracket) {
				offset = p.parseExpr()
			}
			end := p.expect(token.RBracket).Span
			left = &ast.ArrayAccessExpression{BaseNode: p.base(ast.KindArrayAccess, left.GetSpan().Merge(end)), Array: left, Offset: offset}

		case token.LParen:
			if !allowCall {
				return left
			}
			p.bump()
			if fc, ok := p.tryFirstClassCallable(); ok {
				left = &ast.FirstClassCallableExpression{BaseNode: p.base(ast.KindFirstClassCallable, left.GetSpan().Merge(fc)), Callee: left}
				continue
			}
			args := p.parseArgumentList()
			end := p.expect(token.RParen).Span
			left = &ast.FunctionCallExpression{BaseNode: p.base(ast.KindCall, left.GetSpan().Merge(end)), Callee: left, Arguments: args}

		case token.Inc, token.Dec:
			op := p.bump()
			left = &ast.PostfixExpression{BaseNode: p.base(ast.KindUnary, left.GetSpan().Merge(op.Span)), Operator: op.Kind.String(), Operand: left}

		default:
			return left
		}
	}
}

// tryFirstClassCallable consumes a literal `...)` sequence if present
// (spec-supplemented first-class callable syntax `foo(...)`), reporting
// the span through the closing paren and whether it matched.
func (p *Parser) tryFirstClassCallable() (span.Span, bool) {
	if p.at(token.Ellipsis) && p.peek(1).Kind == token.RParen {
		p.bump()
		end := p.bump().Span
		return end, true
	}
	return span.Span{}, false
}

// parseMemberRef parses the right side of `->`/`?->`: a bare identifier
// name, a `{expr}` computed name, or a `$var` dynamic property name.
func (p *Parser) parseMemberRef() ast.Expression {
	switch {
	case p.at(token.Identifier):
		t := p.bump()
		return &ast.Name{BaseNode: p.base(ast.KindName, t.Span), Text: p.text(t), NameKind: ast.NameUnqualified}
	case p.at(token.Variable):
		t := p.bump()
		return &ast.Variable{BaseNode: p.base(ast.KindVariable, t.Span), Name: p.text(t)}
	case p.at(token.LBrace):
		p.bump()
		inner := p.parseExpr()
		p.expect(token.RBrace)
		return inner
	case p.at(token.Dollar):
		return p.parseVariableVariable()
	default:
		return p.missing("expected a member name after '->'")
	}
}

// parseStaticMemberRef parses the right side of `::`: `$prop`, `CONST`,
// `{expr}` (dynamic method name), or the `class` pseudo-constant.
func (p *Parser) parseStaticMemberRef() ast.Expression {
	switch {
	case p.at(token.Variable):
		t := p.bump()
		return &ast.Variable{BaseNode: p.base(ast.KindVariable, t.Span), Name: p.text(t)}
	case p.at(token.LBrace):
		p.bump()
		inner := p.parseExpr()
		p.expect(token.RBrace)
		return inner
	case p.at(token.KwClass):
		t := p.bump()
		return &ast.Name{BaseNode: p.base(ast.KindName, t.Span), Text: "class", NameKind: ast.NameUnqualified}
	case p.at(token.Identifier):
		t := p.bump()
		return &ast.Name{BaseNode: p.base(ast.KindName, t.Span), Text: p.text(t), NameKind: ast.NameUnqualified}
	default:
		return p.missing("expected a static member after '::'")
	}
}

func (p *Parser) parseClosure(isStatic bool) ast.Expression {
	start := p.cur().Span
	if isStatic {
		start = p.toks[max0(p.pos-1)].Span
	}
	p.expect(token.KwFunction)
	byRef := p.eat(token.Amp)
	p.expect(token.LParen)
	params := p.parseParameterList()
	p.expect(token.RParen)
	var uses []*ast.ClosureUse
	if p.eat(token.KwUse) {
		p.expect(token.LParen)
		for !p.at(token.RParen) && !p.eof() {
			uRef := p.eat(token.Amp)
			v := p.expect(token.Variable)
			uses = append(uses, &ast.ClosureUse{BaseNode: p.base(ast.KindClosureUse, v.Span), Name: p.text(v), IsReference: uRef})
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.RParen)
	}
	var retType ast.Type
	if p.eat(token.Colon) {
		retType = p.parseType()
	}
	p.pushYieldScope()
	body := p.parseBlockStatement()
	isGen := p.popYieldScope()
	return &ast.ClosureExpression{
		BaseNode: p.base(ast.KindClosure, start.Merge(body.Span)),
		Parameters: params, Uses: uses, ReturnType: retType, Body: body,
		IsStatic: isStatic, ReturnsReference: byRef, IsGenerator: isGen,
	}
}

func (p *Parser) parseArrowFunction(isStatic bool) ast.Expression {
	start := p.cur().Span
	if isStatic {
		start = p.toks[max0(p.pos-1)].Span
	}
	p.expect(token.KwFn)
	byRef := p.eat(token.Amp)
	p.expect(token.LParen)
	params := p.parseParameterList()
	p.expect(token.RParen)
	var retType ast.Type
	if p.eat(token.Colon) {
		retType = p.parseType()
	}
	p.expect(token.DoubleArrow)
	body := p.parseExpression(precAssign)
	return &ast.ArrowFunctionExpression{
		BaseNode: p.base(ast.KindArrowFn, start.Merge(body.GetSpan())),
		Parameters: params, ReturnType: retType, Body: body,
		IsStatic: isStatic, ReturnsReference: byRef,
	}
}

func (p *Parser) parseMatchExpression() ast.Expression {
	start := p.bump().Span
	p.expect(token.LParen)
	subject := p.parseExpr()
	p.expect(token.RParen)
	p.expect(token.LBrace)
	var arms []*ast.MatchArm
	for !p.at(token.RBrace) && !p.eof() {
		arms = append(arms, p.parseMatchArm())
		if !p.eat(token.Comma) {
			break
		}
	}
	end := p.expect(token.RBrace).Span
	return &ast.MatchExpression{BaseNode: p.base(ast.KindMatch, start.Merge(end)), Subject: subject, Arms: arms}
}

func (p *Parser) parseMatchArm() *ast.MatchArm {
	start := p.cur().Span
	var conds []ast.Expression
	isDefault := false
	if p.eat(token.KwDefault) {
		isDefault = true
	} else {
		conds = append(conds, p.parseExpression(precAssign))
		for p.eat(token.Comma) {
			if p.at(token.DoubleArrow) {
				break
			}
			conds = append(conds, p.parseExpression(precAssign))
		}
	}
	p.expect(token.DoubleArrow)
	result := p.parseExpression(precAssign)
	return &ast.MatchArm{BaseNode: p.base(ast.KindMatchArm, start.Merge(result.GetSpan())), Conditions: conds, IsDefault: isDefault, Result: result}
}

func (p *Parser) parseAnonClass(start span.Span) ast.Expression {
	p.expect(token.KwClass)
	var args []ast.Expression
	if p.at(token.LParen) {
		p.bump()
		args = p.parseArgumentList()
		p.expect(token.RParen)
	}
	var extends *ast.Name
	if p.eat(token.KwExtends) {
		extends = p.parseName()
	}
	var implements []*ast.Name
	if p.eat(token.KwImplements) {
		implements = append(implements, p.parseName())
		for p.eat(token.Comma) {
			implements = append(implements, p.parseName())
		}
	}
	members := p.parseClassBody()
	end := p.toks[max0(p.pos-1)].Span
	return &ast.AnonClassExpression{
		BaseNode: p.base(ast.KindAnonClass, start.Merge(end)),
		Arguments: args, Extends: extends, Implements: implements, Members: members,
	}
}
