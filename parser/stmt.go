package parser

import (
	"github.com/phpcore/phpast/ast"
	"github.com/phpcore/phpast/span"
	"github.com/phpcore/phpast/token"
)

// parseTopLevelStatement parses one statement or declaration at file scope
// (spec 3 "Program"); parseProgram has already consumed any inline HTML and
// open/close tags surrounding it, so this is just the ordinary dispatcher.
func (p *Parser) parseTopLevelStatement() ast.Statement {
	return p.parseStatement()
}

// parseStatement parses one statement wherever the grammar allows one:
// file scope, a block body, or a control-flow body. It also tolerates an
// inline-HTML run or a `?> ... <?php`/`<?=` pair appearing mid-block, since
// PHP permits leaving and re-entering script mode inside a function body.
func (p *Parser) parseStatement() ast.Statement {
	if p.at(token.InlineHTML) {
		t := p.bump()
		return &ast.InlineHTMLStatement{BaseNode: p.base(ast.KindInlineHTML, t.Span), Text: p.text(t)}
	}
	if p.at(token.CloseTag) {
		p.bump()
		if p.eof() {
			return p.emptyStatement(p.curSpan())
		}
		return p.parseStatement()
	}
	if p.at(token.OpenTag) || p.at(token.OpenTagEcho) {
		isEcho := p.at(token.OpenTagEcho)
		openSpan := p.bump().Span
		if isEcho {
			values := p.parseExprList()
			end := p.expectStmtEnd()
			return &ast.EchoStatement{BaseNode: p.base(ast.KindEcho, openSpan.Merge(end)), Values: values}
		}
		if p.eof() {
			return p.emptyStatement(openSpan)
		}
		return p.parseStatement()
	}

	groups := p.parseAttributeGroups()
	before := p.diags.Len()
	stmt := p.parseStatementInner()
	p.attach(stmt, groups)
	// A structural failure (missing/unexpected token) can leave the
	// cursor short of the construct's natural end; resynchronize so the
	// next statement parses cleanly instead of cascading diagnostics
	// (spec 4.3 "error recovery"). If the statement already ended on its
	// own at a sync point, there is nothing to skip.
	if p.hasStructuralFailure(before) && !p.atAny(stmtSyncKinds...) {
		p.recoverTo(stmtSyncKinds...)
	}
	return stmt
}

func (p *Parser) emptyStatement(sp span.Span) ast.Statement {
	return &ast.BlockStatement{BaseNode: p.base(ast.KindBlock, sp)}
}

// expectStmtEnd consumes the `;` that ends a simple statement, tolerating
// PHP's rule that the final statement before a closing `?>` tag may omit
// it.
func (p *Parser) expectStmtEnd() span.Span {
	if p.at(token.CloseTag) || p.eof() {
		return p.curSpan()
	}
	return p.expect(token.Semicolon).Span
}

func (p *Parser) parseStatementInner() ast.Statement {
	switch p.cur().Kind {
	case token.Semicolon:
		t := p.bump()
		return p.emptyStatement(t.Span)
	case token.LBrace:
		return p.parseBlockStatement()
	case token.KwIf:
		return p.parseIfStatement()
	case token.KwWhile:
		return p.parseWhileStatement()
	case token.KwDo:
		return p.parseDoWhileStatement()
	case token.KwFor:
		return p.parseForStatement()
	case token.KwForeach:
		return p.parseForeachStatement()
	case token.KwSwitch:
		return p.parseSwitchStatement()
	case token.KwTry:
		return p.parseTryStatement()
	case token.KwReturn:
		return p.parseReturnStatement()
	case token.KwThrow:
		return p.parseThrowStatement()
	case token.KwBreak:
		return p.parseBreakStatement()
	case token.KwContinue:
		return p.parseContinueStatement()
	case token.KwGoto:
		return p.parseGotoStatement()
	case token.KwEcho:
		return p.parseEchoStatement()
	case token.KwGlobal:
		return p.parseGlobalStatement()
	case token.KwDeclare:
		return p.parseDeclareStatement()
	case token.KwUnset:
		return p.parseUnsetStatement()
	case token.KwNamespace:
		return p.parseNamespaceStatement()
	case token.KwUse:
		return p.parseUseStatement()
	case token.KwConst:
		return p.parseConstStatement()
	case token.KwStatic:
		if p.peek(1).Kind == token.Variable {
			return p.parseStaticVarDeclStatement()
		}
	case token.KwFunction:
		if p.isFunctionDeclAhead() {
			return p.parseFunctionDeclaration()
		}
	case token.KwAbstract, token.KwFinal, token.KwReadonly, token.KwClass, token.KwInterface, token.KwTrait, token.KwEnum:
		if p.classLikeDeclAhead() {
			return p.parseClassLikeDeclaration().(ast.Statement)
		}
	case token.Identifier:
		if p.peek(1).Kind == token.Colon {
			return p.parseLabelStatement()
		}
	}
	return p.parseExpressionStatement()
}

// isFunctionDeclAhead distinguishes `function name(...)`/`function &name(...)`
// (a declaration) from a bare `function(...)`/`function &(...)` closure
// expression used as a statement.
func (p *Parser) isFunctionDeclAhead() bool {
	i := 1
	if p.peek(1).Kind == token.Amp {
		i = 2
	}
	k := p.peek(i).Kind
	return k == token.Identifier || k.IsKeyword() || k.IsTypeAtomKeyword()
}

// classLikeDeclAhead guards the modifier-prefixed keywords (abstract, final,
// readonly) that can also appear as plain identifiers used as constant or
// function names elsewhere; at statement start they only introduce a
// class-like declaration when a class/interface/trait/enum keyword (after
// skipping further modifiers) actually follows.
func (p *Parser) classLikeDeclAhead() bool {
	i := 0
	for {
		k := p.peek(i).Kind
		if k == token.KwAbstract || k == token.KwFinal || k == token.KwReadonly {
			i++
			continue
		}
		return k == token.KwClass || k == token.KwInterface || k == token.KwTrait || k == token.KwEnum
	}
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	start := p.expect(token.LBrace).Span
	var stmts []ast.Statement
	for !p.at(token.RBrace) && !p.eof() {
		stmts = append(stmts, p.parseStatement())
	}
	end := p.expect(token.RBrace).Span
	return &ast.BlockStatement{BaseNode: p.base(ast.KindBlock, start.Merge(end)), Statements: stmts}
}

// parseAltBody parses the alternative `: stmt* ` body used by if/while/
// for/foreach's `endxxx` syntax, stopping at (without consuming) any of
// enders.
func (p *Parser) parseAltBody(enders ...token.Kind) ast.Statement {
	start := p.expect(token.Colon).Span
	var stmts []ast.Statement
	for !p.atAny(enders...) && !p.eof() {
		stmts = append(stmts, p.parseStatement())
	}
	end := start
	if len(stmts) > 0 {
		end = stmts[len(stmts)-1].GetSpan()
	}
	return &ast.BlockStatement{BaseNode: p.base(ast.KindBlock, start.Merge(end)), Statements: stmts}
}

func (p *Parser) parseIfStatement() ast.Statement {
	start := p.bump().Span // if
	p.expect(token.LParen)
	cond := p.parseExpr()
	p.expect(token.RParen)
	alt := p.at(token.Colon)

	body := func() ast.Statement {
		if alt {
			return p.parseAltBody(token.KwElseif, token.KwElse, token.KwEndif)
		}
		return p.parseStatement()
	}

	then := body()
	end := then.GetSpan()

	var elseifs []*ast.ElseIfClause
	for p.at(token.KwElseif) {
		eStart := p.bump().Span
		p.expect(token.LParen)
		eCond := p.parseExpr()
		p.expect(token.RParen)
		eBody := body()
		elseifs = append(elseifs, &ast.ElseIfClause{BaseNode: p.base(ast.KindElseIf, eStart.Merge(eBody.GetSpan())), Condition: eCond, Body: eBody})
		end = eBody.GetSpan()
	}

	var elseBody ast.Statement
	if p.eat(token.KwElse) {
		elseBody = body()
		end = elseBody.GetSpan()
	}

	if alt {
		end = p.expect(token.KwEndif).Span
		end = p.expectStmtEnd()
	}

	return &ast.IfStatement{BaseNode: p.base(ast.KindIf, start.Merge(end)), Condition: cond, Then: then, ElseIfs: elseifs, Else: elseBody}
}

func (p *Parser) parseWhileStatement() ast.Statement {
	start := p.bump().Span
	p.expect(token.LParen)
	cond := p.parseExpr()
	p.expect(token.RParen)
	var body ast.Statement
	var end span.Span
	if p.at(token.Colon) {
		body = p.parseAltBody(token.KwEndwhile)
		end = p.expect(token.KwEndwhile).Span
		end = p.expectStmtEnd()
	} else {
		body = p.parseStatement()
		end = body.GetSpan()
	}
	return &ast.WhileStatement{BaseNode: p.base(ast.KindWhile, start.Merge(end)), Condition: cond, Body: body}
}

func (p *Parser) parseDoWhileStatement() ast.Statement {
	start := p.bump().Span
	body := p.parseStatement()
	p.expect(token.KwWhile)
	p.expect(token.LParen)
	cond := p.parseExpr()
	p.expect(token.RParen)
	end := p.expectStmtEnd()
	return &ast.DoWhileStatement{BaseNode: p.base(ast.KindDoWhile, start.Merge(end)), Body: body, Condition: cond}
}

func (p *Parser) parseForStatement() ast.Statement {
	start := p.bump().Span
	p.expect(token.LParen)
	init := p.parseExprListUntil(token.Semicolon)
	p.expect(token.Semicolon)
	cond := p.parseExprListUntil(token.Semicolon)
	p.expect(token.Semicolon)
	update := p.parseExprListUntil(token.RParen)
	p.expect(token.RParen)
	var body ast.Statement
	var end span.Span
	if p.at(token.Colon) {
		body = p.parseAltBody(token.KwEndfor)
		end = p.expect(token.KwEndfor).Span
		end = p.expectStmtEnd()
	} else {
		body = p.parseStatement()
		end = body.GetSpan()
	}
	return &ast.ForStatement{BaseNode: p.base(ast.KindFor, start.Merge(end)), Init: init, Cond: cond, Update: update, Body: body}
}

func (p *Parser) parseExprListUntil(stop token.Kind) []ast.Expression {
	if p.at(stop) {
		return nil
	}
	var list []ast.Expression
	list = append(list, p.parseExpr())
	for p.eat(token.Comma) {
		list = append(list, p.parseExpr())
	}
	return list
}

func (p *Parser) parseForeachStatement() ast.Statement {
	start := p.bump().Span
	p.expect(token.LParen)
	subject := p.parseExpr()
	p.expect(token.KwAs)
	var key ast.Expression
	byRef := p.eat(token.Amp)
	value := p.parseExpression(precAssign)
	if p.eat(token.DoubleArrow) {
		key = value
		byRef = p.eat(token.Amp)
		value = p.parseExpression(precAssign)
	}
	p.expect(token.RParen)
	var body ast.Statement
	var end span.Span
	if p.at(token.Colon) {
		body = p.parseAltBody(token.KwEndforeach)
		end = p.expect(token.KwEndforeach).Span
		end = p.expectStmtEnd()
	} else {
		body = p.parseStatement()
		end = body.GetSpan()
	}
	return &ast.ForeachStatement{BaseNode: p.base(ast.KindForeach, start.Merge(end)), Subject: subject, Key: key, Value: value, ByReference: byRef, Body: body}
}

var switchCaseEnders = []token.Kind{token.KwCase, token.KwDefault}

func (p *Parser) parseSwitchStatement() ast.Statement {
	start := p.bump().Span
	p.expect(token.LParen)
	subject := p.parseExpr()
	p.expect(token.RParen)
	alt := p.at(token.Colon)
	if alt {
		p.bump()
	} else {
		p.expect(token.LBrace)
	}
	p.eat(token.Semicolon)

	var closeOn token.Kind
	if alt {
		closeOn = token.KwEndswitch
	} else {
		closeOn = token.RBrace
	}

	var cases []*ast.CaseClause
	for !p.at(closeOn) && !p.eof() {
		cases = append(cases, p.parseCaseClause(closeOn))
	}

	var end span.Span
	if alt {
		end = p.expect(token.KwEndswitch).Span
		end = p.expectStmtEnd()
	} else {
		end = p.expect(token.RBrace).Span
	}
	return &ast.SwitchStatement{BaseNode: p.base(ast.KindSwitch, start.Merge(end)), Subject: subject, Cases: cases}
}

func (p *Parser) parseCaseClause(closeOn token.Kind) *ast.CaseClause {
	start := p.cur().Span
	var test ast.Expression
	if p.at(token.KwDefault) {
		p.bump()
	} else {
		p.expect(token.KwCase)
		test = p.parseExpr()
	}
	if !p.eat(token.Colon) {
		p.eat(token.Semicolon)
	}
	var stmts []ast.Statement
	for !p.atAny(switchCaseEnders...) && !p.at(closeOn) && !p.eof() {
		stmts = append(stmts, p.parseStatement())
	}
	end := start
	if len(stmts) > 0 {
		end = stmts[len(stmts)-1].GetSpan()
	}
	return &ast.CaseClause{BaseNode: p.base(ast.KindCase, start.Merge(end)), Test: test, Statements: stmts}
}

func (p *Parser) parseTryStatement() ast.Statement {
	start := p.bump().Span
	body := p.parseBlockStatement()
	var catches []*ast.CatchClause
	for p.at(token.KwCatch) {
		catches = append(catches, p.parseCatchClause())
	}
	var finallyBlock *ast.BlockStatement
	end := body.Span
	if len(catches) > 0 {
		end = catches[len(catches)-1].Body.Span
	}
	if p.eat(token.KwFinally) {
		finallyBlock = p.parseBlockStatement()
		end = finallyBlock.Span
	}
	return &ast.TryStatement{BaseNode: p.base(ast.KindTry, start.Merge(end)), Body: body, Catches: catches, Finally: finallyBlock}
}

func (p *Parser) parseCatchClause() *ast.CatchClause {
	start := p.bump().Span
	p.expect(token.LParen)
	var types []*ast.Name
	types = append(types, p.parseName())
	for p.eat(token.Pipe) {
		types = append(types, p.parseName())
	}
	var varName string
	if p.at(token.Variable) {
		varName = p.text(p.bump())
	}
	p.expect(token.RParen)
	body := p.parseBlockStatement()
	return &ast.CatchClause{BaseNode: p.base(ast.KindCatch, start.Merge(body.Span)), Types: types, Variable: varName, Body: body}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	start := p.bump().Span
	var val ast.Expression
	if !p.at(token.Semicolon) && !p.at(token.CloseTag) && !p.eof() {
		val = p.parseExpr()
	}
	end := p.expectStmtEnd()
	return &ast.ReturnStatement{BaseNode: p.base(ast.KindReturn, start.Merge(end)), Value: val}
}

// parseThrowStatement parses `throw expr;` in statement position (spec
// keeps ThrowExpression for expression position separately, since PHP 8
// allows `throw` as both).
func (p *Parser) parseThrowStatement() ast.Statement {
	start := p.bump().Span
	val := p.parseExpr()
	end := p.expectStmtEnd()
	return &ast.ThrowStatement{BaseNode: p.base(ast.KindThrow, start.Merge(end)), Value: val}
}

func (p *Parser) parseBreakStatement() ast.Statement {
	start := p.bump().Span
	var level ast.Expression
	if !p.at(token.Semicolon) && !p.at(token.CloseTag) && !p.eof() {
		level = p.parseExpr()
	}
	end := p.expectStmtEnd()
	return &ast.BreakStatement{BaseNode: p.base(ast.KindBreak, start.Merge(end)), Level: level}
}

func (p *Parser) parseContinueStatement() ast.Statement {
	start := p.bump().Span
	var level ast.Expression
	if !p.at(token.Semicolon) && !p.at(token.CloseTag) && !p.eof() {
		level = p.parseExpr()
	}
	end := p.expectStmtEnd()
	return &ast.ContinueStatement{BaseNode: p.base(ast.KindContinue, start.Merge(end)), Level: level}
}

func (p *Parser) parseGotoStatement() ast.Statement {
	start := p.bump().Span
	nameTok := p.expect(token.Identifier)
	end := p.expectStmtEnd()
	return &ast.GotoStatement{BaseNode: p.base(ast.KindGoto, start.Merge(end)), Label: p.text(nameTok)}
}

func (p *Parser) parseLabelStatement() ast.Statement {
	nameTok := p.bump()
	colon := p.expect(token.Colon)
	return &ast.LabelStatement{BaseNode: p.base(ast.KindLabel, nameTok.Span.Merge(colon.Span)), Name: p.text(nameTok)}
}

func (p *Parser) parseEchoStatement() ast.Statement {
	start := p.bump().Span
	values := p.parseExprList()
	end := p.expectStmtEnd()
	return &ast.EchoStatement{BaseNode: p.base(ast.KindEcho, start.Merge(end)), Values: values}
}

func (p *Parser) parseGlobalStatement() ast.Statement {
	start := p.bump().Span
	var vars []*ast.Variable
	for {
		t := p.expect(token.Variable)
		vars = append(vars, &ast.Variable{BaseNode: p.base(ast.KindVariable, t.Span), Name: p.text(t)})
		if !p.eat(token.Comma) {
			break
		}
	}
	end := p.expectStmtEnd()
	return &ast.GlobalStatement{BaseNode: p.base(ast.KindGlobal, start.Merge(end)), Variables: vars}
}

func (p *Parser) parseStaticVarDeclStatement() ast.Statement {
	start := p.bump().Span
	var decls []*ast.StaticVarClause
	for {
		t := p.expect(token.Variable)
		var def ast.Expression
		declEnd := t.Span
		if p.eat(token.Assign) {
			def = p.parseExpression(precAssign)
			declEnd = def.GetSpan()
		}
		decls = append(decls, &ast.StaticVarClause{BaseNode: p.base(ast.KindStaticVarDecl, t.Span.Merge(declEnd)), Name: p.text(t), Default: def})
		if !p.eat(token.Comma) {
			break
		}
	}
	end := p.expectStmtEnd()
	return &ast.StaticVarDeclStatement{BaseNode: p.base(ast.KindStaticVarDecl, start.Merge(end)), Declarations: decls}
}

func (p *Parser) parseDeclareStatement() ast.Statement {
	start := p.bump().Span
	p.expect(token.LParen)
	var directives []*ast.DeclareDirective
	for {
		nameTok := p.expect(token.Identifier)
		p.expect(token.Assign)
		val := p.parseExpression(precAssign)
		directives = append(directives, &ast.DeclareDirective{BaseNode: p.base(ast.KindDeclare, nameTok.Span.Merge(val.GetSpan())), Name: p.text(nameTok), Value: val})
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen)

	var body ast.Statement
	end := p.toks[max0(p.pos-1)].Span
	switch {
	case p.at(token.Colon):
		body = p.parseAltBody(token.KwEnddeclare)
		end = p.expect(token.KwEnddeclare).Span
		end = p.expectStmtEnd()
	case p.at(token.Semicolon) || p.at(token.CloseTag) || p.eof():
		end = p.expectStmtEnd()
	default:
		body = p.parseStatement()
		end = body.GetSpan()
	}
	return &ast.DeclareStatement{BaseNode: p.base(ast.KindDeclare, start.Merge(end)), Directives: directives, Body: body}
}

func (p *Parser) parseUnsetStatement() ast.Statement {
	start := p.bump().Span
	p.expect(token.LParen)
	var targets []ast.Expression
	for !p.at(token.RParen) && !p.eof() {
		targets = append(targets, p.parseExpr())
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen)
	end := p.expectStmtEnd()
	return &ast.UnsetStatement{BaseNode: p.base(ast.KindUnset, start.Merge(end)), Targets: targets}
}

func (p *Parser) parseNamespaceStatement() ast.Statement {
	start := p.bump().Span
	var name *ast.Name
	if !p.at(token.LBrace) {
		name = p.parseName()
	}
	if p.at(token.LBrace) {
		p.bump()
		var body []ast.Statement
		for !p.at(token.RBrace) && !p.eof() {
			body = append(body, p.parseStatement())
		}
		end := p.expect(token.RBrace).Span
		return &ast.NamespaceStatement{BaseNode: p.base(ast.KindNamespace, start.Merge(end)), Name: name, Body: body}
	}
	end := p.expectStmtEnd()
	return &ast.NamespaceStatement{BaseNode: p.base(ast.KindNamespace, start.Merge(end)), Name: name}
}

func (p *Parser) parseUseStatement() ast.Statement {
	start := p.bump().Span
	useKind := ""
	switch {
	case p.at(token.KwFunction):
		p.bump()
		useKind = "function"
	case p.at(token.KwConst):
		p.bump()
		useKind = "const"
	}
	first := p.parseName()
	if p.at(token.LBrace) {
		p.bump() // '{'
		var clauses []*ast.UseClause
		for !p.at(token.RBrace) && !p.eof() {
			clauses = append(clauses, p.parseGroupUseClause(useKind == ""))
			if !p.eat(token.Comma) {
				break
			}
		}
		end := p.expect(token.RBrace).Span
		end = p.expectStmtEnd()
		return &ast.GroupUseStatement{BaseNode: p.base(ast.KindUseGroup, start.Merge(end)), UseKind: useKind, Prefix: first, Clauses: clauses}
	}

	var clauses []*ast.UseClause
	clauses = append(clauses, p.finishUseClause(first))
	for p.eat(token.Comma) {
		clauses = append(clauses, p.finishUseClause(p.parseName()))
	}
	end := p.expectStmtEnd()
	return &ast.UseStatement{BaseNode: p.base(ast.KindUse, start.Merge(end)), UseKind: useKind, Clauses: clauses}
}

// parseGroupUseClause parses one member of a `use Prefix\{...}` group; when
// the group itself carries no function/const marker, each member may carry
// its own (spec-supplemented grammar: PHP allows mixing kinds inside one
// group-use list).
func (p *Parser) parseGroupUseClause(allowOwnKind bool) *ast.UseClause {
	if allowOwnKind && (p.at(token.KwFunction) || p.at(token.KwConst)) {
		p.bump()
	}
	return p.finishUseClause(p.parseName())
}

func (p *Parser) finishUseClause(name *ast.Name) *ast.UseClause {
	var alias string
	end := name.Span
	if p.eat(token.KwAs) {
		t := p.expect(token.Identifier)
		alias = p.text(t)
		end = t.Span
	}
	return &ast.UseClause{BaseNode: p.base(ast.KindUse, name.Span.Merge(end)), Name: name, Alias: alias}
}

func (p *Parser) parseConstStatement() ast.Statement {
	start := p.bump().Span
	var clauses []*ast.ConstClause
	for {
		nameTok := p.expect(token.Identifier)
		p.expect(token.Assign)
		val := p.parseExpression(precAssign)
		clauses = append(clauses, &ast.ConstClause{BaseNode: p.base(ast.KindConstDecl, nameTok.Span.Merge(val.GetSpan())), Name: p.text(nameTok), Value: val})
		if !p.eat(token.Comma) {
			break
		}
	}
	end := p.expectStmtEnd()
	return &ast.ConstStatement{BaseNode: p.base(ast.KindConstDecl, start.Merge(end)), Constants: clauses}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	expr := p.parseExpr()
	end := p.expectStmtEnd()
	return &ast.ExpressionStatement{BaseNode: p.base(ast.KindExpressionStmt, expr.GetSpan().Merge(end)), Expr: expr}
}
