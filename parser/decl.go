package parser

import (
	"github.com/phpcore/phpast/ast"
	"github.com/phpcore/phpast/span"
	"github.com/phpcore/phpast/token"
)

// classModifierFromToken maps the modifier keywords valid before a class
// declaration (abstract/final/readonly class) to their Modifier value.
func classModifierFromToken(k token.Kind) (ast.Modifier, bool) {
	switch k {
	case token.KwAbstract:
		return ast.ModAbstract, true
	case token.KwFinal:
		return ast.ModFinal, true
	case token.KwReadonly:
		return ast.ModReadonly, true
	}
	return "", false
}

// memberModifierFromToken maps the modifier keywords valid on a class
// member (property/method/constant/promoted parameter) to their Modifier
// value.
func memberModifierFromToken(k token.Kind) (ast.Modifier, bool) {
	switch k {
	case token.KwPublic:
		return ast.ModPublic, true
	case token.KwProtected:
		return ast.ModProtected, true
	case token.KwPrivate:
		return ast.ModPrivate, true
	case token.KwStatic:
		return ast.ModStatic, true
	case token.KwAbstract:
		return ast.ModAbstract, true
	case token.KwFinal:
		return ast.ModFinal, true
	case token.KwReadonly:
		return ast.ModReadonly, true
	}
	return "", false
}

// validateModifiers diagnoses modifier combinations that parse cleanly but
// are never meaningful, without rejecting the node they decorate.
func (p *Parser) validateModifiers(mods ast.ModifierSet, sp span.Span) {
	visCount := 0
	for _, m := range mods {
		if m == ast.ModPublic || m == ast.ModProtected || m == ast.ModPrivate {
			visCount++
		}
	}
	if visCount > 1 {
		p.diags.Addf("parse.conflicting-visibility", sp, "multiple visibility modifiers on one declaration")
	}
	if mods.Has(ast.ModAbstract) && mods.Has(ast.ModFinal) {
		p.diags.Addf("parse.invalid-modifiers", sp, "abstract and final cannot be combined")
	}
	if mods.Has(ast.ModAbstract) && mods.Has(ast.ModPrivate) {
		p.diags.Addf("parse.invalid-modifiers", sp, "abstract member cannot be private")
	}
	if mods.Has(ast.ModReadonly) && mods.Has(ast.ModStatic) {
		p.diags.Addf("parse.invalid-modifiers", sp, "readonly cannot be combined with static")
	}
}

func (p *Parser) parseClassLikeDeclaration() ast.Declaration {
	start := p.cur().Span
	var mods ast.ModifierSet
	for {
		mod, ok := classModifierFromToken(p.cur().Kind)
		if !ok {
			break
		}
		mods = append(mods, mod)
		p.bump()
	}

	var kind ast.ClassLikeKind
	switch p.cur().Kind {
	case token.KwInterface:
		kind = ast.ClassLikeInterface
		p.bump()
	case token.KwTrait:
		kind = ast.ClassLikeTrait
		p.bump()
	case token.KwEnum:
		kind = ast.ClassLikeEnum
		p.bump()
	default:
		p.expect(token.KwClass)
		kind = ast.ClassLikeClass
	}

	nameTok := p.expect(token.Identifier)

	var backing ast.Type
	if kind == ast.ClassLikeEnum && p.eat(token.Colon) {
		backing = p.parseType()
	}

	var extends []*ast.Name
	if p.eat(token.KwExtends) {
		extends = append(extends, p.parseName())
		for p.eat(token.Comma) {
			extends = append(extends, p.parseName())
		}
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
	decl := &ast.ClassLikeDeclaration{
		BaseNode:      p.base(ast.KindClassLike, start.Merge(end)),
		ClassLikeKind: kind,
		Name:          p.text(nameTok),
		Modifiers:     mods,
		Extends:       extends,
		Implements:    implements,
		BackingType:   backing,
		Members:       members,
	}
	p.validateModifiers(mods, decl.Span)
	return decl
}

func (p *Parser) parseClassBody() []ast.ClassMember {
	p.expect(token.LBrace)
	var members []ast.ClassMember
	for !p.at(token.RBrace) && !p.eof() {
		members = append(members, p.parseClassMember()...)
	}
	p.expect(token.RBrace)
	return members
}

func (p *Parser) parseClassMember() []ast.ClassMember {
	groups := p.parseAttributeGroups()
	members := p.parseClassMemberInner()
	for _, m := range members {
		p.attach(m, groups)
	}
	return members
}

func (p *Parser) parseClassMemberInner() []ast.ClassMember {
	start := p.cur().Span
	if p.at(token.KwUse) {
		return []ast.ClassMember{p.parseTraitUseDeclaration(start)}
	}
	if p.at(token.KwCase) {
		return []ast.ClassMember{p.parseEnumCaseDeclaration(start)}
	}

	var mods ast.ModifierSet
	for {
		if mod, ok := memberModifierFromToken(p.cur().Kind); ok {
			mods = append(mods, mod)
			p.bump()
			continue
		}
		if p.at(token.KwVar) {
			p.bump()
			mods = append(mods, ast.ModPublic)
			continue
		}
		break
	}

	switch {
	case p.at(token.KwConst):
		return []ast.ClassMember{p.parseClassConstantDeclaration(start, mods)}
	case p.at(token.KwFunction):
		return []ast.ClassMember{p.parseMethodDeclaration(start, mods)}
	default:
		return p.parsePropertyDeclarations(start, mods)
	}
}

// parseMemberNameToken accepts the identifier that names a method or class
// constant; PHP permits reserved words here (e.g. a method named `list` or
// `class`), so plain keywords are accepted alongside ordinary identifiers.
func (p *Parser) parseMemberNameToken() token.Token {
	k := p.cur().Kind
	if k == token.Identifier || k.IsKeyword() || k.IsTypeAtomKeyword() {
		return p.bump()
	}
	p.diags.Addf("parse.expected-name", p.cur().Span, "expected a member name, got %s", k)
	return token.Token{Kind: token.Identifier, Span: span.Zero(p.cur().Span.Start)}
}

func (p *Parser) parseMethodDeclaration(start span.Span, mods ast.ModifierSet) ast.ClassMember {
	p.bump() // function
	byRef := p.eat(token.Amp)
	nameTok := p.parseMemberNameToken()
	p.expect(token.LParen)
	params := p.parseParameterList()
	p.expect(token.RParen)

	var retType ast.Type
	end := nameTok.Span
	if p.eat(token.Colon) {
		retType = p.parseType()
		end = retType.GetSpan()
	}

	var body *ast.BlockStatement
	if p.at(token.LBrace) {
		p.pushYieldScope()
		body = p.parseBlockStatement()
		isGen := p.popYieldScope()
		end = body.Span
		m := &ast.MethodDeclaration{
			BaseNode: p.base(ast.KindMethod, start.Merge(end)), Name: p.text(nameTok),
			Modifiers: mods, Parameters: params, ReturnType: retType, Body: body,
			ReturnsReference: byRef, IsGenerator: isGen,
		}
		p.validateModifiers(mods, m.Span)
		return m
	}
	end = p.expectStmtEnd()
	m := &ast.MethodDeclaration{
		BaseNode: p.base(ast.KindMethod, start.Merge(end)), Name: p.text(nameTok),
		Modifiers: mods, Parameters: params, ReturnType: retType, ReturnsReference: byRef,
	}
	p.validateModifiers(mods, m.Span)
	return m
}

// constTypeAhead distinguishes a typed class constant (`const int X = 1;`)
// from an untyped one: the constant name sits where a type atom would, so a
// type is present only when the token after the name isn't `=`.
func (p *Parser) constTypeAhead() bool {
	return p.peek(1).Kind != token.Assign
}

func (p *Parser) parseClassConstantDeclaration(start span.Span, mods ast.ModifierSet) ast.ClassMember {
	p.bump() // const
	var typ ast.Type
	if p.constTypeAhead() {
		typ = p.parseType()
	}
	var clauses []*ast.ConstClause
	for {
		nameTok := p.parseMemberNameToken()
		p.expect(token.Assign)
		val := p.parseExpression(precAssign)
		clauses = append(clauses, &ast.ConstClause{
			BaseNode: p.base(ast.KindConstDecl, nameTok.Span.Merge(val.GetSpan())),
			Name:     p.text(nameTok), Value: val,
		})
		if !p.eat(token.Comma) {
			break
		}
	}
	end := p.expectStmtEnd()
	c := &ast.ClassConstantDeclaration{
		BaseNode: p.base(ast.KindClassConstant, start.Merge(end)),
		Constants: clauses, Type: typ, Modifiers: mods,
	}
	p.validateModifiers(mods, c.Span)
	return c
}

func (p *Parser) parseEnumCaseDeclaration(start span.Span) ast.ClassMember {
	p.bump() // case
	nameTok := p.parseMemberNameToken()
	var val ast.Expression
	if p.eat(token.Assign) {
		val = p.parseExpression(precAssign)
	}
	end := p.expectStmtEnd()
	return &ast.EnumCaseDeclaration{BaseNode: p.base(ast.KindEnumCase, start.Merge(end)), Name: p.text(nameTok), Value: val}
}

func (p *Parser) parsePropertyDeclarations(start span.Span, mods ast.ModifierSet) []ast.ClassMember {
	var typ ast.Type
	if !p.at(token.Variable) {
		typ = p.parseType()
	}
	var members []ast.ClassMember
	first := true
	for {
		nameTok := p.expect(token.Variable)
		var def ast.Expression
		end := nameTok.Span
		if p.eat(token.Assign) {
			def = p.parseExpression(precAssign)
			end = def.GetSpan()
		}
		propStart := nameTok.Span
		if first {
			propStart = start
		}
		prop := &ast.PropertyDeclaration{
			BaseNode: p.base(ast.KindProperty, propStart.Merge(end)),
			Name:     p.text(nameTok), Type: typ, DefaultValue: def, Modifiers: mods,
		}
		p.validateModifiers(mods, prop.Span)
		members = append(members, prop)
		first = false
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expectStmtEnd()
	return members
}

func (p *Parser) parseTraitUseDeclaration(start span.Span) ast.ClassMember {
	p.bump() // use
	var traits []*ast.Name
	traits = append(traits, p.parseName())
	for p.eat(token.Comma) {
		traits = append(traits, p.parseName())
	}

	var adaptations []ast.TraitAdaptation
	end := traits[len(traits)-1].Span
	if p.eat(token.LBrace) {
		for !p.at(token.RBrace) && !p.eof() {
			adaptations = append(adaptations, p.parseTraitAdaptation())
		}
		end = p.expect(token.RBrace).Span
	} else {
		end = p.expectStmtEnd()
	}
	return &ast.TraitUseDeclaration{BaseNode: p.base(ast.KindUseTrait, start.Merge(end)), Traits: traits, Adaptations: adaptations}
}

// parseTraitAdaptation parses one `Trait::method insteadof Other;` or
// `[Trait::]method as [modifier] [alias];` clause.
func (p *Parser) parseTraitAdaptation() ast.TraitAdaptation {
	start := p.cur().Span
	name := p.parseName()
	var traitName *ast.Name
	var methodName string
	if p.eat(token.DoubleColon) {
		traitName = name
		methodName = p.text(p.parseMemberNameToken())
	} else {
		methodName = name.Text
	}

	if p.eat(token.KwInsteadof) {
		var others []*ast.Name
		others = append(others, p.parseName())
		for p.eat(token.Comma) {
			others = append(others, p.parseName())
		}
		end := p.expectStmtEnd()
		return &ast.TraitPrecedence{
			BaseNode: p.base(ast.KindTraitPrecedence, start.Merge(end)),
			Trait:    traitName, Method: methodName, InsteadOf: others,
		}
	}

	p.expect(token.KwAs)
	var mods ast.ModifierSet
	for {
		mod, ok := memberModifierFromToken(p.cur().Kind)
		if !ok || (mod != ast.ModPublic && mod != ast.ModProtected && mod != ast.ModPrivate) {
			break
		}
		mods = append(mods, mod)
		p.bump()
	}
	var alias string
	if p.at(token.Identifier) || p.cur().Kind.IsKeyword() {
		alias = p.text(p.bump())
	}
	end := p.expectStmtEnd()
	return &ast.TraitAlias{
		BaseNode: p.base(ast.KindTraitAlias, start.Merge(end)),
		Trait:    traitName, Method: methodName, Modifiers: mods, Alias: alias,
	}
}

// isFunctionDeclAhead is shared by the statement dispatcher; see stmt.go.

func (p *Parser) parseFunctionDeclaration() ast.Statement {
	start := p.bump().Span // function
	byRef := p.eat(token.Amp)
	nameTok := p.expect(token.Identifier)
	p.expect(token.LParen)
	params := p.parseParameterList()
	p.expect(token.RParen)
	var retType ast.Type
	if p.eat(token.Colon) {
		retType = p.parseType()
	}
	p.pushYieldScope()
	body := p.parseBlockStatement()
	isGen := p.popYieldScope()
	return &ast.FunctionDeclaration{
		BaseNode: p.base(ast.KindFunctionDecl, start.Merge(body.Span)),
		Name:     p.text(nameTok), Parameters: params, ReturnType: retType, Body: body,
		ReturnsReference: byRef, IsGenerator: isGen,
	}
}

func (p *Parser) parseParameterList() []*ast.Parameter {
	var params []*ast.Parameter
	for !p.at(token.RParen) && !p.eof() {
		params = append(params, p.parseParameter())
		if !p.eat(token.Comma) {
			break
		}
	}
	return params
}

func (p *Parser) parseParameter() *ast.Parameter {
	groups := p.parseAttributeGroups()
	start := p.cur().Span

	var mods ast.ModifierSet
	for {
		mod, ok := memberModifierFromToken(p.cur().Kind)
		if !ok {
			break
		}
		mods = append(mods, mod)
		p.bump()
	}

	var typ ast.Type
	if !p.at(token.Amp) && !p.at(token.Ellipsis) && !p.at(token.Variable) {
		typ = p.parseType()
	}
	byRef := p.eat(token.Amp)
	variadic := p.eat(token.Ellipsis)
	nameTok := p.expect(token.Variable)

	var def ast.Expression
	end := nameTok.Span
	if p.eat(token.Assign) {
		def = p.parseExpression(precAssign)
		end = def.GetSpan()
	}

	param := &ast.Parameter{
		BaseNode:           p.base(ast.KindParameter, start.Merge(end)),
		Name:               p.text(nameTok),
		Type:               typ,
		DefaultValue:       def,
		IsReference:        byRef,
		IsVariadic:         variadic,
		PromotionModifiers: mods,
	}
	p.attach(param, groups)
	if len(mods) > 0 {
		p.validateModifiers(mods, param.Span)
	}
	return param
}
