package parser

import (
	"github.com/phpcore/phpast/ast"
	"github.com/phpcore/phpast/token"
)

// precedence levels, loosest to tightest. `instanceof` is modeled as an
// ordinary left-associative binary operator one level tighter than the
// arithmetic operators; real PHP actually binds it tighter than the
// unary operators below it, but that edge case is out of scope for this
// core's Pratt tables.
type precedence int

const (
	precLowest precedence = iota
	precKwOr
	precKwXor
	precKwAnd
	precAssign
	precTernary
	precCoalesce
	precLogicalOr
	precLogicalAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precConcat
	precAdditive
	precMultiplicative
	precInstanceof
)

type assoc int

const (
	assocLeft assoc = iota
	assocRight
)

type infixRule struct {
	prec  precedence
	assoc assoc
}

var infixRules = map[token.Kind]infixRule{
	token.KwOr:             {precKwOr, assocLeft},
	token.KwXor:            {precKwXor, assocLeft},
	token.KwAnd:            {precKwAnd, assocLeft},
	token.Assign:           {precAssign, assocRight},
	token.PlusEqual:        {precAssign, assocRight},
	token.MinusEqual:       {precAssign, assocRight},
	token.StarEqual:        {precAssign, assocRight},
	token.SlashEqual:       {precAssign, assocRight},
	token.DotEqual:         {precAssign, assocRight},
	token.PercentEqual:     {precAssign, assocRight},
	token.AmpEqual:         {precAssign, assocRight},
	token.PipeEqual:        {precAssign, assocRight},
	token.CaretEqual:       {precAssign, assocRight},
	token.ShlEqual:         {precAssign, assocRight},
	token.ShrEqual:         {precAssign, assocRight},
	token.PowEqual:         {precAssign, assocRight},
	token.CoalesceEqual:    {precAssign, assocRight},
	token.Question:         {precTernary, assocLeft},
	token.Coalesce:         {precCoalesce, assocRight},
	token.BooleanOr:        {precLogicalOr, assocLeft},
	token.BooleanAnd:       {precLogicalAnd, assocLeft},
	token.Pipe:             {precBitOr, assocLeft},
	token.Caret:            {precBitXor, assocLeft},
	token.Amp:              {precBitAnd, assocLeft},
	token.IsEqual:          {precEquality, assocLeft},
	token.IsNotEqual:       {precEquality, assocLeft},
	token.IsIdentical:      {precEquality, assocLeft},
	token.IsNotIdentical:   {precEquality, assocLeft},
	token.Lt:               {precRelational, assocLeft},
	token.Gt:               {precRelational, assocLeft},
	token.LessOrEqual:      {precRelational, assocLeft},
	token.GreaterOrEqual:   {precRelational, assocLeft},
	token.Spaceship:        {precRelational, assocLeft},
	token.Shl:              {precShift, assocLeft},
	token.Shr:              {precShift, assocLeft},
	token.Dot:              {precConcat, assocLeft},
	token.Plus:             {precAdditive, assocLeft},
	token.Minus:            {precAdditive, assocLeft},
	token.Star:             {precMultiplicative, assocLeft},
	token.Slash:            {precMultiplicative, assocLeft},
	token.Percent:          {precMultiplicative, assocLeft},
	token.KwInstanceof:     {precInstanceof, assocLeft},
}

var binaryOperatorText = map[token.Kind]string{
	token.BooleanOr: "||", token.BooleanAnd: "&&",
	token.Pipe: "|", token.Caret: "^", token.Amp: "&",
	token.IsEqual: "==", token.IsNotEqual: "!=", token.IsIdentical: "===", token.IsNotIdentical: "!==",
	token.Lt: "<", token.Gt: ">", token.LessOrEqual: "<=", token.GreaterOrEqual: ">=", token.Spaceship: "<=>",
	token.Shl: "<<", token.Shr: ">>", token.Dot: ".",
	token.Plus: "+", token.Minus: "-", token.Star: "*", token.Slash: "/", token.Percent: "%",
	token.KwAnd: "and", token.KwOr: "or", token.KwXor: "xor",
}

var assignOperatorText = map[token.Kind]string{
	token.Assign: "=", token.PlusEqual: "+=", token.MinusEqual: "-=", token.StarEqual: "*=",
	token.SlashEqual: "/=", token.DotEqual: ".=", token.PercentEqual: "%=", token.AmpEqual: "&=",
	token.PipeEqual: "|=", token.CaretEqual: "^=", token.ShlEqual: "<<=", token.ShrEqual: ">>=",
	token.PowEqual: "**=", token.CoalesceEqual: "??=",
}

// parseExpr parses a full expression with no minimum-precedence
// restriction (spec 4.3 "Pratt expression parser").
func (p *Parser) parseExpr() ast.Expression { return p.parseExpression(precLowest) }

func (p *Parser) parseExpression(minPrec precedence) ast.Expression {
	left := p.parseUnary()
	for {
		rule, ok := infixRules[p.cur().Kind]
		if !ok || rule.prec < minPrec {
			return left
		}
		left = p.buildInfix(left, rule)
	}
}

func (p *Parser) buildInfix(left ast.Expression, rule infixRule) ast.Expression {
	opTok := p.bump()
	nextMin := rule.prec + 1
	if rule.assoc == assocRight {
		nextMin = rule.prec
	}

	switch opTok.Kind {
	case token.Question:
		if p.eat(token.Colon) {
			els := p.parseExpression(nextMin)
			return &ast.ShortTernaryExpression{
				BaseNode:  p.base(ast.KindShortTernary, left.GetSpan().Merge(els.GetSpan())),
				Condition: left, Else: els,
			}
		}
		then := p.parseExpression(precLowest)
		p.expect(token.Colon)
		els := p.parseExpression(nextMin)
		return &ast.TernaryExpression{
			BaseNode:  p.base(ast.KindTernary, left.GetSpan().Merge(els.GetSpan())),
			Condition: left, Then: then, Else: els,
		}

	case token.Coalesce:
		right := p.parseExpression(nextMin)
		return &ast.CoalesceExpression{BaseNode: p.base(ast.KindNullCoalesce, left.GetSpan().Merge(right.GetSpan())), Left: left, Right: right}

	case token.KwInstanceof:
		class := p.parseClassRefOperand()
		return &ast.InstanceofExpression{BaseNode: p.base(ast.KindInstanceof, left.GetSpan().Merge(class.GetSpan())), Operand: left, Class: class}

	default:
		if opText, ok := assignOperatorText[opTok.Kind]; ok {
			if opTok.Kind == token.Assign && p.at(token.Amp) {
				p.bump()
				value := p.parseExpression(nextMin)
				return &ast.AssignmentExpression{
					BaseNode: p.base(ast.KindAssignment, left.GetSpan().Merge(value.GetSpan())),
					Operator: "=", Target: left, Value: value, IsReference: true,
				}
			}
			value := p.parseExpression(nextMin)
			return &ast.AssignmentExpression{
				BaseNode: p.base(ast.KindAssignment, left.GetSpan().Merge(value.GetSpan())),
				Operator: opText, Target: left, Value: value,
			}
		}
		opText := binaryOperatorText[opTok.Kind]
		right := p.parseExpression(nextMin)
		return &ast.BinaryExpression{
			BaseNode: p.base(ast.KindBinary, left.GetSpan().Merge(right.GetSpan())),
			Operator: opText, Left: left, Right: right,
		}
	}
}

// parseClassRefOperand parses the right-hand operand of `instanceof`,
// `new`, and similar positions: either a Name or an arbitrary expression
// (e.g. `new $class(...)`, `$x instanceof $interface`).
func (p *Parser) parseClassRefOperand() ast.Expression {
	if p.at(token.Identifier) || p.at(token.NamespaceSep) || p.at(token.KwStatic) {
		return p.parsePostfixChain(p.parseName())
	}
	return p.parseUnary()
}

// parseUnary handles every prefix form: symbolic unary operators, casts,
// `@`, and the PHP keyword-prefix expression forms (`clone`, `new`,
// `print`, `yield`, `throw`, `include`/`require` family), falling through
// to the `**` (right-assoc, tighter than unary) and postfix/primary chain.
func (p *Parser) parseUnary() ast.Expression {
	cur := p.cur()
	switch {
	case cur.Kind == token.Bang || cur.Kind == token.Minus || cur.Kind == token.Plus || cur.Kind == token.Tilde:
		op := p.bump()
		operand := p.parseUnary()
		return &ast.UnaryExpression{BaseNode: p.base(ast.KindUnary, op.Span.Merge(operand.GetSpan())), Operator: op.Kind.String(), Operand: operand}

	case cur.Kind == token.Inc || cur.Kind == token.Dec:
		op := p.bump()
		operand := p.parseUnary()
		return &ast.UnaryExpression{BaseNode: p.base(ast.KindUnary, op.Span.Merge(operand.GetSpan())), Operator: op.Kind.String(), Operand: operand}

	case cur.Kind == token.At:
		op := p.bump()
		operand := p.parseUnary()
		return &ast.ErrorSuppressionExpression{BaseNode: p.base(ast.KindErrorSuppress, op.Span.Merge(operand.GetSpan())), Operand: operand}

	case cur.Kind.IsCast():
		op := p.bump()
		operand := p.parseUnary()
		return &ast.CastExpression{BaseNode: p.base(ast.KindCast, op.Span.Merge(operand.GetSpan())), Type: castTypeName(op.Kind), Operand: operand}

	case cur.Kind == token.KwClone:
		op := p.bump()
		operand := p.parseUnary()
		return &ast.CloneExpression{BaseNode: p.base(ast.KindClone, op.Span.Merge(operand.GetSpan())), Operand: operand}

	case cur.Kind == token.KwNew:
		return p.parseNewExpression()

	case cur.Kind == token.KwPrint:
		op := p.bump()
		operand := p.parseExpression(precAssign)
		return &ast.PrintExpression{BaseNode: p.base(ast.KindPrint, op.Span.Merge(operand.GetSpan())), Operand: operand}

	case cur.Kind == token.KwYield:
		return p.parseYieldExpression()

	case cur.Kind == token.KwThrow:
		op := p.bump()
		value := p.parseExpression(precAssign)
		return &ast.ThrowExpression{BaseNode: p.base(ast.KindThrow, op.Span.Merge(value.GetSpan())), Value: value}

	case cur.Kind == token.KwInclude || cur.Kind == token.KwIncludeOnce ||
		cur.Kind == token.KwRequire || cur.Kind == token.KwRequireOnce:
		return p.parseIncludeExpression()

	default:
		return p.parsePow()
	}
}

func castTypeName(k token.Kind) string {
	switch k {
	case token.IntCast:
		return "int"
	case token.DoubleCast:
		return "float"
	case token.StringCast:
		return "string"
	case token.ArrayCast:
		return "array"
	case token.ObjectCast:
		return "object"
	case token.BoolCast:
		return "bool"
	case token.UnsetCast:
		return "unset"
	default:
		return "unknown"
	}
}

// parsePow handles `**`, which is right-associative and binds tighter
// than the unary prefix operators above it but allows another unary
// expression on its right operand (`2 ** -2`).
func (p *Parser) parsePow() ast.Expression {
	base := p.parsePostfixChain(p.parsePrimary())
	if p.at(token.Pow) {
		p.bump()
		right := p.parseUnary()
		return &ast.BinaryExpression{BaseNode: p.base(ast.KindBinary, base.GetSpan().Merge(right.GetSpan())), Operator: "**", Left: base, Right: right}
	}
	return base
}

func (p *Parser) parseIncludeExpression() ast.Expression {
	op := p.bump()
	var kind ast.IncludeKind
	switch op.Kind {
	case token.KwInclude:
		kind = ast.IncludeInclude
	case token.KwIncludeOnce:
		kind = ast.IncludeIncludeOnce
	case token.KwRequire:
		kind = ast.IncludeRequire
	case token.KwRequireOnce:
		kind = ast.IncludeRequireOnce
	}
	operand := p.parseExpression(precAssign)
	return &ast.IncludeExpression{BaseNode: p.base(ast.KindInclude, op.Span.Merge(operand.GetSpan())), IncludeKind: kind, Operand: operand}
}

func (p *Parser) parseYieldExpression() ast.Expression {
	p.markYield()
	op := p.bump()
	// `yield from expr`: the lexer emits `from` as a plain Identifier;
	// the parser recognizes it by symbol text immediately after `yield`
	// (spec's lexer never introduces a dedicated keyword for it).
	if p.at(token.Identifier) && p.text(p.cur()) == "from" {
		p.bump()
		operand := p.parseExpression(precAssign)
		return &ast.YieldFromExpression{BaseNode: p.base(ast.KindYieldFrom, op.Span.Merge(operand.GetSpan())), Operand: operand}
	}
	if p.atYieldTerminator() {
		return &ast.YieldExpression{BaseNode: p.base(ast.KindYield, op.Span)}
	}
	first := p.parseExpression(precAssign)
	if p.eat(token.DoubleArrow) {
		value := p.parseExpression(precAssign)
		return &ast.YieldExpression{BaseNode: p.base(ast.KindYield, op.Span.Merge(value.GetSpan())), Key: first, Value: value}
	}
	return &ast.YieldExpression{BaseNode: p.base(ast.KindYield, op.Span.Merge(first.GetSpan())), Value: first}
}

func (p *Parser) atYieldTerminator() bool {
	switch p.cur().Kind {
	case token.Semicolon, token.RParen, token.RBracket, token.RBrace, token.Comma, token.EndOfInput:
		return true
	default:
		return false
	}
}

// parseNewExpression covers `new Class(args)`, `new $expr(args)`, and
// `new class(...) extends X implements Y { ... }`.
func (p *Parser) parseNewExpression() ast.Expression {
	start := p.expect(token.KwNew).Span
	if p.at(token.KwClass) {
		return p.parseAnonClass(start)
	}
	class := p.parseNewClassRef()
	var args []ast.Expression
	end := class.GetSpan()
	if p.at(token.LParen) {
		p.bump()
		args = p.parseArgumentList()
		end = p.expect(token.RParen).Span
	}
	return &ast.NewExpression{BaseNode: p.base(ast.KindNew, start.Merge(end)), Class: class, Arguments: args}
}

// parseNewClassRef parses the class reference in `new X`: a name, a
// dynamic expression such as a variable or parenthesized expression, with
// its own postfix chain (`new $this->factories['a']()`).
func (p *Parser) parseNewClassRef() ast.Expression {
	if p.at(token.Identifier) || p.at(token.NamespaceSep) || p.at(token.KwStatic) {
		return p.parsePostfixChainStopAtCall(p.parseName())
	}
	return p.parsePostfixChainStopAtCall(p.parsePrimary())
}
