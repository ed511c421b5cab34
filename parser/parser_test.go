package parser_test

import (
	"testing"

	"github.com/phpcore/phpast/ast"
	"github.com/phpcore/phpast/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, diags := parser.Parse([]byte(src), parser.DefaultOptions())
	require.Equal(t, 0, diags.Len(), "unexpected diagnostics: %v", diags.All())
	return prog
}

func TestEmptyFunctionWithReturnType(t *testing.T) {
	prog := parseOK(t, `<?php function f(): void {}`)
	require.Len(t, prog.Statements, 1)
	fn, ok := prog.Statements[0].(*ast.FunctionDeclaration)
	require.True(t, ok)
	assert.Equal(t, "f", fn.Name)
	assert.Empty(t, fn.Parameters)
	require.NotNil(t, fn.ReturnType)
	named, ok := fn.ReturnType.(*ast.NamedType)
	require.True(t, ok)
	assert.Equal(t, "void", named.Name.Text)
	require.NotNil(t, fn.Body)
	assert.Empty(t, fn.Body.Statements)
}

func TestDNFParameterType(t *testing.T) {
	prog := parseOK(t, `<?php function g(A|(B&C) $x) {}`)
	fn := prog.Statements[0].(*ast.FunctionDeclaration)
	require.Len(t, fn.Parameters, 1)
	param := fn.Parameters[0]
	assert.Equal(t, "x", param.Name)

	union, ok := param.Type.(*ast.UnionType)
	require.True(t, ok)
	require.Len(t, union.Members, 2)

	named, ok := union.Members[0].(*ast.NamedType)
	require.True(t, ok)
	assert.Equal(t, "A", named.Name.Text)

	paren, ok := union.Members[1].(*ast.ParenthesizedType)
	require.True(t, ok)
	inter, ok := paren.Inner.(*ast.IntersectionType)
	require.True(t, ok)
	require.Len(t, inter.Members, 2)
	assert.Equal(t, "B", inter.Members[0].(*ast.NamedType).Name.Text)
	assert.Equal(t, "C", inter.Members[1].(*ast.NamedType).Name.Text)
}

func TestInvalidNullableUnionCombinationDiagnoses(t *testing.T) {
	prog, diags := parser.Parse([]byte(`<?php function h(?A|B $x) {}`), parser.DefaultOptions())
	require.Equal(t, 1, diags.Len())
	assert.Equal(t, "type.nullable-in-union", diags.All()[0].Code)

	fn := prog.Statements[0].(*ast.FunctionDeclaration)
	union, ok := fn.Parameters[0].Type.(*ast.UnionType)
	require.True(t, ok, "a partial Union node is still produced despite the diagnostic")
	require.Len(t, union.Members, 2)
	_, ok = union.Members[0].(*ast.NullableType)
	assert.True(t, ok)
}

func TestClassWithTypedConstantAndPromotedConstructorProperty(t *testing.T) {
	prog := parseOK(t, `<?php final class U { public function __construct(public readonly string $s) {} const string K = ''; }`)
	class, ok := prog.Statements[0].(*ast.ClassLikeDeclaration)
	require.True(t, ok)
	assert.Equal(t, "U", class.Name)
	assert.True(t, class.Modifiers.Has(ast.ModFinal))
	require.Len(t, class.Members, 2)

	ctor, ok := class.Members[0].(*ast.MethodDeclaration)
	require.True(t, ok)
	assert.Equal(t, "__construct", ctor.Name)
	require.Len(t, ctor.Parameters, 1)
	param := ctor.Parameters[0]
	assert.True(t, param.PromotionModifiers.Has(ast.ModPublic))
	assert.True(t, param.PromotionModifiers.Has(ast.ModReadonly))
	require.NotNil(t, param.Type)
	assert.Equal(t, "string", param.Type.(*ast.NamedType).Name.Text)

	constDecl, ok := class.Members[1].(*ast.ClassConstantDeclaration)
	require.True(t, ok)
	require.NotNil(t, constDecl.Type)
	assert.Equal(t, "string", constDecl.Type.(*ast.NamedType).Name.Text)
	require.Len(t, constDecl.Constants, 1)
	assert.Equal(t, "K", constDecl.Constants[0].Name)
}

func TestAttributesOnMultipleKinds(t *testing.T) {
	prog := parseOK(t, `<?php #[A, B(1)] function f(#[C] int $x): int { return $x; }`)
	fn, ok := prog.Statements[0].(*ast.FunctionDeclaration)
	require.True(t, ok)
	require.Len(t, fn.Attributes, 1)
	require.Len(t, fn.Attributes[0].Attributes, 2)
	assert.Equal(t, "A", fn.Attributes[0].Attributes[0].Name.Text)
	assert.Equal(t, "B", fn.Attributes[0].Attributes[1].Name.Text)

	require.Len(t, fn.Parameters, 1)
	require.Len(t, fn.Parameters[0].Attributes, 1)
	assert.Equal(t, "C", fn.Parameters[0].Attributes[0].Attributes[0].Name.Text)
}

func TestInterpolatedString(t *testing.T) {
	prog := parseOK(t, `<?php $x = "hello $name, {$a->b}!";`)
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	assign := stmt.Expr.(*ast.AssignmentExpression)
	interp, ok := assign.Value.(*ast.InterpolatedStringExpression)
	require.True(t, ok)
	require.Len(t, interp.Parts, 5)

	lit0 := interp.Parts[0].(*ast.StringLiteral)
	assert.Equal(t, "hello ", lit0.Value)

	v := interp.Parts[1].(*ast.Variable)
	assert.Equal(t, "name", v.Name)

	lit2 := interp.Parts[2].(*ast.StringLiteral)
	assert.Equal(t, ", ", lit2.Value)

	member := interp.Parts[3].(*ast.MemberAccessExpression)
	obj := member.Object.(*ast.Variable)
	assert.Equal(t, "a", obj.Name)
	name := member.Member.(*ast.Name)
	assert.Equal(t, "b", name.Text)

	lit4 := interp.Parts[4].(*ast.StringLiteral)
	assert.Equal(t, "!", lit4.Value)
}

func TestBinaryOperatorPrecedence(t *testing.T) {
	prog := parseOK(t, `<?php $x = 1 + 2 * 3;`)
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	assign := stmt.Expr.(*ast.AssignmentExpression)
	add := assign.Value.(*ast.BinaryExpression)
	assert.Equal(t, "+", add.Operator)
	_, leftIsInt := add.Left.(*ast.IntLiteral)
	assert.True(t, leftIsInt)
	mul, ok := add.Right.(*ast.BinaryExpression)
	require.True(t, ok, "* must bind tighter than +")
	assert.Equal(t, "*", mul.Operator)
}

func TestPowIsRightAssociative(t *testing.T) {
	prog := parseOK(t, `<?php $x = 2 ** 3 ** 2;`)
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	assign := stmt.Expr.(*ast.AssignmentExpression)
	outer := assign.Value.(*ast.BinaryExpression)
	assert.Equal(t, "**", outer.Operator)
	_, leftIsInt := outer.Left.(*ast.IntLiteral)
	assert.True(t, leftIsInt, "2 ** (3 ** 2): left operand of outer ** is the literal 2")
	_, rightIsBinary := outer.Right.(*ast.BinaryExpression)
	assert.True(t, rightIsBinary)
}

func TestCastExpression(t *testing.T) {
	tests := []struct {
		src      string
		wantType string
	}{
		{`<?php $y = (int)$x;`, "int"},
		{`<?php $y = (integer)$x;`, "int"},
		{`<?php $y = (float)$x;`, "float"},
		{`<?php $y = (string)$x;`, "string"},
		{`<?php $y = (array)$x;`, "array"},
		{`<?php $y = (object)$x;`, "object"},
		{`<?php $y = (bool)$x;`, "bool"},
		{`<?php $y = (unset)$x;`, "unset"},
	}
	for _, tt := range tests {
		t.Run(tt.wantType, func(t *testing.T) {
			prog := parseOK(t, tt.src)
			stmt := prog.Statements[0].(*ast.ExpressionStatement)
			assign := stmt.Expr.(*ast.AssignmentExpression)
			cast, ok := assign.Value.(*ast.CastExpression)
			require.True(t, ok, "expected a cast expression, got %T", assign.Value)
			assert.Equal(t, tt.wantType, cast.Type)
			v, ok := cast.Operand.(*ast.Variable)
			require.True(t, ok)
			assert.Equal(t, "x", v.Name)
		})
	}
}

func TestParenthesizedExpressionIsNotACast(t *testing.T) {
	prog := parseOK(t, `<?php $y = (Foo::BAR);`)
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	// "Foo" is not a cast type name, so "(Foo::BAR)" stays a plain
	// parenthesized expression rather than being mistaken for a cast.
	assign := stmt.Expr.(*ast.AssignmentExpression)
	_, isCast := assign.Value.(*ast.CastExpression)
	assert.False(t, isCast)
	_, isClassConstFetch := assign.Value.(*ast.StaticMemberAccessExpression)
	assert.True(t, isClassConstFetch)
}

func TestFirstClassCallableSyntax(t *testing.T) {
	prog := parseOK(t, `<?php $f = strlen(...);`)
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	assign := stmt.Expr.(*ast.AssignmentExpression)
	fcc, ok := assign.Value.(*ast.FirstClassCallableExpression)
	require.True(t, ok)
	name := fcc.Callee.(*ast.Name)
	assert.Equal(t, "strlen", name.Text)
}

func TestMatchExpression(t *testing.T) {
	prog := parseOK(t, `<?php $y = match($x) { 1, 2 => 'a', default => 'b' };`)
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	assign := stmt.Expr.(*ast.AssignmentExpression)
	m, ok := assign.Value.(*ast.MatchExpression)
	require.True(t, ok)
	require.Len(t, m.Arms, 2)
	assert.Len(t, m.Arms[0].Conditions, 2)
	assert.True(t, m.Arms[1].IsDefault)
}

func TestAlternativeControlFlowSyntax(t *testing.T) {
	prog := parseOK(t, "<?php if ($x): echo 1; else: echo 2; endif;")
	ifStmt, ok := prog.Statements[0].(*ast.IfStatement)
	require.True(t, ok)
	require.NotNil(t, ifStmt.Then)
	require.NotNil(t, ifStmt.Else)
}

func TestParserRecoversAfterSyntaxError(t *testing.T) {
	prog, diags := parser.Parse([]byte(`<?php ) ; function ok() {}`), parser.DefaultOptions())
	assert.True(t, diags.HasErrors())
	require.Len(t, prog.Statements, 2, "one bad statement must not swallow the rest of the program")
	_, secondIsFn := prog.Statements[1].(*ast.FunctionDeclaration)
	assert.True(t, secondIsFn)
}

func TestParserResynchronizesAfterMidStatementFailure(t *testing.T) {
	// The missing comma derails parseArgumentList partway through the call,
	// leaving the cursor short of the statement's own ";"; recovery must
	// skip the rest of the bad statement so the declaration after it still
	// parses instead of being swallowed by cascading diagnostics.
	prog, diags := parser.Parse([]byte(`<?php foo(1 2); function ok() {}`), parser.DefaultOptions())
	assert.True(t, diags.HasErrors())
	last := prog.Statements[len(prog.Statements)-1]
	_, lastIsFn := last.(*ast.FunctionDeclaration)
	assert.True(t, lastIsFn, "recovery must resynchronize instead of swallowing the trailing declaration")
}

func TestConflictingModifiersDiagnoses(t *testing.T) {
	_, diags := parser.Parse([]byte(`<?php class C { abstract final function f(); }`), parser.DefaultOptions())
	require.True(t, diags.HasErrors())
	found := false
	for _, d := range diags.All() {
		if d.Code == "parse.invalid-modifiers" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestHeredocWithInterpolation(t *testing.T) {
	src := "<?php $greeting = <<<EOT\nHi $name\nEOT;\n"
	prog := parseOK(t, src)
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	assign := stmt.Expr.(*ast.AssignmentExpression)
	interp, ok := assign.Value.(*ast.InterpolatedStringExpression)
	require.True(t, ok)
	assert.True(t, interp.IsHeredoc)
}
