package ast_test

import (
	"testing"

	"github.com/phpcore/phpast/ast"
	"github.com/phpcore/phpast/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDGenStartsAtOneAndIncrements(t *testing.T) {
	var gen ast.IDGen
	assert.Equal(t, uint32(1), gen.Next())
	assert.Equal(t, uint32(2), gen.Next())
	assert.Equal(t, uint32(3), gen.Next())
}

func TestBaseNodeAccessors(t *testing.T) {
	n := ast.IntLiteral{
		BaseNode: ast.BaseNode{ID: 7, Kind: ast.KindIntLiteral, Span: span.New(0, 2)},
		Value:    42,
	}
	assert.Equal(t, uint32(7), n.GetID())
	assert.Equal(t, ast.KindIntLiteral, n.GetKind())
	assert.Equal(t, span.New(0, 2), n.GetSpan())
}

func TestMissingImplementsEveryMarkerInterface(t *testing.T) {
	m := &ast.Missing{BaseNode: ast.BaseNode{Kind: ast.KindMissing}, Reason: "expected an expression"}
	var (
		_ ast.Statement   = m
		_ ast.Expression  = m
		_ ast.Declaration = m
		_ ast.ClassMember = m
		_ ast.Type        = m
	)
	assert.Equal(t, "expected an expression", m.Reason)
}

func TestNameKindString(t *testing.T) {
	tests := []struct {
		kind ast.NameKind
		want string
	}{
		{ast.NameUnqualified, "Unqualified"},
		{ast.NameQualified, "Qualified"},
		{ast.NameFullyQualified, "FullyQualified"},
		{ast.NameRelative, "Relative"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestProgramGetChildrenMirrorsStatements(t *testing.T) {
	stmt := &ast.ExpressionStatement{
		BaseNode: ast.BaseNode{Kind: ast.KindExpressionStmt},
		Expr:     &ast.IntLiteral{BaseNode: ast.BaseNode{Kind: ast.KindIntLiteral}, Value: 1},
	}
	prog := &ast.Program{Statements: []ast.Statement{stmt}}
	children := prog.GetChildren()
	require.Len(t, children, 1)
	assert.Same(t, ast.Node(stmt), children[0])
}

func TestVariableStringIncludesSigil(t *testing.T) {
	v := &ast.Variable{BaseNode: ast.BaseNode{Kind: ast.KindVariable}, Name: "x"}
	assert.Equal(t, "$x", v.String())
}
