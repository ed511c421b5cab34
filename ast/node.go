package ast

import (
	"fmt"

	"github.com/phpcore/phpast/internal/interner"
	"github.com/phpcore/phpast/span"
)

// Node is implemented by every tree element. GetChildren is used by Walk
// and must return only direct children that are themselves Nodes (nil
// children are omitted, not returned as typed-nil interfaces).
type Node interface {
	GetID() uint32
	GetKind() Kind
	GetSpan() span.Span
	GetChildren() []Node
	String() string
}

// Statement marks a node usable wherever the grammar expects a statement.
type Statement interface {
	Node
	statementNode()
}

// Expression marks a node usable wherever the grammar expects an
// expression.
type Expression interface {
	Node
	expressionNode()
}

// Declaration marks a top-level or namespace-level declaration (spec 3
// "Declarations"): classes, interfaces, traits, enums, functions, and
// plain statements never implement this.
type Declaration interface {
	Node
	declarationNode()
}

// ClassMember marks a node usable as a member of a ClassLike body.
type ClassMember interface {
	Node
	classMemberNode()
}

// Type marks a node usable in type position (spec 4.4).
type Type interface {
	Node
	typeNode()
}

// Attributable is implemented by nodes that can carry a leading `#[...]`
// attribute list (spec 3 "Attributes").
type Attributable interface {
	Node
	SetAttributeGroups(groups []*AttributeGroup)
}

// BaseNode is embedded by every concrete node. It supplies the identity
// (ID, Kind, Span) every node must carry per spec 3's "every node carries
// {id: u32 monotonic, span}" requirement; concrete types provide their own
// GetChildren and String.
type BaseNode struct {
	ID   uint32
	Kind Kind
	Span span.Span
}

func (b *BaseNode) GetID() uint32        { return b.ID }
func (b *BaseNode) GetKind() Kind        { return b.Kind }
func (b *BaseNode) GetSpan() span.Span   { return b.Span }
func (b *BaseNode) GetChildren() []Node  { return nil }

// IDGen hands out the monotonically increasing node ids the parser stamps
// onto every node it builds. One IDGen is owned per parse, just like the
// Interner.
type IDGen struct {
	next uint32
}

// Next returns the next node id, starting from 1 (0 is reserved so a zero
// BaseNode is recognizably "never assigned").
func (g *IDGen) Next() uint32 {
	g.next++
	return g.next
}

// Program is the root of a parsed file: a flat sequence of top-level
// statements and declarations (namespace declarations, use imports, class
// and function declarations, and ordinary statements may all appear at
// this level, matching PHP's lack of a single top-level grammar rule).
type Program struct {
	BaseNode
	Statements []Statement `json:"statements"`
}

func (p *Program) GetChildren() []Node {
	children := make([]Node, 0, len(p.Statements))
	for _, s := range p.Statements {
		children = append(children, s)
	}
	return children
}

func (p *Program) String() string { return fmt.Sprintf("Program(%d stmts)", len(p.Statements)) }

// Missing is the placeholder the parser substitutes for an expression or
// statement it could not parse, so the rest of the tree stays well-formed
// and downstream passes never see a nil child (spec 4.3 "error recovery").
// It implements Statement, Expression, Declaration, ClassMember, and Type
// all at once so it can stand in for whatever the grammar expected.
type Missing struct {
	BaseNode
	Reason string `json:"reason,omitempty"`
}

func (m *Missing) GetChildren() []Node { return nil }
func (m *Missing) String() string      { return "<missing>" }
func (m *Missing) statementNode()      {}
func (m *Missing) expressionNode()     {}
func (m *Missing) declarationNode()    {}
func (m *Missing) classMemberNode()    {}
func (m *Missing) typeNode()           {}

// NameKind classifies how a Name was written, per spec 3's Unqualified /
// Qualified / FullyQualified / Relative distinction. Classification
// happens once, at parse time, from the token spelling alone.
type NameKind int

const (
	NameUnqualified   NameKind = iota // foo
	NameQualified                     // foo\bar
	NameFullyQualified                // \foo\bar
	NameRelative                      // namespace\foo
)

func (k NameKind) String() string {
	switch k {
	case NameUnqualified:
		return "Unqualified"
	case NameQualified:
		return "Qualified"
	case NameFullyQualified:
		return "FullyQualified"
	case NameRelative:
		return "Relative"
	default:
		return "Unknown"
	}
}

// Name is a (possibly namespaced) identifier appearing in expression,
// type, or declaration position: a class name, function name, constant
// name, or namespace path.
type Name struct {
	BaseNode
	Parts    []interner.Symbol `json:"-"`
	Text     string            `json:"text"` // resolved, human-readable form for debugging/serialization
	NameKind NameKind          `json:"name_kind"`
}

func (n *Name) GetChildren() []Node { return nil }
func (n *Name) String() string      { return n.Text }
func (n *Name) expressionNode()     {}
func (n *Name) typeNode()           {}

// Variable is a `$name` reference. Variable variables (`$$name`,
// `${expr}`) store the dynamic name expression in NameExpr instead of Name.
type Variable struct {
	BaseNode
	Name     string     `json:"name,omitempty"`
	NameExpr Expression `json:"name_expr,omitempty"`
}

func (v *Variable) GetChildren() []Node {
	if v.NameExpr != nil {
		return []Node{v.NameExpr}
	}
	return nil
}

func (v *Variable) String() string {
	if v.NameExpr != nil {
		return fmt.Sprintf("${%s}", v.NameExpr.String())
	}
	return "$" + v.Name
}

func (v *Variable) expressionNode() {}

// IntLiteral is an integer literal; Raw preserves the original spelling
// (with any digit separators) for round-tripping diagnostics.
type IntLiteral struct {
	BaseNode
	Value int64  `json:"value"`
	Raw   string `json:"raw"`
}

func (n *IntLiteral) GetChildren() []Node { return nil }
func (n *IntLiteral) String() string      { return n.Raw }
func (n *IntLiteral) expressionNode()     {}

// FloatLiteral is a floating-point literal.
type FloatLiteral struct {
	BaseNode
	Value float64 `json:"value"`
	Raw   string  `json:"raw"`
}

func (n *FloatLiteral) GetChildren() []Node { return nil }
func (n *FloatLiteral) String() string      { return n.Raw }
func (n *FloatLiteral) expressionNode()     {}

// StringLiteral is a string with no interpolation: a single-quoted string
// or a double-quoted/heredoc string that collapsed to one literal chunk
// (spec 3 "single-literal-chunk collapse").
type StringLiteral struct {
	BaseNode
	Value string `json:"value"`
	Raw   string `json:"raw"`
}

func (n *StringLiteral) GetChildren() []Node { return nil }
func (n *StringLiteral) String() string      { return n.Raw }
func (n *StringLiteral) expressionNode()     {}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	BaseNode
	Value bool `json:"value"`
}

func (n *BoolLiteral) GetChildren() []Node { return nil }
func (n *BoolLiteral) String() string {
	if n.Value {
		return "true"
	}
	return "false"
}
func (n *BoolLiteral) expressionNode() {}

// NullLiteral is the `null` literal.
type NullLiteral struct {
	BaseNode
}

func (n *NullLiteral) GetChildren() []Node { return nil }
func (n *NullLiteral) String() string      { return "null" }
func (n *NullLiteral) expressionNode()     {}

// MagicConstantExpression is one of `__LINE__`, `__FILE__`, `__DIR__`,
// `__CLASS__`, `__TRAIT__`, `__METHOD__`, `__FUNCTION__`, `__NAMESPACE__`.
// Resolution to an actual value is left to a later compilation stage;
// this node only records which constant was written.
type MagicConstantExpression struct {
	BaseNode
	Name string `json:"name"`
}

func (m *MagicConstantExpression) GetChildren() []Node { return nil }
func (m *MagicConstantExpression) String() string      { return m.Name }
func (m *MagicConstantExpression) expressionNode()     {}
