package ast

import "fmt"

// BinaryExpression covers every infix operator the Pratt parser's binary
// table knows about (arithmetic, comparison, logical, bitwise, string
// concatenation) plus `**`. Coalesce is not represented here: `??`
// short-circuits evaluation of its right operand, and the parser builds a
// CoalesceExpression for it instead.
type BinaryExpression struct {
	BaseNode
	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func (b *BinaryExpression) GetChildren() []Node { return []Node{b.Left, b.Right} }
func (b *BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Operator, b.Right)
}
func (b *BinaryExpression) expressionNode() {}

// UnaryExpression covers prefix operators: `!`, `-`, `+`, `~`, `++`, `--`.
type UnaryExpression struct {
	BaseNode
	Operator string     `json:"operator"`
	Operand  Expression `json:"operand"`
}

func (u *UnaryExpression) GetChildren() []Node { return []Node{u.Operand} }
func (u *UnaryExpression) String() string      { return u.Operator + u.Operand.String() }
func (u *UnaryExpression) expressionNode()     {}

// PostfixExpression covers postfix `++`/`--`.
type PostfixExpression struct {
	BaseNode
	Operator string     `json:"operator"`
	Operand  Expression `json:"operand"`
}

func (p *PostfixExpression) GetChildren() []Node { return []Node{p.Operand} }
func (p *PostfixExpression) String() string      { return p.Operand.String() + p.Operator }
func (p *PostfixExpression) expressionNode()     {}

// AssignmentExpression covers `=` and every compound-assignment operator,
// plus by-reference assignment (`$a =& $b`, IsReference true).
type AssignmentExpression struct {
	BaseNode
	Operator    string     `json:"operator"`
	Target      Expression `json:"target"`
	Value       Expression `json:"value"`
	IsReference bool       `json:"is_reference,omitempty"`
}

func (a *AssignmentExpression) GetChildren() []Node { return []Node{a.Target, a.Value} }
func (a *AssignmentExpression) String() string {
	if a.IsReference {
		return fmt.Sprintf("(%s =& %s)", a.Target, a.Value)
	}
	return fmt.Sprintf("(%s %s %s)", a.Target, a.Operator, a.Value)
}
func (a *AssignmentExpression) expressionNode() {}

// TernaryExpression is the full `cond ? then : else` form.
type TernaryExpression struct {
	BaseNode
	Condition Expression `json:"condition"`
	Then      Expression `json:"then"`
	Else      Expression `json:"else"`
}

func (t *TernaryExpression) GetChildren() []Node { return []Node{t.Condition, t.Then, t.Else} }
func (t *TernaryExpression) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", t.Condition, t.Then, t.Else)
}
func (t *TernaryExpression) expressionNode() {}

// ShortTernaryExpression is the Elvis form `cond ?: else` (spec distinguishes
// it from TernaryExpression since it has no Then operand).
type ShortTernaryExpression struct {
	BaseNode
	Condition Expression `json:"condition"`
	Else      Expression `json:"else"`
}

func (t *ShortTernaryExpression) GetChildren() []Node { return []Node{t.Condition, t.Else} }
func (t *ShortTernaryExpression) String() string {
	return fmt.Sprintf("(%s ?: %s)", t.Condition, t.Else)
}
func (t *ShortTernaryExpression) expressionNode() {}

// CoalesceExpression is `left ?? right`.
type CoalesceExpression struct {
	BaseNode
	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func (c *CoalesceExpression) GetChildren() []Node { return []Node{c.Left, c.Right} }
func (c *CoalesceExpression) String() string      { return fmt.Sprintf("(%s ?? %s)", c.Left, c.Right) }
func (c *CoalesceExpression) expressionNode()     {}

// CastExpression is `(type) expr`; Type is one of the parenthesized-cast
// spellings ("int", "float", "string", "array", "object", "bool", "unset").
type CastExpression struct {
	BaseNode
	Type   string     `json:"type"`
	Operand Expression `json:"operand"`
}

func (c *CastExpression) GetChildren() []Node { return []Node{c.Operand} }
func (c *CastExpression) String() string      { return fmt.Sprintf("(%s)%s", c.Type, c.Operand) }
func (c *CastExpression) expressionNode()     {}

// ErrorSuppressionExpression is `@expr`.
type ErrorSuppressionExpression struct {
	BaseNode
	Operand Expression `json:"operand"`
}

func (e *ErrorSuppressionExpression) GetChildren() []Node { return []Node{e.Operand} }
func (e *ErrorSuppressionExpression) String() string      { return "@" + e.Operand.String() }
func (e *ErrorSuppressionExpression) expressionNode()     {}

// ReferenceExpression wraps an expression preceded by `&` in an argument,
// array item, or foreach-by-reference position.
type ReferenceExpression struct {
	BaseNode
	Operand Expression `json:"operand"`
}

func (r *ReferenceExpression) GetChildren() []Node { return []Node{r.Operand} }
func (r *ReferenceExpression) String() string      { return "&" + r.Operand.String() }
func (r *ReferenceExpression) expressionNode()     {}

// SpreadExpression is `...expr` in an argument or array-literal position.
type SpreadExpression struct {
	BaseNode
	Operand Expression `json:"operand"`
}

func (s *SpreadExpression) GetChildren() []Node { return []Node{s.Operand} }
func (s *SpreadExpression) String() string      { return "..." + s.Operand.String() }
func (s *SpreadExpression) expressionNode()     {}

// NamedArgument is `name: expr` in a call's argument list.
type NamedArgument struct {
	BaseNode
	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

func (n *NamedArgument) GetChildren() []Node { return []Node{n.Value} }
func (n *NamedArgument) String() string      { return fmt.Sprintf("%s: %s", n.Name, n.Value) }
func (n *NamedArgument) expressionNode()     {}

// ArrayExpression is an `array(...)` or `[...]` literal.
type ArrayExpression struct {
	BaseNode
	Items     []*ArrayItem `json:"items"`
	ShortForm bool         `json:"short_form,omitempty"`
}

func (a *ArrayExpression) GetChildren() []Node {
	children := make([]Node, 0, len(a.Items))
	for _, it := range a.Items {
		children = append(children, it)
	}
	return children
}
func (a *ArrayExpression) String() string { return fmt.Sprintf("array(%d items)", len(a.Items)) }
func (a *ArrayExpression) expressionNode() {}

// ArrayItem is one `[key =>] value` entry of an array literal; Key is nil
// for a plain value entry. Spread and by-reference entries wrap Value in
// a SpreadExpression / ReferenceExpression instead of adding flags here.
type ArrayItem struct {
	BaseNode
	Key   Expression `json:"key,omitempty"`
	Value Expression `json:"value"`
}

func (a *ArrayItem) GetChildren() []Node {
	if a.Key != nil {
		return []Node{a.Key, a.Value}
	}
	return []Node{a.Value}
}
func (a *ArrayItem) String() string {
	if a.Key != nil {
		return fmt.Sprintf("%s => %s", a.Key, a.Value)
	}
	return a.Value.String()
}

// ListExpression is the `list(...)` / `[...]` destructuring target form,
// distinguished from ArrayExpression because it only appears on the
// left-hand side of an assignment or inside foreach.
type ListExpression struct {
	BaseNode
	Items     []*ArrayItem `json:"items"`
	ShortForm bool         `json:"short_form,omitempty"`
}

func (l *ListExpression) GetChildren() []Node {
	children := make([]Node, 0, len(l.Items))
	for _, it := range l.Items {
		if it != nil {
			children = append(children, it)
		}
	}
	return children
}
func (l *ListExpression) String() string  { return fmt.Sprintf("list(%d items)", len(l.Items)) }
func (l *ListExpression) expressionNode() {}

// NewExpression is `new Class(args)`, `new $var(args)`, or
// `new class(...) { ... }` (the last represented with Class holding an
// *AnonClassExpression).
type NewExpression struct {
	BaseNode
	Class     Expression   `json:"class"`
	Arguments []Expression `json:"arguments,omitempty"`
}

func (n *NewExpression) GetChildren() []Node {
	children := []Node{n.Class}
	for _, a := range n.Arguments {
		children = append(children, a)
	}
	return children
}
func (n *NewExpression) String() string { return fmt.Sprintf("new %s(...)", n.Class) }
func (n *NewExpression) expressionNode() {}

// CloneExpression is `clone expr`.
type CloneExpression struct {
	BaseNode
	Operand Expression `json:"operand"`
}

func (c *CloneExpression) GetChildren() []Node { return []Node{c.Operand} }
func (c *CloneExpression) String() string      { return "clone " + c.Operand.String() }
func (c *CloneExpression) expressionNode()     {}

// InstanceofExpression is `expr instanceof ClassOrExpr`.
type InstanceofExpression struct {
	BaseNode
	Operand Expression `json:"operand"`
	Class   Expression `json:"class"`
}

func (i *InstanceofExpression) GetChildren() []Node { return []Node{i.Operand, i.Class} }
func (i *InstanceofExpression) String() string {
	return fmt.Sprintf("(%s instanceof %s)", i.Operand, i.Class)
}
func (i *InstanceofExpression) expressionNode() {}

// IncludeKind distinguishes the four include/require spellings, which
// differ only in fatality and cache behavior, not syntax.
type IncludeKind int

const (
	IncludeInclude IncludeKind = iota
	IncludeIncludeOnce
	IncludeRequire
	IncludeRequireOnce
)

func (k IncludeKind) String() string {
	switch k {
	case IncludeInclude:
		return "include"
	case IncludeIncludeOnce:
		return "include_once"
	case IncludeRequire:
		return "require"
	case IncludeRequireOnce:
		return "require_once"
	default:
		return "include"
	}
}

// IncludeExpression is `include/require[_once] expr`.
type IncludeExpression struct {
	BaseNode
	IncludeKind IncludeKind `json:"include_kind"`
	Operand     Expression  `json:"operand"`
}

func (i *IncludeExpression) GetChildren() []Node { return []Node{i.Operand} }
func (i *IncludeExpression) String() string {
	return fmt.Sprintf("%s %s", i.IncludeKind, i.Operand)
}
func (i *IncludeExpression) expressionNode() {}

// ClosureExpression is `function(...) use (...) { ... }`, optionally
// `static`.
type ClosureExpression struct {
	BaseNode
	Parameters       []*Parameter   `json:"parameters"`
	Uses             []*ClosureUse  `json:"uses,omitempty"`
	ReturnType       Type           `json:"return_type,omitempty"`
	Body             *BlockStatement `json:"body"`
	IsStatic         bool           `json:"is_static,omitempty"`
	ReturnsReference bool           `json:"returns_reference,omitempty"`
	IsGenerator      bool           `json:"is_generator,omitempty"`
}

func (c *ClosureExpression) GetChildren() []Node {
	var children []Node
	for _, p := range c.Parameters {
		children = append(children, p)
	}
	for _, u := range c.Uses {
		children = append(children, u)
	}
	if c.ReturnType != nil {
		children = append(children, c.ReturnType)
	}
	children = append(children, c.Body)
	return children
}
func (c *ClosureExpression) String() string { return "function(...) {...}" }
func (c *ClosureExpression) expressionNode() {}

// ClosureUse is one `use (&$x)` capture entry of a closure.
type ClosureUse struct {
	BaseNode
	Name        string `json:"name"`
	IsReference bool   `json:"is_reference,omitempty"`
}

func (u *ClosureUse) GetChildren() []Node { return nil }
func (u *ClosureUse) String() string {
	if u.IsReference {
		return "&$" + u.Name
	}
	return "$" + u.Name
}

// ArrowFunctionExpression is `fn(...) => expr`, whose body is always a
// single expression (spec's arrow-function subset of closures) and which
// implicitly captures its enclosing scope by value.
type ArrowFunctionExpression struct {
	BaseNode
	Parameters       []*Parameter `json:"parameters"`
	ReturnType       Type         `json:"return_type,omitempty"`
	Body             Expression   `json:"body"`
	IsStatic         bool         `json:"is_static,omitempty"`
	ReturnsReference bool         `json:"returns_reference,omitempty"`
}

func (a *ArrowFunctionExpression) GetChildren() []Node {
	var children []Node
	for _, p := range a.Parameters {
		children = append(children, p)
	}
	if a.ReturnType != nil {
		children = append(children, a.ReturnType)
	}
	children = append(children, a.Body)
	return children
}
func (a *ArrowFunctionExpression) String() string { return fmt.Sprintf("fn(...) => %s", a.Body) }
func (a *ArrowFunctionExpression) expressionNode() {}

// FunctionCallExpression is `callee(args)`, where Callee may be a Name
// (plain function call), a Variable (`$fn(...)`), or any other expression
// that syntactically precedes a call's parens.
type FunctionCallExpression struct {
	BaseNode
	Callee    Expression   `json:"callee"`
	Arguments []Expression `json:"arguments,omitempty"`
}

func (f *FunctionCallExpression) GetChildren() []Node {
	children := []Node{f.Callee}
	for _, a := range f.Arguments {
		children = append(children, a)
	}
	return children
}
func (f *FunctionCallExpression) String() string { return fmt.Sprintf("%s(...)", f.Callee) }
func (f *FunctionCallExpression) expressionNode() {}

// FirstClassCallableExpression is the PHP 8.1 `foo(...)`,
// `$obj->method(...)`, `Class::method(...)` syntax that creates a Closure
// from a named callable without invoking it; Callee holds whichever call
// shape (Name, MemberAccessExpression target, StaticMemberAccessExpression
// target) precedes the literal `...` argument list.
type FirstClassCallableExpression struct {
	BaseNode
	Callee Expression `json:"callee"`
}

func (f *FirstClassCallableExpression) GetChildren() []Node { return []Node{f.Callee} }
func (f *FirstClassCallableExpression) String() string      { return fmt.Sprintf("%s(...)", f.Callee) }
func (f *FirstClassCallableExpression) expressionNode()      {}

// MemberAccessExpression is `obj->member`, used both standalone (property
// read) and as the callee shape a MethodCall wraps when followed by `(`.
type MemberAccessExpression struct {
	BaseNode
	Object   Expression `json:"object"`
	Member   Expression `json:"member"` // Name for `->foo`, Expression for `->{$expr}`
	Nullsafe bool       `json:"nullsafe,omitempty"`
}

func (m *MemberAccessExpression) GetChildren() []Node { return []Node{m.Object, m.Member} }
func (m *MemberAccessExpression) String() string {
	if m.Nullsafe {
		return fmt.Sprintf("%s?->%s", m.Object, m.Member)
	}
	return fmt.Sprintf("%s->%s", m.Object, m.Member)
}
func (m *MemberAccessExpression) expressionNode() {}

// MethodCallExpression is `obj->method(args)`.
type MethodCallExpression struct {
	BaseNode
	Object    Expression   `json:"object"`
	Method    Expression   `json:"method"`
	Arguments []Expression `json:"arguments,omitempty"`
	Nullsafe  bool         `json:"nullsafe,omitempty"`
}

func (m *MethodCallExpression) GetChildren() []Node {
	children := []Node{m.Object, m.Method}
	for _, a := range m.Arguments {
		children = append(children, a)
	}
	return children
}
func (m *MethodCallExpression) String() string {
	if m.Nullsafe {
		return fmt.Sprintf("%s?->%s(...)", m.Object, m.Method)
	}
	return fmt.Sprintf("%s->%s(...)", m.Object, m.Method)
}
func (m *MethodCallExpression) expressionNode() {}

// StaticMemberAccessExpression is `Class::$prop` (static property fetch)
// or `Class::CONST` (class constant fetch), distinguished by whether
// Member is a Variable or a Name.
type StaticMemberAccessExpression struct {
	BaseNode
	Class  Expression `json:"class"`
	Member Expression `json:"member"`
}

func (s *StaticMemberAccessExpression) GetChildren() []Node { return []Node{s.Class, s.Member} }
func (s *StaticMemberAccessExpression) String() string {
	return fmt.Sprintf("%s::%s", s.Class, s.Member)
}
func (s *StaticMemberAccessExpression) expressionNode() {}

// StaticCallExpression is `Class::method(args)`.
type StaticCallExpression struct {
	BaseNode
	Class     Expression   `json:"class"`
	Method    Expression   `json:"method"`
	Arguments []Expression `json:"arguments,omitempty"`
}

func (s *StaticCallExpression) GetChildren() []Node {
	children := []Node{s.Class, s.Method}
	for _, a := range s.Arguments {
		children = append(children, a)
	}
	return children
}
func (s *StaticCallExpression) String() string { return fmt.Sprintf("%s::%s(...)", s.Class, s.Method) }
func (s *StaticCallExpression) expressionNode() {}

// ArrayAccessExpression is `expr[offset]`; Offset is nil for the
// append-to-array form `expr[]` used on an assignment target.
type ArrayAccessExpression struct {
	BaseNode
	Array  Expression `json:"array"`
	Offset Expression `json:"offset,omitempty"`
}

func (a *ArrayAccessExpression) GetChildren() []Node {
	if a.Offset != nil {
		return []Node{a.Array, a.Offset}
	}
	return []Node{a.Array}
}
func (a *ArrayAccessExpression) String() string {
	if a.Offset != nil {
		return fmt.Sprintf("%s[%s]", a.Array, a.Offset)
	}
	return fmt.Sprintf("%s[]", a.Array)
}
func (a *ArrayAccessExpression) expressionNode() {}

// YieldExpression is `yield`, `yield expr`, or `yield key => value`.
type YieldExpression struct {
	BaseNode
	Key   Expression `json:"key,omitempty"`
	Value Expression `json:"value,omitempty"`
}

func (y *YieldExpression) GetChildren() []Node {
	var children []Node
	if y.Key != nil {
		children = append(children, y.Key)
	}
	if y.Value != nil {
		children = append(children, y.Value)
	}
	return children
}
func (y *YieldExpression) String() string {
	switch {
	case y.Key != nil:
		return fmt.Sprintf("yield %s => %s", y.Key, y.Value)
	case y.Value != nil:
		return "yield " + y.Value.String()
	default:
		return "yield"
	}
}
func (y *YieldExpression) expressionNode() {}

// YieldFromExpression is `yield from expr` (spec: the lexer emits a plain
// Identifier for the contextual `from`; the parser recognizes it by
// symbol text right after a `yield` token).
type YieldFromExpression struct {
	BaseNode
	Operand Expression `json:"operand"`
}

func (y *YieldFromExpression) GetChildren() []Node { return []Node{y.Operand} }
func (y *YieldFromExpression) String() string      { return "yield from " + y.Operand.String() }
func (y *YieldFromExpression) expressionNode()     {}

// MatchExpression is the PHP 8 `match (subject) { arms }` expression.
type MatchExpression struct {
	BaseNode
	Subject Expression   `json:"subject"`
	Arms    []*MatchArm  `json:"arms"`
}

func (m *MatchExpression) GetChildren() []Node {
	children := []Node{m.Subject}
	for _, arm := range m.Arms {
		children = append(children, arm)
	}
	return children
}
func (m *MatchExpression) String() string { return fmt.Sprintf("match (%s) {...}", m.Subject) }
func (m *MatchExpression) expressionNode() {}

// MatchArm is one `conditions => result` arm; Conditions is empty for the
// `default` arm.
type MatchArm struct {
	BaseNode
	Conditions []Expression `json:"conditions,omitempty"`
	IsDefault  bool         `json:"is_default,omitempty"`
	Result     Expression   `json:"result"`
}

func (m *MatchArm) GetChildren() []Node {
	children := make([]Node, 0, len(m.Conditions)+1)
	for _, c := range m.Conditions {
		children = append(children, c)
	}
	children = append(children, m.Result)
	return children
}
func (m *MatchArm) String() string {
	if m.IsDefault {
		return fmt.Sprintf("default => %s", m.Result)
	}
	return fmt.Sprintf("%d conditions => %s", len(m.Conditions), m.Result)
}

// PrintExpression is `print expr`, which unlike `echo` is a true
// expression that evaluates to 1.
type PrintExpression struct {
	BaseNode
	Operand Expression `json:"operand"`
}

func (p *PrintExpression) GetChildren() []Node { return []Node{p.Operand} }
func (p *PrintExpression) String() string      { return "print " + p.Operand.String() }
func (p *PrintExpression) expressionNode()     {}

// ExitExpression is `exit`/`die`, optionally with a status/message operand.
type ExitExpression struct {
	BaseNode
	Operand Expression `json:"operand,omitempty"`
}

func (e *ExitExpression) GetChildren() []Node {
	if e.Operand != nil {
		return []Node{e.Operand}
	}
	return nil
}
func (e *ExitExpression) String() string {
	if e.Operand != nil {
		return fmt.Sprintf("exit(%s)", e.Operand)
	}
	return "exit"
}
func (e *ExitExpression) expressionNode() {}

// IssetExpression is `isset(expr, ...)`.
type IssetExpression struct {
	BaseNode
	Operands []Expression `json:"operands"`
}

func (i *IssetExpression) GetChildren() []Node {
	children := make([]Node, 0, len(i.Operands))
	for _, o := range i.Operands {
		children = append(children, o)
	}
	return children
}
func (i *IssetExpression) String() string  { return fmt.Sprintf("isset(%d args)", len(i.Operands)) }
func (i *IssetExpression) expressionNode() {}

// EmptyExpression is `empty(expr)`.
type EmptyExpression struct {
	BaseNode
	Operand Expression `json:"operand"`
}

func (e *EmptyExpression) GetChildren() []Node { return []Node{e.Operand} }
func (e *EmptyExpression) String() string      { return "empty(" + e.Operand.String() + ")" }
func (e *EmptyExpression) expressionNode()     {}

// EvalExpression is `eval(expr)`.
type EvalExpression struct {
	BaseNode
	Operand Expression `json:"operand"`
}

func (e *EvalExpression) GetChildren() []Node { return []Node{e.Operand} }
func (e *EvalExpression) String() string      { return "eval(" + e.Operand.String() + ")" }
func (e *EvalExpression) expressionNode()     {}

// ShellExecExpression is a backtick `` `cmd` `` shell-exec string, modeled
// like InterpolatedStringExpression since its contents interpolate the
// same way a double-quoted string's do.
type ShellExecExpression struct {
	BaseNode
	Parts []Expression `json:"parts"` // alternating StringLiteral / interpolated expr, never two literals adjacent
}

func (s *ShellExecExpression) GetChildren() []Node {
	children := make([]Node, 0, len(s.Parts))
	for _, p := range s.Parts {
		children = append(children, p)
	}
	return children
}
func (s *ShellExecExpression) String() string { return fmt.Sprintf("`%d parts`", len(s.Parts)) }
func (s *ShellExecExpression) expressionNode() {}

// InterpolatedStringExpression is a double-quoted or heredoc string that
// contains at least one interpolation: Parts holds literal and expression
// children in source order and never has two literal parts adjacent
// (spec 3 invariant), since the lexer ends a literal run only at an
// interpolation opener or the closing delimiter.
type InterpolatedStringExpression struct {
	BaseNode
	Parts    []Expression `json:"parts"`
	IsHeredoc bool        `json:"is_heredoc,omitempty"`
}

func (i *InterpolatedStringExpression) GetChildren() []Node {
	children := make([]Node, 0, len(i.Parts))
	for _, p := range i.Parts {
		children = append(children, p)
	}
	return children
}
func (i *InterpolatedStringExpression) String() string {
	return fmt.Sprintf("interpolated(%d parts)", len(i.Parts))
}
func (i *InterpolatedStringExpression) expressionNode() {}

// AnonClassExpression is `new class(args) extends X implements Y { ... }`.
type AnonClassExpression struct {
	BaseNode
	Arguments  []Expression  `json:"arguments,omitempty"`
	Extends    *Name         `json:"extends,omitempty"`
	Implements []*Name       `json:"implements,omitempty"`
	Members    []ClassMember `json:"members"`
	Attributes []*AttributeGroup `json:"attributes,omitempty"`
}

func (a *AnonClassExpression) GetChildren() []Node {
	var children []Node
	for _, arg := range a.Arguments {
		children = append(children, arg)
	}
	if a.Extends != nil {
		children = append(children, a.Extends)
	}
	for _, impl := range a.Implements {
		children = append(children, impl)
	}
	for _, m := range a.Members {
		children = append(children, m)
	}
	return children
}
func (a *AnonClassExpression) String() string { return "new class {...}" }
func (a *AnonClassExpression) expressionNode() {}
func (a *AnonClassExpression) SetAttributeGroups(groups []*AttributeGroup) { a.Attributes = groups }
