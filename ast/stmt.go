package ast

import "fmt"

// BlockStatement is a `{ ... }` sequence of statements, used for function
// bodies and every control-flow body that isn't the single-statement
// alternative syntax.
type BlockStatement struct {
	BaseNode
	Statements []Statement `json:"statements"`
}

func (b *BlockStatement) GetChildren() []Node {
	children := make([]Node, 0, len(b.Statements))
	for _, s := range b.Statements {
		children = append(children, s)
	}
	return children
}
func (b *BlockStatement) String() string { return fmt.Sprintf("{%d stmts}", len(b.Statements)) }
func (b *BlockStatement) statementNode() {}

// ExpressionStatement wraps a bare expression used as a statement
// (followed by `;`).
type ExpressionStatement struct {
	BaseNode
	Expr Expression `json:"expr"`
}

func (e *ExpressionStatement) GetChildren() []Node { return []Node{e.Expr} }
func (e *ExpressionStatement) String() string      { return e.Expr.String() + ";" }
func (e *ExpressionStatement) statementNode()      {}

// IfStatement is `if (cond) then [elseifs] [else]`, covering both brace
// and alternative (`if: ... endif;`) syntaxes — the parser normalizes
// both into this one shape.
type IfStatement struct {
	BaseNode
	Condition Expression     `json:"condition"`
	Then      Statement      `json:"then"`
	ElseIfs   []*ElseIfClause `json:"elseifs,omitempty"`
	Else      Statement      `json:"else,omitempty"`
}

func (i *IfStatement) GetChildren() []Node {
	children := []Node{i.Condition, i.Then}
	for _, e := range i.ElseIfs {
		children = append(children, e)
	}
	if i.Else != nil {
		children = append(children, i.Else)
	}
	return children
}
func (i *IfStatement) String() string { return fmt.Sprintf("if (%s) ...", i.Condition) }
func (i *IfStatement) statementNode() {}

// ElseIfClause is one `elseif (cond) body` clause of an IfStatement.
type ElseIfClause struct {
	BaseNode
	Condition Expression `json:"condition"`
	Body      Statement  `json:"body"`
}

func (e *ElseIfClause) GetChildren() []Node { return []Node{e.Condition, e.Body} }
func (e *ElseIfClause) String() string      { return fmt.Sprintf("elseif (%s) ...", e.Condition) }

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	BaseNode
	Condition Expression `json:"condition"`
	Body      Statement  `json:"body"`
}

func (w *WhileStatement) GetChildren() []Node { return []Node{w.Condition, w.Body} }
func (w *WhileStatement) String() string      { return fmt.Sprintf("while (%s) ...", w.Condition) }
func (w *WhileStatement) statementNode()      {}

// DoWhileStatement is `do body while (cond);`.
type DoWhileStatement struct {
	BaseNode
	Body      Statement  `json:"body"`
	Condition Expression `json:"condition"`
}

func (d *DoWhileStatement) GetChildren() []Node { return []Node{d.Body, d.Condition} }
func (d *DoWhileStatement) String() string      { return fmt.Sprintf("do ... while (%s)", d.Condition) }
func (d *DoWhileStatement) statementNode()      {}

// ForStatement is `for (init; cond; update) body`; each clause is a list
// since PHP permits comma-separated expressions in all three positions.
type ForStatement struct {
	BaseNode
	Init   []Expression `json:"init,omitempty"`
	Cond   []Expression `json:"cond,omitempty"`
	Update []Expression `json:"update,omitempty"`
	Body   Statement    `json:"body"`
}

func (f *ForStatement) GetChildren() []Node {
	var children []Node
	for _, e := range f.Init {
		children = append(children, e)
	}
	for _, e := range f.Cond {
		children = append(children, e)
	}
	for _, e := range f.Update {
		children = append(children, e)
	}
	children = append(children, f.Body)
	return children
}
func (f *ForStatement) String() string { return "for (...) ..." }
func (f *ForStatement) statementNode() {}

// ForeachStatement is `foreach (expr as [key =>] value) body`.
type ForeachStatement struct {
	BaseNode
	Subject     Expression `json:"subject"`
	Key         Expression `json:"key,omitempty"`
	Value       Expression `json:"value"`
	ByReference bool       `json:"by_reference,omitempty"`
	Body        Statement  `json:"body"`
}

func (f *ForeachStatement) GetChildren() []Node {
	children := []Node{f.Subject}
	if f.Key != nil {
		children = append(children, f.Key)
	}
	children = append(children, f.Value, f.Body)
	return children
}
func (f *ForeachStatement) String() string { return fmt.Sprintf("foreach (%s as ...) ...", f.Subject) }
func (f *ForeachStatement) statementNode() {}

// SwitchStatement is `switch (subject) { cases }`.
type SwitchStatement struct {
	BaseNode
	Subject Expression    `json:"subject"`
	Cases   []*CaseClause `json:"cases"`
}

func (s *SwitchStatement) GetChildren() []Node {
	children := []Node{s.Subject}
	for _, c := range s.Cases {
		children = append(children, c)
	}
	return children
}
func (s *SwitchStatement) String() string { return fmt.Sprintf("switch (%s) {...}", s.Subject) }
func (s *SwitchStatement) statementNode() {}

// CaseClause is one `case expr:` or `default:` arm of a switch; Test is
// nil for `default`.
type CaseClause struct {
	BaseNode
	Test       Expression  `json:"test,omitempty"`
	Statements []Statement `json:"statements"`
}

func (c *CaseClause) GetChildren() []Node {
	var children []Node
	if c.Test != nil {
		children = append(children, c.Test)
	}
	for _, s := range c.Statements {
		children = append(children, s)
	}
	return children
}
func (c *CaseClause) String() string {
	if c.Test != nil {
		return fmt.Sprintf("case %s:", c.Test)
	}
	return "default:"
}

// TryStatement is `try body catches [finally]`.
type TryStatement struct {
	BaseNode
	Body    *BlockStatement  `json:"body"`
	Catches []*CatchClause   `json:"catches,omitempty"`
	Finally *BlockStatement  `json:"finally,omitempty"`
}

func (t *TryStatement) GetChildren() []Node {
	children := []Node{t.Body}
	for _, c := range t.Catches {
		children = append(children, c)
	}
	if t.Finally != nil {
		children = append(children, t.Finally)
	}
	return children
}
func (t *TryStatement) String() string { return "try {...}" }
func (t *TryStatement) statementNode() {}

// CatchClause is `catch (Type1|Type2 $var) body`; Types permits the
// PHP 7.1+ multi-catch union. Variable is empty when the catch omits a
// binding (`catch (Exception) {...}`, allowed since PHP 8.0).
type CatchClause struct {
	BaseNode
	Types    []*Name         `json:"types"`
	Variable string          `json:"variable,omitempty"`
	Body     *BlockStatement `json:"body"`
}

func (c *CatchClause) GetChildren() []Node {
	children := make([]Node, 0, len(c.Types)+1)
	for _, t := range c.Types {
		children = append(children, t)
	}
	children = append(children, c.Body)
	return children
}
func (c *CatchClause) String() string { return "catch (...) {...}" }

// ReturnStatement is `return [expr];`.
type ReturnStatement struct {
	BaseNode
	Value Expression `json:"value,omitempty"`
}

func (r *ReturnStatement) GetChildren() []Node {
	if r.Value != nil {
		return []Node{r.Value}
	}
	return nil
}
func (r *ReturnStatement) String() string {
	if r.Value != nil {
		return "return " + r.Value.String() + ";"
	}
	return "return;"
}
func (r *ReturnStatement) statementNode() {}

// ThrowStatement is `throw expr;` (PHP 8 made throw a statement again in
// addition to ThrowExpression's expression form; both are kept since the
// grammar still allows `throw` inside an expression position via the
// expression node, and as a top-level statement via this one).
type ThrowStatement struct {
	BaseNode
	Value Expression `json:"value"`
}

func (t *ThrowStatement) GetChildren() []Node { return []Node{t.Value} }
func (t *ThrowStatement) String() string      { return "throw " + t.Value.String() + ";" }
func (t *ThrowStatement) statementNode()      {}

// ThrowExpression is `throw expr` used in expression position (e.g.
// `$x ?? throw new Error()`), added in PHP 8.0.
type ThrowExpression struct {
	BaseNode
	Value Expression `json:"value"`
}

func (t *ThrowExpression) GetChildren() []Node { return []Node{t.Value} }
func (t *ThrowExpression) String() string      { return "throw " + t.Value.String() }
func (t *ThrowExpression) expressionNode()     {}

// BreakStatement is `break [n];`.
type BreakStatement struct {
	BaseNode
	Level Expression `json:"level,omitempty"`
}

func (b *BreakStatement) GetChildren() []Node {
	if b.Level != nil {
		return []Node{b.Level}
	}
	return nil
}
func (b *BreakStatement) String() string { return "break;" }
func (b *BreakStatement) statementNode() {}

// ContinueStatement is `continue [n];`.
type ContinueStatement struct {
	BaseNode
	Level Expression `json:"level,omitempty"`
}

func (c *ContinueStatement) GetChildren() []Node {
	if c.Level != nil {
		return []Node{c.Level}
	}
	return nil
}
func (c *ContinueStatement) String() string { return "continue;" }
func (c *ContinueStatement) statementNode() {}

// GotoStatement is `goto label;`.
type GotoStatement struct {
	BaseNode
	Label string `json:"label"`
}

func (g *GotoStatement) GetChildren() []Node { return nil }
func (g *GotoStatement) String() string      { return "goto " + g.Label + ";" }
func (g *GotoStatement) statementNode()      {}

// LabelStatement is `label:`, the target of a goto.
type LabelStatement struct {
	BaseNode
	Name string `json:"name"`
}

func (l *LabelStatement) GetChildren() []Node { return nil }
func (l *LabelStatement) String() string      { return l.Name + ":" }
func (l *LabelStatement) statementNode()      {}

// EchoStatement is `echo expr, expr, ...;`.
type EchoStatement struct {
	BaseNode
	Values []Expression `json:"values"`
}

func (e *EchoStatement) GetChildren() []Node {
	children := make([]Node, 0, len(e.Values))
	for _, v := range e.Values {
		children = append(children, v)
	}
	return children
}
func (e *EchoStatement) String() string { return fmt.Sprintf("echo %d values;", len(e.Values)) }
func (e *EchoStatement) statementNode() {}

// GlobalStatement is `global $a, $b;`.
type GlobalStatement struct {
	BaseNode
	Variables []*Variable `json:"variables"`
}

func (g *GlobalStatement) GetChildren() []Node {
	children := make([]Node, 0, len(g.Variables))
	for _, v := range g.Variables {
		children = append(children, v)
	}
	return children
}
func (g *GlobalStatement) String() string { return "global ...;" }
func (g *GlobalStatement) statementNode() {}

// StaticVarDeclStatement is `static $a [= init], $b [= init];` — a
// function-local static variable declaration, distinct from ConstDecl and
// from the `static` modifier on a method/property.
type StaticVarDeclStatement struct {
	BaseNode
	Declarations []*StaticVarClause `json:"declarations"`
}

func (s *StaticVarDeclStatement) GetChildren() []Node {
	children := make([]Node, 0, len(s.Declarations))
	for _, d := range s.Declarations {
		children = append(children, d)
	}
	return children
}
func (s *StaticVarDeclStatement) String() string { return "static ...;" }
func (s *StaticVarDeclStatement) statementNode()  {}

// StaticVarClause is one `$name [= init]` clause of a StaticVarDeclStatement.
type StaticVarClause struct {
	BaseNode
	Name    string     `json:"name"`
	Default Expression `json:"default,omitempty"`
}

func (s *StaticVarClause) GetChildren() []Node {
	if s.Default != nil {
		return []Node{s.Default}
	}
	return nil
}
func (s *StaticVarClause) String() string {
	if s.Default != nil {
		return fmt.Sprintf("$%s = %s", s.Name, s.Default)
	}
	return "$" + s.Name
}

// InlineHTMLStatement is a run of literal output text outside `<?php ?>`
// tags, preserved verbatim as a statement in the tree (spec 3 invariant:
// the token sequence/HTML text must round-trip).
type InlineHTMLStatement struct {
	BaseNode
	Text string `json:"text"`
}

func (i *InlineHTMLStatement) GetChildren() []Node { return nil }
func (i *InlineHTMLStatement) String() string      { return i.Text }
func (i *InlineHTMLStatement) statementNode()      {}

// DeclareStatement is `declare(directive=value) [body];`.
type DeclareStatement struct {
	BaseNode
	Directives []*DeclareDirective `json:"directives"`
	Body       Statement           `json:"body,omitempty"`
}

func (d *DeclareStatement) GetChildren() []Node {
	children := make([]Node, 0, len(d.Directives)+1)
	for _, dir := range d.Directives {
		children = append(children, dir)
	}
	if d.Body != nil {
		children = append(children, d.Body)
	}
	return children
}
func (d *DeclareStatement) String() string { return "declare(...) ..." }
func (d *DeclareStatement) statementNode() {}

// DeclareDirective is one `name=value` clause of a declare statement.
type DeclareDirective struct {
	BaseNode
	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

func (d *DeclareDirective) GetChildren() []Node { return []Node{d.Value} }
func (d *DeclareDirective) String() string       { return fmt.Sprintf("%s=%s", d.Name, d.Value) }

// UnsetStatement is `unset(expr, ...);`.
type UnsetStatement struct {
	BaseNode
	Targets []Expression `json:"targets"`
}

func (u *UnsetStatement) GetChildren() []Node {
	children := make([]Node, 0, len(u.Targets))
	for _, t := range u.Targets {
		children = append(children, t)
	}
	return children
}
func (u *UnsetStatement) String() string { return "unset(...);" }
func (u *UnsetStatement) statementNode() {}

// NamespaceStatement is `namespace Name;` or `namespace Name { ... }`;
// Body is nil for the unbraced, rest-of-file form.
type NamespaceStatement struct {
	BaseNode
	Name *Name       `json:"name,omitempty"`
	Body []Statement `json:"body,omitempty"`
}

func (n *NamespaceStatement) GetChildren() []Node {
	var children []Node
	if n.Name != nil {
		children = append(children, n.Name)
	}
	for _, s := range n.Body {
		children = append(children, s)
	}
	return children
}
func (n *NamespaceStatement) String() string {
	if n.Name != nil {
		return "namespace " + n.Name.Text + ";"
	}
	return "namespace;"
}
func (n *NamespaceStatement) statementNode()   {}
func (n *NamespaceStatement) declarationNode() {}

// UseStatement is a top-level `use Name [as Alias];` import, or the
// `use function`/`use const` variants (UseKind records which).
type UseStatement struct {
	BaseNode
	UseKind string       `json:"use_kind"` // "", "function", "const"
	Clauses []*UseClause `json:"clauses"`
}

func (u *UseStatement) GetChildren() []Node {
	children := make([]Node, 0, len(u.Clauses))
	for _, c := range u.Clauses {
		children = append(children, c)
	}
	return children
}
func (u *UseStatement) String() string { return "use ...;" }
func (u *UseStatement) statementNode() {}

// UseClause is one `Name [as Alias]` clause of a use import.
type UseClause struct {
	BaseNode
	Name  *Name  `json:"name"`
	Alias string `json:"alias,omitempty"`
}

func (u *UseClause) GetChildren() []Node { return []Node{u.Name} }
func (u *UseClause) String() string {
	if u.Alias != "" {
		return fmt.Sprintf("%s as %s", u.Name.Text, u.Alias)
	}
	return u.Name.Text
}

// GroupUseStatement is `use Prefix\{Clause1, Clause2 as Alias};`
// (spec: namespace group-use, supplementing the single-alias `use` form).
type GroupUseStatement struct {
	BaseNode
	UseKind string       `json:"use_kind"` // "", "function", "const" — default for the whole group
	Prefix  *Name        `json:"prefix"`
	Clauses []*UseClause `json:"clauses"`
}

func (g *GroupUseStatement) GetChildren() []Node {
	children := []Node{g.Prefix}
	for _, c := range g.Clauses {
		children = append(children, c)
	}
	return children
}
func (g *GroupUseStatement) String() string { return fmt.Sprintf("use %s\\{...};", g.Prefix.Text) }
func (g *GroupUseStatement) statementNode() {}

// ConstStatement is a top-level `const NAME = value, ...;` declaration.
type ConstStatement struct {
	BaseNode
	Constants []*ConstClause `json:"constants"`
}

func (c *ConstStatement) GetChildren() []Node {
	children := make([]Node, 0, len(c.Constants))
	for _, cl := range c.Constants {
		children = append(children, cl)
	}
	return children
}
func (c *ConstStatement) String() string { return "const ...;" }
func (c *ConstStatement) statementNode()  {}
func (c *ConstStatement) declarationNode() {}

// ConstClause is one `NAME = value` clause.
type ConstClause struct {
	BaseNode
	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

func (c *ConstClause) GetChildren() []Node { return []Node{c.Value} }
func (c *ConstClause) String() string      { return fmt.Sprintf("%s = %s", c.Name, c.Value) }
