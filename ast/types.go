package ast

import "strings"

// NamedType is a class/interface name or a built-in keyword type atom
// (`int`, `string`, `self`, `static`, etc.) used in type position.
type NamedType struct {
	BaseNode
	Name *Name `json:"name"`
}

func (n *NamedType) GetChildren() []Node { return []Node{n.Name} }
func (n *NamedType) String() string      { return n.Name.Text }
func (n *NamedType) typeNode()           {}

// NullableType is `?T` (spec 4.4: leading `?` only, cannot combine
// directly with union or intersection).
type NullableType struct {
	BaseNode
	Inner Type `json:"inner"`
}

func (n *NullableType) GetChildren() []Node { return []Node{n.Inner} }
func (n *NullableType) String() string      { return "?" + n.Inner.String() }
func (n *NullableType) typeNode()           {}

// UnionType is `T1|T2|...` (spec 4.4: lowest type-grammar precedence).
type UnionType struct {
	BaseNode
	Members []Type `json:"members"`
}

func (u *UnionType) GetChildren() []Node {
	children := make([]Node, 0, len(u.Members))
	for _, m := range u.Members {
		children = append(children, m)
	}
	return children
}
func (u *UnionType) String() string {
	parts := make([]string, len(u.Members))
	for i, m := range u.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, "|")
}
func (u *UnionType) typeNode() {}

// IntersectionType is `T1&T2&...` (spec 4.4: binds tighter than union;
// only valid where the grammar is already in type position, so the
// parser must disambiguate `&` here from the reference/bitwise-and
// operator by context).
type IntersectionType struct {
	BaseNode
	Members []Type `json:"members"`
}

func (i *IntersectionType) GetChildren() []Node {
	children := make([]Node, 0, len(i.Members))
	for _, m := range i.Members {
		children = append(children, m)
	}
	return children
}
func (i *IntersectionType) String() string {
	parts := make([]string, len(i.Members))
	for idx, m := range i.Members {
		parts[idx] = m.String()
	}
	return strings.Join(parts, "&")
}
func (i *IntersectionType) typeNode() {}

// ParenthesizedType is `(T1&T2)` used for DNF grouping inside a union,
// e.g. `(A&B)|C` (spec 4.4 "parens only for DNF grouping").
type ParenthesizedType struct {
	BaseNode
	Inner Type `json:"inner"`
}

func (p *ParenthesizedType) GetChildren() []Node { return []Node{p.Inner} }
func (p *ParenthesizedType) String() string      { return "(" + p.Inner.String() + ")" }
func (p *ParenthesizedType) typeNode()           {}
