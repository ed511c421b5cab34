package ast

import (
	"fmt"
	"strings"
)

// Modifier is one flag of a declared-order modifier set (spec 3
// "Modifiers": public/protected/private/static/abstract/final/readonly).
// Modifiers are stored as an ordered slice, not a bitset, since the spec
// requires preserving declaration order and validating combinations as
// diagnostics rather than rejecting them at parse time.
type Modifier string

const (
	ModPublic    Modifier = "public"
	ModProtected Modifier = "protected"
	ModPrivate   Modifier = "private"
	ModStatic    Modifier = "static"
	ModAbstract  Modifier = "abstract"
	ModFinal     Modifier = "final"
	ModReadonly  Modifier = "readonly"
)

// ModifierSet is an ordered, possibly-redundant list of modifiers as
// written; validity (e.g. "abstract + private" is invalid) is checked by
// the parser as a diagnostic, not enforced by this type.
type ModifierSet []Modifier

func (m ModifierSet) String() string {
	parts := make([]string, len(m))
	for i, mod := range m {
		parts[i] = string(mod)
	}
	return strings.Join(parts, " ")
}

func (m ModifierSet) Has(mod Modifier) bool {
	for _, x := range m {
		if x == mod {
			return true
		}
	}
	return false
}

// AttributeGroup is one `#[Attr(args), Attr2]` bracketed group.
type AttributeGroup struct {
	BaseNode
	Attributes []*Attribute `json:"attributes"`
}

func (a *AttributeGroup) GetChildren() []Node {
	children := make([]Node, 0, len(a.Attributes))
	for _, at := range a.Attributes {
		children = append(children, at)
	}
	return children
}
func (a *AttributeGroup) String() string { return fmt.Sprintf("#[%d attrs]", len(a.Attributes)) }

// Attribute is one `Name(args)` entry inside an attribute group.
type Attribute struct {
	BaseNode
	Name      *Name        `json:"name"`
	Arguments []Expression `json:"arguments,omitempty"`
}

func (a *Attribute) GetChildren() []Node {
	children := []Node{a.Name}
	for _, arg := range a.Arguments {
		children = append(children, arg)
	}
	return children
}
func (a *Attribute) String() string { return a.Name.Text }

// Parameter is a function/method/closure/arrow-fn parameter.
type Parameter struct {
	BaseNode
	Name             string          `json:"name"`
	Type             Type            `json:"type,omitempty"`
	DefaultValue     Expression      `json:"default_value,omitempty"`
	IsReference      bool            `json:"is_reference,omitempty"`
	IsVariadic       bool            `json:"is_variadic,omitempty"`
	PromotionModifiers ModifierSet   `json:"promotion_modifiers,omitempty"` // constructor property promotion
	Attributes       []*AttributeGroup `json:"attributes,omitempty"`
}

func (p *Parameter) GetChildren() []Node {
	var children []Node
	if p.Type != nil {
		children = append(children, p.Type)
	}
	if p.DefaultValue != nil {
		children = append(children, p.DefaultValue)
	}
	return children
}
func (p *Parameter) String() string {
	var parts []string
	if len(p.PromotionModifiers) > 0 {
		parts = append(parts, p.PromotionModifiers.String())
	}
	if p.Type != nil {
		parts = append(parts, p.Type.String())
	}
	name := "$" + p.Name
	if p.IsReference {
		name = "&" + name
	}
	if p.IsVariadic {
		name = "..." + name
	}
	parts = append(parts, name)
	result := strings.Join(parts, " ")
	if p.DefaultValue != nil {
		result += " = " + p.DefaultValue.String()
	}
	return result
}
func (p *Parameter) SetAttributeGroups(groups []*AttributeGroup) { p.Attributes = groups }

// FunctionDeclaration is a top-level `function name(params): ReturnType
// { body }`.
type FunctionDeclaration struct {
	BaseNode
	Name             string            `json:"name"`
	Parameters       []*Parameter      `json:"parameters"`
	ReturnType       Type              `json:"return_type,omitempty"`
	Body             *BlockStatement   `json:"body"`
	ReturnsReference bool              `json:"returns_reference,omitempty"`
	IsGenerator      bool              `json:"is_generator,omitempty"`
	Attributes       []*AttributeGroup `json:"attributes,omitempty"`
}

func (f *FunctionDeclaration) GetChildren() []Node {
	var children []Node
	for _, p := range f.Parameters {
		children = append(children, p)
	}
	if f.ReturnType != nil {
		children = append(children, f.ReturnType)
	}
	if f.Body != nil {
		children = append(children, f.Body)
	}
	return children
}
func (f *FunctionDeclaration) String() string { return fmt.Sprintf("function %s(...)", f.Name) }
func (f *FunctionDeclaration) statementNode()   {}
func (f *FunctionDeclaration) declarationNode() {}
func (f *FunctionDeclaration) SetAttributeGroups(groups []*AttributeGroup) { f.Attributes = groups }

// ClassLikeKind distinguishes class, interface, trait, and enum
// declarations, which the spec folds into one ClassLike node shape since
// they share members, attributes, and name resolution.
type ClassLikeKind int

const (
	ClassLikeClass ClassLikeKind = iota
	ClassLikeInterface
	ClassLikeTrait
	ClassLikeEnum
)

func (k ClassLikeKind) String() string {
	switch k {
	case ClassLikeClass:
		return "class"
	case ClassLikeInterface:
		return "interface"
	case ClassLikeTrait:
		return "trait"
	case ClassLikeEnum:
		return "enum"
	default:
		return "class"
	}
}

// ClassLikeDeclaration is the unified node for class/interface/trait/enum
// declarations (spec 3 "ClassLike"). BackingType is set only for a typed
// enum (`enum Suit: string { ... }`).
type ClassLikeDeclaration struct {
	BaseNode
	ClassLikeKind ClassLikeKind     `json:"class_like_kind"`
	Name          string            `json:"name"`
	Modifiers     ModifierSet       `json:"modifiers,omitempty"` // abstract, final, readonly (class only)
	Extends       []*Name           `json:"extends,omitempty"`   // one entry for class, many for interface
	Implements    []*Name           `json:"implements,omitempty"`
	BackingType   Type              `json:"backing_type,omitempty"`
	Members       []ClassMember     `json:"members"`
	Attributes    []*AttributeGroup `json:"attributes,omitempty"`
}

func (c *ClassLikeDeclaration) GetChildren() []Node {
	var children []Node
	for _, e := range c.Extends {
		children = append(children, e)
	}
	for _, i := range c.Implements {
		children = append(children, i)
	}
	if c.BackingType != nil {
		children = append(children, c.BackingType)
	}
	for _, m := range c.Members {
		children = append(children, m)
	}
	return children
}
func (c *ClassLikeDeclaration) String() string {
	return fmt.Sprintf("%s %s {...}", c.ClassLikeKind, c.Name)
}
func (c *ClassLikeDeclaration) statementNode()   {}
func (c *ClassLikeDeclaration) declarationNode() {}
func (c *ClassLikeDeclaration) SetAttributeGroups(groups []*AttributeGroup) { c.Attributes = groups }

// MethodDeclaration is one `modifiers function name(params): RetType body`
// member of a class-like body.
type MethodDeclaration struct {
	BaseNode
	Name             string            `json:"name"`
	Modifiers        ModifierSet       `json:"modifiers,omitempty"`
	Parameters       []*Parameter      `json:"parameters"`
	ReturnType       Type              `json:"return_type,omitempty"`
	Body             *BlockStatement   `json:"body,omitempty"` // nil for abstract/interface methods
	ReturnsReference bool              `json:"returns_reference,omitempty"`
	IsGenerator      bool              `json:"is_generator,omitempty"`
	Attributes       []*AttributeGroup `json:"attributes,omitempty"`
}

func (m *MethodDeclaration) GetChildren() []Node {
	var children []Node
	for _, p := range m.Parameters {
		children = append(children, p)
	}
	if m.ReturnType != nil {
		children = append(children, m.ReturnType)
	}
	if m.Body != nil {
		children = append(children, m.Body)
	}
	return children
}
func (m *MethodDeclaration) String() string { return fmt.Sprintf("function %s(...)", m.Name) }
func (m *MethodDeclaration) classMemberNode() {}
func (m *MethodDeclaration) SetAttributeGroups(groups []*AttributeGroup) { m.Attributes = groups }

// PropertyDeclaration is one `modifiers Type $name = default, ...;`
// class-level property declaration; unlike PHP's own grammar, which
// allows a comma list, this node holds exactly one name/default pair and
// the parser emits one PropertyDeclaration per comma-separated name so
// each carries its own span.
type PropertyDeclaration struct {
	BaseNode
	Name         string            `json:"name"`
	Type         Type              `json:"type,omitempty"`
	DefaultValue Expression        `json:"default_value,omitempty"`
	Modifiers    ModifierSet       `json:"modifiers,omitempty"`
	Attributes   []*AttributeGroup `json:"attributes,omitempty"`
}

func (p *PropertyDeclaration) GetChildren() []Node {
	var children []Node
	if p.Type != nil {
		children = append(children, p.Type)
	}
	if p.DefaultValue != nil {
		children = append(children, p.DefaultValue)
	}
	return children
}
func (p *PropertyDeclaration) String() string { return "$" + p.Name }
func (p *PropertyDeclaration) classMemberNode() {}
func (p *PropertyDeclaration) SetAttributeGroups(groups []*AttributeGroup) { p.Attributes = groups }

// ClassConstantDeclaration is `modifiers const [Type] NAME = value, ...;`.
type ClassConstantDeclaration struct {
	BaseNode
	Constants  []*ConstClause    `json:"constants"`
	Type       Type              `json:"type,omitempty"`
	Modifiers  ModifierSet       `json:"modifiers,omitempty"`
	Attributes []*AttributeGroup `json:"attributes,omitempty"`
}

func (c *ClassConstantDeclaration) GetChildren() []Node {
	var children []Node
	if c.Type != nil {
		children = append(children, c.Type)
	}
	for _, cl := range c.Constants {
		children = append(children, cl)
	}
	return children
}
func (c *ClassConstantDeclaration) String() string { return "const ...;" }
func (c *ClassConstantDeclaration) classMemberNode() {}
func (c *ClassConstantDeclaration) SetAttributeGroups(groups []*AttributeGroup) { c.Attributes = groups }

// EnumCaseDeclaration is `case Name [= value];` inside an enum body.
type EnumCaseDeclaration struct {
	BaseNode
	Name       string            `json:"name"`
	Value      Expression        `json:"value,omitempty"`
	Attributes []*AttributeGroup `json:"attributes,omitempty"`
}

func (e *EnumCaseDeclaration) GetChildren() []Node {
	if e.Value != nil {
		return []Node{e.Value}
	}
	return nil
}
func (e *EnumCaseDeclaration) String() string { return "case " + e.Name }
func (e *EnumCaseDeclaration) classMemberNode() {}
func (e *EnumCaseDeclaration) SetAttributeGroups(groups []*AttributeGroup) { e.Attributes = groups }

// TraitUseDeclaration is `use Trait1, Trait2 { adaptations };` inside a
// class-like body.
type TraitUseDeclaration struct {
	BaseNode
	Traits      []*Name           `json:"traits"`
	Adaptations []TraitAdaptation `json:"adaptations,omitempty"`
}

func (t *TraitUseDeclaration) GetChildren() []Node {
	var children []Node
	for _, tr := range t.Traits {
		children = append(children, tr)
	}
	for _, a := range t.Adaptations {
		children = append(children, a)
	}
	return children
}
func (t *TraitUseDeclaration) String() string { return "use ...;" }
func (t *TraitUseDeclaration) classMemberNode() {}

// TraitAdaptation is implemented by TraitPrecedence and TraitAlias, the
// two clause shapes a trait-use adaptation block can contain.
type TraitAdaptation interface {
	Node
	traitAdaptationNode()
}

// TraitPrecedence is `Trait::method insteadof Other1, Other2;`.
type TraitPrecedence struct {
	BaseNode
	Trait     *Name   `json:"trait,omitempty"`
	Method    string  `json:"method"`
	InsteadOf []*Name `json:"instead_of"`
}

func (t *TraitPrecedence) GetChildren() []Node {
	var children []Node
	if t.Trait != nil {
		children = append(children, t.Trait)
	}
	for _, n := range t.InsteadOf {
		children = append(children, n)
	}
	return children
}
func (t *TraitPrecedence) String() string { return t.Method + " insteadof ..." }
func (t *TraitPrecedence) traitAdaptationNode() {}

// TraitAlias is `Trait::method as [modifier] [alias];`.
type TraitAlias struct {
	BaseNode
	Trait     *Name    `json:"trait,omitempty"`
	Method    string   `json:"method"`
	Modifiers ModifierSet `json:"modifiers,omitempty"`
	Alias     string   `json:"alias,omitempty"`
}

func (t *TraitAlias) GetChildren() []Node {
	if t.Trait != nil {
		return []Node{t.Trait}
	}
	return nil
}
func (t *TraitAlias) String() string { return t.Method + " as ..." }
func (t *TraitAlias) traitAdaptationNode() {}
