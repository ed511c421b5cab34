// Package ast defines the syntax tree produced by the parser: every node
// carries a monotonic id and a span (spec 3 "AST node"), and is reachable
// through the Node interface for uniform traversal, printing, and
// JSON-schema-discoverable serialization via struct tags.
package ast

import "fmt"

// Kind identifies the concrete shape of a Node without a type assertion,
// used by callers that want a cheap switch (diagnostics, dumps) instead of
// a full type switch. It is a flat enumeration, not the bit-packed scheme
// some PHP ASTs use internally, since nothing here needs the packing.
type Kind int

const (
	KindInvalid Kind = iota
	KindMissing // error-recovery placeholder (spec 4.3 "error recovery")

	KindProgram

	// Statements.
	KindNamespace
	KindUse
	KindUseGroup
	KindBlock
	KindExpressionStmt
	KindIf
	KindElseIf
	KindWhile
	KindDoWhile
	KindFor
	KindForeach
	KindSwitch
	KindCase
	KindTry
	KindCatch
	KindFinally
	KindReturn
	KindThrow
	KindBreak
	KindContinue
	KindGoto
	KindLabel
	KindEcho
	KindGlobal
	KindStaticVarDecl
	KindInlineHTML
	KindDeclare
	KindUnset
	KindConstDecl

	// Declarations.
	KindFunctionDecl
	KindClassLike
	KindParameter
	KindUseTrait
	KindTraitPrecedence
	KindTraitAlias
	KindAttributeGroup
	KindAttribute

	// Class-like members.
	KindClassConstant
	KindProperty
	KindMethod
	KindEnumCase

	// Expressions.
	KindIntLiteral
	KindFloatLiteral
	KindStringLiteral
	KindBoolLiteral
	KindNullLiteral
	KindVariable
	KindName
	KindArray
	KindArrayItem
	KindArrayAccess
	KindListExpr
	KindNew
	KindClone
	KindInstanceof
	KindInclude
	KindAssignment
	KindBinary
	KindUnary
	KindTernary
	KindShortTernary
	KindNullCoalesce
	KindCast
	KindErrorSuppress
	KindClosure
	KindArrowFn
	KindCall
	KindMethodCall
	KindNullsafeMethodCall
	KindStaticCall
	KindPropertyFetch
	KindNullsafePropertyFetch
	KindStaticPropertyFetch
	KindClassConstFetch
	KindConstFetch
	KindYield
	KindYieldFrom
	KindMatch
	KindMatchArm
	KindPrint
	KindAnonClass
	KindInterpolated
	KindReference
	KindSpread
	KindNamedArg
	KindExit
	KindIsset
	KindEmpty
	KindEval
	KindShellExec
	KindMagicConstant
	KindClosureUse
	KindFirstClassCallable

	// Types.
	KindNamedType
	KindNullableType
	KindUnionType
	KindIntersectionType
	KindParenthesizedType

	numKinds
)

var kindNames = [...]string{
	KindInvalid:               "Invalid",
	KindMissing:               "Missing",
	KindProgram:               "Program",
	KindNamespace:             "Namespace",
	KindUse:                   "Use",
	KindUseGroup:              "UseGroup",
	KindBlock:                 "Block",
	KindExpressionStmt:        "ExpressionStmt",
	KindIf:                    "If",
	KindElseIf:                "ElseIf",
	KindWhile:                 "While",
	KindDoWhile:               "DoWhile",
	KindFor:                   "For",
	KindForeach:               "Foreach",
	KindSwitch:                "Switch",
	KindCase:                  "Case",
	KindTry:                   "Try",
	KindCatch:                 "Catch",
	KindFinally:               "Finally",
	KindReturn:                "Return",
	KindThrow:                 "Throw",
	KindBreak:                 "Break",
	KindContinue:              "Continue",
	KindGoto:                  "Goto",
	KindLabel:                 "Label",
	KindEcho:                  "Echo",
	KindGlobal:                "Global",
	KindStaticVarDecl:         "StaticVarDecl",
	KindInlineHTML:            "InlineHTML",
	KindDeclare:               "Declare",
	KindUnset:                 "Unset",
	KindConstDecl:             "ConstDecl",
	KindFunctionDecl:          "FunctionDecl",
	KindClassLike:             "ClassLike",
	KindParameter:             "Parameter",
	KindUseTrait:              "UseTrait",
	KindTraitPrecedence:       "TraitPrecedence",
	KindTraitAlias:            "TraitAlias",
	KindAttributeGroup:        "AttributeGroup",
	KindAttribute:             "Attribute",
	KindClassConstant:         "ClassConstant",
	KindProperty:              "Property",
	KindMethod:                "Method",
	KindEnumCase:              "EnumCase",
	KindIntLiteral:            "IntLiteral",
	KindFloatLiteral:          "FloatLiteral",
	KindStringLiteral:         "StringLiteral",
	KindBoolLiteral:           "BoolLiteral",
	KindNullLiteral:           "NullLiteral",
	KindVariable:              "Variable",
	KindName:                  "Name",
	KindArray:                 "Array",
	KindArrayItem:             "ArrayItem",
	KindArrayAccess:           "ArrayAccess",
	KindListExpr:              "List",
	KindNew:                   "New",
	KindClone:                 "Clone",
	KindInstanceof:            "Instanceof",
	KindInclude:               "Include",
	KindAssignment:            "Assignment",
	KindBinary:                "Binary",
	KindUnary:                 "Unary",
	KindTernary:               "Ternary",
	KindShortTernary:          "ShortTernary",
	KindNullCoalesce:          "NullCoalesce",
	KindCast:                  "Cast",
	KindErrorSuppress:         "ErrorSuppress",
	KindClosure:               "Closure",
	KindArrowFn:               "ArrowFn",
	KindCall:                  "Call",
	KindMethodCall:            "MethodCall",
	KindNullsafeMethodCall:    "NullsafeMethodCall",
	KindStaticCall:            "StaticCall",
	KindPropertyFetch:         "PropertyFetch",
	KindNullsafePropertyFetch: "NullsafePropertyFetch",
	KindStaticPropertyFetch:   "StaticPropertyFetch",
	KindClassConstFetch:       "ClassConstFetch",
	KindConstFetch:            "ConstFetch",
	KindYield:                 "Yield",
	KindYieldFrom:             "YieldFrom",
	KindMatch:                 "Match",
	KindMatchArm:              "MatchArm",
	KindPrint:                 "Print",
	KindAnonClass:             "AnonClass",
	KindInterpolated:          "Interpolated",
	KindReference:             "Reference",
	KindSpread:                "Spread",
	KindNamedArg:              "NamedArg",
	KindExit:                  "Exit",
	KindIsset:                 "Isset",
	KindEmpty:                 "Empty",
	KindEval:                  "Eval",
	KindShellExec:             "ShellExec",
	KindMagicConstant:         "MagicConstant",
	KindClosureUse:            "ClosureUse",
	KindFirstClassCallable:    "FirstClassCallable",
	KindNamedType:             "NamedType",
	KindNullableType:          "NullableType",
	KindUnionType:             "UnionType",
	KindIntersectionType:      "IntersectionType",
	KindParenthesizedType:     "ParenthesizedType",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindNames returns every registered Kind name, for schema discovery
// tooling that wants the full node vocabulary without walking a tree
// (spec 6 "AST node schema is discoverable").
func KindNames() []string {
	names := make([]string, 0, len(kindNames))
	for _, n := range kindNames {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}
