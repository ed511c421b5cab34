package token

import "strings"

// Keywords maps a lowercased keyword spelling to its Kind. The lexer
// canonicalizes the scanned identifier to lowercase purely for this
// lookup; the Symbol attached to the token still preserves the source's
// original case (spec: "case-insensitive match; case preserved on the
// symbol for downstream display").
var Keywords = map[string]Kind{
	"abstract":     KwAbstract,
	"and":          KwAnd,
	"array":        KwArray,
	"as":           KwAs,
	"break":        KwBreak,
	"callable":     KwCallable,
	"case":         KwCase,
	"catch":        KwCatch,
	"class":        KwClass,
	"clone":        KwClone,
	"const":        KwConst,
	"continue":     KwContinue,
	"declare":      KwDeclare,
	"default":      KwDefault,
	"do":           KwDo,
	"echo":         KwEcho,
	"else":         KwElse,
	"elseif":       KwElseif,
	"empty":        KwEmpty,
	"enddeclare":   KwEnddeclare,
	"endfor":       KwEndfor,
	"endforeach":   KwEndforeach,
	"endif":        KwEndif,
	"endswitch":    KwEndswitch,
	"endwhile":     KwEndwhile,
	"enum":         KwEnum,
	"extends":      KwExtends,
	"final":        KwFinal,
	"finally":      KwFinally,
	"fn":           KwFn,
	"for":          KwFor,
	"foreach":      KwForeach,
	"function":     KwFunction,
	"global":       KwGlobal,
	"goto":         KwGoto,
	"if":           KwIf,
	"implements":   KwImplements,
	"include":      KwInclude,
	"include_once": KwIncludeOnce,
	"instanceof":   KwInstanceof,
	"insteadof":    KwInsteadof,
	"interface":    KwInterface,
	"isset":        KwIsset,
	"list":         KwList,
	"match":        KwMatch,
	"namespace":    KwNamespace,
	"new":          KwNew,
	"or":           KwOr,
	"print":        KwPrint,
	"private":      KwPrivate,
	"protected":    KwProtected,
	"public":       KwPublic,
	"readonly":     KwReadonly,
	"require":      KwRequire,
	"require_once": KwRequireOnce,
	"return":       KwReturn,
	"static":       KwStatic,
	"switch":       KwSwitch,
	"throw":        KwThrow,
	"trait":        KwTrait,
	"try":          KwTry,
	"unset":        KwUnset,
	"use":          KwUse,
	"var":          KwVar,
	"while":        KwWhile,
	"xor":          KwXor,
	"yield":        KwYield,

	// Type atoms, recognized as identifiers unless the parser is in type
	// position (spec 3 "Type keywords").
	"int":      KwInt,
	"float":    KwFloatType,
	"string":   KwStringType,
	"bool":     KwBool,
	"object":   KwObject,
	"iterable": KwIterable,
	"mixed":    KwMixed,
	"never":    KwNever,
	"void":     KwVoid,
	"null":     KwNull,
	"false":    KwFalse,
	"true":     KwTrue,
	"self":     KwSelf,
	"parent":   KwParent,
}

// magicConstants maps the reserved __X__ spellings to their Kind; like
// PHP, these are matched case-insensitively (by lowercased lookup) after
// the generic identifier scan.
var magicConstants = map[string]Kind{
	"__line__":      MagicLine,
	"__file__":      MagicFile,
	"__dir__":       MagicDir,
	"__class__":     MagicClass,
	"__trait__":     MagicTrait,
	"__method__":    MagicMethod,
	"__function__":  MagicFunction,
	"__namespace__": MagicNamespace,
}

// LookupKeyword returns the Kind for an identifier spelling (PHP keyword
// lookup is always case-insensitive), and whether it is reserved at all.
func LookupKeyword(ident string) (Kind, bool) {
	lower := strings.ToLower(ident)
	if k, ok := magicConstants[lower]; ok {
		return k, true
	}
	if k, ok := Keywords[lower]; ok {
		return k, true
	}
	return Invalid, false
}
