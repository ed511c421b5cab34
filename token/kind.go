// Package token defines the lexer's output vocabulary: a closed Kind
// enumeration, the Token shape that carries a Kind plus its span and any
// attached literal data, and the case-insensitive keyword table the lexer
// consults while preserving the original identifier case.
package token

import "fmt"

// Kind is a closed token-kind enumeration. Values are grouped by category;
// the grouping is only documentation, callers must not rely on numeric
// ranges.
type Kind int

const (
	Invalid Kind = iota
	EndOfInput

	// Outside-PHP / tag tokens.
	InlineHTML
	OpenTag     // <?php
	OpenTagEcho // <?=
	CloseTag    // ?>

	// Trivia (attached to the following token by default; see lexer.Options).
	Comment
	DocComment

	// Identifiers and variables.
	Identifier     // bare name segment (no backslash)
	NamespaceSep   // \
	Variable       // $name
	StringVarName  // bare name inside ${name}

	// Literals.
	Int
	Float
	SingleQuotedString
	ConstantEncapsedString // not emitted by the lexer: a one-chunk double-quoted/heredoc string arrives as delimiters around one EncapsedAndWhitespace
	EncapsedAndWhitespace  // one literal chunk inside an interpolated string/heredoc

	// String/heredoc interpolation delimiters.
	StartHeredoc
	EndHeredoc
	StartNowdoc
	DoubleQuote          // opening/closing " of an interpolated double-quoted string
	Backtick             // opening/closing ` of a shell-exec string
	CurlyOpen            // {$ complex-expression interpolation opener
	DollarOpenCurlyBrace // ${ opener

	// Keywords (case-insensitive; see Keywords map).
	KwAbstract
	KwAnd
	KwArray
	KwAs
	KwBreak
	KwCallable
	KwCase
	KwCatch
	KwClass
	KwClone
	KwConst
	KwContinue
	KwDeclare
	KwDefault
	KwDo
	KwEcho
	KwElse
	KwElseif
	KwEmpty
	KwEnddeclare
	KwEndfor
	KwEndforeach
	KwEndif
	KwEndswitch
	KwEndwhile
	KwEnum
	KwExtends
	KwFinal
	KwFinally
	KwFn
	KwFor
	KwForeach
	KwFunction
	KwGlobal
	KwGoto
	KwIf
	KwImplements
	KwInclude
	KwIncludeOnce
	KwInstanceof
	KwInsteadof
	KwInterface
	KwIsset
	KwList
	KwMatch
	KwNamespace
	KwNew
	KwOr
	KwPrint
	KwPrivate
	KwProtected
	KwPublic
	KwReadonly
	KwRequire
	KwRequireOnce
	KwReturn
	KwStatic
	KwSwitch
	KwThrow
	KwTrait
	KwTry
	KwUnset
	KwUse
	KwVar
	KwWhile
	KwXor
	KwYield

	// Type/identifier-like reserved words, permitted as type atoms (spec 4.4).
	KwInt
	KwFloatType
	KwStringType
	KwBool
	KwArrayType // not produced: `array` is KwArray in every position, type position included
	KwObject
	KwIterable
	KwMixed
	KwNever
	KwVoid
	KwNull
	KwFalse
	KwTrue
	KwSelf
	KwParent

	// Punctuation and operators.
	Semicolon
	Comma
	Dot
	LBrace
	RBrace
	LParen
	RParen
	LBracket
	RBracket
	Plus
	Minus
	Star
	Slash
	Percent
	Amp
	Pipe
	Caret
	Tilde
	Lt
	Gt
	Assign
	Bang
	Question
	Colon
	At
	Dollar
	Backslash

	Arrow              // ->
	NullsafeArrow      // ?->
	DoubleArrow        // =>
	DoubleColon        // ::
	Ellipsis           // ...
	IsEqual            // ==
	IsNotEqual         // != or <>
	IsIdentical        // ===
	IsNotIdentical     // !==
	LessOrEqual        // <=
	GreaterOrEqual     // >=
	Spaceship          // <=>
	PlusEqual          // +=
	MinusEqual         // -=
	StarEqual          // *=
	SlashEqual         // /=
	DotEqual           // .=
	PercentEqual       // %=
	AmpEqual           // &=
	PipeEqual          // |=
	CaretEqual         // ^=
	ShlEqual           // <<=
	ShrEqual           // >>=
	CoalesceEqual      // ??=
	Inc                // ++
	Dec                // --
	BooleanOr          // ||
	BooleanAnd         // &&
	Coalesce           // ??
	Shl                // <<
	Shr                // >>
	Attribute          // #[
	Pow                // **
	PowEqual           // **=

	// Casts. The lexer emits these as a single token spanning "(keyword)".
	IntCast
	DoubleCast
	StringCast
	ArrayCast
	ObjectCast
	BoolCast
	UnsetCast

	// Magic constants.
	MagicLine
	MagicFile
	MagicDir
	MagicClass
	MagicTrait
	MagicMethod
	MagicFunction
	MagicNamespace

	numKinds
)

var kindNames = [...]string{
	Invalid:                "Invalid",
	EndOfInput:             "EndOfInput",
	InlineHTML:             "InlineHTML",
	OpenTag:                "OpenTag",
	OpenTagEcho:            "OpenTagEcho",
	CloseTag:               "CloseTag",
	Comment:                "Comment",
	DocComment:             "DocComment",
	Identifier:             "Identifier",
	NamespaceSep:           "NamespaceSep",
	Variable:               "Variable",
	StringVarName:          "StringVarName",
	Int:                    "Int",
	Float:                  "Float",
	SingleQuotedString:     "SingleQuotedString",
	ConstantEncapsedString: "ConstantEncapsedString",
	EncapsedAndWhitespace:  "EncapsedAndWhitespace",
	StartHeredoc:           "StartHeredoc",
	EndHeredoc:             "EndHeredoc",
	StartNowdoc:            "StartNowdoc",
	DoubleQuote:            "DoubleQuote",
	Backtick:               "Backtick",
	CurlyOpen:              "CurlyOpen",
	DollarOpenCurlyBrace:   "DollarOpenCurlyBrace",
	KwAbstract:             "abstract",
	KwAnd:                  "and",
	KwArray:                "array",
	KwAs:                   "as",
	KwBreak:                "break",
	KwCallable:             "callable",
	KwCase:                 "case",
	KwCatch:                "catch",
	KwClass:                "class",
	KwClone:                "clone",
	KwConst:                "const",
	KwContinue:             "continue",
	KwDeclare:              "declare",
	KwDefault:              "default",
	KwDo:                   "do",
	KwEcho:                 "echo",
	KwElse:                 "else",
	KwElseif:               "elseif",
	KwEmpty:                "empty",
	KwEnddeclare:           "enddeclare",
	KwEndfor:               "endfor",
	KwEndforeach:           "endforeach",
	KwEndif:                "endif",
	KwEndswitch:            "endswitch",
	KwEndwhile:             "endwhile",
	KwEnum:                 "enum",
	KwExtends:              "extends",
	KwFinal:                "final",
	KwFinally:              "finally",
	KwFn:                   "fn",
	KwFor:                  "for",
	KwForeach:              "foreach",
	KwFunction:             "function",
	KwGlobal:               "global",
	KwGoto:                 "goto",
	KwIf:                   "if",
	KwImplements:           "implements",
	KwInclude:              "include",
	KwIncludeOnce:          "include_once",
	KwInstanceof:           "instanceof",
	KwInsteadof:            "insteadof",
	KwInterface:            "interface",
	KwIsset:                "isset",
	KwList:                 "list",
	KwMatch:                "match",
	KwNamespace:            "namespace",
	KwNew:                  "new",
	KwOr:                   "or",
	KwPrint:                "print",
	KwPrivate:              "private",
	KwProtected:            "protected",
	KwPublic:               "public",
	KwReadonly:             "readonly",
	KwRequire:              "require",
	KwRequireOnce:          "require_once",
	KwReturn:               "return",
	KwStatic:               "static",
	KwSwitch:               "switch",
	KwThrow:                "throw",
	KwTrait:                "trait",
	KwTry:                  "try",
	KwUnset:                "unset",
	KwUse:                  "use",
	KwVar:                  "var",
	KwWhile:                "while",
	KwXor:                  "xor",
	KwYield:                "yield",
	KwInt:                  "int",
	KwFloatType:            "float",
	KwStringType:           "string",
	KwBool:                 "bool",
	KwArrayType:            "array",
	KwObject:               "object",
	KwIterable:             "iterable",
	KwMixed:                "mixed",
	KwNever:                "never",
	KwVoid:                 "void",
	KwNull:                 "null",
	KwFalse:                "false",
	KwTrue:                 "true",
	KwSelf:                 "self",
	KwParent:               "parent",
	Semicolon:              ";",
	Comma:                  ",",
	Dot:                    ".",
	LBrace:                 "{",
	RBrace:                 "}",
	LParen:                 "(",
	RParen:                 ")",
	LBracket:               "[",
	RBracket:               "]",
	Plus:                   "+",
	Minus:                  "-",
	Star:                   "*",
	Slash:                  "/",
	Percent:                "%",
	Amp:                    "&",
	Pipe:                   "|",
	Caret:                  "^",
	Tilde:                  "~",
	Lt:                     "<",
	Gt:                     ">",
	Assign:                 "=",
	Bang:                   "!",
	Question:               "?",
	Colon:                  ":",
	At:                     "@",
	Dollar:                 "$",
	Backslash:              "\\",
	Arrow:                  "->",
	NullsafeArrow:          "?->",
	DoubleArrow:            "=>",
	DoubleColon:            "::",
	Ellipsis:               "...",
	IsEqual:                "==",
	IsNotEqual:             "!=",
	IsIdentical:            "===",
	IsNotIdentical:         "!==",
	LessOrEqual:            "<=",
	GreaterOrEqual:         ">=",
	Spaceship:              "<=>",
	PlusEqual:              "+=",
	MinusEqual:             "-=",
	StarEqual:              "*=",
	SlashEqual:             "/=",
	DotEqual:               ".=",
	PercentEqual:           "%=",
	AmpEqual:               "&=",
	PipeEqual:              "|=",
	CaretEqual:             "^=",
	ShlEqual:               "<<=",
	ShrEqual:               ">>=",
	CoalesceEqual:          "??=",
	Inc:                    "++",
	Dec:                    "--",
	BooleanOr:              "||",
	BooleanAnd:             "&&",
	Coalesce:               "??",
	Shl:                    "<<",
	Shr:                    ">>",
	Attribute:              "#[",
	Pow:                    "**",
	PowEqual:               "**=",
	IntCast:                "(int)",
	DoubleCast:             "(float)",
	StringCast:             "(string)",
	ArrayCast:              "(array)",
	ObjectCast:             "(object)",
	BoolCast:               "(bool)",
	UnsetCast:              "(unset)",
	MagicLine:              "__LINE__",
	MagicFile:              "__FILE__",
	MagicDir:               "__DIR__",
	MagicClass:             "__CLASS__",
	MagicTrait:             "__TRAIT__",
	MagicMethod:            "__METHOD__",
	MagicFunction:          "__FUNCTION__",
	MagicNamespace:         "__NAMESPACE__",
}

// String renders a human-readable name for the kind, used in diagnostics
// and debug dumps (not for re-lexing).
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsKeyword reports whether k is one of the reserved-word kinds (not the
// type-atom keywords, which double as identifiers outside type position).
func (k Kind) IsKeyword() bool {
	return k >= KwAbstract && k <= KwYield
}

// IsTypeAtomKeyword reports whether k is a built-in type keyword usable as
// a type atom (spec 4.4).
func (k Kind) IsTypeAtomKeyword() bool {
	return k >= KwInt && k <= KwParent
}

// IsCast reports whether k is one of the parenthesized-cast tokens.
func (k Kind) IsCast() bool {
	return k >= IntCast && k <= UnsetCast
}
