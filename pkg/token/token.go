// Package token defines the lexical primitives of the input dialect: a
// curly-brace, namespace-scoped subset of C++ used by the parser in
// pkg/parser. It only knows enough grammar to find namespaces, enums,
// classes/structs, members, methods, attribute annotations and the handful
// of preprocessor directives the parser is required to skip.
package token

import "fmt"

// Type identifies the lexical category of a Token.
type Type int

const (
	EOF Type = iota
	Error

	Whitespace
	Newline
	LineComment   // // ... EOL
	BlockComment  // /* ... */
	Preprocessor // #pragma ... / #include ...

	Identifier
	Number
	String
	CharLiteral

	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	DoubleLeftBracket  // [[
	DoubleRightBracket // ]]
	Semicolon
	Colon
	DoubleColon
	Comma
	Equals
	Less
	Greater
	Ampersand
	Star
	Tilde
	Hash

	// Keywords the grammar in pkg/parser cares about.
	keywordStart
	Namespace
	Enum
	Class
	Struct
	Public
	Private
	Protected
	Static
	Const
	Virtual
	Override
	Using
	Template
	Typedef
	keywordEnd
)

var names = map[Type]string{
	EOF:                "EOF",
	Error:              "ERROR",
	Whitespace:         "WHITESPACE",
	Newline:            "NEWLINE",
	LineComment:        "LINE_COMMENT",
	BlockComment:       "BLOCK_COMMENT",
	Preprocessor:       "PREPROCESSOR",
	Identifier:         "IDENTIFIER",
	Number:             "NUMBER",
	String:             "STRING",
	CharLiteral:        "CHAR",
	LeftParen:          "LEFT_PAREN",
	RightParen:         "RIGHT_PAREN",
	LeftBrace:          "LEFT_BRACE",
	RightBrace:         "RIGHT_BRACE",
	LeftBracket:        "LEFT_BRACKET",
	RightBracket:       "RIGHT_BRACKET",
	DoubleLeftBracket:  "DOUBLE_LEFT_BRACKET",
	DoubleRightBracket: "DOUBLE_RIGHT_BRACKET",
	Semicolon:          "SEMICOLON",
	Colon:              "COLON",
	DoubleColon:        "DOUBLE_COLON",
	Comma:              "COMMA",
	Equals:             "EQUALS",
	Less:               "LESS",
	Greater:            "GREATER",
	Ampersand:          "AMPERSAND",
	Star:               "STAR",
	Tilde:              "TILDE",
	Hash:               "HASH",
	Namespace:          "NAMESPACE",
	Enum:               "ENUM",
	Class:              "CLASS",
	Struct:             "STRUCT",
	Public:             "PUBLIC",
	Private:            "PRIVATE",
	Protected:          "PROTECTED",
	Static:             "STATIC",
	Const:              "CONST",
	Virtual:            "VIRTUAL",
	Override:           "OVERRIDE",
	Using:              "USING",
	Template:           "TEMPLATE",
	Typedef:            "TYPEDEF",
}

// Keywords maps a recognized keyword spelling to its Type.
var Keywords = map[string]Type{
	"namespace": Namespace,
	"enum":      Enum,
	"class":     Class,
	"struct":    Struct,
	"public":    Public,
	"private":   Private,
	"protected": Protected,
	"static":    Static,
	"const":     Const,
	"virtual":   Virtual,
	"override":  Override,
	"using":     Using,
	"template":  Template,
	"typedef":   Typedef,
}

// IsKeyword reports whether t is one of the reserved words in Keywords.
func IsKeyword(t Type) bool {
	return t > keywordStart && t < keywordEnd
}

func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("TYPE(%d)", int(t))
}

// Token is a single lexeme with its source position.
type Token struct {
	Type   Type
	Value  string
	Line   int
	Column int
	Offset int
}

func (t Token) String() string {
	return fmt.Sprintf("%s:%q@%d:%d", t.Type, t.Value, t.Line, t.Column)
}

// Ignorable reports whether the token carries no grammatical meaning of its
// own and should be skipped by every grammar rule: whitespace, newlines,
// comments, and preprocessor directives (#pragma once, #include and any
// other "#..." line, each of which the tokenizer emits as a single token).
func (t Token) Ignorable() bool {
	switch t.Type {
	case Whitespace, Newline, LineComment, BlockComment, Preprocessor:
		return true
	default:
		return false
	}
}
