package scanner

import (
	"fmt"
	"unicode/utf8"
)

// TokenKind represents the kind of a token.
type TokenKind int

// String returns a string representation of the token kind.
func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(k))
}

// Token kinds. TokenEOF, TokenIgnore and TokenNewline are dispatch-only:
// they steer the run loop and are never recorded in a ScanData.
const (
	TokenEOF TokenKind = iota
	TokenIgnore
	TokenNewline

	TokenSymbol
	TokenIdentifier
	TokenString
	TokenNumber
	TokenKeyword
	TokenComment
)

// kindNames provides string representations for token kinds.
var kindNames = map[TokenKind]string{
	TokenEOF:     "EOF",
	TokenIgnore:  "IGNORE",
	TokenNewline: "NEWLINE",

	TokenSymbol:     "SYMBOL",
	TokenIdentifier: "IDENTIFIER",
	TokenString:     "STRING",
	TokenNumber:     "NUMBER",
	TokenKeyword:    "KEYWORD",
	TokenComment:    "COMMENT",
}

// Token is a classified span of source text. Text holds the lexeme, except
// for string literals where it holds the unescaped content without the
// surrounding quotes. Value is set for number literals only.
type Token struct {
	Kind  TokenKind
	Text  string
	Value float64
}

// String returns a string representation of the token.
func (t Token) String() string {
	switch t.Kind {
	case TokenEOF, TokenIgnore, TokenNewline:
		return t.Kind.String()
	case TokenNumber:
		return fmt.Sprintf("%s(%q, %v)", t.Kind, t.Text, t.Value)
	default:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	}
}

// Length returns the span length in scalar values implied by the payload.
// For string literals this includes the two quotes that the content
// excludes. Dispatch-only kinds have no span.
func (t Token) Length() int {
	switch t.Kind {
	case TokenString:
		return utf8.RuneCountInString(t.Text) + 2
	case TokenSymbol, TokenIdentifier, TokenNumber, TokenKeyword, TokenComment:
		return utf8.RuneCountInString(t.Text)
	default:
		return 0
	}
}
