package ast

import (
	"github.com/nala-lang/nala/internal/token"
)

// WildcardPattern matches any value without binding.
// _
type WildcardPattern struct {
	Token token.Token
}

func (wp *WildcardPattern) patternNode()         {}
func (wp *WildcardPattern) TokenLiteral() string { return wp.Token.Lexeme }
func (wp *WildcardPattern) GetToken() token.Token {
	if wp == nil {
		return token.Token{}
	}
	return wp.Token
}

// IdentifierPattern matches any value and binds it.
// x
type IdentifierPattern struct {
	Token token.Token
	Value string
}

func (ip *IdentifierPattern) patternNode()         {}
func (ip *IdentifierPattern) TokenLiteral() string { return ip.Token.Lexeme }
func (ip *IdentifierPattern) GetToken() token.Token {
	if ip == nil {
		return token.Token{}
	}
	return ip.Token
}

// EnumPattern matches a variant of an enum. When Binding is non-nil the
// variant's payload is bound to it.
// Opt::None or Opt::Some(x)
type EnumPattern struct {
	Token   token.Token // The enum identifier token
	Enum    *Identifier
	Variant *Identifier
	Binding *Identifier // nil for empty-variant patterns
}

func (ep *EnumPattern) patternNode()         {}
func (ep *EnumPattern) TokenLiteral() string { return ep.Token.Lexeme }
func (ep *EnumPattern) GetToken() token.Token {
	if ep == nil {
		return token.Token{}
	}
	return ep.Token
}
