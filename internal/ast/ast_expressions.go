package ast

import (
	"github.com/nala-lang/nala/internal/token"
)

// Identifier represents an identifier, e.g. a variable name.
type Identifier struct {
	Token token.Token // the token.IDENT token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// NumberLiteral represents a number literal. The value domain is single
// precision, matching the runtime.
type NumberLiteral struct {
	Token token.Token
	Value float32
}

func (nl *NumberLiteral) expressionNode()      {}
func (nl *NumberLiteral) TokenLiteral() string { return nl.Token.Lexeme }
func (nl *NumberLiteral) GetToken() token.Token {
	if nl == nil {
		return token.Token{}
	}
	return nl.Token
}

// StringLiteral represents a single-quoted string, e.g. 'hello'.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token {
	if sl == nil {
		return token.Token{}
	}
	return sl.Token
}

// BooleanLiteral represents the literals true and false.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Lexeme }
func (bl *BooleanLiteral) GetToken() token.Token {
	if bl == nil {
		return token.Token{}
	}
	return bl.Token
}

// ArrayLiteral represents an array, e.g. [1, 2, 3].
type ArrayLiteral struct {
	Token    token.Token // The '[' token
	Elements []Expression
}

func (al *ArrayLiteral) expressionNode()      {}
func (al *ArrayLiteral) TokenLiteral() string { return al.Token.Lexeme }
func (al *ArrayLiteral) GetToken() token.Token {
	if al == nil {
		return token.Token{}
	}
	return al.Token
}

// ObjectField is a single key: value entry of an object literal. Fields
// keep declaration order so evaluation is left-to-right.
type ObjectField struct {
	Key   *Identifier
	Value Expression
}

// ObjectLiteral represents an object, e.g. { x: 1, y: 2 }.
type ObjectLiteral struct {
	Token  token.Token // The '{' token
	Fields []*ObjectField
}

func (ol *ObjectLiteral) expressionNode()      {}
func (ol *ObjectLiteral) TokenLiteral() string { return ol.Token.Lexeme }
func (ol *ObjectLiteral) GetToken() token.Token {
	if ol == nil {
		return token.Token{}
	}
	return ol.Token
}

// InfixExpression represents a binary operation, e.g. a + b or a == b.
type InfixExpression struct {
	Token    token.Token // The operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Lexeme }
func (ie *InfixExpression) GetToken() token.Token {
	if ie == nil {
		return token.Token{}
	}
	return ie.Token
}

// CallExpression represents an invocation, e.g. add(2, 3).
type CallExpression struct {
	Token     token.Token // The '(' token
	Function  Expression  // Identifier or place expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token {
	if ce == nil {
		return token.Token{}
	}
	return ce.Token
}

// IndexExpression represents indexing, e.g. xs[0].
type IndexExpression struct {
	Token token.Token // The '[' token
	Left  Expression
	Index Expression
}

func (ie *IndexExpression) expressionNode()      {}
func (ie *IndexExpression) TokenLiteral() string { return ie.Token.Lexeme }
func (ie *IndexExpression) GetToken() token.Token {
	if ie == nil {
		return token.Token{}
	}
	return ie.Token
}

// MemberAccessExpression represents member access, e.g. obj.field.
type MemberAccessExpression struct {
	Token  token.Token // The '.' token
	Object Expression
	Member *Identifier
}

func (ma *MemberAccessExpression) expressionNode()      {}
func (ma *MemberAccessExpression) TokenLiteral() string { return ma.Token.Lexeme }
func (ma *MemberAccessExpression) GetToken() token.Token {
	if ma == nil {
		return token.Token{}
	}
	return ma.Token
}

// EnumVariantExpression constructs an enum variant value.
// Opt::None or Opt::Some(7)
type EnumVariantExpression struct {
	Token   token.Token // The enum identifier token
	Enum    *Identifier
	Variant *Identifier
	Data    Expression // nil for empty variants
}

func (ev *EnumVariantExpression) expressionNode()      {}
func (ev *EnumVariantExpression) TokenLiteral() string { return ev.Token.Lexeme }
func (ev *EnumVariantExpression) GetToken() token.Token {
	if ev == nil {
		return token.Token{}
	}
	return ev.Token
}
