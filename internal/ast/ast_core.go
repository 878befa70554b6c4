package ast

import (
	"github.com/nala-lang/nala/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
}

// Pattern is a Node usable in a match arm.
type Pattern interface {
	Node
	patternNode()
}

// Program is the root node of every AST the parser produces.
type Program struct {
	File       string // Source file path
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) GetToken() token.Token {
	if len(p.Statements) > 0 {
		return p.Statements[0].GetToken()
	}
	return token.Token{}
}

// BlockStatement represents a braced sequence of statements.
type BlockStatement struct {
	Token      token.Token // The '{' token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Lexeme }
func (bs *BlockStatement) GetToken() token.Token {
	if bs == nil {
		return token.Token{}
	}
	return bs.Token
}

// DeclareStatement represents a binding declaration.
// const x = expr; or let x: T = expr;
type DeclareStatement struct {
	Token          token.Token // The 'const' or 'let' token
	Name           *Identifier
	TypeAnnotation *TypeLiteral // Optional
	Value          Expression
	Mutable        bool
}

func (ds *DeclareStatement) statementNode()       {}
func (ds *DeclareStatement) TokenLiteral() string { return ds.Token.Lexeme }
func (ds *DeclareStatement) GetToken() token.Token {
	if ds == nil {
		return token.Token{}
	}
	return ds.Token
}

// AssignStatement represents mutation of an existing place.
// x = expr; xs[0] = expr; obj.field = expr;
type AssignStatement struct {
	Token  token.Token // The '=' token
	Target Expression  // Identifier, IndexExpression or MemberAccessExpression
	Value  Expression
}

func (as *AssignStatement) statementNode()       {}
func (as *AssignStatement) TokenLiteral() string { return as.Token.Lexeme }
func (as *AssignStatement) GetToken() token.Token {
	if as == nil {
		return token.Token{}
	}
	return as.Token
}

// ExpressionStatement wraps an expression in statement position.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token {
	if es == nil {
		return token.Token{}
	}
	return es.Token
}

// Parameter is a function parameter with its declared type.
type Parameter struct {
	Name *Identifier
	Type *TypeLiteral
}

// FunctionStatement represents a named function declaration.
// func name<T>(p1: T1, p2: T2): R { ... }
type FunctionStatement struct {
	Token      token.Token // The 'func' token
	Name       *Identifier
	TypeParam  *Identifier // Optional single type parameter
	Parameters []*Parameter
	ReturnType *TypeLiteral // Optional; Void when absent
	Body       *BlockStatement
}

func (fs *FunctionStatement) statementNode()       {}
func (fs *FunctionStatement) TokenLiteral() string { return fs.Token.Lexeme }
func (fs *FunctionStatement) GetToken() token.Token {
	if fs == nil {
		return token.Token{}
	}
	return fs.Token
}

// VariantDeclare is a single variant inside an enum declaration.
type VariantDeclare struct {
	Name     *Identifier
	DataType *TypeLiteral // nil for empty variants
}

// EnumStatement represents an enum declaration.
// enum Name<T> { V1, V2(T), V3(Number) }
type EnumStatement struct {
	Token     token.Token // The 'enum' token
	Name      *Identifier
	TypeParam *Identifier // Optional
	Variants  []*VariantDeclare
}

func (es *EnumStatement) statementNode()       {}
func (es *EnumStatement) TokenLiteral() string { return es.Token.Lexeme }
func (es *EnumStatement) GetToken() token.Token {
	if es == nil {
		return token.Token{}
	}
	return es.Token
}

// StructFieldDeclare is a single field inside a struct declaration.
type StructFieldDeclare struct {
	Name *Identifier
	Type *TypeLiteral
}

// StructStatement represents a struct declaration.
// struct Name<T> { f1: T1, f2: T }
type StructStatement struct {
	Token     token.Token // The 'struct' token
	Name      *Identifier
	TypeParam *Identifier // Optional
	Fields    []*StructFieldDeclare
}

func (ss *StructStatement) statementNode()       {}
func (ss *StructStatement) TokenLiteral() string { return ss.Token.Lexeme }
func (ss *StructStatement) GetToken() token.Token {
	if ss == nil {
		return token.Token{}
	}
	return ss.Token
}

// IfStatement represents an if/else-if/else chain. Alternative is either
// another *IfStatement or a *BlockStatement, or nil.
type IfStatement struct {
	Token       token.Token // The 'if' token
	Condition   Expression
	Consequence *BlockStatement
	Alternative Statement
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Lexeme }
func (is *IfStatement) GetToken() token.Token {
	if is == nil {
		return token.Token{}
	}
	return is.Token
}

// ForStatement represents iteration over an array.
// for x in xs { ... }
type ForStatement struct {
	Token    token.Token // The 'for' token
	ItemName *Identifier
	Iterable Expression
	Body     *BlockStatement
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Lexeme }
func (fs *ForStatement) GetToken() token.Token {
	if fs == nil {
		return token.Token{}
	}
	return fs.Token
}

// WilesStatement represents a while loop.
// wiles (cond) { ... }
type WilesStatement struct {
	Token     token.Token // The 'wiles' token
	Condition Expression
	Body      *BlockStatement
}

func (ws *WilesStatement) statementNode()       {}
func (ws *WilesStatement) TokenLiteral() string { return ws.Token.Lexeme }
func (ws *WilesStatement) GetToken() token.Token {
	if ws == nil {
		return token.Token{}
	}
	return ws.Token
}

// BreakStatement carries a value out of the innermost enclosing loop.
// break expr;
type BreakStatement struct {
	Token token.Token // The 'break' token
	Value Expression
}

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Lexeme }
func (bs *BreakStatement) GetToken() token.Token {
	if bs == nil {
		return token.Token{}
	}
	return bs.Token
}

// MatchArm is a single pattern => body arm.
type MatchArm struct {
	Pattern Pattern
	Body    Statement // ExpressionStatement or BlockStatement
}

// MatchStatement represents a match over a scrutinee.
// match x { pattern => expr, ... }
type MatchStatement struct {
	Token      token.Token // The 'match' token
	Expression Expression
	Arms       []*MatchArm
}

func (ms *MatchStatement) statementNode()       {}
func (ms *MatchStatement) TokenLiteral() string { return ms.Token.Lexeme }
func (ms *MatchStatement) GetToken() token.Token {
	if ms == nil {
		return token.Token{}
	}
	return ms.Token
}
