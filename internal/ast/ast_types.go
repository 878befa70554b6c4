package ast

import (
	"strings"

	"github.com/nala-lang/nala/internal/token"
)

// TypeLiteral is a syntactic type annotation, resolved against the scope's
// type namespace during evaluation.
// Number, Opt<Number>, Func<Number, String>, Array<T>
type TypeLiteral struct {
	Token token.Token // The type name token
	Name  string
	Args  []*TypeLiteral
}

func (tl *TypeLiteral) TokenLiteral() string { return tl.Token.Lexeme }
func (tl *TypeLiteral) GetToken() token.Token {
	if tl == nil {
		return token.Token{}
	}
	return tl.Token
}

func (tl *TypeLiteral) String() string {
	if len(tl.Args) == 0 {
		return tl.Name
	}
	args := make([]string, 0, len(tl.Args))
	for _, arg := range tl.Args {
		args = append(args, arg.String())
	}
	return tl.Name + "<" + strings.Join(args, ", ") + ">"
}
