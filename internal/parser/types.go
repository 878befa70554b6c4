package parser

import (
	"github.com/nala-lang/nala/internal/ast"
	"github.com/nala-lang/nala/internal/token"
)

// parseTypeLiteral parses a type annotation; the type name token is
// current. Type arguments are angle-bracketed: Array<Number>,
// Func<Number, String>, Opt<T>.
func (p *Parser) parseTypeLiteral() *ast.TypeLiteral {
	if !p.curTokenIs(token.IDENT) {
		p.addError(p.curToken, "expected type name, got %s", p.curToken.Type)
		return nil
	}

	lit := &ast.TypeLiteral{Token: p.curToken, Name: p.curToken.Lexeme}

	if !p.peekTokenIs(token.LT) {
		return lit
	}
	p.nextToken()

	for {
		p.nextToken()
		arg := p.parseTypeLiteral()
		if arg == nil {
			return nil
		}
		lit.Args = append(lit.Args, arg)

		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}

	if !p.expectPeek(token.GT) {
		return nil
	}

	return lit
}
