package parser

import (
	"github.com/nala-lang/nala/internal/ast"
	"github.com/nala-lang/nala/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.CONST, token.LET:
		return p.parseDeclareStatement()
	case token.FUNC:
		return p.parseFunctionStatement()
	case token.ENUM:
		return p.parseEnumStatement()
	case token.STRUCT:
		return p.parseStructStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.WILES:
		return p.parseWilesStatement()
	case token.BREAK:
		return p.parseBreakStatement()
	case token.MATCH:
		return p.parseMatchStatement()
	case token.SEMICOLON:
		// Stray statement terminator.
		return nil
	default:
		return p.parseExpressionOrAssignStatement()
	}
}

// parseDeclareStatement parses `const x = expr;` and `let x: T = expr;`.
func (p *Parser) parseDeclareStatement() ast.Statement {
	stmt := &ast.DeclareStatement{Token: p.curToken, Mutable: p.curTokenIs(token.LET)}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		stmt.TypeAnnotation = p.parseTypeLiteral()
		if stmt.TypeAnnotation == nil {
			return nil
		}
	}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)

	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}

	return stmt
}

func (p *Parser) parseFunctionStatement() ast.Statement {
	stmt := &ast.FunctionStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if p.peekTokenIs(token.LT) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		stmt.TypeParam = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
		if !p.expectPeek(token.GT) {
			return nil
		}
	}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	stmt.Parameters = p.parseParameters()

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		stmt.ReturnType = p.parseTypeLiteral()
		if stmt.ReturnType == nil {
			return nil
		}
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()

	return stmt
}

// parseParameters parses `(p1: T1, p2: T2)`; the opening paren is current.
func (p *Parser) parseParameters() []*ast.Parameter {
	params := []*ast.Parameter{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}

	for {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		param := &ast.Parameter{Name: &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}}

		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		param.Type = p.parseTypeLiteral()
		if param.Type == nil {
			return nil
		}
		params = append(params, param)

		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return params
}

func (p *Parser) parseEnumStatement() ast.Statement {
	stmt := &ast.EnumStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if p.peekTokenIs(token.LT) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		stmt.TypeParam = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
		if !p.expectPeek(token.GT) {
			return nil
		}
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	for !p.peekTokenIs(token.RBRACE) {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		variant := &ast.VariantDeclare{Name: &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}}

		if p.peekTokenIs(token.LPAREN) {
			p.nextToken()
			p.nextToken()
			variant.DataType = p.parseTypeLiteral()
			if variant.DataType == nil {
				return nil
			}
			if !p.expectPeek(token.RPAREN) {
				return nil
			}
		}
		stmt.Variants = append(stmt.Variants, variant)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}

	p.nextToken() // consume '}'

	return stmt
}

func (p *Parser) parseStructStatement() ast.Statement {
	stmt := &ast.StructStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if p.peekTokenIs(token.LT) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		stmt.TypeParam = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
		if !p.expectPeek(token.GT) {
			return nil
		}
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	for !p.peekTokenIs(token.RBRACE) {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		field := &ast.StructFieldDeclare{Name: &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}}

		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		field.Type = p.parseTypeLiteral()
		if field.Type == nil {
			return nil
		}
		stmt.Fields = append(stmt.Fields, field)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}

	p.nextToken() // consume '}'

	return stmt
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if p.peekTokenIs(token.IF) {
			p.nextToken()
			stmt.Alternative = p.parseIfStatement()
		} else {
			if !p.expectPeek(token.LBRACE) {
				return nil
			}
			stmt.Alternative = p.parseBlockStatement()
		}
	}

	return stmt
}

func (p *Parser) parseForStatement() ast.Statement {
	stmt := &ast.ForStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.ItemName = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if !p.expectPeek(token.IN) {
		return nil
	}
	p.nextToken()
	stmt.Iterable = p.parseExpression(LOWEST)

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()

	return stmt
}

func (p *Parser) parseWilesStatement() ast.Statement {
	stmt := &ast.WilesStatement{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()

	return stmt
}

func (p *Parser) parseBreakStatement() ast.Statement {
	stmt := &ast.BreakStatement{Token: p.curToken}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)

	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}

	return stmt
}

func (p *Parser) parseMatchStatement() ast.Statement {
	stmt := &ast.MatchStatement{Token: p.curToken}

	p.nextToken()
	stmt.Expression = p.parseExpression(LOWEST)

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		arm := p.parseMatchArm()
		if arm == nil {
			return nil
		}
		stmt.Arms = append(stmt.Arms, arm)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}

	p.nextToken() // consume '}'

	return stmt
}

// parseMatchArm parses `pattern => expr` or `pattern => { ... }`; the
// pattern's first token is current.
func (p *Parser) parseMatchArm() *ast.MatchArm {
	pattern := p.parsePattern()
	if pattern == nil {
		return nil
	}

	if !p.expectPeek(token.FATARROW) {
		return nil
	}

	if p.peekTokenIs(token.LBRACE) {
		p.nextToken()
		return &ast.MatchArm{Pattern: pattern, Body: p.parseBlockStatement()}
	}

	p.nextToken()
	tok := p.curToken
	expr := p.parseExpression(LOWEST)
	return &ast.MatchArm{Pattern: pattern, Body: &ast.ExpressionStatement{Token: tok, Expression: expr}}
}

func (p *Parser) parsePattern() ast.Pattern {
	switch p.curToken.Type {
	case token.UNDERSCORE:
		return &ast.WildcardPattern{Token: p.curToken}
	case token.IDENT:
		if !p.peekTokenIs(token.DOUBLECOLON) {
			return &ast.IdentifierPattern{Token: p.curToken, Value: p.curToken.Lexeme}
		}
		pattern := &ast.EnumPattern{
			Token: p.curToken,
			Enum:  &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme},
		}
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		pattern.Variant = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

		if p.peekTokenIs(token.LPAREN) {
			p.nextToken()
			if !p.expectPeek(token.IDENT) {
				return nil
			}
			pattern.Binding = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
			if !p.expectPeek(token.RPAREN) {
				return nil
			}
		}
		return pattern
	default:
		p.addError(p.curToken, "unexpected token %s in pattern", p.curToken.Type)
		return nil
	}
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}

	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	if p.curTokenIs(token.EOF) {
		p.addError(p.curToken, "unterminated block, expected '}'")
	}

	return block
}

// parseExpressionOrAssignStatement disambiguates `place = expr;` from a
// bare expression statement.
func (p *Parser) parseExpressionOrAssignStatement() ast.Statement {
	tok := p.curToken
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	if p.peekTokenIs(token.ASSIGN) {
		if !isPlaceExpression(expr) {
			p.addError(p.peekToken, "cannot assign to this expression")
			return nil
		}
		p.nextToken()
		stmt := &ast.AssignStatement{Token: p.curToken, Target: expr}
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
		if !p.expectPeek(token.SEMICOLON) {
			return nil
		}
		return stmt
	}

	// The semicolon is optional for the final expression of a block, which
	// doubles as the block's value.
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	} else if !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.peekError(token.SEMICOLON)
		return nil
	}
	return &ast.ExpressionStatement{Token: tok, Expression: expr}
}

func isPlaceExpression(expr ast.Expression) bool {
	switch e := expr.(type) {
	case *ast.Identifier:
		return true
	case *ast.IndexExpression:
		return isPlaceExpression(e.Left)
	case *ast.MemberAccessExpression:
		return isPlaceExpression(e.Object)
	default:
		return false
	}
}
