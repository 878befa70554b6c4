package evaluator

import (
	"github.com/nala-lang/nala/internal/ast"
)

// Evaluator interprets a parsed program against a scope arena. Evaluation
// is single-threaded and strictly left-to-right; the first runtime error
// aborts the program.
type Evaluator struct {
	scopes    *Scopes
	rootScope int
	ctx       IoContext
}

// New creates an evaluator with a fresh root scope and the default builtin
// library registered into it.
func New(ctx IoContext) *Evaluator {
	e := &Evaluator{scopes: NewScopes(), ctx: ctx}
	e.rootScope = e.scopes.NewScope(-1)
	e.registerDefaultBuiltins()
	return e
}

// Interpret runs the program's statements in order. The value of a
// top-level expression statement is discarded.
func (e *Evaluator) Interpret(program *ast.Program) *RuntimeError {
	for _, stmt := range program.Statements {
		result := e.evalStatement(stmt, e.rootScope)
		if err, ok := result.(*RuntimeError); ok {
			return err
		}
	}
	return nil
}

func (e *Evaluator) evalStatement(stmt ast.Statement, scope int) Value {
	switch node := stmt.(type) {
	case *ast.DeclareStatement:
		return e.evalDeclareStatement(node, scope)
	case *ast.AssignStatement:
		return e.evalAssignStatement(node, scope)
	case *ast.ExpressionStatement:
		return e.evalExpression(node.Expression, scope)
	case *ast.FunctionStatement:
		return e.evalFunctionStatement(node, scope)
	case *ast.EnumStatement:
		return e.evalEnumStatement(node, scope)
	case *ast.StructStatement:
		return e.evalStructStatement(node, scope)
	case *ast.IfStatement:
		return e.evalIfStatement(node, scope)
	case *ast.ForStatement:
		return e.evalForStatement(node, scope)
	case *ast.WilesStatement:
		return e.evalWilesStatement(node, scope)
	case *ast.BreakStatement:
		return e.evalBreakStatement(node, scope)
	case *ast.MatchStatement:
		return e.evalMatchStatement(node, scope)
	case *ast.BlockStatement:
		blockScope := e.scopes.NewScope(scope)
		return e.evalBlock(node, blockScope)
	default:
		return newError(OperationUnsupported, "unsupported statement")
	}
}

// evalBlock threads a current value through the block: it starts Void, and
// the first statement that produces a non-Void value ends the block with
// that value, so Break and function results unwind cleanly.
func (e *Evaluator) evalBlock(block *ast.BlockStatement, scope int) Value {
	for _, stmt := range block.Statements {
		result := e.evalStatement(stmt, scope)
		if isError(result) {
			return result
		}
		if result.Kind() != VOID_VALUE {
			return result
		}
	}
	return VOID
}

func (e *Evaluator) evalExpression(expr ast.Expression, scope int) Value {
	switch node := expr.(type) {
	case *ast.NumberLiteral:
		return &Num{Value: node.Value}
	case *ast.StringLiteral:
		return &String{Value: node.Value}
	case *ast.BooleanLiteral:
		return nativeBoolToBooleanValue(node.Value)
	case *ast.Identifier:
		return e.evalIdentifier(node, scope)
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(node, scope)
	case *ast.ObjectLiteral:
		return e.evalObjectLiteral(node, scope)
	case *ast.InfixExpression:
		return e.evalInfixExpression(node, scope)
	case *ast.EnumVariantExpression:
		return e.evalEnumVariantExpression(node, scope)
	case *ast.CallExpression:
		return e.evalCallExpression(node, scope)
	case *ast.IndexExpression:
		return e.evalIndexExpression(node, scope)
	case *ast.MemberAccessExpression:
		return e.evalMemberAccessExpression(node, scope)
	default:
		return newError(OperationUnsupported, "unsupported expression")
	}
}

func (e *Evaluator) evalIdentifier(node *ast.Identifier, scope int) Value {
	v, err := e.scopes.GetValue(node.Value, scope)
	if err != nil {
		err.Line = node.Token.Line
		err.Column = node.Token.Column
		return err
	}
	return v
}

func (e *Evaluator) evalArrayLiteral(node *ast.ArrayLiteral, scope int) Value {
	elements := make([]Value, 0, len(node.Elements))
	for _, elem := range node.Elements {
		v := e.evalExpression(elem, scope)
		if isError(v) {
			return v
		}
		elements = append(elements, v)
	}
	return &Array{Elements: elements}
}

func (e *Evaluator) evalObjectLiteral(node *ast.ObjectLiteral, scope int) Value {
	object := NewObject()
	for _, field := range node.Fields {
		v := e.evalExpression(field.Value, scope)
		if isError(v) {
			return v
		}
		object.Set(field.Key.Value, v)
	}
	return object
}
