package embed

import (
	"reflect"
	"testing"

	"github.com/nala-lang/nala/internal/evaluator"
	"github.com/nala-lang/nala/internal/typesystem"
)

func TestParseAndInterpret(t *testing.T) {
	program, err := Parse("print('hello world');")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	ctx := evaluator.NewTestContext()
	if err := NewRuntime(ctx).Interpret(program); err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if !reflect.DeepEqual(ctx.GetOutput(), []string{"hello world"}) {
		t.Fatalf("got %q", ctx.GetOutput())
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("const = ;"); err == nil {
		t.Fatal("expected parse errors")
	}
}

func TestRuntimeErrorSurfaced(t *testing.T) {
	err := Run("print(1/0);", evaluator.NewTestContext())
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	rerr, ok := err.(*evaluator.RuntimeError)
	if !ok {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
	if rerr.ErrKind != evaluator.DivideByZero {
		t.Fatalf("expected DivideByZero, got %s", rerr.ErrKind)
	}
}

func TestSuccessfulRunReturnsNilError(t *testing.T) {
	if err := Run("const x = 1;", evaluator.NewTestContext()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestRegisterBuiltin(t *testing.T) {
	program, err := Parse("print(double(21));")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	ctx := evaluator.NewTestContext()
	runtime := NewRuntime(ctx)

	numType := typesystem.TPrimitive{Name: typesystem.Number}
	err = runtime.RegisterBuiltin(
		"double",
		[]evaluator.Param{{Ident: "n", Type: numType}},
		numType,
		func(args map[string]evaluator.Value, ctx evaluator.IoContext) (evaluator.Value, *evaluator.RuntimeError) {
			n := args["n"].(*evaluator.Num)
			return &evaluator.Num{Value: n.Value * 2}, nil
		},
	)
	if err != nil {
		t.Fatalf("unexpected registration error: %v", err)
	}

	if err := runtime.Interpret(program); err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if !reflect.DeepEqual(ctx.GetOutput(), []string{"42"}) {
		t.Fatalf("got %q", ctx.GetOutput())
	}
}

func TestBuiltinReturnTypeChecked(t *testing.T) {
	program, err := Parse("lying();")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	runtime := NewRuntime(evaluator.NewTestContext())
	err = runtime.RegisterBuiltin(
		"lying",
		nil,
		typesystem.TPrimitive{Name: typesystem.Number},
		func(args map[string]evaluator.Value, ctx evaluator.IoContext) (evaluator.Value, *evaluator.RuntimeError) {
			return &evaluator.String{Value: "not a number"}, nil
		},
	)
	if err != nil {
		t.Fatalf("unexpected registration error: %v", err)
	}

	rerr := runtime.Interpret(program)
	if rerr == nil {
		t.Fatal("expected a runtime error")
	}
	if kind := rerr.(*evaluator.RuntimeError).ErrKind; kind != evaluator.ReturnTypeMismatch {
		t.Fatalf("expected ReturnTypeMismatch, got %s", kind)
	}
}
