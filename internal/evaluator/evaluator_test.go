package evaluator_test

import (
	"reflect"
	"testing"

	"github.com/nala-lang/nala/internal/evaluator"
	"github.com/nala-lang/nala/internal/lexer"
	"github.com/nala-lang/nala/internal/parser"
)

func interpret(t *testing.T, source string, input ...string) (*evaluator.TestContext, *evaluator.RuntimeError) {
	t.Helper()

	p := parser.New(lexer.New(source))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parser errors for %q: %v", source, errs)
	}

	ctx := evaluator.NewTestContext()
	ctx.Input = input
	err := evaluator.New(ctx).Interpret(program)
	return ctx, err
}

func expectOutput(t *testing.T, source string, want []string) {
	t.Helper()
	ctx, err := interpret(t, source)
	if err != nil {
		t.Fatalf("unexpected runtime error: %s", err.Inspect())
	}
	if !reflect.DeepEqual(ctx.GetOutput(), want) {
		t.Fatalf("wrong output.\nsource: %s\nwant: %q\ngot:  %q", source, want, ctx.GetOutput())
	}
}

func expectError(t *testing.T, source string, kind evaluator.ErrorKind) {
	t.Helper()
	_, err := interpret(t, source)
	if err == nil {
		t.Fatalf("expected %s error, got none.\nsource: %s", kind, source)
	}
	if err.ErrKind != kind {
		t.Fatalf("expected %s error, got %s (%s)", kind, err.ErrKind, err.Message)
	}
}

func TestArithmetic(t *testing.T) {
	expectOutput(t, "print(5 + 10 * 2 / 4 - 3);", []string{"7"})
	expectOutput(t, "print(311);", []string{"311"})
	expectOutput(t, "print(1 + 0.5);", []string{"1.5"})
	expectOutput(t, "print(10 - 2 * 3);", []string{"4"})
}

func TestStringConcat(t *testing.T) {
	expectOutput(t, "const foo = 'hello '; const bar = 'world'; print(foo + bar);", []string{"hello world"})
	expectOutput(t, "print('n = ' + 3);", []string{"n = 3"})
	expectOutput(t, "print(3 + ' is n');", []string{"3 is n"})
}

func TestForLoop(t *testing.T) {
	expectOutput(t, "let xs = [1,2,3]; for x in xs { print(x); }", []string{"1", "2", "3"})
	expectOutput(t, "for x in [] { print(x); }", nil)
}

func TestEnumAndMatch(t *testing.T) {
	expectOutput(t, `
		enum Opt<A> { Some(A), None }
		const v = Opt::Some(7);
		match v {
			Opt::Some(x) => print(x),
			Opt::None => print('none'),
		}
	`, []string{"7"})

	expectOutput(t, `
		enum Opt<A> { Some(A), None }
		const v = Opt::None;
		match v {
			Opt::Some(x) => print(x),
			Opt::None => print('none'),
		}
	`, []string{"none"})

	expectOutput(t, `
		enum Color { Red, Green }
		match Color::Green {
			Color::Red => print('red'),
			_ => print('other'),
		}
	`, []string{"other"})
}

func TestFunctionCall(t *testing.T) {
	expectOutput(t, "func add(a: Number, b: Number): Number { a + b } print(add(2,3));", []string{"5"})
}

func TestWilesLoop(t *testing.T) {
	expectOutput(t, "let i = 0; wiles (i < 3) { print(i); i = i + 1; }", []string{"0", "1", "2"})
}

func TestImmutable(t *testing.T) {
	expectError(t, "const x = 1; x = 2;", evaluator.Immutable)
}

func TestDeclareTypeMismatch(t *testing.T) {
	expectError(t, "let x: String = 1;", evaluator.TypeMismatch)
}

func TestDivideByZero(t *testing.T) {
	expectError(t, "print(1/0);", evaluator.DivideByZero)
}

func TestMatchNoArm(t *testing.T) {
	expectError(t, `
		enum Opt<A> { Some(A), None }
		match Opt::Some(1) { Opt::None => 0 }
	`, evaluator.MatchNoArm)
}

func TestTypePreservationOnAssignment(t *testing.T) {
	expectOutput(t, "let x = 1; x = 2; print(x);", []string{"2"})
	expectError(t, "let x = 1; x = 'two';", evaluator.TypeMismatch)
	expectOutput(t, "let x: Number = 1; x = 3; print(x);", []string{"3"})
}

func TestArrayAliasing(t *testing.T) {
	expectOutput(t, `
		let a = [1, 2];
		let b = a;
		b[0] = 9;
		print(a[0]);
	`, []string{"9"})
}

func TestScopeIsolation(t *testing.T) {
	expectError(t, "if (true) { const y = 1; } print(y);", evaluator.UnknownIdent)
	expectError(t, "for x in [1] { const tmp = x; } print(tmp);", evaluator.UnknownIdent)
}

func TestShadowing(t *testing.T) {
	expectOutput(t, `
		const x = 1;
		if (true) {
			const x = 2;
			print(x);
		}
		print(x);
	`, []string{"2", "1"})
}

func TestAlreadyBound(t *testing.T) {
	expectError(t, "const x = 1; const x = 2;", evaluator.AlreadyBound)
	expectError(t, "enum E { A } enum E { B }", evaluator.AlreadyBound)
}

func TestVoidAssignment(t *testing.T) {
	expectError(t, "const x = print('hi');", evaluator.VoidAssignment)
}

func TestClosures(t *testing.T) {
	expectOutput(t, `
		const base = 10;
		func addBase(n: Number): Number { n + base }
		print(addBase(5));
	`, []string{"15"})
}

func TestArityMismatch(t *testing.T) {
	expectError(t, "func f(a: Number): Number { a } f(1, 2);", evaluator.ArityMismatch)
}

func TestNotCallable(t *testing.T) {
	expectError(t, "const x = 1; x(2);", evaluator.NotCallable)
}

func TestCallArgumentTypeMismatch(t *testing.T) {
	expectError(t, "func f(a: Number): Number { a } f('one');", evaluator.TypeMismatch)
}

func TestReturnTypeMismatch(t *testing.T) {
	expectError(t, "func bad(): String { 1 } bad();", evaluator.ReturnTypeMismatch)
}

func TestGenericFunction(t *testing.T) {
	expectOutput(t, `
		func first<T>(xs: Array<T>): T { xs[0] }
		print(first([7, 8]));
		print(first(['a', 'b']));
	`, []string{"7", "a"})

	expectError(t, `
		func first<T>(xs: Array<T>): T { xs[0] }
		first([]);
	`, evaluator.TypeUnknown)
}

func TestRecursion(t *testing.T) {
	expectOutput(t, `
		func fact(n: Number): Number {
			if (n < 1) { 1 } else { n * fact(n - 1) }
		}
		print(fact(5));
	`, []string{"120"})
}

func TestBreakUnwindsInnermostLoop(t *testing.T) {
	expectOutput(t, `
		func f(): Number {
			wiles (true) { break 42; }
		}
		print(f());
	`, []string{"42"})

	expectOutput(t, `
		for x in [1, 2, 3] {
			if (x > 1) { break x; }
			print(x);
		}
		print('after');
	`, []string{"1", "after"})
}

func TestIndexing(t *testing.T) {
	expectOutput(t, "const xs = [4, 5, 6]; print(xs[1]);", []string{"5"})
	expectError(t, "const xs = [4]; print(xs[2]);", evaluator.IndexOutOfRange)
	expectError(t, "const xs = [4]; xs[9] = 1;", evaluator.IndexOutOfRange)
	expectError(t, "const xs = [4]; print(xs[0.5]);", evaluator.TypeMismatch)
	expectError(t, "const n = 1; print(n[0]);", evaluator.NotIndexable)
}

func TestObjects(t *testing.T) {
	expectOutput(t, "const p = { x: 1, y: 2 }; print(p.x);", []string{"1"})
	expectOutput(t, "let p = { x: 1 }; p.x = 5; print(p.x);", []string{"5"})
	expectOutput(t, "let p = { x: 1 }; p.y = 2; print(p.y);", []string{"2"})
	expectError(t, "const p = { x: 1 }; print(p.z);", evaluator.UnknownMember)
	expectOutput(t, "const p = { x: 7 }; print(p['x']);", []string{"7"})
}

func TestStructDeclarations(t *testing.T) {
	expectOutput(t, `
		struct Point { x: Number, y: Number }
		let p: Point = { x: 1, y: 2 };
		print(p.y);
	`, []string{"2"})

	// Width subtyping: extra fields are fine.
	expectOutput(t, `
		struct Point { x: Number, y: Number }
		let p: Point = { x: 1, y: 2, z: 3 };
		print(p.x);
	`, []string{"1"})

	expectError(t, `
		struct Point { x: Number, y: Number }
		let p: Point = { x: 1 };
	`, evaluator.TypeMismatch)
}

func TestComparisons(t *testing.T) {
	expectOutput(t, "print(1 < 2); print(2 < 1); print(2 > 1);", []string{"true", "false", "true"})
	expectOutput(t, "print('a' < 'b'); print('b' > 'a');", []string{"true", "true"})
	// false < true
	expectOutput(t, "print(false < true); print(true < false);", []string{"true", "false"})
	expectOutput(t, "print(1 == 1); print(1 == 2);", []string{"true", "false"})
	expectOutput(t, "print('a' == 'a');", []string{"true"})
}

func TestVariantEquality(t *testing.T) {
	expectOutput(t, `
		enum Opt<A> { Some(A), None }
		print(Opt::Some(1) == Opt::Some(1));
		print(Opt::Some(1) == Opt::Some(2));
		print(Opt::Some(1) == Opt::None);
	`, []string{"true", "false", "false"})
}

func TestOperationUnsupported(t *testing.T) {
	expectError(t, "print(1 == 'one');", evaluator.OperationUnsupported)
	expectError(t, "print([1] == [1]);", evaluator.OperationUnsupported)
	expectError(t, "print({ x: 1 } == { x: 1 });", evaluator.OperationUnsupported)
	expectError(t, "print(true + false);", evaluator.OperationUnsupported)
}

func TestEnumConstruction(t *testing.T) {
	expectError(t, "const v = Missing::Some(1);", evaluator.UnknownIdent)
	expectError(t, `
		enum Opt<A> { Some(A), None }
		const v = Opt::Wrong(1);
	`, evaluator.UnknownMember)
	expectError(t, `
		enum Color { Red, Green }
		const v = Color::Red(1);
	`, evaluator.TypeMismatch)
	expectError(t, `
		enum Box { Full(Number) }
		const v = Box::Full('nope');
	`, evaluator.TypeMismatch)
	expectError(t, "const n = 1; struct S { x: Number } const v = S::Some(1);", evaluator.NotAnEnum)
}

func TestVariantRoundTrip(t *testing.T) {
	expectOutput(t, `
		enum Opt<A> { Some(A), None }
		const v = Opt::Some('payload');
		match v { Opt::Some(y) => print(y), _ => print('lost') }
	`, []string{"payload"})
}

func TestNonBoolCondition(t *testing.T) {
	expectError(t, "if (1) { print('no'); }", evaluator.TypeMismatch)
	expectError(t, "wiles (1) { print('no'); }", evaluator.TypeMismatch)
	expectError(t, "for x in 1 { print('no'); }", evaluator.TypeMismatch)
}

func TestScriptedInput(t *testing.T) {
	ctx, err := interpret(t, "const name = read(); print('hello ' + name);", "world")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Inspect())
	}
	if !reflect.DeepEqual(ctx.GetOutput(), []string{"hello world"}) {
		t.Fatalf("got %q", ctx.GetOutput())
	}

	ctx, err = interpret(t, "const n = readnum(); print(n + 1);", "41")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Inspect())
	}
	if !reflect.DeepEqual(ctx.GetOutput(), []string{"42"}) {
		t.Fatalf("got %q", ctx.GetOutput())
	}

	_, err = interpret(t, "const n = readnum();", "not a number")
	if err == nil || err.ErrKind != evaluator.TypeMismatch {
		t.Fatalf("expected TypeMismatch for unparsable number, got %v", err)
	}
}

func TestStdBuiltins(t *testing.T) {
	expectOutput(t, "print(len([1, 2, 3]));", []string{"3"})
	expectOutput(t, "print(floor(2.7));", []string{"2"})
	expectOutput(t, "print(num('12') + 1);", []string{"13"})
	expectOutput(t, "print(str(12) + '!');", []string{"12!"})
	expectOutput(t, "const xs = slice([1, 2, 3, 4], 1, 3); print(xs[0]); print(len(xs));", []string{"2", "2"})
	expectError(t, "slice([1], 0, 5);", evaluator.IndexOutOfRange)
}

func TestYamlBuiltins(t *testing.T) {
	expectOutput(t, "const doc = parseYaml('answer: 42'); print(doc.answer);", []string{"42"})
	expectOutput(t, "const xs = parseYaml('[1, 2]'); print(len(xs));", []string{"2"})
	expectOutput(t, "print(toYaml(7));", []string{"7\n"})
}

func TestDisplayForms(t *testing.T) {
	expectOutput(t, "print([1, 2, 3]);", []string{"<Array[3]>"})
	expectOutput(t, "print({ b: 2, a: 1 });", []string{"{ a: 1, b: 2, }"})
	expectOutput(t, `
		enum Opt<A> { Some(A), None }
		print(Opt::Some(7));
		print(Opt::None);
	`, []string{"Opt::Some(7)", "Opt::None"})
	expectOutput(t, "func f(a: Number): String { 'x' } print(f);", []string{"Func<Number, String>"})
	expectOutput(t, "print(true); print(false);", []string{"true", "false"})
}

func TestDeterminism(t *testing.T) {
	source := `
		let total = 0;
		for x in [1, 2, 3, 4] { total = total + x; }
		print(total);
		print({ z: 1, a: 2 });
	`
	first, err := interpret(t, source)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Inspect())
	}
	for i := 0; i < 5; i++ {
		next, err := interpret(t, source)
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Inspect())
		}
		if !reflect.DeepEqual(first.GetOutput(), next.GetOutput()) {
			t.Fatalf("non-deterministic output: %q vs %q", first.GetOutput(), next.GetOutput())
		}
	}
}

func TestMutationDuringIteration(t *testing.T) {
	// The loop reads elements through the shared reference, so mutations
	// are visible to later iterations; the length is snapshotted.
	expectOutput(t, `
		let xs = [1, 2, 3];
		for x in xs {
			xs[2] = 9;
			print(x);
		}
	`, []string{"1", "2", "9"})
}

func TestUnknownIdent(t *testing.T) {
	expectError(t, "print(missing);", evaluator.UnknownIdent)
	expectError(t, "missing = 1;", evaluator.UnknownIdent)
	expectError(t, "let x: Missing = 1;", evaluator.UnknownIdent)
}

func TestTopLevelExpressionValueIsDiscarded(t *testing.T) {
	expectOutput(t, "1 + 1; print('still running');", []string{"still running"})
}

func TestEmptyArrayDeclaration(t *testing.T) {
	expectOutput(t, "let xs: Array<Number> = []; print(len(xs));", []string{"0"})
}
