package evaluator

import (
	"strconv"

	"github.com/nala-lang/nala/internal/config"
	"github.com/nala-lang/nala/internal/typesystem"
)

func registerIoBuiltins(e *Evaluator) error {
	if err := e.RegisterBuiltin(
		config.PrintFuncName,
		[]Param{{Ident: "message", Type: primitive(typesystem.Any)}},
		primitive(typesystem.Void),
		builtinPrint,
	); err != nil {
		return err
	}

	if err := e.RegisterBuiltin(
		config.ReadFuncName,
		[]Param{},
		primitive(typesystem.String),
		builtinRead,
	); err != nil {
		return err
	}

	return e.RegisterBuiltin(
		config.ReadNumFuncName,
		[]Param{},
		primitive(typesystem.Number),
		builtinReadNum,
	)
}

func builtinPrint(args map[string]Value, ctx IoContext) (Value, *RuntimeError) {
	ctx.Print(args["message"].Inspect())
	return VOID, nil
}

func builtinRead(args map[string]Value, ctx IoContext) (Value, *RuntimeError) {
	return &String{Value: ctx.ReadLine()}, nil
}

func builtinReadNum(args map[string]Value, ctx IoContext) (Value, *RuntimeError) {
	line := ctx.ReadLine()
	value, err := strconv.ParseFloat(line, 32)
	if err != nil {
		return nil, newError(TypeMismatch, "could not parse `%s` as a Number", line)
	}
	return &Num{Value: float32(value)}, nil
}
