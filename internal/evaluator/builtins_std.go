package evaluator

import (
	"math"
	"strconv"

	"github.com/nala-lang/nala/internal/config"
	"github.com/nala-lang/nala/internal/typesystem"
)

func registerStdBuiltins(e *Evaluator) error {
	if err := e.RegisterBuiltin(
		config.LenFuncName,
		[]Param{{Ident: "array", Type: arrayOf(primitive(typesystem.Any))}},
		primitive(typesystem.Number),
		builtinLen,
	); err != nil {
		return err
	}

	if err := e.RegisterBuiltin(
		config.SliceFuncName,
		[]Param{
			{Ident: "array", Type: arrayOf(primitive(typesystem.Any))},
			{Ident: "start", Type: primitive(typesystem.Number)},
			{Ident: "end", Type: primitive(typesystem.Number)},
		},
		arrayOf(primitive(typesystem.Any)),
		builtinSlice,
	); err != nil {
		return err
	}

	if err := e.RegisterBuiltin(
		config.FloorFuncName,
		[]Param{{Ident: "value", Type: primitive(typesystem.Number)}},
		primitive(typesystem.Number),
		builtinFloor,
	); err != nil {
		return err
	}

	if err := e.RegisterBuiltin(
		config.NumFuncName,
		[]Param{{Ident: "value", Type: primitive(typesystem.String)}},
		primitive(typesystem.Number),
		builtinNum,
	); err != nil {
		return err
	}

	return e.RegisterBuiltin(
		config.StrFuncName,
		[]Param{{Ident: "value", Type: primitive(typesystem.Any)}},
		primitive(typesystem.String),
		builtinStr,
	)
}

func builtinLen(args map[string]Value, ctx IoContext) (Value, *RuntimeError) {
	array, ok := args["array"].(*Array)
	if !ok {
		return nil, newError(TypeMismatch, "len expects an Array")
	}
	return &Num{Value: float32(array.Len())}, nil
}

// builtinSlice returns a new array over [start, end); the elements are
// shared, the backing store is not.
func builtinSlice(args map[string]Value, ctx IoContext) (Value, *RuntimeError) {
	array, ok := args["array"].(*Array)
	if !ok {
		return nil, newError(TypeMismatch, "slice expects an Array")
	}
	start, startOk := args["start"].(*Num)
	end, endOk := args["end"].(*Num)
	if !startOk || !endOk || !start.IsInteger() || !end.IsInteger() {
		return nil, newError(TypeMismatch, "slice bounds do not resolve to integer Numbers")
	}

	from, to := int(start.Value), int(end.Value)
	if from < 0 || to > array.Len() || from > to {
		return nil, newError(IndexOutOfRange,
			"slice bounds [%d, %d) are out of range for array of length %d", from, to, array.Len())
	}

	elements := make([]Value, to-from)
	copy(elements, array.Elements[from:to])
	return &Array{Elements: elements}, nil
}

func builtinFloor(args map[string]Value, ctx IoContext) (Value, *RuntimeError) {
	value, ok := args["value"].(*Num)
	if !ok {
		return nil, newError(TypeMismatch, "floor expects a Number")
	}
	return &Num{Value: float32(math.Floor(float64(value.Value)))}, nil
}

func builtinNum(args map[string]Value, ctx IoContext) (Value, *RuntimeError) {
	value, ok := args["value"].(*String)
	if !ok {
		return nil, newError(TypeMismatch, "num expects a String")
	}
	parsed, err := strconv.ParseFloat(value.Value, 32)
	if err != nil {
		return nil, newError(TypeMismatch, "could not parse `%s` as a Number", value.Value)
	}
	return &Num{Value: float32(parsed)}, nil
}

func builtinStr(args map[string]Value, ctx IoContext) (Value, *RuntimeError) {
	return &String{Value: args["value"].Inspect()}, nil
}
