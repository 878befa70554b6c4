package evaluator

import (
	"gopkg.in/yaml.v3"

	"github.com/nala-lang/nala/internal/typesystem"
)

func registerYamlBuiltins(e *Evaluator) error {
	if err := e.RegisterBuiltin(
		"parseYaml",
		[]Param{{Ident: "input", Type: primitive(typesystem.String)}},
		primitive(typesystem.Any),
		builtinParseYaml,
	); err != nil {
		return err
	}

	return e.RegisterBuiltin(
		"toYaml",
		[]Param{{Ident: "value", Type: primitive(typesystem.Any)}},
		primitive(typesystem.String),
		builtinToYaml,
	)
}

// builtinParseYaml parses a YAML document. Mappings become Objects,
// sequences become Arrays, scalars become Num/Bool/String.
func builtinParseYaml(args map[string]Value, ctx IoContext) (Value, *RuntimeError) {
	input := args["input"].(*String)

	var data interface{}
	if err := yaml.Unmarshal([]byte(input.Value), &data); err != nil {
		return nil, newError(TypeMismatch, "could not parse YAML: %v", err)
	}

	return valueFromYaml(data)
}

func valueFromYaml(data interface{}) (Value, *RuntimeError) {
	switch v := data.(type) {
	case nil:
		return VOID, nil
	case bool:
		return nativeBoolToBooleanValue(v), nil
	case int:
		return &Num{Value: float32(v)}, nil
	case int64:
		return &Num{Value: float32(v)}, nil
	case float64:
		return &Num{Value: float32(v)}, nil
	case string:
		return &String{Value: v}, nil
	case []interface{}:
		elements := make([]Value, len(v))
		for i, item := range v {
			elem, err := valueFromYaml(item)
			if err != nil {
				return nil, err
			}
			elements[i] = elem
		}
		return &Array{Elements: elements}, nil
	case map[string]interface{}:
		object := NewObject()
		for k, item := range v {
			field, err := valueFromYaml(item)
			if err != nil {
				return nil, err
			}
			object.Set(k, field)
		}
		return object, nil
	default:
		return nil, newError(TypeMismatch, "unsupported YAML value type %T", data)
	}
}

// builtinToYaml renders a value as a YAML document.
func builtinToYaml(args map[string]Value, ctx IoContext) (Value, *RuntimeError) {
	native, err := valueToGo(args["value"])
	if err != nil {
		return nil, err
	}

	out, marshalErr := yaml.Marshal(native)
	if marshalErr != nil {
		return nil, newError(OperationUnsupported, "could not encode YAML: %v", marshalErr)
	}

	return &String{Value: string(out)}, nil
}

func valueToGo(v Value) (interface{}, *RuntimeError) {
	switch val := v.(type) {
	case *Num:
		if val.IsInteger() {
			return int(val.Value), nil
		}
		return float64(val.Value), nil
	case *Boolean:
		return val.Value, nil
	case *String:
		return val.Value, nil
	case *Void:
		return nil, nil
	case *Array:
		elements := make([]interface{}, val.Len())
		for i := range val.Elements {
			elem, err := valueToGo(val.Get(i))
			if err != nil {
				return nil, err
			}
			elements[i] = elem
		}
		return elements, nil
	case *Object:
		fields := make(map[string]interface{}, len(val.Fields))
		for k, field := range val.Fields {
			converted, err := valueToGo(field)
			if err != nil {
				return nil, err
			}
			fields[k] = converted
		}
		return fields, nil
	default:
		return nil, newError(OperationUnsupported,
			"values of type %s cannot be encoded as YAML", kindName(v))
	}
}
