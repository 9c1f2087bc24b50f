package forge

import (
	"fmt"
	"reflect"
)

// Field is a typed slot in a rule's request or response schema. Name is the
// display name, Key the stable wire identifier (defaults to the name), and
// Operators the catalogue of applicable operators emitted with the schema.
// The Type tag identifies the concrete kind; each field variant carries it
// directly so no runtime type inspection is needed.
type Field struct {
	Name        string
	Key         string
	Description string
	Default     any
	Type        FieldType
	Operators   map[string]OperatorDef
}

// Any returns the universal operator matching regardless of value. It takes
// no arguments and bypasses type checking.
func (f *Field) Any() OperatorResult {
	return OperatorResult{Operator: "any", Args: []any{}}
}

// unaryOp emits an operator application with no arguments.
func unaryOp(name string) OperatorResult {
	return OperatorResult{Operator: name, Args: []any{}}
}

// singleArgOp type-checks and validates one argument, then emits the
// operator application with the rendered argument.
func singleArgOp(fieldType FieldType, opKey, opName string, value any, expected ValueType) (OperatorResult, error) {
	arg, err := newArgument(value, expected)
	if err != nil {
		return OperatorResult{}, err
	}
	if err := validateOperator(fieldType, opKey, []any{value}); err != nil {
		return OperatorResult{}, err
	}
	return OperatorResult{Operator: opName, Args: []any{arg.render()}}, nil
}

// pairArgOp type-checks and validates two arguments of the same expected
// type, then emits the operator application.
func pairArgOp(fieldType FieldType, opKey, opName string, first, second any, expected ValueType) (OperatorResult, error) {
	firstArg, err := newArgument(first, expected)
	if err != nil {
		return OperatorResult{}, err
	}
	secondArg, err := newArgument(second, expected)
	if err != nil {
		return OperatorResult{}, err
	}
	if err := validateOperator(fieldType, opKey, []any{first, second}); err != nil {
		return OperatorResult{}, err
	}
	return OperatorResult{Operator: opName, Args: []any{firstArg.render(), secondArg.render()}}, nil
}

// listArgOp handles operators taking one list argument. A dynamic value
// must declare the list type; a literal must be a slice, validated for the
// operator and rendered element by element.
func listArgOp(fieldType FieldType, opKey, opName string, values any, elemType ValueType) (OperatorResult, error) {
	if dv, ok := values.(*DynamicValue); ok {
		arg, err := newArgument(dv, ValueList)
		if err != nil {
			return OperatorResult{}, err
		}
		return OperatorResult{Operator: opName, Args: []any{arg.render()}}, nil
	}

	rv := reflect.ValueOf(values)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return OperatorResult{}, fmt.Errorf("%w: value %v has type %T, but %s was expected",
			ErrTypeMismatch, values, values, ValueList)
	}
	if err := validateOperator(fieldType, opKey, []any{values}); err != nil {
		return OperatorResult{}, err
	}

	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		arg, err := newArgument(rv.Index(i).Interface(), elemType)
		if err != nil {
			return OperatorResult{}, err
		}
		out[i] = arg.render()
	}
	return OperatorResult{Operator: opName, Args: []any{out}}, nil
}
