package forge

import (
	"fmt"
	"reflect"
	"time"
)

/*
 * Argument evaluation: the single choke point for type safety in the
 * builder. Every operator method constructs one argument per parameter;
 * construction validates the value against the expected type and rendering
 * produces the wire representation. Type errors are raised here and nowhere
 * else.
 *
 * Dynamic values are matched by declared type, exactly. Literals are
 * matched by runtime representation: any Go numeric satisfies number,
 * time.Time or string satisfies date, slices and maps satisfy list/object.
 * No coercion, ever.
 */

// argument pairs a raw value with the type its operator slot expects.
type argument struct {
	value    any
	expected ValueType
}

// newArgument validates value against the expected type. The value may be a
// literal or a *DynamicValue; mismatches return ErrTypeMismatch naming both
// types.
func newArgument(value any, expected ValueType) (argument, error) {
	if dv, ok := value.(*DynamicValue); ok {
		if dv.Type != expected {
			return argument{}, fmt.Errorf("%w: dynamic value %q has type %s, but %s was expected",
				ErrTypeMismatch, dv.Name, dv.Type, expected)
		}
		return argument{value: value, expected: expected}, nil
	}
	if !matchesType(value, expected) {
		return argument{}, fmt.Errorf("%w: value %v has type %T, but %s was expected",
			ErrTypeMismatch, value, value, expected)
	}
	return argument{value: value, expected: expected}, nil
}

// render produces the wire representation: dynamic values render to their
// substitution object, literals pass through, and containers are walked
// recursively so embedded dynamic values render at any depth.
func (a argument) render() any {
	return renderValue(a.value)
}

func renderValue(value any) any {
	if dv, ok := value.(*DynamicValue); ok {
		return dv.Wire()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = renderValue(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		for _, key := range rv.MapKeys() {
			out[fmt.Sprintf("%v", key.Interface())] = renderValue(rv.MapIndex(key).Interface())
		}
		return out
	default:
		return value
	}
}

// matchesType reports whether a literal's runtime representation satisfies
// the expected value type.
func matchesType(value any, expected ValueType) bool {
	switch expected {
	case ValueString:
		_, ok := value.(string)
		return ok
	case ValueBoolean:
		_, ok := value.(bool)
		return ok
	case ValueNumber:
		return isNumeric(value)
	case ValueDate:
		switch value.(type) {
		case time.Time, string:
			return true
		}
		return false
	case ValueList, ValueObject:
		switch reflect.ValueOf(value).Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return true
		}
		return false
	default:
		return false
	}
}

func isNumeric(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
