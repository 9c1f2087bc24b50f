package forge

import "fmt"

/*
 * Per-operator argument validation, separated from the operator catalogues
 * so the catalogues stay pure data and serialize cleanly. Lookup is keyed
 * on "<field type>.<operator key>"; operators without an entry accept any
 * argument shape the argument evaluator already admitted.
 *
 * Validation is skipped when an argument is a dynamic value: the literal is
 * not known until evaluation time, so range and emptiness predicates cannot
 * run client-side.
 */

// operatorValidators maps "<field type>.<operator key>" to the argument
// predicate enforced before an OperatorResult is emitted.
var operatorValidators = map[string]func(args []any) error{
	"number.between":     validRange,
	"number.not_between": validRange,
	"number.is_power_of": positiveBase,

	"string.contains":             nonEmptyString,
	"string.does_not_contain":     nonEmptyString,
	"string.starts_with":          nonEmptyString,
	"string.ends_with":            nonEmptyString,
	"string.matches_regex":        nonEmptyString,
	"string.does_not_match_regex": nonEmptyString,
	"string.is_included_in":       nonEmptyList,
	"string.is_not_included_in":   nonEmptyList,
}

// validateOperator runs the predicate registered for the operator, if any.
// Dynamic value arguments bypass validation entirely.
func validateOperator(fieldType FieldType, opKey string, args []any) error {
	for _, arg := range args {
		if _, ok := arg.(*DynamicValue); ok {
			return nil
		}
	}
	validate, ok := operatorValidators[string(fieldType)+"."+opKey]
	if !ok {
		return nil
	}
	return validate(args)
}

// validRange requires start < end for numeric range operators.
func validRange(args []any) error {
	start, ok1 := toFloat64(args[0])
	end, ok2 := toFloat64(args[1])
	if ok1 && ok2 && start >= end {
		return fmt.Errorf("%w: invalid range: start (%v) must be less than end (%v)",
			ErrValidation, args[0], args[1])
	}
	return nil
}

// positiveBase requires a strictly positive base for is_power_of.
func positiveBase(args []any) error {
	if base, ok := toFloat64(args[0]); ok && base <= 0 {
		return fmt.Errorf("%w: base must be positive, got %v", ErrValidation, args[0])
	}
	return nil
}

// nonEmptyString rejects empty pattern arguments.
func nonEmptyString(args []any) error {
	if s, ok := args[0].(string); ok && s == "" {
		return fmt.Errorf("%w: pattern must not be empty", ErrValidation)
	}
	return nil
}

// nonEmptyList rejects empty list arguments.
func nonEmptyList(args []any) error {
	if vs, ok := args[0].([]string); ok && len(vs) == 0 {
		return fmt.Errorf("%w: list must not be empty", ErrValidation)
	}
	if vs, ok := args[0].([]any); ok && len(vs) == 0 {
		return fmt.Errorf("%w: list must not be empty", ErrValidation)
	}
	return nil
}

// toFloat64 converts numeric literals to float64 for comparison. Mirrors
// JSON number handling: ints and floats compare in one domain.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
