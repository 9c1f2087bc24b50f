package forge

// NumberField is a number-typed schema field.
type NumberField struct {
	Field
}

func newNumberField(name, description string, defaultValue float64) *NumberField {
	return &NumberField{Field{
		Name:        name,
		Key:         name,
		Description: description,
		Default:     defaultValue,
		Type:        FieldNumber,
		Operators: map[string]OperatorDef{
			"any": {Name: "any", Args: []OperatorArg{}, Description: "Match any numeric value", SkipTypecheck: true},
			"equals": {Name: "equals", Args: []OperatorArg{
				{Name: "value", Type: "number", Description: "Number that value must equal"},
			}},
			"does_not_equal": {Name: "does not equal", Args: []OperatorArg{
				{Name: "value", Type: "number", Description: "Number that value must not equal"},
			}},
			"greater_than": {Name: "greater than", Args: []OperatorArg{
				{Name: "bound", Type: "number", Description: "Number that value must be greater than"},
			}},
			"less_than": {Name: "less than", Args: []OperatorArg{
				{Name: "bound", Type: "number", Description: "Number that value must be less than"},
			}},
			"greater_than_or_equal": {Name: "greater than or equal to", Args: []OperatorArg{
				{Name: "bound", Type: "number", Description: "Number that value must be greater than or equal to"},
			}},
			"less_than_or_equal": {Name: "less than or equal to", Args: []OperatorArg{
				{Name: "bound", Type: "number", Description: "Number that value must be less than or equal to"},
			}},
			"between": {Name: "between", Args: []OperatorArg{
				{Name: "start", Type: "number", Description: "Number that value must be greater than or equal to", Placeholder: "Start"},
				{Name: "end", Type: "number", Description: "Number that value must be less than or equal to", Placeholder: "End"},
			}},
			"not_between": {Name: "not between", Args: []OperatorArg{
				{Name: "start", Type: "number", Description: "Number that value must be less than", Placeholder: "Start"},
				{Name: "end", Type: "number", Description: "Number that value must be greater than", Placeholder: "End"},
			}},
			"is_even":     {Name: "is even", Args: []OperatorArg{}, Description: "Check if value is even"},
			"is_odd":      {Name: "is odd", Args: []OperatorArg{}, Description: "Check if value is odd"},
			"is_positive": {Name: "is positive", Args: []OperatorArg{}, Description: "Check if value is greater than zero"},
			"is_negative": {Name: "is negative", Args: []OperatorArg{}, Description: "Check if value is less than zero"},
			"is_zero":     {Name: "is zero", Args: []OperatorArg{}, Description: "Check if value equals zero"},
			"is_not_zero": {Name: "is not zero", Args: []OperatorArg{}, Description: "Check if value does not equal zero"},
			"is_multiple_of": {Name: "is a multiple of", Args: []OperatorArg{
				{Name: "multiple", Type: "number", Description: "Number that value must be a multiple of"},
			}},
			"is_not_multiple_of": {Name: "is not a multiple of", Args: []OperatorArg{
				{Name: "multiple", Type: "number", Description: "Number that value must not be a multiple of"},
			}},
			"is_power_of": {Name: "is a power of", Args: []OperatorArg{
				{Name: "base", Type: "number", Description: "The base number"},
			}},
		},
	}}
}

// Equals matches when the field value equals the given number.
func (f *NumberField) Equals(value any) (OperatorResult, error) {
	return singleArgOp(FieldNumber, "equals", "equals", value, ValueNumber)
}

// NotEquals matches when the field value differs from the given number.
func (f *NumberField) NotEquals(value any) (OperatorResult, error) {
	return singleArgOp(FieldNumber, "does_not_equal", "does not equal", value, ValueNumber)
}

// GreaterThan matches values strictly above the bound.
func (f *NumberField) GreaterThan(value any) (OperatorResult, error) {
	return singleArgOp(FieldNumber, "greater_than", "greater than", value, ValueNumber)
}

// LessThan matches values strictly below the bound.
func (f *NumberField) LessThan(value any) (OperatorResult, error) {
	return singleArgOp(FieldNumber, "less_than", "less than", value, ValueNumber)
}

// GreaterThanOrEqual matches values at or above the bound.
func (f *NumberField) GreaterThanOrEqual(value any) (OperatorResult, error) {
	return singleArgOp(FieldNumber, "greater_than_or_equal", "greater than or equal to", value, ValueNumber)
}

// LessThanOrEqual matches values at or below the bound.
func (f *NumberField) LessThanOrEqual(value any) (OperatorResult, error) {
	return singleArgOp(FieldNumber, "less_than_or_equal", "less than or equal to", value, ValueNumber)
}

// Between matches values inside [start, end]. Literal bounds must satisfy
// start < end.
func (f *NumberField) Between(start, end any) (OperatorResult, error) {
	return pairArgOp(FieldNumber, "between", "between", start, end, ValueNumber)
}

// NotBetween matches values outside [start, end]. Literal bounds must
// satisfy start < end.
func (f *NumberField) NotBetween(start, end any) (OperatorResult, error) {
	return pairArgOp(FieldNumber, "not_between", "not between", start, end, ValueNumber)
}

// IsEven matches even values.
func (f *NumberField) IsEven() OperatorResult {
	return unaryOp("is even")
}

// IsOdd matches odd values.
func (f *NumberField) IsOdd() OperatorResult {
	return unaryOp("is odd")
}

// IsPositive matches values above zero.
func (f *NumberField) IsPositive() OperatorResult {
	return unaryOp("is positive")
}

// IsNegative matches values below zero.
func (f *NumberField) IsNegative() OperatorResult {
	return unaryOp("is negative")
}

// IsZero matches zero.
func (f *NumberField) IsZero() OperatorResult {
	return unaryOp("is zero")
}

// IsNotZero matches any non-zero value.
func (f *NumberField) IsNotZero() OperatorResult {
	return unaryOp("is not zero")
}

// IsMultipleOf matches values divisible by the given number.
func (f *NumberField) IsMultipleOf(value any) (OperatorResult, error) {
	return singleArgOp(FieldNumber, "is_multiple_of", "is a multiple of", value, ValueNumber)
}

// IsNotMultipleOf matches values not divisible by the given number.
func (f *NumberField) IsNotMultipleOf(value any) (OperatorResult, error) {
	return singleArgOp(FieldNumber, "is_not_multiple_of", "is not a multiple of", value, ValueNumber)
}

// IsPowerOf matches powers of the given base. A literal base must be
// positive.
func (f *NumberField) IsPowerOf(base any) (OperatorResult, error) {
	return singleArgOp(FieldNumber, "is_power_of", "is a power of", base, ValueNumber)
}
