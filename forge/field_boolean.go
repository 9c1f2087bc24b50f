package forge

// BooleanField is a boolean-typed schema field.
type BooleanField struct {
	Field
}

func newBooleanField(name, description string, defaultValue bool) *BooleanField {
	return &BooleanField{Field{
		Name:        name,
		Key:         name,
		Description: description,
		Default:     defaultValue,
		Type:        FieldBoolean,
		Operators: map[string]OperatorDef{
			"any":      {Name: "any", Args: []OperatorArg{}, Description: "Match any boolean value", SkipTypecheck: true},
			"is_true":  {Name: "is true", Args: []OperatorArg{}, Description: "Check if value is true"},
			"is_false": {Name: "is false", Args: []OperatorArg{}, Description: "Check if value is false"},
		},
	}}
}

// IsTrue matches when the field value is true.
func (f *BooleanField) IsTrue() OperatorResult {
	return unaryOp("is true")
}

// IsFalse matches when the field value is false.
func (f *BooleanField) IsFalse() OperatorResult {
	return unaryOp("is false")
}

// Equals matches the given literal truth value.
func (f *BooleanField) Equals(value bool) OperatorResult {
	if value {
		return unaryOp("is true")
	}
	return unaryOp("is false")
}
