package forge

// ListField is a list-typed schema field.
type ListField struct {
	Field
}

func newListField(name, description string, defaultValue []any) *ListField {
	if defaultValue == nil {
		defaultValue = []any{}
	}
	return &ListField{Field{
		Name:        name,
		Key:         name,
		Description: description,
		Default:     defaultValue,
		Type:        FieldList,
		Operators: map[string]OperatorDef{
			"any": {Name: "any", Args: []OperatorArg{}, Description: "Match any list value", SkipTypecheck: true},
			"contains": {Name: "contains", Args: []OperatorArg{
				{Name: "value", Type: "generic", Description: "Value that must be contained in the list"},
			}},
			"is_empty":     {Name: "is empty", Args: []OperatorArg{}, Description: "Check if list is empty"},
			"is_not_empty": {Name: "is not empty", Args: []OperatorArg{}, Description: "Check if list is not empty"},
			"is_of_length": {Name: "is of length", Args: []OperatorArg{
				{Name: "length", Type: "number", Description: "Length that the list must be"},
			}},
			"is_not_of_length": {Name: "is not of length", Args: []OperatorArg{
				{Name: "length", Type: "number", Description: "Length that the list must not be"},
			}},
			"is_longer_than": {Name: "is longer than", Args: []OperatorArg{
				{Name: "length", Type: "number", Description: "Length that the list must be longer than"},
			}},
			"is_shorter_than": {Name: "is shorter than", Args: []OperatorArg{
				{Name: "length", Type: "number", Description: "Length that the list must be shorter than"},
			}},
			"contains_all_of": {Name: "contains all of", Args: []OperatorArg{
				{Name: "values", Type: "list", Description: "List of values that must be contained in the list"},
			}},
			"contains_any_of": {Name: "contains any of", Args: []OperatorArg{
				{Name: "values", Type: "list", Description: "List of values that might be contained in the list"},
			}},
			"contains_none_of": {Name: "contains none of", Args: []OperatorArg{
				{Name: "values", Type: "list", Description: "List of values that must not be contained in the list"},
			}},
			"does_not_contain": {Name: "does not contain", Args: []OperatorArg{
				{Name: "value", Type: "generic", Description: "Value that must not be contained in the list"},
			}},
			"is_equal_to": {Name: "is equal to", Args: []OperatorArg{
				{Name: "list", Type: "list", Description: "Value that the list must be equal to"},
			}},
			"is_not_equal_to": {Name: "is not equal to", Args: []OperatorArg{
				{Name: "list", Type: "list", Description: "Value that the list must not be equal to"},
			}},
			"contains_duplicates":         {Name: "contains duplicates", Args: []OperatorArg{}, Description: "Check if list contains duplicate values"},
			"does_not_contain_duplicates": {Name: "does not contain duplicates", Args: []OperatorArg{}, Description: "Check if list does not contain duplicate values"},
			"contains_object_with_key_value": {Name: "contains object with key & value", Args: []OperatorArg{
				{Name: "key", Type: "string", Description: "Key of any object contained in the list"},
				{Name: "value", Type: "generic", Description: "Value that the key must be equal to"},
			}},
			"has_unique_elements": {Name: "has unique elements", Args: []OperatorArg{}, Description: "Check if all elements in the list are unique"},
			"is_sublist_of": {Name: "is a sublist of", Args: []OperatorArg{
				{Name: "superlist", Type: "list", Description: "List that should contain this list"},
			}},
			"is_superlist_of": {Name: "is a superlist of", Args: []OperatorArg{
				{Name: "sublist", Type: "list", Description: "List that should be contained in this list"},
			}},
		},
	}}
}

// Contains matches lists containing the given value.
func (f *ListField) Contains(value any) (OperatorResult, error) {
	return singleArgOp(FieldList, "contains", "contains", value, ValueObject)
}

// NotContains matches lists not containing the given value.
func (f *ListField) NotContains(value any) (OperatorResult, error) {
	return singleArgOp(FieldList, "does_not_contain", "does not contain", value, ValueObject)
}

// IsEmpty matches the empty list.
func (f *ListField) IsEmpty() OperatorResult {
	return unaryOp("is empty")
}

// IsNotEmpty matches any non-empty list.
func (f *ListField) IsNotEmpty() OperatorResult {
	return unaryOp("is not empty")
}

// LengthEquals matches lists of exactly the given length.
func (f *ListField) LengthEquals(length any) (OperatorResult, error) {
	return singleArgOp(FieldList, "is_of_length", "is of length", length, ValueNumber)
}

// LengthNotEquals matches lists of any other length.
func (f *ListField) LengthNotEquals(length any) (OperatorResult, error) {
	return singleArgOp(FieldList, "is_not_of_length", "is not of length", length, ValueNumber)
}

// LongerThan matches lists longer than the given length.
func (f *ListField) LongerThan(length any) (OperatorResult, error) {
	return singleArgOp(FieldList, "is_longer_than", "is longer than", length, ValueNumber)
}

// ShorterThan matches lists shorter than the given length.
func (f *ListField) ShorterThan(length any) (OperatorResult, error) {
	return singleArgOp(FieldList, "is_shorter_than", "is shorter than", length, ValueNumber)
}

// ContainsAll matches lists containing every given value.
func (f *ListField) ContainsAll(values any) (OperatorResult, error) {
	return listArgOp(FieldList, "contains_all_of", "contains all of", values, ValueObject)
}

// ContainsAny matches lists containing at least one of the given values.
func (f *ListField) ContainsAny(values any) (OperatorResult, error) {
	return listArgOp(FieldList, "contains_any_of", "contains any of", values, ValueObject)
}

// ContainsNone matches lists containing none of the given values.
func (f *ListField) ContainsNone(values any) (OperatorResult, error) {
	return listArgOp(FieldList, "contains_none_of", "contains none of", values, ValueObject)
}

// Equals matches lists equal to the given list.
func (f *ListField) Equals(other any) (OperatorResult, error) {
	return listArgOp(FieldList, "is_equal_to", "is equal to", other, ValueObject)
}

// NotEquals matches lists different from the given list.
func (f *ListField) NotEquals(other any) (OperatorResult, error) {
	return listArgOp(FieldList, "is_not_equal_to", "is not equal to", other, ValueObject)
}

// HasDuplicates matches lists containing repeated values.
func (f *ListField) HasDuplicates() OperatorResult {
	return unaryOp("contains duplicates")
}

// NoDuplicates matches lists without repeated values.
func (f *ListField) NoDuplicates() OperatorResult {
	return unaryOp("does not contain duplicates")
}

// ContainsObjectWithKeyValue matches lists holding an object whose key
// equals the given value.
func (f *ListField) ContainsObjectWithKeyValue(key, value any) (OperatorResult, error) {
	keyArg, err := newArgument(key, ValueString)
	if err != nil {
		return OperatorResult{}, err
	}
	valueArg, err := newArgument(value, ValueObject)
	if err != nil {
		return OperatorResult{}, err
	}
	return OperatorResult{
		Operator: "contains object with key & value",
		Args:     []any{keyArg.render(), valueArg.render()},
	}, nil
}

// HasUniqueElements matches lists where every element is unique.
func (f *ListField) HasUniqueElements() OperatorResult {
	return unaryOp("has unique elements")
}

// IsSublistOf matches lists fully contained in the given superlist.
func (f *ListField) IsSublistOf(superlist any) (OperatorResult, error) {
	return listArgOp(FieldList, "is_sublist_of", "is a sublist of", superlist, ValueObject)
}

// IsSuperlistOf matches lists fully containing the given sublist.
func (f *ListField) IsSuperlistOf(sublist any) (OperatorResult, error) {
	return listArgOp(FieldList, "is_superlist_of", "is a superlist of", sublist, ValueObject)
}
