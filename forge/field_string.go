package forge

// StringField is a string-typed schema field.
type StringField struct {
	Field
}

func newStringField(name, description string, defaultValue string) *StringField {
	return &StringField{Field{
		Name:        name,
		Key:         name,
		Description: description,
		Default:     defaultValue,
		Type:        FieldString,
		Operators: map[string]OperatorDef{
			"any": {Name: "any", Args: []OperatorArg{}, Description: "Match any string value", SkipTypecheck: true},
			"contains": {Name: "contains", Args: []OperatorArg{
				{Name: "value", Type: "string", Description: "The value to search for within the string"},
			}},
			"does_not_contain": {Name: "does not contain", Args: []OperatorArg{
				{Name: "value", Type: "string", Description: "The value to search for within the string"},
			}},
			"equals": {Name: "equals", Args: []OperatorArg{
				{Name: "value", Type: "string", Description: "The value to compare against"},
			}},
			"does_not_equal": {Name: "does not equal", Args: []OperatorArg{
				{Name: "value", Type: "string", Description: "The value to compare against"},
			}},
			"is_empty":     {Name: "is empty", Args: []OperatorArg{}, Description: "Check if string is empty"},
			"is_not_empty": {Name: "is not empty", Args: []OperatorArg{}, Description: "Check if string is not empty"},
			"starts_with": {Name: "starts with", Args: []OperatorArg{
				{Name: "value", Type: "string", Description: "The value the string should start with"},
			}},
			"ends_with": {Name: "ends with", Args: []OperatorArg{
				{Name: "value", Type: "string", Description: "The value the string should end with"},
			}},
			"is_included_in": {Name: "is included in", Args: []OperatorArg{
				{Name: "value", Type: "list", Description: "A list of values the string should be in"},
			}},
			"is_not_included_in": {Name: "is not included in", Args: []OperatorArg{
				{Name: "value", Type: "list", Description: "A list of values the string should not be in"},
			}},
			"matches_regex": {Name: "matches RegEx", Args: []OperatorArg{
				{Name: "regex", Type: "string", Description: "The regex the string should match"},
			}},
			"does_not_match_regex": {Name: "does not match RegEx", Args: []OperatorArg{
				{Name: "regex", Type: "string", Description: "The regex the string should not match"},
			}},
			"is_valid_email":     {Name: "is a valid email address", Args: []OperatorArg{}, Description: "Check if string is a valid email address"},
			"is_not_valid_email": {Name: "is not a valid email address", Args: []OperatorArg{}, Description: "Check if string is not a valid email address"},
			"is_valid_url":       {Name: "is a valid URL", Args: []OperatorArg{}, Description: "Check if string is a valid URL"},
			"is_not_valid_url":   {Name: "is not a valid URL", Args: []OperatorArg{}, Description: "Check if string is not a valid URL"},
			"is_valid_ip":        {Name: "is a valid IP address", Args: []OperatorArg{}, Description: "Check if string is a valid IP address"},
			"is_not_valid_ip":    {Name: "is not a valid IP address", Args: []OperatorArg{}, Description: "Check if string is not a valid IP address"},
			"is_uppercase":       {Name: "is uppercase", Args: []OperatorArg{}, Description: "Check if string is all uppercase"},
			"is_lowercase":       {Name: "is lowercase", Args: []OperatorArg{}, Description: "Check if string is all lowercase"},
			"is_numeric":         {Name: "is numeric", Args: []OperatorArg{}, Description: "Check if string contains only numeric characters"},
			"contains_only_digits":             {Name: "contains only digits", Args: []OperatorArg{}, Description: "Check if string contains only digits"},
			"contains_only_letters":            {Name: "contains only letters", Args: []OperatorArg{}, Description: "Check if string contains only letters"},
			"contains_only_digits_and_letters": {Name: "contains only digits and letters", Args: []OperatorArg{}, Description: "Check if string contains only digits and letters"},
		},
	}}
}

// Contains matches strings containing the given non-empty value.
func (f *StringField) Contains(value any) (OperatorResult, error) {
	return singleArgOp(FieldString, "contains", "contains", value, ValueString)
}

// NotContains matches strings not containing the given non-empty value.
func (f *StringField) NotContains(value any) (OperatorResult, error) {
	return singleArgOp(FieldString, "does_not_contain", "does not contain", value, ValueString)
}

// Equals matches the exact string.
func (f *StringField) Equals(value any) (OperatorResult, error) {
	return singleArgOp(FieldString, "equals", "equals", value, ValueString)
}

// NotEquals matches any other string.
func (f *StringField) NotEquals(value any) (OperatorResult, error) {
	return singleArgOp(FieldString, "does_not_equal", "does not equal", value, ValueString)
}

// IsEmpty matches the empty string.
func (f *StringField) IsEmpty() OperatorResult {
	return unaryOp("is empty")
}

// IsNotEmpty matches any non-empty string.
func (f *StringField) IsNotEmpty() OperatorResult {
	return unaryOp("is not empty")
}

// StartsWith matches strings with the given non-empty prefix.
func (f *StringField) StartsWith(value any) (OperatorResult, error) {
	return singleArgOp(FieldString, "starts_with", "starts with", value, ValueString)
}

// EndsWith matches strings with the given non-empty suffix.
func (f *StringField) EndsWith(value any) (OperatorResult, error) {
	return singleArgOp(FieldString, "ends_with", "ends with", value, ValueString)
}

// IsIncludedIn matches strings contained in the given non-empty list.
func (f *StringField) IsIncludedIn(values any) (OperatorResult, error) {
	return listArgOp(FieldString, "is_included_in", "is included in", values, ValueString)
}

// IsNotIncludedIn matches strings absent from the given non-empty list.
func (f *StringField) IsNotIncludedIn(values any) (OperatorResult, error) {
	return listArgOp(FieldString, "is_not_included_in", "is not included in", values, ValueString)
}

// MatchesRegex matches strings satisfying the given non-empty pattern.
func (f *StringField) MatchesRegex(pattern any) (OperatorResult, error) {
	return singleArgOp(FieldString, "matches_regex", "matches RegEx", pattern, ValueString)
}

// NotMatchesRegex matches strings not satisfying the given non-empty
// pattern.
func (f *StringField) NotMatchesRegex(pattern any) (OperatorResult, error) {
	return singleArgOp(FieldString, "does_not_match_regex", "does not match RegEx", pattern, ValueString)
}

// IsEmail matches valid email addresses.
func (f *StringField) IsEmail() OperatorResult {
	return unaryOp("is a valid email address")
}

// IsNotEmail matches strings that are not valid email addresses.
func (f *StringField) IsNotEmail() OperatorResult {
	return unaryOp("is not a valid email address")
}

// IsURL matches valid URLs.
func (f *StringField) IsURL() OperatorResult {
	return unaryOp("is a valid URL")
}

// IsNotURL matches strings that are not valid URLs.
func (f *StringField) IsNotURL() OperatorResult {
	return unaryOp("is not a valid URL")
}

// IsIP matches valid IP addresses.
func (f *StringField) IsIP() OperatorResult {
	return unaryOp("is a valid IP address")
}

// IsNotIP matches strings that are not valid IP addresses.
func (f *StringField) IsNotIP() OperatorResult {
	return unaryOp("is not a valid IP address")
}

// IsUppercase matches all-uppercase strings.
func (f *StringField) IsUppercase() OperatorResult {
	return unaryOp("is uppercase")
}

// IsLowercase matches all-lowercase strings.
func (f *StringField) IsLowercase() OperatorResult {
	return unaryOp("is lowercase")
}

// IsNumeric matches strings containing only numeric characters.
func (f *StringField) IsNumeric() OperatorResult {
	return unaryOp("is numeric")
}

// ContainsOnlyDigits matches strings of digits.
func (f *StringField) ContainsOnlyDigits() OperatorResult {
	return unaryOp("contains only digits")
}

// ContainsOnlyLetters matches strings of letters.
func (f *StringField) ContainsOnlyLetters() OperatorResult {
	return unaryOp("contains only letters")
}

// ContainsOnlyDigitsAndLetters matches alphanumeric strings.
func (f *StringField) ContainsOnlyDigitsAndLetters() OperatorResult {
	return unaryOp("contains only digits and letters")
}
