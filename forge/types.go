// Package forge provides the in-memory authoring model for decision rules.
//
// A Rule owns a typed request/response schema, an ordered decision table of
// conditions, and an embedded regression test suite. Callers build fields on
// the rule, apply field operators to produce predicates, combine them through
// When/Any into conditions, attach response assignments with Then, and
// serialize the result to the wire format the hosted rules engine consumes.
//
// All type checking happens client-side at construction time: an operator
// argument that disagrees with the field's declared type is rejected before
// anything touches the network. Remote operations (publish, fetch, alias and
// folder resolution) go through the Workspace interface; the forge package
// never interprets transport failures beyond propagating them.
package forge

/*
 * Core value domain for the rule builder.
 *
 * FieldType tags the five field kinds a schema can hold. ValueType widens
 * that domain with the argument-only types (object, function) an operator
 * parameter may declare. Operator catalogues are data-only descriptors:
 * they are serialized verbatim into the rule schema, so they carry no
 * executable validation. Per-operator argument validation lives in a
 * separate lookup table (validators.go) keyed on operator identifier.
 */

// FieldType identifies the kind of a schema field.
type FieldType string

// Field kinds supported by the rule schema.
const (
	FieldBoolean  FieldType = "boolean"
	FieldNumber   FieldType = "number"
	FieldString   FieldType = "string"
	FieldDate     FieldType = "date"
	FieldList     FieldType = "list"
	FieldFunction FieldType = "function"
)

// ValueType identifies the expected type of an operator argument or a
// dynamic value. Superset of FieldType: operator arguments may also declare
// generic object parameters.
type ValueType string

// Argument value types.
const (
	ValueString   ValueType = "string"
	ValueNumber   ValueType = "number"
	ValueBoolean  ValueType = "boolean"
	ValueDate     ValueType = "date"
	ValueList     ValueType = "list"
	ValueFunction ValueType = "function"
	ValueObject   ValueType = "object"
)

// OperatorResult is a rendered operator application: the operator's display
// identifier plus its wire-ready argument list. Produced by field operator
// methods and consumed by Rule.When / Rule.Any.
type OperatorResult struct {
	Operator string
	Args     []any
}

// OperatorArg describes one argument slot of an operator.
type OperatorArg struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Placeholder string `json:"placeholder,omitempty"`
}

// OperatorDef is the data-only descriptor for a single operator. These are
// emitted verbatim in the schema sent to the remote engine; argument
// validation predicates are resolved separately via validators.go.
type OperatorDef struct {
	Name          string        `json:"name"`
	Args          []OperatorArg `json:"args"`
	Description   string        `json:"description,omitempty"`
	SkipTypecheck bool          `json:"skipTypecheck,omitempty"`
}

// RuleSettings holds per-rule behavior toggles transmitted with the rule.
type RuleSettings struct {
	Testing              bool `json:"testing"`
	SchemaValidation     bool `json:"schemaValidation"`
	RequireAllProperties bool `json:"requireAllProperties"`
	SchemaLocked         bool `json:"schemaLocked"`
	Published            bool `json:"published"`
}

// ConditionSettings holds per-condition evaluation settings. Or selects
// match-any semantics across the condition's request predicates; the default
// (false) requires all predicates to hold.
type ConditionSettings struct {
	Enabled  bool   `json:"enabled"`
	GroupID  string `json:"groupId"`
	Priority int    `json:"priority"`
	Schedule []any  `json:"schedule"`
	Or       bool   `json:"or"`
}

// RequestPredicate is one cell of the decision table: an operator applied to
// a request field.
type RequestPredicate struct {
	Op   string `json:"op"`
	Args []any  `json:"args"`
}

// ResponseValue is a response-field assignment within a condition.
type ResponseValue struct {
	Value any `json:"value"`
}
