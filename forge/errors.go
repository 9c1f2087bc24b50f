package forge

import "errors"

// Sentinel errors for rule authoring operations. Callers match with
// errors.Is; messages carry the specific field, operator, or value involved.
var (
	// ErrTypeMismatch indicates an operator argument whose type disagrees
	// with the field's declared type. Raised at construction, never deferred
	// to the server.
	ErrTypeMismatch = errors.New("argument type mismatch")

	// ErrValidation indicates an operator argument that fails its declared
	// predicate (empty pattern, inverted range, non-positive base).
	ErrValidation = errors.New("operator argument validation failed")

	// ErrSchemaReference indicates a condition referencing a field name
	// absent from the rule's request or response schema.
	ErrSchemaReference = errors.New("field not defined in schema")

	// ErrNotFound indicates a named dynamic value, folder, or group yielded
	// no match when one was required.
	ErrNotFound = errors.New("not found")

	// ErrPrecondition indicates an operation requiring a configured
	// workspace was invoked without one attached.
	ErrPrecondition = errors.New("workspace not configured")
)
