package forge

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
)

/*
 * Rule aggregate. Owns the request/response field schemas (insertion
 * ordered, names unique within each), the ordered condition list (order is
 * evaluation precedence), the embedded test suite, and lifecycle metadata.
 *
 * Remote operations require an attached Workspace and fail fast with
 * ErrPrecondition without one. Operations with a remote precondition check
 * (alias uniqueness, folder and group resolution) never mutate local state
 * when the check fails.
 *
 * The aggregate is not goroutine safe: structural edits between suspend
 * points must be serialized by the caller. Two overlapping SetAlias calls
 * can both pass the remote uniqueness check and race on slug.
 */

var aliasPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Rule is the aggregate root of the authoring model.
type Rule struct {
	id          string
	name        string
	description string
	folderID    string
	slug        string
	createdAt   string
	updatedAt   string
	updatedBy   string

	settings     RuleSettings
	accessGroups []string

	workspace Workspace

	fields         map[string]*Field
	fieldOrder     []string
	responseFields map[string]*Field
	responseOrder  []string

	conditions []RuleCondition
	testSuite  []*RuleTest

	// Server-authoritative snapshots and metadata, passed through unchanged.
	publishedRequestSchema  []any
	publishedResponseSchema []any
	publishedConditions     []any
	publishedGroups         map[string]any
	form                    map[string]any
	history                 []any
	published               bool
	testRequest             map[string]any
	groups                  map[string]any
}

// NewRule creates an empty rule with a fresh id, random slug, and current
// timestamps. The workspace is optional; attach one with SetWorkspace
// before any remote operation.
func NewRule(workspace Workspace) *Rule {
	now := time.Now().UTC().Format(time.RFC3339)
	return &Rule{
		id:             newRuleID(),
		slug:           randAlnum(10),
		createdAt:      now,
		updatedAt:      now,
		updatedBy:      "Ruleforge SDK",
		workspace:      workspace,
		fields:         make(map[string]*Field),
		responseFields: make(map[string]*Field),
		publishedGroups: make(map[string]any),
		form:            make(map[string]any),
		groups:          make(map[string]any),
	}
}

// ID returns the rule's UUID, generated at construction.
func (r *Rule) ID() string { return r.id }

// Name returns the rule's display name.
func (r *Rule) Name() string { return r.name }

// Slug returns the rule's URL-safe identifier.
func (r *Rule) Slug() string { return r.slug }

// FolderID returns the id of the folder the rule is filed under.
func (r *Rule) FolderID() string { return r.folderID }

// Settings returns the rule's behavior toggles.
func (r *Rule) Settings() RuleSettings { return r.settings }

// AccessGroups returns the group names granted access, insertion ordered.
func (r *Rule) AccessGroups() []string { return r.accessGroups }

// SetWorkspace attaches the remote workspace handle used by publish, fetch,
// and resolution operations.
func (r *Rule) SetWorkspace(workspace Workspace) *Rule {
	r.workspace = workspace
	return r
}

// SetName sets the display name and regenerates the random slug. Use
// SetAlias for a stable, human-chosen slug.
func (r *Rule) SetName(name string) *Rule {
	r.name = name
	r.slug = randAlnum(10)
	return r
}

// SetDescription sets the rule's description.
func (r *Rule) SetDescription(description string) *Rule {
	r.description = description
	return r
}

// SetFolderID files the rule under a folder by id, without remote
// resolution.
func (r *Rule) SetFolderID(folderID string) *Rule {
	r.folderID = folderID
	return r
}

// SetAlias replaces the generated slug with a caller-chosen one. The alias
// must be at least 3 characters of [a-zA-Z0-9_-] and unique among the
// workspace's rules; the slug is not mutated on any failure.
func (r *Rule) SetAlias(ctx context.Context, alias string) error {
	if r.workspace == nil {
		return fmt.Errorf("%w: setting an alias requires a workspace", ErrPrecondition)
	}
	if len(alias) < 3 {
		return fmt.Errorf("%w: alias must be at least 3 characters long", ErrValidation)
	}
	if strings.ContainsAny(alias, "/\\ ") {
		return fmt.Errorf("%w: alias cannot contain slashes or spaces", ErrValidation)
	}
	if !aliasPattern.MatchString(alias) {
		return fmt.Errorf("%w: alias cannot contain special characters", ErrValidation)
	}

	rules, err := r.workspace.ListRules(ctx)
	if err != nil {
		return err
	}
	for _, summary := range rules {
		if summary.Slug == alias && summary.ID != r.id {
			return fmt.Errorf("%w: alias %q is already in use", ErrValidation, alias)
		}
	}

	r.slug = alias
	return nil
}

// SetFolder files the rule under a folder resolved by name, creating it
// when createIfMissing is set. folderID is untouched on failure.
func (r *Rule) SetFolder(ctx context.Context, name string, createIfMissing bool) error {
	if r.workspace == nil {
		return fmt.Errorf("%w: setting a folder by name requires a workspace", ErrPrecondition)
	}

	folders, err := r.workspace.ListFolders(ctx)
	if err != nil {
		return err
	}
	for _, folder := range folders {
		if folder.Name == name {
			r.folderID = folder.ID
			return nil
		}
	}
	if !createIfMissing {
		return fmt.Errorf("%w: folder %q", ErrNotFound, name)
	}

	folder, err := r.workspace.UpsertFolder(ctx, name)
	if err != nil {
		return err
	}
	r.folderID = folder.ID
	return nil
}

// AddAccessGroup grants a user group access to the rule, resolving (or
// creating) the group remotely first. Adding an already-granted group is a
// no-op.
func (r *Rule) AddAccessGroup(ctx context.Context, name string, createIfMissing bool) error {
	if r.workspace == nil {
		return fmt.Errorf("%w: managing access groups requires a workspace", ErrPrecondition)
	}

	groups, err := r.workspace.ListGroups(ctx)
	if err != nil {
		return err
	}
	found := false
	for _, group := range groups {
		if group.Name == name {
			found = true
			break
		}
	}
	if !found {
		if !createIfMissing {
			return fmt.Errorf("%w: user group %q", ErrNotFound, name)
		}
		if _, err := r.workspace.CreateGroup(ctx, name); err != nil {
			return err
		}
	}

	for _, existing := range r.accessGroups {
		if existing == name {
			return nil
		}
	}
	r.accessGroups = append(r.accessGroups, name)
	return nil
}

// RemoveAccessGroup revokes a group's access locally.
func (r *Rule) RemoveAccessGroup(name string) *Rule {
	for i, existing := range r.accessGroups {
		if existing == name {
			r.accessGroups = append(r.accessGroups[:i], r.accessGroups[i+1:]...)
			break
		}
	}
	return r
}

// EnableContinuousTesting toggles automatic test execution on publish.
func (r *Rule) EnableContinuousTesting(enabled bool) *Rule {
	r.settings.Testing = enabled
	return r
}

// EnableSchemaValidation toggles request validation against the schema.
func (r *Rule) EnableSchemaValidation(enabled bool) *Rule {
	r.settings.SchemaValidation = enabled
	return r
}

// RequireAllProperties toggles rejection of requests missing schema fields.
func (r *Rule) RequireAllProperties(enabled bool) *Rule {
	r.settings.RequireAllProperties = enabled
	return r
}

// LockSchema toggles schema edits in the hosted editor.
func (r *Rule) LockSchema(enabled bool) *Rule {
	r.settings.SchemaLocked = enabled
	return r
}

// registerField stores a field in the given schema, preserving insertion
// order. Schemas are keyed by the stable wire key (the name, unless a
// rehydrated field carries a distinct key). Re-adding under an existing
// key overwrites in place.
func registerField(fields map[string]*Field, order *[]string, f *Field) {
	if _, exists := fields[f.Key]; !exists {
		*order = append(*order, f.Key)
	}
	fields[f.Key] = f
}

// AddBooleanField adds a boolean field to the request schema.
func (r *Rule) AddBooleanField(name, description string, defaultValue bool) *BooleanField {
	field := newBooleanField(name, description, defaultValue)
	registerField(r.fields, &r.fieldOrder, &field.Field)
	return field
}

// AddNumberField adds a number field to the request schema.
func (r *Rule) AddNumberField(name, description string, defaultValue float64) *NumberField {
	field := newNumberField(name, description, defaultValue)
	registerField(r.fields, &r.fieldOrder, &field.Field)
	return field
}

// AddStringField adds a string field to the request schema.
func (r *Rule) AddStringField(name, description string, defaultValue string) *StringField {
	field := newStringField(name, description, defaultValue)
	registerField(r.fields, &r.fieldOrder, &field.Field)
	return field
}

// AddDateField adds a date field to the request schema. A zero defaultValue
// defaults to the current time.
func (r *Rule) AddDateField(name, description string, defaultValue time.Time) *DateField {
	field := newDateField(name, description, defaultValue)
	registerField(r.fields, &r.fieldOrder, &field.Field)
	return field
}

// AddListField adds a list field to the request schema.
func (r *Rule) AddListField(name, description string, defaultValue []any) *ListField {
	field := newListField(name, description, defaultValue)
	registerField(r.fields, &r.fieldOrder, &field.Field)
	return field
}

// AddBooleanResponse adds a boolean field to the response schema.
func (r *Rule) AddBooleanResponse(name, description string, defaultValue bool) *BooleanField {
	field := newBooleanField(name, description, defaultValue)
	registerField(r.responseFields, &r.responseOrder, &field.Field)
	return field
}

// AddNumberResponse adds a number field to the response schema.
func (r *Rule) AddNumberResponse(name, description string, defaultValue float64) *NumberField {
	field := newNumberField(name, description, defaultValue)
	registerField(r.responseFields, &r.responseOrder, &field.Field)
	return field
}

// AddStringResponse adds a string field to the response schema.
func (r *Rule) AddStringResponse(name, description string, defaultValue string) *StringField {
	field := newStringField(name, description, defaultValue)
	registerField(r.responseFields, &r.responseOrder, &field.Field)
	return field
}

// AddDateResponse adds a date field to the response schema.
func (r *Rule) AddDateResponse(name, description string, defaultValue time.Time) *DateField {
	field := newDateField(name, description, defaultValue)
	registerField(r.responseFields, &r.responseOrder, &field.Field)
	return field
}

// AddListResponse adds a list field to the response schema.
func (r *Rule) AddListResponse(name, description string, defaultValue []any) *ListField {
	field := newListField(name, description, defaultValue)
	registerField(r.responseFields, &r.responseOrder, &field.Field)
	return field
}

// buildRequest validates predicate field names against the request schema
// and converts operator results to wire predicates.
func (r *Rule) buildRequest(predicates map[string]OperatorResult) (map[string]RequestPredicate, error) {
	request := make(map[string]RequestPredicate, len(predicates))
	for name, result := range predicates {
		if _, ok := r.fields[name]; !ok {
			return nil, fmt.Errorf("%w: request field %q", ErrSchemaReference, name)
		}
		args := result.Args
		if args == nil {
			args = []any{}
		}
		request[name] = RequestPredicate{Op: result.Operator, Args: args}
	}
	return request, nil
}

// appendCondition validates predicates, appends a new condition row, and
// returns a handle onto it.
func (r *Rule) appendCondition(predicates map[string]OperatorResult, matchAny bool) (*Condition, error) {
	request, err := r.buildRequest(predicates)
	if err != nil {
		return nil, err
	}
	r.conditions = append(r.conditions, RuleCondition{
		Request:  request,
		Response: make(map[string]ResponseValue),
		Settings: ConditionSettings{
			Enabled:  true,
			Schedule: []any{},
			Or:       matchAny,
		},
	})
	return &Condition{rule: r, index: len(r.conditions) - 1}, nil
}

// When creates a condition requiring every listed predicate to hold
// (match-all semantics).
func (r *Rule) When(predicates map[string]OperatorResult) (*Condition, error) {
	return r.appendCondition(predicates, false)
}

// Any creates a condition where any single listed predicate suffices
// (match-any semantics).
func (r *Rule) Any(predicates map[string]OperatorResult) (*Condition, error) {
	return r.appendCondition(predicates, true)
}

// GetConditions returns the rule's conditions in evaluation order. The
// slice is shared with the rule; rows reflect later edits.
func (r *Rule) GetConditions() []RuleCondition {
	return r.conditions
}

// GetConditionCount returns the number of conditions.
func (r *Rule) GetConditionCount() int {
	return len(r.conditions)
}

// DeleteCondition removes the condition at the given index. Later
// conditions shift down one position; handles held across the deletion are
// stale and must be re-fetched.
func (r *Rule) DeleteCondition(index int) error {
	if index < 0 || index >= len(r.conditions) {
		return fmt.Errorf("%w: condition index %d", ErrNotFound, index)
	}
	r.conditions = append(r.conditions[:index], r.conditions[index+1:]...)
	return nil
}

// AddTest attaches a test to the rule's suite. A test with an id already in
// the suite merges into the existing entry instead of duplicating.
func (r *Rule) AddTest(test *RuleTest) *Rule {
	if existing := r.FindTestByID(test.ID); existing != nil {
		existing.merge(test)
		return r
	}
	r.testSuite = append(r.testSuite, test)
	return r
}

// RemoveTest deletes a test from the suite by id.
func (r *Rule) RemoveTest(testID string) {
	for i, test := range r.testSuite {
		if test.ID == testID {
			r.testSuite = append(r.testSuite[:i], r.testSuite[i+1:]...)
			return
		}
	}
}

// FindTestByID returns the suite test with the given id, or nil.
func (r *Rule) FindTestByID(testID string) *RuleTest {
	for _, test := range r.testSuite {
		if test.ID == testID {
			return test
		}
	}
	return nil
}

// FindTestByName returns the first suite test with the given name, or nil.
func (r *Rule) FindTestByName(name string) *RuleTest {
	for _, test := range r.testSuite {
		if test.Name == name {
			return test
		}
	}
	return nil
}

// TestSuite returns the rule's tests in insertion order.
func (r *Rule) TestSuite() []*RuleTest {
	return r.testSuite
}

// Update serializes the rule and pushes it to the workspace's import
// endpoint, upserting by id.
func (r *Rule) Update(ctx context.Context) error {
	if r.workspace == nil {
		return fmt.Errorf("%w: call SetWorkspace before updating the rule", ErrPrecondition)
	}
	return r.workspace.ImportRule(ctx, r.ToDict())
}

// Publish pushes the rule with the publish flag set, then refreshes this
// instance from the canonical server copy.
func (r *Rule) Publish(ctx context.Context) error {
	if r.workspace == nil {
		return fmt.Errorf("%w: publishing requires a workspace", ErrPrecondition)
	}
	payload := r.ToDict()
	payload["_publish"] = true
	if err := r.workspace.ImportRule(ctx, payload); err != nil {
		return err
	}
	return r.FromWorkspace(ctx, r.id)
}

// FromWorkspace fetches a rule by id from the workspace's export endpoint
// and replaces this instance's state with it.
func (r *Rule) FromWorkspace(ctx context.Context, id string) error {
	if r.workspace == nil {
		return fmt.Errorf("%w: loading a rule requires a workspace", ErrPrecondition)
	}
	payload, err := r.workspace.ExportRule(ctx, id)
	if err != nil {
		return err
	}
	return r.applyWire(payload)
}

// Solve evaluates the published rule remotely against the given request.
func (r *Rule) Solve(ctx context.Context, request map[string]any) (map[string]any, error) {
	if r.workspace == nil {
		return nil, fmt.Errorf("%w: solving requires a workspace", ErrPrecondition)
	}
	return r.workspace.Solve(ctx, r.slug, request)
}

// EditorURL returns the hosted editor location for this rule.
func (r *Rule) EditorURL() (string, error) {
	if r.workspace == nil {
		return "", fmt.Errorf("%w: the editor URL requires a workspace", ErrPrecondition)
	}
	return "https://app.rulebricks.com/rules/" + r.id, nil
}

// String summarizes the rule for logs and debugging.
func (r *Rule) String() string {
	return fmt.Sprintf("Rule(name=%q, id=%q, conditions=%d)", r.name, r.id, len(r.conditions))
}
