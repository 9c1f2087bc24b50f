package forge

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"
)

/*
 * Wire serialization for the rule aggregate.
 *
 * ToDict produces the canonical payload consumed by the hosted engine's
 * import endpoint; FromJSON/FromDict are the inverse. The format is
 * versioned upstream; this codec commits to one shape: `request`/`response`
 * on test entries, the `or` flag for match-any conditions, and snake-cased
 * `published_*` snapshot keys.
 *
 * Round-trip invariant: FromDict(r.ToDict()).ToDict() is deep-equal (after
 * JSON normalization) to r.ToDict() for every field the wire format
 * carries.
 *
 * Dotted field keys are structurally meaningful: sample payload synthesis
 * expands "address.city" into {"address": {"city": ...}} rather than a flat
 * key containing dots.
 */

// wireSchemaField is the JSON shape of one schema entry.
type wireSchemaField struct {
	Name         string `json:"name"`
	Key          string `json:"key"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	DefaultValue any    `json:"defaultValue"`
	Show         bool   `json:"show"`
}

// wireRule is the JSON shape of a full rule payload.
type wireRule struct {
	ID                      string            `json:"id"`
	Name                    string            `json:"name"`
	Description             string            `json:"description"`
	Tag                     string            `json:"tag"`
	Slug                    string            `json:"slug"`
	CreatedAt               string            `json:"createdAt"`
	UpdatedAt               string            `json:"updatedAt"`
	UpdatedBy               string            `json:"updatedBy"`
	Settings                RuleSettings      `json:"settings"`
	AccessGroups            []string          `json:"accessGroups"`
	RequestSchema           []wireSchemaField `json:"requestSchema"`
	ResponseSchema          []wireSchemaField `json:"responseSchema"`
	Conditions              []RuleCondition   `json:"conditions"`
	TestSuite               []wireTest        `json:"testSuite"`
	PublishedRequestSchema  []any             `json:"published_requestSchema"`
	PublishedResponseSchema []any             `json:"published_responseSchema"`
	PublishedConditions     []any             `json:"published_conditions"`
	PublishedGroups         map[string]any    `json:"published_groups"`
	Form                    map[string]any    `json:"form"`
	History                 []any             `json:"history"`
	Published               bool              `json:"published"`
	SampleRequest           map[string]any    `json:"sampleRequest"`
	SampleResponse          map[string]any    `json:"sampleResponse"`
	TestRequest             map[string]any    `json:"testRequest"`
	Groups                  map[string]any    `json:"groups"`
}

// ToDict produces the full wire payload of the rule.
func (r *Rule) ToDict() map[string]any {
	requestSchema := schemaEntries(r.fields, r.fieldOrder)
	responseSchema := schemaEntries(r.responseFields, r.responseOrder)

	sampleRequest := samplePayload(r.fields, r.fieldOrder)
	sampleResponse := samplePayload(r.responseFields, r.responseOrder)
	testRequest := r.testRequest
	if testRequest == nil {
		testRequest = sampleRequest
	}

	testSuite := make([]map[string]any, len(r.testSuite))
	for i, test := range r.testSuite {
		testSuite[i] = test.ToDict()
	}

	accessGroups := r.accessGroups
	if accessGroups == nil {
		accessGroups = []string{}
	}
	conditions := r.conditions
	if conditions == nil {
		conditions = []RuleCondition{}
	}

	return map[string]any{
		"id":                       r.id,
		"name":                     r.name,
		"description":              r.description,
		"tag":                      r.folderID,
		"slug":                     r.slug,
		"createdAt":                r.createdAt,
		"updatedAt":                r.updatedAt,
		"updatedBy":                r.updatedBy,
		"settings":                 r.settings,
		"accessGroups":             accessGroups,
		"requestSchema":            requestSchema,
		"responseSchema":           responseSchema,
		"conditions":               conditions,
		"testSuite":                testSuite,
		"published_requestSchema":  emptyIfNilSlice(r.publishedRequestSchema),
		"published_responseSchema": emptyIfNilSlice(r.publishedResponseSchema),
		"published_conditions":     emptyIfNilSlice(r.publishedConditions),
		"published_groups":         emptyIfNilMap(r.publishedGroups),
		"form":                     emptyIfNilMap(r.form),
		"history":                  emptyIfNilSlice(r.history),
		"published":                r.published,
		"sampleRequest":            sampleRequest,
		"sampleResponse":           sampleResponse,
		"testRequest":              testRequest,
		"groups":                   emptyIfNilMap(r.groups),
		"no_conditions":            len(r.conditions),
	}
}

// ToJSON renders the wire payload as indented JSON.
func (r *Rule) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r.ToDict(), "", "  ")
}

// FromJSON reconstructs a rule from a wire payload. The returned rule has
// no workspace attached.
func FromJSON(data []byte) (*Rule, error) {
	var wire wireRule
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decoding rule payload: %w", err)
	}
	rule := NewRule(nil)
	rule.applyParsed(wire)
	return rule, nil
}

// FromDict reconstructs a rule from an already-decoded wire payload.
func FromDict(payload map[string]any) (*Rule, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding rule payload: %w", err)
	}
	return FromJSON(data)
}

// applyWire replaces the rule's state with a decoded wire payload,
// preserving the attached workspace.
func (r *Rule) applyWire(payload map[string]any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding rule payload: %w", err)
	}
	var wire wireRule
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("decoding rule payload: %w", err)
	}
	r.applyParsed(wire)
	return nil
}

// applyParsed fills the rule from a parsed payload. All local state is
// replaced; the workspace handle is untouched.
func (r *Rule) applyParsed(wire wireRule) {
	if wire.ID != "" {
		r.id = wire.ID
	}
	r.name = wire.Name
	r.description = wire.Description
	r.folderID = wire.Tag
	if wire.Slug != "" {
		r.slug = wire.Slug
	}
	if wire.CreatedAt != "" {
		r.createdAt = wire.CreatedAt
	}
	if wire.UpdatedAt != "" {
		r.updatedAt = wire.UpdatedAt
	}
	if wire.UpdatedBy != "" {
		r.updatedBy = wire.UpdatedBy
	}
	r.settings = wire.Settings
	r.accessGroups = wire.AccessGroups

	r.fields = make(map[string]*Field)
	r.fieldOrder = nil
	for _, entry := range wire.RequestSchema {
		registerField(r.fields, &r.fieldOrder, fieldFromSchema(entry))
	}
	r.responseFields = make(map[string]*Field)
	r.responseOrder = nil
	for _, entry := range wire.ResponseSchema {
		registerField(r.responseFields, &r.responseOrder, fieldFromSchema(entry))
	}

	r.conditions = wire.Conditions
	r.testSuite = nil
	for _, w := range wire.TestSuite {
		r.testSuite = append(r.testSuite, testFromWire(w))
	}

	r.publishedRequestSchema = wire.PublishedRequestSchema
	r.publishedResponseSchema = wire.PublishedResponseSchema
	r.publishedConditions = wire.PublishedConditions
	r.publishedGroups = wire.PublishedGroups
	r.form = wire.Form
	r.history = wire.History
	r.published = wire.Published
	r.testRequest = wire.TestRequest
	r.groups = wire.Groups
}

// fieldFromSchema reconstructs a schema field from its wire entry. The
// operator catalogue for the field's type is restored so builder methods
// keep working on rehydrated rules; a display name is synthesized by
// title-casing the key when none is present.
func fieldFromSchema(entry wireSchemaField) *Field {
	key := entry.Key
	if key == "" {
		key = entry.Name
	}
	name := entry.Name
	if name == "" {
		name = titleCase(key)
	}

	var field Field
	switch FieldType(entry.Type) {
	case FieldBoolean:
		field = newBooleanField(key, entry.Description, false).Field
	case FieldNumber:
		field = newNumberField(key, entry.Description, 0).Field
	case FieldString:
		field = newStringField(key, entry.Description, "").Field
	case FieldDate:
		field = newDateField(key, entry.Description, time.Now().UTC()).Field
	case FieldList:
		field = newListField(key, entry.Description, nil).Field
	default:
		field = Field{Type: FieldType(entry.Type), Operators: map[string]OperatorDef{}}
	}
	field.Name = name
	field.Key = key
	field.Description = entry.Description
	field.Default = entry.DefaultValue
	return &field
}

// schemaEntries renders the fields of one schema in insertion order.
func schemaEntries(fields map[string]*Field, order []string) []wireSchemaField {
	entries := make([]wireSchemaField, 0, len(order))
	for _, key := range order {
		f := fields[key]
		entries = append(entries, wireSchemaField{
			Name:         titleCase(f.Name),
			Key:          f.Key,
			Type:         string(f.Type),
			Description:  f.Description,
			DefaultValue: renderDefault(f.Default),
			Show:         true,
		})
	}
	return entries
}

// samplePayload synthesizes a payload from every field's default value,
// expanding dotted keys into nested objects.
func samplePayload(fields map[string]*Field, order []string) map[string]any {
	sample := make(map[string]any)
	for _, key := range order {
		setNested(sample, key, renderDefault(fields[key].Default))
	}
	return sample
}

// setNested assigns value at the dotted path inside target, creating
// intermediate objects. A non-object intermediate is replaced.
func setNested(target map[string]any, dotted string, value any) {
	parts := strings.Split(dotted, ".")
	current := target
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// renderDefault converts a default value to its wire representation.
func renderDefault(value any) any {
	if t, ok := value.(time.Time); ok {
		return t.UTC().Format(time.RFC3339)
	}
	return value
}

// emptyIfNilSlice substitutes an empty slice for nil passthrough state.
func emptyIfNilSlice(values []any) []any {
	if values == nil {
		return []any{}
	}
	return values
}

// emptyIfNilMap substitutes an empty map for nil passthrough state.
func emptyIfNilMap(values map[string]any) map[string]any {
	if values == nil {
		return map[string]any{}
	}
	return values
}

// titleCase capitalizes the first letter of each word. Underscores become
// spaces; dots, hyphens, and existing spaces are preserved as word
// boundaries. Idempotent, so serializing an already-rehydrated rule does
// not drift.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	capNext := true
	for _, r := range s {
		switch r {
		case '_':
			b.WriteRune(' ')
			capNext = true
		case ' ', '.', '-':
			b.WriteRune(r)
			capNext = true
		default:
			if capNext {
				b.WriteRune(unicode.ToUpper(r))
				capNext = false
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// ToTable renders the decision table as ASCII for terminal inspection.
func (r *Rule) ToTable() string {
	header := append([]string{"Condition"}, r.fieldOrder...)
	header = append(header, "Response")

	rows := make([][]string, 0, len(r.conditions))
	for i, condition := range r.conditions {
		row := []string{fmt.Sprintf("#%d", i+1)}
		for _, key := range r.fieldOrder {
			predicate, ok := condition.Request[key]
			if !ok {
				row = append(row, "-")
				continue
			}
			rendered := make([]string, len(predicate.Args))
			for j, arg := range predicate.Args {
				rendered[j] = fmt.Sprintf("%v", arg)
			}
			row = append(row, strings.TrimSpace(predicate.Op+" "+strings.Join(rendered, ", ")))
		}

		var assignments []string
		for _, key := range r.responseOrder {
			if response, ok := condition.Response[key]; ok {
				assignments = append(assignments, fmt.Sprintf("%s: %v", key, response.Value))
			}
		}
		if len(assignments) == 0 {
			row = append(row, "-")
		} else {
			row = append(row, strings.Join(assignments, "; "))
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(header))
	for i, cell := range header {
		widths[i] = len(cell)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	formatRow := func(row []string) string {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cell + strings.Repeat(" ", widths[i]-len(cell))
		}
		return strings.Join(cells, " | ")
	}

	separators := make([]string, len(widths))
	for i, w := range widths {
		separators[i] = strings.Repeat("-", w)
	}

	lines := []string{formatRow(header), strings.Join(separators, "-+-")}
	for _, row := range rows {
		lines = append(lines, formatRow(row))
	}
	return strings.Join(lines, "\n")
}
