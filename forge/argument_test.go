package forge

import (
	"errors"
	"testing"
	"time"
)

// Test argument type admission across value kinds
func TestNewArgument_TypeChecks(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected ValueType
		wantErr  error
	}{
		{name: "string accepts string", value: "hello", expected: ValueString, wantErr: nil},
		{name: "string rejects number", value: 42, expected: ValueString, wantErr: ErrTypeMismatch},
		{name: "number accepts int", value: 42, expected: ValueNumber, wantErr: nil},
		{name: "number accepts float64", value: 3.14, expected: ValueNumber, wantErr: nil},
		{name: "number accepts int64", value: int64(7), expected: ValueNumber, wantErr: nil},
		{name: "number rejects bool", value: true, expected: ValueNumber, wantErr: ErrTypeMismatch},
		{name: "number rejects string", value: "42", expected: ValueNumber, wantErr: ErrTypeMismatch},
		{name: "boolean accepts bool", value: false, expected: ValueBoolean, wantErr: nil},
		{name: "boolean rejects string", value: "true", expected: ValueBoolean, wantErr: ErrTypeMismatch},
		{name: "date accepts time.Time", value: time.Now(), expected: ValueDate, wantErr: nil},
		{name: "date accepts ISO string", value: "2024-01-15T00:00:00Z", expected: ValueDate, wantErr: nil},
		{name: "date rejects number", value: 1700000000, expected: ValueDate, wantErr: ErrTypeMismatch},
		{name: "list accepts slice", value: []any{1, 2}, expected: ValueList, wantErr: nil},
		{name: "list accepts typed slice", value: []string{"a"}, expected: ValueList, wantErr: nil},
		{name: "list rejects scalar", value: "not a list", expected: ValueList, wantErr: ErrTypeMismatch},
		{name: "object accepts map", value: map[string]any{"k": 1}, expected: ValueObject, wantErr: nil},
		{name: "object accepts slice", value: []any{1}, expected: ValueObject, wantErr: nil},
		{name: "object rejects scalar", value: 42, expected: ValueObject, wantErr: ErrTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newArgument(tt.value, tt.expected)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("newArgument(%v, %s) error = %v, wantErr %v", tt.value, tt.expected, err, tt.wantErr)
			}
		})
	}
}

// Test dynamic value arguments are checked against their declared type
func TestNewArgument_DynamicValues(t *testing.T) {
	dv := &DynamicValue{ID: "dv-1", Name: "threshold", Type: ValueNumber}

	if _, err := newArgument(dv, ValueNumber); err != nil {
		t.Fatalf("newArgument(number dynamic, number) error = %v, want nil", err)
	}
	if _, err := newArgument(dv, ValueString); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("newArgument(number dynamic, string) error = %v, want ErrTypeMismatch", err)
	}
}

// Test wire rendering of dynamic values, flat and embedded
func TestRenderValue_DynamicValues(t *testing.T) {
	dv := &DynamicValue{ID: "dv-1", Name: "threshold", Type: ValueNumber}

	rendered, ok := renderValue(dv).(map[string]any)
	if !ok {
		t.Fatalf("renderValue(dynamic) = %T, want map[string]any", renderValue(dv))
	}
	if rendered["$rb"] != "globalValue" || rendered["id"] != "dv-1" || rendered["name"] != "threshold" {
		t.Errorf("renderValue(dynamic) = %v, want substitution object", rendered)
	}

	// Embedded inside a list: only the dynamic element is substituted.
	list, ok := renderValue([]any{1, dv, "x"}).([]any)
	if !ok || len(list) != 3 {
		t.Fatalf("renderValue(list) = %v, want 3-element list", list)
	}
	if list[0] != 1 || list[2] != "x" {
		t.Errorf("renderValue(list) literals = %v, %v, want untouched", list[0], list[2])
	}
	if _, ok := list[1].(map[string]any); !ok {
		t.Errorf("renderValue(list) dynamic element = %T, want map[string]any", list[1])
	}

	// Embedded inside a map.
	obj, ok := renderValue(map[string]any{"limit": dv, "label": "max"}).(map[string]any)
	if !ok {
		t.Fatalf("renderValue(map) = %T, want map[string]any", renderValue(map[string]any{}))
	}
	if _, ok := obj["limit"].(map[string]any); !ok {
		t.Errorf("renderValue(map) dynamic entry = %T, want map[string]any", obj["limit"])
	}
	if obj["label"] != "max" {
		t.Errorf("renderValue(map) literal entry = %v, want %q", obj["label"], "max")
	}
}

// Test scalar values render unchanged
func TestRenderValue_Literals(t *testing.T) {
	for _, value := range []any{42, "text", true, 3.14, nil} {
		if got := renderValue(value); got != value {
			t.Errorf("renderValue(%v) = %v, want unchanged", value, got)
		}
	}
}
