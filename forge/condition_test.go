package forge

import (
	"errors"
	"testing"
)

func buildEligibilityRule(t *testing.T) (*Rule, *NumberField, *StringField) {
	t.Helper()
	rule := NewRule(nil)
	rule.SetName("Eligibility")
	age := rule.AddNumberField("age", "Applicant age", 0)
	country := rule.AddStringField("country", "Residence country", "")
	rule.AddBooleanResponse("eligible", "Whether the applicant qualifies", false)
	return rule, age, country
}

// Test condition creation and response assignment
func TestRule_WhenThen(t *testing.T) {
	rule, age, _ := buildEligibilityRule(t)

	adult, err := age.GreaterThanOrEqual(18)
	if err != nil {
		t.Fatalf("GreaterThanOrEqual error = %v", err)
	}

	cond, err := rule.When(map[string]OperatorResult{"age": adult})
	if err != nil {
		t.Fatalf("When() error = %v", err)
	}
	if _, err := cond.Then(map[string]any{"eligible": true}); err != nil {
		t.Fatalf("Then() error = %v", err)
	}

	if rule.GetConditionCount() != 1 {
		t.Fatalf("GetConditionCount() = %d, want 1", rule.GetConditionCount())
	}
	row := rule.GetConditions()[0]
	if row.Request["age"].Op != "greater than or equal to" {
		t.Errorf("request op = %q, want %q", row.Request["age"].Op, "greater than or equal to")
	}
	if row.Response["eligible"].Value != true {
		t.Errorf("response value = %v, want true", row.Response["eligible"].Value)
	}
	if !row.Settings.Enabled {
		t.Errorf("Settings.Enabled = false, want true")
	}
	if row.Settings.Or {
		t.Errorf("Settings.Or = true for When(), want false")
	}
}

// Test match-any conditions set the or flag
func TestRule_Any(t *testing.T) {
	rule, age, country := buildEligibilityRule(t)

	minor, err := age.LessThan(18)
	if err != nil {
		t.Fatalf("LessThan error = %v", err)
	}
	local, err := country.Equals("NL")
	if err != nil {
		t.Fatalf("Equals error = %v", err)
	}

	cond, err := rule.Any(map[string]OperatorResult{"age": minor, "country": local})
	if err != nil {
		t.Fatalf("Any() error = %v", err)
	}
	if !rule.GetConditions()[cond.Index()].Settings.Or {
		t.Errorf("Settings.Or = false for Any(), want true")
	}
}

// Test referential integrity against the schemas
func TestCondition_SchemaReferences(t *testing.T) {
	rule, age, _ := buildEligibilityRule(t)

	adult, err := age.GreaterThan(18)
	if err != nil {
		t.Fatalf("GreaterThan error = %v", err)
	}

	if _, err := rule.When(map[string]OperatorResult{"height": adult}); !errors.Is(err, ErrSchemaReference) {
		t.Errorf("When(unknown field) error = %v, want ErrSchemaReference", err)
	}
	if rule.GetConditionCount() != 0 {
		t.Errorf("failed When() appended a condition, count = %d", rule.GetConditionCount())
	}

	cond, err := rule.When(map[string]OperatorResult{"age": adult})
	if err != nil {
		t.Fatalf("When() error = %v", err)
	}
	if _, err := cond.Then(map[string]any{"score": 10}); !errors.Is(err, ErrSchemaReference) {
		t.Errorf("Then(unknown field) error = %v, want ErrSchemaReference", err)
	}
	if len(rule.GetConditions()[0].Response) != 0 {
		t.Errorf("failed Then() mutated the response")
	}
}

// Test conditions keep insertion order and deletion shifts indexes
func TestRule_ConditionOrdering(t *testing.T) {
	rule, age, _ := buildEligibilityRule(t)

	for _, bound := range []float64{10, 20, 30} {
		op, err := age.GreaterThan(bound)
		if err != nil {
			t.Fatalf("GreaterThan(%v) error = %v", bound, err)
		}
		if _, err := rule.When(map[string]OperatorResult{"age": op}); err != nil {
			t.Fatalf("When() error = %v", err)
		}
	}

	if err := rule.DeleteCondition(1); err != nil {
		t.Fatalf("DeleteCondition(1) error = %v", err)
	}
	conditions := rule.GetConditions()
	if len(conditions) != 2 {
		t.Fatalf("condition count = %d, want 2", len(conditions))
	}
	// Remaining rows are the first and third, in order.
	if conditions[0].Request["age"].Args[0] != float64(10) {
		t.Errorf("conditions[0] arg = %v, want 10", conditions[0].Request["age"].Args[0])
	}
	if conditions[1].Request["age"].Args[0] != float64(30) {
		t.Errorf("conditions[1] arg = %v, want 30", conditions[1].Request["age"].Args[0])
	}

	if err := rule.DeleteCondition(5); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteCondition(5) error = %v, want ErrNotFound", err)
	}
	if err := rule.DeleteCondition(-1); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteCondition(-1) error = %v, want ErrNotFound", err)
	}
}

// Test the handle mutates the stored row before and after Then
func TestCondition_HandleMutation(t *testing.T) {
	rule, age, _ := buildEligibilityRule(t)

	adult, err := age.GreaterThan(18)
	if err != nil {
		t.Fatalf("GreaterThan error = %v", err)
	}
	cond, err := rule.When(map[string]OperatorResult{"age": adult})
	if err != nil {
		t.Fatalf("When() error = %v", err)
	}

	cond.SetPriority(5).Disable()
	row := rule.GetConditions()[0]
	if row.Settings.Priority != 5 {
		t.Errorf("Priority = %d, want 5", row.Settings.Priority)
	}
	if row.Settings.Enabled {
		t.Errorf("Enabled = true after Disable()")
	}

	if _, err := cond.Then(map[string]any{"eligible": true}); err != nil {
		t.Fatalf("Then() error = %v", err)
	}
	cond.Enable()
	if !rule.GetConditions()[0].Settings.Enabled {
		t.Errorf("Enabled = false after Enable() through a post-Then handle")
	}

	// Replacing the request through the handle re-validates field names.
	senior, err := age.GreaterThan(65)
	if err != nil {
		t.Fatalf("GreaterThan error = %v", err)
	}
	if err := cond.SetRequest(map[string]OperatorResult{"age": senior}); err != nil {
		t.Fatalf("SetRequest() error = %v", err)
	}
	if got := rule.GetConditions()[0].Request["age"].Args[0]; got != float64(65) {
		t.Errorf("request arg after SetRequest = %v, want 65", got)
	}
	if err := cond.SetRequest(map[string]OperatorResult{"nope": senior}); !errors.Is(err, ErrSchemaReference) {
		t.Errorf("SetRequest(unknown field) error = %v, want ErrSchemaReference", err)
	}
}
