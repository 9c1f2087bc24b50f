package forge

import "fmt"

/*
 * Condition building. The Rule owns a growable list of condition rows; a
 * Condition handle is an index into that list, so mutation before and
 * after Then goes through the same storage and a handle never diverges
 * from the stored row. Deleting a condition shifts later rows down one
 * index; handles held across a deletion go stale and must be re-fetched.
 */

// RuleCondition is one row of a rule's decision table: a predicate per
// request field plus an assignment per response field.
type RuleCondition struct {
	Request  map[string]RequestPredicate `json:"request"`
	Response map[string]ResponseValue    `json:"response"`
	Settings ConditionSettings           `json:"settings"`
}

// Condition is a handle onto one row of its rule's condition list.
type Condition struct {
	rule  *Rule
	index int
}

// row resolves the handle to the stored condition.
func (c *Condition) row() *RuleCondition {
	return &c.rule.conditions[c.index]
}

// Index returns the condition's current position in the rule's list.
func (c *Condition) Index() int {
	return c.index
}

// SetRequest replaces the condition's request predicates, re-validating
// every field name against the rule's request schema. No mutation happens
// on a validation failure.
func (c *Condition) SetRequest(predicates map[string]OperatorResult) error {
	request, err := c.rule.buildRequest(predicates)
	if err != nil {
		return err
	}
	c.row().Request = request
	return nil
}

// Then assigns the condition's response values and returns the owning rule
// for chaining. Every response field must exist in the rule's response
// schema.
func (c *Condition) Then(responses map[string]any) (*Rule, error) {
	response := make(map[string]ResponseValue, len(responses))
	for name, value := range responses {
		if _, ok := c.rule.responseFields[name]; !ok {
			return nil, fmt.Errorf("%w: response field %q", ErrSchemaReference, name)
		}
		response[name] = ResponseValue{Value: renderValue(value)}
	}
	c.row().Response = response
	return c.rule, nil
}

// SetPriority sets the condition's evaluation priority.
func (c *Condition) SetPriority(priority int) *Condition {
	c.row().Settings.Priority = priority
	return c
}

// Enable marks the condition active.
func (c *Condition) Enable() *Condition {
	c.row().Settings.Enabled = true
	return c
}

// Disable marks the condition inactive without removing it.
func (c *Condition) Disable() *Condition {
	c.row().Settings.Enabled = false
	return c
}
