package forge

// RuleTest is a named expectation attached to a rule: given a request
// payload, the rule must produce the expected response payload. Execution
// bookkeeping (LastExecuted, TestState, Error, Success) is populated by the
// remote service and merged back on fetch, never set locally.
type RuleTest struct {
	ID       string
	Name     string
	Request  map[string]any
	Response map[string]any
	Critical bool

	LastExecuted string
	TestState    string
	Error        string
	Success      bool
}

// NewRuleTest creates a test with a generated 21-character id and a
// placeholder name.
func NewRuleTest() *RuleTest {
	return &RuleTest{
		ID:       randAlnum(21),
		Name:     "Untitled Test",
		Request:  map[string]any{},
		Response: map[string]any{},
	}
}

// SetName sets the test's display name.
func (t *RuleTest) SetName(name string) *RuleTest {
	t.Name = name
	return t
}

// WithRequest sets the request payload the rule is exercised with.
func (t *RuleTest) WithRequest(request map[string]any) *RuleTest {
	t.Request = request
	return t
}

// Expect sets the response payload the rule must produce.
func (t *RuleTest) Expect(response map[string]any) *RuleTest {
	t.Response = response
	return t
}

// SetCritical marks whether a failure of this test blocks publishing.
func (t *RuleTest) SetCritical(critical bool) *RuleTest {
	t.Critical = critical
	return t
}

// merge copies another test's fields into this one, keeping the id. Used
// when AddTest sees an id already present in the suite.
func (t *RuleTest) merge(other *RuleTest) {
	if other.Name != "" {
		t.Name = other.Name
	}
	if other.Request != nil {
		t.Request = other.Request
	}
	if other.Response != nil {
		t.Response = other.Response
	}
	t.Critical = other.Critical
	if other.LastExecuted != "" {
		t.LastExecuted = other.LastExecuted
	}
	if other.TestState != "" {
		t.TestState = other.TestState
	}
	if other.Error != "" {
		t.Error = other.Error
	}
	t.Success = t.Success || other.Success
}

// ToDict renders the test's wire representation.
func (t *RuleTest) ToDict() map[string]any {
	id := t.ID
	if id == "" {
		id = randAlnum(21)
	}
	request := t.Request
	if request == nil {
		request = map[string]any{}
	}
	response := t.Response
	if response == nil {
		response = map[string]any{}
	}
	return map[string]any{
		"id":           id,
		"name":         t.Name,
		"request":      request,
		"response":     response,
		"critical":     t.Critical,
		"lastExecuted": t.LastExecuted,
		"testState":    t.TestState,
		"error":        t.Error,
		"success":      t.Success,
	}
}

// wireTest is the JSON shape of a test suite entry.
type wireTest struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Request      map[string]any `json:"request"`
	Response     map[string]any `json:"response"`
	Critical     bool           `json:"critical"`
	LastExecuted string         `json:"lastExecuted"`
	TestState    string         `json:"testState"`
	Error        string         `json:"error"`
	Success      bool           `json:"success"`
}

// testFromWire reconstructs a suite test, defaulting absent fields to
// neutral values.
func testFromWire(w wireTest) *RuleTest {
	test := &RuleTest{
		ID:           w.ID,
		Name:         w.Name,
		Request:      w.Request,
		Response:     w.Response,
		Critical:     w.Critical,
		LastExecuted: w.LastExecuted,
		TestState:    w.TestState,
		Error:        w.Error,
		Success:      w.Success,
	}
	if test.ID == "" {
		test.ID = randAlnum(21)
	}
	if test.Name == "" {
		test.Name = "Untitled Test"
	}
	if test.Request == nil {
		test.Request = map[string]any{}
	}
	if test.Response == nil {
		test.Response = map[string]any{}
	}
	return test
}
