package forge

import (
	"context"
	"fmt"
)

/*
 * Dynamic values: named, typed forward references resolved by the remote
 * engine at evaluation time rather than supplied literally at authoring
 * time. A DynamicValue substituted into an operator argument renders to a
 * small discriminated wire object the engine recognizes as "look up the
 * live value with this name".
 *
 * The DynamicValues registry is an explicit object rather than process
 * global state: construct one per workspace, with a name-keyed cache and a
 * blunt invalidate-all policy on writes (any update may change the types of
 * several names, so partial invalidation is not worth the bookkeeping).
 *
 * The cache carries no lock. Concurrent Get calls for the same uncached
 * name may each issue a redundant remote lookup; last write wins, which is
 * harmless because resolved values are idempotent. Callers must not rely on
 * call coalescing.
 */

// DynamicValue is a named, typed reference to a workspace-level value
// resolved at rule evaluation time.
type DynamicValue struct {
	ID   string
	Name string
	Type ValueType
}

// Wire renders the substitution object recognized by the remote engine,
// distinct from a literal argument.
func (v *DynamicValue) Wire() map[string]any {
	return map[string]any{
		"id":   v.ID,
		"$rb":  "globalValue",
		"name": v.Name,
	}
}

// String returns a placeholder rendering used in decision-table output.
func (v *DynamicValue) String() string {
	return fmt.Sprintf("<%s>", v.Name)
}

// DynamicValues resolves and caches workspace dynamic values by name.
type DynamicValues struct {
	client ValuesClient
	cache  map[string]*DynamicValue
}

// NewDynamicValues creates a registry bound to the given client with an
// empty cache.
func NewDynamicValues(client ValuesClient) *DynamicValues {
	return &DynamicValues{
		client: client,
		cache:  make(map[string]*DynamicValue),
	}
}

// Get resolves a dynamic value by name. Cache hits return immediately; a
// miss lists the remote values and caches the match. Returns ErrNotFound if
// no value with that name exists, ErrPrecondition if no client is attached.
func (d *DynamicValues) Get(ctx context.Context, name string) (*DynamicValue, error) {
	if d.client == nil {
		return nil, fmt.Errorf("%w: dynamic values require a workspace client", ErrPrecondition)
	}
	if v, ok := d.cache[name]; ok {
		return v, nil
	}

	values, err := d.client.ListValues(ctx)
	if err != nil {
		return nil, err
	}
	for _, summary := range values {
		if summary.Name == name {
			v := &DynamicValue{ID: summary.ID, Name: summary.Name, Type: summary.Type}
			d.cache[name] = v
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: dynamic value %q", ErrNotFound, name)
}

// Set pushes value updates to the remote store, then invalidates the entire
// cache. Correctness over efficiency: any update may affect the types of
// multiple names.
func (d *DynamicValues) Set(ctx context.Context, values map[string]any) error {
	return d.SetWithAccess(ctx, values, nil)
}

// SetWithAccess is Set with an access-group restriction on the updated
// values.
func (d *DynamicValues) SetWithAccess(ctx context.Context, values map[string]any, userGroups []string) error {
	if d.client == nil {
		return fmt.Errorf("%w: dynamic values require a workspace client", ErrPrecondition)
	}
	if err := d.client.UpdateValues(ctx, values, userGroups); err != nil {
		return err
	}
	d.ClearCache()
	return nil
}

// ClearCache drops every cached resolution. Subsequent Get calls hit the
// remote service again.
func (d *DynamicValues) ClearCache() {
	d.cache = make(map[string]*DynamicValue)
}
