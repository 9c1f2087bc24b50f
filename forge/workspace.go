package forge

import "context"

/*
 * Remote workspace contract.
 *
 * The forge core never talks HTTP directly; every remote operation goes
 * through the Workspace interface so the transport (api package, test
 * fakes) stays swappable. Methods mirror the hosted service's asset, user
 * group, dynamic value, and solve endpoints. Transport failures propagate
 * unchanged to the caller; the core performs no retries.
 */

// Folder is a remote rule folder summary.
type Folder struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Group is a remote user group summary.
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RuleSummary is the listing projection of a remote rule, sufficient for
// slug-collision checks.
type RuleSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// DynamicValueSummary is the listing projection of a remote dynamic value.
type DynamicValueSummary struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Type ValueType `json:"type"`
}

// ValuesClient is the narrow slice of the workspace used by the
// DynamicValues registry.
type ValuesClient interface {
	// ListValues returns every dynamic value defined in the workspace.
	ListValues(ctx context.Context) ([]DynamicValueSummary, error)

	// UpdateValues upserts dynamic values by name, optionally restricting
	// access to the given user groups.
	UpdateValues(ctx context.Context, values map[string]any, userGroups []string) error
}

// Workspace is the remote service handle a Rule is bound to for publish and
// fetch operations. Implemented by api.Client; tests supply in-memory fakes.
type Workspace interface {
	ValuesClient

	// ImportRule upserts a rule by its embedded id.
	ImportRule(ctx context.Context, rule map[string]any) error

	// ExportRule fetches the canonical wire payload of a rule by id.
	ExportRule(ctx context.Context, id string) (map[string]any, error)

	// ListRules returns summaries of every rule in the workspace.
	ListRules(ctx context.Context) ([]RuleSummary, error)

	// ListFolders returns every rule folder in the workspace.
	ListFolders(ctx context.Context) ([]Folder, error)

	// UpsertFolder creates or returns the folder with the given name.
	UpsertFolder(ctx context.Context, name string) (Folder, error)

	// ListGroups returns every user group in the workspace.
	ListGroups(ctx context.Context) ([]Group, error)

	// CreateGroup creates a user group with the given name.
	CreateGroup(ctx context.Context, name string) (Group, error)

	// Solve evaluates a published rule by slug against the given request.
	Solve(ctx context.Context, slug string, request map[string]any) (map[string]any, error)
}
