package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solatis/ruleforge/forge"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := New("test-key", WithBaseURL(server.URL), WithMaxRetries(0))
	return client, server
}

func TestClient_Authentication(t *testing.T) {
	var gotAuth, gotAccept string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		json.NewEncoder(w).Encode([]forge.RuleSummary{})
	}))

	_, err := client.ListRules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
}

func TestClient_ImportRule(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))

	err := client.ImportRule(context.Background(), map[string]any{"id": "r-1", "name": "Pricing"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/assets/rules", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "r-1", gotBody["id"])
}

func TestClient_ExportRule(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/assets/rules/r-1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"id": "r-1", "name": "Pricing"})
	}))

	payload, err := client.ExportRule(context.Background(), "r-1")
	require.NoError(t, err)
	assert.Equal(t, "Pricing", payload["name"])
}

func TestClient_DeleteRule(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.DeleteRule(context.Background(), "r-1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/assets/rules/r-1", gotPath)
}

func TestClient_Solve(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rules/pricing-v2/solve", r.URL.Path)
		var request map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, float64(30), request["age"])
		json.NewEncoder(w).Encode(map[string]any{"eligible": true})
	}))

	response, err := client.Solve(context.Background(), "pricing-v2", map[string]any{"age": 30})
	require.NoError(t, err)
	assert.Equal(t, true, response["eligible"])
}

func TestClient_ListValues(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/values", r.URL.Path)
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "dv-1", "name": "threshold", "type": map[string]any{"value": "number"}},
		})
	}))

	values, err := client.ListValues(context.Background())
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, "threshold", values[0].Name)
	assert.Equal(t, forge.ValueNumber, values[0].Type)
}

func TestClient_UpdateValues(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/values", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))

	err := client.UpdateValues(context.Background(),
		map[string]any{"threshold": 10}, []string{"analysts"})
	require.NoError(t, err)
	values := gotBody["values"].(map[string]any)
	assert.Equal(t, float64(10), values["threshold"])
	groups := gotBody["accessGroups"].([]any)
	assert.Equal(t, "analysts", groups[0])
}

func TestClient_FoldersAndGroups(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/assets/folders":
			if r.Method == http.MethodPost {
				json.NewEncoder(w).Encode(forge.Folder{ID: "f-2", Name: "Fresh"})
				return
			}
			json.NewEncoder(w).Encode([]forge.Folder{{ID: "f-1", Name: "Pricing"}})
		case "/groups":
			if r.Method == http.MethodPost {
				json.NewEncoder(w).Encode(forge.Group{ID: "g-2", Name: "ops"})
				return
			}
			json.NewEncoder(w).Encode([]forge.Group{{ID: "g-1", Name: "analysts"}})
		default:
			http.NotFound(w, r)
		}
	}))
	ctx := context.Background()

	folders, err := client.ListFolders(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, "Pricing", folders[0].Name)

	folder, err := client.UpsertFolder(ctx, "Fresh")
	require.NoError(t, err)
	assert.Equal(t, "f-2", folder.ID)

	groups, err := client.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)

	group, err := client.CreateGroup(ctx, "ops")
	require.NoError(t, err)
	assert.Equal(t, "g-2", group.ID)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		sentinel error
	}{
		{name: "bad request", status: http.StatusBadRequest, sentinel: forge.ErrValidation},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, sentinel: forge.ErrValidation},
		{name: "unauthorized", status: http.StatusUnauthorized, sentinel: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, sentinel: ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, sentinel: forge.ErrNotFound},
		{name: "conflict", status: http.StatusConflict, sentinel: ErrConflict},
		{name: "rate limited", status: http.StatusTooManyRequests, sentinel: ErrRateLimited},
		{name: "internal error", status: http.StatusInternalServerError, sentinel: ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))

			_, err := client.ExportRule(context.Background(), "r-1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, "/assets/rules/r-1", apiErr.Path)
			assert.Contains(t, apiErr.Body, "nope")
		})
	}
}

func TestClient_RetriesRateLimits(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "slow down", http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"id": "r-1"})
	}))
	t.Cleanup(server.Close)
	client := New("test-key", WithBaseURL(server.URL), WithMaxRetries(3))

	payload, err := client.ExportRule(context.Background(), "r-1")
	require.NoError(t, err)
	assert.Equal(t, "r-1", payload["id"])
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_NoRetryOnClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad payload", http.StatusBadRequest)
	}))
	t.Cleanup(server.Close)
	client := New("test-key", WithBaseURL(server.URL), WithMaxRetries(3))

	err := client.ImportRule(context.Background(), map[string]any{"id": "r-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, forge.ErrValidation)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_BaseURLTrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode([]forge.RuleSummary{})
	}))
	t.Cleanup(server.Close)
	client := New("test-key", WithBaseURL(server.URL+"/"))

	_, err := client.ListRules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/assets/rules", gotPath)
}

// Client satisfies the workspace contract end to end: a rule built against
// it publishes and solves through real HTTP plumbing.
func TestClient_AsWorkspace(t *testing.T) {
	stored := make(map[string]map[string]any)
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/assets/rules" && r.Method == http.MethodPost:
			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			stored[payload["id"].(string)] = payload
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodGet && len(r.URL.Path) > len("/assets/rules/"):
			payload, ok := stored[r.URL.Path[len("/assets/rules/"):]]
			if !ok {
				http.NotFound(w, r)
				return
			}
			json.NewEncoder(w).Encode(payload)
		default:
			http.NotFound(w, r)
		}
	}))

	rule := forge.NewRule(client)
	rule.SetName("Shipping")
	rule.AddNumberField("weight", "", 0)
	rule.AddBooleanResponse("express", "", false)

	require.NoError(t, rule.Update(context.Background()))

	fetched := forge.NewRule(client)
	require.NoError(t, fetched.FromWorkspace(context.Background(), rule.ID()))
	assert.Equal(t, "Shipping", fetched.Name())
}
