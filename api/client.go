// Package api implements the HTTP transport behind forge.Workspace.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/solatis/ruleforge/forge"
)

/*
 * HTTP client for the hosted decision service.
 *
 * All requests carry Bearer authentication and JSON bodies. Rate limits
 * (429) and transient upstream failures (502/503/504) are retried with
 * linear backoff up to maxRetries; everything else surfaces immediately as
 * an *APIError wrapping the sentinel for its status class.
 */

const defaultBaseURL = "https://rulebricks.com/api/v1"

// Client talks to the hosted service. It satisfies forge.Workspace, so a
// rule bound to it can publish, refresh, and solve remotely.
type Client struct {
	baseURL    string
	apiKey     string
	http       *http.Client
	logger     *slog.Logger
	maxRetries int
}

var _ forge.Workspace = (*Client)(nil)

// New constructs a client authenticating with the given API key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		http:       &http.Client{Timeout: 30 * time.Second},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxRetries: 2,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	return c
}

// do performs one JSON request, decoding the response into out when out is
// non-nil. Retryable statuses are re-attempted against a fresh body reader.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return fmt.Errorf("building request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		start := time.Now()
		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%s %s: %w", method, path, err)
			continue
		}

		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		resp.Body.Close()
		c.logger.DebugContext(ctx, "api request",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"duration", time.Since(start))

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if readErr != nil {
				return fmt.Errorf("reading response body: %w", readErr)
			}
			if out == nil || len(respBody) == 0 {
				return nil
			}
			if err := json.Unmarshal(respBody, out); err != nil {
				return fmt.Errorf("decoding response body: %w", err)
			}
			return nil
		}

		lastErr = &APIError{
			Status: resp.StatusCode,
			Method: method,
			Path:   path,
			Body:   strings.TrimSpace(string(respBody)),
		}
		if !retryable(resp.StatusCode) {
			return lastErr
		}
	}
	return lastErr
}

func retryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// wireDynamicValue is the listing shape of a dynamic value; the value type
// arrives nested under type.value.
type wireDynamicValue struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type struct {
		Value string `json:"value"`
	} `json:"type"`
}

// ListValues returns every dynamic value defined in the workspace.
func (c *Client) ListValues(ctx context.Context) ([]forge.DynamicValueSummary, error) {
	var wire []wireDynamicValue
	if err := c.do(ctx, http.MethodGet, "/values", nil, &wire); err != nil {
		return nil, err
	}
	values := make([]forge.DynamicValueSummary, len(wire))
	for i, v := range wire {
		values[i] = forge.DynamicValueSummary{
			ID:   v.ID,
			Name: v.Name,
			Type: forge.ValueType(v.Type.Value),
		}
	}
	return values, nil
}

// UpdateValues upserts dynamic values by name, optionally restricting
// access to the given user groups.
func (c *Client) UpdateValues(ctx context.Context, values map[string]any, userGroups []string) error {
	body := map[string]any{"values": values}
	if len(userGroups) > 0 {
		body["accessGroups"] = userGroups
	}
	return c.do(ctx, http.MethodPost, "/values", body, nil)
}

// ImportRule upserts a rule by its embedded id.
func (c *Client) ImportRule(ctx context.Context, rule map[string]any) error {
	return c.do(ctx, http.MethodPost, "/assets/rules", rule, nil)
}

// ExportRule fetches the canonical wire payload of a rule by id.
func (c *Client) ExportRule(ctx context.Context, id string) (map[string]any, error) {
	var payload map[string]any
	if err := c.do(ctx, http.MethodGet, "/assets/rules/"+url.PathEscape(id), nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// DeleteRule removes a rule by id.
func (c *Client) DeleteRule(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/assets/rules/"+url.PathEscape(id), nil, nil)
}

// ListRules returns summaries of every rule in the workspace.
func (c *Client) ListRules(ctx context.Context) ([]forge.RuleSummary, error) {
	var rules []forge.RuleSummary
	if err := c.do(ctx, http.MethodGet, "/assets/rules", nil, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// ListFolders returns every rule folder in the workspace.
func (c *Client) ListFolders(ctx context.Context) ([]forge.Folder, error) {
	var folders []forge.Folder
	if err := c.do(ctx, http.MethodGet, "/assets/folders", nil, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// UpsertFolder creates or returns the folder with the given name.
func (c *Client) UpsertFolder(ctx context.Context, name string) (forge.Folder, error) {
	var folder forge.Folder
	body := map[string]any{"name": name}
	if err := c.do(ctx, http.MethodPost, "/assets/folders", body, &folder); err != nil {
		return forge.Folder{}, err
	}
	return folder, nil
}

// ListGroups returns every user group in the workspace.
func (c *Client) ListGroups(ctx context.Context) ([]forge.Group, error) {
	var groups []forge.Group
	if err := c.do(ctx, http.MethodGet, "/groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// CreateGroup creates a user group with the given name.
func (c *Client) CreateGroup(ctx context.Context, name string) (forge.Group, error) {
	var group forge.Group
	body := map[string]any{"name": name}
	if err := c.do(ctx, http.MethodPost, "/groups", body, &group); err != nil {
		return forge.Group{}, err
	}
	return group, nil
}

// Solve evaluates a published rule by slug against the given request.
func (c *Client) Solve(ctx context.Context, slug string, request map[string]any) (map[string]any, error) {
	var response map[string]any
	path := "/rules/" + url.PathEscape(slug) + "/solve"
	if err := c.do(ctx, http.MethodPost, path, request, &response); err != nil {
		return nil, err
	}
	return response, nil
}
