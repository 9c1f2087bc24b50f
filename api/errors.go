package api

import (
	"errors"
	"fmt"

	"github.com/solatis/ruleforge/forge"
)

// Sentinel errors for transport-level failures. Resource-level failures
// (missing rules, rejected payloads) map onto the forge sentinels so
// callers match one error taxonomy regardless of where a check runs.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrRateLimited  = errors.New("rate limited")
	ErrServer       = errors.New("server error")
)

// APIError carries the HTTP details of a failed request. It wraps the
// sentinel matching its status class, so errors.Is works against both the
// api and forge sentinels.
type APIError struct {
	Status int
	Method string
	Path   string
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.Status, e.Body)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.Status == 400 || e.Status == 422:
		return forge.ErrValidation
	case e.Status == 401 || e.Status == 403:
		return ErrUnauthorized
	case e.Status == 404:
		return forge.ErrNotFound
	case e.Status == 409:
		return ErrConflict
	case e.Status == 429:
		return ErrRateLimited
	case e.Status >= 500:
		return ErrServer
	}
	return nil
}
