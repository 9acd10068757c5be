// internal/backend/envelope.go
package backend

import (
	"context"
	"encoding/json"
	"net/http"
)

// Result is the uniform envelope every backend call returns. The envelope
// IS the control-flow contract: handlers check Success instead of wrapping
// calls in error handling of their own.
type Result[T any] struct {
	Success bool
	Data    T
	Error   string

	// Unauthorized marks a dead session (pre-flight expiry or a 401 from
	// the backend). The caller must clear the session and redirect to
	// /login rather than render the error.
	Unauthorized bool
}

func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func fail[T any](ce *callError) Result[T] {
	return Result[T]{Error: ce.message, Unauthorized: ce.unauthorized}
}

// unwrap peels a wrapped mutation response. The backend is inconsistent:
// some endpoints return the bare object, others wrap it under a family key
// ({hero: ...}, {item: ...}, {data: ...}). The known keys are passed
// explicitly per endpoint family instead of guessing.
func unwrap(raw json.RawMessage, keys ...string) json.RawMessage {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return raw
	}
	for _, k := range keys {
		if inner, found := m[k]; found && len(inner) > 0 && string(inner) != "null" {
			return inner
		}
	}
	return raw
}

// decodeInto unwraps and decodes a response body into target.
func decodeInto(raw json.RawMessage, target any, wrapKeys ...string) error {
	return json.Unmarshal(unwrap(raw, wrapKeys...), target)
}

// getList fetches a list endpoint, tolerating wrapped and non-array bodies.
// A body that is neither an array nor a wrapper around one decodes to an
// empty slice so rendering stays resilient.
func getList[T any](c *Client, ctx context.Context, path string, authorized bool, wrapKeys ...string) Result[[]T] {
	raw, ce := c.do(ctx, http.MethodGet, path, nil, "", authorized)
	if ce != nil {
		return fail[[]T](ce)
	}
	return ok(decodeList[T](raw, wrapKeys...))
}

func decodeList[T any](raw json.RawMessage, wrapKeys ...string) []T {
	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		return items
	}
	inner := unwrap(raw, wrapKeys...)
	if err := json.Unmarshal(inner, &items); err == nil && items != nil {
		return items
	}
	return []T{}
}

// getOne fetches a single record, unwrapping the endpoint family's wrapper
// keys when present.
func getOne[T any](c *Client, ctx context.Context, path string, authorized bool, wrapKeys ...string) Result[T] {
	raw, ce := c.do(ctx, http.MethodGet, path, nil, "", authorized)
	if ce != nil {
		return fail[T](ce)
	}
	var item T
	if err := json.Unmarshal(unwrap(raw, wrapKeys...), &item); err != nil {
		return Result[T]{Error: err.Error()}
	}
	return ok(item)
}

// mutate issues a JSON-bodied write and decodes the (possibly wrapped)
// result. A zero-value Data is returned for endpoints that respond with an
// empty or message-only body, which is fine for delete calls.
func mutate[T any](c *Client, ctx context.Context, method, path string, payload any, wrapKeys ...string) Result[T] {
	body, err := jsonBody(payload)
	if err != nil {
		return Result[T]{Error: err.Error()}
	}
	contentType := ""
	if body != nil {
		contentType = "application/json"
	}
	raw, ce := c.do(ctx, method, path, body, contentType, true)
	if ce != nil {
		return fail[T](ce)
	}
	var item T
	if len(raw) > 0 {
		// Best effort: delete endpoints return {message: ...} which does
		// not decode into the entity, and that is not an error.
		_ = json.Unmarshal(unwrap(raw, wrapKeys...), &item)
	}
	return ok(item)
}
