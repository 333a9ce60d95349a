package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Result is the uniform outcome of every gateway call. Failures are never
// returned as Go errors: Success is false and Message says why.
type Result[T any] struct {
	Success bool
	Message string
	Data    *T
}

// Operation is one GraphQL document and where to find its result.
type Operation struct {
	Name     string // root field, e.g. "createInquiry"
	Document string
	Payload  string // mutation payload field holding the record, e.g. "inquiry"
	Paged    bool   // list result is {items, total}
}

func fail[T any](msg string) Result[T] {
	return Result[T]{Message: msg}
}

// Query runs a read operation and decodes its root field into T.
func Query[T any](ctx context.Context, c *Client, op Operation, vars map[string]any) (res Result[T]) {
	defer recoverResult(&res)

	raw, err := c.run(ctx, op, vars)
	if err != nil {
		return fail[T](Describe(err))
	}
	if isNull(raw) {
		return Result[T]{Success: true, Message: op.Name + " returned no data"}
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		c.logger.Warn("graphql decode failed", "op", op.Name, "error", err)
		return fail[T]("Invalid response from server")
	}
	return Result[T]{Success: true, Data: &out}
}

// List runs a list query, unwrapping the {items, total} envelope when the
// operation is paged.
func List[T any](ctx context.Context, c *Client, op Operation, vars map[string]any) Result[[]T] {
	if !op.Paged {
		return Query[[]T](ctx, c, op, vars)
	}
	type page struct {
		Items []T `json:"items"`
		Total int `json:"total"`
	}
	res := Query[page](ctx, c, op, vars)
	if !res.Success || res.Data == nil {
		return Result[[]T]{Success: res.Success, Message: res.Message}
	}
	return Result[[]T]{Success: true, Data: &res.Data.Items}
}

// Mutate runs a mutation whose root field is {success, message, <payload>}.
func Mutate[T any](ctx context.Context, c *Client, op Operation, vars map[string]any) (res Result[T]) {
	defer recoverResult(&res)

	raw, err := c.run(ctx, op, vars)
	if err != nil {
		return fail[T](Describe(err))
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fail[T]("Invalid response from server")
	}

	var status struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &status); err != nil {
		return fail[T]("Invalid response from server")
	}
	if !status.Success {
		if status.Message == "" {
			status.Message = op.Name + " failed"
		}
		return fail[T](status.Message)
	}

	res = Result[T]{Success: true, Message: status.Message}
	if rec, ok := fields[op.Payload]; ok && op.Payload != "" && !isNull(rec) {
		var out T
		if err := json.Unmarshal(rec, &out); err != nil {
			c.logger.Warn("graphql decode failed", "op", op.Name, "error", err)
			return fail[T]("Invalid response from server")
		}
		res.Data = &out
	}
	return res
}

func recoverResult[T any](res *Result[T]) {
	if r := recover(); r != nil {
		*res = fail[T](fmt.Sprintf("Unexpected error: %v", r))
	}
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
