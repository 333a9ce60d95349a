// Package testutil provides in-memory stand-ins for the remote API.
package testutil

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/zoharmedia/zohar/pkg/client"
)

// Gateway is an in-memory collection.Gateway. Created records get
// sequential IDs of the form "<prefix>-<n>".
type Gateway[T any] struct {
	mu     sync.Mutex
	items  []T
	id     func(T) string
	setID  func(*T, string)
	prefix string
	next   int

	// FailWith makes every call fail with this message when non-empty.
	FailWith string
	// Hold, when set, is called before each mutation returns; tests use it
	// to keep a call in flight.
	Hold func(op string)

	Calls map[string]int
}

// NewGateway creates a gateway seeded with items.
func NewGateway[T any](prefix string, id func(T) string, setID func(*T, string), items ...T) *Gateway[T] {
	return &Gateway[T]{
		items:  slices.Clone(items),
		id:     id,
		setID:  setID,
		prefix: prefix,
		Calls:  map[string]int{},
	}
}

// CallCount returns how many times op ("list", "create", "update", "delete") ran.
func (g *Gateway[T]) CallCount(op string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.Calls[op]
}

func (g *Gateway[T]) enter(op string) string {
	g.mu.Lock()
	g.Calls[op]++
	fail := g.FailWith
	hold := g.Hold
	g.mu.Unlock()
	if hold != nil {
		hold(op)
	}
	return fail
}

func (g *Gateway[T]) List(context.Context) client.Result[[]T] {
	if msg := g.enter("list"); msg != "" {
		return client.Result[[]T]{Message: msg}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	items := slices.Clone(g.items)
	return client.Result[[]T]{Success: true, Data: &items}
}

func (g *Gateway[T]) Create(_ context.Context, item T) client.Result[T] {
	if msg := g.enter("create"); msg != "" {
		return client.Result[T]{Message: msg}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	g.setID(&item, fmt.Sprintf("%s-%d", g.prefix, g.next))
	g.items = append(g.items, item)
	return client.Result[T]{Success: true, Message: "created", Data: &item}
}

func (g *Gateway[T]) Update(_ context.Context, id string, item T) client.Result[T] {
	if msg := g.enter("update"); msg != "" {
		return client.Result[T]{Message: msg}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	i := slices.IndexFunc(g.items, func(it T) bool { return g.id(it) == id })
	if i < 0 {
		return client.Result[T]{Message: "not found"}
	}
	g.setID(&item, id)
	g.items[i] = item
	return client.Result[T]{Success: true, Message: "updated", Data: &item}
}

func (g *Gateway[T]) Delete(_ context.Context, id string) client.Result[T] {
	if msg := g.enter("delete"); msg != "" {
		return client.Result[T]{Message: msg}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.items = slices.DeleteFunc(g.items, func(it T) bool { return g.id(it) == id })
	return client.Result[T]{Success: true, Message: "deleted"}
}

// Store is an in-memory collection.Store.
type Store[T any] struct {
	mu    sync.Mutex
	value *T

	FailWith string
}

// NewStore creates a store holding value; nil means the server has no record.
func NewStore[T any](value *T) *Store[T] {
	return &Store[T]{value: value}
}

func (s *Store[T]) Fetch(context.Context) client.Result[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != "" {
		return client.Result[T]{Message: s.FailWith}
	}
	if s.value == nil {
		return client.Result[T]{Success: true}
	}
	v := *s.value
	return client.Result[T]{Success: true, Data: &v}
}

func (s *Store[T]) Save(_ context.Context, item T) client.Result[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != "" {
		return client.Result[T]{Message: s.FailWith}
	}
	s.value = &item
	return client.Result[T]{Success: true, Data: &item}
}
