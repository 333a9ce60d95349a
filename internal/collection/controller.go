// Package collection keeps the in-memory list behind each admin screen in
// step with the remote API.
//
// Every mutation follows the same path: validate, call the gateway once,
// then apply the server's canonical record to the local list. Nothing is
// applied optimistically. Concurrent edits from other sessions are not
// reconciled; the last write to reach this process wins.
package collection

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/zoharmedia/zohar/pkg/client"
	"github.com/zoharmedia/zohar/pkg/validation"
)

// Gateway is the remote side of a collection.
type Gateway[T any] interface {
	List(ctx context.Context) client.Result[[]T]
	Create(ctx context.Context, item T) client.Result[T]
	Update(ctx context.Context, id string, item T) client.Result[T]
	Delete(ctx context.Context, id string) client.Result[T]
}

// Config describes one entity kind.
type Config[T any] struct {
	Name     string // singular, for logs and messages
	ID       func(T) string
	SetID    func(*T, string)
	Validate func(T) (T, validation.FieldErrors)

	// Search returns the fields matched by the search box.
	Search func(T) []string
	// Facets are the exact-match filters, by name.
	Facets map[string]func(T) string

	// SetStatus applies a status transition. Nil when the kind has no status.
	SetStatus func(*T, string)
	// Guard runs before a delete. A non-nil error blocks it.
	Guard func(T) error

	Logger *slog.Logger
}

// Controller owns the ordered list of one entity kind.
type Controller[T any] struct {
	cfg Config[T]
	gw  Gateway[T]
	log *slog.Logger

	mu      sync.Mutex
	items   []T
	filter  Filter
	pending map[string]bool
	loaded  bool
}

// New creates a controller with an empty list.
func New[T any](cfg Config[T], gw Gateway[T]) *Controller[T] {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Controller[T]{
		cfg:     cfg,
		gw:      gw,
		log:     log.With("collection", cfg.Name),
		filter:  Filter{Facets: map[string]string{}},
		pending: map[string]bool{},
	}
}

// Name returns the configured entity name.
func (c *Controller[T]) Name() string { return c.cfg.Name }

// Load replaces the list with the server's. On failure the list is kept.
func (c *Controller[T]) Load(ctx context.Context) error {
	res := c.gw.List(ctx)
	if !res.Success {
		c.log.Warn("load failed", "message", res.Message)
		return &RemoteError{Op: "load " + c.cfg.Name, Message: res.Message}
	}
	var items []T
	if res.Data != nil {
		items = *res.Data
	}

	c.mu.Lock()
	c.items = slices.Clone(items)
	c.loaded = true
	c.mu.Unlock()

	c.log.Debug("loaded", "count", len(items))
	return nil
}

// Loaded reports whether Load has succeeded at least once.
func (c *Controller[T]) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Items returns a copy of the full, unfiltered list.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// List returns the records that pass the current search and facet filters,
// in list order.
func (c *Controller[T]) List() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		if Match(it, c.filter, c.cfg.Search, c.cfg.Facets) {
			out = append(out, it)
		}
	}
	return out
}

// Get returns the record with the given ID.
func (c *Controller[T]) Get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// SetSearch sets the free-text search.
func (c *Controller[T]) SetSearch(q string) {
	c.mu.Lock()
	c.filter.Search = q
	c.mu.Unlock()
}

// Search returns the current free-text search.
func (c *Controller[T]) Search() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter.Search
}

// SetFilter selects a value for a facet. "" or AllValues clears it.
func (c *Controller[T]) SetFilter(facet, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if value == "" || value == AllValues {
		delete(c.filter.Facets, facet)
		return
	}
	c.filter.Facets[facet] = value
}

// Filter returns the selected value of a facet, or AllValues.
func (c *Controller[T]) Filter(facet string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.filter.Facets[facet]; ok {
		return v
	}
	return AllValues
}

// ClearFilters resets search and every facet.
func (c *Controller[T]) ClearFilters() {
	c.mu.Lock()
	c.filter = Filter{Facets: map[string]string{}}
	c.mu.Unlock()
}

// Busy reports whether a submission for the form key is in flight.
func (c *Controller[T]) Busy(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending[key]
}

// AddKey is the pending-submission key of the add form.
const AddKey = "add"

// UpdateKey returns the pending-submission key of an edit form.
func UpdateKey(id string) string { return "update:" + id }

func (c *Controller[T]) begin(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending[key] {
		return ErrBusy
	}
	c.pending[key] = true
	return nil
}

func (c *Controller[T]) end(key string) {
	c.mu.Lock()
	delete(c.pending, key)
	c.mu.Unlock()
}

// Add validates draft, creates it remotely and puts the server's record at
// the front of the list.
func (c *Controller[T]) Add(ctx context.Context, draft T) (T, error) {
	var zero T
	item, errs := c.cfg.Validate(draft)
	if errs != nil {
		return zero, &ValidationError{Fields: errs}
	}
	return c.create(ctx, item)
}

// AddFrom validates an alternate form shape, converts it with build and
// adds the result. build performs its own validation.
func AddFrom[T, F any](ctx context.Context, c *Controller[T], form F, build func(F) (T, validation.FieldErrors)) (T, error) {
	var zero T
	item, errs := build(form)
	if errs != nil {
		return zero, &ValidationError{Fields: errs}
	}
	return c.create(ctx, item)
}

func (c *Controller[T]) create(ctx context.Context, item T) (T, error) {
	var zero T
	if err := c.begin(AddKey); err != nil {
		return zero, err
	}
	defer c.end(AddKey)

	res := c.gw.Create(ctx, item)
	if !res.Success {
		c.log.Warn("create failed", "message", res.Message)
		return zero, &RemoteError{Op: "create " + c.cfg.Name, Message: res.Message}
	}
	created := item
	if res.Data != nil {
		created = *res.Data
	}
	if c.cfg.ID(created) == "" && c.cfg.SetID != nil {
		c.cfg.SetID(&created, uuid.NewString())
	}

	c.mu.Lock()
	c.items = slices.Insert(c.items, 0, created)
	c.mu.Unlock()

	c.log.Info("created", "id", c.cfg.ID(created))
	return created, nil
}

// Update applies patch to a copy of the record, validates the merged
// result, sends it and replaces the record in place.
func (c *Controller[T]) Update(ctx context.Context, id string, patch func(*T)) (T, error) {
	var zero T
	current, ok := c.Get(id)
	if !ok {
		return zero, ErrNotFound
	}
	merged := current
	patch(&merged)
	if c.cfg.SetID != nil {
		c.cfg.SetID(&merged, id)
	}

	item, errs := c.cfg.Validate(merged)
	if errs != nil {
		return zero, &ValidationError{Fields: errs}
	}
	return c.save(ctx, id, item)
}

// TransitionStatus moves a record to status. Any status may follow any
// other; the controller does not enforce a workflow.
func (c *Controller[T]) TransitionStatus(ctx context.Context, id, status string) (T, error) {
	if c.cfg.SetStatus == nil {
		var zero T
		return zero, &GuardError{Message: c.cfg.Name + " has no status"}
	}
	return c.Update(ctx, id, func(item *T) { c.cfg.SetStatus(item, status) })
}

func (c *Controller[T]) save(ctx context.Context, id string, item T) (T, error) {
	var zero T
	key := UpdateKey(id)
	if err := c.begin(key); err != nil {
		return zero, err
	}
	defer c.end(key)

	res := c.gw.Update(ctx, id, item)
	if !res.Success {
		c.log.Warn("update failed", "id", id, "message", res.Message)
		return zero, &RemoteError{Op: "update " + c.cfg.Name, Message: res.Message}
	}
	updated := item
	if res.Data != nil && c.cfg.ID(*res.Data) != "" {
		updated = *res.Data
	}

	c.mu.Lock()
	if i := c.indexOf(id); i >= 0 {
		c.items[i] = updated
	}
	c.mu.Unlock()

	c.log.Info("updated", "id", id)
	return updated, nil
}

// Remove deletes the record after its guard passes.
func (c *Controller[T]) Remove(ctx context.Context, id string) error {
	item, ok := c.Get(id)
	if !ok {
		return ErrNotFound
	}
	if c.cfg.Guard != nil {
		if err := c.cfg.Guard(item); err != nil {
			return err
		}
	}

	res := c.gw.Delete(ctx, id)
	if !res.Success {
		c.log.Warn("delete failed", "id", id, "message", res.Message)
		return &RemoteError{Op: "delete " + c.cfg.Name, Message: res.Message}
	}

	c.mu.Lock()
	c.items = slices.DeleteFunc(c.items, func(it T) bool { return c.cfg.ID(it) == id })
	c.mu.Unlock()

	c.log.Info("deleted", "id", id)
	return nil
}

// indexOf must be called with mu held.
func (c *Controller[T]) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(it T) bool { return c.cfg.ID(it) == id })
}
