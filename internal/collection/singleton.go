package collection

import (
	"context"
	"log/slog"
	"sync"

	"github.com/zoharmedia/zohar/pkg/client"
	"github.com/zoharmedia/zohar/pkg/validation"
)

// Store is the remote side of a singleton record.
type Store[T any] interface {
	Fetch(ctx context.Context) client.Result[T]
	Save(ctx context.Context, item T) client.Result[T]
}

// Singleton holds one record that is edited in place, such as the business
// settings.
type Singleton[T any] struct {
	name     string
	store    Store[T]
	validate func(T) (T, validation.FieldErrors)
	log      *slog.Logger

	mu      sync.Mutex
	value   T
	loaded  bool
	pending bool
}

// NewSingleton creates a singleton holding the zero value until loaded.
func NewSingleton[T any](name string, store Store[T], validate func(T) (T, validation.FieldErrors), log *slog.Logger) *Singleton[T] {
	if log == nil {
		log = slog.Default()
	}
	return &Singleton[T]{name: name, store: store, validate: validate, log: log.With("singleton", name)}
}

// Load fetches the record. A server with no record yet leaves the zero value.
func (s *Singleton[T]) Load(ctx context.Context) error {
	res := s.store.Fetch(ctx)
	if !res.Success {
		s.log.Warn("load failed", "message", res.Message)
		return &RemoteError{Op: "load " + s.name, Message: res.Message}
	}
	s.mu.Lock()
	if res.Data != nil {
		s.value = *res.Data
	}
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Get returns the current record.
func (s *Singleton[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Loaded reports whether Load has succeeded at least once.
func (s *Singleton[T]) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Save applies patch to a copy, validates it and writes it remotely.
func (s *Singleton[T]) Save(ctx context.Context, patch func(*T)) (T, error) {
	var zero T
	next := s.Get()
	patch(&next)
	next, errs := s.validate(next)
	if errs != nil {
		return zero, &ValidationError{Fields: errs}
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return zero, ErrBusy
	}
	s.pending = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.pending = false
		s.mu.Unlock()
	}()

	res := s.store.Save(ctx, next)
	if !res.Success {
		s.log.Warn("save failed", "message", res.Message)
		return zero, &RemoteError{Op: "save " + s.name, Message: res.Message}
	}
	if res.Data != nil {
		next = *res.Data
	}
	s.mu.Lock()
	s.value = next
	s.mu.Unlock()
	s.log.Info("saved")
	return next, nil
}
