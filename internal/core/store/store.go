// Package store implements the local authoritative cache of one
// backend-owned collection, with loading and error bookkeeping. One generic
// implementation is instantiated per resource kind.
package store

import (
	"context"
	"sync"
)

// fallbackMessage is recorded when a failure carries no usable text.
const fallbackMessage = "request failed"

// Store holds one resource collection in insertion order together with a
// loading flag and an error slot. All mutations go through fetch, create,
// and update; concurrent calls are last-write-wins with no sequence guard,
// and the loading flag is not reference-counted: it drops to false as soon
// as the first in-flight call settles.
type Store[T any] struct {
	id func(T) string

	mu       sync.Mutex
	items    []T
	loading  bool
	err      string
	observer func()
}

// New builds a store for items whose unique id is extracted by id.
func New[T any](id func(T) string) *Store[T] {
	return &Store[T]{id: id}
}

// SetObserver installs a callback invoked after every state mutation
// (loading flips, error writes, collection changes). At most one observer;
// it must not call back into the store.
func (s *Store[T]) SetObserver(fn func()) {
	s.mu.Lock()
	s.observer = fn
	s.mu.Unlock()
}

// Items returns a copy of the collection in insertion order.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Loading reports whether a call is in flight. With overlapping calls this
// reports false as soon as the first one settles.
func (s *Store[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the message recorded by the last failed call, or empty when
// the last call succeeded.
func (s *Store[T]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// fetch replaces the collection wholesale with the response of list. On
// failure the prior items are preserved and the error slot is set; the error
// is not returned to the caller.
func (s *Store[T]) fetch(ctx context.Context, list func(context.Context) ([]T, error)) {
	s.begin()
	items, err := list(ctx)
	if err != nil {
		s.settle(err, nil)
		return
	}
	s.settle(nil, func() {
		s.items = items
	})
}

// create appends the server-assigned item on success. On failure the error
// is recorded and returned so callers can react beyond the error slot.
func (s *Store[T]) create(ctx context.Context, call func(context.Context) (*T, error)) (*T, error) {
	s.begin()
	item, err := call(ctx)
	if err != nil {
		s.settle(err, nil)
		return nil, err
	}
	s.settle(nil, func() {
		s.items = append(s.items, *item)
	})
	return item, nil
}

// update replaces the entry matching id with the server's representation,
// located by linear scan. When no local entry matches, the collection is
// left untouched and the call is still considered successful.
func (s *Store[T]) update(ctx context.Context, id string, call func(context.Context) (*T, error)) (*T, error) {
	s.begin()
	item, err := call(ctx)
	if err != nil {
		s.settle(err, nil)
		return nil, err
	}
	s.settle(nil, func() {
		for i := range s.items {
			if s.id(s.items[i]) == id {
				s.items[i] = *item
				return
			}
		}
	})
	return item, nil
}

// begin marks a call in flight and clears the error slot.
func (s *Store[T]) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	fn := s.observer
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// settle drops the loading flag and either records the failure message or
// applies the mutation under the lock, then notifies the observer.
func (s *Store[T]) settle(err error, apply func()) {
	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.err = display(err)
	} else if apply != nil {
		apply()
	}
	fn := s.observer
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// display coerces a failure to the string shown in the error slot.
func display(err error) string {
	msg := err.Error()
	if msg == "" {
		return fallbackMessage
	}
	return msg
}
