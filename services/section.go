package services

import (
	"context"
	"iter"
	"slices"
	"sync"
)

// Section names, also used as metric labels and partial routes
const (
	SectionPricing      = "pricing"
	SectionTestimonials = "testimonials"
	SectionBlog         = "blog"
)

// FetchFunc performs the single read request behind a section
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Section holds the list state of one fetch-bound page region.
// The list is always the result of the latest successful fetch, or empty.
type Section[T any] struct {
	name  string
	fetch FetchFunc[T]

	mu     sync.RWMutex
	items  []T
	loaded bool
}

// NewSection creates an empty section backed by fetch
func NewSection[T any](name string, fetch FetchFunc[T]) *Section[T] {
	return &Section[T]{
		name:  name,
		fetch: fetch,
		items: []T{},
	}
}

// Name returns the section name
func (s *Section[T]) Name() string {
	return s.name
}

// Mount issues exactly one fetch. On success the list is replaced wholesale;
// on failure the previous list is kept and the error is returned.
func (s *Section[T]) Mount(ctx context.Context) error {
	items, err := s.fetch(ctx)
	if err != nil {
		Metrics.ObserveFetch(s.name, err)
		return err
	}
	// A request torn down while the fetch was in flight must not publish late data
	if ctx.Err() != nil {
		Metrics.ObserveFetch(s.name, ctx.Err())
		return ctx.Err()
	}

	s.mu.Lock()
	s.items = orEmpty(items)
	s.loaded = true
	s.mu.Unlock()

	Metrics.ObserveFetch(s.name, nil)
	return nil
}

// Loaded reports whether any fetch has succeeded yet
func (s *Section[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Items returns a copy of the current list
func (s *Section[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Len returns the number of items currently held
func (s *Section[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Cards yields one element per list item in order. The sequence reads a
// snapshot taken when iteration starts, so it can be ranged over repeatedly.
func (s *Section[T]) Cards() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.Items() {
			if !yield(item) {
				return
			}
		}
	}
}
