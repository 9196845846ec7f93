package modular

import (
	"errors"
	"fmt"
	"sync"
)

// Lazy wraps a dependency that is resolved on first access.
// This is useful for deferring resolution of expensive bindings until
// they're actually needed, or for consumers built before the default
// module is set.
type Lazy[T any] struct {
	source   Resolver
	key      Key
	mu       sync.Once
	value    T
	err      error
	resolved bool
}

// NewLazy creates a new lazy dependency wrapper around any Resolver.
func NewLazy[T any](source Resolver, opts ...BindOption) *Lazy[T] {
	return &Lazy[T]{
		source: source,
		key:    keyFor[T](opts),
	}
}

// Get resolves the dependency and returns it.
// The resolution happens only once; subsequent calls return the cached value.
func (l *Lazy[T]) Get() (T, error) {
	l.mu.Do(func() {
		instance, err := l.source.Resolve(l.key)
		if err != nil {
			l.err = err

			return
		}

		typed, ok := instance.(T)
		if !ok {
			l.err = ErrTypeMismatch(l.key, instance)

			return
		}

		l.value = typed
		l.resolved = true
	})

	return l.value, l.err
}

// MustGet resolves the dependency and returns it, panicking on error.
func (l *Lazy[T]) MustGet() T {
	value, err := l.Get()
	if err != nil {
		panic(fmt.Sprintf("lazy dependency %s failed: %v", l.key, err))
	}

	return value
}

// IsResolved returns true if the dependency has been resolved.
func (l *Lazy[T]) IsResolved() bool {
	return l.resolved
}

// Key returns the key the wrapper resolves.
func (l *Lazy[T]) Key() Key {
	return l.key
}

// OptionalLazy wraps an optional dependency that is resolved on first
// access. Returns the zero value without error if no binding exists.
type OptionalLazy[T any] struct {
	source   Resolver
	key      Key
	mu       sync.Once
	value    T
	err      error
	resolved bool
	found    bool
}

// NewOptionalLazy creates a new optional lazy dependency wrapper.
func NewOptionalLazy[T any](source Resolver, opts ...BindOption) *OptionalLazy[T] {
	return &OptionalLazy[T]{
		source: source,
		key:    keyFor[T](opts),
	}
}

// keyChecker is satisfied by Module and Injectable. It lets OptionalLazy
// test for existence up front, so a missing transitive dependency inside
// a factory still surfaces as an error rather than as absence.
type keyChecker interface {
	Has(key Key) bool
}

// Get resolves the dependency and returns it.
// Returns the zero value without error if no binding exists anywhere in
// the consulted chain.
func (l *OptionalLazy[T]) Get() (T, error) {
	l.mu.Do(func() {
		if h, ok := l.source.(keyChecker); ok && !h.Has(l.key) {
			l.resolved = true
			l.found = false

			return
		}

		instance, err := l.source.Resolve(l.key)
		if err != nil {
			if _, ok := l.source.(keyChecker); !ok && errors.Is(err, ErrBindingNotFoundSentinel) {
				l.resolved = true
				l.found = false

				return
			}

			l.err = err

			return
		}

		typed, ok := instance.(T)
		if !ok {
			l.err = ErrTypeMismatch(l.key, instance)

			return
		}

		l.value = typed
		l.resolved = true
		l.found = true
	})

	return l.value, l.err
}

// MustGet resolves the dependency and returns it, panicking on error.
// Returns the zero value if no binding exists (does not panic).
func (l *OptionalLazy[T]) MustGet() T {
	value, err := l.Get()
	if err != nil {
		panic(fmt.Sprintf("optional lazy dependency %s failed: %v", l.key, err))
	}

	return value
}

// IsResolved returns true if the dependency has been resolved.
func (l *OptionalLazy[T]) IsResolved() bool {
	return l.resolved
}

// IsFound returns true if a binding was found (only valid after resolution).
func (l *OptionalLazy[T]) IsFound() bool {
	return l.found
}

// Key returns the key the wrapper resolves.
func (l *OptionalLazy[T]) Key() Key {
	return l.key
}
