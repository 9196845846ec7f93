package modular

import (
	"fmt"

	logger "github.com/xraph/go-utils/log"
	"github.com/xraph/go-utils/metrics"
)

// DeclareSingleton declares a memoized binding for type T in the module.
// The factory runs at most once; its first result is cached for every
// later resolution. Overwrites any prior binding for the same key in
// this module only.
//
// Example:
//
//	err := modular.DeclareSingleton(m, func(r modular.Resolver) (*Database, error) {
//	    return openDatabase()
//	})
func DeclareSingleton[T any](m *Module, factory func(Resolver) (T, error), opts ...BindOption) error {
	return declare(m, Singleton, factory, opts)
}

// DeclareProvider declares a non-memoized binding for type T in the
// module. The factory runs on every resolution. Same overwrite rule as
// DeclareSingleton.
func DeclareProvider[T any](m *Module, factory func(Resolver) (T, error), opts ...BindOption) error {
	return declare(m, Provider, factory, opts)
}

// DeclareInstance declares an already-built value for type T. Equivalent
// to a singleton whose factory returns the value.
func DeclareInstance[T any](m *Module, value T, opts ...BindOption) error {
	return declare(m, Singleton, func(Resolver) (T, error) {
		return value, nil
	}, opts)
}

func declare[T any](m *Module, policy Policy, factory func(Resolver) (T, error), opts []BindOption) error {
	if factory == nil {
		return ErrInvalidFactory
	}

	wrapped := func(r Resolver) (any, error) {
		return factory(r)
	}

	return m.Declare(keyFor[T](opts), policy, wrapped)
}

// Resolve resolves type T from any Resolver — a Module, an Injectable,
// or the session handed to a factory.
func Resolve[T any](r Resolver, opts ...BindOption) (T, error) {
	var zero T

	key := keyFor[T](opts)

	instance, err := r.Resolve(key)
	if err != nil {
		return zero, err
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, ErrTypeMismatch(key, instance)
	}

	return typed, nil
}

// Must resolves or panics - use only during startup.
func Must[T any](r Resolver, opts ...BindOption) T {
	instance, err := Resolve[T](r, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to resolve %s: %v", keyFor[T](opts), err))
	}

	return instance
}

// Has reports whether type T is bound in the module or any ancestor.
func Has[T any](m *Module, opts ...BindOption) bool {
	return m.Has(keyFor[T](opts))
}

// ResolveDefault resolves type T from the current process-wide default
// module. Convenience entry point equivalent to resolving through a
// facade built with no explicit module.
func ResolveDefault[T any](opts ...BindOption) (T, error) {
	return Resolve[T](Default(), opts...)
}

// GetLogger resolves the logger bound in the module.
// This is a convenience function for the conventional logger binding.
func GetLogger(r Resolver) (logger.Logger, error) {
	return Resolve[logger.Logger](r)
}

// GetMetrics resolves the metrics sink bound in the module.
func GetMetrics(r Resolver) (metrics.Metrics, error) {
	return Resolve[metrics.Metrics](r)
}
