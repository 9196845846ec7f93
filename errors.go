package modular

import (
	"fmt"
	"strings"

	"github.com/xraph/go-utils/errs"
)

// =============================================================================
// ERROR CODES
// =============================================================================

const (
	// CodeInvalidFactory indicates a factory function is invalid or nil
	CodeInvalidFactory = "INVALID_FACTORY"

	// CodeBindingNotFound indicates no binding exists for a key anywhere
	// in the consulted module chain
	CodeBindingNotFound = "BINDING_NOT_FOUND"

	// CodeCyclicDependency indicates a factory resolved its own key,
	// directly or transitively, within a single resolution
	CodeCyclicDependency = "CYCLIC_DEPENDENCY"

	// CodeTypeMismatch indicates a resolved value is not of the requested type
	CodeTypeMismatch = "TYPE_MISMATCH"
)

// =============================================================================
// SENTINEL ERRORS
// =============================================================================

// ErrInvalidFactory is returned when a nil factory is declared.
var ErrInvalidFactory = errs.NewError(CodeInvalidFactory, "factory cannot be nil", nil)

// ErrBindingNotFoundSentinel is a sentinel error for missing bindings (for error checking).
var ErrBindingNotFoundSentinel = errs.NewError(CodeBindingNotFound, "binding not found", nil)

// ErrCyclicDependencySentinel is a sentinel error for cyclic resolution (for error checking).
var ErrCyclicDependencySentinel = errs.NewError(CodeCyclicDependency, "cyclic dependency", nil)

// ErrTypeMismatchSentinel is a sentinel error for type mismatch during resolution.
var ErrTypeMismatchSentinel = errs.NewError(CodeTypeMismatch, "type mismatch", nil)

// =============================================================================
// ERROR CONSTRUCTORS
// =============================================================================

// ErrBindingNotFound creates an error for a key with no binding in the chain.
// The chain description names every module that was consulted.
func ErrBindingNotFound(key Key, chain string) *errs.Error {
	return errs.NewError(
		CodeBindingNotFound,
		fmt.Sprintf("no binding for '%s' (searched %s)", key, chain),
		nil,
	).WithContext("key", key.String()).
		WithContext("chain", chain).(*errs.Error)
}

// ErrCyclicDependency creates an error reporting the resolution cycle.
func ErrCyclicDependency(path []Key) *errs.Error {
	names := make([]string, len(path))
	for i, k := range path {
		names[i] = k.String()
	}

	return errs.NewError(
		CodeCyclicDependency,
		fmt.Sprintf("cyclic dependency detected: %s", strings.Join(names, " -> ")),
		nil,
	).WithContext("cycle", names).(*errs.Error)
}

// ErrTypeMismatch creates an error for a type mismatch during resolution.
func ErrTypeMismatch(key Key, actual any) *errs.Error {
	return errs.NewError(
		CodeTypeMismatch,
		fmt.Sprintf("binding '%s' type mismatch: got %T", key, actual),
		nil,
	).WithContext("key", key.String()).
		WithContext("actual_type", fmt.Sprintf("%T", actual)).(*errs.Error)
}
