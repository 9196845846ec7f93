package modular

import "sync/atomic"

// defaultSlot holds the process-wide default module. Replacement is a
// single pointer swap, so readers racing a writer observe either the old
// or the new module in its entirety.
var defaultSlot atomic.Pointer[Module]

// emptyModule is what Default returns before any SetDefault call. It is
// shared and must be treated as read-only.
var emptyModule = New()

// SetDefault replaces the process-wide default module unconditionally.
// The previous default is discarded, not merged.
func SetDefault(m *Module) {
	defaultSlot.Store(m)
}

// Default returns the current process-wide default module. If none was
// ever set, it returns a fixed empty module, never nil, so resolution
// against an unset default fails with BINDING_NOT_FOUND rather than
// panicking.
func Default() *Module {
	if m := defaultSlot.Load(); m != nil {
		return m
	}

	return emptyModule
}
