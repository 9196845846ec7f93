package modular

import (
	"fmt"
	"strings"
	"sync"
)

// Resolver resolves a key to an instance. It is implemented by Module,
// Injectable, and the in-flight resolution session handed to factories.
type Resolver interface {
	Resolve(key Key) (any, error)
}

// bindingStore owns a module's local bindings. Composed modules produced
// by Join share the right operand's store rather than copying it, so the
// store carries the lock instead of the Module.
type bindingStore struct {
	bindings map[Key]*binding
	mu       sync.RWMutex
}

func newBindingStore() *bindingStore {
	return &bindingStore{bindings: make(map[Key]*binding)}
}

func (s *bindingStore) put(b *binding) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings[b.key] = b
}

func (s *bindingStore) get(key Key) (*binding, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bindings[key]

	return b, ok
}

func (s *bindingStore) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.bindings)
}

func (s *bindingStore) keys() []Key {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]Key, 0, len(s.bindings))
	for k := range s.bindings {
		keys = append(keys, k)
	}

	return keys
}

// Module owns a set of bindings plus an optional parent consulted on
// lookup miss. Local bindings always shadow the parent chain.
//
// The expected discipline is build-then-freeze: declare every binding
// before the module is shared with consumers (set as default or handed
// to a facade). Declaring concurrently with resolution will not corrupt
// the module, but which binding a racing resolver sees is unspecified.
type Module struct {
	store  *bindingStore
	parent *Module
}

// New creates an empty module with no parent.
func New() *Module {
	return &Module{store: newBindingStore()}
}

// Extend creates an empty child module that falls back to m on lookup
// miss. The parent is never mutated through the child.
func (m *Module) Extend() *Module {
	return &Module{store: newBindingStore(), parent: m}
}

// Declare adds or replaces the binding for key in this module only.
// Declaring the same key twice is last-write-wins; bindings for the same
// key in ancestor modules are shadowed, not touched.
func (m *Module) Declare(key Key, policy Policy, factory func(Resolver) (any, error)) error {
	if factory == nil {
		return ErrInvalidFactory
	}

	m.store.put(&binding{key: key, policy: policy, factory: factory})

	return nil
}

// Resolve looks the key up locally, falling through the parent chain on
// miss. Each call starts a fresh resolution session, so factories that
// resolve further keys through the Resolver they receive get cycle
// detection for free.
func (m *Module) Resolve(key Key) (any, error) {
	s := &session{module: m}

	return s.Resolve(key)
}

// Has reports whether the key is bound in this module or any ancestor.
func (m *Module) Has(key Key) bool {
	_, _, ok := m.lookup(key)

	return ok
}

// Keys returns a snapshot of the keys bound locally in this module,
// excluding ancestors. Order is unspecified.
func (m *Module) Keys() []Key {
	return m.store.keys()
}

// Parent returns the module consulted on lookup miss, or nil.
func (m *Module) Parent() *Module {
	return m.parent
}

// Describe renders the module chain for diagnostics, head first.
func (m *Module) Describe() string {
	var sb strings.Builder
	for cur := m; cur != nil; cur = cur.parent {
		if cur != m {
			sb.WriteString(" -> ")
		}

		fmt.Fprintf(&sb, "module(%d bindings)", cur.store.len())
	}

	return sb.String()
}

// Join composes m with other: the result resolves other's bindings
// first, then falls through to m. Equivalent to Join(m, other).
func (m *Module) Join(other *Module) *Module {
	return Join(m, other)
}

// Join composes two modules into one, right-biased: on key collision the
// binding from b wins. Neither operand's bindings are copied or changed.
//
// Fallback order is established by attaching a at the tail of b's parent
// chain; this linkage change is visible through b itself, which
// afterwards also falls through to a. The parent chains involved must be
// acyclic — joining a module into its own chain is not detected and
// causes unbounded recursion on lookup.
func Join(a, b *Module) *Module {
	if a == nil {
		return b
	}

	if b == nil {
		return a
	}

	tail := b
	for tail.parent != nil {
		tail = tail.parent
	}

	if tail != a {
		tail.parent = a
	}

	return &Module{store: b.store, parent: b.parent}
}

// lookup walks the chain and returns the first binding for key together
// with the module that owns it.
func (m *Module) lookup(key Key) (*binding, *Module, bool) {
	for cur := m; cur != nil; cur = cur.parent {
		if b, ok := cur.store.get(key); ok {
			return b, cur, true
		}
	}

	return nil, nil, false
}

// session is a single top-level resolution in flight. It tracks the keys
// currently being constructed so a factory that resolves back into its
// own key fails with a cycle error instead of exhausting the stack.
//
// A session is confined to one goroutine; concurrent resolutions against
// the same module each get their own session and synchronize only on the
// per-binding singleton lock.
type session struct {
	module *Module
	stack  []Key
}

// Resolve implements Resolver for factories.
func (s *session) Resolve(key Key) (any, error) {
	for _, inFlight := range s.stack {
		if inFlight == key {
			return nil, ErrCyclicDependency(append(s.stack, key))
		}
	}

	b, _, ok := s.module.lookup(key)
	if !ok {
		return nil, ErrBindingNotFound(key, s.module.Describe())
	}

	s.stack = append(s.stack, key)
	instance, err := b.resolve(s)
	s.stack = s.stack[:len(s.stack)-1]

	return instance, err
}
