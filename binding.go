package modular

import "sync"

// Policy controls how often a binding's factory runs.
type Policy string

const (
	// Singleton runs the factory at most once; the first result is cached
	// for every later resolution of the binding.
	Singleton Policy = "singleton"

	// Provider runs the factory on every resolution.
	Provider Policy = "provider"
)

// binding holds a declared factory and its lifecycle policy.
type binding struct {
	key     Key
	policy  Policy
	factory func(Resolver) (any, error)

	// Singleton state. The mutex serializes racing first access so the
	// factory runs at most once even under concurrency; both the value
	// and the error are retained.
	mu     sync.Mutex
	done   bool
	cached any
	err    error
}

// resolve evaluates the binding under its policy. The resolver is the
// in-flight resolution session, so factories can resolve their own
// dependencies on demand.
func (b *binding) resolve(r Resolver) (any, error) {
	if b.policy == Provider {
		return b.factory(r)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.done {
		return b.cached, b.err
	}

	b.cached, b.err = b.factory(r)
	b.done = true

	return b.cached, b.err
}
