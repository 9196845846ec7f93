// Package modular is a minimal runtime binding registry: it maps a
// canonical key of a requested type to a factory producing an instance
// of that type, with two lifecycle policies and layered composition.
//
// # Overview
//
// Modular organizes code around three concepts:
//
//  1. Modules: registries owning type-keyed bindings, with an optional
//     parent consulted on lookup miss
//  2. Policies: singleton (factory runs once, result cached) or
//     provider (fresh instance per resolution)
//  3. Facades: consumer-side handles bound to a fixed module or to the
//     live process-wide default
//
// # Basic Usage
//
// Build a module, declare bindings, and share it:
//
//	m := modular.New()
//
//	_ = modular.DeclareSingleton(m, func(r modular.Resolver) (*Config, error) {
//	    return LoadConfig()
//	})
//
//	_ = modular.DeclareProvider(m, func(r modular.Resolver) (*Request, error) {
//	    cfg, err := modular.Resolve[*Config](r)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return NewRequest(cfg), nil
//	})
//
//	modular.SetDefault(m)
//
//	cfg, err := modular.ResolveDefault[*Config]()
//
// Factories receive a Resolver bound to the resolution in flight, so
// dependents of dependents are constructed lazily, on demand. A factory
// that resolves back into its own key fails with a cycle error.
//
// # Composition
//
// Modules compose right-biased: on key collision the right operand's
// binding wins, and every binding of both operands remains resolvable:
//
//	app := modular.Join(defaults, overrides)
//
// A module's local bindings always shadow anything reachable through
// its parent chain.
//
// # Facades
//
// Embed Injectable in a consumer to give it a resolution capability.
// The zero value binds lazily to the process-wide default; an explicit
// module fixes the facade to that module for its entire lifetime:
//
//	type Worker struct {
//	    modular.Injectable
//	}
//
//	w := Worker{}
//	queue, err := modular.Resolve[*Queue](w)
package modular
