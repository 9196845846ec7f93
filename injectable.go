package modular

// Injectable is a consumer-side handle for resolving dependencies.
// Embed it in (or attach it to) any consumer type.
//
// Built with an explicit module, the facade queries that module for its
// entire lifetime. Built with nil — or used as its zero value — it
// re-reads the live process-wide default on every resolution, so a later
// SetDefault is observed by existing facades (late binding).
//
// Example:
//
//	type OrderService struct {
//	    modular.Injectable
//	}
//
//	svc := OrderService{}
//	repo, err := modular.Resolve[OrderRepo](svc)
type Injectable struct {
	fixed *Module
}

// NewInjectable creates a facade. Pass nil to bind lazily to the
// process-wide default instead of a fixed module.
func NewInjectable(m *Module) Injectable {
	return Injectable{fixed: m}
}

// Module returns the module the facade queries: the fixed one it was
// built with, or the live default.
func (i Injectable) Module() *Module {
	if i.fixed != nil {
		return i.fixed
	}

	return Default()
}

// Resolve implements Resolver by delegating to the effective module.
func (i Injectable) Resolve(key Key) (any, error) {
	return i.Module().Resolve(key)
}

// Has reports whether the key is bound in the effective module's chain.
func (i Injectable) Has(key Key) bool {
	return i.Module().Has(key)
}
