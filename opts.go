package modular

// BindOption is a configuration option for declaring or resolving a binding.
type BindOption func(*bindConfig)

// bindConfig is the merged result of a set of BindOptions.
type bindConfig struct {
	name string
}

// Named qualifies the binding's key so multiple bindings of the same Go
// type can coexist in one module. The same option must be passed when
// resolving.
//
// Example:
//
//	DeclareSingleton(m, newPrimaryDB, Named("primary"))
//	DeclareSingleton(m, newReadonlyDB, Named("readonly"))
//	db, err := Resolve[*sql.DB](m, Named("readonly"))
func Named(name string) BindOption {
	return func(c *bindConfig) {
		c.name = name
	}
}

// mergeOptions combines multiple options.
func mergeOptions(opts []BindOption) bindConfig {
	var merged bindConfig
	for _, opt := range opts {
		opt(&merged)
	}

	return merged
}

// keyFor derives the lookup key for type T under the given options.
func keyFor[T any](opts []BindOption) Key {
	merged := mergeOptions(opts)
	if merged.name == "" {
		return KeyOf[T]()
	}

	return QualifiedKeyOf[T](merged.name)
}
