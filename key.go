package modular

import (
	"fmt"
	"reflect"
)

// Key uniquely identifies a binding by its Go type and an optional
// qualifier name. Two resolutions for the same type (and qualifier)
// always compare equal, so Key is safe to use as a map key.
type Key struct {
	typ  reflect.Type
	name string // Empty for unqualified bindings, or "primary", "readonly" etc.
}

// KeyOf derives the unqualified key for type T.
//
// Example:
//
//	KeyOf[*Database]()      // *pkg.Database
//	KeyOf[io.Reader]()      // io.Reader
//	KeyOf[[]string]()       // []string
func KeyOf[T any]() Key {
	return Key{typ: reflect.TypeFor[T]()}
}

// QualifiedKeyOf derives a key for type T under the given qualifier,
// so multiple bindings of the same Go type can coexist in one module.
//
// Example:
//
//	QualifiedKeyOf[*sql.DB]("primary")
//	QualifiedKeyOf[*sql.DB]("readonly")
func QualifiedKeyOf[T any](name string) Key {
	return Key{typ: reflect.TypeFor[T](), name: name}
}

// Type returns the Go type the key identifies.
func (k Key) Type() reflect.Type {
	return k.typ
}

// Name returns the qualifier, or the empty string for unqualified keys.
func (k Key) Name() string {
	return k.name
}

// String returns a human-readable representation of the key.
func (k Key) String() string {
	typeName := "<nil>"
	if k.typ != nil {
		typeName = k.typ.String()
	}

	if k.name == "" {
		return typeName
	}

	return fmt.Sprintf("%s[name=%s]", typeName, k.name)
}
