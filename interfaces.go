package godi

import "reflect"

// Package godi provides a minimal service-collection dependency injection
// container: descriptors bind service types to factories, a collection
// accumulates them, and a built provider resolves instances on demand.

// ServiceFactory produces a service instance. It receives the resolving
// provider so the factory can look up its own dependencies recursively.
type ServiceFactory func(provider Provider) any

// Provider is the resolver surface handed to factories during resolution.
type Provider interface {
	// GetService resolves the most recently registered descriptor for
	// serviceType. The flag is false when nothing is registered under
	// the given type.
	GetService(serviceType reflect.Type) (any, bool)
}

// Lifetime defines the instance reuse behavior of a service.
type Lifetime string

// Available service lifetimes
const (
	// LifetimeSingleton resolves once per provider and reuses the instance
	LifetimeSingleton Lifetime = "singleton"
	// LifetimeTransient creates a new instance for each resolution
	LifetimeTransient Lifetime = "transient"
)

// typeOf returns the reflect.Type identity of T. The pointer indirection
// keeps interface types representable.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
