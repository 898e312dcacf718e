package godi

import "reflect"

// ServiceDescriptor binds a service type to the factory that produces it
// and the lifetime governing instance reuse. Descriptors are immutable
// values: every field is set at construction and exposed only through
// read-only accessors, so copies never share mutable state.
type ServiceDescriptor struct {
	serviceType reflect.Type
	factory     ServiceFactory
	lifetime    Lifetime
}

// NewServiceDescriptor constructs a descriptor from its three mandatory
// parts. It panics when serviceType or factory is nil: a descriptor
// missing either can never be resolved, so the mistake surfaces at
// registration time instead of at lookup time.
func NewServiceDescriptor(serviceType reflect.Type, factory ServiceFactory, lifetime Lifetime) ServiceDescriptor {
	if serviceType == nil {
		panic(&NilServiceTypeError{})
	}
	if factory == nil {
		panic(&NilFactoryError{Type: serviceType.String()})
	}
	return ServiceDescriptor{
		serviceType: serviceType,
		factory:     factory,
		lifetime:    lifetime,
	}
}

// ServiceType returns the identity the descriptor is registered under.
func (d ServiceDescriptor) ServiceType() reflect.Type {
	return d.serviceType
}

// Factory returns the factory that produces the service instance.
func (d ServiceDescriptor) Factory() ServiceFactory {
	return d.factory
}

// Lifetime returns the reuse policy of the service.
func (d ServiceDescriptor) Lifetime() Lifetime {
	return d.lifetime
}
