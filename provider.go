package godi

import (
	"reflect"
	"sync"
)

// ServiceProvider resolves services from an immutable descriptor snapshot.
// Providers are produced by ServiceCollection.BuildServiceProvider and
// accept no further registrations. The descriptor map is read-only after
// construction; the only mutable state is the provider-scoped singleton
// cache.
type ServiceProvider struct {
	services  map[reflect.Type][]ServiceDescriptor
	instances map[reflect.Type]any
	mu        sync.RWMutex
}

// newServiceProvider groups descriptors by service type, walking the slice
// in reverse insertion order so that the most recently registered
// descriptor for a type sits at the head of its list.
func newServiceProvider(descriptors []ServiceDescriptor) *ServiceProvider {
	services := make(map[reflect.Type][]ServiceDescriptor, len(descriptors))
	for i := len(descriptors) - 1; i >= 0; i-- {
		descriptor := descriptors[i]
		serviceType := descriptor.ServiceType()
		services[serviceType] = append(services[serviceType], descriptor)
	}
	return &ServiceProvider{
		services:  services,
		instances: make(map[reflect.Type]any),
	}
}

// GetService resolves the most recently registered descriptor for
// serviceType. The flag is false when nothing is registered under the
// given type; callers must check it before using the service. A transient
// descriptor runs its factory on every call, a singleton descriptor at
// most once per provider with the instance cached thereafter.
func (p *ServiceProvider) GetService(serviceType reflect.Type) (any, bool) {
	descriptors, ok := p.services[serviceType]
	if !ok {
		return nil, false
	}

	descriptor := descriptors[0]
	if descriptor.Lifetime() != LifetimeSingleton {
		return descriptor.Factory()(p), true
	}

	p.mu.RLock()
	instance, cached := p.instances[serviceType]
	p.mu.RUnlock()
	if cached {
		return instance, true
	}

	// Invoke outside the lock: the factory may recurse into this provider.
	instance = descriptor.Factory()(p)

	p.mu.Lock()
	defer p.mu.Unlock()
	if existing, ok := p.instances[serviceType]; ok {
		return existing, true
	}
	p.instances[serviceType] = instance
	return instance, true
}

// Contains reports whether at least one descriptor is registered for
// serviceType, without invoking any factory.
func (p *ServiceProvider) Contains(serviceType reflect.Type) bool {
	_, ok := p.services[serviceType]
	return ok
}

// GetService resolves T from the provider and asserts the concrete type.
// Returns ServiceNotFoundError when T was never registered and
// TypeMismatchError when the resolved instance is not assignable to T; it
// never silently returns a reinterpreted value.
func GetService[T any](provider Provider) (T, error) {
	var zero T
	serviceType := typeOf[T]()

	service, ok := provider.GetService(serviceType)
	if !ok {
		return zero, &ServiceNotFoundError{Type: serviceType.String()}
	}

	typed, ok := service.(T)
	if !ok {
		got := "<nil>"
		if t := reflect.TypeOf(service); t != nil {
			got = t.String()
		}
		return zero, &TypeMismatchError{Expected: serviceType.String(), Got: got}
	}
	return typed, nil
}
