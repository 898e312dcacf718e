package godi

import "reflect"

// ServiceCollection accumulates service descriptors in registration order.
// It is an append-only builder: descriptors go in through Add or the typed
// helpers and are compiled into a ServiceProvider by BuildServiceProvider.
// Registration order is meaningful: the most recent descriptor for a
// service type wins at resolution time.
type ServiceCollection struct {
	descriptors []ServiceDescriptor
}

// NewServiceCollection creates an empty service collection.
func NewServiceCollection() *ServiceCollection {
	return &ServiceCollection{}
}

// Add appends a descriptor and returns the collection for chaining.
// Duplicate service types are allowed; a later registration overrides
// earlier ones rather than failing.
func (c *ServiceCollection) Add(descriptor ServiceDescriptor) *ServiceCollection {
	c.descriptors = append(c.descriptors, descriptor)
	return c
}

// Len returns the number of registered descriptors.
func (c *ServiceCollection) Len() int {
	return len(c.descriptors)
}

// BuildServiceProvider compiles the accumulated descriptors into a new
// ServiceProvider. The collection is not consumed: building again on an
// unmodified collection yields an independent provider with its own
// singleton state, and descriptors added afterwards are invisible to
// providers built earlier.
func (c *ServiceCollection) BuildServiceProvider() *ServiceProvider {
	return newServiceProvider(c.descriptors)
}

// AddSingleton registers T with singleton lifetime and returns the
// collection for chaining. The optional factory receives the resolving
// provider; when omitted, a default factory constructs an instance of T
// through reflection.
func AddSingleton[T any](c *ServiceCollection, factory ...ServiceFactory) *ServiceCollection {
	return c.Add(NewServiceDescriptor(typeOf[T](), pickFactory[T](factory), LifetimeSingleton))
}

// AddTransient registers T with transient lifetime and returns the
// collection for chaining. The optional factory receives the resolving
// provider; when omitted, a default factory constructs a fresh instance of
// T on every resolution.
func AddTransient[T any](c *ServiceCollection, factory ...ServiceFactory) *ServiceCollection {
	return c.Add(NewServiceDescriptor(typeOf[T](), pickFactory[T](factory), LifetimeTransient))
}

func pickFactory[T any](factory []ServiceFactory) ServiceFactory {
	if len(factory) > 0 && factory[0] != nil {
		return factory[0]
	}
	return defaultFactory[T]()
}

// defaultFactory builds instances of T without a caller-supplied factory.
// For a pointer type it allocates a fresh element, for a value type it
// returns the zero value. Interface types have no default construction and
// need an explicit factory.
func defaultFactory[T any]() ServiceFactory {
	serviceType := typeOf[T]()
	return func(Provider) any {
		if serviceType.Kind() == reflect.Ptr {
			return reflect.New(serviceType.Elem()).Interface()
		}
		return reflect.New(serviceType).Elem().Interface()
	}
}
