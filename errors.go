package godi

import "fmt"

// ServiceNotFoundError represents a typed resolution of an unregistered
// service type.
type ServiceNotFoundError struct {
	Type string
}

func (e *ServiceNotFoundError) Error() string {
	return fmt.Sprintf("no service registered for type: %s", e.Type)
}

// TypeMismatchError represents a type assertion failure during typed
// resolution.
type TypeMismatchError struct {
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Got)
}

// NilFactoryError represents an attempt to construct a descriptor without
// a factory.
type NilFactoryError struct {
	Type string
}

func (e *NilFactoryError) Error() string {
	return fmt.Sprintf("nil factory provided for type: %s", e.Type)
}

// NilServiceTypeError represents an attempt to construct a descriptor
// without a service type.
type NilServiceTypeError struct{}

func (e *NilServiceTypeError) Error() string {
	return "nil service type provided for descriptor"
}
