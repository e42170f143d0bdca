package resource

import (
	"errors"
	"fmt"

	"resource-mapper/mapping"
)

var (
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrUnsupportedValue     = errors.New("unsupported value type")
	ErrUnresolvedNestedType = errors.New("unresolved nested type")
	ErrMalformedPayload     = errors.New("malformed payload")
	ErrAlreadyRegistered    = errors.New("type already registered")

	// ErrMappingNotFound is returned for attributes a type does not declare.
	ErrMappingNotFound = mapping.ErrMappingNotFound
)

// TypeMismatchError reports an envelope whose type differs from the
// expected one.
type TypeMismatchError struct {
	Expected string
	Observed string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %q, got %q", e.Expected, e.Observed)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// UnsupportedValueError reports an attribute value that cannot be encoded.
type UnsupportedValueError struct {
	// Attribute is the local path of the value, e.g. "content_statuses[2]".
	Attribute string
	// Type is the Go type of the value.
	Type string
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported value type %s for attribute %q", e.Type, e.Attribute)
}

func (e *UnsupportedValueError) Is(target error) bool {
	return target == ErrUnsupportedValue
}

// UnresolvedNestedTypeError reports a nested resource whose type identifier
// is unknown to the resolver.
type UnresolvedNestedTypeError struct {
	TypeID string
	// Attribute is the local path of the nested resource; empty for
	// top-level document members.
	Attribute string
}

func (e *UnresolvedNestedTypeError) Error() string {
	if e.Attribute == "" {
		return fmt.Sprintf("unresolved resource type %q", e.TypeID)
	}

	return fmt.Sprintf("unresolved nested resource type %q in attribute %q", e.TypeID, e.Attribute)
}

func (e *UnresolvedNestedTypeError) Is(target error) bool {
	return target == ErrUnresolvedNestedType
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedPayload, fmt.Sprintf(format, args...))
}
