package connectapi

import (
	"resource-mapper/resource"
)

var registry = NewRegistry()

// Registry returns the shared registry of every type in this package.
func Registry() *resource.Registry {
	return registry
}

// NewCodec returns a codec that resolves nested resources against
// Registry. Later options override earlier ones.
func NewCodec(opts ...resource.Option) *resource.Codec {
	return resource.NewCodec(append([]resource.Option{resource.WithRegistry(registry)}, opts...)...)
}
