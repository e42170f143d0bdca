package resource

import (
	"maps"
)

// Instance is one resource received from or sent to the remote API.
// Its attribute set is exactly the local key set of its type's table.
//
// An Instance is not safe for concurrent mutation.
type Instance struct {
	def   Definition
	id    string
	attrs map[string]any
}

// New returns an instance of def with every declared attribute null.
func New(def Definition) *Instance {
	fields := def.Fields()

	inst := &Instance{
		def:   def,
		attrs: make(map[string]any, fields.Len()),
	}

	for _, local := range fields.LocalKeys() {
		inst.attrs[local] = nil
	}

	return inst
}

// ResourceTypeID implements primitive.Resource.
func (i *Instance) ResourceTypeID() string {
	return i.def.TypeID()
}

func (i *Instance) resourceInstance() *Instance {
	return i
}

// Definition returns the type the instance was built for.
func (i *Instance) Definition() Definition {
	return i.def
}

func (i *Instance) ID() string {
	return i.id
}

func (i *Instance) SetID(id string) {
	i.id = id
}

// Get returns the value of a declared attribute; nil means null.
func (i *Instance) Get(local string) (any, error) {
	v, ok := i.attrs[local]
	if !ok {
		return nil, i.undeclared(local)
	}

	return v, nil
}

// Set replaces the value of a declared attribute. Set it to nil to leave it
// out of outgoing payloads.
func (i *Instance) Set(local string, v any) error {
	if _, ok := i.attrs[local]; !ok {
		return i.undeclared(local)
	}

	i.attrs[local] = v

	return nil
}

// IsNull reports whether the attribute is null or undeclared.
func (i *Instance) IsNull(local string) bool {
	return i.attrs[local] == nil
}

// Attributes returns a shallow copy of the attributes keyed by local name.
func (i *Instance) Attributes() map[string]any {
	return maps.Clone(i.attrs)
}

// Each visits the attributes in table order until fn returns false.
func (i *Instance) Each(fn func(local string, v any) bool) {
	for _, local := range i.def.Fields().LocalKeys() {
		if !fn(local, i.attrs[local]) {
			return
		}
	}
}

func (i *Instance) undeclared(local string) error {
	_, err := i.def.Fields().ToWire(local)
	return err
}

// Value returns the attribute as a T. ok is false when the attribute is
// null, undeclared or holds another type.
func Value[T any](i *Instance, local string) (v T, ok bool) {
	raw, err := i.Get(local)
	if err != nil || raw == nil {
		return v, false
	}

	v, ok = raw.(T)

	return v, ok
}

// Strings returns a list attribute as strings, skipping non-string elements.
func Strings(i *Instance, local string) ([]string, bool) {
	raw, err := i.Get(local)
	if err != nil || raw == nil {
		return nil, false
	}

	switch list := raw.(type) {
	case []string:
		return append([]string(nil), list...), true
	case []any:
		out := make([]string, 0, len(list))

		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}

		return out, true
	default:
		return nil, false
	}
}
