package resource

import (
	"fmt"
	"maps"
	"slices"

	"resource-mapper/mapping"
)

// Descriptor identifies a resource type in the wire envelope.
type Descriptor interface {
	TypeID() string
}

// Definition is everything the codec needs to convert one resource type.
type Definition interface {
	Descriptor
	Fields() *mapping.Table
	Constants(local string) (mapping.ConstantSet, bool)
}

// Type is the standard Definition: an immutable type identifier, field
// mapping table and constant sets.
type Type struct {
	id        string
	fields    *mapping.Table
	constants map[string]mapping.ConstantSet
}

var _ Definition = (*Type)(nil)

// TypeOption configures a Type at construction.
type TypeOption func(*Type)

// WithConstants attaches a constant set to the local attribute.
func WithConstants(local string, cs mapping.ConstantSet) TypeOption {
	return func(t *Type) {
		t.constants[local] = cs
	}
}

// NewType declares a resource type. Constant sets must be attached to
// declared attributes.
func NewType(id string, fields *mapping.Table, opts ...TypeOption) (*Type, error) {
	var problems []string

	if id == "" {
		problems = append(problems, "empty type identifier")
	}

	if fields == nil {
		problems = append(problems, "nil field mapping table")
	}

	t := &Type{id: id, fields: fields, constants: map[string]mapping.ConstantSet{}}
	for _, opt := range opts {
		opt(t)
	}

	if fields != nil {
		for _, local := range slices.Sorted(maps.Keys(t.constants)) {
			if !fields.HasLocal(local) {
				problems = append(problems, fmt.Sprintf("constant set %s attached to undeclared attribute %q",
					t.constants[local].Name(), local))
			}
		}
	}

	if len(problems) > 0 {
		return nil, &mapping.DefinitionError{Owner: id, Problems: problems}
	}

	return t, nil
}

// MustType is like NewType but panics on a definition error.
func MustType(id string, fields *mapping.Table, opts ...TypeOption) *Type {
	t, err := NewType(id, fields, opts...)
	if err != nil {
		panic(err)
	}

	return t
}

func (t *Type) TypeID() string {
	return t.id
}

func (t *Type) Fields() *mapping.Table {
	return t.fields
}

func (t *Type) Constants(local string) (mapping.ConstantSet, bool) {
	cs, ok := t.constants[local]
	return cs, ok
}

// New returns an instance of this type with every attribute null.
func (t *Type) New() *Instance {
	return New(t)
}

func (t *Type) String() string {
	return t.id
}
