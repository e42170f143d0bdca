package resource

import (
	"fmt"

	"resource-mapper/mapping"
)

// TypesFromSchema builds one Type per resource declared in sf, in file
// order. The schema is validated first; the returned error carries every
// problem found.
func TypesFromSchema(sf *mapping.SchemaFile) ([]*Type, error) {
	if diags := mapping.Validate(sf); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", mapping.ErrInvalidDefinition, diags.Error())
	}

	types := make([]*Type, 0, len(sf.Resources))

	for i := range sf.Resources {
		def := &sf.Resources[i]

		fields, err := def.Table()
		if err != nil {
			return nil, err
		}

		sets, err := def.ConstantSets()
		if err != nil {
			return nil, err
		}

		opts := make([]TypeOption, 0, len(sets))
		for local, cs := range sets {
			opts = append(opts, WithConstants(local, cs))
		}

		t, err := NewType(def.Type, fields, opts...)
		if err != nil {
			return nil, err
		}

		types = append(types, t)
	}

	return types, nil
}

// RegistryFromSchema loads every type declared in sf into a new Registry.
func RegistryFromSchema(sf *mapping.SchemaFile) (*Registry, error) {
	types, err := TypesFromSchema(sf)
	if err != nil {
		return nil, err
	}

	reg := &Registry{defs: make(map[string]Definition, len(types))}
	for _, t := range types {
		if err := reg.Register(t); err != nil {
			return nil, err
		}
	}

	return reg, nil
}
