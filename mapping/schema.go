package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"resource-mapper/internal/match"
)

// SchemaFile represents the root of a YAML resource schema file.
type SchemaFile struct {
	// Version of the schema format (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Package is the Go package name used for generated declarations.
	Package string `yaml:"package,omitempty"`

	// Resources lists the declared resource types.
	Resources []ResourceDef `yaml:"resources"`
}

// ResourceDef declares one resource type.
type ResourceDef struct {
	// Type is the wire type identifier, e.g. "territoryAvailabilities".
	Type string `yaml:"type"`

	// Name is the Go name of the type. Defaults to GoIdent(Type).
	Name string `yaml:"name,omitempty"`

	// Attributes is the ordered field mapping.
	Attributes AttributeList `yaml:"attributes"`

	// Constants documents the known values of some attributes.
	Constants []ConstantDef `yaml:"constants,omitempty"`
}

// ConstantDef declares a constant set attached to one local attribute.
type ConstantDef struct {
	Name      string   `yaml:"name"`
	Attribute string   `yaml:"attribute"`
	Values    []string `yaml:"values"`
}

// Table builds the field mapping table of the resource.
func (r *ResourceDef) Table() (*Table, error) {
	return NewTable(r.Type, r.Attributes...)
}

// ConstantSets builds the constant sets keyed by local attribute.
func (r *ResourceDef) ConstantSets() (map[string]ConstantSet, error) {
	sets := make(map[string]ConstantSet, len(r.Constants))

	for _, c := range r.Constants {
		cs, err := NewConstantSet(c.Name, c.Values...)
		if err != nil {
			return nil, err
		}

		sets[c.Attribute] = cs
	}

	return sets, nil
}

// AttributeList is an ordered field mapping that can be unmarshaled from:
//   - A mapping: {contentStatuses: content_statuses, releaseDate: release_date}
//   - A list of wire keys: [contentStatuses, releaseDate]
//
// The list form derives local names with match.SnakeCase.
type AttributeList []Pair

// UnmarshalYAML implements yaml.Unmarshaler. Mapping order is preserved.
func (a *AttributeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		pairs := make([]Pair, 0, len(value.Content)/2)

		for i := 0; i+1 < len(value.Content); i += 2 {
			k, v := value.Content[i], value.Content[i+1]
			if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: attribute entries must be scalar wire: local pairs", k.Line)
			}

			local := v.Value
			if local == "" || v.Tag == "!!null" {
				local = match.SnakeCase(k.Value)
			}

			pairs = append(pairs, Pair{Wire: k.Value, Local: local})
		}

		*a = pairs

		return nil
	case yaml.SequenceNode:
		pairs := make([]Pair, 0, len(value.Content))

		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: attribute list entries must be wire keys", item.Line)
			}

			pairs = append(pairs, Derived(item.Value))
		}

		*a = pairs

		return nil
	default:
		return fmt.Errorf("line %d: attributes must be a mapping or a list", value.Line)
	}
}

// MarshalYAML implements yaml.Marshaler using the mapping form.
func (a AttributeList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, p := range a {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Wire},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Local},
		)
	}

	return node, nil
}
