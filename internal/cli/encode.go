package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"

	"resource-mapper/resource"
)

type encodeOptions struct {
	assignIDs bool
	document  bool
	pretty    bool
}

func newEncodeCmd(a *app) *cobra.Command {
	opts := &encodeOptions{}

	cmd := &cobra.Command{
		Use:   "encode [file|-]",
		Short: "Encode resources written with local attribute names into wire JSON",
		Long: `Encode reads YAML or JSON holding one resource or a list of resources, each
as {type, id, attributes} with local attribute names, and prints the wire
form. A list is written as a {data: [...]} document.

An attribute value that is itself a mapping with a type plus an id or
attributes, or a list of them, is encoded as a nested resource.`,
		Example: `  resource-mapper encode availability.yaml
  echo '{type: territories, id: USA, attributes: {currency: USD}}' | resource-mapper encode`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			out, err := a.encode(input, opts)
			if err != nil {
				return err
			}

			if opts.pretty {
				out = pretty.Pretty(out)
			} else {
				out = append(out, '\n')
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.assignIDs, "assign-ids", false, "give resources without an id a random UUID")
	flags.BoolVar(&opts.document, "document", false, "wrap a single resource in a {data: ...} document")
	flags.BoolVar(&opts.pretty, "pretty", false, "indent the output")

	return cmd
}

func (a *app) encode(input []byte, opts *encodeOptions) ([]byte, error) {
	var value any
	if err := yaml.Unmarshal(input, &value); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	var (
		items []any
		many  bool
	)

	switch v := value.(type) {
	case []any:
		items, many = v, true
	case map[string]any:
		items = []any{v}
	default:
		return nil, fmt.Errorf("input must be a resource or a list of resources, got %T", value)
	}

	doc := &resource.Document{Many: many}

	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("resource %d: expected a mapping, got %T", i, item)
		}

		inst, err := a.buildInstance(obj, opts)
		if err != nil {
			return nil, fmt.Errorf("resource %d: %w", i, err)
		}

		doc.Data = append(doc.Data, inst)
	}

	if !many && !opts.document {
		return a.codec.Marshal(doc.Data[0])
	}

	return a.codec.EncodeDocument(doc)
}

// buildInstance turns a {type, id, attributes} mapping with local attribute
// names into an instance.
func (a *app) buildInstance(obj map[string]any, opts *encodeOptions) (*resource.Instance, error) {
	typeID, _ := obj["type"].(string)
	if typeID == "" {
		return nil, fmt.Errorf("%w: resource has no type", resource.ErrMalformedPayload)
	}

	def, err := a.lookupType(typeID)
	if err != nil {
		return nil, err
	}

	inst := resource.New(def)

	switch id := obj["id"].(type) {
	case string:
		inst.SetID(id)
	case nil:
		if opts.assignIDs {
			inst.SetID(uuid.NewString())
		}
	default:
		inst.SetID(fmt.Sprint(id))
	}

	attrs, _ := obj["attributes"].(map[string]any)

	for _, local := range slices.Sorted(maps.Keys(attrs)) {
		v, err := a.attributeValue(attrs[local], opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", local, err)
		}

		if err := inst.Set(local, v); err != nil {
			return nil, err
		}
	}

	return inst, nil
}

func (a *app) attributeValue(v any, opts *encodeOptions) (any, error) {
	switch val := v.(type) {
	case map[string]any:
		if resource.IsResourceObject(val) {
			return a.buildInstance(val, opts)
		}
	case []any:
		if !slices.ContainsFunc(val, isResourceValue) {
			return val, nil
		}

		out := make([]*resource.Instance, len(val))

		for i, item := range val {
			obj, ok := item.(map[string]any)
			if !ok || !resource.IsResourceObject(obj) {
				return nil, fmt.Errorf("element %d: mixed resource list", i)
			}

			nested, err := a.buildInstance(obj, opts)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}

			out[i] = nested
		}

		return out, nil
	}

	return v, nil
}

func isResourceValue(v any) bool {
	obj, ok := v.(map[string]any)

	return ok && resource.IsResourceObject(obj)
}
