package cli

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/theory/jsonpath"
	"github.com/tidwall/gjson"

	"resource-mapper/resource"
)

type decodeOptions struct {
	typeID   string
	selector string
	output   outputFlag
}

func newDecodeCmd(a *app) *cobra.Command {
	opts := &decodeOptions{output: outputYAML}

	cmd := &cobra.Command{
		Use:   "decode [file|-]",
		Short: "Decode a JSON:API resource or document into local attributes",
		Long: `Decode reads a single {type, id, attributes} envelope or a {data, included}
document and prints every resource with its local attribute names.

Without --type each resource is resolved by its own type, so collections may
mix types.`,
		Example: `  resource-mapper decode --type territoryAvailabilities response.json
  curl -s $URL | resource-mapper decode --select '$.data[0]' -o tree`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(); err != nil {
				return err
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			doc, err := a.decode(input, opts)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), a.codec, doc, string(opts.output))
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.typeID, "type", "t", "", "expected resource type (default: resolve each resource by its type)")
	flags.StringVar(&opts.selector, "select", "", "JSONPath expression selecting the envelope or document to decode")
	flags.VarP(&opts.output, "output", "o", fmt.Sprintf("output format: %v", outputFormats))

	return cmd
}

func (a *app) decode(input []byte, opts *decodeOptions) (*resource.Document, error) {
	if opts.selector != "" {
		selected, err := selectJSON(input, opts.selector)
		if err != nil {
			return nil, err
		}

		input = selected
	}

	var expected resource.Definition

	if opts.typeID != "" {
		def, err := a.lookupType(opts.typeID)
		if err != nil {
			return nil, err
		}

		expected = def
	}

	if gjson.GetBytes(input, "data").Exists() {
		return a.codec.DecodeDocument(input, expected)
	}

	if expected == nil {
		typeID, ok := resource.PeekType(input)
		if !ok {
			return nil, fmt.Errorf("%w: resource has no type", resource.ErrMalformedPayload)
		}

		def, err := a.lookupType(typeID)
		if err != nil {
			return nil, err
		}

		expected = def
	}

	inst, err := a.codec.Unmarshal(input, expected)
	if err != nil {
		return nil, err
	}

	return &resource.Document{Data: []*resource.Instance{inst}}, nil
}

// selectJSON applies a JSONPath query and returns the first node as JSON.
func selectJSON(input []byte, query string) ([]byte, error) {
	path, err := jsonpath.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("invalid --select expression: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(input))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("%w: %v", resource.ErrMalformedPayload, err)
	}

	nodes := path.Select(value)
	if len(nodes) == 0 {
		return nil, fmt.Errorf("--select %s matched nothing", query)
	}

	return json.Marshal(nodes[0])
}
