package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/davecgh/go-spew/spew"
	"github.com/ddddddO/gtree"
	json "github.com/goccy/go-json"
	"github.com/spf13/pflag"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"

	"resource-mapper/resource"
)

const (
	outputYAML = "yaml"
	outputJSON = "json"
	outputDump = "dump"
	outputTree = "tree"
)

var outputFormats = []string{outputYAML, outputJSON, outputDump, outputTree}

// outputFlag is the -o value; Set rejects formats render does not know.
type outputFlag string

var _ pflag.Value = (*outputFlag)(nil)

func (o *outputFlag) String() string { return string(*o) }

func (o *outputFlag) Set(s string) error {
	if !slices.Contains(outputFormats, s) {
		return fmt.Errorf("unknown output format %q (known: %v)", s, outputFormats)
	}

	*o = outputFlag(s)

	return nil
}

func (o *outputFlag) Type() string { return "format" }

// render prints doc in local form (yaml, dump, tree) or wire form (json).
func render(w io.Writer, codec *resource.Codec, doc *resource.Document, format string) error {
	switch format {
	case outputYAML:
		return renderYAML(w, doc)
	case outputJSON:
		data, err := codec.EncodeDocument(doc)
		if err != nil {
			return err
		}

		_, err = w.Write(pretty.Pretty(data))

		return err
	case outputDump:
		return renderDump(w, doc)
	case outputTree:
		return renderTree(w, doc)
	default:
		return fmt.Errorf("unknown output format %q (known: %v)", format, outputFormats)
	}
}

func renderYAML(w io.Writer, doc *resource.Document) error {
	data, err := documentNode(doc)
	if err != nil {
		return err
	}

	out := data

	if len(doc.Included) > 0 {
		included, err := instanceSeq(doc.Included)
		if err != nil {
			return err
		}

		out = &yaml.Node{Kind: yaml.MappingNode}
		out.Content = append(out.Content, scalar("data"), data, scalar("included"), included)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(out); err != nil {
		return err
	}

	return enc.Close()
}

func documentNode(doc *resource.Document) (*yaml.Node, error) {
	switch {
	case doc.Many:
		return instanceSeq(doc.Data)
	case len(doc.Data) == 0:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	default:
		return instanceNode(doc.Data[0])
	}
}

func instanceSeq(insts []*resource.Instance) (*yaml.Node, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}

	for _, inst := range insts {
		node, err := instanceNode(inst)
		if err != nil {
			return nil, err
		}

		seq.Content = append(seq.Content, node)
	}

	return seq, nil
}

// instanceNode renders an instance with attributes in table order.
func instanceNode(inst *resource.Instance) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	node.Content = append(node.Content, scalar("type"), scalar(inst.ResourceTypeID()))

	if inst.ID() != "" {
		node.Content = append(node.Content, scalar("id"), scalar(inst.ID()))
	}

	attrs := &yaml.Node{Kind: yaml.MappingNode}

	var err error

	inst.Each(func(local string, v any) bool {
		var value *yaml.Node
		if value, err = valueNode(v); err != nil {
			return false
		}

		attrs.Content = append(attrs.Content, scalar(local), value)

		return true
	})

	if err != nil {
		return nil, err
	}

	node.Content = append(node.Content, scalar("attributes"), attrs)

	return node, nil
}

func valueNode(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case *resource.Instance:
		return instanceNode(val)
	case []*resource.Instance:
		return instanceSeq(val)
	case []any:
		seq := &yaml.Node{Kind: yaml.SequenceNode}

		for _, item := range val {
			node, err := valueNode(item)
			if err != nil {
				return nil, err
			}

			seq.Content = append(seq.Content, node)
		}

		return seq, nil
	}

	node := &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, err
	}

	return node, nil
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func renderDump(w io.Writer, doc *resource.Document) error {
	for _, inst := range slices.Concat(doc.Data, doc.Included) {
		if _, err := fmt.Fprintln(w, label(inst)); err != nil {
			return err
		}

		dumpConfig.Fdump(w, plain(inst))
	}

	return nil
}

// plain converts nested instances to maps so dumps show attributes only.
func plain(v any) any {
	switch val := v.(type) {
	case *resource.Instance:
		attrs := val.Attributes()
		for k, item := range attrs {
			attrs[k] = plain(item)
		}

		return map[string]any{"type": val.ResourceTypeID(), "id": val.ID(), "attributes": attrs}
	case []*resource.Instance:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = plain(item)
		}

		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = plain(item)
		}

		return out
	default:
		return v
	}
}

func renderTree(w io.Writer, doc *resource.Document) error {
	for _, inst := range slices.Concat(doc.Data, doc.Included) {
		root := gtree.NewRoot(label(inst))
		addTreeAttributes(root, inst)

		if err := gtree.OutputFromRoot(w, root); err != nil {
			return err
		}
	}

	return nil
}

func addTreeAttributes(node *gtree.Node, inst *resource.Instance) {
	inst.Each(func(local string, v any) bool {
		switch val := v.(type) {
		case *resource.Instance:
			addTreeAttributes(node.Add(local).Add(label(val)), val)
		case []*resource.Instance:
			child := node.Add(local)
			for i, item := range val {
				addTreeAttributes(child.Add(fmt.Sprintf("[%d] %s", i, label(item))), item)
			}
		default:
			node.Add(local + ": " + formatScalar(v))
		}

		return true
	})
}

func formatScalar(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}

	return string(data)
}

func label(inst *resource.Instance) string {
	if inst.ID() == "" {
		return inst.ResourceTypeID()
	}

	return inst.ResourceTypeID() + " " + inst.ID()
}
