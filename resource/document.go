package resource

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Document is a top-level {data, included} payload.
type Document struct {
	// Data holds the primary resources. A single-resource document has at
	// most one element.
	Data []*Instance
	// Included holds side-loaded resources of any registered type.
	Included []*Instance
	// Many is true when data is an array.
	Many bool
}

// One returns the primary resource of a single-resource document.
func (d *Document) One() (*Instance, bool) {
	if d.Many || len(d.Data) != 1 {
		return nil, false
	}

	return d.Data[0], true
}

// DecodeDocument decodes a {data: ...} document. data may be an object, an
// array or null. With a nil expected type every element is resolved through
// the codec's Resolver by its own type, which allows polymorphic
// collections. Included resources of unknown types are skipped.
func (c *Codec) DecodeDocument(data []byte, expected Definition) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, malformed("invalid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, malformed("document must be a JSON object")
	}

	primary := root.Get("data")
	doc := &Document{}

	switch {
	case !primary.Exists():
		return nil, malformed("document has no data member")
	case primary.Type == gjson.Null:
	case primary.IsArray():
		doc.Many = true
		elements := primary.Array()
		doc.Data = make([]*Instance, 0, len(elements))

		for _, elem := range elements {
			inst, err := c.decodeElement(elem, expected)
			if err != nil {
				return nil, err
			}

			doc.Data = append(doc.Data, inst)
		}
	case primary.IsObject():
		inst, err := c.decodeElement(primary, expected)
		if err != nil {
			return nil, err
		}

		doc.Data = []*Instance{inst}
	default:
		return nil, malformed("data must be an object, an array or null")
	}

	for _, elem := range root.Get("included").Array() {
		typeID := elem.Get("type").String()
		if _, ok := c.lookup(typeID); !ok {
			c.logger.Debug("skipping included resource of unknown type", "type", typeID, "id", elem.Get("id").String())
			continue
		}

		inst, err := c.decodeElement(elem, nil)
		if err != nil {
			return nil, err
		}

		doc.Included = append(doc.Included, inst)
	}

	return doc, nil
}

// EncodeDocument writes doc as {data: ..., included: [...]}.
func (c *Codec) EncodeDocument(doc *Document) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch {
	case doc.Many:
		data, err = c.marshalList(doc.Data)
	case len(doc.Data) == 0:
		data = []byte(`null`)
	default:
		data, err = c.Marshal(doc.Data[0])
	}

	if err != nil {
		return nil, err
	}

	out, err := sjson.SetRawBytes([]byte(`{}`), "data", data)
	if err != nil {
		return nil, err
	}

	if len(doc.Included) == 0 {
		return out, nil
	}

	included, err := c.marshalList(doc.Included)
	if err != nil {
		return nil, err
	}

	return sjson.SetRawBytes(out, "included", included)
}

// PeekType returns the envelope type of a single resource or document
// without decoding it.
func PeekType(data []byte) (string, bool) {
	root := gjson.ParseBytes(data)
	if t := root.Get("data.type"); t.Type == gjson.String {
		return t.String(), true
	}

	if t := root.Get("type"); t.Type == gjson.String {
		return t.String(), true
	}

	return "", false
}

func (c *Codec) decodeElement(elem gjson.Result, expected Definition) (*Instance, error) {
	if expected == nil {
		typeID := elem.Get("type").String()

		def, ok := c.lookup(typeID)
		if !ok {
			return nil, &UnresolvedNestedTypeError{TypeID: typeID}
		}

		expected = def
	}

	payload, err := decodeObject([]byte(elem.Raw))
	if err != nil {
		return nil, err
	}

	return c.FromWire(payload, expected)
}

func (c *Codec) marshalList(insts []*Instance) ([]byte, error) {
	elems := make([][]byte, len(insts))

	for i, inst := range insts {
		raw, err := c.Marshal(inst)
		if err != nil {
			return nil, err
		}

		elems[i] = raw
	}

	return joinArray(elems), nil
}

func (c *Codec) lookup(typeID string) (Definition, bool) {
	if c.resolver == nil {
		return nil, false
	}

	return c.resolver.Lookup(typeID)
}
