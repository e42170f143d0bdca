package resource

import (
	"bytes"
	"reflect"
	"slices"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/tidwall/sjson"
)

// Marshal encodes inst as envelope JSON. Attributes are written in table
// order; nested plain objects use sorted keys.
func (c *Codec) Marshal(inst *Instance) ([]byte, error) {
	wire, err := c.ToWire(inst, inst.def)
	if err != nil {
		return nil, err
	}

	return marshalEnvelope(wire, inst)
}

// Unmarshal decodes one envelope of the expected type.
func (c *Codec) Unmarshal(data []byte, expected Definition) (*Instance, error) {
	payload, err := decodeObject(data)
	if err != nil {
		return nil, err
	}

	return c.FromWire(payload, expected)
}

// marshalEnvelope writes a ToWire result, using inst (when known) to order
// attributes and nested envelopes.
func marshalEnvelope(wire map[string]any, inst *Instance) ([]byte, error) {
	out := []byte(`{}`)

	out, err := sjson.SetBytes(out, "type", wire["type"])
	if err != nil {
		return nil, err
	}

	if id, ok := wire["id"]; ok {
		if out, err = sjson.SetBytes(out, "id", id); err != nil {
			return nil, err
		}
	}

	attrs, _ := wire["attributes"].(map[string]any)
	attrsJSON := []byte(`{}`)

	for _, key := range attributeOrder(attrs, inst) {
		var nested any
		if inst != nil {
			local, _ := inst.def.Fields().ToLocal(key)
			nested = inst.attrs[local]
		}

		raw, err := marshalValue(attrs[key], nested)
		if err != nil {
			return nil, err
		}

		if attrsJSON, err = sjson.SetRawBytes(attrsJSON, escapeKey(key), raw); err != nil {
			return nil, err
		}
	}

	return sjson.SetRawBytes(out, "attributes", attrsJSON)
}

// marshalValue writes an encoded value. source is the instance-side value it
// came from, used to keep nested envelopes in table order.
func marshalValue(v any, source any) ([]byte, error) {
	switch val := v.(type) {
	case map[string]any:
		if inst := asInstance(source); inst != nil {
			return marshalEnvelope(val, inst)
		}

		members := make([][]byte, 0, len(val))

		for _, key := range sortedKeys(val) {
			raw, err := marshalValue(val[key], nil)
			if err != nil {
				return nil, err
			}

			name, err := json.Marshal(key)
			if err != nil {
				return nil, err
			}

			members = append(members, append(append(name, ':'), raw...))
		}

		return joinObject(members), nil
	case []any:
		elems := make([][]byte, len(val))
		sources := sourceElements(source, len(val))

		for i, item := range val {
			raw, err := marshalValue(item, sources[i])
			if err != nil {
				return nil, err
			}

			elems[i] = raw
		}

		return joinArray(elems), nil
	default:
		return json.Marshal(val)
	}
}

func asInstance(v any) *Instance {
	if rv, ok := v.(resourceValue); ok {
		return rv.resourceInstance()
	}

	return nil
}

func sourceElements(source any, n int) []any {
	out := make([]any, n)

	list := reflect.ValueOf(source)
	if list.Kind() != reflect.Slice && list.Kind() != reflect.Array {
		return out
	}

	for i := range min(n, list.Len()) {
		out[i] = list.Index(i).Interface()
	}

	return out
}

func attributeOrder(attrs map[string]any, inst *Instance) []string {
	if inst == nil {
		return sortedKeys(attrs)
	}

	keys := make([]string, 0, len(attrs))

	for _, wire := range inst.def.Fields().WireKeys() {
		if _, ok := attrs[wire]; ok {
			keys = append(keys, wire)
		}
	}

	return keys
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

func joinArray(elems [][]byte) []byte {
	var buf bytes.Buffer

	buf.WriteByte('[')
	buf.Write(bytes.Join(elems, []byte{','}))
	buf.WriteByte(']')

	return buf.Bytes()
}

// joinObject wraps encoded "key":value members. Server objects may use keys
// such as "" that have no sjson path form.
func joinObject(members [][]byte) []byte {
	var buf bytes.Buffer

	buf.WriteByte('{')
	buf.Write(bytes.Join(members, []byte{','}))
	buf.WriteByte('}')

	return buf.Bytes()
}

var pathEscaper = strings.NewReplacer(`\`, `\\`, `.`, `\.`, `*`, `\*`, `?`, `\?`, `|`, `\|`, `#`, `\#`, `@`, `\@`, `:`, `\:`)

// escapeKey turns a table wire key, never empty, into a literal sjson path
// component.
// All-digit keys get the ':' prefix so they are not taken as array indexes.
func escapeKey(key string) string {
	if key != "" && strings.Trim(key, "0123456789") == "" {
		return ":" + key
	}

	return pathEscaper.Replace(key)
}

func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, malformed("%v", err)
	}

	if payload == nil {
		return nil, malformed("expected a JSON object")
	}

	return payload, nil
}
