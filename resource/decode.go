package resource

import (
	"context"
	"log/slog"
	"math"
	"math/big"
	"slices"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"resource-mapper/options"
)

// FromWire builds an instance of expected from a decoded envelope
// {type, id?, attributes}.
func (c *Codec) FromWire(payload map[string]any, expected Definition) (*Instance, error) {
	observed, _ := payload["type"].(string)
	if observed != expected.TypeID() {
		return nil, &TypeMismatchError{Expected: expected.TypeID(), Observed: observed}
	}

	inst := New(expected)
	if id, ok := payload["id"].(string); ok {
		inst.id = id
	}

	attrs, _ := payload["attributes"].(map[string]any)
	fields := expected.Fields()

	for _, p := range fields.Pairs() {
		raw, ok := attrs[p.Wire]
		if !ok {
			continue
		}

		v, err := c.decodeValue(raw, p.Local)
		if err != nil {
			return nil, err
		}

		inst.attrs[p.Local] = v
	}

	if c.logger.Enabled(context.Background(), slog.LevelDebug) {
		c.reportDrift(inst, attrs)
	}

	return inst, nil
}

func (c *Codec) decodeValue(raw any, path string) (any, error) {
	switch v := raw.(type) {
	case nil, bool:
		return v, nil
	case string:
		if c.features.Has(options.FeatureTimestamps) {
			if t, ok := parseTimestamp(v); ok {
				return t, nil
			}
		}

		return v, nil
	case float64:
		if c.features.Has(options.FeatureIntegers) && v == math.Trunc(v) &&
			v >= math.MinInt64 && v < math.MaxInt64 {
			return int64(v), nil
		}

		return v, nil
	case json.Number:
		if c.features.Has(options.FeatureIntegers) {
			if n, err := v.Int64(); err == nil {
				return n, nil
			}
		}

		if f, err := v.Float64(); err == nil && exactFloat(v, f) {
			return c.decodeValue(f, path)
		}

		return v, nil
	case []any:
		return c.decodeList(v, path)
	case map[string]any:
		if c.features.Has(options.FeatureNestedResources) && IsResourceObject(v) {
			return c.decodeNested(v, v["type"].(string), path)
		}

		out := make(map[string]any, len(v))

		for k, item := range v {
			decoded, err := c.decodeValue(item, path+"."+k)
			if err != nil {
				return nil, err
			}

			out[k] = decoded
		}

		return out, nil
	default:
		// Payloads built in process may already hold typed values.
		return v, nil
	}
}

// IsResourceObject reports whether obj is a nested {type, id?, attributes?}
// envelope: a string type plus an id or an attributes member. Plain values
// such as {"type": "percentage", "value": 3} are not.
func IsResourceObject(obj map[string]any) bool {
	if _, ok := obj["type"].(string); !ok {
		return false
	}

	_, hasID := obj["id"]
	_, hasAttrs := obj["attributes"]

	return hasID || hasAttrs
}

func (c *Codec) decodeList(list []any, path string) (any, error) {
	out := make([]any, len(list))
	nested := make([]*Instance, 0, len(list))

	for i, item := range list {
		decoded, err := c.decodeValue(item, path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}

		out[i] = decoded

		if inst, ok := decoded.(*Instance); ok {
			nested = append(nested, inst)
		}
	}

	if len(list) > 0 && len(nested) == len(list) {
		return nested, nil
	}

	return out, nil
}

func (c *Codec) decodeNested(payload map[string]any, typeID, path string) (*Instance, error) {
	if c.resolver == nil {
		return nil, &UnresolvedNestedTypeError{TypeID: typeID, Attribute: path}
	}

	def, ok := c.resolver.Lookup(typeID)
	if !ok {
		return nil, &UnresolvedNestedTypeError{TypeID: typeID, Attribute: path}
	}

	return c.FromWire(payload, def)
}

// reportDrift logs unmapped wire keys and values outside constant sets.
func (c *Codec) reportDrift(inst *Instance, attrs map[string]any) {
	fields := inst.def.Fields()

	var unknown []string

	for k := range attrs {
		if !fields.HasWire(k) {
			unknown = append(unknown, k)
		}
	}

	if len(unknown) > 0 {
		slices.Sort(unknown)
		c.logger.Debug("ignoring unmapped wire keys",
			"type", inst.def.TypeID(), "id", inst.id, "keys", unknown)
	}

	if !c.features.Has(options.FeatureConstantCheck) {
		return
	}

	for _, local := range fields.LocalKeys() {
		cs, ok := inst.def.Constants(local)
		if !ok {
			continue
		}

		values, _ := Strings(inst, local)
		if s, ok := inst.attrs[local].(string); ok {
			values = []string{s}
		}

		for _, v := range values {
			if !cs.Contains(v) {
				c.logger.Debug("value outside constant set",
					"type", inst.def.TypeID(), "attribute", local, "set", cs.Name(), "value", v)
			}
		}
	}
}

// parseTimestamp accepts RFC 3339 date-times that format back to the same
// text; plain dates such as "2023-01-01", trailing zero fractions and
// "+00:00" offsets stay strings.
func parseTimestamp(s string) (time.Time, bool) {
	if len(s) < len("2006-01-02T15:04:05Z") || s[10] != 'T' {
		return time.Time{}, false
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil || formatTimestamp(t) != s {
		return time.Time{}, false
	}

	return t, true
}

// exactFloat reports whether f is written back as the same value n holds.
// Literals float64 cannot carry stay json.Number.
func exactFloat(n json.Number, f float64) bool {
	lit, ok := new(big.Rat).SetString(n.String())
	if !ok {
		return false
	}

	back, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, 64))

	return ok && lit.Cmp(back) == 0
}
