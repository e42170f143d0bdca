package resource

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	"resource-mapper/primitive"
)

// resourceValue is satisfied by *Instance and by types embedding it.
type resourceValue interface {
	primitive.Resource
	resourceInstance() *Instance
}

// ToWire builds the envelope {type, id?, attributes} for inst using def's
// table. Null attributes are omitted.
func (c *Codec) ToWire(inst *Instance, def Definition) (map[string]any, error) {
	if inst.ResourceTypeID() != def.TypeID() {
		return nil, &TypeMismatchError{Expected: def.TypeID(), Observed: inst.ResourceTypeID()}
	}

	attrs := make(map[string]any, len(inst.attrs))

	for _, p := range def.Fields().Pairs() {
		v := inst.attrs[p.Local]
		if isNull(v) {
			continue
		}

		encoded, err := c.encodeValue(v, p.Local)
		if err != nil {
			return nil, err
		}

		attrs[p.Wire] = encoded
	}

	out := map[string]any{
		"type":       def.TypeID(),
		"attributes": attrs,
	}

	if inst.id != "" {
		out["id"] = inst.id
	}

	return out, nil
}

func (c *Codec) encodeValue(v any, path string) (any, error) {
	kind := primitive.FromValue(v)
	if !kind.IsSupported() {
		return nil, &UnsupportedValueError{Attribute: path, Type: fmt.Sprintf("%T", v)}
	}

	switch kind {
	case primitive.KindNull:
		return nil, nil
	case primitive.KindBool, primitive.KindString, primitive.KindInteger, primitive.KindNumber:
		return v, nil
	case primitive.KindFloat:
		f := reflect.ValueOf(v).Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &UnsupportedValueError{Attribute: path, Type: fmt.Sprintf("%T(%v)", v, f)}
		}

		return v, nil
	case primitive.KindTime:
		return formatTimestamp(v.(time.Time)), nil
	case primitive.KindResource:
		rv, ok := v.(resourceValue)
		if !ok {
			return nil, &UnsupportedValueError{Attribute: path, Type: fmt.Sprintf("%T", v)}
		}

		nested := rv.resourceInstance()
		if nested == nil {
			return nil, nil
		}

		return c.ToWire(nested, nested.def)
	case primitive.KindList, primitive.KindResourceList:
		list := reflect.ValueOf(v)
		out := make([]any, list.Len())

		for i := range list.Len() {
			encoded, err := c.encodeValue(list.Index(i).Interface(), path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}

			out[i] = encoded
		}

		return out, nil
	case primitive.KindObject:
		obj := reflect.ValueOf(v)
		out := make(map[string]any, obj.Len())

		iter := obj.MapRange()
		for iter.Next() {
			key := iter.Key().String()

			encoded, err := c.encodeValue(iter.Value().Interface(), path+"."+key)
			if err != nil {
				return nil, err
			}

			out[key] = encoded
		}

		return out, nil
	default:
		return nil, &UnsupportedValueError{Attribute: path, Type: fmt.Sprintf("%T", v)}
	}
}

// isNull reports whether v is left out of outgoing attributes. A resource
// wrapper around a nil instance counts as null.
func isNull(v any) bool {
	if primitive.FromValue(v) == primitive.KindNull {
		return true
	}

	rv, ok := v.(resourceValue)

	return ok && rv.resourceInstance() == nil
}

func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
