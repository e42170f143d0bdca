package primitive

import (
	"encoding/json"
	"reflect"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum classifies an attribute value by how it is carried on the wire.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as the unsupported value kind

	KindNull
	KindBool
	KindString
	KindInteger
	KindFloat
	KindNumber // json.Number literal, written verbatim
	KindTime
	KindList
	KindObject
	KindResource
	KindResourceList

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Resource is implemented by values that are written as a nested
// {type, id, attributes} envelope.
type Resource interface {
	ResourceTypeID() string
}

var (
	resourceType = reflect.TypeOf((*Resource)(nil)).Elem()
	timeType     = reflect.TypeOf(time.Time{})
	numberType   = reflect.TypeOf(json.Number(""))
)

// IsSupported reports whether k is a known kind.
func (k KindEnum) IsSupported() bool {
	return k > 0 && int(k) < KindTotal
}

// FromValue classifies a runtime value. nil is KindNull; values that
// cannot be written to the wire classify as KindEnum(0).
func FromValue(v any) KindEnum {
	if v == nil {
		return KindNull
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return KindNull
	}

	return FromReflectType(rv.Type())
}

// FromReflectType classifies a type. Named types are classified by their
// underlying kind, so string enums are KindString.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	if rtype.Implements(resourceType) {
		return KindResource
	}

	switch rtype {
	case timeType:
		return KindTime
	case numberType:
		return KindNumber
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInteger
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.Slice, reflect.Array:
		elem := rtype.Elem()
		if elem.Implements(resourceType) {
			return KindResourceList
		}

		if elem.Kind() == reflect.Uint8 {
			return 0
		}

		return KindList
	case reflect.Map:
		if rtype.Key().Kind() != reflect.String {
			return 0
		}

		return KindObject
	}
}
