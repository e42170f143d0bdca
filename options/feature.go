package options

import (
	"fmt"
	"slices"
	"strings"
)

type FeatureEnum int

const (
	FeatureIntegers        FeatureEnum = 1 << iota // integral JSON numbers decode as int64 instead of float64
	FeatureTimestamps                              // RFC 3339 date-time strings decode as time.Time
	FeatureNestedResources                         // objects with a string "type" and an "id" or "attributes" member decode as nested resources
	FeatureConstantCheck                           // values outside an attribute's constant set are logged at debug level

	FeatureAll     = (1 << iota) - 1 // all features combined
	FeatureNone    = 0               // no features selected
	FeatureDefault = FeatureIntegers | FeatureNestedResources | FeatureConstantCheck
)

// Has reports whether every feature in other is enabled.
func (f FeatureEnum) Has(other FeatureEnum) bool {
	return f&other == other
}

// With returns f with other enabled.
func (f FeatureEnum) With(other FeatureEnum) FeatureEnum {
	return f | other
}

// Without returns f with other disabled.
func (f FeatureEnum) Without(other FeatureEnum) FeatureEnum {
	return f &^ other
}

type namedFeature struct {
	name    string
	feature FeatureEnum
}

var featureNames = []namedFeature{
	{"integers", FeatureIntegers},
	{"timestamps", FeatureTimestamps},
	{"nested", FeatureNestedResources},
	{"constants", FeatureConstantCheck},
}

// FeatureNames lists the names accepted by ParseFeatures.
func FeatureNames() []string {
	names := make([]string, len(featureNames))
	for i, fn := range featureNames {
		names[i] = fn.name
	}

	return names
}

// ParseFeatures combines named features. "all", "none" and "default" name
// the preset sets; a "-" prefix removes a feature, so "default,-integers"
// is everything FeatureDefault enables except integer decoding.
func ParseFeatures(names []string) (FeatureEnum, error) {
	var f FeatureEnum

	for _, name := range names {
		name = strings.TrimSpace(name)
		remove := strings.HasPrefix(name, "-")
		name = strings.TrimPrefix(name, "-")

		var named FeatureEnum

		switch name {
		case "all":
			named = FeatureAll
		case "none":
			named = FeatureNone
		case "default":
			named = FeatureDefault
		default:
			i := slices.IndexFunc(featureNames, func(fn namedFeature) bool { return fn.name == name })
			if i < 0 {
				return 0, fmt.Errorf("unknown feature %q (known: %s)", name, strings.Join(FeatureNames(), ", "))
			}

			named = featureNames[i].feature
		}

		if remove {
			f = f.Without(named)
		} else {
			f = f.With(named)
		}
	}

	return f, nil
}

func (f FeatureEnum) String() string {
	if f == FeatureNone {
		return "none"
	}

	var names []string

	for _, fn := range featureNames {
		if f.Has(fn.feature) {
			names = append(names, fn.name)
		}
	}

	return strings.Join(names, ",")
}
