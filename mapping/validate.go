package mapping

import (
	"fmt"

	"github.com/masterminds/semver"

	"resource-mapper/internal/diagnostic"
)

// SupportedVersions is the range of schema format versions Validate accepts.
const SupportedVersions = "^1"

var supportedVersions = mustConstraint(SupportedVersions)

func mustConstraint(c string) *semver.Constraints {
	constraints, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}

	return constraints
}

// Validate checks a schema file and reports every problem found.
// Tables and constant sets built from a schema that validates cleanly
// cannot fail.
func Validate(sf *SchemaFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if sf == nil {
		res.AddError("schema_is_nil", "schema file is nil", "", "")
		return res
	}

	validateVersion(res, sf.Version)

	if len(sf.Resources) == 0 {
		res.AddWarning("no_resources", "schema declares no resources", "", "")
	}

	seenTypes := map[string]struct{}{}
	seenNames := map[string]struct{}{}

	for i := range sf.Resources {
		r := &sf.Resources[i]

		if r.Type == "" {
			res.AddError("empty_type", fmt.Sprintf("resource %d has an empty type", i), r.Name, "")
			continue
		}

		if _, dup := seenTypes[r.Type]; dup {
			res.AddError("duplicate_type", fmt.Sprintf("type %q declared twice", r.Type), r.Type, "")
		}

		seenTypes[r.Type] = struct{}{}

		if _, dup := seenNames[r.Name]; dup {
			res.AddError("duplicate_name", fmt.Sprintf("name %q declared twice", r.Name), r.Type, "")
		}

		seenNames[r.Name] = struct{}{}

		res.Merge(validateResource(r))
	}

	return res
}

// validateResource checks one resource's attributes and constant sets.
func validateResource(r *ResourceDef) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	if len(r.Attributes) == 0 {
		res.AddInfo("no_attributes", "resource declares no attributes", r.Type, "")
	}

	checkPairs(&res, r.Type, r.Attributes)
	validateConstants(&res, r)

	return res
}

func validateConstants(res *diagnostic.Diagnostics, r *ResourceDef) {
	locals := make(map[string]struct{}, len(r.Attributes))
	for _, p := range r.Attributes {
		locals[p.Local] = struct{}{}
	}

	seenNames := map[string]struct{}{}
	seenAttrs := map[string]struct{}{}

	for _, c := range r.Constants {
		if c.Name == "" {
			res.AddError("empty_constant_name", "constant set has an empty name", r.Type, c.Attribute)
		} else if _, dup := seenNames[c.Name]; dup {
			res.AddError("duplicate_constant_name", fmt.Sprintf("constant set %q declared twice", c.Name), r.Type, c.Attribute)
		}

		seenNames[c.Name] = struct{}{}

		if _, ok := locals[c.Attribute]; !ok {
			res.AddError("unknown_constant_attribute",
				fmt.Sprintf("constant set %q is attached to undeclared attribute %q", c.Name, c.Attribute),
				r.Type, c.Attribute)
		} else if _, dup := seenAttrs[c.Attribute]; dup {
			res.AddError("duplicate_constant_attribute",
				fmt.Sprintf("attribute %q has more than one constant set", c.Attribute), r.Type, c.Attribute)
		}

		seenAttrs[c.Attribute] = struct{}{}

		if len(c.Values) == 0 {
			res.AddWarning("empty_constant_set", fmt.Sprintf("constant set %q has no values", c.Name), r.Type, c.Attribute)
		}

		checkTokens(res, c.Name, c.Values)
	}
}

// validateVersion checks the format version. An empty version is the
// current one.
func validateVersion(res *diagnostic.Diagnostics, version string) {
	if version == "" {
		return
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		res.AddError("invalid_version", fmt.Sprintf("version %q is not a semantic version", version), "", "")
		return
	}

	if !supportedVersions.Check(v) {
		res.AddError("unsupported_version",
			fmt.Sprintf("version %s is outside the supported range %s", version, SupportedVersions), "", "")
	}
}
