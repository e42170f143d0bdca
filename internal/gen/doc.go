// Package gen generates Go declarations for resource types described by a
// schema file.
//
// Generation uses text/template + go/format. For each resource it emits:
//   - a named string type, constants and a mapping.ConstantSet per constant set
//   - a resource.Type built with mapping.MustTable and resource.MustType
//
// A registry file adds NewRegistry, holding every generated type.
// Output is deterministic: files and declarations follow schema order.
package gen
