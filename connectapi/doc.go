// Package connectapi declares the App Store Connect resource types used by
// the mapper: apps, territories, territory availabilities and app
// availabilities.
//
// The *_gen.go files are generated from schema.yaml. Typed wrappers such as
// TerritoryAvailability sit on top of the generic resource.Instance.
package connectapi

//go:generate go run ../cmd/resource-mapper gen --schema schema.yaml --out .
