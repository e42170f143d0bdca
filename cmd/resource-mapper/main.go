// Package main provides the CLI entrypoint for resource-mapper.
//
// resource-mapper is a tool around the generic resource model that:
//   - Decodes JSON:API documents into local attribute form
//   - Encodes local attributes back into wire envelopes
//   - Validates YAML schema files
//   - Generates Go declarations for the types a schema describes
package main

import (
	"resource-mapper/internal/cli"
)

func main() {
	cli.Execute()
}
