package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"resource-mapper/internal/match"
	"resource-mapper/resource"
)

// readInput reads the file named by the first argument, or stdin when there
// is none or it is "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return data, nil
}

// lookupType resolves a type identifier, suggesting the closest registered
// one when it is unknown.
func (a *app) lookupType(typeID string) (resource.Definition, error) {
	def, ok := a.registry.Lookup(typeID)
	if ok {
		return def, nil
	}

	err := &resource.UnresolvedNestedTypeError{TypeID: typeID}
	if s, ok := match.Closest(typeID, a.registry.TypeIDs()); ok {
		return nil, fmt.Errorf("%w (did you mean %q?)", err, s)
	}

	return nil, err
}
