package mapping

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMappingNotFound is matched by *MappingNotFoundError.
	ErrMappingNotFound = errors.New("mapping not found")
	// ErrInvalidDefinition is matched by *DefinitionError.
	ErrInvalidDefinition = errors.New("invalid definition")
)

// Direction names the key space a lookup was made in.
type Direction int

const (
	// DirectionWire means a wire key was looked up (ToLocal).
	DirectionWire Direction = iota
	// DirectionLocal means a local attribute name was looked up (ToWire).
	DirectionLocal
)

func (d Direction) String() string {
	if d == DirectionLocal {
		return "local"
	}

	return "wire"
}

// MappingNotFoundError reports a key outside a table's declared set.
type MappingNotFoundError struct {
	Owner     string
	Key       string
	Direction Direction
	// Suggestion is the closest declared key, if any is close enough.
	Suggestion string
}

func (e *MappingNotFoundError) Error() string {
	msg := fmt.Sprintf("%s: no %s key %q", e.Owner, e.Direction, e.Key)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}

	return msg
}

func (e *MappingNotFoundError) Is(target error) bool {
	return target == ErrMappingNotFound
}

// DefinitionError reports every problem found while building a table,
// constant set or schema.
type DefinitionError struct {
	Owner    string
	Problems []string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("invalid definition of %s: %s", e.Owner, strings.Join(e.Problems, "; "))
}

func (e *DefinitionError) Is(target error) bool {
	return target == ErrInvalidDefinition
}
