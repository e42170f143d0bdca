package mapping

import (
	"fmt"

	"resource-mapper/internal/diagnostic"
	"resource-mapper/internal/match"
)

// Pair maps one wire field name to one local attribute name.
type Pair struct {
	Wire  string `yaml:"wire"`
	Local string `yaml:"local"`
}

// P is shorthand for Pair{Wire: wire, Local: local}.
func P(wire, local string) Pair {
	return Pair{Wire: wire, Local: local}
}

// Derived pairs a wire key with its snake_case local name.
func Derived(wire string) Pair {
	return Pair{Wire: wire, Local: match.SnakeCase(wire)}
}

// Table is an immutable, ordered, bijective field mapping.
type Table struct {
	owner   string
	pairs   []Pair
	toLocal map[string]string
	toWire  map[string]string
}

// NewTable builds a table for the resource type named owner. It fails with a
// *DefinitionError when a key is empty or declared twice on either side.
func NewTable(owner string, pairs ...Pair) (*Table, error) {
	diags := &diagnostic.Diagnostics{}
	checkPairs(diags, owner, pairs)

	if diags.HasErrors() {
		return nil, definitionError(owner, diags)
	}

	t := &Table{
		owner:   owner,
		pairs:   append([]Pair(nil), pairs...),
		toLocal: make(map[string]string, len(pairs)),
		toWire:  make(map[string]string, len(pairs)),
	}

	for _, p := range pairs {
		t.toLocal[p.Wire] = p.Local
		t.toWire[p.Local] = p.Wire
	}

	return t, nil
}

// MustTable is like NewTable but panics on a definition error.
// It is meant for package-level declarations.
func MustTable(owner string, pairs ...Pair) *Table {
	t, err := NewTable(owner, pairs...)
	if err != nil {
		panic(err)
	}

	return t
}

// Owner returns the resource type name given at construction.
func (t *Table) Owner() string {
	return t.owner
}

// Len returns the number of declared pairs.
func (t *Table) Len() int {
	return len(t.pairs)
}

// ToLocal returns the local attribute for a wire key.
func (t *Table) ToLocal(wire string) (string, error) {
	if local, ok := t.toLocal[wire]; ok {
		return local, nil
	}

	return "", t.notFound(wire, DirectionWire)
}

// ToWire returns the wire key for a local attribute.
func (t *Table) ToWire(local string) (string, error) {
	if wire, ok := t.toWire[local]; ok {
		return wire, nil
	}

	return "", t.notFound(local, DirectionLocal)
}

// HasWire reports whether wire is a declared wire key.
func (t *Table) HasWire(wire string) bool {
	_, ok := t.toLocal[wire]
	return ok
}

// HasLocal reports whether local is a declared local attribute.
func (t *Table) HasLocal(local string) bool {
	_, ok := t.toWire[local]
	return ok
}

// Pairs returns a copy of the pairs in declaration order.
func (t *Table) Pairs() []Pair {
	return append([]Pair(nil), t.pairs...)
}

// Each calls fn for every pair in declaration order until fn returns false.
func (t *Table) Each(fn func(p Pair) bool) {
	for _, p := range t.pairs {
		if !fn(p) {
			return
		}
	}
}

// WireKeys returns the wire keys in declaration order.
func (t *Table) WireKeys() []string {
	keys := make([]string, len(t.pairs))
	for i, p := range t.pairs {
		keys[i] = p.Wire
	}

	return keys
}

// LocalKeys returns the local attribute names in declaration order.
func (t *Table) LocalKeys() []string {
	keys := make([]string, len(t.pairs))
	for i, p := range t.pairs {
		keys[i] = p.Local
	}

	return keys
}

func (t *Table) notFound(key string, dir Direction) error {
	candidates := t.WireKeys()
	if dir == DirectionLocal {
		candidates = t.LocalKeys()
	}

	err := &MappingNotFoundError{Owner: t.owner, Key: key, Direction: dir}
	if s, ok := match.Closest(key, candidates); ok {
		err.Suggestion = s
	}

	return err
}

// checkPairs records empty and duplicate keys on both sides.
func checkPairs(diags *diagnostic.Diagnostics, owner string, pairs []Pair) {
	seenWire := make(map[string]struct{}, len(pairs))
	seenLocal := make(map[string]struct{}, len(pairs))

	for i, p := range pairs {
		if p.Wire == "" {
			diags.AddError("empty_wire_key", fmt.Sprintf("pair %d has an empty wire key", i), owner, p.Local)
		} else if _, dup := seenWire[p.Wire]; dup {
			diags.AddError("duplicate_wire_key", fmt.Sprintf("wire key %q declared twice", p.Wire), owner, p.Wire)
		}

		if p.Local == "" {
			diags.AddError("empty_local_key", fmt.Sprintf("pair %d has an empty local key", i), owner, p.Wire)
		} else if _, dup := seenLocal[p.Local]; dup {
			diags.AddError("duplicate_local_key", fmt.Sprintf("local key %q declared twice", p.Local), owner, p.Local)
		}

		seenWire[p.Wire] = struct{}{}
		seenLocal[p.Local] = struct{}{}
	}
}

func definitionError(owner string, diags *diagnostic.Diagnostics) *DefinitionError {
	problems := make([]string, 0, len(diags.Errors))
	for _, d := range diags.Errors {
		problems = append(problems, d.String())
	}

	return &DefinitionError{Owner: owner, Problems: problems}
}
