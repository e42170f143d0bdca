package mapping

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func territoryTable(t *testing.T) *Table {
	t.Helper()

	table, err := NewTable("territoryAvailabilities",
		P("available", "available"),
		P("contentStatuses", "content_statuses"),
		P("preOrderEnabled", "pre_order_enabled"),
		P("preOrderPublishDate", "pre_order_publish_date"),
		P("releaseDate", "release_date"),
	)
	require.NoError(t, err)

	return table
}

func TestTable_Lookups(t *testing.T) {
	table := territoryTable(t)

	local, err := table.ToLocal("preOrderPublishDate")
	require.NoError(t, err)
	assert.Equal(t, "pre_order_publish_date", local)

	wire, err := table.ToWire("content_statuses")
	require.NoError(t, err)
	assert.Equal(t, "contentStatuses", wire)

	assert.True(t, table.HasWire("releaseDate"))
	assert.False(t, table.HasWire("release_date"))
	assert.True(t, table.HasLocal("release_date"))
	assert.Equal(t, 5, table.Len())
	assert.Equal(t, "territoryAvailabilities", table.Owner())
}

func TestTable_PreservesOrder(t *testing.T) {
	table := territoryTable(t)

	assert.Equal(t,
		[]string{"available", "contentStatuses", "preOrderEnabled", "preOrderPublishDate", "releaseDate"},
		table.WireKeys())
	assert.Equal(t,
		[]string{"available", "content_statuses", "pre_order_enabled", "pre_order_publish_date", "release_date"},
		table.LocalKeys())

	var visited []string
	table.Each(func(p Pair) bool {
		visited = append(visited, p.Wire)
		return len(visited) < 2
	})
	assert.Equal(t, []string{"available", "contentStatuses"}, visited)
}

func TestTable_PairsIsACopy(t *testing.T) {
	table := territoryTable(t)

	pairs := table.Pairs()
	pairs[0].Local = "mutated"

	local, err := table.ToLocal("available")
	require.NoError(t, err)
	assert.Equal(t, "available", local)
}

func TestTable_NotFound(t *testing.T) {
	table := territoryTable(t)

	_, err := table.ToLocal("relaseDate")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMappingNotFound)

	var nf *MappingNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, DirectionWire, nf.Direction)
	assert.Equal(t, "relaseDate", nf.Key)
	assert.Equal(t, "releaseDate", nf.Suggestion)
	assert.Contains(t, err.Error(), `did you mean "releaseDate"`)

	_, err = table.ToWire("bundle_id")
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, DirectionLocal, nf.Direction)
	assert.Empty(t, nf.Suggestion)
	assert.Equal(t, `territoryAvailabilities: no local key "bundle_id"`, err.Error())
}

func TestTable_ToLocalDoesNotPassThrough(t *testing.T) {
	table := territoryTable(t)

	// A local name is not a wire key, even though it looks like one.
	_, err := table.ToLocal("content_statuses")
	assert.ErrorIs(t, err, ErrMappingNotFound)
}

func TestNewTable_DefinitionErrors(t *testing.T) {
	tests := []struct {
		name     string
		pairs    []Pair
		problems []string
	}{
		{
			name:     "duplicate wire key",
			pairs:    []Pair{P("a", "a"), P("a", "b")},
			problems: []string{"duplicate_wire_key"},
		},
		{
			name:     "duplicate local key",
			pairs:    []Pair{P("a", "x"), P("b", "x")},
			problems: []string{"duplicate_local_key"},
		},
		{
			name:     "empty keys",
			pairs:    []Pair{P("", "x"), P("b", "")},
			problems: []string{"empty_wire_key", "empty_local_key"},
		},
		{
			name:     "all problems reported together",
			pairs:    []Pair{P("a", "x"), P("a", "x")},
			problems: []string{"duplicate_wire_key", "duplicate_local_key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable("things", tt.pairs...)
			require.Error(t, err)
			assert.Nil(t, table)
			assert.ErrorIs(t, err, ErrInvalidDefinition)

			var de *DefinitionError
			require.ErrorAs(t, err, &de)
			require.Len(t, de.Problems, len(tt.problems))

			for i, code := range tt.problems {
				assert.Contains(t, de.Problems[i], code)
			}
		})
	}
}

func TestMustTable_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustTable("things", P("a", "a"), P("a", "a"))
	})
	assert.NotPanics(t, func() {
		MustTable("things")
	})
}

func TestDerived(t *testing.T) {
	assert.Equal(t, Pair{Wire: "preOrderEnabled", Local: "pre_order_enabled"}, Derived("preOrderEnabled"))
}

// A table either rejects its pairs or is a bijection that round-trips every
// declared key.
func TestTable_BijectionProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		keys := rapid.SliceOfN(rapid.StringMatching(`[a-z][a-zA-Z]{0,5}`), 0, 12).Draw(rt, "keys")
		locals := rapid.SliceOfN(rapid.StringMatching(`[a-z_]{1,6}`), len(keys), len(keys)).Draw(rt, "locals")

		pairs := make([]Pair, len(keys))
		for i := range keys {
			pairs[i] = P(keys[i], locals[i])
		}

		table, err := NewTable("generated", pairs...)
		if hasDuplicates(keys) || hasDuplicates(locals) {
			if !errors.Is(err, ErrInvalidDefinition) {
				rt.Fatalf("expected definition error for %v, got %v", pairs, err)
			}

			return
		}

		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}

		for _, p := range pairs {
			local, err := table.ToLocal(p.Wire)
			if err != nil || local != p.Local {
				rt.Fatalf("ToLocal(%q) = %q, %v", p.Wire, local, err)
			}

			wire, err := table.ToWire(p.Local)
			if err != nil || wire != p.Wire {
				rt.Fatalf("ToWire(%q) = %q, %v", p.Local, wire, err)
			}
		}

		if fmt.Sprint(table.WireKeys()) != fmt.Sprint(keys) {
			rt.Fatalf("order not preserved: %v vs %v", table.WireKeys(), keys)
		}
	})
}

func hasDuplicates(keys []string) bool {
	seen := map[string]struct{}{}
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			return true
		}

		seen[k] = struct{}{}
	}

	return false
}
