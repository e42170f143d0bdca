package resource

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"resource-mapper/mapping"
)

func TestRegistry(t *testing.T) {
	reg := testRegistry()

	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, []string{"appAvailabilities", "territories", "territoryAvailabilities"}, reg.TypeIDs())

	def, ok := reg.Lookup("territories")
	require.True(t, ok)
	assert.Same(t, territoryType, def)

	_, ok = reg.Lookup("apps")
	assert.False(t, ok)
}

func TestRegistry_Register(t *testing.T) {
	reg := MustRegistry(territoryType)

	require.NoError(t, reg.Register(territoryType), "same value again is a no-op")
	assert.Equal(t, 1, reg.Len())

	other := MustType("territories", mapping.MustTable("territories", mapping.Derived("name")))
	err := reg.Register(other)
	require.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.Contains(t, err.Error(), `"territories"`)

	def, _ := reg.Lookup("territories")
	assert.Same(t, territoryType, def, "first registration wins")
}

func TestRegistry_ZeroValue(t *testing.T) {
	var reg Registry

	_, ok := reg.Lookup("territories")
	assert.False(t, ok)

	require.NoError(t, reg.Register(territoryType))
	assert.Equal(t, []string{"territories"}, reg.TypeIDs())
}

func TestNewRegistry_Duplicate(t *testing.T) {
	other := MustType("territories", mapping.MustTable("territories", mapping.Derived("name")))

	_, err := NewRegistry(territoryType, other)
	require.ErrorIs(t, err, ErrAlreadyRegistered)

	assert.Panics(t, func() { MustRegistry(territoryType, other) })
}

func TestRegistry_Concurrent(t *testing.T) {
	reg := MustRegistry(territoryAvailabilityType)
	c := NewCodec(WithRegistry(reg))

	var g errgroup.Group

	for i := range 32 {
		g.Go(func() error {
			id := fmt.Sprintf("type%d", i)
			return reg.Register(MustType(id, mapping.MustTable(id, mapping.Derived("value"))))
		})

		g.Go(func() error {
			doc, err := c.DecodeDocument([]byte(collectionDocument), nil)
			if err != nil {
				return err
			}

			if len(doc.Data) != 2 {
				return fmt.Errorf("decoded %d resources", len(doc.Data))
			}

			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, 33, reg.Len())
}
