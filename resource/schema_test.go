package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resource-mapper/mapping"
)

const schemaYAML = `
resources:
  - type: territoryAvailabilities
    attributes:
      available: available
      contentStatuses: content_statuses
      preOrderEnabled: pre_order_enabled
      preOrderPublishDate: pre_order_publish_date
      releaseDate: release_date
    constants:
      - name: ContentStatus
        attribute: content_statuses
        values: [AVAILABLE, CANNOT_SELL]
  - type: territories
    attributes: [currency]
`

func TestTypesFromSchema(t *testing.T) {
	sf, err := mapping.Parse([]byte(schemaYAML))
	require.NoError(t, err)

	types, err := TypesFromSchema(sf)
	require.NoError(t, err)
	require.Len(t, types, 2)

	ta := types[0]
	assert.Equal(t, "territoryAvailabilities", ta.TypeID())
	assert.Equal(t, territoryAvailabilityType.Fields().Pairs(), ta.Fields().Pairs())

	cs, ok := ta.Constants("content_statuses")
	require.True(t, ok)
	assert.Equal(t, "ContentStatus", cs.Name())
	assert.True(t, cs.Contains("CANNOT_SELL"))

	_, ok = types[1].Constants("currency")
	assert.False(t, ok)
}

func TestTypesFromSchema_Invalid(t *testing.T) {
	sf, err := mapping.Parse([]byte(`
resources:
  - type: territories
    attributes:
      currency: code
      name: code
`))
	require.NoError(t, err)

	_, err = TypesFromSchema(sf)
	require.ErrorIs(t, err, mapping.ErrInvalidDefinition)
	assert.Contains(t, err.Error(), "duplicate_local_key")
}

func TestRegistryFromSchema(t *testing.T) {
	sf, err := mapping.Parse([]byte(schemaYAML))
	require.NoError(t, err)

	reg, err := RegistryFromSchema(sf)
	require.NoError(t, err)
	assert.Equal(t, []string{"territories", "territoryAvailabilities"}, reg.TypeIDs())

	inst, err := NewCodec(WithRegistry(reg)).DecodeDocument([]byte(singleDocument), nil)
	require.NoError(t, err)

	one, ok := inst.One()
	require.True(t, ok)
	assert.Equal(t, "2023-01-01", one.Attributes()["release_date"])
}
