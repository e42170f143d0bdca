package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const territorySchema = `
version: "1"
package: connectapi
resources:
  - type: territoryAvailabilities
    name: TerritoryAvailability
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

func TestParse(t *testing.T) {
	sf, err := Parse([]byte(territorySchema))
	require.NoError(t, err)
	require.NotNil(t, sf)

	assert.Equal(t, "1", sf.Version)
	assert.Equal(t, "connectapi", sf.Package)
	require.Len(t, sf.Resources, 2)

	ta := sf.Resources[0]
	assert.Equal(t, "territoryAvailabilities", ta.Type)
	assert.Equal(t, "TerritoryAvailability", ta.Name)
	assert.Equal(t, AttributeList{
		P("available", "available"),
		P("contentStatuses", "content_statuses"),
		P("preOrderEnabled", "pre_order_enabled"),
		P("preOrderPublishDate", "pre_order_publish_date"),
		P("releaseDate", "release_date"),
	}, ta.Attributes)

	require.Len(t, ta.Constants, 1)
	assert.Equal(t, "content_statuses", ta.Constants[0].Attribute)
	assert.Equal(t, []string{"AVAILABLE", "CANNOT_SELL"}, ta.Constants[0].Values)

	territories := sf.Resources[1]
	assert.Equal(t, "Territories", territories.Name, "name defaults to the Go form of the type")
	assert.Equal(t, AttributeList{P("currency", "currency")}, territories.Attributes)
}

func TestParse_DerivesEmptyLocalNames(t *testing.T) {
	sf, err := Parse([]byte(`
resources:
  - type: apps
    attributes:
      bundleId:
      primaryLocale: locale
`))
	require.NoError(t, err)
	assert.Equal(t, AttributeList{P("bundleId", "bundle_id"), P("primaryLocale", "locale")}, sf.Resources[0].Attributes)
}

func TestParse_ListFormDerivesSnakeCase(t *testing.T) {
	sf, err := Parse([]byte(`
resources:
  - type: apps
    attributes: [bundleId, primaryLocale, sku]
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"bundle_id", "primary_locale", "sku"}, []string{
		sf.Resources[0].Attributes[0].Local,
		sf.Resources[0].Attributes[1].Local,
		sf.Resources[0].Attributes[2].Local,
	})
}

func TestParse_InvalidAttributes(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"scalar", "resources:\n  - type: apps\n    attributes: name\n"},
		{"nested mapping", "resources:\n  - type: apps\n    attributes:\n      name: {a: b}\n"},
		{"nested list", "resources:\n  - type: apps\n    attributes:\n      - [a]\n"},
		{"broken yaml", "resources: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to parse schema YAML")
		})
	}
}

func TestResourceDef_TableAndConstants(t *testing.T) {
	sf, err := Parse([]byte(territorySchema))
	require.NoError(t, err)

	table, err := sf.Resources[0].Table()
	require.NoError(t, err)
	assert.Equal(t, "territoryAvailabilities", table.Owner())
	assert.Equal(t, 5, table.Len())

	sets, err := sf.Resources[0].ConstantSets()
	require.NoError(t, err)
	require.Contains(t, sets, "content_statuses")
	assert.True(t, sets["content_statuses"].Contains("CANNOT_SELL"))
}

func TestWriteFile_RoundTrip(t *testing.T) {
	sf, err := Parse([]byte(territorySchema))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, WriteFile(sf, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sf, loaded)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
