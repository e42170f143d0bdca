package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"resource-mapper/resource"
)

const territoryAvailabilityJSON = `{
	"type": "territoryAvailabilities",
	"id": "ta-1",
	"attributes": {
		"available": true,
		"contentStatuses": ["AVAILABLE"],
		"releaseDate": "2023-01-01",
		"unexpectedField": 42
	}
}`

const appAvailabilityDocument = `{
	"data": {
		"type": "appAvailabilities",
		"id": "aa-1",
		"attributes": {
			"availableInNewTerritories": true,
			"territoryAvailabilities": [
				{"type": "territoryAvailabilities", "id": "usa", "attributes": {"available": true}},
				{"type": "territoryAvailabilities", "id": "fra", "attributes": {"available": false}}
			]
		}
	},
	"included": [
		{"type": "territories", "id": "USA", "attributes": {"currency": "USD"}}
	]
}`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()

	var out bytes.Buffer

	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()

	return out.String(), err
}

func TestDecode_YAML(t *testing.T) {
	out, err := run(t, territoryAvailabilityJSON, "decode")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))

	assert.Equal(t, "territoryAvailabilities", got["type"])
	assert.Equal(t, "ta-1", got["id"])
	assert.Equal(t, map[string]any{
		"available":              true,
		"content_statuses":       []any{"AVAILABLE"},
		"pre_order_enabled":      nil,
		"pre_order_publish_date": nil,
		"release_date":           "2023-01-01",
	}, got["attributes"])

	assert.Less(t, strings.Index(out, "available:"), strings.Index(out, "release_date:"), "table order")
	assert.NotContains(t, out, "unexpected")
}

func TestDecode_Formats(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   []string
	}{
		{
			name:   "json",
			format: "json",
			want:   []string{`"data": {`, `"contentStatuses": ["AVAILABLE"]`, `"releaseDate": "2023-01-01"`},
		},
		{
			name:   "tree",
			format: "tree",
			want:   []string{"territoryAvailabilities ta-1", "available: true", `content_statuses: ["AVAILABLE"]`, "pre_order_enabled: null"},
		},
		{
			name:   "dump",
			format: "dump",
			want:   []string{"territoryAvailabilities ta-1", `"content_statuses"`, `"AVAILABLE"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, territoryAvailabilityJSON, "decode", "-o", tt.format)
			require.NoError(t, err)

			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestDecode_Document(t *testing.T) {
	file := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(file, []byte(appAvailabilityDocument), 0o600))

	out, err := run(t, "", "decode", "-o", "tree", file)
	require.NoError(t, err)

	assert.Contains(t, out, "appAvailabilities aa-1")
	assert.Contains(t, out, "[0] territoryAvailabilities usa")
	assert.Contains(t, out, "[1] territoryAvailabilities fra")
	assert.Contains(t, out, "territories USA")
	assert.Contains(t, out, `currency: "USD"`)
}

func TestDecode_Select(t *testing.T) {
	out, err := run(t, appAvailabilityDocument, "decode",
		"--select", "$.data.attributes.territoryAvailabilities[1]", "-o", "json")
	require.NoError(t, err)

	assert.Equal(t, "fra", gjson.Get(out, "data.id").String())
	assert.False(t, gjson.Get(out, "data.attributes.available").Bool())

	_, err = run(t, appAvailabilityDocument, "decode", "--select", "$.nothing")
	assert.ErrorContains(t, err, "matched nothing")

	_, err = run(t, appAvailabilityDocument, "decode", "--select", "$[")
	assert.ErrorContains(t, err, "invalid --select")
}

func TestDecode_Errors(t *testing.T) {
	_, err := run(t, territoryAvailabilityJSON, "decode", "--type", "apps")
	require.ErrorIs(t, err, resource.ErrTypeMismatch)

	_, err = run(t, territoryAvailabilityJSON, "decode", "--type", "territory")
	require.ErrorIs(t, err, resource.ErrUnresolvedNestedType)
	assert.ErrorContains(t, err, `did you mean "territories"?`)

	_, err = run(t, `{"attributes": {}}`, "decode")
	require.ErrorIs(t, err, resource.ErrMalformedPayload)

	_, err = run(t, territoryAvailabilityJSON, "decode", "-o", "xml")
	assert.ErrorContains(t, err, `unknown output format "xml"`)

	_, err = run(t, territoryAvailabilityJSON, "decode", "--features", "bogus")
	assert.Error(t, err)
}

func TestDecode_CustomSchema(t *testing.T) {
	schema := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(schema, []byte(`
resources:
  - type: apps
    attributes: [bundleId, name]
`), 0o600))

	out, err := run(t, `{"type":"apps","id":"1","attributes":{"bundleId":"com.example","name":"Example"}}`,
		"--schema", schema, "decode", "-o", "tree")
	require.NoError(t, err)

	assert.Contains(t, out, `bundle_id: "com.example"`)

	_, err = run(t, territoryAvailabilityJSON, "--schema", schema, "decode")
	assert.ErrorIs(t, err, resource.ErrUnresolvedNestedType)
}

func TestEncode(t *testing.T) {
	out, err := run(t, `
type: territoryAvailabilities
id: ta-1
attributes:
  available: false
  content_statuses: [CANNOT_SELL]
  release_date: "2023-01-01"
`, "encode")
	require.NoError(t, err)

	assert.Equal(t,
		`{"type":"territoryAvailabilities","id":"ta-1","attributes":{"available":false,"contentStatuses":["CANNOT_SELL"],"releaseDate":"2023-01-01"}}`+"\n",
		out)
}

func TestEncode_NestedList(t *testing.T) {
	out, err := run(t, `
- type: appAvailabilities
  attributes:
    available_in_new_territories: true
    territory_availabilities:
      - type: territoryAvailabilities
        id: usa
        attributes: {available: true}
- type: territories
  id: USA
  attributes: {currency: USD}
`, "encode", "--assign-ids")
	require.NoError(t, err)

	data := gjson.Get(out, "data")
	require.True(t, data.IsArray())
	require.Len(t, data.Array(), 2)

	_, err = uuid.Parse(data.Get("0.id").String())
	require.NoError(t, err, "missing ids are assigned")
	assert.Equal(t, "usa", data.Get("0.attributes.territoryAvailabilities.0.id").String())
	assert.True(t, data.Get("0.attributes.territoryAvailabilities.0.attributes.available").Bool())
	assert.Equal(t, "USA", data.Get("1.id").String())
}

func TestTypedPlainValues(t *testing.T) {
	out, err := run(t, `{type: territories, id: USA, attributes: {currency: {type: percentage, value: 3}}}`, "encode")
	require.NoError(t, err)
	assert.Equal(t,
		`{"type":"territories","id":"USA","attributes":{"currency":{"type":"percentage","value":3}}}`+"\n", out)

	out, err = run(t, out, "decode", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, "percentage", gjson.Get(out, "data.attributes.currency.type").String())
	assert.Equal(t, int64(3), gjson.Get(out, "data.attributes.currency.value").Int())
}

func TestEncode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{name: "scalar", input: `42`, errMsg: "input must be a resource"},
		{name: "no type", input: `{attributes: {}}`, errMsg: "resource has no type"},
		{name: "unknown type", input: `{type: appz, attributes: {}}`, errMsg: `did you mean "apps"?`},
		{name: "undeclared attribute", input: `{type: territories, attributes: {money: USD}}`, errMsg: "money"},
		{name: "not a mapping", input: `[1]`, errMsg: "resource 0: expected a mapping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.input, "encode")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.yaml")
	require.NoError(t, os.WriteFile(valid, []byte(`
resources:
  - type: apps
    attributes: [name]
`), 0o600))

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte(`
resources:
  - type: apps
    attributes: {name: name, title: name}
`), 0o600))

	out, err := run(t, "", "check", "--no-color", valid)
	require.NoError(t, err)
	assert.Contains(t, out, valid+": ok (1 resources)")

	out, err = run(t, "", "check", "--no-color", valid, invalid, filepath.Join(dir, "missing.yaml"))
	require.EqualError(t, err, "2 of 3 schema files invalid")
	assert.Contains(t, out, "duplicate_local_key")
	assert.Less(t, strings.Index(out, valid), strings.Index(out, invalid), "results keep argument order")

	_, err = run(t, "", "check")
	assert.EqualError(t, err, "no schema files given")

	out, err = run(t, "", "--schema", "../../connectapi/schema.yaml", "check", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "ok (4 resources)")
}

func TestGen(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "", "--schema", "../../connectapi/schema.yaml", "gen", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "generated 5 files")

	for _, name := range []string{"app_gen.go", "territory_availability_gen.go", "registry_gen.go"} {
		content, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Contains(t, string(content), "package connectapi")
	}

	_, err = run(t, "", "gen")
	assert.EqualError(t, err, "gen requires --schema")
}

func TestTypes(t *testing.T) {
	out, err := run(t, "", "types")
	require.NoError(t, err)

	for _, want := range []string{"Type", "Wire", "Local", "territoryAvailabilities", "contentStatuses", "content_statuses", "ContentStatus (", "…"} {
		assert.Contains(t, out, want)
	}

	assert.Less(t, strings.Index(out, "appAvailabilities"), strings.Index(out, "territoryAvailabilities"), "types are sorted")
}

func TestLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "resource-mapper.log")

	_, err := run(t, territoryAvailabilityJSON, "-v", "--log-file", logFile, "decode")
	require.NoError(t, err)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "codec ready")
	assert.Contains(t, string(content), "unexpectedField")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, preview([]string{"a", "b"}, 3))

	tokens := []string{"a", "b", "c", "d"}
	assert.Equal(t, []string{"a", "b", "c", "…"}, preview(tokens, 3))
	assert.Equal(t, []string{"a", "b", "c", "d"}, tokens, "input is not modified")
}

func TestOutputFlag(t *testing.T) {
	var o outputFlag = outputYAML

	require.NoError(t, o.Set(outputTree))
	assert.Equal(t, outputTree, o.String())
	assert.Equal(t, "format", o.Type())

	assert.ErrorContains(t, o.Set("xml"), `unknown output format "xml"`)
	assert.Equal(t, outputTree, o.String(), "rejected values leave the flag unchanged")
}
