package patch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const partPropertiesFixture = `{
  "version": 3,
  "parts": [
    {
      "index": 0,
      "name": "Alanine",
      "color": [0.3, 0.3, 0.3],
      "vec4": [[6.5, 2.5, 0.0, -0.5], [0.5, 0.0, 0.0, 0.0], [0.3, 0.3, 0.3, 0.0]]
    },
    {
      "index": 19,
      "name": "Tyrosine",
      "vec4": [[11.5, 4.0, 0.9, -0.2], [0.2, 0.0, 0.0, 0.0], [0.26, 0.26, 0.26, 0.0]]
    },
    {
      "index": 28,
      "name": "Storage Organ",
      "vec4": [[16.0, 12.0, -0.35, 0.1], [0.0, 0.0, 0.0, 0.0], [1.0, 0.5, 0.0, 2.5]]
    },
    {
      "index": 30,
      "name": "Other Organ",
      "vec4": [[1, 2, 3, 4], [5, 6, 7, 8], [9, 10, 11, 12]]
    }
  ]
}
`

func writePartProperties(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "part_properties.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readEnergySlot(t *testing.T, doc map[string]interface{}, partIdx int) float64 {
	t.Helper()
	parts := doc["parts"].([]interface{})
	part := parts[partIdx].(map[string]interface{})
	vec4 := part["vec4"].([]interface{})
	row := vec4[2].([]interface{})
	return row[3].(float64)
}

func TestUpdateEnergyStorage(t *testing.T) {
	path := writePartProperties(t, partPropertiesFixture)

	require.NoError(t, UpdateEnergyStorage(Config{PartPropertiesPath: path}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))

	// Amino acids get 1.0, the storage organ 10.0; others untouched.
	assert.InDelta(t, 1.0, readEnergySlot(t, doc, 0), 1e-12)
	assert.InDelta(t, 1.0, readEnergySlot(t, doc, 1), 1e-12)
	assert.InDelta(t, 10.0, readEnergySlot(t, doc, 2), 1e-12)
	assert.InDelta(t, 12.0, readEnergySlot(t, doc, 3), 1e-12)

	// Fields the patch does not touch must round-trip.
	assert.InDelta(t, 3.0, doc["version"].(float64), 1e-12)
	part0 := doc["parts"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Alanine", part0["name"])
	require.Len(t, part0["color"].([]interface{}), 3)
	row0 := part0["vec4"].([]interface{})[0].([]interface{})
	assert.InDelta(t, -0.5, row0[3].(float64), 1e-12)
}

func TestUpdateEnergyStorageIdempotent(t *testing.T) {
	path := writePartProperties(t, partPropertiesFixture)

	require.NoError(t, UpdateEnergyStorage(Config{PartPropertiesPath: path}))
	require.NoError(t, UpdateEnergyStorage(Config{PartPropertiesPath: path}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.InDelta(t, 1.0, readEnergySlot(t, doc, 0), 1e-12)
	assert.InDelta(t, 10.0, readEnergySlot(t, doc, 2), 1e-12)
}

func TestUpdateEnergyStorageMissingParts(t *testing.T) {
	path := writePartProperties(t, `{"version": 3}`)

	err := UpdateEnergyStorage(Config{PartPropertiesPath: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parts")
}

func TestUpdateEnergyStorageMalformedVec4(t *testing.T) {
	path := writePartProperties(t, `{"parts": [{"index": 5, "name": "Glycine", "vec4": [[1, 2, 3, 4]]}]}`)

	err := UpdateEnergyStorage(Config{PartPropertiesPath: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vec4")
}
