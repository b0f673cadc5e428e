package patch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sharedWGSLFixture = `// 1 C - Cysteine
    array<vec4<f32>,6>(
        vec4<f32>(6.0, 2.5, 0.0, 0.9),
        vec4<f32>(-0.7, 0.0, 0.0, 0.0),
        vec4<f32>(1.0, 0.0, 0.0, 0.0),
        vec4<f32>(0.0, 0.3, 0.5, 0.1),
        vec4<f32>(0.0, 0.001, 0.0, 0.1),
        vec4<f32>(0.5, 0.5, 0.5, 0.5)),
// 8 K - Lysine
    array<vec4<f32>,6>(
        vec4<f32>(10.0, 3.5, -0.5, 0.6),
        vec4<f32>(-0.6, 0.0, 0.0, 0.0),
        vec4<f32>(1.0, 1.0, 0.0, 10.0),
        vec4<f32>(0.0, 0.2, 1.0, 0.3),
        vec4<f32>(0.0, 0.002, 0.0, 0.2),
        vec4<f32>(1.4, -0.4, 1.3, -0.3)),
// 19 Y - Tyrosine
    array<vec4<f32>,6>(
        vec4<f32>(11.5, 4.0, 0.9, -0.2),
        vec4<f32>(0.2, 0.0, 0.0, 0.0),
        vec4<f32>(0.26, 0.26, 0.26, 0.0),
        vec4<f32>(0.0, 0.3, 0.5, 0.15),
        vec4<f32>(0.0, 0.001, 0.0, 0.2),
        vec4<f32>(-0.5, 1.5, -0.4, 1.4)),
`

func writeSharedWGSL(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shared.wgsl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestUpdateShaderEnergy(t *testing.T) {
	path := writeSharedWGSL(t, sharedWGSLFixture)

	updated, err := UpdateShaderEnergy(Config{SharedWGSLPath: path})
	require.NoError(t, err)
	// Cysteine and Tyrosine store 0.0; Lysine already stores 10.0.
	assert.Equal(t, 2, updated)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)

	assert.Contains(t, content, "vec4<f32>(1.0, 0.0, 0.0, 1.0),")
	assert.Contains(t, content, "vec4<f32>(0.26, 0.26, 0.26, 1.0),")
	// The already-patched block keeps its value.
	assert.Contains(t, content, "vec4<f32>(1.0, 1.0, 0.0, 10.0),")
	// Only the third vec4 of each block changes.
	assert.Contains(t, content, "vec4<f32>(0.0, 0.3, 0.5, 0.1),")
	assert.Equal(t, 2, strings.Count(content, ", 1.0),\n        vec4<f32>(0.0,"))
}

func TestUpdateShaderEnergySecondRunIsNoOp(t *testing.T) {
	path := writeSharedWGSL(t, sharedWGSLFixture)

	first, err := UpdateShaderEnergy(Config{SharedWGSLPath: path})
	require.NoError(t, err)
	require.Equal(t, 2, first)

	second, err := UpdateShaderEnergy(Config{SharedWGSLPath: path})
	require.NoError(t, err)
	assert.Equal(t, 0, second)
}

func TestUpdateShaderEnergyNoMatches(t *testing.T) {
	path := writeSharedWGSL(t, "fn main() {}\n")

	updated, err := UpdateShaderEnergy(Config{SharedWGSLPath: path})
	require.NoError(t, err)
	assert.Equal(t, 0, updated)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fn main() {}\n", string(raw))
}
