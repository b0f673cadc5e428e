package patch

import (
	"fmt"
	"os"
	"regexp"
)

// energyStorageRe matches a table block from its header comment through
// the third vec4 of its array literal, capturing everything around the
// energy-storage component so only that 0.0 gets rewritten. (?s) lets
// the gap between the header and the literal span lines.
var energyStorageRe = regexp.MustCompile(
	`(//\s+\d+\s+[A-Z]\s+-\s+\w+(?s:.*?)array<vec4<f32>,6>\(\s+vec4<f32>\([^)]+\),\s+vec4<f32>\([^)]+\),\s+vec4<f32>\([^,]+,[^,]+,[^,]+,\s*)0\.0(\s*\),)`)

// UpdateShaderEnergy rewrites the energy-storage component (3rd vec4,
// 4th value) from 0.0 to 1.0 in every matching table block of
// shared.wgsl and reports how many blocks changed. Blocks already
// storing a non-zero value do not match and are left alone.
func UpdateShaderEnergy(cfg Config) (int, error) {
	raw, err := os.ReadFile(cfg.SharedWGSLPath)
	if err != nil {
		return 0, fmt.Errorf("read shader source: %w", err)
	}
	content := string(raw)

	updated := len(energyStorageRe.FindAllStringIndex(content, -1))
	patched := energyStorageRe.ReplaceAllString(content, "${1}1.0${2}")

	if err := os.WriteFile(cfg.SharedWGSLPath, []byte(patched), 0o644); err != nil {
		return 0, fmt.Errorf("write shader source: %w", err)
	}
	return updated, nil
}
