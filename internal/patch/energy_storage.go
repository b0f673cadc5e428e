package patch

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/Manalokosdev/Ribossome/internal/parser"
)

const (
	aminoEnergyStorage = 1.0
	storageOrganIndex  = 28
	storageOrganEnergy = 10.0
)

// UpdateEnergyStorage rewrites the energy-storage slot (vec4[2][3]) in
// part_properties.json: 1.0 for the amino acids, 10.0 for the storage
// organ. The document is decoded generically so every field the patch
// does not touch survives the round-trip.
func UpdateEnergyStorage(cfg Config) error {
	raw, err := os.ReadFile(cfg.PartPropertiesPath)
	if err != nil {
		return fmt.Errorf("read part properties: %w", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode part properties: %w", err)
	}
	parts, ok := doc["parts"].([]interface{})
	if !ok {
		return fmt.Errorf("part properties %q has no parts array", cfg.PartPropertiesPath)
	}

	for i, p := range parts {
		part, ok := p.(map[string]interface{})
		if !ok {
			return fmt.Errorf("parts[%d] is not an object", i)
		}
		idx, ok := partIndex(part)
		if !ok {
			return fmt.Errorf("parts[%d] has no integer index", i)
		}

		switch {
		case idx >= parser.AminoIndexMin && idx <= parser.AminoIndexMax:
			if err := setEnergyStorage(part, aminoEnergyStorage); err != nil {
				return fmt.Errorf("parts[%d]: %w", i, err)
			}
			log.Printf("Updated %s (index %d) energy storage to %g", partName(part), idx, aminoEnergyStorage)
		case idx == storageOrganIndex:
			if err := setEnergyStorage(part, storageOrganEnergy); err != nil {
				return fmt.Errorf("parts[%d]: %w", i, err)
			}
			log.Printf("Updated %s (index %d) energy storage to %g", partName(part), idx, storageOrganEnergy)
		}
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode part properties: %w", err)
	}
	out = append(out, '\n')
	if err := os.WriteFile(cfg.PartPropertiesPath, out, 0o644); err != nil {
		return fmt.Errorf("write part properties: %w", err)
	}
	return nil
}

func partIndex(part map[string]interface{}) (int, bool) {
	f, ok := part["index"].(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func partName(part map[string]interface{}) string {
	s, _ := part["name"].(string)
	return s
}

// setEnergyStorage overwrites the 4th component of the 3rd vec4, the
// part's energy-storage capacity.
func setEnergyStorage(part map[string]interface{}, value float64) error {
	vec4, ok := part["vec4"].([]interface{})
	if !ok || len(vec4) < 3 {
		return fmt.Errorf("vec4 is not a 3-element array of vectors")
	}
	row, ok := vec4[2].([]interface{})
	if !ok || len(row) < 4 {
		return fmt.Errorf("vec4[2] is not a 4-element vector")
	}
	row[3] = value
	return nil
}
