package analysis

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/Manalokosdev/Ribossome/internal/parser"
)

// AminoParam1ByCode indexes param1 by amino-acid letter code, limited
// to the amino-acid subrange of the table. Organ rows never join.
func AminoParam1ByCode(entries map[int]parser.Param1Entry) map[string]float64 {
	byCode := make(map[string]float64, len(entries))
	for _, e := range entries {
		if e.Index >= parser.AminoIndexMin && e.Index <= parser.AminoIndexMax {
			byCode[e.Code] = e.Param1
		}
	}
	return byCode
}

// BuildSensorGainTable joins every ORGAN_TABLE.csv row against the
// parsed shader table, one output row per (row, promoter column) pair
// whose cell names a known sensor kind. Cells that do not classify are
// skipped and counted in the returned stats. A synthetic row for the
// energy sensor is appended when the parsed table contains one.
func BuildSensorGainTable(entries map[int]parser.Param1Entry, organTablePath string) ([]SensorGainRecord, JoinStats, error) {
	var stats JoinStats

	file, err := os.Open(organTablePath)
	if err != nil {
		return nil, stats, fmt.Errorf("open organ table: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, stats, fmt.Errorf("read organ table: %w", err)
	}
	if len(allRows) == 0 {
		return nil, stats, fmt.Errorf("organ table %q has no header row", organTablePath)
	}

	colIdx := make(map[string]int, len(allRows[0]))
	for i, name := range allRows[0] {
		colIdx[strings.TrimSpace(name)] = i
	}
	modifierCol, ok := colIdx["Modifier"]
	if !ok {
		return nil, stats, fmt.Errorf("organ table %q is missing the Modifier column", organTablePath)
	}
	modifierAACol, ok := colIdx["Modifier_AA"]
	if !ok {
		return nil, stats, fmt.Errorf("organ table %q is missing the Modifier_AA column", organTablePath)
	}

	aminoParam1 := AminoParam1ByCode(entries)
	var records []SensorGainRecord

	for rowNum, row := range allRows[1:] {
		stats.RowsScanned++

		modifierIdx, err := strconv.Atoi(cell(row, modifierCol))
		if err != nil {
			return nil, stats, fmt.Errorf("organ table row %d: bad Modifier value %q", rowNum+2, cell(row, modifierCol))
		}
		modifierCode := cell(row, modifierAACol)

		for _, pc := range PromoterColumns {
			organName := ""
			if ci, ok := colIdx[pc.Column]; ok {
				organName = cell(row, ci)
			}
			sensorKind, ok := ClassifySensor(organName)
			if !ok {
				stats.ClassificationMisses++
				continue
			}
			organTypeID := SensorTypeIDs[sensorKind]

			promoterParam1, promoterOK := aminoParam1[pc.Code]
			modifierParam1, modifierOK := aminoParam1[modifierCode]

			rec := SensorGainRecord{
				SensorKind:     sensorKind,
				OrganTypeID:    organTypeID,
				PromoterCode:   pc.Code,
				PromoterParam1: math.NaN(),
				ModifierIndex:  modifierIdx,
				ModifierCode:   modifierCode,
				ModifierParam1: math.NaN(),
				CombinedParam1: math.NaN(),
				GainAbs:        math.NaN(),
				Notes:          NoteNonParam1Sensor,
			}
			if promoterOK {
				rec.PromoterParam1 = promoterParam1
			}
			if modifierOK {
				rec.ModifierParam1 = modifierParam1
			}
			if Param1GainTypeIDs[organTypeID] && promoterOK && modifierOK {
				combined := promoterParam1 + modifierParam1
				rec.CombinedParam1 = combined
				rec.GainAbs = math.Abs(combined)
				if combined >= 0 {
					rec.Polarity = 1
				} else {
					rec.Polarity = -1
				}
				rec.Notes = NoteEnvDyeSensor
			}
			records = append(records, rec)
		}
	}

	// The energy sensor exists in the shader table but never in
	// ORGAN_TABLE.csv; it still contributes to oscillations, so emit
	// one row for it with the join fields left empty.
	for _, e := range entries {
		if e.Name != EnergySensorName {
			continue
		}
		records = append(records, SensorGainRecord{
			SensorKind:     EnergySensorName,
			OrganTypeID:    SensorTypeIDs[EnergySensorName],
			PromoterParam1: math.NaN(),
			ModifierIndex:  -1,
			ModifierParam1: math.NaN(),
			CombinedParam1: math.NaN(),
			GainAbs:        math.NaN(),
			Notes:          NoteEnergySensor,
		})
		stats.EnergyRowAppended = true
		break
	}

	return records, stats, nil
}

func cell(row []string, col int) string {
	if col >= 0 && col < len(row) {
		return strings.TrimSpace(row[col])
	}
	return ""
}
