package report

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/Manalokosdev/Ribossome/internal/analysis"
)

// Columns is the fixed output header order of sensor_power_table.csv.
var Columns = []string{
	"sensor_kind",
	"organ_type_id",
	"promoter_code",
	"promoter_param1",
	"modifier_index",
	"modifier_code",
	"modifier_param1",
	"combined_param1",
	"gain_abs",
	"polarity",
	"notes",
}

// missingModifierSortKey pushes rows without a modifier index (the
// synthetic energy row) to the end of their group.
const missingModifierSortKey = 999

// SortRecords orders rows by sensor kind, then promoter code, then
// modifier index.
func SortRecords(records []analysis.SensorGainRecord) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.SensorKind != b.SensorKind {
			return a.SensorKind < b.SensorKind
		}
		if a.PromoterCode != b.PromoterCode {
			return a.PromoterCode < b.PromoterCode
		}
		return modifierSortKey(a) < modifierSortKey(b)
	})
}

func modifierSortKey(r analysis.SensorGainRecord) int {
	if r.ModifierIndex < 0 {
		return missingModifierSortKey
	}
	return r.ModifierIndex
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatPolarity(p int) string {
	if p == 0 {
		return ""
	}
	return strconv.Itoa(p)
}

// recordFields renders one record in Columns order. Absent values
// become empty fields, never a null marker.
func recordFields(r analysis.SensorGainRecord) []string {
	modifierIndex := ""
	if r.ModifierIndex >= 0 {
		modifierIndex = strconv.Itoa(r.ModifierIndex)
	}
	return []string{
		r.SensorKind,
		strconv.Itoa(r.OrganTypeID),
		r.PromoterCode,
		formatFloat(r.PromoterParam1),
		modifierIndex,
		r.ModifierCode,
		formatFloat(r.ModifierParam1),
		formatFloat(r.CombinedParam1),
		formatFloat(r.GainAbs),
		formatPolarity(r.Polarity),
		r.Notes,
	}
}

// WriteCSV sorts the records in place and writes the output table.
func WriteCSV(path string, records []analysis.SensorGainRecord) error {
	SortRecords(records)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output table %q: %w", path, err)
	}

	w := csv.NewWriter(file)
	if err := w.Write(Columns); err != nil {
		file.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(recordFields(r)); err != nil {
			file.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		return fmt.Errorf("flush output table: %w", err)
	}
	return file.Close()
}
