package analysis

// SensorTypeIDs maps the organ display names that can appear in
// ORGAN_TABLE.csv promoter cells to their organ type ids. The two
// trail-energy variants intentionally share id 37.
var SensorTypeIDs = map[string]int{
	"Alpha Sensor":                 22,
	"Beta Sensor":                  23,
	"Energy Sensor":                24,
	"Agent Alpha Sensor":           34,
	"Agent Beta Sensor":            35,
	"Trail Energy Sensor (alpha)":  37,
	"Trail Energy Sensor (beta)":   37,
	"Alpha Magnitude Sensor":       38,
	"Alpha Magnitude Sensor (var)": 39,
	"Beta Magnitude Sensor":        40,
	"Beta Magnitude Sensor (var)":  41,
}

// PromoterColumn binds an ORGAN_TABLE.csv column name to the promoter's
// single-letter amino-acid code.
type PromoterColumn struct {
	Column string
	Code   string
}

// PromoterColumns lists the promoter columns the join consumes, in a
// fixed order so output is deterministic.
var PromoterColumns = []PromoterColumn{
	{Column: "V_Valine", Code: "V"},
	{Column: "M_Methionine", Code: "M"},
	{Column: "H_Histidine", Code: "H"},
	{Column: "Q_Glutamine", Code: "Q"},
}

// Param1GainTypeIDs holds the env-dye sensor ids (directional and
// magnitude) whose gain is derived from promoter+modifier param1 in the
// shader sampling helpers. Agent, trail and energy sensors use
// different logic.
var Param1GainTypeIDs = map[int]bool{
	22: true, 23: true, 38: true, 39: true, 40: true, 41: true,
}

// EnergySensorName marks the one sensor kind that gets a synthetic
// output row even though it never appears in ORGAN_TABLE.csv.
const EnergySensorName = "Energy Sensor"

// Notes attached to output rows.
const (
	NoteEnvDyeSensor    = "env_dye_sensor (gain=abs(p+m), sign=sign(p+m))"
	NoteNonParam1Sensor = "non_param1_sensor (gain not derived from promoter/modifier param1 in shader)"
	NoteEnergySensor    = "energy_sensor (uses energy->signal mapping; not promoter/modifier param1 gain)"
)

// SensorGainRecord is one derived output row. Absent float values carry
// NaN so "no value" stays distinct from zero; ModifierIndex is -1 for
// the synthetic energy row and Polarity is 0 when no gain was derived.
type SensorGainRecord struct {
	SensorKind     string
	OrganTypeID    int
	PromoterCode   string
	PromoterParam1 float64
	ModifierIndex  int
	ModifierCode   string
	ModifierParam1 float64
	CombinedParam1 float64
	GainAbs        float64
	Polarity       int
	Notes          string
}

// JoinStats summarizes a join pass so skip behavior can be asserted on
// without scraping log output.
type JoinStats struct {
	RowsScanned          int
	ClassificationMisses int
	EnergyRowAppended    bool
}
