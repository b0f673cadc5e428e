package analysis

// ClassifySensor resolves an organ display name to a sensor kind. Only
// exact, case-sensitive matches against the known catalog classify;
// anything else reports no match and contributes no output row.
func ClassifySensor(organName string) (string, bool) {
	if _, ok := SensorTypeIDs[organName]; ok {
		return organName, true
	}
	return "", false
}
