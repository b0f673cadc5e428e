package parser

import "fmt"

// Amino acids occupy indices 0-19 of the shared.wgsl lookup table;
// organs occupy 20 and up.
const (
	AminoIndexMin = 0
	AminoIndexMax = 19
)

// Param1Entry is one row of the lookup table embedded in shared.wgsl.
// Param1 is the 4th component of the 4th vec4 in the row's
// array<vec4<f32>,6> literal (d[3].w in the shader).
type Param1Entry struct {
	Index  int
	Code   string // single uppercase letter (amino-acid or organ code)
	Name   string // display name, e.g. "Valine" or "Energy Sensor"
	Param1 float64
}

// ParseError reports a fragment that was expected to contain a numeric
// literal but did not.
type ParseError struct {
	Fragment string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse float from vec4 component: %q", e.Fragment)
}

// MalformedTableError reports a table row whose data line does not have
// the expected array-of-vec4 shape.
type MalformedTableError struct {
	Index  int
	Detail string
}

func (e *MalformedTableError) Error() string {
	return fmt.Sprintf("malformed table row for idx=%d: %s", e.Index, e.Detail)
}
