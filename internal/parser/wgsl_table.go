package parser

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// vec4ArrayMarker identifies the data line carrying a table row's
// packed coefficients.
const vec4ArrayMarker = "array<vec4<f32>,6>("

var (
	// Matches a row header comment: // 17 V - Valine
	headerRe = regexp.MustCompile(`^\s*//\s*(\d+)\s+([A-Z])\s+-\s+(.+?)\s*$`)
	vec4Re   = regexp.MustCompile(`vec4<f32>\(([^)]*)\)`)
	floatRe  = regexp.MustCompile(`[-+]?\d*\.?\d+(?:[eE][-+]?\d+)?`)
)

// ExtractFloat pulls the numeric literal out of a fragment, ignoring
// surrounding punctuation such as trailing commas or parentheses.
func ExtractFloat(fragment string) (float64, error) {
	m := floatRe.FindString(fragment)
	if m == "" {
		return 0, &ParseError{Fragment: fragment}
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, &ParseError{Fragment: fragment}
	}
	return v, nil
}

func parseVec4Components(src string) ([]float64, error) {
	parts := strings.Split(src, ",")
	floats := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := ExtractFloat(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		floats = append(floats, v)
	}
	return floats, nil
}

// ParseSharedWGSL scans shader source for table rows and extracts each
// row's param1 value. A row is a header comment followed (blank lines
// aside) by an array<vec4<f32>,6> literal on a single line; a header
// with another comment before its data line is abandoned.
//
// The main scan resumes one line past each header, not past its data
// line, so data lines are re-tested as header candidates for packed
// adjacent rows.
func ParseSharedWGSL(src string) (map[int]Param1Entry, error) {
	lines := strings.Split(src, "\n")
	entries := make(map[int]Param1Entry)

	for i := 0; i < len(lines); i++ {
		m := headerRe.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			// \d+ guarantees digits; only an absurdly long index gets here.
			return nil, &MalformedTableError{Index: -1, Detail: "index out of range: " + m[1]}
		}

		var dataLine string
		for j := i + 1; j < len(lines); j++ {
			s := strings.TrimSpace(lines[j])
			if s == "" {
				continue
			}
			if strings.HasPrefix(s, "//") {
				break
			}
			if strings.Contains(s, vec4ArrayMarker) {
				dataLine = s
				break
			}
		}
		if dataLine == "" {
			continue
		}

		groups := vec4Re.FindAllStringSubmatch(dataLine, -1)
		if len(groups) < 4 {
			return nil, &MalformedTableError{Index: idx, Detail: "expected at least 4 vec4 groups: " + dataLine}
		}
		d3, err := parseVec4Components(groups[3][1])
		if err != nil {
			return nil, err
		}
		if len(d3) != 4 {
			return nil, &MalformedTableError{Index: idx, Detail: "expected exactly 4 vec4 components: " + groups[3][1]}
		}

		entries[idx] = Param1Entry{Index: idx, Code: m[2], Name: m[3], Param1: d3[3]}
	}

	return entries, nil
}

// ParseSharedWGSLFile reads a shader source file and parses its table.
func ParseSharedWGSLFile(path string) (map[int]Param1Entry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read shader table %q: %w", path, err)
	}
	return ParseSharedWGSL(string(b))
}
