package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Length is a CSS-like dimension: a magnitude plus a unit.
type Length struct {
	Value float64
	Unit  string
}

// Longest units first so "rem" is not consumed by the "em" suffix.
var lengthUnits = []string{"rem", "px", "em", "vh", "vw", "%"}

// ParseLength parses values like "12px", "1.5em", "100%". A bare "0" is
// accepted without a unit.
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Length{}, fmt.Errorf("empty length value")
	}
	if s == "0" {
		return Length{Unit: "px"}, nil
	}
	for _, unit := range lengthUnits {
		if !strings.HasSuffix(s, unit) {
			continue
		}
		num := strings.TrimSuffix(s, unit)
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return Length{}, fmt.Errorf("malformed length %q", s)
		}
		return Length{Value: v, Unit: unit}, nil
	}
	return Length{}, fmt.Errorf("length %q has no recognized unit", s)
}

func (l Length) String() string {
	if l.Value == float64(int64(l.Value)) {
		return strconv.FormatInt(int64(l.Value), 10) + l.Unit
	}
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + l.Unit
}

// Edges holds the four sides of a spacing or border declaration.
type Edges struct {
	Top    Length
	Right  Length
	Bottom Length
	Left   Length
}

// ParseEdges expands CSS shorthand: one to four space-separated lengths,
// following the top/right/bottom/left convention.
func ParseEdges(s string) (Edges, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 4 {
		return Edges{}, fmt.Errorf("edge shorthand needs 1-4 values, got %d", len(fields))
	}
	parsed := make([]Length, len(fields))
	for i, f := range fields {
		l, err := ParseLength(f)
		if err != nil {
			return Edges{}, err
		}
		parsed[i] = l
	}
	switch len(parsed) {
	case 1:
		return Edges{parsed[0], parsed[0], parsed[0], parsed[0]}, nil
	case 2:
		return Edges{parsed[0], parsed[1], parsed[0], parsed[1]}, nil
	case 3:
		return Edges{parsed[0], parsed[1], parsed[2], parsed[1]}, nil
	default:
		return Edges{parsed[0], parsed[1], parsed[2], parsed[3]}, nil
	}
}

func (e Edges) String() string {
	return strings.Join([]string{
		e.Top.String(), e.Right.String(), e.Bottom.String(), e.Left.String(),
	}, " ")
}
