package offer

import (
	"strconv"
	"strings"
)

// ParseLocation derives grid coordinates from an address of the form "x,y".
// A half that does not parse as a base-10 integer becomes NotANumber instead
// of an error; whether that should fail validation instead is an open design
// question, so the permissive behavior is kept and tested as-is.
func ParseLocation(address string) Location {
	loc := Location{X: NotANumber, Y: NotANumber}

	parts := strings.SplitN(address, ",", 2)
	loc.X = parseCoordinate(parts[0])
	if len(parts) == 2 {
		loc.Y = parseCoordinate(parts[1])
	}
	return loc
}

func parseCoordinate(raw string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return NotANumber
	}
	return v
}
