// Package timedata converts a duration expressed in one unit into the
// equivalent duration in milliseconds, seconds, minutes, hours, days, weeks
// and years at once, rounded to a fixed number of decimal places.
//
// A year is always 365 days. Months and leap years are not modeled.
package timedata

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit is returned when a unit name is not one of the seven supported units
var ErrUnknownUnit = errors.New("timedata: unknown unit")

// Unit identifies the scale a quantity is expressed in
type Unit string

// Supported units
const (
	Millisecond Unit = "ms"
	Second      Unit = "s"
	Minute      Unit = "m"
	Hour        Unit = "h"
	Day         Unit = "d"
	Week        Unit = "w"
	Year        Unit = "y"
)

// units lists every unit from the smallest to the largest scale
var units = [...]Unit{Millisecond, Second, Minute, Hour, Day, Week, Year}

var unitNames = map[Unit]string{
	Millisecond: "millisecond",
	Second:      "second",
	Minute:      "minute",
	Hour:        "hour",
	Day:         "day",
	Week:        "week",
	Year:        "year",
}

// Units returns all supported units ordered from milliseconds to years
func Units() []Unit {
	out := make([]Unit, len(units))
	copy(out, units[:])
	return out
}

// Name returns the long singular name of the unit, e.g. "hour"
func (u Unit) Name() string {
	return unitNames[u]
}

// Valid reports whether u is one of the supported units
func (u Unit) Valid() bool {
	_, ok := unitNames[u]
	return ok
}

func (u Unit) String() string {
	return string(u)
}

// index returns the position of u in units, or -1
func (u Unit) index() int {
	for i, candidate := range units {
		if candidate == u {
			return i
		}
	}
	return -1
}

// ParseUnit resolves a short ("ms") or long ("milliseconds") unit name.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseUnit(s string) (Unit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if u := Unit(name); u.Valid() {
		return u, nil
	}
	for u, long := range unitNames {
		if name == long || name == long+"s" {
			return u, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// TimeData holds one duration expressed in all seven units.
// Each field is rounded independently to the precision requested by the caller.
type TimeData struct {
	Ms float64 `json:"ms"`
	S  float64 `json:"s"`
	M  float64 `json:"m"`
	H  float64 `json:"h"`
	D  float64 `json:"d"`
	W  float64 `json:"w"`
	Y  float64 `json:"y"`
}

// Get returns the field for the given unit. Unknown units yield 0.
func (t TimeData) Get(u Unit) float64 {
	switch u {
	case Millisecond:
		return t.Ms
	case Second:
		return t.S
	case Minute:
		return t.M
	case Hour:
		return t.H
	case Day:
		return t.D
	case Week:
		return t.W
	case Year:
		return t.Y
	default:
		return 0
	}
}

func fromValues(v [len(units)]float64) TimeData {
	return TimeData{Ms: v[0], S: v[1], M: v[2], H: v[3], D: v[4], W: v[5], Y: v[6]}
}
