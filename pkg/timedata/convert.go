package timedata

import "fmt"

// Milliseconds per unit. A year is fixed at 365 days.
const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
	msPerWeek   = 7 * msPerDay
	msPerYear   = 365 * msPerDay

	// WeeksPerYear approximates 365/7 and is only used between weeks and years
	WeeksPerYear = 52.1429
)

var msPerUnit = [len(units)]float64{
	msPerSecond / msPerSecond,
	msPerSecond,
	msPerMinute,
	msPerHour,
	msPerDay,
	msPerWeek,
	msPerYear,
}

// stepFactor[i] is how many of the next smaller unit make one unit i.
// A year steps straight down to days.
var stepFactor = [len(units)]float64{0, 1000, 60, 60, 24, 7, 365}

// scale converts a quantity from one unit into another. Scaling down to a
// larger unit is one division by the exact combined divisor. Scaling up
// multiplies through each intermediate unit in turn, so every step rounds
// the way a chained product such as years * 365 * 24 * 60 * 60 * 1000 does.
type scale struct {
	factors []float64
	divisor float64
}

func (s scale) apply(quantity float64) float64 {
	if s.divisor != 0 {
		return quantity / s.divisor
	}
	for _, f := range s.factors {
		quantity *= f
	}
	return quantity
}

// conversionTable[from][to] holds the scale between every pair of units
var conversionTable = buildConversionTable()

func buildConversionTable() [len(units)][len(units)]scale {
	var table [len(units)][len(units)]scale
	for from := range units {
		for to := range units {
			switch {
			case from == to:
				table[from][to] = scale{}
			case units[from] == Week && units[to] == Year:
				table[from][to] = scale{divisor: WeeksPerYear}
			case units[from] == Year && units[to] == Week:
				table[from][to] = scale{factors: []float64{WeeksPerYear}}
			case from > to:
				table[from][to] = scale{factors: steps(from, to)}
			default:
				table[from][to] = scale{divisor: msPerUnit[to] / msPerUnit[from]}
			}
		}
	}
	return table
}

// steps lists the multipliers that walk from a larger unit down to a smaller one
func steps(from, to int) []float64 {
	var factors []float64
	for cur := from; cur > to; {
		factors = append(factors, stepFactor[cur])
		if units[cur] == Year {
			cur = Day.index()
		} else {
			cur--
		}
	}
	return factors
}

// Convert scales quantity, expressed in unit, into all seven units.
// decimals is optional and defaults to DefaultDecimals.
func Convert(unit Unit, quantity float64, decimals ...int) (TimeData, error) {
	from := unit.index()
	if from < 0 {
		return TimeData{}, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	return convert(from, quantity, precision(decimals)), nil
}

func convert(from int, quantity float64, decimals int) TimeData {
	var values [len(units)]float64
	for to, s := range conversionTable[from] {
		values[to] = Round(s.apply(quantity), decimals)
	}
	return fromValues(values)
}

func precision(decimals []int) int {
	if len(decimals) == 0 {
		return DefaultDecimals
	}
	return decimals[0]
}

// Ms converts milliseconds into every unit
func Ms(milliseconds float64, decimals ...int) TimeData {
	return convert(Millisecond.index(), milliseconds, precision(decimals))
}

// S converts seconds into every unit
func S(seconds float64, decimals ...int) TimeData {
	return convert(Second.index(), seconds, precision(decimals))
}

// M converts minutes into every unit
func M(minutes float64, decimals ...int) TimeData {
	return convert(Minute.index(), minutes, precision(decimals))
}

// H converts hours into every unit
func H(hours float64, decimals ...int) TimeData {
	return convert(Hour.index(), hours, precision(decimals))
}

// D converts days into every unit
func D(days float64, decimals ...int) TimeData {
	return convert(Day.index(), days, precision(decimals))
}

// W converts weeks into every unit.
// The year field divides by WeeksPerYear rather than 365/7.
func W(weeks float64, decimals ...int) TimeData {
	return convert(Week.index(), weeks, precision(decimals))
}

// Y converts years into every unit.
// The week field multiplies by WeeksPerYear rather than 365/7.
func Y(years float64, decimals ...int) TimeData {
	return convert(Year.index(), years, precision(decimals))
}
