package timedata

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	// DefaultDecimals is the precision used when a converter is called without one
	DefaultDecimals = 2
	// MaxDecimals is the largest precision honored by Round
	MaxDecimals = 100

	// fixedPointLimit is the magnitude from which a fixed-point rendering has no fractional digits
	fixedPointLimit = 1e21
	// roundingPrec is wide enough to hold any float64 below fixedPointLimit scaled by 10^MaxDecimals exactly
	roundingPrec = 1024
)

var half = big.NewFloat(0.5)

// Round rounds value to the given number of decimal places.
//
// The exact binary value of the float is rendered in fixed-point notation and
// parsed back, with ties broken away from zero. A negative value whose
// magnitude rounds to zero keeps its sign, so Round(-0.001, 2) is negative
// zero. NaN, infinities and magnitudes of 1e21 or more are returned unchanged.
// decimals is clamped to [0, MaxDecimals].
func Round(value float64, decimals int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || math.Abs(value) >= fixedPointLimit {
		return value
	}
	decimals = clampDecimals(decimals)

	scaled := new(big.Float).SetPrec(roundingPrec).SetFloat64(math.Abs(value))
	scaled.Mul(scaled, new(big.Float).SetPrec(roundingPrec).SetInt(pow10(decimals)))

	n, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(roundingPrec).SetInt(n)
	frac.Sub(scaled, frac)
	if frac.Cmp(half) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	text := fixedPoint(n.String(), decimals)
	if value < 0 {
		text = "-" + text
	}

	rounded, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return value
	}
	return rounded
}

// fixedPoint inserts a decimal point so that digits has exactly decimals fractional digits
func fixedPoint(digits string, decimals int) string {
	if decimals == 0 {
		return digits
	}
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}
	point := len(digits) - decimals
	return digits[:point] + "." + digits[point:]
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func clampDecimals(decimals int) int {
	switch {
	case decimals < 0:
		return 0
	case decimals > MaxDecimals:
		return MaxDecimals
	default:
		return decimals
	}
}
