package timedata

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	testCases := []struct {
		name     string
		value    float64
		decimals int
		expected float64
	}{
		{"default precision", 1.23456, 2, 1.23},
		{"rounds up", 1.23456789, 4, 1.2346},
		{"zero decimals", 123.456, 0, 123},
		{"exact tie rounds away from zero", 0.125, 2, 0.13},
		{"exact negative tie rounds away from zero", -2.5, 0, -3},
		{"positive tie at integer precision", 2.5, 0, 3},
		{"binary value just below tie", 1.005, 2, 1},
		{"binary value just below tie again", 1.555, 2, 1.55},
		{"small value rounds to zero", 0.004, 2, 0},
		{"large integer is unchanged", 31536000000, 2, 31536000000},
		{"negative clamps to zero decimals", 123.456, -1, 123},
		{"excessive precision is clamped", 0.1, 500, 0.1},
		{"beyond fixed point limit", 1.5e21, 0, 1.5e21},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Round(tc.value, tc.decimals))
		})
	}
}

func TestRound_SignedZero(t *testing.T) {
	t.Run("negative value rounding to zero keeps its sign", func(t *testing.T) {
		result := Round(-0.001, 2)
		assert.Equal(t, 0.0, result)
		assert.True(t, math.Signbit(result))
	})

	t.Run("positive value rounding to zero is positive zero", func(t *testing.T) {
		result := Round(0.001, 2)
		assert.False(t, math.Signbit(result))
	})

	t.Run("negative zero input becomes positive zero", func(t *testing.T) {
		result := Round(math.Copysign(0, -1), 2)
		assert.False(t, math.Signbit(result))
	})
}

func TestRound_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(Round(math.NaN(), 2)))
	assert.True(t, math.IsInf(Round(math.Inf(1), 2), 1))
	assert.True(t, math.IsInf(Round(math.Inf(-1), 2), -1))
}

func TestRound_HugeMagnitudeUnchanged(t *testing.T) {
	assert.Equal(t, 1.5e21, Round(1.5e21, 2))
	assert.Equal(t, -3.1536e30, Round(-3.1536e30, 0))
	assert.Equal(t, 1e20+16384, Round(1e20+16384, 2))
}

func TestRound_PrecisionNeverLosesAccuracy(t *testing.T) {
	values := []float64{1.0 / 3, 2.0 / 3, 0.0119047619, 123.456789, -98.7654321, 1e-7}

	for _, v := range values {
		previousErr := math.Inf(1)
		for decimals := 0; decimals <= 12; decimals++ {
			err := math.Abs(Round(v, decimals) - v)
			assert.LessOrEqual(t, err, 0.5*math.Pow10(-decimals)+1e-15, "value %v at %d decimals", v, decimals)
			assert.LessOrEqual(t, err, previousErr+1e-15, "value %v at %d decimals", v, decimals)
			previousErr = err
		}
	}
}

func TestFixedPoint(t *testing.T) {
	assert.Equal(t, "15", fixedPoint("15", 0))
	assert.Equal(t, "0.03", fixedPoint("3", 2))
	assert.Equal(t, "0.00", fixedPoint("0", 2))
	assert.Equal(t, "1500.00", fixedPoint("150000", 2))
}
