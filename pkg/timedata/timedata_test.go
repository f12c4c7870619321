package timedata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnit(t *testing.T) {
	testCases := []struct {
		input    string
		expected Unit
	}{
		{"ms", Millisecond},
		{"MS", Millisecond},
		{" millisecond ", Millisecond},
		{"milliseconds", Millisecond},
		{"s", Second},
		{"seconds", Second},
		{"m", Minute},
		{"minute", Minute},
		{"h", Hour},
		{"Hours", Hour},
		{"d", Day},
		{"days", Day},
		{"w", Week},
		{"week", Week},
		{"y", Year},
		{"years", Year},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			u, err := ParseUnit(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, u)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		for _, input := range []string{"", "month", "mss", "sec"} {
			_, err := ParseUnit(input)
			assert.ErrorIs(t, err, ErrUnknownUnit, input)
		}
	})
}

func TestUnits(t *testing.T) {
	all := Units()
	assert.Equal(t, []Unit{Millisecond, Second, Minute, Hour, Day, Week, Year}, all)

	all[0] = "changed"
	assert.Equal(t, Millisecond, Units()[0])

	assert.Equal(t, "week", Week.Name())
	assert.True(t, Year.Valid())
	assert.False(t, Unit("q").Valid())
}

func TestTimeData_Get(t *testing.T) {
	td := TimeData{Ms: 1, S: 2, M: 3, H: 4, D: 5, W: 6, Y: 7}

	for i, u := range Units() {
		assert.Equal(t, float64(i+1), td.Get(u))
	}
	assert.Equal(t, 0.0, td.Get(Unit("x")))
}

func TestTimeData_JSON(t *testing.T) {
	body, err := json.Marshal(S(180))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ms":180000,"s":180,"m":3,"h":0.05,"d":0,"w":0,"y":0}`, string(body))
}
