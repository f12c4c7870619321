package conversion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/timeconv/pkg/timedata"
	mockcore "github.com/amirhossein-jamali/timeconv/mocks/port/core"
)

var fixedTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) *mockcore.MockLogger {
	logger := mockcore.NewMockLogger(t)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func newTestTimeProvider(t *testing.T) *mockcore.MockTimeProvider {
	tp := mockcore.NewMockTimeProvider(t)
	tp.On("Now").Return(fixedTime).Maybe()
	tp.On("Since", mock.Anything).Return(time.Millisecond).Maybe()
	return tp
}

func intPtr(v int) *int {
	return &v
}

func TestNewConversionService_Defaults(t *testing.T) {
	s := NewConversionService(nil, nil, nil, newTestTimeProvider(t), newTestLogger(t), Settings{})

	settings := s.Settings()
	assert.Equal(t, timedata.MaxDecimals, settings.MaxDecimals)
	assert.Equal(t, 0, settings.DefaultDecimals)
	assert.Equal(t, DefaultMaxBatchSize, settings.MaxBatchSize)
	assert.Equal(t, DefaultWorkers, settings.Workers)
	assert.False(t, s.HistoryEnabled())
}

func TestNewConversionService_InvalidDefaultPrecision(t *testing.T) {
	s := NewConversionService(nil, nil, nil, newTestTimeProvider(t), newTestLogger(t), Settings{
		DefaultDecimals: 12,
		MaxDecimals:     10,
	})

	assert.Equal(t, timedata.DefaultDecimals, s.Settings().DefaultDecimals)
	assert.Equal(t, 10, s.Settings().MaxDecimals)
}

func TestCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		unit     timedata.Unit
		quantity float64
		decimals int
		want     string
	}{
		{"integer quantity", timedata.Hour, 3, 2, "timeconv:h:3:2"},
		{"fractional quantity", timedata.Second, 1.5, 0, "timeconv:s:1.5:0"},
		{"negative quantity", timedata.Millisecond, -1500, 4, "timeconv:ms:-1500:4"},
		{"large quantity", timedata.Year, 1e22, 2, "timeconv:y:1e+22:2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CacheKey(tt.unit, tt.quantity, tt.decimals))
		})
	}
}
