package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func scrape(t *testing.T, r *PrometheusRecorder) string {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestPrometheusRecorder_Exposition(t *testing.T) {
	r := NewPrometheusRecorder()

	r.ObserveConversion("h", "computed", 2*time.Millisecond)
	r.ObserveConversion("h", "cache", time.Millisecond)
	r.ObserveConversion("h", "cache", time.Millisecond)
	r.ObserveBatch(5)
	r.IncError(4001)

	body := scrape(t, r)

	assert.Contains(t, body, `timeconv_conversions_total{source="cache",unit="h"} 2`)
	assert.Contains(t, body, `timeconv_conversions_total{source="computed",unit="h"} 1`)
	assert.Contains(t, body, `timeconv_conversion_duration_seconds_count{unit="h"} 3`)
	assert.Contains(t, body, `timeconv_batch_size_sum 5`)
	assert.Contains(t, body, `timeconv_errors_total{code="4001"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestPrometheusRecorder_RegisterDBStats(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	r := NewPrometheusRecorder()
	require.NoError(t, r.RegisterDBStats(sqlDB, "history"))
	assert.Error(t, r.RegisterDBStats(sqlDB, "history"))

	assert.Contains(t, scrape(t, r), `go_sql_max_open_connections{db_name="history"}`)
}
