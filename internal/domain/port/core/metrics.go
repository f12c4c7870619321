package core

import "time"

// Conversion sources reported to the metrics recorder
const (
	SourceComputed = "computed"
	SourceCache    = "cache"
)

// MetricsRecorder collects operational metrics about conversions
type MetricsRecorder interface {
	// ObserveConversion records one conversion for the given unit and where its result came from
	ObserveConversion(unit string, source string, duration time.Duration)
	// ObserveBatch records the size of a processed batch
	ObserveBatch(size int)
	// IncError counts a failed request by domain error code
	IncError(code int)
}
