package core

import "time"

// TimeProvider abstracts the clock used to stamp conversion records and measure latency
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
