package mpdparser

import (
	"time"
)

// TLP2Duration converts timestamp with timescale to time.Duration
func TLP2Duration(pts int64, timescale uint64) time.Duration {
	secs := pts / int64(timescale)
	nsecs := (pts % int64(timescale)) * 1000000000 / int64(timescale)
	return time.Duration(secs)*time.Second + time.Duration(nsecs)*time.Nanosecond
}

// Duration2TLP converts a time.Duration to a timestamp in timescale units.
// Calculated in two parts to avoid overflow on large timescales.
func Duration2TLP(duration time.Duration, timescale uint64) int64 {
	secs := duration / time.Second
	nsecs := duration % time.Second * time.Nanosecond

	return int64(secs)*int64(timescale) + int64(nsecs)*int64(timescale)/int64(time.Second)
}

// RoundTo rounds a duration towards zero to a multiple of 'to'
func RoundTo(in time.Duration, to time.Duration) time.Duration {
	return in / to * to
}
