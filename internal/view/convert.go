package view

import (
	"fmt"
	"math"
	"time"
)

// MbpsFromBps converts a throughput in bits per second to megabits per
// second, rounded to two decimal places. Non-finite inputs propagate
// through the rounding unchanged; this is a reporting helper, not a
// validator.
func MbpsFromBps(v float64) float64 {
	return math.Round(v/1e6*100) / 100
}

// FormatFrequency renders a frequency in MHz as a display label. The value
// is labeled, not converted.
func FormatFrequency(mhz int) string {
	return fmt.Sprintf("%d Mhz", mhz)
}

// FormatTimestamp renders a timestamp in the host's local time zone.
// The output depends on the local zone and is not stable across machines.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(time.DateTime)
}
