package parser

import (
	"fmt"
	"math"
	"time"
)

// DefaultIntervalMinutes is the rounding interval for reports and exports.
const DefaultIntervalMinutes = 15

// RoundToInterval rounds d to the nearest multiple of intervalMinutes.
// A remainder of exactly half an interval rounds up. Negative durations
// clamp to zero; a non-positive interval leaves d unchanged.
func RoundToInterval(d time.Duration, intervalMinutes int) time.Duration {
	if intervalMinutes <= 0 {
		return d
	}
	if d <= 0 {
		return 0
	}

	step := time.Duration(intervalMinutes) * time.Minute
	q, rem := d/step, d%step
	if rem*2 >= step {
		q++
	}
	return q * step
}

// FormatHMS formats d as "HH:MM:SS" using whole seconds.
func FormatHMS(d time.Duration) string {
	if d < 0 {
		return "-" + FormatHMS(-d)
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}

// FormatHM formats d as "HH:MM", dropping seconds.
func FormatHM(d time.Duration) string {
	if d < 0 {
		return "-" + FormatHM(-d)
	}
	total := int64(d / time.Minute)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// DecimalHours returns d rounded to the interval, in hours with two decimals.
func DecimalHours(d time.Duration, intervalMinutes int) float64 {
	rounded := RoundToInterval(d, intervalMinutes)
	return math.Round(rounded.Hours()*100) / 100
}
