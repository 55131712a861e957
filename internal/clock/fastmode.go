package clock

import (
	gomath "math"
	"time"
)

// Fast mode compresses a full 24-hour sweep of the hour indicator into one
// real minute. Minutes follow the accelerated hour continuously; seconds
// stay on wall-clock time either way.
//
// Outer-ring hour indicators are heavy enough that sweeping them is
// distracting, so in fast mode the ring pauses on whole hours: while the
// accelerated minute hand is in the top sector of its dial the ring snaps
// to the nearest whole hour instead of sweeping.
const (
	// pauseFloorMinutes and pauseCeilMinutes bound the snap window in
	// fast-clock minutes. Below the floor the ring holds the hour just
	// passed; above the ceiling it jumps ahead to the next one.
	pauseFloorMinutes = 12
	pauseCeilMinutes  = 48
)

// FastHour returns the accelerated hour-of-day for a wall-clock instant:
// the seconds within the current real minute, scaled so that one real
// minute covers 24 fast hours.
func FastHour(now time.Time) float64 {
	sec := float64(now.Second()) + float64(now.Nanosecond())/1e9
	return 24 * sec / 60
}

// SnapHour applies the outer-ring pause window to an accelerated hour
// value. Inside the window the value snaps to the nearest whole hour;
// outside it passes through unchanged, so shapes that sweep smoothly
// can share the same raw hour.
func SnapHour(rawHour float64) float64 {
	whole, frac := gomath.Modf(rawHour)
	fastMinutes := frac * 60
	switch {
	case fastMinutes < pauseFloorMinutes:
		return gomath.Mod(whole, 24)
	case fastMinutes > pauseCeilMinutes:
		return gomath.Mod(whole+1, 24)
	default:
		return rawHour
	}
}

// MinutesOf returns the minute-hand value in [0, 60) for an hour-of-day
// value, i.e. the fractional hour scaled to the minute dial.
func MinutesOf(hour float64) float64 {
	_, frac := gomath.Modf(hour)
	return frac * 60
}
