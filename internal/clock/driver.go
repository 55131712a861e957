package clock

import (
	"time"
)

// Driver turns wall-clock instants into per-frame indicator state. It is
// pure with respect to rendering: the app layer feeds its output to the
// scene.
type Driver struct {
	mapper *Mapper

	HourShape   Shape
	MinuteShape Shape
	SecondShape Shape
}

// NewDriver builds a driver with the given indicator shapes.
func NewDriver(m *Mapper, hour, minute, second Shape) *Driver {
	return &Driver{
		mapper:      m,
		HourShape:   hour,
		MinuteShape: minute,
		SecondShape: second,
	}
}

// FrameState is one frame's worth of indicator placements.
type FrameState struct {
	Hour   Placement
	Minute Placement
	Second Placement

	// ShowHour is false when the hour indicator is hidden (zen mode or
	// the hour toggle).
	ShowHour bool

	// WholeHour is the integer hour-of-day currently indicated, used to
	// detect hour boundaries for the chime.
	WholeHour int
}

// Step computes the frame state for an instant. In fast mode the hour
// and minute run on the accelerated clock; seconds always track real
// time.
func (d *Driver) Step(now time.Time, fast, showHours bool) FrameState {
	var rawHour float64
	if fast {
		rawHour = FastHour(now)
	} else {
		rawHour = float64(now.Hour()) +
			float64(now.Minute())/60 +
			(float64(now.Second())+float64(now.Nanosecond())/1e9)/3600
	}

	hourValue := rawHour
	if fast && d.HourShape == ShapeOuterRing {
		hourValue = SnapHour(rawHour)
	}

	minutes := MinutesOf(rawHour)
	seconds := float64(now.Second()) + float64(now.Nanosecond())/1e9

	hourPt := d.mapper.HourPosition(hourValue)
	hour := OrientOnEdge(d.HourShape, hourPt, HourRadius)
	if d.HourShape == ShapeOuterRing && SpinActive(minutes) {
		hour = ApplySpin(hour, hourPt.Outward, now, fast)
	}

	minute := OrientOnDial(d.mapper.DialPosition(minutes, 60))
	second := OrientOnDial(d.mapper.DialPosition(seconds, 60))

	return FrameState{
		Hour:      hour,
		Minute:    minute,
		Second:    second,
		ShowHour:  showHours,
		WholeHour: int(hourValue) % 24,
	}
}
