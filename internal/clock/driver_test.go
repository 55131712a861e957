package clock

import (
	gomath "math"
	"testing"
	"time"
)

func buildDriver(t *testing.T, hour Shape) *Driver {
	t.Helper()
	return NewDriver(buildMapper(t, 360), hour, ShapeSphere, ShapeSphere)
}

func TestStepRealTime(t *testing.T) {
	d := buildDriver(t, ShapeSphere)
	now := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)

	state := d.Step(now, false, true)
	if state.WholeHour != 15 {
		t.Errorf("WholeHour = %d, want 15", state.WholeHour)
	}
	if !state.ShowHour {
		t.Error("ShowHour = false, want true")
	}

	// 15:30 is hour 15.5; the indicator must sit on the hour point.
	want := d.mapper.HourPosition(15.5)
	if state.Hour.Position.Distance(want.Position) > 1e-5 {
		t.Errorf("hour indicator at %v, want %v", state.Hour.Position, want.Position)
	}

	// Half past puts the minute hand at the bottom of the dial.
	minute := d.mapper.DialPosition(30, 60)
	if state.Minute.Position.Distance(minute.Position) > 1e-5 {
		t.Errorf("minute indicator at %v, want %v", state.Minute.Position, minute.Position)
	}

	// Zero seconds puts the second hand at the top.
	second := d.mapper.DialPosition(0, 60)
	if state.Second.Position.Distance(second.Position) > 1e-5 {
		t.Errorf("second indicator at %v, want %v", state.Second.Position, second.Position)
	}
}

func TestStepFastMode(t *testing.T) {
	d := buildDriver(t, ShapeSphere)
	// 45 real seconds into the minute is fast hour 18.
	now := time.Date(2024, 6, 1, 9, 12, 45, 0, time.UTC)

	state := d.Step(now, true, true)
	want := d.mapper.HourPosition(18)
	if state.Hour.Position.Distance(want.Position) > 1e-5 {
		t.Errorf("fast hour indicator at %v, want hour 18 at %v", state.Hour.Position, want.Position)
	}
	if state.WholeHour != 18 {
		t.Errorf("WholeHour = %d, want 18", state.WholeHour)
	}

	// Seconds stay on the wall clock in fast mode.
	second := d.mapper.DialPosition(45, 60)
	if state.Second.Position.Distance(second.Position) > 1e-5 {
		t.Errorf("second indicator at %v, want wall-clock %v", state.Second.Position, second.Position)
	}
}

func TestStepFastOuterRingPauses(t *testing.T) {
	d := buildDriver(t, ShapeOuterRing)

	// 45.25s is fast hour 18.1: six fast-minutes past, inside the pause
	// window, so the ring still indicates 18 exactly.
	now := time.Date(2024, 6, 1, 9, 12, 45, 250_000_000, time.UTC)
	state := d.Step(now, true, true)

	held := OrientOnEdge(ShapeOuterRing, d.mapper.HourPosition(18), HourRadius)
	if state.Hour.Position.Distance(held.Position) > 1e-5 {
		t.Errorf("ring at %v, want held at hour 18 %v", state.Hour.Position, held.Position)
	}

	// The same instant with a sweeping shape is past 18.
	sweep := buildDriver(t, ShapeSphere).Step(now, true, true)
	at18 := d.mapper.HourPosition(18)
	if sweep.Hour.Position.Distance(at18.Position) < 1e-5 {
		t.Error("sweeping shape also held at 18, want it past the hour")
	}
}

func TestStepFastOuterRingSweepsMidHour(t *testing.T) {
	d := buildDriver(t, ShapeOuterRing)

	// 46.25s is fast hour 18.5, well outside the pause window.
	now := time.Date(2024, 6, 1, 9, 12, 46, 250_000_000, time.UTC)
	state := d.Step(now, true, true)

	want := OrientOnEdge(ShapeOuterRing, d.mapper.HourPosition(18.5), HourRadius)
	if state.Hour.Position.Distance(want.Position) > 1e-4 {
		t.Errorf("ring at %v, want sweeping at 18.5 %v", state.Hour.Position, want.Position)
	}
}

func TestStepHideHours(t *testing.T) {
	d := buildDriver(t, ShapeSphere)
	state := d.Step(time.Now(), false, false)
	if state.ShowHour {
		t.Error("ShowHour = true, want false")
	}
}

func TestStepWholeHourAdvances(t *testing.T) {
	d := buildDriver(t, ShapeSphere)
	before := d.Step(time.Date(2024, 6, 1, 7, 59, 59, 0, time.UTC), false, true)
	after := d.Step(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC), false, true)
	if before.WholeHour != 7 || after.WholeHour != 8 {
		t.Errorf("WholeHour = %d then %d, want 7 then 8", before.WholeHour, after.WholeHour)
	}
	if gomath.Abs(float64(before.Hour.Position.Distance(after.Hour.Position))) > 0.05 {
		t.Error("hour indicator jumped across the hour boundary")
	}
}
