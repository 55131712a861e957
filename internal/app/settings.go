// Package app wires the strip geometry, the time core, and the engine
// into the running clock.
package app

import (
	"github.com/mobiusclock/mobius/internal/clock"
	"github.com/mobiusclock/mobius/internal/config"
	"github.com/mobiusclock/mobius/internal/strip"
)

// Shape cycles per indicator. Hours may orbit outside the strip; seconds
// stay small, so only the compact shapes apply.
var (
	hourShapes   = []clock.Shape{clock.ShapeSphere, clock.ShapeDisc, clock.ShapeRing, clock.ShapeOuterRing}
	minuteShapes = []clock.Shape{clock.ShapeSphere, clock.ShapeDisc, clock.ShapeRing}
	secondShapes = []clock.Shape{clock.ShapeSphere, clock.ShapeDisc}
)

// Settings is the live, user-adjustable state. The rebuild flags tell the
// app which GPU resources are stale after a change.
type Settings struct {
	TickScheme  strip.TickScheme
	TimeStyle   clock.TimeStyle
	HourShape   clock.Shape
	MinuteShape clock.Shape
	SecondShape clock.Shape

	Rotation  bool
	ShowHours bool
	Fast      bool
	Chime     bool

	zen      bool
	snapshot zenSnapshot

	// Rebuild flags, cleared by the app after re-upload.
	StripDirty  bool
	HourDirty   bool
	MinuteDirty bool
	SecondDirty bool
}

// zenSnapshot holds the state zen mode suppresses, for exact restore.
type zenSnapshot struct {
	tickScheme strip.TickScheme
	showHours  bool
	fast       bool
}

// NewSettings builds settings from the loaded configuration. The config
// must already be normalized.
func NewSettings(cfg *config.Config) *Settings {
	scheme, _ := strip.ParseTickScheme(cfg.Clock.TickScheme)
	style, _ := clock.ParseTimeStyle(cfg.Clock.TimeStyle)
	hour, _ := clock.ParseShape(cfg.Clock.ShapeHours)
	minute, _ := clock.ParseShape(cfg.Clock.ShapeMinutes)
	second, _ := clock.ParseShape(cfg.Clock.ShapeSeconds)

	s := &Settings{
		TickScheme:  scheme,
		TimeStyle:   style,
		HourShape:   hour,
		MinuteShape: minute,
		SecondShape: second,
		Rotation:    cfg.Clock.Rotation,
		ShowHours:   cfg.Clock.ShowHours,
		Fast:        cfg.Clock.Fast,
		Chime:       cfg.Clock.Chime,
	}
	if cfg.Clock.Zen {
		s.EnterZen()
	}
	return s
}

// ApplyTo writes the live settings back into the configuration so the
// next run starts where this one left off. While zen is active the
// suppressed snapshot values are persisted, not the forced ones.
func (s *Settings) ApplyTo(cfg *config.Config) {
	scheme, showHours, fast := s.TickScheme, s.ShowHours, s.Fast
	if s.zen {
		scheme = s.snapshot.tickScheme
		showHours = s.snapshot.showHours
		fast = s.snapshot.fast
	}

	cfg.Clock.TickScheme = string(scheme)
	cfg.Clock.TimeStyle = string(s.TimeStyle)
	cfg.Clock.ShapeHours = string(s.HourShape)
	cfg.Clock.ShapeMinutes = string(s.MinuteShape)
	cfg.Clock.ShapeSeconds = string(s.SecondShape)
	cfg.Clock.Rotation = s.Rotation
	cfg.Clock.ShowHours = showHours
	cfg.Clock.Zen = s.zen
	cfg.Clock.Fast = fast
	cfg.Clock.Chime = s.Chime
}

// Zen reports whether zen mode is active.
func (s *Settings) Zen() bool {
	return s.zen
}

// ToggleZen flips zen mode, snapshotting on entry and restoring on exit.
func (s *Settings) ToggleZen() {
	if s.zen {
		s.ExitZen()
	} else {
		s.EnterZen()
	}
}

// EnterZen saves the suppressed state and forces the quiet rendition:
// minimal ticks, no hour indicators, real time.
func (s *Settings) EnterZen() {
	if s.zen {
		return
	}
	s.snapshot = zenSnapshot{
		tickScheme: s.TickScheme,
		showHours:  s.ShowHours,
		fast:       s.Fast,
	}
	s.zen = true
	if s.TickScheme != strip.TickMinimal {
		s.TickScheme = strip.TickMinimal
		s.StripDirty = true
	}
	s.ShowHours = false
	s.Fast = false
}

// ExitZen restores the state exactly as it was on entry.
func (s *Settings) ExitZen() {
	if !s.zen {
		return
	}
	s.zen = false
	if s.TickScheme != s.snapshot.tickScheme {
		s.TickScheme = s.snapshot.tickScheme
		s.StripDirty = true
	}
	s.ShowHours = s.snapshot.showHours
	s.Fast = s.snapshot.fast
}

// CycleTickScheme advances to the next tick coloring scheme. Ignored in
// zen mode, which pins the minimal scheme.
func (s *Settings) CycleTickScheme() {
	if s.zen {
		return
	}
	switch s.TickScheme {
	case strip.TickStandard:
		s.TickScheme = strip.TickMinimal
	case strip.TickMinimal:
		s.TickScheme = strip.TickAlternating
	case strip.TickAlternating:
		s.TickScheme = strip.TickAlternatingTicks
	default:
		s.TickScheme = strip.TickStandard
	}
	s.StripDirty = true
}

// CycleHourShape advances the hour indicator shape.
func (s *Settings) CycleHourShape() {
	s.HourShape = nextShape(hourShapes, s.HourShape)
	s.HourDirty = true
}

// CycleMinuteShape advances the minute indicator shape.
func (s *Settings) CycleMinuteShape() {
	s.MinuteShape = nextShape(minuteShapes, s.MinuteShape)
	s.MinuteDirty = true
}

// CycleSecondShape advances the second indicator shape.
func (s *Settings) CycleSecondShape() {
	s.SecondShape = nextShape(secondShapes, s.SecondShape)
	s.SecondDirty = true
}

// ToggleTimeStyle switches between am/pm and 24-hour labels.
func (s *Settings) ToggleTimeStyle() {
	if s.TimeStyle == clock.TimeStyle24 {
		s.TimeStyle = clock.TimeStyleAMPM
	} else {
		s.TimeStyle = clock.TimeStyle24
	}
}

// ToggleShowHours flips hour indicator visibility outside zen mode.
func (s *Settings) ToggleShowHours() {
	if s.zen {
		return
	}
	s.ShowHours = !s.ShowHours
}

// ToggleFast flips fast mode outside zen mode.
func (s *Settings) ToggleFast() {
	if s.zen {
		return
	}
	s.Fast = !s.Fast
}

// ToggleRotation flips the slow auto-rotation.
func (s *Settings) ToggleRotation() {
	s.Rotation = !s.Rotation
}

func nextShape(cycle []clock.Shape, current clock.Shape) clock.Shape {
	for i, sh := range cycle {
		if sh == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}
