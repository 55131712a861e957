package app

import (
	"testing"

	"github.com/mobiusclock/mobius/internal/clock"
	"github.com/mobiusclock/mobius/internal/config"
	"github.com/mobiusclock/mobius/internal/strip"
)

func newSettings(t *testing.T) *Settings {
	t.Helper()
	cfg := config.Default()
	if warnings := cfg.Normalize(); len(warnings) != 0 {
		t.Fatalf("default config warnings: %v", warnings)
	}
	return NewSettings(cfg)
}

func TestNewSettingsFromDefaults(t *testing.T) {
	s := newSettings(t)

	if s.TickScheme != strip.TickStandard {
		t.Errorf("tick scheme = %v, want standard", s.TickScheme)
	}
	if s.HourShape != clock.ShapeRing || s.MinuteShape != clock.ShapeRing || s.SecondShape != clock.ShapeSphere {
		t.Errorf("shapes = %v/%v/%v, want ring/ring/sphere", s.HourShape, s.MinuteShape, s.SecondShape)
	}
	if s.Zen() {
		t.Error("zen = true, want false")
	}
	if !s.ShowHours || !s.Rotation {
		t.Error("show hours and rotation should default on")
	}
}

func TestZenEnterForcesQuietState(t *testing.T) {
	s := newSettings(t)
	s.Fast = true

	s.ToggleZen()

	if !s.Zen() {
		t.Fatal("zen = false after toggle")
	}
	if s.TickScheme != strip.TickMinimal {
		t.Errorf("tick scheme = %v, want minimal", s.TickScheme)
	}
	if s.ShowHours {
		t.Error("show hours = true in zen")
	}
	if s.Fast {
		t.Error("fast = true in zen")
	}
	if !s.StripDirty {
		t.Error("strip not marked dirty after scheme change")
	}
}

func TestZenExitRestoresSnapshot(t *testing.T) {
	s := newSettings(t)
	s.CycleTickScheme() // minimal
	s.CycleTickScheme() // alternating
	s.Fast = true
	s.StripDirty = false

	s.ToggleZen()
	s.ToggleZen()

	if s.Zen() {
		t.Fatal("zen = true after second toggle")
	}
	if s.TickScheme != strip.TickAlternating {
		t.Errorf("tick scheme = %v, want alternating restored", s.TickScheme)
	}
	if !s.ShowHours {
		t.Error("show hours not restored")
	}
	if !s.Fast {
		t.Error("fast not restored")
	}
	if !s.StripDirty {
		t.Error("strip not marked dirty after restore changed the scheme")
	}
}

func TestZenExitWithMinimalSchemeSkipsRebuild(t *testing.T) {
	s := newSettings(t)
	s.CycleTickScheme() // minimal
	s.StripDirty = false

	s.ToggleZen()
	if s.StripDirty {
		t.Error("entering zen from minimal marked strip dirty")
	}
	s.ToggleZen()
	if s.StripDirty {
		t.Error("exiting zen back to minimal marked strip dirty")
	}
}

func TestZenPinsToggles(t *testing.T) {
	s := newSettings(t)
	s.ToggleZen()

	s.CycleTickScheme()
	if s.TickScheme != strip.TickMinimal {
		t.Error("scheme cycled inside zen")
	}
	s.ToggleFast()
	if s.Fast {
		t.Error("fast toggled inside zen")
	}
	s.ToggleShowHours()
	if s.ShowHours {
		t.Error("show hours toggled inside zen")
	}
}

func TestCycleTickSchemeOrder(t *testing.T) {
	s := newSettings(t)
	want := []strip.TickScheme{
		strip.TickMinimal,
		strip.TickAlternating,
		strip.TickAlternatingTicks,
		strip.TickStandard,
	}
	for _, w := range want {
		s.StripDirty = false
		s.CycleTickScheme()
		if s.TickScheme != w {
			t.Fatalf("scheme = %v, want %v", s.TickScheme, w)
		}
		if !s.StripDirty {
			t.Fatal("cycle did not mark strip dirty")
		}
	}
}

func TestCycleShapesMarkDirty(t *testing.T) {
	s := newSettings(t)

	s.CycleHourShape()
	if s.HourShape != clock.ShapeOuterRing || !s.HourDirty {
		t.Errorf("hour shape = %v dirty=%v, want outer-ring and dirty", s.HourShape, s.HourDirty)
	}
	s.CycleHourShape()
	if s.HourShape != clock.ShapeSphere {
		t.Errorf("hour shape = %v, want wrap to sphere", s.HourShape)
	}

	s.CycleSecondShape()
	if s.SecondShape != clock.ShapeDisc || !s.SecondDirty {
		t.Errorf("second shape = %v dirty=%v, want disc and dirty", s.SecondShape, s.SecondDirty)
	}
	s.CycleSecondShape()
	if s.SecondShape != clock.ShapeSphere {
		t.Errorf("second shape = %v, want wrap to sphere", s.SecondShape)
	}
}

func TestToggleTimeStyle(t *testing.T) {
	s := newSettings(t)
	s.ToggleTimeStyle()
	if s.TimeStyle != clock.TimeStyle24 {
		t.Errorf("time style = %v, want 24", s.TimeStyle)
	}
	s.ToggleTimeStyle()
	if s.TimeStyle != clock.TimeStyleAMPM {
		t.Errorf("time style = %v, want ampm", s.TimeStyle)
	}
}

func TestApplyToRoundTrip(t *testing.T) {
	s := newSettings(t)
	s.CycleTickScheme() // minimal
	s.CycleHourShape()  // outer-ring
	s.ToggleTimeStyle() // 24h
	s.ToggleRotation()
	s.Fast = true

	cfg := config.Default()
	s.ApplyTo(cfg)

	if cfg.Clock.TickScheme != string(strip.TickMinimal) {
		t.Errorf("saved tick scheme = %q, want minimal", cfg.Clock.TickScheme)
	}
	if cfg.Clock.ShapeHours != string(clock.ShapeOuterRing) {
		t.Errorf("saved hour shape = %q, want outer-ring", cfg.Clock.ShapeHours)
	}
	if cfg.Clock.TimeStyle != string(clock.TimeStyle24) {
		t.Errorf("saved time style = %q, want 24", cfg.Clock.TimeStyle)
	}
	if cfg.Clock.Rotation {
		t.Error("saved rotation = true, want false")
	}
	if !cfg.Clock.Fast {
		t.Error("saved fast = false, want true")
	}

	// A fresh Settings built from the saved config matches the live one.
	if warnings := cfg.Normalize(); len(warnings) != 0 {
		t.Fatalf("saved config warnings: %v", warnings)
	}
	restored := NewSettings(cfg)
	if restored.TickScheme != s.TickScheme || restored.HourShape != s.HourShape ||
		restored.TimeStyle != s.TimeStyle || restored.Fast != s.Fast {
		t.Error("settings rebuilt from saved config do not match")
	}
}

func TestApplyToInZenPersistsSnapshot(t *testing.T) {
	s := newSettings(t)
	s.CycleTickScheme() // minimal
	s.CycleTickScheme() // alternating
	s.Fast = true
	s.ToggleZen()

	cfg := config.Default()
	s.ApplyTo(cfg)

	if !cfg.Clock.Zen {
		t.Error("saved zen = false, want true")
	}
	if cfg.Clock.TickScheme != string(strip.TickAlternating) {
		t.Errorf("saved tick scheme = %q, want suppressed alternating", cfg.Clock.TickScheme)
	}
	if !cfg.Clock.ShowHours {
		t.Error("saved show hours = false, want suppressed true")
	}
	if !cfg.Clock.Fast {
		t.Error("saved fast = false, want suppressed true")
	}
}

func TestZenFromConfigStart(t *testing.T) {
	cfg := config.Default()
	cfg.Clock.Zen = true
	s := NewSettings(cfg)

	if !s.Zen() {
		t.Fatal("zen = false, want true from config")
	}
	if s.TickScheme != strip.TickMinimal || s.ShowHours {
		t.Error("zen start did not force quiet state")
	}

	s.ToggleZen()
	if s.TickScheme != strip.TickStandard || !s.ShowHours {
		t.Error("exiting config-started zen did not restore config state")
	}
}
