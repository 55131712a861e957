// Package config handles clock configuration loading and management.
package config

import "fmt"

// Config holds all application settings.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Clock    ClockConfig    `yaml:"clock"`
	Geometry GeometryConfig `yaml:"geometry"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DisplayConfig holds window and rendering settings.
type DisplayConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ClockConfig holds the clock-face settings.
type ClockConfig struct {
	TimeStyle    string `yaml:"time_style"`
	ShapeHours   string `yaml:"shape_hours"`
	ShapeMinutes string `yaml:"shape_minutes"`
	ShapeSeconds string `yaml:"shape_seconds"`
	TickScheme   string `yaml:"tick_scheme"`
	Rotation     bool   `yaml:"rotation"` // slow auto-rotation of the strip
	ShowHours    bool   `yaml:"show_hours"`
	Zen          bool   `yaml:"zen"`
	Fast         bool   `yaml:"fast"`
	Chime        bool   `yaml:"chime"`
}

// GeometryConfig holds the strip tessellation parameters.
type GeometryConfig struct {
	Segments  int     `yaml:"segments"`
	Length    float32 `yaml:"length"`
	Thickness float32 `yaml:"thickness"`
	Radius    float32 `yaml:"radius"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Clock: ClockConfig{
			TimeStyle:    "ampm",
			ShapeHours:   "ring",
			ShapeMinutes: "ring",
			ShapeSeconds: "sphere",
			TickScheme:   "standard",
			Rotation:     true,
			ShowHours:    true,
			Zen:          false,
			Fast:         false,
			Chime:        false,
		},
		Geometry: GeometryConfig{
			Segments:  360,
			Length:    1.0,
			Thickness: 0.1,
			Radius:    3.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate rejects settings the geometry cannot tolerate.
func (c *Config) Validate() error {
	if c.Geometry.Segments < 3 {
		return fmt.Errorf("geometry.segments must be at least 3, got %d", c.Geometry.Segments)
	}
	if c.Geometry.Length <= 0 || c.Geometry.Thickness <= 0 || c.Geometry.Radius <= 0 {
		return fmt.Errorf("geometry dimensions must be positive")
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	return nil
}

// Normalize falls enum-valued settings back to their defaults when the
// configured name is unknown, returning a warning per replacement.
func (c *Config) Normalize() []string {
	var warnings []string
	def := Default()

	check := func(field *string, fallback string, known func(string) bool) {
		if !known(*field) {
			warnings = append(warnings, fmt.Sprintf("unknown value %q, using %q", *field, fallback))
			*field = fallback
		}
	}

	check(&c.Clock.TimeStyle, def.Clock.TimeStyle, func(s string) bool {
		return s == "ampm" || s == "24"
	})
	shapeKnown := func(s string) bool {
		switch s {
		case "sphere", "disc", "ring", "outer-ring":
			return true
		}
		return false
	}
	check(&c.Clock.ShapeHours, def.Clock.ShapeHours, shapeKnown)
	check(&c.Clock.ShapeMinutes, def.Clock.ShapeMinutes, func(s string) bool {
		return shapeKnown(s) && s != "outer-ring"
	})
	check(&c.Clock.ShapeSeconds, def.Clock.ShapeSeconds, func(s string) bool {
		return s == "sphere" || s == "disc"
	})
	check(&c.Clock.TickScheme, def.Clock.TickScheme, func(s string) bool {
		switch s {
		case "standard", "minimal", "alternating", "alternating_ticks":
			return true
		}
		return false
	})
	check(&c.Logging.Level, def.Logging.Level, func(s string) bool {
		switch s {
		case "debug", "info", "warn", "error":
			return true
		}
		return false
	})

	return warnings
}
