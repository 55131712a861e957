package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagZen        = flag.Bool("zen", false, "Start in zen mode")
	flagFast       = flag.Bool("fast", false, "Run the clock at one day per minute")
	flagScheme     = flag.String("scheme", "", "Tick coloring scheme")
	flagSegments   = flag.Int("segments", 0, "Strip cross-sections per revolution")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Display.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Display.Fullscreen = true
	}
	if *flagZen {
		cfg.Clock.Zen = true
	}
	if *flagFast {
		cfg.Clock.Fast = true
	}
	if *flagScheme != "" {
		cfg.Clock.TickScheme = *flagScheme
	}
	if *flagSegments > 0 {
		cfg.Geometry.Segments = *flagSegments
	}
	if *flagWidth > 0 {
		cfg.Display.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Display.Height = *flagHeight
	}
}
