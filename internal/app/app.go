package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/mobiusclock/mobius/internal/clock"
	"github.com/mobiusclock/mobius/internal/config"
	"github.com/mobiusclock/mobius/internal/engine/audio"
	"github.com/mobiusclock/mobius/internal/engine/camera"
	"github.com/mobiusclock/mobius/internal/engine/input"
	"github.com/mobiusclock/mobius/internal/engine/renderer"
	"github.com/mobiusclock/mobius/internal/engine/window"
	"github.com/mobiusclock/mobius/internal/logger"
	"github.com/mobiusclock/mobius/internal/strip"
	"github.com/mobiusclock/mobius/pkg/math"
)

// rotationSpeed is the auto-rotation rate in radians per second.
const rotationSpeed = 0.15

// App is the running clock application.
type App struct {
	cfg      *config.Config
	settings *Settings
	running  bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	audio    *audio.Manager

	cross  *strip.CrossSections
	mapper *clock.Mapper
	driver *clock.Driver

	stripHandle  *renderer.MeshHandle
	hourHandle   *renderer.MeshHandle
	minuteHandle *renderer.MeshHandle
	secondHandle *renderer.MeshHandle

	rotationAngle float32
	lastHour      int

	// Mouse drag state for the orbit camera.
	dragging   bool
	lastMouseX int
	lastMouseY int
}

// New creates the application: geometry first, then window and GL
// resources.
func New(cfg *config.Config) (*App, error) {
	for _, warning := range cfg.Normalize() {
		logger.Warn("config", zap.String("problem", warning))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &App{
		cfg:      cfg,
		settings: NewSettings(cfg),
		lastHour: -1,
	}

	params := strip.Params{
		Segments:  cfg.Geometry.Segments,
		Length:    cfg.Geometry.Length,
		Thickness: cfg.Geometry.Thickness,
		Radius:    cfg.Geometry.Radius,
	}
	a.cross = strip.GeneratePoints(params)
	edge := strip.BuildEdgePath(a.cross)
	a.mapper = clock.NewMapper(a.cross, edge)
	a.driver = clock.NewDriver(a.mapper, a.settings.HourShape, a.settings.MinuteShape, a.settings.SecondShape)

	logger.Info("strip generated",
		zap.Int("segments", params.Segments),
		zap.Int("edge_points", len(edge)),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Mobius Clock",
		Width:      cfg.Display.Width,
		Height:     cfg.Display.Height,
		Fullscreen: cfg.Display.Fullscreen,
		VSync:      cfg.Display.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Display.Width,
		Height: cfg.Display.Height,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := a.uploadStrip(); err != nil {
		a.Close()
		return nil, err
	}
	if err := a.uploadIndicators(); err != nil {
		a.Close()
		return nil, err
	}
	if a.settings.Zen() {
		a.renderer.SetClearColor(renderer.ZenBackground)
	}

	a.input = input.New()
	a.camera = camera.NewOrbitCamera()

	a.audio = audio.New()
	if a.settings.Chime {
		if err := a.audio.Init(); err != nil {
			logger.Warn("audio unavailable, chime disabled", zap.Error(err))
		}
	}

	logger.Info("app initialized")
	return a, nil
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting clock loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		if err := a.applyRebuilds(); err != nil {
			return fmt.Errorf("rebuild error: %w", err)
		}

		if a.settings.Rotation {
			a.rotationAngle += float32(dt) * rotationSpeed
		}

		state := a.driver.Step(now, a.settings.Fast, a.settings.ShowHours)
		a.chimeOnHourChange(state.WholeHour)
		a.render(state)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float64("dt_ms", dt*1000),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close saves the live settings back into the config and cleans up app
// resources.
func (a *App) Close() {
	logger.Info("closing app")

	a.settings.ApplyTo(a.cfg)
	if err := a.saveConfig(); err != nil {
		logger.Warn("failed to save config", zap.Error(err))
	}

	if a.audio != nil {
		a.audio.Close()
	}
	if a.renderer != nil {
		a.renderer.DeleteMesh(a.stripHandle)
		a.renderer.DeleteMesh(a.hourHandle)
		a.renderer.DeleteMesh(a.minuteHandle)
		a.renderer.DeleteMesh(a.secondHandle)
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// saveConfig persists the config to the path it was loaded from, or the
// user's config directory when none was given.
func (a *App) saveConfig() error {
	if path := config.ConfigPath(); path != "" {
		return a.cfg.SaveTo(path)
	}
	return a.cfg.Save()
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.renderer.Resize(event.Width, event.Height)

		case input.EventMouseDown:
			if event.Button == sdl.BUTTON_LEFT {
				a.dragging = true
				a.lastMouseX = event.MouseX
				a.lastMouseY = event.MouseY
			}

		case input.EventMouseUp:
			if event.Button == sdl.BUTTON_LEFT {
				a.dragging = false
			}

		case input.EventMouseMove:
			if a.dragging {
				dx := float32(event.MouseX - a.lastMouseX)
				dy := float32(event.MouseY - a.lastMouseY)
				a.camera.HandleDrag(dx, dy)
				a.lastMouseX = event.MouseX
				a.lastMouseY = event.MouseY
			}

		case input.EventMouseWheel:
			a.camera.HandleZoom(float32(event.WheelY))

		case input.EventKeyDown:
			a.handleKey(event.Key)
		}
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_Q:
		a.running = false
	case sdl.SCANCODE_S:
		a.settings.CycleTickScheme()
	case sdl.SCANCODE_H:
		a.settings.CycleHourShape()
	case sdl.SCANCODE_M:
		a.settings.CycleMinuteShape()
	case sdl.SCANCODE_COMMA:
		a.settings.CycleSecondShape()
	case sdl.SCANCODE_R:
		a.settings.ToggleRotation()
	case sdl.SCANCODE_F:
		a.settings.ToggleFast()
	case sdl.SCANCODE_L:
		a.settings.ToggleShowHours()
	case sdl.SCANCODE_T:
		a.settings.ToggleTimeStyle()
		a.logLabels()
	case sdl.SCANCODE_Z:
		a.settings.ToggleZen()
		if a.settings.Zen() {
			a.renderer.SetClearColor(renderer.ZenBackground)
		} else {
			a.renderer.SetClearColor(a.renderer.Palette().Background)
		}
	case sdl.SCANCODE_C:
		a.camera.Reset()
	case sdl.SCANCODE_F11:
		if err := a.window.SetFullscreen(!a.window.IsFullscreen()); err != nil {
			logger.Warn("fullscreen toggle failed", zap.Error(err))
		}
	}
}

// applyRebuilds re-uploads any meshes invalidated by settings changes.
func (a *App) applyRebuilds() error {
	s := a.settings
	if s.StripDirty {
		if err := a.uploadStrip(); err != nil {
			return err
		}
		s.StripDirty = false
	}
	if s.HourDirty || s.MinuteDirty || s.SecondDirty {
		a.driver.HourShape = s.HourShape
		a.driver.MinuteShape = s.MinuteShape
		a.driver.SecondShape = s.SecondShape
		if err := a.uploadIndicators(); err != nil {
			return err
		}
		s.HourDirty, s.MinuteDirty, s.SecondDirty = false, false, false
	}
	return nil
}

func (a *App) uploadStrip() error {
	mesh := strip.Assemble(a.cross, a.settings.TickScheme)
	handle, err := a.renderer.UploadMesh(mesh)
	if err != nil {
		return fmt.Errorf("upload strip: %w", err)
	}
	a.renderer.DeleteMesh(a.stripHandle)
	a.stripHandle = handle
	logger.Debug("strip mesh rebuilt", zap.String("scheme", string(a.settings.TickScheme)))
	return nil
}

func (a *App) uploadIndicators() error {
	upload := func(shape clock.Shape, radius float32, slot **renderer.MeshHandle) error {
		mesh := clock.BuildIndicator(shape, radius)
		handle, err := a.renderer.UploadMesh(mesh)
		if err != nil {
			return fmt.Errorf("upload %s indicator: %w", shape, err)
		}
		a.renderer.DeleteMesh(*slot)
		*slot = handle
		return nil
	}

	if err := upload(a.settings.HourShape, clock.HourRadius, &a.hourHandle); err != nil {
		return err
	}
	if err := upload(a.settings.MinuteShape, clock.MinuteRadius, &a.minuteHandle); err != nil {
		return err
	}
	return upload(a.settings.SecondShape, clock.SecondRadius, &a.secondHandle)
}

func (a *App) render(state clock.FrameState) {
	a.renderer.SetCamera(
		a.camera.ViewMatrix(),
		a.camera.ProjectionMatrix(a.renderer.AspectRatio()),
	)

	base := math.RotateY(a.rotationAngle)
	palette := a.renderer.Palette()

	a.renderer.Begin()
	a.renderer.DrawStrip(a.stripHandle, base)

	if state.ShowHour {
		a.renderer.DrawColored(a.hourHandle, base.Mul(state.Hour.ModelMatrix()), palette.Hour)
	}
	a.renderer.DrawColored(a.minuteHandle, base.Mul(state.Minute.ModelMatrix()), palette.Minute)
	a.renderer.DrawColored(a.secondHandle, base.Mul(state.Second.ModelMatrix()), palette.Second)
	a.renderer.End()
}

func (a *App) chimeOnHourChange(hour int) {
	if hour == a.lastHour {
		return
	}
	first := a.lastHour < 0
	a.lastHour = hour
	if first || !a.settings.Chime || !a.audio.IsInitialized() {
		return
	}
	if err := a.audio.Chime(); err != nil {
		logger.Warn("chime failed", zap.Error(err))
	}
}

func (a *App) logLabels() {
	for _, l := range a.mapper.HourLabelAnchors(a.settings.TimeStyle) {
		logger.Debug("hour label",
			zap.String("text", l.Text),
			zap.Float32("x", l.Anchor.Position.X),
			zap.Float32("y", l.Anchor.Position.Y),
			zap.Float32("z", l.Anchor.Position.Z),
		)
	}
}
