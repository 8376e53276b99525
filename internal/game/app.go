package game

import (
	"context"
	"fmt"
	"time"

	"termcraft/internal/config"
	"termcraft/internal/display"
	"termcraft/internal/graphics/renderables/crosshair"
	"termcraft/internal/graphics/renderables/hud"
	"termcraft/internal/graphics/renderables/pause"
	"termcraft/internal/graphics/renderables/scene"
	"termcraft/internal/graphics/renderer"
	"termcraft/internal/input"
	"termcraft/internal/logging"
	"termcraft/internal/profiling"
	"termcraft/internal/ui/menu"
)

// slowFrame is the processing time above which a frame is logged.
const slowFrame = 50 * time.Millisecond

// App runs the frame loop of one session on one display.
type App struct {
	display      display.Display
	inputManager *input.InputManager
	renderer     *renderer.Renderer
	session      *Session

	fpsLimiter *FPSLimiter
	frames     *profiling.FrameTimer
	lastTime   time.Time

	tickRate      float64
	maxFrameTicks float64

	done bool
}

func NewApp(d display.Display, im *input.InputManager, s *Session, cfg config.Config) (*App, error) {
	r, err := renderer.NewRenderer(
		scene.NewScene(),
		crosshair.NewCrosshair(),
		hud.NewHUD(),
		pause.NewOverlay(),
	)
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	return &App{
		display:       d,
		inputManager:  im,
		renderer:      r,
		session:       s,
		fpsLimiter:    NewFPSLimiter(),
		frames:        profiling.NewFrameTimer(profiling.DefaultFrameWindow),
		lastTime:      time.Now(),
		tickRate:      cfg.Physics.TickRate,
		maxFrameTicks: cfg.Physics.MaxFrameTicks,
	}, nil
}

// Run steps frames until the player quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	for !a.done {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.Step(); err != nil {
			return err
		}
		a.fpsLimiter.Wait(a.session.Paused)
	}
	return nil
}

// Done reports whether the player asked to quit.
func (a *App) Done() bool {
	return a.done
}

// Step runs one frame: input, session update, render, present.
func (a *App) Step() error {
	profiling.ResetFrame()
	startTick := time.Now() // Measure pure processing time
	elapsed := startTick.Sub(a.lastTime)
	a.lastTime = startTick
	a.frames.Record(elapsed)

	dt := min(elapsed.Seconds()*a.tickRate, a.maxFrameTicks)

	func() {
		defer profiling.Track("display.Poll")()
		a.display.Poll(a.inputManager)
	}()
	in := a.inputManager.Snapshot()
	a.inputManager.PostUpdate() // Clear "JustPressed" flags

	if in.Quit {
		a.done = true
		return nil
	}
	if in.ToggleProfiling {
		config.ToggleShowProfiling()
	}

	func() {
		defer profiling.Track("session.Update")()
		if a.session.Update(dt, in) == menu.ActionQuit {
			a.done = true
		}
	}()
	if a.done {
		return nil
	}

	a.display.Clear()
	a.renderer.Render(a.session.RenderContext(a.display, dt, a.frames))
	if err := a.display.Show(); err != nil {
		return fmt.Errorf("show frame: %w", err)
	}

	if d := time.Since(startTick); d > slowFrame {
		logging.Warn("Slow frame: %v. Top tasks: %s", d, profiling.TopN(3))
	}
	return nil
}

// Close disposes the renderer. The display belongs to the caller.
func (a *App) Close() {
	a.renderer.Dispose()
}
