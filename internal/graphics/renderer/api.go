package renderer

import (
	"time"

	"termcraft/internal/graphics"
	"termcraft/internal/meshing"
	"termcraft/internal/physics"
	"termcraft/internal/player"
	"termcraft/internal/ui/menu"
	"termcraft/internal/world"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Surface   graphics.Surface
	Camera    graphics.Camera
	Mesh      *meshing.Mesh
	Palette   world.Palette
	Player    *player.Player
	Pick      physics.RaycastResult
	DT        float64
	FPS       float64
	// FrameTime is the averaged wall-clock duration of recent frames.
	FrameTime time.Duration

	Paused    bool
	PauseMenu *menu.PauseMenu
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(cols, rows int)
}
