package pause

import (
	renderer "termcraft/internal/graphics/renderer"
)

// Overlay draws the pause menu over the frame while the session is paused.
type Overlay struct{}

func NewOverlay() *Overlay {
	return &Overlay{}
}

func (o *Overlay) Init() error { return nil }

func (o *Overlay) Render(ctx renderer.RenderContext) {
	if !ctx.Paused || ctx.PauseMenu == nil {
		return
	}
	ctx.PauseMenu.Render(ctx.Surface)
}

func (o *Overlay) Dispose() {}

func (o *Overlay) SetViewport(cols, rows int) {}
