package crosshair

import (
	"termcraft/internal/graphics"
	renderer "termcraft/internal/graphics/renderer"
)

// Crosshair marks the center cell, which is where the pick ray points.
type Crosshair struct{}

func NewCrosshair() *Crosshair {
	return &Crosshair{}
}

func (c *Crosshair) Init() error { return nil }

func (c *Crosshair) Render(ctx renderer.RenderContext) {
	graphics.DrawCrosshair(ctx.Surface)
}

func (c *Crosshair) Dispose() {}

func (c *Crosshair) SetViewport(cols, rows int) {}
