package hud

import (
	"termcraft/internal/config"
	renderer "termcraft/internal/graphics/renderer"
	"termcraft/internal/profiling"
)

// HUD implements the status lines, the selected-block swatch and the
// profiling overlay
type HUD struct {
	cols, rows int
}

func NewHUD() *HUD {
	return &HUD{}
}

func (h *HUD) Init() error { return nil }

func (h *HUD) Render(ctx renderer.RenderContext) {
	if !config.GetShowHUD() {
		return
	}
	defer profiling.Track("hud.Render")()

	h.drawStatus(ctx)
	h.drawSwatch(ctx)
	if config.GetShowProfiling() {
		h.drawProfiling(ctx)
	}
}

func (h *HUD) Dispose() {}

func (h *HUD) SetViewport(cols, rows int) {
	h.cols, h.rows = cols, rows
}
