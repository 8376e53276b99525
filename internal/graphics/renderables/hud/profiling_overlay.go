package hud

import (
	"termcraft/internal/graphics"
	renderer "termcraft/internal/graphics/renderer"
	"termcraft/internal/profiling"
)

const profilingTopTasks = 4

// drawProfiling lists the most expensive tasks of the current frame, one per
// line, under the status lines.
func (h *HUD) drawProfiling(ctx renderer.RenderContext) {
	row := 4
	graphics.WriteString(ctx.Surface, row, 0, "Frame: "+profiling.FormatMs(ctx.FrameTime), graphics.PairText)
	for _, e := range profiling.Top(profilingTopTasks) {
		row++
		graphics.WriteString(ctx.Surface, row, 0, e.Name+" "+profiling.FormatMs(e.Duration), graphics.PairText)
	}
}
