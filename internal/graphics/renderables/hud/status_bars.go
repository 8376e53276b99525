package hud

import (
	"fmt"

	"termcraft/internal/graphics"
	renderer "termcraft/internal/graphics/renderer"
	"termcraft/internal/physics"
)

// drawStatus writes the position and target lines at the top left, the frame
// rate at the top right and the partial-mesh warning under them.
func (h *HUD) drawStatus(ctx renderer.RenderContext) {
	s := ctx.Surface

	if p := ctx.Player; p != nil {
		pos := p.Position.Mul(1 / physics.CellSize)
		graphics.WriteString(s, 0, 0, fmt.Sprintf("X,Y,Z: %.2f, %.2f, %.2f", pos.X(), p.Feet(), pos.Z()), graphics.PairText)
	}

	target := "Target: none"
	if ctx.Pick.HasSolid() {
		c := ctx.Pick.Solid
		target = fmt.Sprintf("Target: %d, %d, %d", c.X, c.Y, c.Z)
	}
	graphics.WriteString(s, 1, 0, target, graphics.PairText)

	fps := fmt.Sprintf("%4d FPS", int(ctx.FPS))
	graphics.WriteString(s, 0, h.cols-len(fps), fps, graphics.PairText)

	if ctx.Mesh != nil && ctx.Mesh.Partial() {
		warn := fmt.Sprintf("MESH PARTIAL (%d dropped)", ctx.Mesh.Dropped())
		graphics.WriteString(s, 2, 0, warn, graphics.PairHighlight)
	}
}
