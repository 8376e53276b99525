package hud

import (
	"termcraft/internal/graphics"
	renderer "termcraft/internal/graphics/renderer"
	"termcraft/internal/world"
)

// drawSwatch draws the selected block as a framed 4x3 sample at the bottom
// center: one row of top color over two rows of side color.
func (h *HUD) drawSwatch(ctx renderer.RenderContext) {
	if ctx.Player == nil {
		return
	}
	def, ok := ctx.Palette.Lookup(ctx.Player.Selected)
	if !ok {
		return
	}

	s := ctx.Surface
	left := h.cols/2 - 4
	graphics.WriteString(s, h.rows-5, left, "+------+", graphics.PairCrosshair)
	for y := range 3 {
		graphics.WriteString(s, h.rows-y-2, left, "|      |", graphics.PairCrosshair)
	}
	graphics.WriteString(s, h.rows-1, left, "+------+", graphics.PairCrosshair)

	graphics.WriteString(s, h.rows-4, left+2, swatchRow(def.Top, "####"), graphics.PairID(def.Top.Pair()))
	side := swatchRow(def.Side, "$$@@")
	graphics.WriteString(s, h.rows-3, left+2, side, graphics.PairID(def.Side.Pair()))
	graphics.WriteString(s, h.rows-2, left+2, side, graphics.PairID(def.Side.Pair()))

	graphics.WriteString(s, h.rows-3, left+9, def.Name, graphics.PairText)
}

func swatchRow(ref world.ColorRef, pattern string) string {
	if ref.Patterned() {
		return pattern
	}
	return "    "
}
