package graphics

import (
	"math"

	"termcraft/internal/meshing"
	"termcraft/internal/world"
)

const (
	GlyphBlank     = ' '
	GlyphFaceX     = '@'
	GlyphFaceY     = '#'
	GlyphFaceOther = '$'
	GlyphCrosshair = '+'
)

// insideTolerance absorbs rounding in the sub-area sum so points on an edge
// stay inside.
const insideTolerance = 1e-9

// FaceGlyph picks the patterned glyph for a triangle from the axis its
// corners share.
func FaceGlyph(v [3]meshing.Vertex) rune {
	switch {
	case v[0].X == v[1].X && v[1].X == v[2].X:
		return GlyphFaceX
	case v[0].Y == v[1].Y && v[1].Y == v[2].Y:
		return GlyphFaceY
	default:
		return GlyphFaceOther
	}
}

// GlyphFor returns the glyph and color pair used to paint a face.
func GlyphFor(ref world.ColorRef, corners [3]meshing.Vertex) (rune, PairID) {
	if ref.Patterned() {
		return FaceGlyph(corners), PairID(ref.Pair())
	}
	return GlyphBlank, PairID(ref.Pair())
}

func triArea(ax, ay, bx, by, cx, cy float64) float64 {
	return math.Abs((ax*(by-cy) + bx*(cy-ay) + cx*(ay-by)) / 2)
}

// Inside reports whether (px, py) lies in the triangle, edges included, by
// comparing the three sub-triangle areas against the whole.
func Inside(tri [3][2]float64, px, py float64) bool {
	a, b, c := tri[0], tri[1], tri[2]
	area := triArea(a[0], a[1], b[0], b[1], c[0], c[1])
	a1 := triArea(px, py, b[0], b[1], c[0], c[1])
	a2 := triArea(a[0], a[1], px, py, c[0], c[1])
	a3 := triArea(a[0], a[1], b[0], b[1], px, py)
	return a1+a2+a3 <= area+insideTolerance*math.Max(1, area)
}

// Rasterizer fills projected triangles into a Surface.
type Rasterizer struct{}

// NewRasterizer returns a rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Fill paints every cell covered by tri and returns how many were painted.
// Triangles entirely behind the camera are skipped.
func (r *Rasterizer) Fill(s Surface, tri [3]ScreenVertex, glyph rune, pair PairID) int {
	if tri[0].Depth <= 0 && tri[1].Depth <= 0 && tri[2].Depth <= 0 {
		return 0
	}

	cols, rows := s.Size()
	halfW, halfH := cols/2, rows/2

	var poly [3][2]float64
	for i, v := range tri {
		poly[i] = [2]float64{v.X * float64(halfW), v.Y * float64(halfH)}
	}

	minX := math.Min(poly[0][0], math.Min(poly[1][0], poly[2][0]))
	maxX := math.Max(poly[0][0], math.Max(poly[1][0], poly[2][0]))
	minY := math.Min(poly[0][1], math.Min(poly[1][1], poly[2][1]))
	maxY := math.Max(poly[0][1], math.Max(poly[1][1], poly[2][1]))

	// clamp to the cells that map onto the surface
	minX = math.Max(minX, float64(-halfW+1))
	maxX = math.Min(maxX, float64(halfW))
	minY = math.Max(minY, float64(-halfH))
	maxY = math.Min(maxY, float64(halfH-1))
	if !(minX <= maxX && minY <= maxY) {
		return 0
	}

	painted := 0
	for i := int(math.Ceil(minX)); i <= int(math.Floor(maxX)); i++ {
		for j := int(math.Ceil(minY)); j <= int(math.Floor(maxY)); j++ {
			if !Inside(poly, float64(i), float64(j)) {
				continue
			}
			s.SetCell(halfH-1-j, i+halfW-1, glyph, pair)
			painted++
		}
	}
	return painted
}

// DrawCrosshair marks the center of the surface.
func DrawCrosshair(s Surface) {
	cols, rows := s.Size()
	s.SetCell(rows/2, cols/2, GlyphCrosshair, PairCrosshair)
}
