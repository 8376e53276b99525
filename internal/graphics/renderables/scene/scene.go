package scene

import (
	"termcraft/internal/graphics"
	renderer "termcraft/internal/graphics/renderer"
	"termcraft/internal/profiling"
)

// Scene projects the world mesh, orders it back to front and rasterizes it.
type Scene struct {
	projector *graphics.Projector
	raster    *graphics.Rasterizer
	drawList  graphics.DrawList
	screen    []graphics.ScreenVertex

	// Painted is the number of cells written by the last frame.
	Painted int
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) Init() error {
	s.projector = graphics.NewProjector()
	s.raster = graphics.NewRasterizer()
	return nil
}

func (s *Scene) Render(ctx renderer.RenderContext) {
	s.clearSky(ctx.Surface)

	s.Painted = 0
	if ctx.Mesh == nil {
		return
	}

	s.screen = s.projector.Project(ctx.Mesh.Vertices, ctx.Camera, s.screen)
	order := s.drawList.Build(ctx.Mesh.Triangles, s.screen)

	defer profiling.Track("graphics.Rasterize")()
	for _, i := range order {
		t := ctx.Mesh.Triangles[i]
		glyph, pair := graphics.GlyphFor(t.Color, ctx.Mesh.Corners(i))
		tri := [3]graphics.ScreenVertex{s.screen[t.V[0]], s.screen[t.V[1]], s.screen[t.V[2]]}
		s.Painted += s.raster.Fill(ctx.Surface, tri, glyph, pair)
	}
}

func (s *Scene) clearSky(surf graphics.Surface) {
	cols, rows := surf.Size()
	for row := range rows {
		for col := range cols {
			surf.SetCell(row, col, graphics.GlyphBlank, graphics.PairSky)
		}
	}
}

func (s *Scene) Dispose() {
	s.screen = nil
}

func (s *Scene) SetViewport(cols, rows int) {}
