package meshing

import (
	"fmt"

	"termcraft/internal/profiling"
	"termcraft/internal/world"
)

// CellScale is the number of world units per grid cell.
const CellScale = 2

type faceSlot int

const (
	slotTop faceSlot = iota
	slotSide
	slotBottom
)

// face describes one side of a unit cube: the neighbor offset that hides it
// and two triangles of corner offsets. Corner order fixes the winding the
// back-face test relies on.
type face struct {
	dx, dy, dz int
	tris       [2][3][3]int
	slot       faceSlot
}

var cubeFaces = [6]face{
	{dx: -1, tris: [2][3][3]int{{{0, 0, 0}, {0, 1, 1}, {0, 1, 0}}, {{0, 0, 0}, {0, 0, 1}, {0, 1, 1}}}, slot: slotSide},
	{dx: 1, tris: [2][3][3]int{{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}}, {{1, 0, 0}, {1, 1, 1}, {1, 0, 1}}}, slot: slotSide},
	{dy: -1, tris: [2][3][3]int{{{0, 0, 0}, {1, 0, 1}, {0, 0, 1}}, {{0, 0, 0}, {1, 0, 0}, {1, 0, 1}}}, slot: slotBottom},
	{dy: 1, tris: [2][3][3]int{{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}}, {{0, 1, 0}, {1, 1, 1}, {1, 1, 0}}}, slot: slotTop},
	{dz: -1, tris: [2][3][3]int{{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}}, {{0, 0, 0}, {1, 1, 0}, {1, 0, 0}}}, slot: slotSide},
	{dz: 1, tris: [2][3][3]int{{{0, 0, 1}, {1, 1, 1}, {0, 1, 1}}, {{0, 0, 1}, {1, 0, 1}, {1, 1, 1}}}, slot: slotSide},
}

// Builder turns a grid into a boundary mesh.
type Builder struct {
	palette world.Palette
	limits  Limits
}

// NewBuilder creates a builder that colors faces from p and caps meshes at l.
func NewBuilder(p world.Palette, l Limits) *Builder {
	return &Builder{palette: p, limits: l}
}

// Build returns a fresh mesh of g. When capacity runs out the mesh is
// returned together with an error wrapping ErrPartial.
func (b *Builder) Build(g *world.Grid) (*Mesh, error) {
	m := NewMesh(b.limits)
	return m, b.Rebuild(m, g)
}

// Rebuild clears m and regenerates it from g.
func (b *Builder) Rebuild(m *Mesh, g *world.Grid) error {
	defer profiling.Track("meshing.Rebuild")()

	m.Reset()
	n := g.Size()
	for x := range n {
		for y := range n {
			for z := range n {
				block := g.GetBlock(x, y, z)
				if block == world.Empty {
					continue
				}
				def, _ := b.palette.Lookup(block)
				for _, f := range cubeFaces {
					if g.IsSolid(x+f.dx, y+f.dy, z+f.dz) {
						continue
					}
					b.emitFace(m, x, y, z, f, colorFor(def, f.slot))
				}
			}
		}
	}

	if m.Partial() {
		return fmt.Errorf("%w: dropped %d triangles", ErrPartial, m.dropped)
	}
	return nil
}

func (b *Builder) emitFace(m *Mesh, x, y, z int, f face, color world.ColorRef) {
	for _, tri := range f.tris {
		var idx [3]int
		for i, c := range tri {
			idx[i] = m.AddVertex(Vertex{
				X: (x + c[0]) * CellScale,
				Y: (y + c[1]) * CellScale,
				Z: (z + c[2]) * CellScale,
			})
		}
		if !m.AddTriangle(idx[0], idx[1], idx[2], color) {
			m.dropped++
		}
	}
}

func colorFor(def world.BlockDef, slot faceSlot) world.ColorRef {
	switch slot {
	case slotTop:
		return def.Top
	case slotBottom:
		return def.Bottom
	default:
		return def.Side
	}
}
