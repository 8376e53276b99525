package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"termcraft/internal/meshing"
	"termcraft/internal/profiling"
)

// Screen scale factors. They differ per axis to make up for terminal cells
// being roughly twice as tall as they are wide.
var (
	ScaleX = math.Atan(math.Pi / 4)
	ScaleY = math.Atan(math.Pi / 1.2)
)

const (
	// NearDepth is the smallest depth that is perspective-divided.
	NearDepth = 0.01
	// NearPush replaces the divide for points at or behind NearDepth, flinging
	// them off screen. This is not a real clip: triangles straddling the
	// camera plane come out distorted.
	NearPush = 100
)

// ScreenVertex is a projected vertex. X and Y are in normalized screen space
// with the origin at the center; Depth is the undivided view-space depth.
type ScreenVertex struct {
	X, Y  float64
	Depth float64
}

// Projector maps mesh vertices into screen space.
type Projector struct {
	ScaleX, ScaleY float64
}

// NewProjector returns a projector with the stock scale factors.
func NewProjector() *Projector {
	return &Projector{ScaleX: ScaleX, ScaleY: ScaleY}
}

// ProjectPoint projects one world-space point through cam.
func (p *Projector) ProjectPoint(rot mgl64.Mat3, cam Camera, v mgl64.Vec3) ScreenVertex {
	view := rot.Mul3x1(v.Sub(cam.Position))
	sx := view.X() * p.ScaleX
	sy := view.Y() * p.ScaleY
	depth := view.Z()
	if depth > NearDepth {
		sx /= depth
		sy /= depth
	} else {
		sx *= NearPush
		sy *= NearPush
	}
	return ScreenVertex{X: sx, Y: sy, Depth: depth}
}

// Project projects every vertex into out, reusing its storage, and returns it.
// out[i] corresponds to verts[i].
func (p *Projector) Project(verts []meshing.Vertex, cam Camera, out []ScreenVertex) []ScreenVertex {
	defer profiling.Track("graphics.Project")()

	rot := cam.Rotation()
	out = out[:0]
	for _, v := range verts {
		out = append(out, p.ProjectPoint(rot, cam, mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}))
	}
	return out
}
