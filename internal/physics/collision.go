package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"termcraft/internal/profiling"
	"termcraft/internal/world"
)

// CellSize is the number of world units per grid cell.
const CellSize = 2.0

// Body sample points relative to the eye, in cell units. The first four are
// the feet, the last four the top of the head.
var sampleOffsets = [12]mgl64.Vec3{
	{0.299, -1.599, 0.299}, {-0.299, -1.599, 0.299}, {0.299, -1.599, -0.299}, {-0.299, -1.599, -0.299},
	{0.299, -0.7, 0.299}, {-0.299, -0.7, 0.299}, {0.299, -0.7, -0.299}, {-0.299, -0.7, -0.299},
	{0.299, 0.199, 0.299}, {-0.299, 0.199, 0.299}, {0.299, 0.199, -0.299}, {-0.299, 0.199, -0.299},
}

const (
	// EyeHeight is the distance from the feet to the eye, in cells.
	EyeHeight = 1.6
	// skin keeps resolved sample points off cell boundaries.
	skin = 0.001
	// groundProbe is how far below the feet a resting body looks for ground.
	groundProbe = 0.5
)

var (
	feet = sampleOffsets[0:4]
	head = sampleOffsets[8:12]
)

// Body is the collision state of the player. Position is the eye in world
// units. Horizontal velocity is per-frame input; vertical velocity persists.
type Body struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Grounded bool
}

// Feet returns the height of the body's soles in cell units.
func (b *Body) Feet() float64 {
	return b.Position.Y()/CellSize - EyeHeight
}

// Params are the per-tick motion constants.
type Params struct {
	Gravity          float64
	TerminalVelocity float64
}

// DefaultParams matches the stock gravity of 0.02 units per tick squared and
// a terminal speed of 0.9 units per tick.
var DefaultParams = Params{Gravity: 0.02, TerminalVelocity: 0.9}

// CollisionSystem moves bodies through a grid.
type CollisionSystem struct {
	params Params
}

// NewCollisionSystem creates a collision system with p.
func NewCollisionSystem(p Params) *CollisionSystem {
	return &CollisionSystem{params: p}
}

// Step advances b by dt ticks: vertical motion first, then X, then Z.
// Horizontal velocity is consumed. Vertical velocity then picks up gravity
// while airborne and resets once grounded.
func (c *CollisionSystem) Step(g *world.Grid, b *Body, dt float64) {
	defer profiling.Track("physics.Step")()

	grounded := c.resolveVertical(g, b, dt)
	c.resolveHorizontal(g, b, 0, dt)
	c.resolveHorizontal(g, b, 2, dt)

	b.Velocity[0] = 0
	b.Velocity[2] = 0
	b.Grounded = grounded
	if grounded {
		b.Velocity[1] = 0
		return
	}
	b.Velocity[1] = math.Max(b.Velocity[1]-c.params.Gravity*dt, -c.params.TerminalVelocity)
}

func (c *CollisionSystem) resolveVertical(g *world.Grid, b *Body, dt float64) bool {
	center := b.Position.Mul(1 / CellSize)
	vy := b.Velocity[1]
	dy := vy / CellSize * dt

	switch {
	case vy < 0:
		if cell, hit := firstSolid(g, center, feet, 1, dy); hit {
			b.Position[1] = (float64(cell) + 1 + skin - feet[0].Y()) * CellSize
			return true
		}
		b.Position[1] += vy * dt
		return false
	case vy > 0:
		if cell, hit := firstSolid(g, center, head, 1, dy); hit {
			b.Position[1] = (float64(cell) - head[0].Y() - skin) * CellSize
			b.Velocity[1] = 0
			return false
		}
		b.Position[1] += vy * dt
		return false
	default:
		_, hit := firstSolid(g, center, feet, 1, -groundProbe)
		return hit
	}
}

func (c *CollisionSystem) resolveHorizontal(g *world.Grid, b *Body, axis int, dt float64) {
	v := b.Velocity[axis]
	if v == 0 {
		return
	}
	center := b.Position.Mul(1 / CellSize)
	d := v / CellSize * dt
	if _, hit := firstSolid(g, center, sampleOffsets[:], axis, d); !hit {
		b.Position[axis] += v * dt
		return
	}

	// clamp against the cell the leading side moved into
	if v > 0 {
		cell := math.Floor(center[axis] + sampleOffsets[0][axis] + d)
		b.Position[axis] = (cell - sampleOffsets[0][axis] - skin) * CellSize
	} else {
		cell := math.Floor(center[axis] - sampleOffsets[0][axis] + d)
		b.Position[axis] = (cell + 1 + sampleOffsets[0][axis] + skin) * CellSize
	}
}

// firstSolid shifts every sample by delta along axis and returns the cell
// coordinate on that axis of the first sample inside a solid cell.
func firstSolid(g *world.Grid, center mgl64.Vec3, samples []mgl64.Vec3, axis int, delta float64) (int, bool) {
	for _, off := range samples {
		p := center.Add(off)
		p[axis] += delta
		x := int(math.Floor(p.X()))
		y := int(math.Floor(p.Y()))
		z := int(math.Floor(p.Z()))
		if g.IsSolid(x, y, z) {
			return int(math.Floor(p[axis])), true
		}
	}
	return 0, false
}
