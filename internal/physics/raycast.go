package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"termcraft/internal/profiling"
	"termcraft/internal/world"
)

const (
	// RayStep is the distance covered per march step, in world units.
	RayStep = 0.1
	// RayMaxSteps bounds the march; with RayStep this is a reach of 10 units.
	RayMaxSteps = 100
)

// RaycastResult is the pick along the view ray. Solid is the first occupied
// cell, Empty the last free cell before it. Either is world.NoCell when absent.
type RaycastResult struct {
	Solid world.Cell
	Empty world.Cell
	Steps int
}

// HasSolid reports whether the ray found an occupied cell.
func (r RaycastResult) HasSolid() bool {
	return r.Solid != world.NoCell
}

// HasEmpty reports whether the ray crossed a free cell inside the grid.
func (r RaycastResult) HasEmpty() bool {
	return r.Empty != world.NoCell
}

// ViewDirection returns the unit forward vector for pitch and yaw in degrees.
// Roll does not affect it.
func ViewDirection(pitch, yaw float64) mgl64.Vec3 {
	p := mgl64.DegToRad(pitch)
	y := mgl64.DegToRad(yaw)
	return mgl64.Vec3{
		-math.Sin(y) * math.Cos(p),
		math.Sin(p),
		math.Cos(y) * math.Cos(p),
	}
}

// Raycast marches from start along the view direction in fixed steps. It
// stops at the first occupied cell, after maxSteps, or as soon as the ray
// leaves the grid, in which case only the last free cell is reported.
func Raycast(g *world.Grid, start mgl64.Vec3, pitch, yaw float64, stepSize float64, maxSteps int) RaycastResult {
	defer profiling.Track("physics.Raycast")()

	result := RaycastResult{Solid: world.NoCell, Empty: world.NoCell}
	step := ViewDirection(pitch, yaw).Mul(stepSize)
	limit := float64(g.Size()) * CellSize

	pos := start
	for i := 0; i < maxSteps; i++ {
		pos = pos.Add(step)
		result.Steps = i + 1
		if pos.X() < 0 || pos.Y() < 0 || pos.Z() < 0 || pos.X() >= limit || pos.Y() >= limit || pos.Z() >= limit {
			return result
		}

		cell := world.Cell{
			X: int(math.Floor(pos.X() / CellSize)),
			Y: int(math.Floor(pos.Y() / CellSize)),
			Z: int(math.Floor(pos.Z() / CellSize)),
		}
		if g.At(cell) != world.Empty {
			result.Solid = cell
			return result
		}
		result.Empty = cell
	}

	return result
}
