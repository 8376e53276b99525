package player

import (
	"github.com/go-gl/mathgl/mgl64"

	"termcraft/internal/graphics"
	"termcraft/internal/physics"
	"termcraft/internal/world"
)

// Player is the controllable camera body. Angles are in degrees.
type Player struct {
	physics.Body

	Pitch float64
	Yaw   float64
	Roll  float64

	// Selected is the block type placed by the next place command.
	Selected world.BlockType
	Spawn    mgl64.Vec3
}

// New creates a player standing at spawn (eye position, world units).
func New(spawn mgl64.Vec3) *Player {
	return &Player{
		Body:     physics.Body{Position: spawn},
		Selected: world.BlockTypeGrass,
		Spawn:    spawn,
	}
}

// DefaultSpawn returns the stock eye position for a grid of the given size:
// above the center of the grid, looking down +z.
func DefaultSpawn(size int) mgl64.Vec3 {
	c := float64(size) / 2 * physics.CellSize
	return mgl64.Vec3{c + 1, float64(size)*physics.CellSize - 2, c + 1}
}

// Camera returns the viewpoint at the player's eye.
func (p *Player) Camera() graphics.Camera {
	return graphics.Camera{Position: p.Position, Pitch: p.Pitch, Yaw: p.Yaw, Roll: p.Roll}
}

// Cell returns the grid cell holding the player's eye.
func (p *Player) Cell() world.Cell {
	return world.Cell{
		X: int(floorDiv(p.Position.X())),
		Y: int(floorDiv(p.Position.Y())),
		Z: int(floorDiv(p.Position.Z())),
	}
}

// Respawn moves the player back to its spawn point at rest.
func (p *Player) Respawn() {
	p.Position = p.Spawn
	p.Velocity = mgl64.Vec3{}
	p.Grounded = false
}
