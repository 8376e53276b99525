package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"termcraft/internal/input"
	"termcraft/internal/physics"
	"termcraft/internal/profiling"
	"termcraft/internal/world"
)

const (
	MaxPitch = 90.0
	MaxYaw   = 180.0
)

// Controls are the per-tick rates at which intents move the player.
type Controls struct {
	// WalkSpeed is in world units per tick.
	WalkSpeed float64
	// LookSpeed is in degrees per tick.
	LookSpeed float64
	// JumpVelocity is the vertical speed given by a jump, in world units per tick.
	JumpVelocity float64
}

// DefaultControls are the stock movement rates.
var DefaultControls = Controls{
	WalkSpeed:    0.25,
	LookSpeed:    3,
	JumpVelocity: 0.3,
}

// ApplyIntents turns this frame's intents into rotation and velocity.
// The collision system consumes the horizontal velocity afterwards.
func (p *Player) ApplyIntents(in input.Intents, dt float64, c Controls) {
	defer profiling.Track("player.ApplyIntents")()

	p.Pitch = clampPitch(p.Pitch + in.Look.X()*c.LookSpeed*dt)
	p.Yaw = wrapYaw(p.Yaw + in.Look.Y()*c.LookSpeed*dt)

	if in.Move.X() != 0 || in.Move.Y() != 0 {
		yaw := mgl64.DegToRad(p.Yaw)
		sin, cos := math.Sincos(yaw)
		strafe, walk := in.Move.X(), in.Move.Y()
		p.Velocity[0] += (cos*strafe - sin*walk) * c.WalkSpeed
		p.Velocity[2] += (sin*strafe + cos*walk) * c.WalkSpeed
	}

	if in.Jump && p.Grounded {
		p.Velocity[1] = c.JumpVelocity
		p.Grounded = false
	}
}

// CycleBlock moves the selection by delta, staying within [0, last].
func (p *Player) CycleBlock(delta int, last world.BlockType) {
	next := p.Selected + world.BlockType(delta)
	p.Selected = min(max(next, 0), last)
}

func clampPitch(v float64) float64 {
	return math.Max(-MaxPitch, math.Min(MaxPitch, v))
}

func wrapYaw(v float64) float64 {
	for v > MaxYaw {
		v -= 2 * MaxYaw
	}
	for v < -MaxYaw {
		v += 2 * MaxYaw
	}
	return v
}

func floorDiv(v float64) float64 {
	return math.Floor(v / physics.CellSize)
}
