package graphics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is the viewpoint for a frame. Angles are in degrees.
type Camera struct {
	Position mgl64.Vec3
	Pitch    float64
	Yaw      float64
	Roll     float64
}

// Rotation returns the world-to-view rotation: roll about the forward axis
// first, then yaw about the vertical axis, then pitch about the lateral axis.
func (c Camera) Rotation() mgl64.Mat3 {
	pitch := mgl64.Rotate3DX(mgl64.DegToRad(c.Pitch))
	yaw := mgl64.Rotate3DY(mgl64.DegToRad(c.Yaw))
	roll := mgl64.Rotate3DZ(mgl64.DegToRad(c.Roll))
	return pitch.Mul3(yaw).Mul3(roll)
}

// ToView moves a world-space point into view space.
func (c Camera) ToView(p mgl64.Vec3) mgl64.Vec3 {
	return c.Rotation().Mul3x1(p.Sub(c.Position))
}
