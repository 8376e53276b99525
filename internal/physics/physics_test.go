package physics

import (
	"testing"

	"termcraft/internal/world"

	"github.com/go-gl/mathgl/mgl64"
)

func makeWorldForPhysics() *world.Grid {
	return world.Generate(0, world.DefaultSize)
}

func BenchmarkStep(b *testing.B) {
	w := makeWorldForPhysics()
	cs := NewCollisionSystem(DefaultParams)
	body := &Body{Position: mgl64.Vec3{25, 19.2, 25}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		body.Velocity = mgl64.Vec3{0.1, 0, 0.1}
		cs.Step(w, body, 1)
		body.Position = mgl64.Vec3{25, 19.2, 25}
	}
}

func BenchmarkRaycast(b *testing.B) {
	w := makeWorldForPhysics()
	start := mgl64.Vec3{25, 19.2, 25}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Raycast(w, start, -30, 135, RayStep, RayMaxSteps)
	}
}

func TestFirstSolidReportsAxisCell(t *testing.T) {
	w := world.NewGrid(4)
	w.SetBlock(2, 1, 1, world.BlockTypeStone)
	center := mgl64.Vec3{1.5, 1.5 + EyeHeight, 1.5}

	cell, hit := firstSolid(w, center, feet, 0, 0.5)
	if !hit || cell != 2 {
		t.Fatalf("Expected hit in x cell 2, got %d (hit=%v)", cell, hit)
	}
	if _, hit := firstSolid(w, center, feet, 0, -0.5); hit {
		t.Fatalf("Expected no hit moving away from the block")
	}
}
