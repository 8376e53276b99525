package physics_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"termcraft/internal/physics"
	"termcraft/internal/world"
)

func TestRaycast(t *testing.T) {
	// Create an empty world
	w := world.NewGrid(world.DefaultSize)

	// Place a block one cell ahead of the camera cell (2,2,2)
	w.SetBlock(2, 2, 3, world.BlockTypeStone)

	// Test 1: looking down +z from the center of cell (2,2,2)
	start := mgl64.Vec3{5, 5, 5}
	result := physics.Raycast(w, start, 0, 0, physics.RayStep, physics.RayMaxSteps)

	if !result.HasSolid() {
		t.Fatalf("Expected hit, got miss")
	}
	if result.Solid != (world.Cell{X: 2, Y: 2, Z: 3}) {
		t.Errorf("Expected hit at {2,2,3}, got %v", result.Solid)
	}
	if result.Empty != (world.Cell{X: 2, Y: 2, Z: 2}) {
		t.Errorf("Expected empty target at {2,2,2}, got %v", result.Empty)
	}

	// Test 2: looking the other way leaves the grid through z=0
	resultBack := physics.Raycast(w, start, 0, 180, physics.RayStep, physics.RayMaxSteps)
	if resultBack.HasSolid() {
		t.Errorf("Expected no solid target, got %v", resultBack.Solid)
	}
	if resultBack.Empty != (world.Cell{X: 2, Y: 2, Z: 0}) {
		t.Errorf("Expected last empty cell {2,2,0}, got %v", resultBack.Empty)
	}
	if resultBack.Steps >= physics.RayMaxSteps {
		t.Errorf("Expected early exit at the grid edge, took %d steps", resultBack.Steps)
	}

	// Test 3: looking straight up at a block two cells above
	w.SetBlock(2, 4, 2, world.BlockTypeDirt)
	resultUp := physics.Raycast(w, start, 90, 0, physics.RayStep, physics.RayMaxSteps)
	if resultUp.Solid != (world.Cell{X: 2, Y: 4, Z: 2}) {
		t.Errorf("Expected hit at {2,4,2}, got %v", resultUp.Solid)
	}
	if resultUp.Empty != (world.Cell{X: 2, Y: 3, Z: 2}) {
		t.Errorf("Expected empty target at {2,3,2}, got %v", resultUp.Empty)
	}
}

func TestRaycastReachLimit(t *testing.T) {
	w := world.NewGrid(world.DefaultSize)
	w.SetBlock(0, 0, 10, world.BlockTypeStone)

	result := physics.Raycast(w, mgl64.Vec3{1, 1, 1}, 0, 0, physics.RayStep, physics.RayMaxSteps)
	if result.HasSolid() {
		t.Fatalf("Expected block beyond reach to be missed, got %v", result.Solid)
	}
	if result.Steps != physics.RayMaxSteps {
		t.Errorf("Expected %d steps, got %d", physics.RayMaxSteps, result.Steps)
	}
	if result.Empty != (world.Cell{X: 0, Y: 0, Z: 5}) {
		t.Errorf("Expected last empty cell {0,0,5}, got %v", result.Empty)
	}
}

func TestRaycastStartingOutsideGrid(t *testing.T) {
	w := world.NewGrid(world.DefaultSize)
	w.Fill(world.BlockTypeStone)

	result := physics.Raycast(w, mgl64.Vec3{-5, 5, 5}, 0, 0, physics.RayStep, physics.RayMaxSteps)
	if result.HasSolid() || result.HasEmpty() {
		t.Fatalf("Expected no targets from outside the grid, got %+v", result)
	}
	if result.Steps != 1 {
		t.Errorf("Expected exit on the first step, got %d", result.Steps)
	}
}

func TestViewDirection(t *testing.T) {
	cases := []struct {
		pitch, yaw float64
		want       mgl64.Vec3
	}{
		{0, 0, mgl64.Vec3{0, 0, 1}},
		{0, 90, mgl64.Vec3{-1, 0, 0}},
		{90, 0, mgl64.Vec3{0, 1, 0}},
		{-90, 45, mgl64.Vec3{0, -1, 0}},
	}
	for _, c := range cases {
		got := physics.ViewDirection(c.pitch, c.yaw)
		if !got.ApproxEqualThreshold(c.want, 1e-9) {
			t.Errorf("ViewDirection(%v, %v) = %v, want %v", c.pitch, c.yaw, got, c.want)
		}
		if math.Abs(got.Len()-1) > 1e-9 {
			t.Errorf("ViewDirection(%v, %v) not unit length: %v", c.pitch, c.yaw, got.Len())
		}
	}
}
