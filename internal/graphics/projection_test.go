package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termcraft/internal/meshing"
)

func TestProjectStraightAhead(t *testing.T) {
	p := NewProjector()
	out := p.Project([]meshing.Vertex{{0, 0, 10}, {2, 0, 4}, {0, 3, 6}}, Camera{}, nil)
	require.Len(t, out, 3)

	assert.InDelta(t, 0, out[0].X, 1e-12)
	assert.InDelta(t, 0, out[0].Y, 1e-12)
	assert.InDelta(t, 10, out[0].Depth, 1e-12)

	assert.InDelta(t, 2*ScaleX/4, out[1].X, 1e-12)
	assert.InDelta(t, 3*ScaleY/6, out[2].Y, 1e-12)
}

func TestProjectKeepsLinearDepth(t *testing.T) {
	p := NewProjector()
	cam := Camera{Position: mgl64.Vec3{0, 0, -5}}
	out := p.Project([]meshing.Vertex{{4, 4, 5}}, cam, nil)
	assert.InDelta(t, 10, out[0].Depth, 1e-12)
	assert.InDelta(t, 4*ScaleX/10, out[0].X, 1e-12)
}

func TestProjectNearPlanePush(t *testing.T) {
	p := NewProjector()
	out := p.Project([]meshing.Vertex{{1, 1, 0}, {1, -1, -3}}, Camera{}, nil)

	assert.InDelta(t, ScaleX*NearPush, out[0].X, 1e-9)
	assert.InDelta(t, ScaleY*NearPush, out[0].Y, 1e-9)
	assert.InDelta(t, 0, out[0].Depth, 1e-12)

	assert.InDelta(t, ScaleX*NearPush, out[1].X, 1e-9)
	assert.InDelta(t, -ScaleY*NearPush, out[1].Y, 1e-9)
	assert.InDelta(t, -3, out[1].Depth, 1e-12)
}

func TestProjectYawAndPitch(t *testing.T) {
	p := NewProjector()

	// yaw 90 looks down -x
	out := p.Project([]meshing.Vertex{{-10, 0, 0}}, Camera{Yaw: 90}, nil)
	assert.InDelta(t, 10, out[0].Depth, 1e-9)
	assert.InDelta(t, 0, out[0].X, 1e-9)

	// pitch 90 looks straight up
	out = p.Project([]meshing.Vertex{{0, 10, 0}}, Camera{Pitch: 90}, nil)
	assert.InDelta(t, 10, out[0].Depth, 1e-9)
	assert.InDelta(t, 0, out[0].Y, 1e-9)
}

func TestProjectRollRotatesScreen(t *testing.T) {
	p := NewProjector()
	out := p.Project([]meshing.Vertex{{0, 5, 5}}, Camera{Roll: 90}, nil)
	// a point above the center swings to the left
	assert.InDelta(t, -ScaleX, out[0].X, 1e-9)
	assert.InDelta(t, 0, out[0].Y, 1e-9)
}

func TestProjectReusesBuffer(t *testing.T) {
	p := NewProjector()
	buf := make([]ScreenVertex, 0, 8)
	out := p.Project([]meshing.Vertex{{0, 0, 1}, {0, 0, 2}}, Camera{}, buf)
	assert.Len(t, out, 2)
	assert.Equal(t, 8, cap(out))
}
