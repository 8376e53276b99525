package meshing

import (
	"errors"
	"testing"

	"termcraft/internal/world"
)

var testPalette = world.Palette{
	{Name: "A", Top: 1, Side: 2, Bottom: 3},
	{Name: "B", Top: -4, Side: -5, Bottom: -6},
}

func build(t *testing.T, g *world.Grid, l Limits) (*Mesh, error) {
	t.Helper()
	return NewBuilder(testPalette, l).Build(g)
}

func TestSingleBlockMesh(t *testing.T) {
	g := world.NewGrid(world.DefaultSize)
	g.SetBlock(5, 5, 5, 0)
	m, err := build(t, g, DefaultLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Triangles) != 12 {
		t.Fatalf("single block: got %d triangles, want 12", len(m.Triangles))
	}
	if len(m.Vertices) > 8 {
		t.Fatalf("single block: got %d vertices, want at most 8", len(m.Vertices))
	}
}

func TestCornerBlockTreatsOutsideAsEmpty(t *testing.T) {
	g := world.NewGrid(world.DefaultSize)
	g.SetBlock(0, 0, 0, 0)
	g.SetBlock(15, 15, 15, 0)
	m, err := build(t, g, DefaultLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Triangles) != 24 {
		t.Fatalf("two corner blocks: got %d triangles, want 24", len(m.Triangles))
	}
	if len(m.Vertices) != 16 {
		t.Fatalf("two corner blocks: got %d vertices, want 16", len(m.Vertices))
	}
}

func TestEnclosedBlockContributesNoFaces(t *testing.T) {
	g := world.NewGrid(world.DefaultSize)
	for x := 5; x <= 7; x++ {
		for y := 5; y <= 7; y++ {
			for z := 5; z <= 7; z++ {
				g.SetBlock(x, y, z, 0)
			}
		}
	}
	m, err := build(t, g, DefaultLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Triangles) != 6*9*2 {
		t.Fatalf("3x3x3 cube: got %d triangles, want %d", len(m.Triangles), 6*9*2)
	}
	// every face of the center voxel lies inside [12,14]^3
	for i := range m.Triangles {
		inner := true
		for _, v := range m.Corners(i) {
			for _, c := range []int{v.X, v.Y, v.Z} {
				if c < 12 || c > 14 {
					inner = false
				}
			}
		}
		if inner {
			t.Fatalf("triangle %d belongs to the enclosed voxel: %v", i, m.Corners(i))
		}
	}
}

func TestSharedFaceDedup(t *testing.T) {
	g := world.NewGrid(world.DefaultSize)
	g.SetBlock(5, 5, 5, 0)
	g.SetBlock(6, 5, 5, 0)
	m, err := build(t, g, DefaultLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Triangles) != 20 {
		t.Fatalf("two touching blocks: got %d triangles, want 20", len(m.Triangles))
	}
	if len(m.Vertices) != 12 {
		t.Fatalf("two touching blocks: got %d vertices, want 12", len(m.Vertices))
	}
	seen := make(map[Vertex]int)
	for _, v := range m.Vertices {
		seen[v]++
	}
	for _, corner := range []Vertex{{12, 10, 10}, {12, 12, 10}, {12, 10, 12}, {12, 12, 12}} {
		if seen[corner] != 1 {
			t.Errorf("shared corner %v stored %d times", corner, seen[corner])
		}
	}
}

func TestFaceColors(t *testing.T) {
	g := world.NewGrid(world.DefaultSize)
	g.SetBlock(2, 2, 2, 1)
	m, err := build(t, g, DefaultLimits)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	counts := make(map[world.ColorRef]int)
	for i, tri := range m.Triangles {
		c := m.Corners(i)
		switch {
		case c[0].Y == 6 && c[1].Y == 6 && c[2].Y == 6:
			if tri.Color != -4 {
				t.Errorf("top triangle colored %d, want -4", tri.Color)
			}
		case c[0].Y == 4 && c[1].Y == 4 && c[2].Y == 4:
			if tri.Color != -6 {
				t.Errorf("bottom triangle colored %d, want -6", tri.Color)
			}
		default:
			if tri.Color != -5 {
				t.Errorf("side triangle colored %d, want -5", tri.Color)
			}
		}
		counts[tri.Color]++
	}
	if counts[-4] != 2 || counts[-6] != 2 || counts[-5] != 8 {
		t.Fatalf("unexpected color distribution: %v", counts)
	}
}

func TestCapacityExhaustedIsPartial(t *testing.T) {
	g := world.NewGrid(world.DefaultSize)
	g.SetBlock(5, 5, 5, 0)
	m, err := build(t, g, Limits{MaxVertices: 100, MaxTriangles: 10})
	if !errors.Is(err, ErrPartial) {
		t.Fatalf("expected ErrPartial, got %v", err)
	}
	if m == nil || len(m.Triangles) != 10 {
		t.Fatalf("expected 10 triangles in partial mesh")
	}
	if !m.Partial() || m.Dropped() != 2 {
		t.Fatalf("expected 2 dropped triangles, got %d", m.Dropped())
	}
}

func TestFullGridExceedsDefaultCapacity(t *testing.T) {
	g := world.NewGrid(world.DefaultSize)
	g.Fill(0)
	m, err := build(t, g, DefaultLimits)
	if !errors.Is(err, ErrPartial) {
		t.Fatalf("expected ErrPartial, got %v", err)
	}
	if len(m.Triangles) != DefaultLimits.MaxTriangles {
		t.Fatalf("got %d triangles, want %d", len(m.Triangles), DefaultLimits.MaxTriangles)
	}
	if m.Dropped() != 6*16*16*2-DefaultLimits.MaxTriangles {
		t.Fatalf("got %d dropped, want %d", m.Dropped(), 6*16*16*2-DefaultLimits.MaxTriangles)
	}
}

func TestUnboundedLimits(t *testing.T) {
	g := world.NewGrid(world.DefaultSize)
	g.Fill(0)
	m, err := build(t, g, Limits{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Triangles) != 6*16*16*2 {
		t.Fatalf("got %d triangles, want %d", len(m.Triangles), 6*16*16*2)
	}
}

func TestRebuildReplacesMesh(t *testing.T) {
	g := world.NewGrid(world.DefaultSize)
	g.SetBlock(5, 5, 5, 0)
	b := NewBuilder(testPalette, DefaultLimits)
	m, err := b.Build(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.SetBlock(5, 5, 5, world.Empty)
	if err := b.Rebuild(m, g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Triangles) != 0 || len(m.Vertices) != 0 {
		t.Fatalf("expected empty mesh, got %d triangles and %d vertices", len(m.Triangles), len(m.Vertices))
	}
}

func TestAddTriangleDedup(t *testing.T) {
	m := NewMesh(DefaultLimits)
	a := m.AddVertex(Vertex{0, 0, 0})
	b := m.AddVertex(Vertex{2, 0, 0})
	c := m.AddVertex(Vertex{0, 2, 0})
	if again := m.AddVertex(Vertex{2, 0, 0}); again != b {
		t.Fatalf("duplicate vertex got index %d, want %d", again, b)
	}
	m.AddTriangle(a, b, c, 1)
	m.AddTriangle(a, b, c, 7)
	m.AddTriangle(b, c, a, 1)
	if len(m.Triangles) != 2 {
		t.Fatalf("got %d triangles, want 2", len(m.Triangles))
	}
	if m.Triangles[0].Color != 1 {
		t.Fatalf("first insertion should keep its color, got %d", m.Triangles[0].Color)
	}
}

func BenchmarkRebuildScene(b *testing.B) {
	g := world.Generate(0, world.DefaultSize)
	builder := NewBuilder(world.DefaultPalette, Limits{})
	m := NewMesh(Limits{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = builder.Rebuild(m, g)
	}
}
