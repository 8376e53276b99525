package meshing

import (
	"errors"

	"termcraft/internal/world"
)

// NoSlot is returned by insertions that found no room in the mesh.
const NoSlot = -1

// ErrPartial reports that the mesh ran out of capacity and some faces were
// dropped. The mesh that comes with it is still valid to draw.
var ErrPartial = errors.New("meshing: capacity exhausted, mesh is partial")

// Vertex is a cube corner in world units (two per grid cell).
type Vertex struct {
	X, Y, Z int
}

// Triangle references three vertices of its mesh and carries the face color.
type Triangle struct {
	V     [3]int
	Color world.ColorRef
}

// Limits caps the size of a mesh. Zero or negative means unbounded.
type Limits struct {
	MaxVertices  int
	MaxTriangles int
}

// DefaultLimits matches the stock capacity of 3000 vertices and triangles.
var DefaultLimits = Limits{MaxVertices: 3000, MaxTriangles: 3000}

// Mesh is a deduplicated indexed triangle list.
type Mesh struct {
	Vertices  []Vertex
	Triangles []Triangle

	limits    Limits
	vertexIdx map[Vertex]int
	triIdx    map[[3]int]int
	dropped   int
}

// NewMesh returns an empty mesh bounded by l.
func NewMesh(l Limits) *Mesh {
	return &Mesh{
		limits:    l,
		vertexIdx: make(map[Vertex]int),
		triIdx:    make(map[[3]int]int),
	}
}

// Reset empties the mesh, keeping its allocations.
func (m *Mesh) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Triangles = m.Triangles[:0]
	clear(m.vertexIdx)
	clear(m.triIdx)
	m.dropped = 0
}

// Limits returns the capacity bounds of the mesh.
func (m *Mesh) Limits() Limits {
	return m.limits
}

// AddVertex returns the index of v, inserting it if it is new.
// It returns NoSlot when v is new and the mesh is full.
func (m *Mesh) AddVertex(v Vertex) int {
	if i, ok := m.vertexIdx[v]; ok {
		return i
	}
	if m.limits.MaxVertices > 0 && len(m.Vertices) >= m.limits.MaxVertices {
		return NoSlot
	}
	i := len(m.Vertices)
	m.Vertices = append(m.Vertices, v)
	m.vertexIdx[v] = i
	return i
}

// AddTriangle inserts the triangle (a, b, c) unless an identical ordered
// triple is already present, in which case the existing entry wins.
// It returns false only when the triangle could not be stored.
func (m *Mesh) AddTriangle(a, b, c int, color world.ColorRef) bool {
	if a == NoSlot || b == NoSlot || c == NoSlot {
		return false
	}
	key := [3]int{a, b, c}
	if _, ok := m.triIdx[key]; ok {
		return true
	}
	if m.limits.MaxTriangles > 0 && len(m.Triangles) >= m.limits.MaxTriangles {
		return false
	}
	m.triIdx[key] = len(m.Triangles)
	m.Triangles = append(m.Triangles, Triangle{V: key, Color: color})
	return true
}

// Partial reports whether any triangle was dropped since the last Reset.
func (m *Mesh) Partial() bool {
	return m.dropped > 0
}

// Dropped returns how many triangles were dropped since the last Reset.
func (m *Mesh) Dropped() int {
	return m.dropped
}

// Corners returns the three vertices of triangle i.
func (m *Mesh) Corners(i int) [3]Vertex {
	t := m.Triangles[i].V
	return [3]Vertex{m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]}
}
