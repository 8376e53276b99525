package world

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// DefaultSize is the side length of the stock world cube.
const DefaultSize = 16

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y, Z int
}

// NoCell marks the absence of a cell, e.g. when a ray finds nothing.
var NoCell = Cell{X: -1, Y: -1, Z: -1}

// Grid is a dense cube of block types. Its size is fixed at construction.
type Grid struct {
	size  int
	cells []BlockType
	dirty bool
}

// NewGrid creates a grid of the given side length with every cell empty.
func NewGrid(size int) *Grid {
	if size <= 0 {
		panic(fmt.Sprintf("world: invalid grid size %d", size))
	}
	g := &Grid{
		size:  size,
		cells: make([]BlockType, size*size*size),
		dirty: true,
	}
	g.Fill(Empty)
	return g
}

// Size returns the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// Len returns the total number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds reports whether (x, y, z) addresses a cell of the grid.
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size && z >= 0 && z < g.size
}

// index converts cell coordinates to a flat index, x outermost and z innermost.
func (g *Grid) index(x, y, z int) int {
	if !g.InBounds(x, y, z) {
		panic(fmt.Sprintf("world: cell (%d, %d, %d) outside %d^3 grid", x, y, z, g.size))
	}
	return (x*g.size+y)*g.size + z
}

// GetBlock returns the block at (x, y, z). Out-of-bounds coordinates panic;
// use IsSolid for neighbor probes that may leave the grid.
func (g *Grid) GetBlock(x, y, z int) BlockType {
	return g.cells[g.index(x, y, z)]
}

// SetBlock stores b at (x, y, z) and marks the grid dirty when the cell changes.
func (g *Grid) SetBlock(x, y, z int, b BlockType) {
	i := g.index(x, y, z)
	if g.cells[i] == b {
		return
	}
	g.cells[i] = b
	g.dirty = true
}

// At is GetBlock for a Cell.
func (g *Grid) At(c Cell) BlockType {
	return g.GetBlock(c.X, c.Y, c.Z)
}

// Set is SetBlock for a Cell.
func (g *Grid) Set(c Cell, b BlockType) {
	g.SetBlock(c.X, c.Y, c.Z, b)
}

// IsSolid reports whether (x, y, z) holds a block. Cells outside the grid
// are empty.
func (g *Grid) IsSolid(x, y, z int) bool {
	if !g.InBounds(x, y, z) {
		return false
	}
	return g.cells[(x*g.size+y)*g.size+z] != Empty
}

// IsAir is the complement of IsSolid.
func (g *Grid) IsAir(x, y, z int) bool {
	return !g.IsSolid(x, y, z)
}

// Fill sets every cell to b.
func (g *Grid) Fill(b BlockType) {
	for i := range g.cells {
		g.cells[i] = b
	}
	g.dirty = true
}

// IsDirty reports whether the grid changed since the last SetClean.
func (g *Grid) IsDirty() bool {
	return g.dirty
}

// SetClean clears the dirty flag once derived state has been rebuilt.
func (g *Grid) SetClean() {
	g.dirty = false
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{size: g.size, cells: make([]BlockType, len(g.cells)), dirty: true}
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.size != o.size {
		return false
	}
	for i, b := range g.cells {
		if o.cells[i] != b {
			return false
		}
	}
	return true
}

// Checksum hashes the grid contents in scan order.
func (g *Grid) Checksum() uint64 {
	h := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(g.size))
	_, _ = h.Write(buf[:])
	row := make([]byte, g.size)
	for i := 0; i < len(g.cells); i += g.size {
		for j := range row {
			row[j] = byte(g.cells[i+j])
		}
		_, _ = h.Write(row)
	}
	return h.Sum64()
}
