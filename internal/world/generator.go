package world

import (
	"math"
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
)

// TerrainGenerator fills a grid with initial content. Implementations must be
// deterministic: the same generator settings always produce the same grid.
type TerrainGenerator interface {
	Populate(g *Grid)
}

// Generate creates a grid of the given size with the classic generator.
func Generate(seed int64, size int) *Grid {
	g := NewGrid(size)
	NewClassicGenerator(seed).Populate(g)
	return g
}

// ClassicGenerator reproduces the stock worlds. Seed 0 builds a fixed demo
// scene; any other seed fills the lowest layers with random blocks.
type ClassicGenerator struct {
	seed      int64
	fillDepth int
	maxBlock  BlockType
}

// NewClassicGenerator creates a classic generator for seed.
func NewClassicGenerator(seed int64) *ClassicGenerator {
	return &ClassicGenerator{
		seed:      seed,
		fillDepth: 8,
		maxBlock:  MaxBlockType,
	}
}

// Populate overwrites g.
func (c *ClassicGenerator) Populate(g *Grid) {
	g.Fill(Empty)
	if c.seed == 0 {
		c.buildScene(g)
	} else {
		c.randomFill(g)
	}
	// marker blocks at the origin, present in every classic world
	setIfInBounds(g, 0, 0, 0, BlockTypeLog)
	setIfInBounds(g, 1, 0, 0, BlockTypeLeaves)
}

func (c *ClassicGenerator) randomFill(g *Grid) {
	r := rand.New(rand.NewPCG(uint64(c.seed), uint64(c.seed)^0x9e3779b97f4a7c15))
	depth := min(c.fillDepth, g.Size())
	for x := range g.Size() {
		for y := range depth {
			for z := range g.Size() {
				// ids 1..max, grass never appears in the random fill
				g.SetBlock(x, y, z, BlockType(r.IntN(int(c.maxBlock))+1))
			}
		}
	}
}

// buildScene lays out flat ground with a floating platform and a tree on top.
func (c *ClassicGenerator) buildScene(g *Grid) {
	for x := range g.Size() {
		for z := range g.Size() {
			for y := 0; y < 8 && y < g.Size(); y++ {
				switch {
				case y < 5:
					g.SetBlock(x, y, z, BlockTypeStone)
				case y < 7:
					g.SetBlock(x, y, z, BlockTypeDirt)
				default:
					g.SetBlock(x, y, z, BlockTypeGrass)
				}
			}
		}
	}

	// platform of leaves with two holes
	for x := 2; x <= 6; x++ {
		for y := 10; y <= 11; y++ {
			for z := 6; z <= 10; z++ {
				setIfInBounds(g, x, y, z, BlockTypeLeaves)
			}
		}
	}
	setIfInBounds(g, 2, 10, 6, Empty)
	setIfInBounds(g, 6, 11, 10, Empty)

	// canopy cross above the trunk
	for y := 12; y <= 13; y++ {
		setIfInBounds(g, 4, y, 8, BlockTypeLeaves)
		setIfInBounds(g, 3, y, 8, BlockTypeLeaves)
		setIfInBounds(g, 5, y, 8, BlockTypeLeaves)
		setIfInBounds(g, 4, y, 7, BlockTypeLeaves)
		setIfInBounds(g, 4, y, 9, BlockTypeLeaves)
	}

	for y := 8; y <= 11; y++ {
		setIfInBounds(g, 4, y, 8, BlockTypeLog)
	}
}

func setIfInBounds(g *Grid, x, y, z int, b BlockType) {
	if g.InBounds(x, y, z) {
		g.SetBlock(x, y, z, b)
	}
}

// NoiseGenerator builds rolling hills from a Perlin heightmap.
type NoiseGenerator struct {
	noise      *perlin.Perlin
	scale      float64
	baseHeight int
	amp        float64
}

// NewNoiseGenerator creates a heightmap generator for seed.
func NewNoiseGenerator(seed int64) *NoiseGenerator {
	return &NoiseGenerator{
		noise:      perlin.NewPerlin(2, 2, 3, seed),
		scale:      1.0 / 8.0,
		baseHeight: 6,
		amp:        4,
	}
}

// HeightAt returns the number of filled layers in column (x, z).
func (n *NoiseGenerator) HeightAt(x, z int) int {
	v := n.noise.Noise2D(float64(x)*n.scale, float64(z)*n.scale)
	return int(math.Floor(float64(n.baseHeight) + v*n.amp))
}

// Populate overwrites g.
func (n *NoiseGenerator) Populate(g *Grid) {
	g.Fill(Empty)
	for x := range g.Size() {
		for z := range g.Size() {
			h := min(max(n.HeightAt(x, z), 1), g.Size()-1)
			for y := 0; y < h; y++ {
				switch {
				case y == h-1:
					g.SetBlock(x, y, z, BlockTypeGrass)
				case y >= h-3:
					g.SetBlock(x, y, z, BlockTypeDirt)
				default:
					g.SetBlock(x, y, z, BlockTypeStone)
				}
			}
		}
	}
}
