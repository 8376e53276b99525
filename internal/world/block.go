package world

// BlockType identifies the contents of a grid cell. Empty marks an unoccupied
// cell, every other value is an index into a Palette.
type BlockType int

const Empty BlockType = -1

const (
	BlockTypeGrass BlockType = iota
	BlockTypeDirt
	BlockTypeStone
	BlockTypeLog
	BlockTypeLeaves
	BlockTypeBrick
	BlockTypeCopper
	BlockTypeSand
	BlockTypeMoss
	BlockTypeIce
	BlockTypeWater
	BlockTypeAmethyst
	BlockTypeMarble
	BlockTypeSnow
	BlockTypeCrystal
	BlockTypeObsidian
	BlockTypeCoal
	BlockTypeBookshelf
)

// MaxBlockType is the highest block id the default palette defines.
const MaxBlockType = BlockTypeBookshelf

// ColorRef selects how a face is painted. A positive value fills the face with
// blank glyphs in that color pair, a negative value draws a patterned glyph in
// the pair -ref.
type ColorRef int

// Patterned reports whether faces using this reference get a patterned glyph.
func (c ColorRef) Patterned() bool {
	return c < 0
}

// Pair returns the color pair id the reference points at.
func (c ColorRef) Pair() int {
	if c < 0 {
		return int(-c)
	}
	return int(c)
}

// BlockDef describes how one block type is drawn.
type BlockDef struct {
	Name   string
	Top    ColorRef
	Side   ColorRef
	Bottom ColorRef
}

// Palette is indexed by BlockType.
type Palette []BlockDef

// DefaultPalette holds the stock block set.
var DefaultPalette = Palette{
	BlockTypeGrass:     {Name: "Grass", Top: 2, Side: -3, Bottom: -3},
	BlockTypeDirt:      {Name: "Dirt", Top: -3, Side: -3, Bottom: -3},
	BlockTypeStone:     {Name: "Stone", Top: -4, Side: -4, Bottom: -4},
	BlockTypeLog:       {Name: "Log", Top: 5, Side: -3, Bottom: 5},
	BlockTypeLeaves:    {Name: "Leaves", Top: -2, Side: -2, Bottom: -2},
	BlockTypeBrick:     {Name: "Brick", Top: 7, Side: 7, Bottom: 7},
	BlockTypeCopper:    {Name: "Copper", Top: -8, Side: -8, Bottom: -8},
	BlockTypeSand:      {Name: "Sand", Top: 8, Side: 8, Bottom: 8},
	BlockTypeMoss:      {Name: "Moss", Top: 2, Side: 2, Bottom: 2},
	BlockTypeIce:       {Name: "Ice", Top: 1, Side: 1, Bottom: 1},
	BlockTypeWater:     {Name: "Water", Top: 9, Side: 9, Bottom: 9},
	BlockTypeAmethyst:  {Name: "Amethyst", Top: 14, Side: 14, Bottom: 14},
	BlockTypeMarble:    {Name: "Marble", Top: -10, Side: -10, Bottom: -10},
	BlockTypeSnow:      {Name: "Snow", Top: 15, Side: 15, Bottom: 15},
	BlockTypeCrystal:   {Name: "Crystal", Top: -6, Side: -6, Bottom: -6},
	BlockTypeObsidian:  {Name: "Obsidian", Top: -14, Side: -14, Bottom: -14},
	BlockTypeCoal:      {Name: "Coal", Top: 3, Side: 3, Bottom: 3},
	BlockTypeBookshelf: {Name: "Bookshelf", Top: -13, Side: -16, Bottom: -16},
}

// Lookup returns the definition for b, or false when b has no entry.
func (p Palette) Lookup(b BlockType) (BlockDef, bool) {
	if b < 0 || int(b) >= len(p) {
		return BlockDef{}, false
	}
	return p[b], true
}

// Max returns the highest block type the palette defines.
func (p Palette) Max() BlockType {
	return BlockType(len(p) - 1)
}

// Name returns a printable name for b.
func (p Palette) Name(b BlockType) string {
	if b == Empty {
		return "Empty"
	}
	if def, ok := p.Lookup(b); ok {
		return def.Name
	}
	return "Unknown"
}
