package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"termcraft/internal/graphics"
	"termcraft/internal/input"
)

// Glyph cell size of basicfont.Face7x13.
const (
	CellWidth  = 7
	CellHeight = 13
)

// Canvas renders cells into an RGBA image using a fixed bitmap font. It has
// no keyboard of its own.
type Canvas struct {
	cells *graphics.Buffer
	img   *image.RGBA
	face  font.Face
}

func New(cols, rows int) *Canvas {
	c := &Canvas{
		cells: graphics.NewBuffer(cols, rows),
		face:  basicfont.Face7x13,
	}
	c.img = image.NewRGBA(image.Rect(0, 0, cols*CellWidth, rows*CellHeight))
	return c
}

func (c *Canvas) Size() (int, int) {
	return c.cells.Size()
}

func (c *Canvas) SetCell(row, col int, glyph rune, pair graphics.PairID) {
	c.cells.SetCell(row, col, glyph, pair)
}

// Cell returns the cell last written at row, col.
func (c *Canvas) Cell(row, col int) graphics.Cell {
	return c.cells.Cell(row, col)
}

func (c *Canvas) Clear() {
	c.cells.Clear(graphics.PairSky)
}

// Show paints every cell into the image.
func (c *Canvas) Show() error {
	cols, rows := c.cells.Size()
	for row := range rows {
		for col := range cols {
			c.drawCell(row, col, c.cells.Cell(row, col))
		}
	}
	return nil
}

func (c *Canvas) drawCell(row, col int, cell graphics.Cell) {
	p := graphics.LookupPair(cell.Pair)
	rect := image.Rect(col*CellWidth, row*CellHeight, (col+1)*CellWidth, (row+1)*CellHeight)
	draw.Draw(c.img, rect, image.NewUniform(rgba(p.Bg)), image.Point{}, draw.Src)

	if cell.Glyph == ' ' || cell.Glyph == 0 {
		return
	}
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(rgba(p.Fg)),
		Face: c.face,
		Dot:  fixed.P(col*CellWidth, row*CellHeight+basicfont.Face7x13.Ascent),
	}
	d.DrawString(string(cell.Glyph))
}

func rgba(c graphics.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Image returns the rendered frame. It is overwritten by the next Show.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Poll(im *input.InputManager) {}

func (c *Canvas) Close() error { return nil }

// SavePNG writes the last shown frame to path.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, c.img); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}
