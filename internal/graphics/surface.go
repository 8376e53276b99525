package graphics

// Surface is anything that can show a colored glyph at a row and column.
// Writes outside the surface are ignored.
type Surface interface {
	Size() (cols, rows int)
	SetCell(row, col int, glyph rune, pair PairID)
}

// Cell is one glyph of a Buffer.
type Cell struct {
	Glyph rune
	Pair  PairID
}

// Buffer is an in-memory Surface.
type Buffer struct {
	cols, rows int
	cells      []Cell
}

// NewBuffer creates a cols x rows buffer filled with blanks in the sky pair.
func NewBuffer(cols, rows int) *Buffer {
	b := &Buffer{}
	b.Resize(cols, rows)
	return b
}

// Resize changes the buffer size and clears it.
func (b *Buffer) Resize(cols, rows int) {
	b.cols, b.rows = max(cols, 0), max(rows, 0)
	if n := b.cols * b.rows; cap(b.cells) >= n {
		b.cells = b.cells[:n]
	} else {
		b.cells = make([]Cell, n)
	}
	b.Clear(PairSky)
}

// Clear fills the buffer with blanks in pair.
func (b *Buffer) Clear(pair PairID) {
	for i := range b.cells {
		b.cells[i] = Cell{Glyph: ' ', Pair: pair}
	}
}

// Size implements Surface.
func (b *Buffer) Size() (int, int) {
	return b.cols, b.rows
}

// SetCell implements Surface.
func (b *Buffer) SetCell(row, col int, glyph rune, pair PairID) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return
	}
	b.cells[row*b.cols+col] = Cell{Glyph: glyph, Pair: pair}
}

// Cell returns the contents at (row, col); the zero Cell when out of range.
func (b *Buffer) Cell(row, col int) Cell {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return Cell{}
	}
	return b.cells[row*b.cols+col]
}

// Row returns the glyphs of one row as a string.
func (b *Buffer) Row(row int) string {
	out := make([]rune, b.cols)
	for col := range out {
		out[col] = b.Cell(row, col).Glyph
	}
	return string(out)
}

// CopyTo writes every cell of b to s.
func (b *Buffer) CopyTo(s Surface) {
	for row := range b.rows {
		for col := range b.cols {
			c := b.cells[row*b.cols+col]
			s.SetCell(row, col, c.Glyph, c.Pair)
		}
	}
}

// WriteString writes text starting at (row, col), clipped to the surface.
func WriteString(s Surface, row, col int, text string, pair PairID) {
	for _, r := range text {
		s.SetCell(row, col, r, pair)
		col++
	}
}
