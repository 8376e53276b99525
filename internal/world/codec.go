package world

import (
	"errors"
	"fmt"
	"io"
)

// codecOffset keeps every encoded value in the printable ASCII range.
const codecOffset = 33

var (
	// ErrShortData is returned when a stream holds fewer bytes than the grid has cells.
	ErrShortData = errors.New("world: short grid data")
	// ErrInvalidBlock is returned when a decoded value falls outside [-1, max].
	ErrInvalidBlock = errors.New("world: invalid block value")
)

// EncodeBlock maps a block value to its stored byte.
func EncodeBlock(b BlockType) byte {
	return byte(int(b) + codecOffset)
}

// DecodeBlock maps a stored byte back to a block value.
func DecodeBlock(c byte) BlockType {
	return BlockType(int(c) - codecOffset)
}

// Encode serializes the grid as one byte per cell in scan order.
func Encode(g *Grid) []byte {
	out := make([]byte, len(g.cells))
	for i, b := range g.cells {
		out[i] = EncodeBlock(b)
	}
	return out
}

// Decode builds a grid of the given size from data. Bytes past the last cell
// are ignored. Values outside [-1, max] are rejected.
func Decode(data []byte, size int, max BlockType) (*Grid, error) {
	g := NewGrid(size)
	if len(data) < len(g.cells) {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrShortData, len(data), len(g.cells))
	}
	for i := range g.cells {
		b := DecodeBlock(data[i])
		if b < Empty || b > max {
			return nil, fmt.Errorf("%w: %d at offset %d", ErrInvalidBlock, b, i)
		}
		g.cells[i] = b
	}
	return g, nil
}

// WriteGrid writes the encoded grid to w.
func WriteGrid(w io.Writer, g *Grid) error {
	if _, err := w.Write(Encode(g)); err != nil {
		return fmt.Errorf("write grid: %w", err)
	}
	return nil
}

// ReadGrid reads exactly size^3 encoded cells from r.
func ReadGrid(r io.Reader, size int, max BlockType) (*Grid, error) {
	buf := make([]byte, size*size*size)
	n, err := io.ReadFull(r, buf)
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrShortData, n, len(buf))
	}
	if err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	return Decode(buf, size, max)
}
