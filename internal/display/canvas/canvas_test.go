package canvas

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termcraft/internal/graphics"
)

func TestImageSize(t *testing.T) {
	c := New(10, 4)
	cols, rows := c.Size()
	assert.Equal(t, 10, cols)
	assert.Equal(t, 4, rows)
	assert.Equal(t, 10*CellWidth, c.Image().Bounds().Dx())
	assert.Equal(t, 4*CellHeight, c.Image().Bounds().Dy())
}

func TestShowPaintsBackground(t *testing.T) {
	c := New(4, 2)
	c.Clear()
	c.SetCell(1, 2, ' ', graphics.PairHighlight)
	require.NoError(t, c.Show())

	sky := graphics.LookupPair(graphics.PairSky).Bg
	r, g, b := sky.RGB()
	got := c.Image().RGBAAt(1, 1)
	assert.Equal(t, [3]uint8{r, g, b}, [3]uint8{got.R, got.G, got.B})

	hl := graphics.LookupPair(graphics.PairHighlight).Bg
	r, g, b = hl.RGB()
	got = c.Image().RGBAAt(2*CellWidth+1, CellHeight+1)
	assert.Equal(t, [3]uint8{r, g, b}, [3]uint8{got.R, got.G, got.B})
}

func TestShowDrawsGlyphPixels(t *testing.T) {
	c := New(1, 1)
	c.SetCell(0, 0, '@', graphics.PairText)
	require.NoError(t, c.Show())

	fr, fg, fb := graphics.LookupPair(graphics.PairText).Fg.RGB()
	found := false
	for y := range CellHeight {
		for x := range CellWidth {
			p := c.Image().RGBAAt(x, y)
			if p.R == fr && p.G == fg && p.B == fb {
				found = true
			}
		}
	}
	assert.True(t, found, "expected foreground pixels for '@'")
}

func TestSavePNG(t *testing.T) {
	c := New(3, 2)
	c.SetCell(0, 0, '#', graphics.PairCrosshair)
	require.NoError(t, c.Show())

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, c.SavePNG(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, c.Image().Bounds(), img.Bounds())
}
