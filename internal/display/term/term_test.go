package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termcraft/internal/graphics"
	"termcraft/internal/input"
)

func newSim(t *testing.T) (*Display, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	d, err := NewWithScreen(sim, 50*time.Millisecond)
	require.NoError(t, err)
	sim.SetSize(40, 12)
	t.Cleanup(func() { d.Close() })
	return d, sim
}

func TestSetCellAndShow(t *testing.T) {
	d, sim := newSim(t)

	cols, rows := d.Size()
	assert.Equal(t, 40, cols)
	assert.Equal(t, 12, rows)

	d.SetCell(2, 5, '#', graphics.PairHighlight)
	require.NoError(t, d.Show())

	cells, w, _ := sim.GetContents()
	cell := cells[2*w+5]
	assert.Equal(t, []rune{'#'}, cell.Runes)

	fg, bg, _ := cell.Style.Decompose()
	p := graphics.LookupPair(graphics.PairHighlight)
	assert.Equal(t, tcell.PaletteColor(int(p.Fg)), fg)
	assert.Equal(t, tcell.PaletteColor(int(p.Bg)), bg)
}

func TestKeyPressAndSyntheticRelease(t *testing.T) {
	d, sim := newSim(t)
	im := input.NewInputManager()

	now := time.Now()
	d.now = func() time.Time { return now }

	sim.InjectKey(tcell.KeyRune, 'X', tcell.ModNone)
	require.Eventually(t, func() bool {
		d.Poll(im)
		return im.IsActive(input.ActionBreak)
	}, time.Second, 5*time.Millisecond)
	assert.True(t, im.JustPressed(input.ActionBreak))

	// still inside the hold window
	d.Poll(im)
	assert.True(t, im.IsActive(input.ActionBreak))

	now = now.Add(60 * time.Millisecond)
	d.Poll(im)
	assert.False(t, im.IsActive(input.ActionBreak))
	assert.True(t, im.JustReleased(input.ActionBreak))
}

func TestNamedKeys(t *testing.T) {
	d, sim := newSim(t)
	im := input.NewInputManager()

	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	require.Eventually(t, func() bool {
		d.Poll(im)
		return im.IsActive(input.ActionQuit)
	}, time.Second, 5*time.Millisecond)
	assert.True(t, im.IsActive(input.ActionMoveForward))
}

func TestMapKeyIgnoresUnknown(t *testing.T) {
	_, ok := mapKey(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))
	assert.False(t, ok)

	k, ok := mapKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.True(t, ok)
	assert.Equal(t, input.CodeKey(input.KeyEscape), k)
}
