package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termcraft/internal/config"
	"termcraft/internal/graphics"
	"termcraft/internal/input"
	"termcraft/internal/world"
)

// scriptedDisplay is an in-memory display that presses one batch of keys per
// poll.
type scriptedDisplay struct {
	*graphics.Buffer
	presses [][]input.Key
	shown   int
}

func (d *scriptedDisplay) Clear() { d.Buffer.Clear(graphics.PairSky) }

func (d *scriptedDisplay) Show() error {
	d.shown++
	return nil
}

func (d *scriptedDisplay) Close() error { return nil }

func (d *scriptedDisplay) Poll(im *input.InputManager) {
	if len(d.presses) == 0 {
		return
	}
	for _, k := range d.presses[0] {
		im.HandleKeyEvent(k, true)
	}
	d.presses = d.presses[1:]
}

func newTestApp(t *testing.T, presses ...[]input.Key) (*App, *scriptedDisplay) {
	t.Helper()
	cfg := config.Default()
	d := &scriptedDisplay{Buffer: graphics.NewBuffer(80, 24), presses: presses}
	s := NewSession(cfg, world.Generate(0, world.DefaultSize), nil)
	a, err := NewApp(d, input.NewInputManager(), s, cfg)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a, d
}

func TestStepRendersFrame(t *testing.T) {
	a, d := newTestApp(t)

	require.NoError(t, a.Step())
	assert.Equal(t, 1, d.shown)
	assert.False(t, a.Done())
	assert.Equal(t, graphics.GlyphCrosshair, d.Cell(12, 40).Glyph)
}

func TestStepQuitsOnInterrupt(t *testing.T) {
	a, d := newTestApp(t, []input.Key{input.CodeKey(input.KeyInterrupt)})

	require.NoError(t, a.Step())
	assert.True(t, a.Done())
	assert.Zero(t, d.shown)
}

func TestStepTogglesProfiling(t *testing.T) {
	defer config.SetShowProfiling(false)
	config.SetShowProfiling(false)

	a, _ := newTestApp(t, []input.Key{input.RuneKey('p')})
	require.NoError(t, a.Step())
	assert.True(t, config.GetShowProfiling())
}

func TestRunUntilQuit(t *testing.T) {
	a, d := newTestApp(t,
		nil,
		[]input.Key{input.CodeKey(input.KeyEscape)},
		[]input.Key{input.CodeKey(input.KeyUp)},
		[]input.Key{input.CodeKey(input.KeyEnter)},
	)

	// Escape pauses, Up wraps the focus to Quit, Enter activates it.
	require.NoError(t, a.Run(context.Background()))
	assert.True(t, a.Done())
	assert.Equal(t, 3, d.shown)
}

func TestRunStopsOnCancel(t *testing.T) {
	a, _ := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, a.Run(ctx), context.Canceled)
}
