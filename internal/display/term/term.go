package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"termcraft/internal/graphics"
	"termcraft/internal/input"
)

// DefaultKeyHold is how long a key counts as held after its last press.
const DefaultKeyHold = 120 * time.Millisecond

// Display draws onto a tcell screen. Terminals report key presses and
// autorepeats but no releases, so a key is released once no press for it
// arrived within the hold time.
type Display struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	styles  map[graphics.PairID]tcell.Style
	keyHold time.Duration
	held    map[input.Key]time.Time
	now     func() time.Time
}

// New opens the controlling terminal.
func New(keyHold time.Duration) (*Display, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return NewWithScreen(s, keyHold)
}

// NewWithScreen wraps an uninitialized screen, e.g. a simulation screen.
func NewWithScreen(s tcell.Screen, keyHold time.Duration) (*Display, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	s.HideCursor()
	s.Clear()

	if keyHold <= 0 {
		keyHold = DefaultKeyHold
	}

	d := &Display{
		screen:  s,
		events:  make(chan tcell.Event, 64),
		quit:    make(chan struct{}),
		styles:  make(map[graphics.PairID]tcell.Style),
		keyHold: keyHold,
		held:    make(map[input.Key]time.Time),
		now:     time.Now,
	}
	go s.ChannelEvents(d.events, d.quit)
	return d, nil
}

func (d *Display) Size() (int, int) {
	return d.screen.Size()
}

func (d *Display) SetCell(row, col int, glyph rune, pair graphics.PairID) {
	d.screen.SetContent(col, row, glyph, nil, d.style(pair))
}

func (d *Display) style(pair graphics.PairID) tcell.Style {
	if st, ok := d.styles[pair]; ok {
		return st
	}
	p := graphics.LookupPair(pair)
	st := tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(p.Fg))).
		Background(tcell.PaletteColor(int(p.Bg)))
	d.styles[pair] = st
	return st
}

func (d *Display) Clear() {
	d.screen.Clear()
}

func (d *Display) Show() error {
	d.screen.Show()
	return nil
}

func (d *Display) Poll(im *input.InputManager) {
drain:
	for {
		select {
		case ev, ok := <-d.events:
			if !ok {
				break drain
			}
			d.handle(ev, im)
		default:
			break drain
		}
	}

	now := d.now()
	for k, last := range d.held {
		if now.Sub(last) >= d.keyHold {
			im.HandleKeyEvent(k, false)
			delete(d.held, k)
		}
	}
}

func (d *Display) handle(ev tcell.Event, im *input.InputManager) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
	case *tcell.EventKey:
		k, ok := mapKey(ev)
		if !ok {
			return
		}
		im.HandleKeyEvent(k, true)
		d.held[k] = d.now()
	}
}

func mapKey(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return input.RuneKey(ev.Rune()), true
	case tcell.KeyUp:
		return input.CodeKey(input.KeyUp), true
	case tcell.KeyDown:
		return input.CodeKey(input.KeyDown), true
	case tcell.KeyLeft:
		return input.CodeKey(input.KeyLeft), true
	case tcell.KeyRight:
		return input.CodeKey(input.KeyRight), true
	case tcell.KeyEnter:
		return input.CodeKey(input.KeyEnter), true
	case tcell.KeyEscape:
		return input.CodeKey(input.KeyEscape), true
	case tcell.KeyCtrlC:
		return input.CodeKey(input.KeyInterrupt), true
	default:
		return input.Key{}, false
	}
}

// Close restores the terminal.
func (d *Display) Close() error {
	close(d.quit)
	d.screen.Fini()
	return nil
}
