package widget

import (
	"termcraft/internal/graphics"
	"termcraft/internal/input"
)

// Component is one line of a character-cell form.
type Component interface {
	Render(s graphics.Surface, focused bool)
	HandleInput(in input.Intents) bool
	SetPosition(row, col int)
	SetWidth(w int)
	Width() int
}

type BaseComponent struct {
	Row, Col, W int
}

func (b *BaseComponent) SetPosition(row, col int) { b.Row, b.Col = row, col }
func (b *BaseComponent) SetWidth(w int)           { b.W = w }
func (b *BaseComponent) Width() int               { return b.W }

// drawLine pads text to the component width, centered, and draws it.
func (b *BaseComponent) drawLine(s graphics.Surface, text string, focused bool) {
	pair := graphics.PairText
	if focused {
		pair = graphics.PairCrosshair
		text = "> " + text + " <"
	}

	runes := []rune(text)
	if len(runes) > b.W {
		runes = runes[:b.W]
	}
	pad := (b.W - len(runes)) / 2

	for i := range b.W {
		r := ' '
		if j := i - pad; j >= 0 && j < len(runes) {
			r = runes[j]
		}
		s.SetCell(b.Row, b.Col+i, r, pair)
	}
}
