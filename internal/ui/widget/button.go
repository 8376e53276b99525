package widget

import (
	"termcraft/internal/graphics"
	"termcraft/internal/input"
)

type Button struct {
	BaseComponent
	Text    string
	OnClick func()
}

func NewButton(text string, w int, onClick func()) *Button {
	return &Button{
		BaseComponent: BaseComponent{W: w},
		Text:          text,
		OnClick:       onClick,
	}
}

func (b *Button) Render(s graphics.Surface, focused bool) {
	b.drawLine(s, b.Text, focused)
}

// HandleInput fires OnClick on confirm.
func (b *Button) HandleInput(in input.Intents) bool {
	if !in.Confirm {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}
