package widget

import (
	"termcraft/internal/graphics"
	"termcraft/internal/input"
)

type Toggle struct {
	BaseComponent
	Label    string
	IsOn     bool
	OnToggle func(isOn bool)
}

func NewToggle(label string, w int, initial bool, onToggle func(isOn bool)) *Toggle {
	return &Toggle{
		BaseComponent: BaseComponent{W: w},
		Label:         label,
		IsOn:          initial,
		OnToggle:      onToggle,
	}
}

func (t *Toggle) Render(s graphics.Surface, focused bool) {
	state := "Off"
	if t.IsOn {
		state = "On"
	}
	t.drawLine(s, t.Label+": "+state, focused)
}

// HandleInput flips the toggle on confirm or on either navigation key.
func (t *Toggle) HandleInput(in input.Intents) bool {
	if !in.Confirm && in.Navigate == 0 {
		return false
	}
	t.IsOn = !t.IsOn
	if t.OnToggle != nil {
		t.OnToggle(t.IsOn)
	}
	return true
}
