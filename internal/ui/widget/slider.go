package widget

import (
	"strconv"

	"termcraft/internal/graphics"
	"termcraft/internal/input"
)

type Slider struct {
	BaseComponent
	Label    string
	Value    int
	Min, Max int
	Step     int
	// Format renders the value; nil prints the number.
	Format   func(v int) string
	OnChange func(v int)
}

func NewSlider(label string, w, min, max, step, initial int, onChange func(v int)) *Slider {
	return &Slider{
		BaseComponent: BaseComponent{W: w},
		Label:         label,
		Value:         initial,
		Min:           min,
		Max:           max,
		Step:          step,
		OnChange:      onChange,
	}
}

func (s *Slider) Render(surf graphics.Surface, focused bool) {
	text := strconv.Itoa(s.Value)
	if s.Format != nil {
		text = s.Format(s.Value)
	}
	s.drawLine(surf, s.Label+": < "+text+" >", focused)
}

// HandleInput moves the value one step per navigation press.
func (s *Slider) HandleInput(in input.Intents) bool {
	if in.Navigate == 0 {
		return false
	}
	next := min(max(s.Value+in.Navigate*s.Step, s.Min), s.Max)
	if next == s.Value {
		return true
	}
	s.Value = next
	if s.OnChange != nil {
		s.OnChange(s.Value)
	}
	return true
}
