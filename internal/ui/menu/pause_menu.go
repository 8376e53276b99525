package menu

import (
	"strconv"

	"termcraft/internal/config"
	"termcraft/internal/graphics"
	"termcraft/internal/input"
	"termcraft/internal/ui/widget"
)

const menuWidth = 28

type PauseMenu struct {
	items    []widget.Component
	selected int

	hud      *widget.Toggle
	fpsLimit *widget.Slider

	pending Action
	// Status is a one-line message shown under the items, e.g. the result of a save.
	Status  string
}

func NewPauseMenu() *PauseMenu {
	pm := &PauseMenu{}

	resumeBtn := widget.NewButton("Resume", menuWidth, func() { pm.pending = ActionResume })
	saveBtn := widget.NewButton("Save world", menuWidth, func() { pm.pending = ActionSave })

	pm.hud = widget.NewToggle("HUD", menuWidth, config.GetShowHUD(), func(isOn bool) {
		config.SetShowHUD(isOn)
	})

	// FPS Limit: 0 means uncapped and sits past the top of the range.
	pm.fpsLimit = widget.NewSlider("FPS limit", menuWidth, 0, 240, 15, config.GetFPSLimit(), func(v int) {
		config.SetFPSLimit(v)
	})
	pm.fpsLimit.Format = func(v int) string {
		if v <= 0 {
			return "uncapped"
		}
		return strconv.Itoa(v)
	}

	quitBtn := widget.NewButton("Quit", menuWidth, func() { pm.pending = ActionQuit })

	pm.items = []widget.Component{resumeBtn, saveBtn, pm.hud, pm.fpsLimit, quitBtn}
	return pm
}

// Selected returns the index of the focused item.
func (p *PauseMenu) Selected() int {
	return p.selected
}

// Reset focuses the first item and syncs widgets with the runtime settings.
func (p *PauseMenu) Reset() {
	p.selected = 0
	p.Status = ""
	p.hud.IsOn = config.GetShowHUD()
	p.fpsLimit.Value = config.GetFPSLimit()
}

// Update moves the focus and forwards the frame's intents to the focused item.
func (p *PauseMenu) Update(in input.Intents) Action {
	p.pending = ActionNone

	if in.Select != 0 {
		n := len(p.items)
		p.selected = ((p.selected+in.Select)%n + n) % n
		return ActionNone
	}

	p.items[p.selected].HandleInput(in)
	return p.pending
}

// Render draws the menu box centered on s.
func (p *PauseMenu) Render(s graphics.Surface) {
	cols, rows := s.Size()
	height := len(p.items) + 4
	top := max((rows-height)/2, 0)
	left := max((cols-menuWidth)/2, 0)

	title := widget.NewButton("PAUSED", menuWidth, nil)
	title.SetPosition(top, left)
	title.Render(s, false)

	for i, item := range p.items {
		item.SetPosition(top+2+i, left)
		item.Render(s, i == p.selected)
	}

	status := widget.NewButton(p.Status, menuWidth, nil)
	status.SetPosition(top+height-1, left)
	status.Render(s, false)
}
