package game

import (
	"fmt"

	"termcraft/internal/config"
	"termcraft/internal/display"
	"termcraft/internal/display/canvas"
	"termcraft/internal/display/term"
	"termcraft/internal/display/window"
	"termcraft/internal/world"
)

// NewWorld generates the starting grid described by cfg.
func NewWorld(cfg config.WorldConfig) (*world.Grid, error) {
	g := world.NewGrid(cfg.Size)
	switch cfg.Generator {
	case "", "classic":
		world.NewClassicGenerator(cfg.Seed).Populate(g)
	case "noise":
		world.NewNoiseGenerator(cfg.Seed).Populate(g)
	default:
		return nil, fmt.Errorf("unknown generator %q", cfg.Generator)
	}
	return g, nil
}

// OpenDisplay opens the surface named by cfg.Display.Surface.
func OpenDisplay(cfg config.Config) (display.Display, error) {
	switch cfg.Display.Surface {
	case "", "term":
		return term.New(cfg.Controls.KeyHold)
	case "window":
		return window.New(cfg.Display.Cols, cfg.Display.Rows)
	case "png":
		return canvas.New(cfg.Display.Cols, cfg.Display.Rows), nil
	default:
		return nil, fmt.Errorf("unknown surface %q", cfg.Display.Surface)
	}
}
