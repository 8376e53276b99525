package display

import (
	"termcraft/internal/graphics"
	"termcraft/internal/input"
)

// Display is a character-cell surface the frame is drawn onto, plus the
// keyboard that comes with it.
type Display interface {
	graphics.Surface

	// Clear blanks the back buffer.
	Clear()
	// Show presents the back buffer.
	Show() error
	// Poll forwards pending key events to im without blocking. A request to
	// close the display arrives as a KeyInterrupt press.
	Poll(im *input.InputManager)
	Close() error
}
