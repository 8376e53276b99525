package input

import "github.com/go-gl/mathgl/mgl64"

// Intents is the per-frame snapshot the game consumes. Movement and look are
// held actions; everything else fires once per key press.
type Intents struct {
	// Move is strafe (X, right positive) and walk (Y, forward positive).
	Move mgl64.Vec2
	// Look is pitch (X, up positive) and yaw (Y, left positive).
	Look mgl64.Vec2

	Jump     bool
	Break    bool
	Place    bool
	Cycle    int
	Navigate int
	// Select moves a menu focus: up is -1, down is +1.
	Select int

	Pause           bool
	Confirm         bool
	Quit            bool
	ToggleProfiling bool
}

// held reports an action that is down now or was tapped during this frame.
func (im *InputManager) held(a Action) bool {
	return im.currentState[a] || im.justPressed[a]
}

func axis(neg, pos bool) float64 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	default:
		return 0
	}
}

func edge(neg, pos bool) int {
	return int(axis(neg, pos))
}

// Snapshot collects the intents for the current frame. Call it before PostUpdate.
func (im *InputManager) Snapshot() Intents {
	im.mu.RLock()
	defer im.mu.RUnlock()

	return Intents{
		Move: mgl64.Vec2{
			axis(im.held(ActionMoveLeft), im.held(ActionMoveRight)),
			axis(im.held(ActionMoveBackward), im.held(ActionMoveForward)),
		},
		Look: mgl64.Vec2{
			axis(im.held(ActionLookDown), im.held(ActionLookUp)),
			axis(im.held(ActionLookRight), im.held(ActionLookLeft)),
		},
		Jump:            im.held(ActionJump),
		Break:           im.justPressed[ActionBreak],
		Place:           im.justPressed[ActionPlace],
		Cycle:           edge(im.justPressed[ActionPrevBlock], im.justPressed[ActionNextBlock]),
		Navigate:        edge(im.justPressed[ActionMoveLeft], im.justPressed[ActionMoveRight]),
		Select:          edge(im.justPressed[ActionMoveForward], im.justPressed[ActionMoveBackward]),
		Pause:           im.justPressed[ActionPause],
		Confirm:         im.justPressed[ActionConfirm],
		Quit:            im.justPressed[ActionQuit],
		ToggleProfiling: im.justPressed[ActionToggleProfiling],
	}
}
