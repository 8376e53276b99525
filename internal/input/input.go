package input

import (
	"sync"
	"unicode"
)

// Action represents a logical game action, not a physical key
type Action int

// Action constants using iota
const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionLookUp
	ActionLookDown
	ActionLookLeft
	ActionLookRight
	ActionJump
	ActionPlace
	ActionBreak
	ActionPrevBlock
	ActionNextBlock
	ActionPause
	ActionConfirm
	ActionQuit
	ActionToggleProfiling
	ActionCount // Sentinel value for array sizing
)

// KeyCode names keys that have no printable rune.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyInterrupt
)

// Key is a physical key as reported by a display. Printable keys use
// KeyRune with a lower-cased Rune; everything else uses its Code.
type Key struct {
	Code KeyCode
	Rune rune
}

// RuneKey returns the Key for a printable character.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: unicode.ToLower(r)}
}

// CodeKey returns the Key for a named key.
func CodeKey(c KeyCode) Key {
	return Key{Code: c}
}

// InputManager manages keyboard state and maps physical keys to logical actions
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[Key][]Action

	// Current frame state (indexed by Action)
	currentState [ActionCount]bool

	// Previous frame state (for edge detection)
	prevState [ActionCount]bool

	// Just pressed/released flags (reset each frame)
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[Key][]Action),
	}

	im.BindKey(CodeKey(KeyUp), ActionMoveForward)
	im.BindKey(CodeKey(KeyDown), ActionMoveBackward)
	im.BindKey(CodeKey(KeyLeft), ActionMoveLeft)
	im.BindKey(CodeKey(KeyRight), ActionMoveRight)
	im.BindKey(RuneKey('w'), ActionLookUp)
	im.BindKey(RuneKey('s'), ActionLookDown)
	im.BindKey(RuneKey('a'), ActionLookLeft)
	im.BindKey(RuneKey('d'), ActionLookRight)
	im.BindKey(RuneKey(' '), ActionJump)
	im.BindKey(RuneKey('z'), ActionPlace)
	im.BindKey(RuneKey('x'), ActionBreak)
	im.BindKey(RuneKey('q'), ActionPrevBlock)
	im.BindKey(RuneKey('e'), ActionNextBlock)
	im.BindKey(CodeKey(KeyEscape), ActionPause)
	im.BindKey(CodeKey(KeyEnter), ActionConfirm)
	im.BindKey(CodeKey(KeyInterrupt), ActionQuit)
	im.BindKey(RuneKey('p'), ActionToggleProfiling)

	return im
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action
func (im *InputManager) BindKey(key Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key Key) {
	im.mu.Lock()
	defer im.mu.Unlock()

	delete(im.keyToActions, key)
}

// HandleKeyEvent processes a key press or release and updates internal state
func (im *InputManager) HandleKeyEvent(key Key, pressed bool) {
	im.mu.RLock()
	actions, exists := im.keyToActions[key]
	im.mu.RUnlock()

	if !exists {
		return
	}

	im.mu.Lock()
	for _, act := range actions {
		if act >= 0 && act < ActionCount {
			// Detect edges immediately when event arrives
			if pressed && !im.currentState[act] {
				im.justPressed[act] = true
			}
			if !pressed && im.currentState[act] {
				im.justReleased[act] = true
			}
			im.currentState[act] = pressed
		}
	}
	im.mu.Unlock()
}

// PostUpdate must be called at the end of each frame to update edge detection states
// This should be called after all input checks are done
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	// Reset edge flags and update prev state
	for i := range ActionCount {
		im.justPressed[i] = false
		im.justReleased[i] = false
		im.prevState[i] = im.currentState[i]
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justReleased[action]
}

// WasActive returns true if the action was held at the end of the previous frame
func (im *InputManager) WasActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.prevState[action]
}
