package config

import "sync"

// RuntimeSettings holds options that can change while the game runs
type RuntimeSettings struct {
	mu            sync.RWMutex
	fpsLimit      int
	showProfiling bool
	showHUD       bool
}

var globalRuntimeSettings = &RuntimeSettings{
	fpsLimit: 60,
	showHUD:  true,
}

// GetFPSLimit returns the frame cap; 0 means uncapped
func GetFPSLimit() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	// Clamp to reasonable values, 0 stays uncapped
	if limit < 0 {
		limit = 0
	}
	if limit > 0 && limit < 5 {
		limit = 5
	}
	if limit > 240 {
		limit = 240
	}

	globalRuntimeSettings.fpsLimit = limit
}

// GetShowProfiling returns whether the profiling overlay is visible
func GetShowProfiling() bool {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.showProfiling
}

// SetShowProfiling shows or hides the profiling overlay
func SetShowProfiling(enabled bool) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.showProfiling = enabled
}

// ToggleShowProfiling flips the profiling overlay and returns the new state
func ToggleShowProfiling() bool {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.showProfiling = !globalRuntimeSettings.showProfiling
	return globalRuntimeSettings.showProfiling
}

// GetShowHUD returns whether the status lines are drawn
func GetShowHUD() bool {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.showHUD
}

// SetShowHUD shows or hides the status lines
func SetShowHUD(enabled bool) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.showHUD = enabled
}

// Apply copies the runtime options of c into the global settings
func Apply(c Config) {
	SetFPSLimit(c.Display.FPSLimit)
	SetShowHUD(c.Display.HUD)
}
