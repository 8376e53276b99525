package game

import (
	"time"

	"termcraft/internal/config"
)

// pausedFPS caps the frame rate while the pause menu is open.
const pausedFPS = 30

// spinWindow is the tail of each wait spent busy-waiting instead of sleeping.
const spinWindow = 200 * time.Microsecond

// FPSLimiter paces the frame loop to the runtime FPS limit.
type FPSLimiter struct {
	next  time.Time
	limit func() int
}

func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{limit: config.GetFPSLimit}
}

// frameBudget returns the target frame duration, or 0 when uncapped.
func (f *FPSLimiter) frameBudget(paused bool) time.Duration {
	fps := f.limit()
	if paused && (fps <= 0 || fps > pausedFPS) {
		fps = pausedFPS
	}
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// Wait blocks until the next frame is due.
func (f *FPSLimiter) Wait(paused bool) {
	target := f.frameBudget(paused)
	if target == 0 {
		f.next = time.Time{}
		return
	}

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// resync after a hitch instead of rushing to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
