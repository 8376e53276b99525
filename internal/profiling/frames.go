package profiling

import "time"

// DefaultFrameWindow is the number of frames averaged for the FPS readout.
const DefaultFrameWindow = 60

// FrameTimer keeps a sliding window of frame durations.
type FrameTimer struct {
	window []time.Duration
	next   int
	filled int
	sum    time.Duration
}

// NewFrameTimer creates a timer averaging over the last n frames.
func NewFrameTimer(n int) *FrameTimer {
	if n <= 0 {
		n = DefaultFrameWindow
	}
	return &FrameTimer{window: make([]time.Duration, n)}
}

// Record adds one frame duration, evicting the oldest once the window is full.
func (f *FrameTimer) Record(d time.Duration) {
	f.sum -= f.window[f.next]
	f.window[f.next] = d
	f.sum += d
	f.next = (f.next + 1) % len(f.window)
	if f.filled < len(f.window) {
		f.filled++
	}
}

// Average returns the mean frame duration, or zero before the first frame.
func (f *FrameTimer) Average() time.Duration {
	if f.filled == 0 {
		return 0
	}
	return f.sum / time.Duration(f.filled)
}

// FPS returns the frame rate implied by the average duration.
func (f *FrameTimer) FPS() float64 {
	avg := f.Average()
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}
