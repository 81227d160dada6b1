package utils

import "time"

// FrameMeter turns successive frame timestamps into an FPS reading.
// Deltas that are non-positive or longer than a second are dropped, so a
// stalled tab or a clock step never produces absurd values.
type FrameMeter struct {
	last time.Time
	fps  float64
}

const maxFrameDelta = time.Second

// Tick records a frame at now and returns the current FPS estimate.
func (m *FrameMeter) Tick(now time.Time) float64 {
	if m.last.IsZero() {
		m.last = now
		return m.fps
	}
	delta := now.Sub(m.last)
	m.last = now
	if delta <= 0 || delta > maxFrameDelta {
		return m.fps
	}
	m.fps = float64(time.Second) / float64(delta)
	return m.fps
}

func (m *FrameMeter) FPS() float64 { return m.fps }
