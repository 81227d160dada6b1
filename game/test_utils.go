// File: game/test_utils.go
package game

import (
	"sync"
	"time"

	"github.com/lguibr/duelpong/utils"
)

// --- Test Helpers (shared with the actor and server tests) ---

// ScriptedRand replays a fixed sequence of samples, then returns Fallback
// forever. It makes every random branch of a Step deterministic.
type ScriptedRand struct {
	mu       sync.Mutex
	Values   []float64
	Fallback float64
	Draws    int
}

func NewScriptedRand(fallback float64, values ...float64) *ScriptedRand {
	return &ScriptedRand{Values: values, Fallback: fallback}
}

func (r *ScriptedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Draws++
	if len(r.Values) == 0 {
		return r.Fallback
	}
	v := r.Values[0]
	r.Values = r.Values[1:]
	return v
}

// Push appends samples to the script.
func (r *ScriptedRand) Push(values ...float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Values = append(r.Values, values...)
}

// QuietRand never spawns power-ups and always serves the ball straight to
// the right at the middle of the launch speed range.
func QuietRand() *ScriptedRand {
	return NewScriptedRand(0.5)
}

// NewTestMatch builds a match on the default config with a quiet random
// source, unless one is given.
func NewTestMatch(rng Rand) *Match {
	if rng == nil {
		rng = QuietRand()
	}
	return NewMatch(utils.DefaultConfig(), rng)
}

// TestClock hands out increasing timestamps one frame apart.
type TestClock struct {
	Now   time.Time
	Frame time.Duration
}

func NewTestClock() *TestClock {
	return &TestClock{Now: time.Unix(1_700_000_000, 0), Frame: time.Second / 60}
}

func (c *TestClock) Tick() time.Time {
	c.Now = c.Now.Add(c.Frame)
	return c.Now
}
