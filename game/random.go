package game

import (
	"math/rand"
	"sync"
)

// Rand is the uniform [0,1) source the core draws from. Tests script it.
type Rand interface {
	Float64() float64
}

type lockedRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

// NewRand returns a seeded source safe to share between hosts.
func NewRand(seed int64) Rand {
	return &lockedRand{src: rand.New(rand.NewSource(seed))}
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}
