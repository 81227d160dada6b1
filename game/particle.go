package game

import (
	"github.com/lguibr/duelpong/utils"
)

// Particle is a purely cosmetic spark. It never touches gameplay state.
type Particle struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Dx    float64 `json:"dx"`
	Dy    float64 `json:"dy"`
	Life  int     `json:"life"`
	Color [3]int  `json:"color"`
	Size  float64 `json:"size"`
}

// Alpha is the remaining life fraction, used as opacity.
func (p Particle) Alpha(maxLife int) float64 {
	if maxLife <= 0 {
		return 0
	}
	return utils.Clamp(float64(p.Life)/float64(maxLife), 0, 1)
}

// burst spawns particles at (x, y). Draw order per particle: dx, dy, size.
func (m *Match) burst(x, y float64, color [3]int) {
	cfg := m.cfg
	for i := 0; i < cfg.ParticleBurst; i++ {
		m.Particles = append(m.Particles, Particle{
			X:     x,
			Y:     y,
			Dx:    utils.Uniform(m.rng.Float64(), -cfg.ParticleDrift, cfg.ParticleDrift),
			Dy:    utils.Uniform(m.rng.Float64(), -cfg.ParticleDrift, cfg.ParticleDrift),
			Life:  cfg.ParticleLife,
			Color: color,
			Size:  utils.Uniform(m.rng.Float64(), cfg.ParticleMinSize, cfg.ParticleMaxSize),
		})
	}
}

// updateParticles ages every particle by a frame and moves the survivors.
func (m *Match) updateParticles() {
	live := m.Particles[:0]
	for _, p := range m.Particles {
		p.Life--
		if p.Life <= 0 {
			continue
		}
		p.X += p.Dx
		p.Y += p.Dy
		p.Dy += m.cfg.ParticleGravity
		live = append(live, p)
	}
	m.Particles = live
}
