package game

import (
	"time"

	"github.com/lguibr/duelpong/utils"
)

type PowerUpKind string

const (
	PowerUpGood PowerUpKind = "good"
	PowerUpBad  PowerUpKind = "bad" // Only drawn differently
)

// Side names the paddle a pending boost favours.
type Side string

const (
	SidePlayer   Side = "player"
	SideOpponent Side = "opponent"
)

type PowerUp struct {
	Rect
	Kind      PowerUpKind `json:"kind"`
	SpawnedAt time.Time   `json:"spawnedAt"`
}

func (p PowerUp) Expired(now time.Time, lifetime time.Duration) bool {
	return now.Sub(p.SpawnedAt) > lifetime
}

// spawnPowerUp rolls for a new power-up while there is room for one.
// Draw order: spawn check, x, y, kind.
func (m *Match) spawnPowerUp(now time.Time) {
	cfg := m.cfg
	if len(m.PowerUps) >= cfg.PowerUpMaxLive || m.rng.Float64() >= cfg.PowerUpSpawnChance {
		return
	}

	x := utils.Uniform(m.rng.Float64(), cfg.PowerUpInset, cfg.ScreenWidth-cfg.PowerUpInset)
	y := utils.Uniform(m.rng.Float64(), cfg.PowerUpInset, cfg.ScreenHeight-cfg.PowerUpInset)
	kind := PowerUpBad
	if m.rng.Float64() < cfg.PowerUpGoodChance {
		kind = PowerUpGood
	}

	m.PowerUps = append(m.PowerUps, PowerUp{
		Rect:      Rect{X: x, Y: y, Width: cfg.PowerUpSize, Height: cfg.PowerUpSize},
		Kind:      kind,
		SpawnedAt: now,
	})
}

// expirePowerUps drops every power-up that outlived its lifetime.
func (m *Match) expirePowerUps(now time.Time) {
	live := m.PowerUps[:0]
	for _, p := range m.PowerUps {
		if !p.Expired(now, m.cfg.PowerUpLifetime) {
			live = append(live, p)
		}
	}
	m.PowerUps = live
}

// pickUpPowerUp consumes the first power-up the ball overlaps. Either the
// side the ball is heading to gets a pending boost, replacing any previous
// one, or the ball is slowed down. The kind plays no part.
func (m *Match) pickUpPowerUp() bool {
	for i, p := range m.PowerUps {
		if !m.Ball.Intersects(p.Rect) {
			continue
		}
		if m.rng.Float64() < m.cfg.PowerUpBoostChance {
			side := SideOpponent
			if m.Ball.Dx < 0 {
				side = SidePlayer
			}
			m.ActiveEffect = &side
		} else {
			m.Ball.Dx *= m.cfg.DampenFactor
			m.Ball.Dy *= m.cfg.DampenFactor
		}
		m.PowerUps = append(m.PowerUps[:i], m.PowerUps[i+1:]...)
		return true
	}
	return false
}
