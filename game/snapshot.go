package game

import "github.com/lguibr/duelpong/utils"

// ParticleView is a particle together with its current opacity.
type ParticleView struct {
	Particle
	Alpha float64 `json:"alpha"`
}

// Snapshot is a deep copy of everything a renderer needs for one frame.
// It shares no memory with the Match, so it may cross goroutines.
type Snapshot struct {
	MatchID       string         `json:"matchId"`
	Frame         uint64         `json:"frame"`
	Width         float64        `json:"width"`
	Height        float64        `json:"height"`
	Player        Paddle         `json:"player"`
	Opponent      Paddle         `json:"opponent"`
	Ball          Ball           `json:"ball"`
	Glow          bool           `json:"glow"` // Ball is fast enough to be drawn with a halo
	PowerUps      []PowerUp      `json:"powerUps"`
	Particles     []ParticleView `json:"particles"`
	ActiveEffect  Side           `json:"activeEffect,omitempty"`
	PlayerScore   int            `json:"playerScore"`
	OpponentScore int            `json:"opponentScore"`
	GameOver      bool           `json:"gameOver"`
	EndText       string         `json:"endText,omitempty"`
}

func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		MatchID:       m.ID,
		Frame:         m.Frame,
		Width:         m.cfg.ScreenWidth,
		Height:        m.cfg.ScreenHeight,
		Player:        *m.Player,
		Opponent:      *m.Opponent,
		Ball:          *m.Ball,
		Glow:          utils.Abs(m.Ball.Dx) > m.cfg.GlowSpeedThreshold,
		PowerUps:      make([]PowerUp, len(m.PowerUps)),
		Particles:     make([]ParticleView, 0, len(m.Particles)),
		PlayerScore:   m.PlayerScore,
		OpponentScore: m.OpponentScore,
		GameOver:      m.GameOver,
		EndText:       m.EndText,
	}
	copy(s.PowerUps, m.PowerUps)
	for _, p := range m.Particles {
		s.Particles = append(s.Particles, ParticleView{Particle: p, Alpha: p.Alpha(m.cfg.ParticleLife)})
	}
	if m.ActiveEffect != nil {
		s.ActiveEffect = *m.ActiveEffect
	}
	return s
}
