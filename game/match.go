// File: game/match.go
package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/lguibr/duelpong/utils"
)

// Match is the whole mutable state of one player-vs-AI session. It is not
// safe for concurrent use; hosts serialise access (an actor mailbox or the
// ebiten update loop).
type Match struct {
	ID            string     `json:"id"`
	Player        *Paddle    `json:"player"`
	Opponent      *Paddle    `json:"opponent"`
	Ball          *Ball      `json:"ball"`
	PowerUps      []PowerUp  `json:"powerUps"`
	Particles     []Particle `json:"particles"`
	ActiveEffect  *Side      `json:"activeEffect"` // Pending boost, at most one
	PlayerScore   int        `json:"playerScore"`
	OpponentScore int        `json:"opponentScore"`
	GameOver      bool       `json:"gameOver"`
	EndText       string     `json:"endText"`
	ScoreTime     time.Time  `json:"scoreTime"` // Start of the current grace window
	Frame         uint64     `json:"frame"`

	cfg utils.Config
	rng Rand
}

// NewMatch builds a match with a freshly served ball. The grace window
// starts closed, so the ball moves from the first frame.
func NewMatch(cfg utils.Config, rng Rand) *Match {
	m := &Match{
		ID:       uuid.NewString(),
		Player:   NewPlayerPaddle(cfg),
		Opponent: NewOpponentPaddle(cfg),
		Ball:     NewBall(cfg),
		cfg:      cfg,
		rng:      rng,
	}
	m.Ball.Serve(cfg, rng)
	return m
}

func (m *Match) Config() utils.Config {
	return m.cfg
}

// Step advances the match by one fixed frame.
func (m *Match) Step(in Input, now time.Time) StepResult {
	res := StepResult{}
	m.Frame++

	if in.Restart && m.GameOver {
		m.Restart()
		res.Restarted = true
	}

	if !m.GameOver {
		m.Player.Velocity = in.Intent.Velocity(m.cfg.PlayerSpeed)
		m.Player.Move(m.cfg.ScreenHeight)

		DriveOpponent(m.Opponent, m.Ball, m.cfg)
		m.Opponent.Move(m.cfg.ScreenHeight)

		m.resolveCollisions(now, &res)
		m.spawnPowerUp(now)
		m.expirePowerUps(now)
	}

	m.checkScore(now, &res)
	m.updateParticles()

	return res
}

// checkScore awards a point once the ball has fully left the field and
// starts the next rally.
func (m *Match) checkScore(now time.Time, res *StepResult) {
	ball := m.Ball
	switch {
	case ball.ExitedLeft():
		m.OpponentScore++
		m.burst(ball.X, ball.CenterY(), m.cfg.ParticleColor)
		if m.OpponentScore == m.cfg.TargetScore {
			m.finish(false, res)
		}
	case ball.ExitedRight(m.cfg.ScreenWidth):
		m.PlayerScore++
		m.burst(ball.Right(), ball.CenterY(), m.cfg.ParticleColor)
		if m.PlayerScore == m.cfg.TargetScore {
			m.finish(true, res)
		}
	default:
		return
	}

	res.emit(CueScore)
	ball.Serve(m.cfg, m.rng)
	m.ScoreTime = now
}

func (m *Match) finish(playerWon bool, res *StepResult) {
	m.GameOver = true
	if playerWon {
		m.EndText = utils.WinText
		res.emit(CueWinner)
	} else {
		m.EndText = utils.LoseText
		res.emit(CueLoser)
	}
	res.GameOver = &GameOverNotice{
		Message:       m.EndText,
		PlayerScore:   m.PlayerScore,
		OpponentScore: m.OpponentScore,
		PlayerWon:     playerWon,
	}
}

// Restart resets scores and effects and serves a new ball. Paddles keep
// their positions.
func (m *Match) Restart() {
	m.GameOver = false
	m.EndText = ""
	m.PlayerScore = 0
	m.OpponentScore = 0
	m.ActiveEffect = nil
	m.Ball.Serve(m.cfg, m.rng)
	m.PowerUps = nil
	m.Particles = nil
}
