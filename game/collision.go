package game

import (
	"math"
	"time"

	"github.com/lguibr/duelpong/utils"
)

// collideWalls keeps the ball inside the vertical bounds by forcing the
// sign of Dy. It reports whether a wall was touched.
func (b *Ball) collideWalls(screenHeight float64) bool {
	if b.Y <= 0 {
		b.Dy = math.Abs(b.Dy)
		return true
	}
	if b.Bottom() >= screenHeight {
		b.Dy = -math.Abs(b.Dy)
		return true
	}
	return false
}

// bouncePlayer deflects the ball off the left paddle. The outgoing angle is
// measured from the +x axis.
func (b *Ball) bouncePlayer(paddle *Paddle, cfg utils.Config) bool {
	if b.Dx >= 0 || !b.Intersects(paddle.Rect) {
		return false
	}
	angle := paddle.HitPosition(b) * utils.DegToRad(cfg.MaxBounceAngleDeg)
	speed := math.Min(cfg.BallMaxSpeed, b.Speed()*cfg.SpeedIncrease)
	b.Dx = speed * math.Cos(angle)
	b.Dy = speed * math.Sin(angle)
	return true
}

// bounceOpponent deflects the ball off the right paddle. The angle is
// mirrored around the y axis, so hitting low still sends the ball down.
func (b *Ball) bounceOpponent(paddle *Paddle, cfg utils.Config) bool {
	if b.Dx <= 0 || !b.Intersects(paddle.Rect) {
		return false
	}
	angle := math.Pi - paddle.HitPosition(b)*utils.DegToRad(cfg.MaxBounceAngleDeg)
	speed := math.Min(cfg.BallMaxSpeed, b.Speed()*cfg.SpeedIncrease)
	b.Dx = speed * math.Cos(angle)
	b.Dy = speed * math.Sin(angle)
	return true
}

// resolveCollisions runs the per-frame resolver over the ball: walls, both
// paddles, then at most one power-up pickup. Velocity changes always apply;
// the position only advances when motion is allowed.
func (m *Match) resolveCollisions(now time.Time, res *StepResult) {
	ball := m.Ball

	if ball.collideWalls(m.cfg.ScreenHeight) {
		res.emit(CueWall)
	}

	if ball.bouncePlayer(m.Player, m.cfg) {
		m.consumeBoost(SidePlayer)
		res.emit(CuePong)
	} else if ball.bounceOpponent(m.Opponent, m.cfg) {
		m.consumeBoost(SideOpponent)
		res.emit(CuePong)
	}

	if m.pickUpPowerUp() {
		res.emit(CuePowerUp)
	}

	if m.ballMayMove(now) {
		ball.Advance()
	}
}

// consumeBoost applies a pending boost to the side that just hit the ball.
func (m *Match) consumeBoost(side Side) {
	if m.ActiveEffect == nil || *m.ActiveEffect != side {
		return
	}
	m.Ball.Dx *= m.cfg.BoostFactor
	m.Ball.capSpeed(m.cfg.BallMaxSpeed)
	m.ActiveEffect = nil
}

func (m *Match) ballMayMove(now time.Time) bool {
	return !m.GameOver && now.Sub(m.ScoreTime) > m.cfg.ScorePause
}
