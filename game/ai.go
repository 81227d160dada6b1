package game

import (
	"math"

	"github.com/lguibr/duelpong/utils"
)

// DriveOpponent sets the opponent's velocity for this frame. It extrapolates
// the ball in a straight line to the right wall, ignoring wall bounces, and
// chases that point at a capped rate. Outside its engagement zone the
// opponent stays idle.
func DriveOpponent(opponent *Paddle, ball *Ball, cfg utils.Config) {
	opponent.Velocity = 0
	if ball.X <= cfg.ScreenWidth/3 || ball.Dx <= 0 {
		return
	}

	half := opponent.Height / 2
	predictedY := ball.Y + ball.Dy*(cfg.ScreenWidth-ball.X)/ball.Dx
	predictedY = utils.Clamp(predictedY, half, cfg.ScreenHeight-half)

	targetY := predictedY - half
	center := opponent.CenterY()

	switch {
	case center < targetY-cfg.AIDeadband:
		opponent.Velocity = math.Min(cfg.OpponentSpeed, targetY-center)
	case center > targetY+cfg.AIDeadband:
		opponent.Velocity = -math.Min(cfg.OpponentSpeed, center-targetY)
	}
}
