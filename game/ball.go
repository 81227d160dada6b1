package game

import (
	"math"

	"github.com/lguibr/duelpong/utils"
)

type Ball struct {
	Rect
	Dx float64 `json:"dx"`
	Dy float64 `json:"dy"`
}

func NewBall(cfg utils.Config) *Ball {
	return &Ball{Rect: Rect{Width: cfg.BallSize, Height: cfg.BallSize}}
}

func (b *Ball) Speed() float64 {
	return utils.Magnitude(b.Dx, b.Dy)
}

// Serve puts the ball back at the centre and launches it at a random angle
// within the spread, towards either side, with a random launch speed.
// Draw order: angle, side flip, speed.
func (b *Ball) Serve(cfg utils.Config, rng Rand) {
	b.X = cfg.ScreenWidth/2 - b.Width/2
	b.Y = cfg.ScreenHeight/2 - b.Height/2

	spread := utils.DegToRad(cfg.LaunchSpreadDeg)
	angle := utils.Uniform(rng.Float64(), -spread, spread)
	if rng.Float64() > 0.5 {
		angle += math.Pi
	}
	speed := utils.Uniform(rng.Float64(), cfg.LaunchMinSpeed, cfg.LaunchMaxSpeed)

	b.Dx = speed * math.Cos(angle)
	b.Dy = speed * math.Sin(angle)
}

// capSpeed rescales the velocity onto the speed limit when it is exceeded,
// keeping the direction.
func (b *Ball) capSpeed(max float64) {
	speed := b.Speed()
	if speed <= max || speed == 0 {
		return
	}
	ratio := max / speed
	b.Dx *= ratio
	b.Dy *= ratio
}

// Advance integrates one fixed step.
func (b *Ball) Advance() {
	b.X += b.Dx
	b.Y += b.Dy
}

// ExitedLeft reports the ball fully left the field on the player's side.
func (b *Ball) ExitedLeft() bool {
	return b.Right() <= 0
}

// ExitedRight reports the ball fully left the field on the opponent's side.
func (b *Ball) ExitedRight(screenWidth float64) bool {
	return b.X >= screenWidth
}
