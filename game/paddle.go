// File: game/paddle.go
package game

import (
	"github.com/lguibr/duelpong/utils"
)

type Paddle struct {
	Rect
	Velocity float64 `json:"velocity"` // px/frame, positive is down
}

// NewPlayerPaddle places the player's paddle on the left wall, vertically centred.
func NewPlayerPaddle(cfg utils.Config) *Paddle {
	return &Paddle{
		Rect: Rect{
			X:      cfg.PlayerX,
			Y:      cfg.ScreenHeight/2 - cfg.PlayerHeight/2,
			Width:  cfg.PlayerWidth,
			Height: cfg.PlayerHeight,
		},
	}
}

// NewOpponentPaddle places the AI paddle near the right wall.
func NewOpponentPaddle(cfg utils.Config) *Paddle {
	return &Paddle{
		Rect: Rect{
			X:      cfg.ScreenWidth - cfg.OpponentInset,
			Y:      cfg.ScreenHeight/2 - cfg.PlayerHeight/2,
			Width:  cfg.OpponentWidth,
			Height: cfg.OpponentHeight,
		},
	}
}

// Move applies the current velocity and keeps the paddle on screen.
func (p *Paddle) Move(screenHeight float64) {
	p.Y += p.Velocity
	p.Clamp(screenHeight)
}

func (p *Paddle) Clamp(screenHeight float64) {
	p.Y = utils.Clamp(p.Y, 0, screenHeight-p.Height)
}

// HitPosition is the ball's vertical offset from the paddle centre,
// normalised by half the paddle height. It can slightly exceed [-1,1]
// when the ball clips a corner.
func (p *Paddle) HitPosition(ball *Ball) float64 {
	return (ball.CenterY() - p.CenterY()) / (p.Height / 2)
}
