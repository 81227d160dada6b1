// File: game/paddle_test.go
package game

import (
	"testing"

	"github.com/lguibr/duelpong/utils"
	"github.com/stretchr/testify/assert"
)

func TestPaddle_Placement(t *testing.T) {
	cfg := utils.DefaultConfig()

	player := NewPlayerPaddle(cfg)
	assert.Equal(t, Rect{X: 20, Y: 200, Width: 20, Height: 100}, player.Rect)

	opponent := NewOpponentPaddle(cfg)
	assert.Equal(t, Rect{X: 865, Y: 200, Width: 10, Height: 50}, opponent.Rect)
}

func TestPaddle_Move(t *testing.T) {
	cfg := utils.DefaultConfig()

	testCases := []struct {
		name      string
		initialY  float64
		intent    Intent
		expectedY float64
	}{
		{"Up", 200, IntentUp, 193},
		{"Down", 200, IntentDown, 207},
		{"None", 200, IntentNone, 200},
		{"Up_ClampTop", 3, IntentUp, 0},
		{"Down_ClampBottom", 398, IntentDown, 400},
		{"Up_AtTop", 0, IntentUp, 0},
		{"Down_AtBottom", 400, IntentDown, 400},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			paddle := NewPlayerPaddle(cfg)
			paddle.Y = tc.initialY
			paddle.Velocity = tc.intent.Velocity(cfg.PlayerSpeed)
			paddle.Move(cfg.ScreenHeight)

			if paddle.Y != tc.expectedY {
				t.Errorf("Expected Y=%v, got %v", tc.expectedY, paddle.Y)
			}
			if paddle.Y < 0 || paddle.Y > cfg.ScreenHeight-paddle.Height {
				t.Errorf("Paddle left the screen: Y=%v", paddle.Y)
			}
		})
	}
}

func TestPaddle_HitPosition(t *testing.T) {
	paddle := &Paddle{Rect: Rect{X: 20, Y: 200, Width: 20, Height: 100}}

	testCases := []struct {
		name     string
		ballY    float64
		expected float64
	}{
		{"centre", 237.5, 0},
		{"top edge", 187.5, -1},
		{"bottom edge", 287.5, 1},
		{"quarter low", 262.5, 0.5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ball := &Ball{Rect: Rect{X: 30, Y: tc.ballY, Width: 25, Height: 25}}
			assert.InDelta(t, tc.expected, paddle.HitPosition(ball), 1e-9)
		})
	}
}

func TestIntentFromKey(t *testing.T) {
	testCases := map[string]Intent{
		"ArrowUp":   IntentUp,
		"w":         IntentUp,
		"ArrowDown": IntentDown,
		"S":         IntentDown,
		"up":        IntentUp,
		"x":         IntentNone,
	}
	for key, expected := range testCases {
		assert.Equal(t, expected, IntentFromKey(key), key)
	}
	assert.Equal(t, "none", IntentNone.String())
	assert.Equal(t, -7.0, IntentUp.Velocity(7))
}
