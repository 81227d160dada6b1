package game

import "github.com/lguibr/duelpong/utils"

// Intent is the player's held vertical direction.
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
)

func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	}
	return "none"
}

// Velocity maps the intent to a paddle velocity in px/frame.
func (i Intent) Velocity(speed float64) float64 {
	switch i {
	case IntentUp:
		return -speed
	case IntentDown:
		return speed
	}
	return 0
}

// IntentFromKey maps a key or direction name to an Intent.
func IntentFromKey(key string) Intent {
	switch utils.DirectionFromString(key) {
	case "up":
		return IntentUp
	case "down":
		return IntentDown
	}
	return IntentNone
}

// Input is sampled once at the start of every Step.
type Input struct {
	Intent  Intent
	Restart bool // Only honoured while the match is over
}
