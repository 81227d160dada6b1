package utils

import (
	"math"
)

// DirectionFromString maps a key name coming from a keyboard or a remote
// client to the internal "up"/"down" direction. Anything else is "".
func DirectionFromString(direction string) string {
	switch direction {
	case "ArrowUp", "w", "W", "up":
		return "up"
	case "ArrowDown", "s", "S", "down":
		return "down"
	}
	return ""
}

// IsRestartKey reports whether a key name requests a restart.
func IsRestartKey(key string) bool {
	return key == "r" || key == "R"
}

func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Magnitude is the euclidean length of (x, y).
func Magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Uniform draws from [min, max) using a [0,1) sample.
func Uniform(sample, min, max float64) float64 {
	return sample*(max-min) + min
}

func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
