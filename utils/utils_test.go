package utils

import (
	"math"
	"testing"
	"time"
)

func TestDirectionFromString(t *testing.T) {
	testCases := map[string]string{
		"ArrowUp":    "up",
		"w":          "up",
		"W":          "up",
		"ArrowDown":  "down",
		"s":          "down",
		"S":          "down",
		"ArrowLeft":  "",
		"ArrowRight": "",
		"":           "",
	}

	for input, expected := range testCases {
		result := DirectionFromString(input)
		if result != expected {
			t.Errorf("DirectionFromString(%s) = %s, want %s", input, result, expected)
		}
	}
}

func TestIsRestartKey(t *testing.T) {
	if !IsRestartKey("r") || !IsRestartKey("R") {
		t.Error("Expected r and R to be restart keys")
	}
	if IsRestartKey("q") {
		t.Error("Expected q not to be a restart key")
	}
}

func TestClamp(t *testing.T) {
	testCases := []struct {
		value, min, max, expected float64
		name                      string
	}{
		{5, 0, 10, 5, "inside"},
		{-3, 0, 10, 0, "below"},
		{12, 0, 10, 10, "above"},
		{0, 0, 10, 0, "on lower edge"},
		{10, 0, 10, 10, "on upper edge"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if result := Clamp(tc.value, tc.min, tc.max); result != tc.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tc.value, tc.min, tc.max, result, tc.expected)
			}
		})
	}
}

func TestMagnitude(t *testing.T) {
	testCases := []struct {
		x, y, expected float64
	}{
		{3, 4, 5},
		{0, 0, 0},
		{-3, -4, 5},
		{1, 1, math.Sqrt2},
	}
	for _, tc := range testCases {
		if result := Magnitude(tc.x, tc.y); math.Abs(result-tc.expected) > 1e-12 {
			t.Errorf("Magnitude(%v, %v) = %v, want %v", tc.x, tc.y, result, tc.expected)
		}
	}
}

func TestDegToRad(t *testing.T) {
	if result := DegToRad(60); math.Abs(result-math.Pi/3) > 1e-12 {
		t.Errorf("DegToRad(60) = %v, want %v", result, math.Pi/3)
	}
	if result := DegToRad(180); math.Abs(result-math.Pi) > 1e-12 {
		t.Errorf("DegToRad(180) = %v, want %v", result, math.Pi)
	}
}

func TestUniform(t *testing.T) {
	testCases := []struct {
		sample, min, max, expected float64
	}{
		{0, 5, 7, 5},
		{0.5, 5, 7, 6},
		{0.25, -2, 2, -1},
	}
	for _, tc := range testCases {
		if result := Uniform(tc.sample, tc.min, tc.max); math.Abs(result-tc.expected) > 1e-12 {
			t.Errorf("Uniform(%v, %v, %v) = %v, want %v", tc.sample, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	testCases := map[float64]float64{-2.5: 2.5, 0: 0, 3: 3}
	for input, expected := range testCases {
		if result := Abs(input); result != expected {
			t.Errorf("Abs(%v) = %v, want %v", input, result, expected)
		}
	}
}

func TestFrameMeter(t *testing.T) {
	start := time.Unix(1000, 0)
	meter := FrameMeter{}

	if fps := meter.Tick(start); fps != 0 {
		t.Errorf("Expected first tick to report 0 fps, got %v", fps)
	}
	if fps := meter.Tick(start.Add(20 * time.Millisecond)); math.Abs(fps-50) > 1e-9 {
		t.Errorf("Expected 50 fps for a 20ms frame, got %v", fps)
	}

	// Non-monotonic timestamp keeps the previous reading.
	if fps := meter.Tick(start); math.Abs(fps-50) > 1e-9 {
		t.Errorf("Expected backwards clock to keep 50 fps, got %v", fps)
	}

	// A huge gap is ignored as well.
	if fps := meter.Tick(start.Add(10 * time.Second)); math.Abs(fps-50) > 1e-9 {
		t.Errorf("Expected stalled frame to keep 50 fps, got %v", fps)
	}
	if meter.FPS() != meter.fps {
		t.Error("FPS() should report the last reading")
	}
}
