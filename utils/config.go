// File: utils/config.go
package utils

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configurable game parameters.
type Config struct {
	// Field
	ScreenWidth  float64 `json:"screenWidth" yaml:"screenWidth" toml:"screenWidth"`
	ScreenHeight float64 `json:"screenHeight" yaml:"screenHeight" toml:"screenHeight"`
	FrameRate    int     `json:"frameRate" yaml:"frameRate" toml:"frameRate"` // Host ticks per second; physics is fixed-step per tick

	// Paddles
	PlayerX        float64 `json:"playerX" yaml:"playerX" toml:"playerX"`
	PlayerWidth    float64 `json:"playerWidth" yaml:"playerWidth" toml:"playerWidth"`
	PlayerHeight   float64 `json:"playerHeight" yaml:"playerHeight" toml:"playerHeight"`
	PlayerSpeed    float64 `json:"playerSpeed" yaml:"playerSpeed" toml:"playerSpeed"`       // px/frame while a key is held
	OpponentInset  float64 `json:"opponentInset" yaml:"opponentInset" toml:"opponentInset"` // Distance of the opponent's left edge from the right wall
	OpponentWidth  float64 `json:"opponentWidth" yaml:"opponentWidth" toml:"opponentWidth"`
	OpponentHeight float64 `json:"opponentHeight" yaml:"opponentHeight" toml:"opponentHeight"`
	OpponentSpeed  float64 `json:"opponentSpeed" yaml:"opponentSpeed" toml:"opponentSpeed"` // Max AI step, px/frame
	AIDeadband     float64 `json:"aiDeadband" yaml:"aiDeadband" toml:"aiDeadband"`

	// Ball
	BallSize           float64 `json:"ballSize" yaml:"ballSize" toml:"ballSize"`
	BallMaxSpeed       float64 `json:"ballMaxSpeed" yaml:"ballMaxSpeed" toml:"ballMaxSpeed"`
	MaxBounceAngleDeg  float64 `json:"maxBounceAngleDeg" yaml:"maxBounceAngleDeg" toml:"maxBounceAngleDeg"`
	SpeedIncrease      float64 `json:"speedIncrease" yaml:"speedIncrease" toml:"speedIncrease"` // Multiplier applied on every paddle hit
	LaunchMinSpeed     float64 `json:"launchMinSpeed" yaml:"launchMinSpeed" toml:"launchMinSpeed"`
	LaunchMaxSpeed     float64 `json:"launchMaxSpeed" yaml:"launchMaxSpeed" toml:"launchMaxSpeed"`
	LaunchSpreadDeg    float64 `json:"launchSpreadDeg" yaml:"launchSpreadDeg" toml:"launchSpreadDeg"` // Serve angle drawn from [-spread, +spread]
	GlowSpeedThreshold float64 `json:"glowSpeedThreshold" yaml:"glowSpeedThreshold" toml:"glowSpeedThreshold"`

	// Power-ups
	PowerUpSpawnChance float64       `json:"powerUpSpawnChance" yaml:"powerUpSpawnChance" toml:"powerUpSpawnChance"` // Per frame
	PowerUpMaxLive     int           `json:"powerUpMaxLive" yaml:"powerUpMaxLive" toml:"powerUpMaxLive"`
	PowerUpSize        float64       `json:"powerUpSize" yaml:"powerUpSize" toml:"powerUpSize"`
	PowerUpInset       float64       `json:"powerUpInset" yaml:"powerUpInset" toml:"powerUpInset"`
	PowerUpGoodChance  float64       `json:"powerUpGoodChance" yaml:"powerUpGoodChance" toml:"powerUpGoodChance"`
	PowerUpBoostChance float64       `json:"powerUpBoostChance" yaml:"powerUpBoostChance" toml:"powerUpBoostChance"` // Otherwise the ball is dampened
	PowerUpLifetime    time.Duration `json:"powerUpLifetime" yaml:"powerUpLifetime" toml:"powerUpLifetime"`
	BoostFactor        float64       `json:"boostFactor" yaml:"boostFactor" toml:"boostFactor"`
	DampenFactor       float64       `json:"dampenFactor" yaml:"dampenFactor" toml:"dampenFactor"`

	// Round lifecycle
	ScorePause  time.Duration `json:"scorePause" yaml:"scorePause" toml:"scorePause"` // Ball freeze after every point
	TargetScore int           `json:"targetScore" yaml:"targetScore" toml:"targetScore"`

	// Particles
	ParticleBurst   int     `json:"particleBurst" yaml:"particleBurst" toml:"particleBurst"`
	ParticleLife    int     `json:"particleLife" yaml:"particleLife" toml:"particleLife"` // Frames
	ParticleDrift   float64 `json:"particleDrift" yaml:"particleDrift" toml:"particleDrift"`
	ParticleGravity float64 `json:"particleGravity" yaml:"particleGravity" toml:"particleGravity"`
	ParticleMinSize float64 `json:"particleMinSize" yaml:"particleMinSize" toml:"particleMinSize"`
	ParticleMaxSize float64 `json:"particleMaxSize" yaml:"particleMaxSize" toml:"particleMaxSize"`
	ParticleColor   [3]int  `json:"particleColor" yaml:"particleColor" toml:"particleColor"`

	// Hosts
	ListenAddr string `json:"listenAddr" yaml:"listenAddr" toml:"listenAddr"`
	LogLevel   string `json:"logLevel" yaml:"logLevel" toml:"logLevel"`
	LogFormat  string `json:"logFormat" yaml:"logFormat" toml:"logFormat"` // "console" or "json"
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  900,
		ScreenHeight: 500,
		FrameRate:    60,

		PlayerX:        20,
		PlayerWidth:    20,
		PlayerHeight:   100,
		PlayerSpeed:    7,
		OpponentInset:  35,
		OpponentWidth:  10,
		OpponentHeight: 50,
		OpponentSpeed:  30,
		AIDeadband:     5,

		BallSize:           25,
		BallMaxSpeed:       20,
		MaxBounceAngleDeg:  60,
		SpeedIncrease:      1.02,
		LaunchMinSpeed:     5,
		LaunchMaxSpeed:     7,
		LaunchSpreadDeg:    45,
		GlowSpeedThreshold: 8,

		PowerUpSpawnChance: 0.01,
		PowerUpMaxLive:     2,
		PowerUpSize:        20,
		PowerUpInset:       100,
		PowerUpGoodChance:  0.7,
		PowerUpBoostChance: 0.7,
		PowerUpLifetime:    10 * time.Second,
		BoostFactor:        1.3,
		DampenFactor:       0.7,

		ScorePause:  1500 * time.Millisecond,
		TargetScore: 10,

		ParticleBurst:   15,
		ParticleLife:    30,
		ParticleDrift:   2,
		ParticleGravity: 0.3,
		ParticleMinSize: 2,
		ParticleMaxSize: 4,
		ParticleColor:   [3]int{121, 8, 170},

		ListenAddr: ":3001",
		LogLevel:   "info",
		LogFormat:  "console",
	}
}

// FrameDuration is the host tick period derived from FrameRate.
func (c Config) FrameDuration() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FrameRate)
}

// Validate reports every inconsistent field at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.ScreenWidth > 0 && c.ScreenHeight > 0, "screen must be positive, got %vx%v", c.ScreenWidth, c.ScreenHeight)
	check(c.FrameRate > 0, "frameRate must be positive, got %d", c.FrameRate)
	check(c.PlayerWidth > 0 && c.PlayerHeight > 0, "player paddle must have positive extent")
	check(c.OpponentWidth > 0 && c.OpponentHeight > 0, "opponent paddle must have positive extent")
	check(c.PlayerHeight <= c.ScreenHeight && c.OpponentHeight <= c.ScreenHeight, "paddles must fit the screen height")
	check(c.BallSize > 0, "ballSize must be positive, got %v", c.BallSize)
	check(c.BallMaxSpeed > 0, "ballMaxSpeed must be positive, got %v", c.BallMaxSpeed)
	check(c.LaunchMinSpeed > 0 && c.LaunchMinSpeed <= c.LaunchMaxSpeed, "launch speed range [%v,%v] is invalid", c.LaunchMinSpeed, c.LaunchMaxSpeed)
	check(c.LaunchMaxSpeed <= c.BallMaxSpeed, "launchMaxSpeed %v exceeds ballMaxSpeed %v", c.LaunchMaxSpeed, c.BallMaxSpeed)
	check(c.MaxBounceAngleDeg > 0 && c.MaxBounceAngleDeg < 90, "maxBounceAngleDeg must be in (0,90), got %v", c.MaxBounceAngleDeg)
	check(c.PowerUpMaxLive >= 0, "powerUpMaxLive must not be negative")
	check(c.PowerUpInset*2 < c.ScreenWidth && c.PowerUpInset*2 < c.ScreenHeight, "powerUpInset %v leaves no spawn area", c.PowerUpInset)
	check(isProbability(c.PowerUpSpawnChance), "powerUpSpawnChance must be in [0,1]")
	check(isProbability(c.PowerUpGoodChance), "powerUpGoodChance must be in [0,1]")
	check(isProbability(c.PowerUpBoostChance), "powerUpBoostChance must be in [0,1]")
	check(c.PowerUpLifetime > 0, "powerUpLifetime must be positive")
	check(c.ScorePause >= 0, "scorePause must not be negative")
	check(c.TargetScore > 0, "targetScore must be positive, got %d", c.TargetScore)
	check(c.ParticleLife > 0, "particleLife must be positive, got %d", c.ParticleLife)
	check(c.ParticleMinSize <= c.ParticleMaxSize, "particle size range is inverted")

	return errors.Join(errs...)
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
