// File: game/match_test.go
package game

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/lguibr/duelpong/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatch(t *testing.T) {
	m := NewTestMatch(nil)

	_, err := uuid.Parse(m.ID)
	assert.NoError(t, err, "match id should be a uuid")
	assert.Zero(t, m.PlayerScore)
	assert.Zero(t, m.OpponentScore)
	assert.False(t, m.GameOver)
	assert.Nil(t, m.ActiveEffect)
	assert.Equal(t, 6.0, m.Ball.Dx)
	assert.Equal(t, utils.DefaultConfig(), m.Config())
	assert.NotEqual(t, m.ID, NewTestMatch(nil).ID)
}

func TestMatch_StepMovesEverything(t *testing.T) {
	clock := NewTestClock()
	m := NewTestMatch(nil)
	startX := m.Ball.X

	res := m.Step(Input{Intent: IntentUp}, clock.Tick())

	assert.Equal(t, 193.0, m.Player.Y)
	assert.Equal(t, startX+6, m.Ball.X, "ball moves from the first frame")
	assert.Empty(t, res.Cues)
	assert.Nil(t, res.GameOver)
	assert.Equal(t, uint64(1), m.Frame)

	m.Step(Input{}, clock.Tick())
	assert.Equal(t, 193.0, m.Player.Y, "releasing the key stops the paddle")
}

// freezeBallAt parks the ball inside the grace window so a Step does not
// move it.
func freezeBallAt(m *Match, clock *TestClock, x float64) {
	m.ScoreTime = clock.Now
	m.Ball.X = x
	m.Ball.Dx = -5
}

func TestMatch_Scoring(t *testing.T) {
	testCases := []struct {
		name             string
		x                float64
		expectedPlayer   int
		expectedOpponent int
		expectedBurstX   float64
	}{
		{"exit left", -25, 0, 1, -25},
		{"exit right", 900, 1, 0, 925},
		{"partially out left", -24, 0, 0, 0},
		{"partially out right", 899, 0, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clock := NewTestClock()
			m := NewTestMatch(nil)
			freezeBallAt(m, clock, tc.x)
			now := clock.Tick()

			res := m.Step(Input{}, now)

			assert.Equal(t, tc.expectedPlayer, m.PlayerScore)
			assert.Equal(t, tc.expectedOpponent, m.OpponentScore)
			scored := tc.expectedPlayer+tc.expectedOpponent == 1
			assert.Equal(t, scored, res.Has(CueScore))
			if !scored {
				assert.Equal(t, tc.x, m.Ball.X)
				assert.Empty(t, m.Particles)
				return
			}

			require.Len(t, m.Particles, 15)
			// One frame of decay already happened.
			assert.Equal(t, tc.expectedBurstX, m.Particles[0].X)
			assert.Equal(t, 29, m.Particles[0].Life)
			assert.Equal(t, 437.5, m.Ball.X, "ball is served again from the centre")
			assert.Equal(t, now, m.ScoreTime)
			assert.False(t, m.GameOver)
		})
	}
}

func TestMatch_GraceWindowAfterScore(t *testing.T) {
	clock := NewTestClock()
	m := NewTestMatch(nil)
	freezeBallAt(m, clock, -25)
	m.Step(Input{}, clock.Tick())
	require.Equal(t, 1, m.OpponentScore)

	servedX := m.Ball.X
	// 1500ms at 60 fps is 90 frames.
	for i := 0; i < 89; i++ {
		m.Step(Input{}, clock.Tick())
	}
	assert.Equal(t, servedX, m.Ball.X, "ball frozen during the grace window")

	for m.Ball.X == servedX {
		m.Step(Input{}, clock.Tick())
	}
	assert.Equal(t, servedX+6, m.Ball.X)
	assert.Greater(t, clock.Now.Sub(m.ScoreTime), m.cfg.ScorePause)
}

func TestMatch_PlayerLoses(t *testing.T) {
	clock := NewTestClock()
	m := NewTestMatch(nil)
	m.OpponentScore = 9
	m.PlayerScore = 4
	freezeBallAt(m, clock, -30)

	res := m.Step(Input{}, clock.Tick())

	assert.True(t, m.GameOver)
	assert.Equal(t, 10, m.OpponentScore)
	assert.Equal(t, utils.LoseText, m.EndText)
	assert.Equal(t, []Cue{CueLoser, CueScore}, res.Cues)
	require.NotNil(t, res.GameOver)
	assert.Equal(t, GameOverNotice{Message: utils.LoseText, PlayerScore: 4, OpponentScore: 10}, *res.GameOver)

	// Frozen scene: nothing but particles move, and scores stay put.
	ballBefore := *m.Ball
	playerBefore := m.Player.Y
	for i := 0; i < 200; i++ {
		res = m.Step(Input{Intent: IntentDown}, clock.Tick())
		assert.Empty(t, res.Cues)
		assert.Nil(t, res.GameOver)
	}
	assert.Equal(t, ballBefore, *m.Ball)
	assert.Equal(t, playerBefore, m.Player.Y)
	assert.Equal(t, 10, m.OpponentScore)
	assert.Empty(t, m.Particles, "particles keep decaying while frozen")
}

func TestMatch_PlayerWins(t *testing.T) {
	clock := NewTestClock()
	m := NewTestMatch(nil)
	m.PlayerScore = 9
	freezeBallAt(m, clock, 905)

	res := m.Step(Input{}, clock.Tick())

	assert.True(t, m.GameOver)
	assert.Equal(t, utils.WinText, m.EndText)
	assert.Equal(t, []Cue{CueWinner, CueScore}, res.Cues)
	require.NotNil(t, res.GameOver)
	assert.True(t, res.GameOver.PlayerWon)
}

func TestMatch_Restart(t *testing.T) {
	clock := NewTestClock()
	m := NewTestMatch(nil)

	res := m.Step(Input{Restart: true}, clock.Tick())
	assert.False(t, res.Restarted, "restart is ignored while playing")

	m.PlayerScore, m.OpponentScore = 3, 9
	freezeBallAt(m, clock, -40)
	m.PowerUps = []PowerUp{{Rect: Rect{X: 300, Y: 300, Width: 20, Height: 20}, SpawnedAt: clock.Now}}
	side := SideOpponent
	m.ActiveEffect = &side
	m.Step(Input{}, clock.Tick())
	require.True(t, m.GameOver)
	require.NotEmpty(t, m.Particles)

	res = m.Step(Input{Restart: true}, clock.Tick())

	assert.True(t, res.Restarted)
	assert.False(t, m.GameOver)
	assert.Empty(t, m.EndText)
	assert.Zero(t, m.PlayerScore)
	assert.Zero(t, m.OpponentScore)
	assert.Empty(t, m.PowerUps)
	assert.Empty(t, m.Particles)
	assert.Nil(t, m.ActiveEffect)
	speed := m.Ball.Speed()
	assert.GreaterOrEqual(t, speed, 5.0-1e-9)
	assert.LessOrEqual(t, speed, 7.0+1e-9)
}

// TestMatch_Invariants plays a long random session and checks the
// properties that must hold after every frame.
func TestMatch_Invariants(t *testing.T) {
	cfg := utils.DefaultConfig()
	clock := NewTestClock()
	rng := NewRand(2024)
	m := NewMatch(cfg, rng)
	intents := []Intent{IntentUp, IntentNone, IntentDown}

	games := 0
	for frame := 0; frame < 20000; frame++ {
		in := Input{Intent: intents[(frame/45)%len(intents)], Restart: m.GameOver}
		playerBefore, opponentBefore := m.PlayerScore, m.OpponentScore
		wasOver := m.GameOver

		res := m.Step(in, clock.Tick())

		for _, p := range []*Paddle{m.Player, m.Opponent} {
			require.GreaterOrEqual(t, p.Y, 0.0, "frame %d", frame)
			require.LessOrEqual(t, p.Y, cfg.ScreenHeight-p.Height, "frame %d", frame)
		}
		require.LessOrEqual(t, m.Ball.Speed(), cfg.BallMaxSpeed+1e-9, "frame %d", frame)
		require.LessOrEqual(t, len(m.PowerUps), cfg.PowerUpMaxLive)
		for _, p := range m.PowerUps {
			require.False(t, p.Expired(clock.Now, cfg.PowerUpLifetime), "frame %d", frame)
		}
		require.LessOrEqual(t, m.PlayerScore, cfg.TargetScore)
		require.LessOrEqual(t, m.OpponentScore, cfg.TargetScore)

		if res.Restarted {
			require.True(t, wasOver)
			games++
			continue
		}
		gained := (m.PlayerScore - playerBefore) + (m.OpponentScore - opponentBefore)
		require.Contains(t, []int{0, 1}, gained, "at most one point per frame")
		if res.GameOver != nil {
			require.True(t, m.PlayerScore == cfg.TargetScore || m.OpponentScore == cfg.TargetScore)
		}
	}
	t.Logf("played %d complete games", games)
}

func TestMatch_Snapshot(t *testing.T) {
	m := NewTestMatch(nil)
	m.PowerUps = []PowerUp{{Rect: Rect{X: 300, Y: 300, Width: 20, Height: 20}, Kind: PowerUpGood}}
	m.Particles = []Particle{{X: 1, Y: 2, Life: 15}}
	side := SidePlayer
	m.ActiveEffect = &side
	m.Ball.Dx = 9

	snap := m.Snapshot()

	assert.Equal(t, m.ID, snap.MatchID)
	assert.True(t, snap.Glow)
	assert.Equal(t, SidePlayer, snap.ActiveEffect)
	require.Len(t, snap.Particles, 1)
	assert.InDelta(t, 0.5, snap.Particles[0].Alpha, 1e-9)

	// The snapshot must not alias match memory.
	m.Ball.X = -100
	m.PowerUps[0].X = -100
	m.Player.Y = 0
	assert.NotEqual(t, -100.0, snap.Ball.X)
	assert.Equal(t, 300.0, snap.PowerUps[0].X)
	assert.Equal(t, 200.0, snap.Player.Y)

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"activeEffect":"player"`)
	assert.Contains(t, string(data), `"glow":true`)
}
