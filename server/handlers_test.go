// File: server/handlers_test.go
package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lguibr/duelpong/bollywood"
	"github.com/lguibr/duelpong/game"
	"github.com/lguibr/duelpong/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

type testEnv struct {
	engine   *bollywood.Engine
	matchPID *bollywood.PID
	http     *httptest.Server
	wsURL    string
}

// --- Test Setup ---
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()
	engine := bollywood.NewEngine(nil)

	broadcasterPID, err := engine.Spawn(bollywood.NewProps(game.NewBroadcasterProducer(nil)))
	require.NoError(t, err)
	matchPID, err := engine.Spawn(bollywood.NewProps(game.NewMatchActorProducer(game.MatchActorArgs{
		Config:      utils.DefaultConfig(),
		Rand:        game.QuietRand(),
		Broadcaster: broadcasterPID,
		ManualTicks: true,
	})))
	require.NoError(t, err)

	srv := New(engine, matchPID, broadcasterPID, nil)
	srv.askTimeout = 500 * time.Millisecond
	httpServer := httptest.NewServer(srv.Routes())

	t.Cleanup(func() {
		engine.Shutdown(2 * time.Second)
		httpServer.Close()
	})

	return &testEnv{
		engine:   engine,
		matchPID: matchPID,
		http:     httpServer,
		wsURL:    "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/subscribe",
	}
}

func (env *testEnv) dial(t *testing.T) (*websocket.Conn, game.AssignmentMessage) {
	t.Helper()
	ws, err := websocket.Dial(env.wsURL, "", env.http.URL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })

	_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	var assignment game.AssignmentMessage
	require.NoError(t, websocket.JSON.Receive(ws, &assignment))
	require.Equal(t, "assignment", assignment.MessageType)
	return ws, assignment
}

func (env *testEnv) playerY(t *testing.T) float64 {
	t.Helper()
	reply, err := env.engine.Ask(env.matchPID, game.GetSnapshot{}, time.Second)
	require.NoError(t, err)
	return reply.(game.Snapshot).Player.Y
}

// --- Tests ---

func TestHandleGetSit(t *testing.T) {
	env := setupTestServer(t)

	resp, err := http.Get(env.http.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var snap game.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.NotEmpty(t, snap.MatchID)
	assert.Equal(t, 900.0, snap.Width)
	assert.Equal(t, 200.0, snap.Player.Y)
}

func TestHandleGetSit_Errors(t *testing.T) {
	env := setupTestServer(t)

	resp, err := http.Get(env.http.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Post(env.http.URL+"/", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	env.engine.Stop(env.matchPID)
	require.Eventually(t, func() bool { return env.engine.ActorCount() == 1 }, time.Second, 5*time.Millisecond)

	resp, err = http.Get(env.http.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandleHealth(t *testing.T) {
	env := setupTestServer(t)

	resp, err := http.Get(env.http.URL + "/health")
	require.NoError(t, err)
	var health healthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 2, health.Actors)

	env.engine.Stop(env.matchPID)
	require.Eventually(t, func() bool { return env.engine.ActorCount() == 1 }, time.Second, 5*time.Millisecond)

	resp, err = http.Get(env.http.URL + "/health")
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "degraded", health.Status)
}

func TestHandleSubscribe_RolesAndFrames(t *testing.T) {
	env := setupTestServer(t)

	player, first := env.dial(t)
	spectator, second := env.dial(t)
	assert.Equal(t, game.RolePlayer, first.Role)
	assert.Equal(t, game.RoleSpectator, second.Role)
	assert.Equal(t, first.MatchID, second.MatchID)

	// Frames reach both clients once they are registered.
	for _, ws := range []*websocket.Conn{player, spectator} {
		_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
		var update game.FrameUpdate
		for update.MessageType != "frame" {
			env.engine.Send(env.matchPID, game.FrameTick{}, nil)
			require.NoError(t, websocket.JSON.Receive(ws, &update))
		}
		assert.Equal(t, first.MatchID, update.Snapshot.MatchID)
	}
}

func TestHandleSubscribe_IdleClientsStayConnected(t *testing.T) {
	env := setupTestServer(t)
	_, first := env.dial(t)
	spectator, second := env.dial(t)
	require.Equal(t, game.RolePlayer, first.Role)
	require.Equal(t, game.RoleSpectator, second.Role)

	// Neither client sends anything.
	time.Sleep(500 * time.Millisecond)

	_ = spectator.SetReadDeadline(time.Now().Add(2 * time.Second))
	var update game.FrameUpdate
	for update.MessageType != "frame" {
		env.engine.Send(env.matchPID, game.FrameTick{}, nil)
		require.NoError(t, websocket.JSON.Receive(spectator, &update))
	}

	_, third := env.dial(t)
	assert.Equal(t, game.RoleSpectator, third.Role, "the idle player still holds the paddle")
}

func TestHandleSubscribe_PlayerInputMovesPaddle(t *testing.T) {
	env := setupTestServer(t)
	player, _ := env.dial(t)

	require.NoError(t, websocket.JSON.Send(player, game.InputMessage{MessageType: "input", Key: "ArrowUp", Pressed: true}))

	assert.Eventually(t, func() bool {
		env.engine.Send(env.matchPID, game.FrameTick{}, nil)
		return env.playerY(t) < 200
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, websocket.JSON.Send(player, game.InputMessage{MessageType: "input", Key: "ArrowUp", Pressed: false}))
	assert.Eventually(t, func() bool {
		before := env.playerY(t)
		env.engine.Send(env.matchPID, game.FrameTick{}, nil)
		return env.playerY(t) == before
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHandleSubscribe_SpectatorInputIgnored(t *testing.T) {
	env := setupTestServer(t)
	_, _ = env.dial(t)
	spectator, assignment := env.dial(t)
	require.Equal(t, game.RoleSpectator, assignment.Role)

	require.NoError(t, websocket.JSON.Send(spectator, game.InputMessage{MessageType: "input", Key: "s", Pressed: true}))
	time.Sleep(50 * time.Millisecond)
	for i := 0; i < 5; i++ {
		env.engine.Send(env.matchPID, game.FrameTick{}, nil)
	}
	assert.Equal(t, 200.0, env.playerY(t))
}

func TestHandleSubscribe_ControlReleasedOnDisconnect(t *testing.T) {
	env := setupTestServer(t)
	player, first := env.dial(t)
	require.Equal(t, game.RolePlayer, first.Role)

	require.NoError(t, player.Close())

	assert.Eventually(t, func() bool {
		ws, err := websocket.Dial(env.wsURL, "", env.http.URL)
		if err != nil {
			return false
		}
		defer ws.Close()
		_ = ws.SetReadDeadline(time.Now().Add(time.Second))
		var assignment game.AssignmentMessage
		if err := websocket.JSON.Receive(ws, &assignment); err != nil {
			return false
		}
		return assignment.Role == game.RolePlayer
	}, 2*time.Second, 20*time.Millisecond)
}

func TestInputToCommand(t *testing.T) {
	testCases := []struct {
		name     string
		input    game.InputMessage
		expected interface{}
	}{
		{"up pressed", game.InputMessage{Key: "ArrowUp", Pressed: true}, game.SetIntent{Intent: game.IntentUp}},
		{"w pressed", game.InputMessage{Key: "w", Pressed: true}, game.SetIntent{Intent: game.IntentUp}},
		{"down pressed", game.InputMessage{Key: "S", Pressed: true}, game.SetIntent{Intent: game.IntentDown}},
		{"down released", game.InputMessage{Key: "ArrowDown", Pressed: false}, game.SetIntent{Intent: game.IntentNone}},
		{"restart pressed", game.InputMessage{Key: "R", Pressed: true}, game.RequestRestart{}},
		{"restart released", game.InputMessage{Key: "r", Pressed: false}, nil},
		{"other key", game.InputMessage{Key: "ArrowLeft", Pressed: true}, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, InputToCommand(tc.input))
		})
	}
}
