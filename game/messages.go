// File: game/messages.go
package game

import (
	"golang.org/x/net/websocket"
)

// --- Message Header ---
// Used for identifying message types after unmarshalling from JSON
type MessageHeader struct {
	MessageType string `json:"messageType"`
}

// --- WebSocket Messages (Client <-> Server) ---

// Roles handed out to websocket clients.
const (
	RolePlayer    = "player"
	RoleSpectator = "spectator"
)

// AssignmentMessage tells a client whether it drives the paddle or watches.
type AssignmentMessage struct {
	MessageType string `json:"messageType"` // "assignment"
	Role        string `json:"role"`
	MatchID     string `json:"matchId"`
}

// InputMessage is a key event sent by the controlling client.
type InputMessage struct {
	MessageType string `json:"messageType"` // "input"
	Key         string `json:"key"`         // "ArrowUp", "w", "s", "r", ...
	Pressed     bool   `json:"pressed"`     // false on key release
}

// FrameUpdate is broadcast to every client after each step.
type FrameUpdate struct {
	MessageType string          `json:"messageType"` // "frame"
	Snapshot    Snapshot        `json:"snapshot"`
	Cues        []Cue           `json:"cues,omitempty"`
	GameOver    *GameOverNotice `json:"gameOver,omitempty"`
	Restarted   bool            `json:"restarted,omitempty"`
}

// --- Actor Messages (Internal Communication) ---

// --- MatchActor Messages ---

// FrameTick asks the MatchActor to run one Step.
type FrameTick struct{}

// SetIntent replaces the held direction sampled by the next steps.
type SetIntent struct {
	Intent Intent
}

// RequestRestart is latched until the next step, which honours it only if
// the match is over.
type RequestRestart struct{}

// GetSnapshot asks for the current Snapshot (used via Ask).
type GetSnapshot struct{}

// ClaimControl asks to become the paddle controller (used via Ask). The
// reply is a bool.
type ClaimControl struct {
	ClientID string
}

// ReleaseControl frees the paddle when its controller disconnects.
type ReleaseControl struct {
	ClientID string
}

// --- BroadcasterActor Messages ---

// AddClient tells the Broadcaster to start sending updates to a new connection.
type AddClient struct {
	Conn *websocket.Conn
}

// RemoveClient tells the Broadcaster to stop sending updates to a connection.
type RemoveClient struct {
	Conn *websocket.Conn
}

// GetClientCount asks the Broadcaster how many connections it serves (used via Ask).
type GetClientCount struct{}
