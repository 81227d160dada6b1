// File: server/handlers.go
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/lguibr/duelpong/bollywood"
	"github.com/lguibr/duelpong/game"
	"github.com/lguibr/duelpong/utils"
	"go.uber.org/zap"
	"golang.org/x/net/websocket"
)

// HandleSubscribe registers the connection with the broadcaster and, if the
// paddle is free, makes it the controller. Spectators' input is ignored.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		clientID := uuid.NewString()
		logger := s.logger.With(zap.String("client", clientID), zap.String("remote", ws.Request().RemoteAddr))

		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic in subscribe handler", zap.Any("panic", r), zap.String("stack", string(debug.Stack())))
			}
			_ = ws.Close()
		}()

		snap, err := s.snapshot()
		if err != nil {
			logger.Error("match unavailable", zap.Error(err))
			return
		}

		role := game.RoleSpectator
		reply, err := s.engine.Ask(s.matchPID, game.ClaimControl{ClientID: clientID}, s.askTimeout)
		if err != nil {
			logger.Warn("claim failed, joining as spectator", zap.Error(err))
		} else if granted, _ := reply.(bool); granted {
			role = game.RolePlayer
		}

		assignment := game.AssignmentMessage{MessageType: "assignment", Role: role, MatchID: snap.MatchID}
		if err := websocket.JSON.Send(ws, assignment); err != nil {
			logger.Warn("failed to send assignment", zap.Error(err))
			if role == game.RolePlayer {
				s.engine.Send(s.matchPID, game.ReleaseControl{ClientID: clientID}, nil)
			}
			return
		}
		logger.Info("client connected", zap.String("role", role))

		s.engine.Send(s.broadcasterPID, game.AddClient{Conn: ws}, nil)
		defer func() {
			s.engine.Send(s.broadcasterPID, game.RemoveClient{Conn: ws}, nil)
			if role == game.RolePlayer {
				s.engine.Send(s.matchPID, game.ReleaseControl{ClientID: clientID}, nil)
			}
			logger.Info("client disconnected", zap.String("role", role))
		}()

		s.readLoop(ws, role == game.RolePlayer, logger)
	}
}

// readLoop receives InputMessages until the connection fails or is closed
// by the broadcaster.
func (s *Server) readLoop(conn *websocket.Conn, controls bool, logger *zap.Logger) {
	for {
		var input game.InputMessage
		err := websocket.JSON.Receive(conn, &input)
		if err != nil {
			var syntaxErr *json.SyntaxError
			switch {
			case errors.Is(err, io.EOF), errors.Is(err, net.ErrClosed):
			case errors.As(err, &syntaxErr):
				logger.Warn("malformed input", zap.Error(err))
				continue
			default:
				logger.Warn("read error", zap.Error(err))
			}
			return
		}

		if !controls {
			continue
		}
		if cmd := InputToCommand(input); cmd != nil {
			s.engine.Send(s.matchPID, cmd, nil)
		}
	}
}

// InputToCommand maps a client key event onto a MatchActor message. Key
// release stops the paddle; restart keys only act on press.
func InputToCommand(input game.InputMessage) interface{} {
	if utils.IsRestartKey(input.Key) {
		if input.Pressed {
			return game.RequestRestart{}
		}
		return nil
	}
	intent := game.IntentFromKey(input.Key)
	if intent == game.IntentNone {
		return nil
	}
	if !input.Pressed {
		return game.SetIntent{Intent: game.IntentNone}
	}
	return game.SetIntent{Intent: intent}
}

func (s *Server) snapshot() (game.Snapshot, error) {
	reply, err := s.engine.Ask(s.matchPID, game.GetSnapshot{}, s.askTimeout)
	if err != nil {
		return game.Snapshot{}, err
	}
	snap, ok := reply.(game.Snapshot)
	if !ok {
		return game.Snapshot{}, fmt.Errorf("unexpected snapshot reply %T", reply)
	}
	return snap, nil
}

// HandleGetSit provides the current match snapshot via HTTP GET by querying the MatchActor.
func (s *Server) HandleGetSit() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		snap, err := s.snapshot()
		if err != nil {
			status := http.StatusServiceUnavailable
			if errors.Is(err, bollywood.ErrTimeout) {
				status = http.StatusGatewayTimeout
			}
			s.logger.Error("snapshot query failed", zap.Error(err))
			http.Error(w, err.Error(), status)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snap); err != nil {
			s.logger.Warn("error writing snapshot", zap.Error(err))
		}
	}
}

type healthResponse struct {
	Status string `json:"status"`
	Actors int    `json:"actors"`
}

// HandleHealth reports whether the match actor answers.
func (s *Server) HandleHealth() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{Status: "ok", Actors: s.engine.ActorCount()}
		status := http.StatusOK
		if _, err := s.snapshot(); err != nil {
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
