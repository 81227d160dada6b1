// File: server/server.go
package server

import (
	"net/http"
	"time"

	"github.com/lguibr/duelpong/bollywood"
	"go.uber.org/zap"
	"golang.org/x/net/websocket"
)

const defaultAskTimeout = 2 * time.Second

// Server exposes one match over HTTP and websocket. All state lives in the
// actors; the Server only holds their PIDs. Connections carry no read
// deadline: spectators never send anything, and a dead peer is detected
// when the broadcaster's next write fails and closes the socket.
type Server struct {
	engine         *bollywood.Engine
	matchPID       *bollywood.PID
	broadcasterPID *bollywood.PID
	logger         *zap.Logger
	askTimeout     time.Duration
}

func New(engine *bollywood.Engine, matchPID, broadcasterPID *bollywood.PID, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		engine:         engine,
		matchPID:       matchPID,
		broadcasterPID: broadcasterPID,
		logger:         logger.Named("server"),
		askTimeout:     defaultAskTimeout,
	}
}

// Routes wires the HTTP endpoints:
//
//	GET /           current snapshot as JSON
//	GET /health     liveness and actor count
//	    /subscribe  websocket frames; the first client drives the paddle
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.HandleGetSit())
	mux.HandleFunc("/health", s.HandleHealth())
	mux.Handle("/subscribe", websocket.Handler(s.HandleSubscribe()))
	return mux
}
