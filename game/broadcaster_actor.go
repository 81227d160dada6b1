// File: game/broadcaster_actor.go
package game

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/lguibr/duelpong/bollywood"
	"go.uber.org/zap"
	"golang.org/x/net/websocket"
)

const broadcastWriteTimeout = 250 * time.Millisecond

// BroadcasterActor fans FrameUpdates out to every connected websocket.
// Clients that fail or stall a write are dropped and their socket closed.
type BroadcasterActor struct {
	clients map[*websocket.Conn]bool
	logger  *zap.Logger
	sent    uint64
}

// NewBroadcasterProducer creates a producer for BroadcasterActor.
func NewBroadcasterProducer(logger *zap.Logger) bollywood.Producer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func() bollywood.Actor {
		return &BroadcasterActor{
			clients: make(map[*websocket.Conn]bool),
			logger:  logger.Named("broadcaster"),
		}
	}
}

// Receive handles messages for the BroadcasterActor.
func (a *BroadcasterActor) Receive(ctx bollywood.Context) {
	switch msg := ctx.Message().(type) {
	case bollywood.Started:

	case AddClient:
		if msg.Conn != nil {
			a.clients[msg.Conn] = true
			a.logger.Debug("client added", zap.Int("clients", len(a.clients)))
		}

	case RemoveClient:
		if msg.Conn != nil && a.clients[msg.Conn] {
			delete(a.clients, msg.Conn)
			a.logger.Debug("client removed", zap.Int("clients", len(a.clients)))
		}

	case FrameUpdate:
		a.broadcast(msg)

	case GetClientCount:
		ctx.Reply(len(a.clients))

	case bollywood.Stopping:
		a.closeAllConnections()

	case bollywood.Stopped:

	default:
		a.logger.Warn("unknown message", zap.String("type", fmt.Sprintf("%T", msg)))
	}
}

func (a *BroadcasterActor) broadcast(update FrameUpdate) {
	if len(a.clients) == 0 {
		return
	}

	var dropped []*websocket.Conn
	for ws := range a.clients {
		_ = ws.SetWriteDeadline(time.Now().Add(broadcastWriteTimeout))
		err := websocket.JSON.Send(ws, &update)
		_ = ws.SetWriteDeadline(time.Time{})
		if err == nil {
			continue
		}
		// A timed-out write may have left half a frame on the wire, so the
		// stream is unusable either way.
		if !isClosedErr(err) {
			a.logger.Warn("failed to write frame, dropping client", zap.Stringer("client", ws.RemoteAddr()), zap.Error(err))
		}
		dropped = append(dropped, ws)
	}
	a.sent++

	// Closing unblocks the subscribe handler's read loop, which then
	// deregisters the client and frees the paddle.
	for _, ws := range dropped {
		delete(a.clients, ws)
		_ = ws.Close()
	}
	if len(dropped) > 0 {
		a.logger.Info("dropped clients", zap.Int("count", len(dropped)), zap.Int("clients", len(a.clients)))
	}
}

func (a *BroadcasterActor) closeAllConnections() {
	if len(a.clients) > 0 {
		a.logger.Info("closing connections", zap.Int("count", len(a.clients)), zap.Uint64("framesSent", a.sent))
	}
	for ws := range a.clients {
		_ = ws.Close()
	}
	a.clients = make(map[*websocket.Conn]bool)
}

// isClosedErr reports whether the peer was already gone, as opposed to a
// stalled or misbehaving one.
func isClosedErr(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) || errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && !netErr.Timeout() && !errors.Is(err, os.ErrDeadlineExceeded)
}
