// Command termclient watches or plays a duelpong match in the terminal.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lguibr/asciiring/helpers"
	"github.com/lguibr/duelpong/game"
	"github.com/lguibr/duelpong/render"
	"github.com/lguibr/duelpong/utils"
	"go.uber.org/zap"
	"golang.org/x/net/websocket"
	"golang.org/x/term"
)

const cursorHome = "\033[H"

func main() {
	addr := flag.String("addr", "ws://localhost:3001/subscribe", "match websocket URL")
	origin := flag.String("origin", "http://localhost/", "websocket origin header")
	columns := flag.Int("cols", 90, "playfield width in characters")
	every := flag.Int("every", 2, "render one frame out of every N")
	release := flag.Duration("release", 300*time.Millisecond, "idle time after which a held key counts as released")
	flag.Parse()

	// Logs go to stderr so they don't tear the rendered frames.
	logger, err := utils.NewLogger(os.Getenv(utils.EnvLogLevel), "json")
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	if err := run(*addr, *origin, *columns, *every, *release, logger); err != nil {
		logger.Error("termclient stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(addr, origin string, columns, every int, release time.Duration, logger *zap.Logger) error {
	ws, err := websocket.Dial(addr, "", origin)
	if err != nil {
		return fmt.Errorf("connect %s: %w", addr, err)
	}
	defer ws.Close()

	fd := int(os.Stdin.Fd())
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	restore := func() { _ = term.Restore(fd, saved) }
	defer restore()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		restore()
		os.Exit(0)
	}()

	helpers.ClearScreen()

	done := make(chan error, 1)
	go func() { done <- receiveFrames(ws, columns, every, logger) }()

	hold := newKeyHold(release, func(msg game.InputMessage) {
		if err := websocket.JSON.Send(ws, msg); err != nil {
			logger.Warn("send input", zap.Error(err))
		}
	})
	defer hold.stop()

	keys := make(chan []keyEvent)
	go func() {
		buf := make([]byte, 16)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				close(keys)
				return
			}
			keys <- decodeKeys(buf[:n])
		}
	}()

	for {
		select {
		case err := <-done:
			return err
		case events, ok := <-keys:
			if !ok {
				return nil
			}
			for _, ev := range events {
				if ev.Quit {
					return nil
				}
				hold.press(ev.Key)
			}
		}
	}
}

// receiveFrames prints the assignment and then every Nth frame until the
// connection closes.
func receiveFrames(ws *websocket.Conn, columns, every int, logger *zap.Logger) error {
	if every < 1 {
		every = 1
	}
	role := game.RoleSpectator
	for {
		var raw []byte
		if err := websocket.Message.Receive(ws, &raw); err != nil {
			return fmt.Errorf("receive: %w", err)
		}

		var header game.MessageHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			logger.Warn("malformed message", zap.Error(err))
			continue
		}

		switch header.MessageType {
		case "assignment":
			var assignment game.AssignmentMessage
			if err := json.Unmarshal(raw, &assignment); err == nil {
				role = assignment.Role
			}
		case "frame":
			var update game.FrameUpdate
			if err := json.Unmarshal(raw, &update); err != nil {
				logger.Warn("malformed frame", zap.Error(err))
				continue
			}
			if update.Snapshot.Frame%uint64(every) != 0 && update.GameOver == nil {
				continue
			}
			fmt.Print(cursorHome + render.Frame(update.Snapshot, columns))
			fmt.Printf("[%s] w/s or arrows to move, r to restart, q to quit\r\n", role)
		}
	}
}
