package main

import (
	"sync"
	"time"

	"github.com/lguibr/duelpong/game"
	"github.com/lguibr/duelpong/utils"
)

const ctrlC = 3

// keyEvent is one decoded keystroke from the raw terminal.
type keyEvent struct {
	Key  string
	Quit bool
}

// decodeKeys splits a raw stdin read into key events. Arrow keys arrive
// as ESC [ A / ESC [ B; anything unknown is dropped.
func decodeKeys(buf []byte) []keyEvent {
	var events []keyEvent
	for i := 0; i < len(buf); i++ {
		switch b := buf[i]; {
		case b == 0x1b && i+2 < len(buf) && buf[i+1] == '[':
			switch buf[i+2] {
			case 'A':
				events = append(events, keyEvent{Key: "ArrowUp"})
			case 'B':
				events = append(events, keyEvent{Key: "ArrowDown"})
			}
			i += 2
		case b == 'q' || b == 'Q' || b == ctrlC:
			events = append(events, keyEvent{Quit: true})
		case utils.IsRestartKey(string(b)) || utils.DirectionFromString(string(b)) != "":
			events = append(events, keyEvent{Key: string(b)})
		}
	}
	return events
}

// keyHold turns terminal auto-repeat into press/release pairs. A raw
// terminal never reports key-up, so a direction counts as released once
// no repeat has arrived for `delay`.
type keyHold struct {
	mu    sync.Mutex
	held  string
	delay time.Duration
	timer *time.Timer
	send  func(game.InputMessage)
}

func newKeyHold(delay time.Duration, send func(game.InputMessage)) *keyHold {
	return &keyHold{delay: delay, send: send}
}

func (h *keyHold) press(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if utils.IsRestartKey(key) {
		h.send(game.InputMessage{MessageType: "input", Key: key, Pressed: true})
		return
	}
	if h.held != key {
		if h.held != "" {
			h.send(game.InputMessage{MessageType: "input", Key: h.held, Pressed: false})
		}
		h.held = key
		h.send(game.InputMessage{MessageType: "input", Key: key, Pressed: true})
	}
	if h.timer == nil {
		h.timer = time.AfterFunc(h.delay, h.release)
	} else {
		h.timer.Reset(h.delay)
	}
}

func (h *keyHold) release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.held == "" {
		return
	}
	h.send(game.InputMessage{MessageType: "input", Key: h.held, Pressed: false})
	h.held = ""
}

func (h *keyHold) stop() {
	h.mu.Lock()
	if h.timer != nil {
		h.timer.Stop()
	}
	h.mu.Unlock()
}
