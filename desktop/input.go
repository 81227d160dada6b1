package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lguibr/duelpong/game"
)

var (
	upKeys      = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	downKeys    = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	restartKeys = []ebiten.Key{ebiten.KeyR}
)

// keyEdges is the per-frame keyboard and mouse state the controls consume.
type keyEdges struct {
	UpPressed    bool
	UpReleased   bool
	DownPressed  bool
	DownReleased bool
	Restart      bool
	Click        bool
	CursorX      int
	CursorY      int
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func anyJustReleased(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}

func readKeyEdges() keyEdges {
	x, y := ebiten.CursorPosition()
	return keyEdges{
		UpPressed:    anyJustPressed(upKeys),
		UpReleased:   anyJustReleased(upKeys),
		DownPressed:  anyJustPressed(downKeys),
		DownReleased: anyJustReleased(downKeys),
		Restart:      anyJustPressed(restartKeys),
		Click:        inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		CursorX:      x,
		CursorY:      y,
	}
}

// controls keeps the sampled intent between frames. The latest key down
// wins; releasing the key that set the intent returns it to none.
type controls struct {
	intent game.Intent
}

func (c *controls) apply(e keyEdges, restartButton game.Rect) game.Input {
	switch {
	case e.UpPressed:
		c.intent = game.IntentUp
	case e.DownPressed:
		c.intent = game.IntentDown
	}
	if (e.UpReleased && c.intent == game.IntentUp) || (e.DownReleased && c.intent == game.IntentDown) {
		c.intent = game.IntentNone
	}

	restart := e.Restart
	if e.Click && pointIn(restartButton, float64(e.CursorX), float64(e.CursorY)) {
		restart = true
	}
	return game.Input{Intent: c.intent, Restart: restart}
}

func pointIn(r game.Rect, x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}
