// Package desktop hosts a local match in an ebiten window: keyboard and
// mouse input, vector drawing and synthesised sound cues.
package desktop

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lguibr/duelpong/game"
	"github.com/lguibr/duelpong/utils"
	"go.uber.org/zap"
)

// Game adapts a Match to ebiten.Game. Update runs one Step per tick.
type Game struct {
	match    *game.Match
	cfg      utils.Config
	controls controls
	sound    *Sound
	meter    utils.FrameMeter
	clock    func() time.Time
	logger   *zap.Logger
}

// New wraps match. sound may be nil for a silent window.
func New(match *game.Match, sound *Sound, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		match:  match,
		cfg:    match.Config(),
		sound:  sound,
		clock:  time.Now,
		logger: logger.Named("desktop").With(zap.String("match", match.ID)),
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.step(readKeyEdges())
	return nil
}

func (g *Game) step(edges keyEdges) game.StepResult {
	in := g.controls.apply(edges, g.restartButton())
	res := g.match.Step(in, g.clock())
	g.sound.Play(res.Cues)

	if res.GameOver != nil {
		g.logger.Info("match over",
			zap.String("result", res.GameOver.Message),
			zap.Int("player", res.GameOver.PlayerScore),
			zap.Int("opponent", res.GameOver.OpponentScore))
	}
	if res.Restarted {
		g.logger.Info("match restarted")
	}
	return res
}

// restartButton is the clickable area on the game-over overlay.
func (g *Game) restartButton() game.Rect {
	const w, h = 200, 40
	return game.Rect{X: g.cfg.ScreenWidth/2 - w/2, Y: g.cfg.ScreenHeight/2 + 50, Width: w, Height: h}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	fps := g.meter.Tick(g.clock())
	g.drawSnapshot(screen, g.match.Snapshot(), fps)
}

// Layout implements ebiten.Game with a fixed logical playfield.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.ScreenWidth), int(g.cfg.ScreenHeight)
}
