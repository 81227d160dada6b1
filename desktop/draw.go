package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lguibr/duelpong/game"
	"github.com/lguibr/duelpong/utils"
	"golang.org/x/image/font/basicfont"
)

const (
	dashLength = 20
	dashGap    = 10
	glowRadius = 15
)

func rgb(c [3]int) color.NRGBA {
	return color.NRGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: 0xFF}
}

func rgba(c [3]int, alpha float64) color.NRGBA {
	out := rgb(c)
	out.A = uint8(utils.Clamp(alpha, 0, 1) * 0xFF)
	return out
}

func fillRect(dst *ebiten.Image, r game.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
}

// drawText draws basicfont text scaled up, with (x, y) as the top-left.
func drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y+float64(basicfont.Face7x13.Ascent)*scale)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, s, basicfont.Face7x13, op)
}

// drawCentered draws text horizontally centred on cx.
func drawCentered(dst *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	width := float64(text.BoundString(basicfont.Face7x13, s).Dx()) * scale
	drawText(dst, s, cx-width/2, y, scale, clr)
}

// particleDisc places a particle as a circle centred on its position with
// its size as the radius.
func particleDisc(p game.ParticleView) (cx, cy, r float32) {
	return float32(p.X), float32(p.Y), float32(p.Size)
}

func (g *Game) drawSnapshot(screen *ebiten.Image, snap game.Snapshot, fps float64) {
	screen.Fill(rgb(utils.BackgroundColor))

	cx := snap.Width / 2
	for y := 0.0; y < snap.Height; y += dashLength + dashGap {
		fillRect(screen, game.Rect{X: cx - 1, Y: y, Width: 2, Height: dashLength}, rgb(utils.CenterLineColor))
	}

	for _, p := range snap.PowerUps {
		c := utils.BadPowerUpColor
		if p.Kind == game.PowerUpGood {
			c = utils.GoodPowerUpColor
		}
		fillRect(screen, p.Rect, rgb(c))
	}

	fillRect(screen, snap.Player.Rect, rgb(utils.PaddleColor))
	fillRect(screen, snap.Opponent.Rect, rgb(utils.PaddleColor))

	if snap.Glow {
		vector.DrawFilledCircle(screen, float32(snap.Ball.CenterX()), float32(snap.Ball.CenterY()),
			float32(snap.Ball.Width/2+glowRadius), rgba(utils.GlowColor, 0.35), true)
	}
	fillRect(screen, snap.Ball.Rect, rgb(utils.BallColor))

	for _, p := range snap.Particles {
		cx, cy, r := particleDisc(p)
		vector.DrawFilledCircle(screen, cx, cy, r, rgba(p.Color, p.Alpha), true)
	}

	score := rgb(utils.ScoreColor)
	drawCentered(screen, fmt.Sprint(snap.PlayerScore), snap.Width/4, 20, 3, score)
	drawCentered(screen, fmt.Sprint(snap.OpponentScore), snap.Width*3/4, 20, 3, score)

	if snap.ActiveEffect != "" {
		drawCentered(screen, utils.PowerUpBanner, cx, 70, 2, rgb(utils.BannerColor))
	}

	drawText(screen, fmt.Sprintf("FPS: %.0f", fps), 10, snap.Height-20, 1, rgb(utils.FPSColor))

	if snap.GameOver {
		g.drawGameOver(screen, snap)
	}
}

func (g *Game) drawGameOver(screen *ebiten.Image, snap game.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, float32(snap.Width), float32(snap.Height), color.NRGBA{A: 0xB0}, false)

	cx, cy := snap.Width/2, snap.Height/2
	end := rgb(utils.EndTextColor)
	drawCentered(screen, snap.EndText, cx, cy-70, 4, end)
	drawCentered(screen, fmt.Sprintf("%d - %d", snap.PlayerScore, snap.OpponentScore), cx, cy-10, 3, end)

	button := g.restartButton()
	fillRect(screen, button, rgb(utils.PaddleColor))
	vector.StrokeRect(screen, float32(button.X), float32(button.Y), float32(button.Width), float32(button.Height), 2, end, false)
	drawCentered(screen, utils.RestartHint, cx, button.CenterY()-7, 1, end)
}
