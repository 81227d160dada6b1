package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/lguibr/duelpong/game"
	"github.com/lguibr/duelpong/utils"
)

const (
	centerDashLength = 20
	centerDashGap    = 10
	centerLineWidth  = 2
)

// Rasterize paints a snapshot onto a pixel grid the size of the playfield.
func Rasterize(snap game.Snapshot) [][]RGBPixel {
	width, height := int(snap.Width), int(snap.Height)
	if width <= 0 || height <= 0 {
		return nil
	}

	background := pixelFrom(utils.BackgroundColor)
	pixels := make([][]RGBPixel, height)
	for y := range pixels {
		row := make([]RGBPixel, width)
		for x := range row {
			row[x] = background
		}
		pixels[y] = row
	}

	line := pixelFrom(utils.CenterLineColor)
	cx := float64(width)/2 - centerLineWidth/2
	for y := 0; y < height; y += centerDashLength + centerDashGap {
		fillRect(pixels, game.Rect{X: cx, Y: float64(y), Width: centerLineWidth, Height: centerDashLength}, line)
	}

	for _, p := range snap.PowerUps {
		color := utils.BadPowerUpColor
		if p.Kind == game.PowerUpGood {
			color = utils.GoodPowerUpColor
		}
		fillRect(pixels, p.Rect, pixelFrom(color))
	}

	paddle := pixelFrom(utils.PaddleColor)
	fillRect(pixels, snap.Player.Rect, paddle)
	fillRect(pixels, snap.Opponent.Rect, paddle)

	if snap.Glow {
		halo := snap.Ball.Rect
		halo.X -= 3
		halo.Y -= 3
		halo.Width += 6
		halo.Height += 6
		fillRect(pixels, halo, pixelFrom(utils.GlowColor))
	}
	fillRect(pixels, snap.Ball.Rect, pixelFrom(utils.BallColor))

	for _, p := range snap.Particles {
		blendCircle(pixels, p.X, p.Y, p.Size, pixelFrom(p.Color), p.Alpha)
	}
	return pixels
}

func clipRect(pixels [][]RGBPixel, r game.Rect) (x0, y0, x1, y1 int) {
	height := len(pixels)
	width := 0
	if height > 0 {
		width = len(pixels[0])
	}
	x0 = int(math.Max(0, math.Floor(r.X)))
	y0 = int(math.Max(0, math.Floor(r.Y)))
	x1 = int(math.Min(float64(width), math.Ceil(r.Right())))
	y1 = int(math.Min(float64(height), math.Ceil(r.Bottom())))
	return
}

func fillRect(pixels [][]RGBPixel, r game.Rect, color RGBPixel) {
	x0, y0, x1, y1 := clipRect(pixels, r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			pixels[y][x] = color
		}
	}
}

// blendCircle mixes color into every pixel whose centre lies within r of
// (cx, cy).
func blendCircle(pixels [][]RGBPixel, cx, cy, r float64, color RGBPixel, alpha float64) {
	alpha = utils.Clamp(alpha, 0, 1)
	mix := func(dst, src uint8) uint8 {
		return uint8(math.Round(float64(dst)*(1-alpha) + float64(src)*alpha))
	}
	x0, y0, x1, y1 := clipRect(pixels, game.Rect{X: cx - r, Y: cy - r, Width: 2 * r, Height: 2 * r})
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) > r {
				continue
			}
			dst := pixels[y][x]
			pixels[y][x] = RGBPixel{R: mix(dst.R, color.R), G: mix(dst.G, color.G), B: mix(dst.B, color.B)}
		}
	}
}

// Frame renders a snapshot as a full terminal screen: score line, the
// playfield in coloured ASCII and any banner or end-of-match text.
func Frame(snap game.Snapshot, resolution int) string {
	var out strings.Builder
	fmt.Fprintf(&out, "%s%d  :  %d%s\r\n", rgbToAnsi(pixelFrom(utils.ScoreColor)), snap.PlayerScore, snap.OpponentScore, ansiReset)
	out.WriteString(RenderToASCII(Rasterize(snap), resolution))

	if snap.ActiveEffect != "" {
		fmt.Fprintf(&out, "%s%s%s\r\n", rgbToAnsi(pixelFrom(utils.BannerColor)), utils.PowerUpBanner, ansiReset)
	}
	if snap.GameOver {
		fmt.Fprintf(&out, "%s%s  %d - %d  %s%s\r\n",
			rgbToAnsi(pixelFrom(utils.EndTextColor)), snap.EndText,
			snap.PlayerScore, snap.OpponentScore, utils.RestartHint, ansiReset)
	}
	return out.String()
}
