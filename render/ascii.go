package render

import (
	"fmt"
	"math"
	"strings"
)

// RGBPixel is one cell of a rasterised frame.
type RGBPixel struct {
	R, G, B uint8
}

func pixelFrom(c [3]int) RGBPixel {
	return RGBPixel{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2])}
}

// ASCII characters for grayscale, from lighter to darker
const asciiChars = " .,:;i1tfLCG08@"

// Dividing factor to convert the grayscale range to an index into asciiChars
const grayFactor = 255.0 / float64(len(asciiChars)-1)

// Luminosity weights for RGB components
const (
	RFactor = 0.299
	GFactor = 0.587
	BFactor = 0.114
)

// rgbToGray converts an RGB pixel to grayscale using the luminosity method
func rgbToGray(pixel RGBPixel) uint8 {
	r := RFactor * float64(pixel.R)
	g := GFactor * float64(pixel.G)
	b := BFactor * float64(pixel.B)
	return uint8(math.Min(255, math.Round(r+g+b)))
}

// grayToASCII maps a grayscale value to an ASCII character
func grayToASCII(gray uint8) byte {
	return asciiChars[int(float64(gray)/grayFactor)]
}

// rgbToAnsi converts an RGB pixel to an ANSI escape code for that color
func rgbToAnsi(pixel RGBPixel) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", pixel.R, pixel.G, pixel.B)
}

const ansiReset = "\033[0m"

// RenderToASCII converts a pixel grid to coloured ASCII, sampling
// `resolution` columns across. Each sample is written twice since a
// terminal cell is roughly twice as tall as it is wide.
func RenderToASCII(pixels [][]RGBPixel, resolution int) string {
	height := len(pixels)
	if height == 0 || resolution <= 0 {
		return ""
	}
	width := len(pixels[0])
	stepX := float64(width) / float64(resolution)
	stepY := stepX * 2

	var ascii strings.Builder
	for y := 0.0; y < float64(height); y += stepY {
		for x := 0.0; x < float64(width); x += stepX {
			i := int(math.Min(math.Round(x), float64(width-1)))
			j := int(math.Min(math.Round(y), float64(height-1)))
			pixel := pixels[j][i]
			ch := string(grayToASCII(rgbToGray(pixel)))
			ansi := rgbToAnsi(pixel)
			ascii.WriteString(ansi + ch + ch + ansiReset)
		}
		ascii.WriteString("\r\n")
	}
	return ascii.String()
}
