// Package paint rasterizes a composited matrix grid into the round-LED
// display image shown on screen and written by the snapshot tool.
package paint

import (
	"image"
	"image/color"
	"image/draw"

	"matrix-editor/internal/matrix"
	"matrix-editor/pkg/geometry"
)

// surround is the color of the bezel between and around LEDs.
var surround = color.RGBA{R: 20, G: 20, B: 20, A: 255}

// DisplaySize returns the pixel size of the rendered matrix: each cell
// is pixelSize wide with pitch pixels of gap between cells, none after
// the last.
func DisplaySize(rows, cols, pixelSize, pitch int) (width, height int) {
	width = cols*pixelSize + (cols-1)*pitch
	height = rows*pixelSize + (rows-1)*pitch
	return width, height
}

// LEDs draws every grid cell as a filled disc of its composited color
// on the bezel background.
func LEDs(g *matrix.Grid, pixelSize, pitch int) *image.RGBA {
	w, h := DisplaySize(g.Rows(), g.Cols(), pixelSize, pitch)
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), &image.Uniform{surround}, image.Point{}, draw.Src)

	step := pixelSize + pitch
	for row := 0; row < g.Rows(); row++ {
		y := row * step
		for col := 0; col < g.Cols(); col++ {
			x := col * step
			c, err := g.At(row, col)
			if err != nil {
				continue
			}
			fillDisc(out, x, y, pixelSize, c)
		}
	}
	return out
}

// fillDisc draws a filled circle inscribed in the pixelSize square at
// (x, y).
func fillDisc(img *image.RGBA, x, y, pixelSize int, c color.RGBA) {
	r := float64(pixelSize) / 2
	cx := float64(x) + r
	cy := float64(y) + r
	for py := y; py < y+pixelSize; py++ {
		for px := x; px < x+pixelSize; px++ {
			dx := float64(px) + 0.5 - cx
			dy := float64(py) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(px, py, c)
			}
		}
	}
}

// OutlineRect draws a 2px rectangle outline in display coordinates,
// clipped to the image. Used for element selection boxes.
func OutlineRect(img *image.RGBA, rect geometry.RectInt, c color.RGBA) {
	const thickness = 2
	x2 := rect.X + rect.Width
	y2 := rect.Y + rect.Height
	for t := 0; t < thickness; t++ {
		drawHLine(img, rect.X, x2, rect.Y+t, c)
		drawHLine(img, rect.X, x2, y2-1-t, c)
		drawVLine(img, rect.Y, y2, rect.X+t, c)
		drawVLine(img, rect.Y, y2, x2-1-t, c)
	}
}

func drawHLine(img *image.RGBA, x1, x2, y int, c color.RGBA) {
	bounds := img.Bounds()
	if y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}
	for x := max(x1, bounds.Min.X); x < min(x2, bounds.Max.X); x++ {
		img.SetRGBA(x, y, c)
	}
}

func drawVLine(img *image.RGBA, y1, y2, x int, c color.RGBA) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X {
		return
	}
	for y := max(y1, bounds.Min.Y); y < min(y2, bounds.Max.Y); y++ {
		img.SetRGBA(x, y, c)
	}
}
