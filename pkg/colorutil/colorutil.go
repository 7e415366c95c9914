// Package colorutil provides shared color utilities for the matrix editor.
package colorutil

import (
	"fmt"
	"image/color"
	"math/rand"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Common colors used throughout the application.
var (
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Cyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Yellow  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange  = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	Gray    = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

var named = map[string]color.RGBA{
	"black":   Black,
	"white":   White,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"cyan":    Cyan,
	"magenta": Magenta,
	"yellow":  Yellow,
	"orange":  Orange,
	"gray":    Gray,
	"grey":    Gray,
}

// Parse converts a color specification to an RGBA value. Accepted forms
// are a known color name ("yellow") or a hex string ("#ffcc00",
// "#ffcc00ff").
func Parse(spec string) (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if c, ok := named[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", spec)
}

func parseHex(s string) (color.RGBA, error) {
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("hex color must have 6 or 8 digits, got %d", len(s))
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// RandomOutline returns a random saturated color suitable for drawing
// an element's selection outline against the dark matrix background.
func RandomOutline() color.RGBA {
	c := colorful.Hsl(rand.Float64()*360, 0.9, 0.55)
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
