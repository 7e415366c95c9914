// Command snapshot composes a matrix scene headlessly and writes the
// rendered LED display as a PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"matrix-editor/internal/coords"
	"matrix-editor/internal/element"
	"matrix-editor/internal/glyph"
	"matrix-editor/internal/imaging"
	"matrix-editor/internal/paint"
	"matrix-editor/internal/surface"
	"matrix-editor/pkg/colorutil"
)

func main() {
	rows := flag.Int("rows", 32, "Matrix rows")
	cols := flag.Int("cols", 64, "Matrix columns")
	pixelSize := flag.Int("pixel", 12, "LED diameter in display pixels")
	pitch := flag.Int("pitch", 3, "Gap between LEDs in display pixels")
	fill := flag.String("fill", "black", "Background color (name or #rrggbb)")
	text := flag.String("text", "", "Text element to draw at the origin")
	textColor := flag.String("text-color", "yellow", "Text element color")
	fontPath := flag.String("font", "", "TTF font for the text element (built-in if empty)")
	fontSize := flag.Int("font-size", 13, "TTF font size in pixels")
	imagePath := flag.String("image", "", "Image element file")
	imageX := flag.Int("image-x", 0, "Image element column")
	imageY := flag.Int("image-y", 0, "Image element row")
	imageW := flag.Int("image-w", 0, "Image thumbnail width in cells (0 = native)")
	imageH := flag.Int("image-h", 0, "Image thumbnail height in cells (0 = native)")
	out := flag.String("o", "matrix.png", "Output PNG path")
	flag.Parse()

	if err := run(*rows, *cols, *pixelSize, *pitch, *fill,
		*text, *textColor, *fontPath, *fontSize,
		*imagePath, *imageX, *imageY, *imageW, *imageH, *out); err != nil {
		fmt.Fprintf(os.Stderr, "snapshot: %v\n", err)
		os.Exit(1)
	}
}

func run(rows, cols, pixelSize, pitch int, fill,
	text, textColor, fontPath string, fontSize int,
	imagePath string, imageX, imageY, imageW, imageH int, out string) error {

	bg, err := colorutil.Parse(fill)
	if err != nil {
		return fmt.Errorf("bad fill color: %w", err)
	}

	mapper, err := coords.NewMapper(pixelSize, pitch)
	if err != nil {
		return err
	}
	surf, err := surface.New(rows, cols, bg, mapper)
	if err != nil {
		return err
	}

	if text != "" {
		c, err := colorutil.Parse(textColor)
		if err != nil {
			return fmt.Errorf("bad text color: %w", err)
		}

		var font glyph.Source = glyph.Builtin()
		if fontPath != "" {
			font, err = glyph.LoadTTF(fontPath, float64(fontSize))
			if err != nil {
				return err
			}
		}

		txt, err := element.NewText(0, 0, text, font, c)
		if err != nil {
			return err
		}
		if _, err := surf.AddElement(txt); err != nil {
			return err
		}
	}

	if imagePath != "" {
		img, err := imaging.Load(imagePath)
		if err != nil {
			return err
		}
		el := element.NewImage(imageX, imageY, img, imageW, imageH)
		if _, err := surf.AddElement(el); err != nil {
			return err
		}
	}

	rendered := paint.LEDs(surf.Frame(), pixelSize, pitch)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, rendered); err != nil {
		return err
	}

	w, h := paint.DisplaySize(rows, cols, pixelSize, pitch)
	fmt.Printf("Wrote %s (%dx%d display, %dx%d matrix)\n", out, w, h, rows, cols)
	return nil
}
