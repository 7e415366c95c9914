package element

import (
	goimage "image"
	"image/color"

	"matrix-editor/internal/imaging"
	"matrix-editor/internal/matrix"
)

// Image holds a raster decoded and scaled at construction. Alpha from
// the source survives inside the color values; every covered cell is
// a set layer cell as far as compositing is concerned.
type Image struct {
	Box
	raster [][]color.RGBA
}

// NewImage creates an image element at matrix cell (x, y) from an
// already-decoded source. targetWidth and targetHeight follow the
// thumbnail policy: both given scales to exactly that size, one given
// scales to a square, zero means native size.
func NewImage(x, y int, src goimage.Image, targetWidth, targetHeight int) *Image {
	raster := imaging.Raster(imaging.Thumbnail(src, targetWidth, targetHeight))
	height := len(raster)
	width := 0
	if height > 0 {
		width = len(raster[0])
	}
	return &Image{
		Box:    NewBox(x, y, width, height),
		raster: raster,
	}
}

// Render copies the fixed raster into a layer sized to the bounding
// box. Every cell is set; images have no transparent cells of their
// own.
func (i *Image) Render() (*matrix.Layer, error) {
	bb := i.MatrixBounds()
	layer, err := matrix.NewLayer(bb.Height, bb.Width)
	if err != nil {
		return nil, err
	}
	for y, row := range i.raster {
		for x, c := range row {
			if err := layer.Set(y, x, c); err != nil {
				return nil, err
			}
		}
	}
	return layer, nil
}
