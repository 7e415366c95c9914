// Package matrixview provides the interactive LED matrix widget.
package matrixview

import (
	"fmt"
	"image"

	"matrix-editor/internal/app"
	"matrix-editor/internal/paint"
	"matrix-editor/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// MatrixView renders the composited matrix as round LEDs and lets the
// user select and drag elements on it.
type MatrixView struct {
	widget.BaseWidget

	state  *app.State
	raster *fynecanvas.Raster

	// Drag state. dragIndex is the element being moved; dragOffset is
	// the grab point relative to the element origin, in matrix cells.
	dragging   bool
	dragIndex  int
	dragOffset geometry.PointInt

	// onStatus reports the hovered/dragged cell for the status bar.
	onStatus func(msg string)
}

// New creates the matrix view bound to the application state. The view
// repaints itself on scene and selection events.
func New(state *app.State) *MatrixView {
	mv := &MatrixView{
		state:     state,
		dragIndex: app.NoSelection,
	}

	mv.raster = fynecanvas.NewRaster(mv.draw)
	mv.raster.ScaleMode = fynecanvas.ImageScalePixels

	surf := state.Surface
	mapper := surf.Mapper()
	w, h := paint.DisplaySize(surf.Rows(), surf.Cols(), mapper.PixelSize(), mapper.Pitch())
	mv.raster.SetMinSize(fyne.NewSize(float32(w), float32(h)))

	state.On(app.EventSceneChanged, func(interface{}) {
		mv.Refresh()
	})
	state.On(app.EventSelectionChanged, func(interface{}) {
		mv.Refresh()
	})

	mv.ExtendBaseWidget(mv)
	return mv
}

// OnStatus sets the callback for cell position updates during
// interaction.
func (mv *MatrixView) OnStatus(callback func(msg string)) {
	mv.onStatus = callback
}

// CreateRenderer implements fyne.Widget.
func (mv *MatrixView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(mv.raster)
}

// MinSize implements fyne.Widget.
func (mv *MatrixView) MinSize() fyne.Size {
	return mv.raster.MinSize()
}

// draw is the raster generator: the LED frame plus the selection
// outline.
func (mv *MatrixView) draw(w, h int) image.Image {
	surf := mv.state.Surface
	mapper := surf.Mapper()

	img := paint.LEDs(surf.Frame(), mapper.PixelSize(), mapper.Pitch())

	if idx := mv.state.Selected(); idx != app.NoSelection {
		if el, err := surf.Element(idx); err == nil {
			paint.OutlineRect(img, el.DisplayBounds(), el.Outline())
		}
	}
	return img
}

// cellAt converts a widget position to the matrix cell under it.
func (mv *MatrixView) cellAt(pos fyne.Position) geometry.PointInt {
	p := mv.state.Surface.Mapper().DisplayToMatrix(geometry.Point2D{
		X: float64(pos.X),
		Y: float64(pos.Y),
	})
	return p.Truncate()
}

// Tapped selects the topmost element under the click, or clears the
// selection on background.
func (mv *MatrixView) Tapped(ev *fyne.PointEvent) {
	cell := mv.cellAt(ev.Position)
	if idx, ok := mv.state.Surface.ElementAt(cell); ok {
		mv.state.Select(idx)
	} else {
		mv.state.ClearSelection()
	}
}

// Dragged moves the element grabbed at drag start, keeping the grab
// point under the pointer.
func (mv *MatrixView) Dragged(ev *fyne.DragEvent) {
	cell := mv.cellAt(ev.Position)

	if !mv.dragging {
		// Hit-test where the drag began, not where it is now.
		start := fyne.Position{
			X: ev.Position.X - ev.Dragged.DX,
			Y: ev.Position.Y - ev.Dragged.DY,
		}
		startCell := mv.cellAt(start)
		idx, ok := mv.state.Surface.ElementAt(startCell)
		if !ok {
			return
		}
		el, err := mv.state.Surface.Element(idx)
		if err != nil {
			return
		}
		mv.dragging = true
		mv.dragIndex = idx
		mv.dragOffset = startCell.Sub(el.MatrixBounds().Origin())
		mv.state.Select(idx)
	}

	origin := cell.Sub(mv.dragOffset)
	if err := mv.state.Surface.MoveElement(mv.dragIndex, origin); err != nil {
		return
	}
	if mv.onStatus != nil {
		mv.onStatus(positionStatus(origin))
	}
	mv.state.SceneChanged()
}

// DragEnd implements fyne.Draggable.
func (mv *MatrixView) DragEnd() {
	mv.dragging = false
	mv.dragIndex = app.NoSelection
}

func positionStatus(origin geometry.PointInt) string {
	return fmt.Sprintf("Element at column %d, row %d", origin.X, origin.Y)
}
