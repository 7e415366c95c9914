// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"matrix-editor/internal/app"
	"matrix-editor/internal/element"
	"matrix-editor/internal/glyph"
	"matrix-editor/internal/imaging"
	"matrix-editor/internal/paint"
	"matrix-editor/internal/version"
	"matrix-editor/pkg/colorutil"
	"matrix-editor/ui/matrixview"
	"matrix-editor/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	view      *matrixview.MatrixView
	statusBar *widget.Label

	// font renders text elements; starts as the built-in 4x5 face and
	// can be swapped for a loaded TTF.
	font glyph.Source
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Matrix Editor")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
		font:   glyph.Builtin(),
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.view = matrixview.New(mw.state)
	mw.view.OnStatus(mw.updateStatus)

	mw.statusBar = widget.NewLabel("Ready")

	toolbar := container.NewHBox(
		widget.NewButton("Add Text", mw.onAddText),
		widget.NewButton("Add Image", mw.onAddImage),
		widget.NewButton("Remove", mw.onRemoveSelected),
		widget.NewButton("Fill", mw.onFillBackground),
	)

	content := container.NewBorder(
		toolbar,                           // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		container.NewCenter(mw.view),      // center
	)

	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export Snapshot...", mw.onExportSnapshot),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Add Text...", mw.onAddText),
		fyne.NewMenuItem("Add Image...", mw.onAddImage),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Remove Selected", mw.onRemoveSelected),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Fill Background...", mw.onFillBackground),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Load Font...", mw.onLoadFont),
		fyne.NewMenuItem("Built-in Font", func() {
			mw.font = glyph.Builtin()
			mw.updateStatus("Using built-in font")
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, viewMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventSelectionChanged, func(data interface{}) {
		idx, ok := data.(int)
		if !ok || idx == app.NoSelection {
			mw.updateStatus("Ready")
			return
		}
		if el, err := mw.state.Surface.Element(idx); err == nil {
			b := el.MatrixBounds()
			mw.updateStatus(fmt.Sprintf("Selected element %d at (%d, %d), %dx%d cells",
				idx, b.X, b.Y, b.Width, b.Height))
		}
	})

	mw.state.On(app.EventModified, func(data interface{}) {
		if modified, ok := data.(bool); ok && modified {
			title := mw.Title()
			if len(title) > 0 && title[len(title)-1] != '*' {
				mw.SetTitle(title + " *")
			}
		}
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.String(prefs.KeyLastDirectory)
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(path)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefs.KeyLastDirectory, filepath.Dir(filePath))
	if err := mw.prefs.Save(); err != nil {
		log.Printf("failed to save preferences: %v", err)
	}
}

// Menu action handlers

func (mw *MainWindow) onAddText() {
	textEntry := widget.NewEntry()
	textEntry.SetPlaceHolder("Hello")
	colorEntry := widget.NewEntry()
	colorEntry.SetText("yellow")

	items := []*widget.FormItem{
		widget.NewFormItem("Text", textEntry),
		widget.NewFormItem("Color", colorEntry),
	}

	dialog.ShowForm("Add Text", "Add", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		c, err := colorutil.Parse(colorEntry.Text)
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		txt, err := element.NewText(0, 0, textEntry.Text, mw.font, c)
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		idx, err := mw.state.Surface.AddElement(txt)
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.state.Select(idx)
		mw.state.SceneChanged()
	}, mw.Window)
}

func (mw *MainWindow) onAddImage() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)
		mw.addImageFromPath(path)
	}, mw.Window)

	fd.SetFilter(storage.NewExtensionFileFilter(imaging.SupportedFormats()))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

// addImageFromPath prompts for thumbnail bounds, then places the image
// at the matrix origin.
func (mw *MainWindow) addImageFromPath(path string) {
	img, err := imaging.Load(path)
	if err != nil {
		dialog.ShowError(err, mw.Window)
		return
	}

	widthEntry := widget.NewEntry()
	widthEntry.SetPlaceHolder("native")
	heightEntry := widget.NewEntry()
	heightEntry.SetPlaceHolder("native")

	items := []*widget.FormItem{
		widget.NewFormItem("Width (cells)", widthEntry),
		widget.NewFormItem("Height (cells)", heightEntry),
	}

	dialog.ShowForm("Image Size", "Add", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		w := parseCells(widthEntry.Text)
		h := parseCells(heightEntry.Text)

		el := element.NewImage(0, 0, img, w, h)
		idx, err := mw.state.Surface.AddElement(el)
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.state.Select(idx)
		mw.state.SceneChanged()
	}, mw.Window)
}

// parseCells turns a form entry into a thumbnail dimension: empty or
// invalid input means unset.
func parseCells(s string) int {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n < 1 {
		return 0
	}
	return n
}

func (mw *MainWindow) onRemoveSelected() {
	idx := mw.state.Selected()
	if idx == app.NoSelection {
		mw.updateStatus("Nothing selected")
		return
	}
	if err := mw.state.Surface.RemoveElement(idx); err != nil {
		dialog.ShowError(err, mw.Window)
		return
	}
	mw.state.ClearSelection()
	mw.state.SceneChanged()
}

func (mw *MainWindow) onFillBackground() {
	colorEntry := widget.NewEntry()
	colorEntry.SetText("black")

	items := []*widget.FormItem{
		widget.NewFormItem("Color", colorEntry),
	}

	dialog.ShowForm("Fill Background", "Fill", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		c, err := colorutil.Parse(colorEntry.Text)
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		if err := mw.state.Surface.FillBackground(c); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.state.SceneChanged()
	}, mw.Window)
}

func (mw *MainWindow) onLoadFont() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)

		src, err := glyph.LoadTTF(path, 13)
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.font = src
		mw.updateStatus("Loaded font: " + filepath.Base(path))
	}, mw.Window)

	fd.SetFilter(storage.NewExtensionFileFilter([]string{".ttf"}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onExportSnapshot() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) != ".png" {
			path += ".png"
		}
		mw.saveLastDir(path)

		if err := mw.writeSnapshot(path); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.updateStatus("Snapshot written: " + path)
	}, mw.Window)
	fd.SetFileName("matrix.png")
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) writeSnapshot(path string) error {
	surf := mw.state.Surface
	mapper := surf.Mapper()
	img := paint.LEDs(surf.Frame(), mapper.PixelSize(), mapper.Pitch())

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer f.Close()
	return png.Encode(f, img)
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Matrix Editor",
		fmt.Sprintf("Matrix Editor v%s\n\n"+
			"A layered scene editor for LED matrix displays.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
