// Package main provides the entry point for the Matrix Editor
// application.
package main

import (
	"flag"
	"log"
	"time"

	"matrix-editor/internal/app"
	"matrix-editor/internal/coords"
	"matrix-editor/internal/element"
	"matrix-editor/internal/glyph"
	"matrix-editor/internal/imaging"
	"matrix-editor/internal/surface"
	"matrix-editor/internal/version"
	"matrix-editor/pkg/colorutil"
	"matrix-editor/ui/mainwindow"
	"matrix-editor/ui/prefs"

	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

const appTitle = "Matrix Editor"

// Defaults match a 32x64 HUB75 panel drawn with 12px LEDs and a 3px
// pitch gap.
const (
	defaultRows      = 32
	defaultCols      = 64
	defaultPixelSize = 12
	defaultPitch     = 3
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	demo := flag.Bool("demo", false, "start with a demo scene")
	demoImage := flag.String("demo-image", "", "image file for the demo scene")
	flag.Parse()

	appPrefs := prefs.Load()

	mapper, err := coords.NewMapper(
		appPrefs.Int(prefs.KeyPixelSize, defaultPixelSize),
		appPrefs.Int(prefs.KeyPitch, defaultPitch),
	)
	if err != nil {
		log.Fatalf("invalid display geometry: %v", err)
	}

	surf, err := surface.New(
		appPrefs.Int(prefs.KeyRows, defaultRows),
		appPrefs.Int(prefs.KeyCols, defaultCols),
		colorutil.Black,
		mapper,
	)
	if err != nil {
		log.Fatalf("invalid matrix dimensions: %v", err)
	}

	appState := app.NewState(surf)

	if *demo {
		if err := buildDemoScene(surf, *demoImage); err != nil {
			log.Printf("demo scene: %v", err)
		}
	}

	fyneApp := fyneapp.New()
	win := mainwindow.New(fyneApp, appState, appPrefs)

	setupHotReload(win)

	win.Resize(win.Content().MinSize())
	win.ShowAndRun()
}

// buildDemoScene fills the background and drops a text element, plus an
// image element when a file is given.
func buildDemoScene(surf *surface.Surface, imagePath string) error {
	if err := surf.FillBackground(colorutil.Blue); err != nil {
		return err
	}

	txt, err := element.NewText(0, 0, "Hello, world!", glyph.Builtin(), colorutil.Yellow)
	if err != nil {
		return err
	}
	if _, err := surf.AddElement(txt); err != nil {
		return err
	}

	if imagePath != "" {
		img, err := imaging.Load(imagePath)
		if err != nil {
			return err
		}
		if _, err := surf.AddElement(element.NewImage(10, 10, img, 15, 15)); err != nil {
			return err
		}
	}
	return nil
}

// setupHotReload configures automatic restart detection when the binary
// is recompiled.
func setupHotReload(win *mainwindow.MainWindow) {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}

	log.Printf("Hot reload: watching %s (modified %s)",
		reloader.ExecPath(), reloader.StartupTime().Format("15:04:05"))

	reloader.OnNewBinary(func() {
		log.Println("Hot reload: newer binary detected")
		dialog.ShowConfirm("New Version Available",
			"The application binary has been updated.\nRestart now?",
			func(restart bool) {
				if restart {
					log.Println("Hot reload: restarting...")
					if err := reloader.Restart(); err != nil {
						log.Printf("Hot reload: restart failed: %v", err)
					}
					return
				}
				reloader.ResetBaseline()
				reloader.Start()
			}, win)
	})

	reloader.Start()
}
