package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	layoutFlag  = flag.String("layout", "layout.json", "path of the layout file to open and save")
	iconDirFlag = flag.String("icons", "", "directory holding icon images referenced by objects")
	widthFlag   = flag.Int("width", 1024, "window width in pixels")
	heightFlag  = flag.Int("height", 768, "window height in pixels")
)

func main() {
	flag.Parse()

	app := newApp(*layoutFlag, *iconDirFlag)
	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("layed")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatalf("run: %v", err)
	}
}
