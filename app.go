package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"layed/core"
	"layed/editor"
	"layed/export"
	"layed/layoutfile"
	"layed/render"
)

// doubleClickWindow is how close together two left presses must be to count
// as a double-click.
const doubleClickWindow = 400 * time.Millisecond

// normalizeBorder is the margin, in cells, left around the layout when it is
// normalized before saving or exporting.
const normalizeBorder = 0

// presets are the objects offered on the number keys.
var presets = []*core.GridObject{
	{Width: 2, Height: 2, Color: core.Color{R: 200, G: 90, B: 90, A: 255}, Label: "house"},
	{Width: 3, Height: 3, Radius: 6, Color: core.Color{R: 90, G: 140, B: 220, A: 255}, Label: "well"},
	{Width: 4, Height: 3, Color: core.Color{R: 170, G: 140, B: 90, A: 255}, Label: "barn"},
	{Width: 1, Height: 4, Color: core.Color{R: 120, G: 120, B: 120, A: 255}, Label: "wall"},
	{Width: 5, Height: 5, Radius: 10, Color: core.Color{R: 140, G: 90, B: 190, A: 255}, Label: "market"},
}

// App drives one editing session inside an ebiten window. It translates
// ebiten's input into the editor's abstract events and executes the frame's
// draw commands with the vector package.
type App struct {
	session    *editor.Session
	layoutPath string

	// Icon cache; a reference that fails to load is warned about once and
	// drawn as nothing.
	iconDir     string
	icons       map[string]*ebiten.Image
	missingIcon map[string]bool

	// Input translation state
	cursor        core.Point
	lastLeftPress time.Time
	lastLeftPos   core.Point

	status      string
	needsRedraw bool
	w, h        int
}

func newApp(layoutPath, iconDir string) *App {
	a := &App{
		layoutPath:  layoutPath,
		iconDir:     iconDir,
		icons:       make(map[string]*ebiten.Image),
		missingIcon: make(map[string]bool),
		needsRedraw: true,
	}
	a.session = editor.NewSession(a)
	a.session.OnInvalidate(func() { a.needsRedraw = true })
	if _, err := os.Stat(layoutPath); err == nil {
		a.loadLayout()
	}
	return a
}

// Status implements editor.Notifier.
func (a *App) Status(msg string) {
	a.status = msg
}

// Error implements editor.Notifier.
func (a *App) Error(msg string) {
	a.status = msg
	log.Printf("error: %s", msg)
}

// Update translates this tick's input into abstract editor events.
func (a *App) Update() error {
	cx, cy := ebiten.CursorPosition()
	pos := core.Point{X: float64(cx), Y: float64(cy)}
	mods := currentModifiers()

	if pressed := justPressedButtons(); pressed != 0 {
		clicks := 1
		if pressed&editor.ButtonLeft != 0 {
			if time.Since(a.lastLeftPress) < doubleClickWindow && nearby(pos, a.lastLeftPos) {
				clicks = 2
			}
			a.lastLeftPress = time.Now()
			a.lastLeftPos = pos
		}
		a.session.HandlePointerDown(editor.PointerEvent{
			Pos:     pos,
			Buttons: heldButtons(),
			Mods:    mods,
			Clicks:  clicks,
		})
	}
	if pos != a.cursor {
		a.session.HandlePointerMove(editor.PointerEvent{Pos: pos, Buttons: heldButtons(), Mods: mods})
		a.cursor = pos
	}
	if released := justReleasedButtons(); released != 0 {
		a.session.HandlePointerUp(editor.PointerEvent{Pos: pos, Buttons: released, Mods: mods})
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		a.session.HandleWheel(editor.WheelEvent{Delta: int(wy * 100)})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		a.session.HandleKey(editor.KeyEvent{Key: editor.KeyDelete, Mods: mods})
	}

	a.handleCommandKeys(mods)
	return nil
}

// handleCommandKeys wires the file and view commands that sit outside the
// pointer state machine.
func (a *App) handleCommandKeys(mods editor.Modifier) {
	ctrl := mods&editor.ModControl != 0
	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyN):
		a.session.NewFile()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		a.saveLayout()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyO):
		a.loadLayout()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyE):
		a.exportSVG()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.session.ResetZoom()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		a.session.SetCurrentObject(nil)
	}
	for i, preset := range presets {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			a.session.SetCurrentObject(preset)
			a.Status(fmt.Sprintf("placing: %s", preset.Label))
		}
	}
}

func (a *App) saveLayout() {
	a.session.Normalize(normalizeBorder)
	if err := layoutfile.Save(a.layoutPath, a.session.Scene().Objects()); err != nil {
		a.Error(fmt.Sprintf("save failed: %v", err))
		return
	}
	a.Status(fmt.Sprintf("saved %s", a.layoutPath))
}

func (a *App) loadLayout() {
	objects, err := layoutfile.Load(a.layoutPath)
	if err != nil {
		// The previous layout stays untouched on failure.
		a.Error(fmt.Sprintf("load failed: %v", err))
		return
	}
	a.session.ReplaceObjects(objects)
}

func (a *App) exportSVG() {
	a.session.Normalize(normalizeBorder)
	w, h := float64(a.w), float64(a.h)
	commands := render.Frame(a.session, w, h)
	exporter := export.NewSVGExporter()
	out, err := exporter.Export(commands, w, h)
	if err != nil {
		a.Error(fmt.Sprintf("export failed: %v", err))
		return
	}
	path := a.layoutPath + exporter.FileExtension()
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		a.Error(fmt.Sprintf("export failed: %v", err))
		return
	}
	a.Status(fmt.Sprintf("exported %s", path))
}

// Draw executes the session's draw-command sequence for this frame.
func (a *App) Draw(screen *ebiten.Image) {
	a.needsRedraw = false
	for _, c := range render.Frame(a.session, float64(a.w), float64(a.h)) {
		a.execute(screen, c)
	}
	a.drawHUD(screen)
}

func (a *App) execute(screen *ebiten.Image, c render.Command) {
	switch c.Op {
	case render.OpRect:
		if c.Fill.A > 0 {
			vector.DrawFilledRect(screen, float32(c.Rect.X), float32(c.Rect.Y),
				float32(c.Rect.W), float32(c.Rect.H), toNRGBA(c.Fill), false)
		}
		if c.Stroke.A > 0 {
			vector.StrokeRect(screen, float32(c.Rect.X), float32(c.Rect.Y),
				float32(c.Rect.W), float32(c.Rect.H), float32(width(c)), toNRGBA(c.Stroke), false)
		}
	case render.OpLine:
		vector.StrokeLine(screen, float32(c.From.X), float32(c.From.Y),
			float32(c.To.X), float32(c.To.Y), float32(width(c)), toNRGBA(c.Stroke), false)
	case render.OpEllipse:
		cx := float32(c.Rect.X + c.Rect.W/2)
		cy := float32(c.Rect.Y + c.Rect.H/2)
		r := float32(c.Rect.W / 2)
		if c.Fill.A > 0 {
			vector.DrawFilledCircle(screen, cx, cy, r, toNRGBA(c.Fill), true)
		}
		if c.Stroke.A > 0 {
			vector.StrokeCircle(screen, cx, cy, r, float32(width(c)), toNRGBA(c.Stroke), true)
		}
	case render.OpText:
		ebitenutil.DebugPrintAt(screen, c.Text, int(c.At.X), int(c.At.Y))
	case render.OpImage:
		if img := a.icon(c.Image); img != nil {
			op := &ebiten.DrawImageOptions{}
			iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
			op.GeoM.Scale(c.Rect.W/float64(iw), c.Rect.H/float64(ih))
			op.GeoM.Translate(c.Rect.X, c.Rect.Y)
			screen.DrawImage(img, op)
		}
	}
}

// icon resolves an icon reference, warning once per missing file without
// blocking anything else from drawing.
func (a *App) icon(ref string) *ebiten.Image {
	if img, ok := a.icons[ref]; ok {
		return img
	}
	if a.missingIcon[ref] {
		return nil
	}
	img, _, err := ebitenutil.NewImageFromFile(filepath.Join(a.iconDir, ref))
	if err != nil {
		a.missingIcon[ref] = true
		a.Status(fmt.Sprintf("icon not found: %s", ref))
		return nil
	}
	a.icons[ref] = img
	return img
}

func (a *App) drawHUD(screen *ebiten.Image) {
	sc := a.session.Scene()
	hud := fmt.Sprintf("%s | objects: %d selected: %d cell: %dpx | %s",
		a.session.State(), sc.Len(), sc.SelectionCount(), a.session.Mapper().CellSize(), a.status)
	ebitenutil.DebugPrintAt(screen, hud, 4, a.h-18)
}

// Layout reports the logical screen size to ebiten.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.w, a.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func currentModifiers() editor.Modifier {
	var m editor.Modifier
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= editor.ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= editor.ModShift
	}
	return m
}

var buttonMap = map[ebiten.MouseButton]editor.Button{
	ebiten.MouseButtonLeft:   editor.ButtonLeft,
	ebiten.MouseButtonRight:  editor.ButtonRight,
	ebiten.MouseButtonMiddle: editor.ButtonMiddle,
}

func heldButtons() editor.Button {
	var b editor.Button
	for eb, bit := range buttonMap {
		if ebiten.IsMouseButtonPressed(eb) {
			b |= bit
		}
	}
	return b
}

func justPressedButtons() editor.Button {
	var b editor.Button
	for eb, bit := range buttonMap {
		if inpututil.IsMouseButtonJustPressed(eb) {
			b |= bit
		}
	}
	return b
}

func justReleasedButtons() editor.Button {
	var b editor.Button
	for eb, bit := range buttonMap {
		if inpututil.IsMouseButtonJustReleased(eb) {
			b |= bit
		}
	}
	return b
}

func nearby(a, b core.Point) bool {
	d := a.Sub(b)
	return d.X >= -3 && d.X <= 3 && d.Y >= -3 && d.Y <= 3
}

func toNRGBA(c core.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func width(c render.Command) float64 {
	if c.StrokeWidth <= 0 {
		return 1
	}
	return c.StrokeWidth
}
