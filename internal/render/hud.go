package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/rocketscienceinc/tictactoe3d/internal/entity"
)

// glyph size of the debug font
const (
	glyphW = 6
	glyphH = 16
)

const (
	panelW      = 190
	panelH      = 80
	panelMargin = 10
	swatchSize  = 18
	swatchGap   = 6

	menuW   = 260
	menuH   = 140
	buttonW = 120
	buttonH = 32
)

// Palette is the set of colors offered by the settings panel.
var Palette = []colorful.Color{
	colorful.MustParseHex("#ff0000"),
	colorful.MustParseHex("#0000ff"),
	colorful.MustParseHex("#00c853"),
	colorful.MustParseHex("#ffab00"),
	colorful.MustParseHex("#d500f9"),
	colorful.MustParseHex("#ffffff"),
}

var (
	panelColor  = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xcc}
	menuColor   = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xdd}
	buttonColor = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	frameColor  = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout is where the 2D widgets sit for a given screen size.
type Layout struct {
	Panel    Rect
	Swatches map[entity.Mark][]Rect
	Menu     Rect
	Button   Rect
}

func NewLayout(w, h int) Layout {
	panel := Rect{X: float64(w - panelW - panelMargin), Y: panelMargin, W: panelW, H: panelH}
	menu := Rect{X: float64(w-menuW) / 2, Y: float64(h-menuH) / 2, W: menuW, H: menuH}

	layout := Layout{
		Panel:    panel,
		Swatches: make(map[entity.Mark][]Rect, 2),
		Menu:     menu,
		Button:   Rect{X: menu.X + (menuW-buttonW)/2, Y: menu.Y + menuH - buttonH - 20, W: buttonW, H: buttonH},
	}

	for row, mark := range []entity.Mark{entity.PlayerX, entity.PlayerO} {
		y := panel.Y + 12 + float64(row)*(swatchSize+14)
		rects := make([]Rect, len(Palette))
		for i := range Palette {
			rects[i] = Rect{X: panel.X + 30 + float64(i)*(swatchSize+swatchGap), Y: y, W: swatchSize, H: swatchSize}
		}
		layout.Swatches[mark] = rects
	}

	return layout
}

// SwatchAt returns the player and palette entry under the point.
func (l Layout) SwatchAt(x, y float64) (entity.Mark, colorful.Color, bool) {
	for mark, rects := range l.Swatches {
		for i, rect := range rects {
			if rect.Contains(x, y) {
				return mark, Palette[i], true
			}
		}
	}
	return entity.EmptyCell, colorful.Color{}, false
}

func fillRect(dst *ebiten.Image, r Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(dst *ebiten.Image, r Rect, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, clr, false)
}

func printCentered(dst *ebiten.Image, text string, r Rect, y float64) {
	x := r.X + (r.W-float64(len(text)*glyphW))/2
	ebitenutil.DebugPrintAt(dst, text, int(x), int(y))
}

// drawHUD paints the settings panel, the status line and the overlay.
func drawHUD(dst *ebiten.Image, layout Layout, session *entity.Session, colors map[entity.Mark]colorful.Color) {
	fillRect(dst, layout.Panel, panelColor)

	for mark, rects := range layout.Swatches {
		ebitenutil.DebugPrintAt(dst, string(mark), int(layout.Panel.X)+12, int(rects[0].Y)+1)
		for i, rect := range rects {
			fillRect(dst, rect, Palette[i])
			if Palette[i] == colors[mark] {
				strokeRect(dst, Rect{X: rect.X - 2, Y: rect.Y - 2, W: rect.W + 4, H: rect.H + 4}, frameColor)
			}
		}
	}

	if session.Overlay == entity.OverlayNone {
		ebitenutil.DebugPrintAt(dst, "turn: "+string(session.Turn), panelMargin, panelMargin)
		return
	}

	title, label := session.Menu()
	fillRect(dst, layout.Menu, menuColor)
	strokeRect(dst, layout.Menu, frameColor)
	printCentered(dst, title, layout.Menu, layout.Menu.Y+30)

	fillRect(dst, layout.Button, buttonColor)
	strokeRect(dst, layout.Button, frameColor)
	printCentered(dst, label, layout.Button, layout.Button.Y+(buttonH-glyphH)/2)
}
