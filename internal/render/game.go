package render

import (
	"context"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/rocketscienceinc/tictactoe3d/internal/entity"
	"github.com/rocketscienceinc/tictactoe3d/internal/scene"
	"github.com/rocketscienceinc/tictactoe3d/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe3d/internal/usecase"
)

const (
	orbitSpeed = 0.005 // radians per dragged pixel
	zoomSpeed  = 0.8   // world units per wheel step
)

type Options struct {
	Width, Height int
	TPS           int
	// Placement is the length of the scale-in animation.
	Placement time.Duration
}

// Game is the window front-end. It owns the scene, feeds input to the
// controller and mirrors controller events into meshes.
type Game struct {
	ctx        context.Context
	logger     *slog.Logger
	controller *usecase.GameController

	scene    *scene.Scene
	orbit    *scene.OrbitController
	renderer *Renderer
	tweens   scene.Tweens

	placement time.Duration
	tick      time.Duration

	width, height int
	layout        Layout

	dragging     bool
	lastX, lastY int
}

// NewGame builds the scene and subscribes the game to the controller.
func NewGame(ctx context.Context, logger *slog.Logger, controller *usecase.GameController, opts Options) *Game {
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}

	s := scene.New()
	scene.NewBoard(s)

	game := &Game{
		ctx:        ctx,
		logger:     logger.With("component", "window"),
		controller: controller,
		scene:      s,
		orbit:      scene.NewOrbit(s.Camera),
		renderer:   NewRenderer(),
		placement:  opts.Placement,
		tick:       time.Second / time.Duration(opts.TPS),
	}
	game.resize(opts.Width, opts.Height)

	controller.Subscribe(game)

	return game
}

func (g *Game) Scene() *scene.Scene {
	return g.scene
}

func (g *Game) PiecePlaced(_ *entity.Session, placement entity.Placement) {
	piece := scene.NewPiece(placement.Mark, placement.Color, placement.Index)
	g.scene.Add(piece)
	g.tweens.Add(scene.PlacementTween(piece, g.placement))
}

func (g *Game) GameEnded(session *entity.Session, _ entity.Outcome) {
	if line, ok := tictactoe.WinningLine(session.Board); ok {
		g.scene.Add(scene.NewHighlight(line))
	}
}

func (g *Game) GameReset(_ *entity.Session) {
	g.tweens.Clear()
	pieces := g.scene.RemoveKind(scene.KindPiece)
	g.scene.RemoveKind(scene.KindHighlight)

	g.logger.Debug("scene cleared", "pieces", pieces)
}

func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}

	g.handleMouse()
	g.step(g.tick)

	return nil
}

// step advances the controller clock and the running animations.
func (g *Game) step(dt time.Duration) {
	g.controller.Advance(dt)
	g.tweens.Update(dt)
}

func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(float64(x), float64(y))
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if g.dragging {
			g.drag(x-g.lastX, y-g.lastY)
		}
		g.dragging = true
		g.lastX, g.lastY = x, y
	} else {
		g.dragging = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.zoom(wy)
	}
}

// click routes a left click: the overlay swallows everything, then the
// settings panel, then the board.
func (g *Game) click(x, y float64) {
	session := g.controller.Session()

	if session.Overlay != entity.OverlayNone {
		if g.layout.Button.Contains(x, y) {
			g.confirmMenu()
		}
		return
	}

	if mark, color, ok := g.layout.SwatchAt(x, y); ok {
		g.controller.SetColor(mark, color)
		g.logger.Debug("color changed", "mark", mark, "color", color.Hex())
		return
	}

	if g.layout.Panel.Contains(x, y) {
		return
	}

	if cell, ok := g.scene.PickScreen(x, y, g.width, g.height); ok {
		g.controller.Pick(cell)
	}
}

func (g *Game) confirmMenu() {
	switch g.controller.Session().Overlay {
	case entity.OverlayStartMenu:
		g.controller.Start()
	case entity.OverlayEndMenu:
		g.controller.Reset()
	case entity.OverlayNone:
	}
}

func (g *Game) drag(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	g.orbit.Rotate(-float64(dx)*orbitSpeed, -float64(dy)*orbitSpeed)
	g.orbit.Apply(&g.scene.Camera)
}

func (g *Game) zoom(steps float64) {
	g.orbit.Zoom(-steps * zoomSpeed)
	g.orbit.Apply(&g.scene.Camera)
}

func (g *Game) resize(w, h int) {
	if w <= 0 || h <= 0 || (w == g.width && h == g.height) {
		return
	}
	g.width, g.height = w, h
	g.layout = NewLayout(w, h)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.scene.Background)

	triangles := g.renderer.Collect(g.scene, g.width, g.height)
	g.renderer.Draw(screen, triangles)

	drawHUD(screen, g.layout, g.controller.Session(), map[entity.Mark]colorful.Color{
		entity.PlayerX: g.controller.Color(entity.PlayerX),
		entity.PlayerO: g.controller.Color(entity.PlayerO),
	})
}

// Layout follows the window so the viewport aspect always matches it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.resize(outsideWidth, outsideHeight)
	return g.width, g.height
}
