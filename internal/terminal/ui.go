package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/rocketscienceinc/tictactoe3d/internal/entity"
	"github.com/rocketscienceinc/tictactoe3d/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe3d/internal/usecase"
)

// box of one board cell, borders included
const (
	cellW = 9
	cellH = 5
	gap   = 1

	boardW = entity.BoardSide*cellW + (entity.BoardSide-1)*gap
	boardH = entity.BoardSide*cellH + (entity.BoardSide-1)*gap

	menuW = 32
	menuH = 7
)

var glyphs = map[entity.Mark][3]string{
	entity.PlayerX: {`\ /`, ` X `, `/ \`},
	entity.PlayerO: {`/-\`, `| |`, `\-/`},
}

var (
	styleBase      = tcell.StyleDefault.Background(tcell.ColorReset)
	styleCell      = styleBase.Foreground(tcell.NewRGBColor(0xaa, 0xaa, 0xaa))
	styleHighlight = styleBase.Foreground(tcell.NewRGBColor(0xff, 0xd9, 0x33)).Bold(true)
	styleMenu      = styleBase.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(0x20, 0x20, 0x20))
)

type Options struct {
	TPS int
}

// UI is the terminal front-end: the board as a grid of boxes driven by the
// mouse, with the same overlays as the window.
type UI struct {
	screen     tcell.Screen
	logger     *slog.Logger
	controller *usecase.GameController

	tick time.Duration

	// pending is the time left until each cell's confirmation fires
	pending [entity.BoardSize]time.Duration
	// colors keeps the color each mark was placed with
	colors  [entity.BoardSize]colorful.Color
	line    [3]int
	hasLine bool

	// buttons is the mask of the previous mouse report
	buttons tcell.ButtonMask
}

// New subscribes the UI to the controller. The screen must be initialized.
func New(screen tcell.Screen, logger *slog.Logger, controller *usecase.GameController, opts Options) *UI {
	if opts.TPS <= 0 {
		opts.TPS = 60
	}

	ui := &UI{
		screen:     screen,
		logger:     logger.With("component", "terminal"),
		controller: controller,
		tick:       time.Second / time.Duration(opts.TPS),
	}

	controller.Subscribe(ui)

	return ui
}

// Run opens the terminal screen and blocks until the player quits or ctx is
// canceled.
func Run(ctx context.Context, logger *slog.Logger, controller *usecase.GameController, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	return New(screen, logger, controller, opts).Loop(ctx)
}

func (that *UI) Loop(ctx context.Context) error {
	that.screen.EnableMouse()
	that.screen.HideCursor()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := that.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(that.tick)
	defer ticker.Stop()

	that.draw()

	for {
		select {
		case <-ctx.Done():
			that.logger.Info("terminal closed", "reason", ctx.Err())
			return nil
		case ev := <-events:
			if !that.handleEvent(ev) {
				that.logger.Info("terminal closed", "reason", "quit")
				return nil
			}
		case <-ticker.C:
			that.step(that.tick)
			that.draw()
		}
	}
}

func (that *UI) PiecePlaced(_ *entity.Session, placement entity.Placement) {
	that.pending[placement.Index] = that.controller.ConfirmDelay()
	that.colors[placement.Index] = placement.Color
}

func (that *UI) GameEnded(session *entity.Session, _ entity.Outcome) {
	that.line, that.hasLine = tictactoe.WinningLine(session.Board)
}

func (that *UI) GameReset(_ *entity.Session) {
	that.pending = [entity.BoardSize]time.Duration{}
	that.hasLine = false
}

func (that *UI) step(dt time.Duration) {
	that.controller.Advance(dt)

	for i, left := range that.pending {
		if left > 0 {
			that.pending[i] = max(left-dt, 0)
		}
	}
}

// handleEvent reports false when the player asked to quit.
func (that *UI) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return that.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		// motion with the button held is reported too; only the press clicks
		pressed := ev.Buttons()&tcell.Button1 != 0
		wasPressed := that.buttons&tcell.Button1 != 0
		that.buttons = ev.Buttons()

		if pressed && !wasPressed {
			x, y := ev.Position()
			that.click(x, y)
		}
	case *tcell.EventResize:
		that.screen.Sync()
	}

	return true
}

func (that *UI) handleKey(key tcell.Key, ch rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		return ch != 'q'
	}

	return true
}

// click - the overlay swallows every click and confirms when hit.
func (that *UI) click(x, y int) {
	w, h := that.screen.Size()

	if that.controller.Session().Overlay != entity.OverlayNone {
		mx, my := menuOrigin(w, h)
		if x >= mx && x < mx+menuW && y >= my && y < my+menuH {
			that.confirmMenu()
		}
		return
	}

	if cell, ok := CellAt(w, h, x, y); ok {
		that.controller.Pick(cell)
	}
}

func (that *UI) confirmMenu() {
	switch that.controller.Session().Overlay {
	case entity.OverlayStartMenu:
		that.controller.Start()
	case entity.OverlayEndMenu:
		that.controller.Reset()
	case entity.OverlayNone:
	}
}

func boardOrigin(w, h int) (int, int) {
	return (w - boardW) / 2, (h - boardH) / 2
}

func menuOrigin(w, h int) (int, int) {
	return (w - menuW) / 2, (h - menuH) / 2
}

// CellAt maps a screen position to the board cell whose box contains it.
func CellAt(w, h, x, y int) (int, bool) {
	ox, oy := boardOrigin(w, h)
	dx, dy := x-ox, y-oy
	if dx < 0 || dy < 0 || dx >= boardW || dy >= boardH {
		return -1, false
	}

	col, inCol := dx/(cellW+gap), dx%(cellW+gap) < cellW
	row, inRow := dy/(cellH+gap), dy%(cellH+gap) < cellH
	if !inCol || !inRow {
		return -1, false
	}

	return row*entity.BoardSide + col, true
}

func toTCell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (that *UI) markStyle(index int) tcell.Style {
	style := styleBase.Foreground(toTCell(that.colors[index])).Bold(true)
	if that.pending[index] > 0 {
		style = style.Bold(false).Dim(true)
	}

	return style
}
