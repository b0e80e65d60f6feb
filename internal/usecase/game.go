package usecase

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/rocketscienceinc/tictactoe3d/internal/apperror"
	"github.com/rocketscienceinc/tictactoe3d/internal/entity"
	"github.com/rocketscienceinc/tictactoe3d/internal/tictactoe"
)

const DefaultConfirmDelay = 600 * time.Millisecond

// Observer - a view collaborator of the controller. All calls happen on the
// update loop that drives the controller.
type Observer interface {
	PiecePlaced(session *entity.Session, placement entity.Placement)
	GameEnded(session *entity.Session, outcome entity.Outcome)
	GameReset(session *entity.Session)
}

type Options struct {
	// ConfirmDelay is how long the win check waits after a placement.
	ConfirmDelay time.Duration
	ColorX       colorful.Color
	ColorO       colorful.Color
	// Rand picks the starting player. Seeded from the clock when nil.
	Rand *rand.Rand
}

// confirmation is a deferred win check. It carries the board as it was when
// the pick was accepted and the generation it belongs to.
type confirmation struct {
	due        time.Duration
	generation uint64
	seq        uint64
	mark       entity.Mark
	board      entity.Board
}

// GameController interprets picks against the session board and runs the
// placement state machine. It is not safe for concurrent use: the update loop
// of the front-end owns it.
type GameController struct {
	logger *slog.Logger

	session   *entity.Session
	observers []Observer

	rng          *rand.Rand
	confirmDelay time.Duration
	colors       map[entity.Mark]colorful.Color

	clock   time.Duration
	pending []confirmation
	started bool
}

func NewGameController(logger *slog.Logger, opts Options) *GameController {
	session := entity.NewSession()

	if opts.ConfirmDelay <= 0 {
		opts.ConfirmDelay = DefaultConfirmDelay
	}

	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
	}

	return &GameController{
		logger:       logger.With("component", "game_controller", "session", session.ID),
		session:      session,
		rng:          opts.Rand,
		confirmDelay: opts.ConfirmDelay,
		colors: map[entity.Mark]colorful.Color{
			entity.PlayerX: opts.ColorX,
			entity.PlayerO: opts.ColorO,
		},
	}
}

func (that *GameController) Subscribe(observer Observer) {
	that.observers = append(that.observers, observer)
}

func (that *GameController) Session() *entity.Session {
	return that.session
}

// Start - leaves the start menu and picks the first player. Only the first
// call does anything.
func (that *GameController) Start() bool {
	if that.started {
		return false
	}
	that.started = true

	that.session.Overlay = entity.OverlayNone
	that.session.Turn = entity.RandomMark(that.rng)

	that.logger.Info("game started", "first", that.session.Turn)

	return true
}

func (that *GameController) IsStarted() bool {
	return that.started
}

// Pick - tries to place the current player's mark on the cell. Rejected picks
// change nothing and report false.
func (that *GameController) Pick(index int) bool {
	placement, err := that.place(index)
	if err != nil {
		that.logger.Debug("pick ignored", "cell", index, "reason", err)
		return false
	}

	for _, observer := range that.observers {
		observer.PiecePlaced(that.session, placement)
	}

	return true
}

func (that *GameController) place(index int) (entity.Placement, error) {
	session := that.session

	if session.IsBlocked() {
		return entity.Placement{}, apperror.ErrInputBlocked
	}

	if !entity.IsValidCell(index) {
		return entity.Placement{}, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if session.IsTerminal() || tictactoe.Evaluate(session.Board).IsTerminal() {
		return entity.Placement{}, apperror.ErrGameDecided
	}

	mark := session.Turn
	if !session.Board.Place(index, mark) {
		return entity.Placement{}, fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	session.Seq++
	session.Pending++
	session.Phase = entity.PhaseAnimating

	that.pending = append(that.pending, confirmation{
		due:        that.clock + that.confirmDelay,
		generation: session.Generation,
		seq:        session.Seq,
		mark:       mark,
		board:      session.Board,
	})

	// the next accepted pick belongs to the opponent unless this one decided the game
	if !tictactoe.Evaluate(session.Board).IsTerminal() {
		session.Turn = mark.Opponent()
	}

	return entity.Placement{
		Index:      index,
		Mark:       mark,
		Color:      that.colors[mark],
		Generation: session.Generation,
		Seq:        session.Seq,
	}, nil
}

// Advance - moves the controller clock and fires every confirmation that is due.
func (that *GameController) Advance(dt time.Duration) {
	if dt > 0 {
		that.clock += dt
	}

	for len(that.pending) > 0 && that.pending[0].due <= that.clock {
		next := that.pending[0]
		that.pending = that.pending[1:]
		that.confirm(next)
	}
}

func (that *GameController) confirm(check confirmation) {
	session := that.session
	log := that.logger.With("seq", check.seq, "mark", check.mark)

	if check.generation != session.Generation {
		log.Debug("stale confirmation discarded", "generation", check.generation)
		return
	}

	session.Pending--

	outcome := tictactoe.Evaluate(check.board)
	if outcome.IsTerminal() {
		session.Phase = entity.PhaseTerminal
		session.Overlay = entity.OverlayEndMenu
		session.Result = outcome

		log.Info("game finished", "outcome", outcome.String())

		for _, observer := range that.observers {
			observer.GameEnded(session, outcome)
		}

		return
	}

	if session.Pending == 0 {
		session.Phase = entity.PhaseAwaitingInput
	}

	log.Debug("turn", "next", session.Turn)
}

// Reset - clears the board and pieces, re-randomizes the first player and
// hides the end menu. Confirmations still scheduled for the old board are
// discarded when they fire.
func (that *GameController) Reset() {
	session := that.session

	session.Board.Reset()
	session.Generation++
	session.Pending = 0
	session.Phase = entity.PhaseAwaitingInput
	session.Result = entity.OutcomeNone
	session.Turn = entity.RandomMark(that.rng)

	if session.Overlay == entity.OverlayEndMenu {
		session.Overlay = entity.OverlayNone
	}

	that.logger.Info("game reset", "first", session.Turn, "generation", session.Generation)

	for _, observer := range that.observers {
		observer.GameReset(session)
	}
}

// SetColor - changes the color of pieces placed from now on.
func (that *GameController) SetColor(mark entity.Mark, color colorful.Color) {
	if !mark.IsPlayer() {
		return
	}

	that.colors[mark] = color
}

func (that *GameController) Color(mark entity.Mark) colorful.Color {
	return that.colors[mark]
}

func (that *GameController) ConfirmDelay() time.Duration {
	return that.confirmDelay
}
