package suite

import (
	"log/slog"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/rocketscienceinc/tictactoe3d/internal/entity"
	"github.com/rocketscienceinc/tictactoe3d/internal/usecase"
)

const (
	Seed         = 42
	ConfirmDelay = 600 * time.Millisecond
)

var (
	ColorX = colorful.Color{R: 1}
	ColorO = colorful.Color{B: 1}
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Controller *usecase.GameController
	Recorder   *Recorder
}

// New - a started controller with a seeded first player and a recorder
// subscribed to it.
func New(t *testing.T) *Suite {
	t.Helper()

	st := NewIdle(t)
	st.Controller.Start()

	return st
}

// NewIdle - like New but the controller is still on the start menu.
func NewIdle(t *testing.T) *Suite {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	controller := usecase.NewGameController(logger, usecase.Options{
		ConfirmDelay: ConfirmDelay,
		ColorX:       ColorX,
		ColorO:       ColorO,
		Rand:         rand.New(rand.NewSource(Seed)), //nolint: gosec // it's ok
	})

	recorder := &Recorder{}
	controller.Subscribe(recorder)

	return &Suite{
		T:          t,
		Logger:     logger,
		Controller: controller,
		Recorder:   recorder,
	}
}

// Settle - lets every scheduled confirmation fire.
func (that *Suite) Settle() {
	that.Controller.Advance(ConfirmDelay)
}

// Recorder keeps every observer call in order.
type Recorder struct {
	Placements []entity.Placement
	Outcomes   []entity.Outcome
	Resets     int
}

func (that *Recorder) PiecePlaced(_ *entity.Session, placement entity.Placement) {
	that.Placements = append(that.Placements, placement)
}

func (that *Recorder) GameEnded(_ *entity.Session, outcome entity.Outcome) {
	that.Outcomes = append(that.Outcomes, outcome)
}

func (that *Recorder) GameReset(_ *entity.Session) {
	that.Resets++
}
