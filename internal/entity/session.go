package entity

import (
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
)

// Phase of the placement state machine.
type Phase int

const (
	PhaseAwaitingInput Phase = iota
	PhaseAnimating
	PhaseTerminal
)

func (that Phase) String() string {
	switch that {
	case PhaseAwaitingInput:
		return "awaiting_input"
	case PhaseAnimating:
		return "animating"
	case PhaseTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Overlay is the blocking menu currently shown above the board.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayStartMenu
	OverlayEndMenu
)

// Session is the whole state of one page session. It is owned by the game
// controller; front-ends get it by reference and must not mutate it.
type Session struct {
	ID      string
	Board   Board
	Turn    Mark
	Phase   Phase
	Overlay Overlay

	// Generation changes on every reset. Deferred work tagged with an older
	// generation belongs to a board that no longer exists.
	Generation uint64
	// Seq counts accepted placements across the session.
	Seq uint64
	// Pending is the number of placements whose confirmation has not fired.
	Pending int
	// Result is the last outcome surfaced to the end overlay.
	Result Outcome
}

func NewSession() *Session {
	return &Session{
		ID:      uuid.NewString(),
		Turn:    PlayerX,
		Phase:   PhaseAwaitingInput,
		Overlay: OverlayStartMenu,
	}
}

func (that *Session) IsBlocked() bool {
	return that.Overlay != OverlayNone
}

func (that *Session) IsTerminal() bool {
	return that.Phase == PhaseTerminal
}

// Menu - the title and button label of the shown overlay, empty when none is.
func (that *Session) Menu() (string, string) {
	switch that.Overlay {
	case OverlayStartMenu:
		return "3D Tic-Tac-Toe", "Start"
	case OverlayEndMenu:
		return that.Result.String(), "Restart"
	case OverlayNone:
	}

	return "", ""
}

// Placement describes one accepted pick as handed to the view collaborators.
type Placement struct {
	Index      int
	Mark       Mark
	Color      colorful.Color
	Generation uint64
	Seq        uint64
}
