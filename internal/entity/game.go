package entity

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

// Board holds the nine cells in row-major order.
type Board [BoardSize]Mark

// Place - marks the cell when it is on the board and still empty.
// Anything else is ignored and reported as false.
func (that *Board) Place(index int, mark Mark) bool {
	if !IsValidCell(index) || !mark.IsPlayer() {
		return false
	}

	if that[index] != EmptyCell {
		return false
	}

	that[index] = mark

	return true
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that *Board) IsEmpty() bool {
	for _, cell := range that {
		if cell != EmptyCell {
			return false
		}
	}

	return true
}

func (that *Board) Reset() {
	*that = Board{}
}

// Count - number of cells held by the mark.
func (that *Board) Count(mark Mark) int {
	var n int
	for _, cell := range that {
		if cell == mark {
			n++
		}
	}

	return n
}

func IsValidCell(index int) bool {
	return index >= 0 && index < BoardSize
}

func Row(index int) int { return index / BoardSide }
func Col(index int) int { return index % BoardSide }

// Outcome is the terminal classification of a board. It is always derived
// from the board and never stored on it.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeXWins
	OutcomeOWins
	OutcomeDraw
)

// OutcomeFor - the win outcome for the given player.
func OutcomeFor(mark Mark) Outcome {
	switch mark {
	case PlayerX:
		return OutcomeXWins
	case PlayerO:
		return OutcomeOWins
	default:
		return OutcomeNone
	}
}

func (that Outcome) IsTerminal() bool {
	return that != OutcomeNone
}

func (that Outcome) Winner() Mark {
	switch that {
	case OutcomeXWins:
		return PlayerX
	case OutcomeOWins:
		return PlayerO
	default:
		return EmptyCell
	}
}

func (that Outcome) String() string {
	switch that {
	case OutcomeXWins, OutcomeOWins:
		return "winner: " + string(that.Winner())
	case OutcomeDraw:
		return "draw"
	default:
		return "ongoing"
	}
}
