package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Place(t *testing.T) {
	t.Run("Marks an empty cell", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: player X places on cell 4
		placed := board.Place(4, PlayerX)

		// Then: the cell holds X and nothing else changed
		require.True(t, placed)
		require.Equal(t, Board{EmptyCell, EmptyCell, EmptyCell, EmptyCell, PlayerX, EmptyCell, EmptyCell, EmptyCell, EmptyCell}, board)
	})

	t.Run("Occupied cell is left unchanged", func(t *testing.T) {
		// Given: a board where X already holds every cell of the first row
		board := Board{PlayerX, PlayerX, PlayerX}

		for index := 0; index < 3; index++ {
			before := board

			// When: player O tries to take an occupied cell
			placed := board.Place(index, PlayerO)

			// Then: the board is exactly as it was
			assert.False(t, placed)
			assert.Equal(t, before, board)
		}
	})

	t.Run("Out of range cells are ignored", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: cells outside the board are picked
		// Then: nothing is placed
		assert.False(t, board.Place(-1, PlayerX))
		assert.False(t, board.Place(9, PlayerX))
		assert.False(t, board.Place(20, PlayerO))
		assert.True(t, board.IsEmpty())
	})

	t.Run("Empty mark is not a player", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: placing the empty mark
		placed := board.Place(0, EmptyCell)

		// Then: it is rejected
		assert.False(t, placed)
	})
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Full board", func(t *testing.T) {
		// Given: a board with all nine cells taken
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerO,
		}

		// Then: it is full
		assert.True(t, board.IsFull())
	})

	t.Run("One empty cell left", func(t *testing.T) {
		// Given: a board with the last cell free
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, EmptyCell,
		}

		// Then: it is not full
		assert.False(t, board.IsFull())
	})
}

func TestBoard_Reset(t *testing.T) {
	// Given: a partly played board
	board := Board{PlayerX, PlayerO, EmptyCell, EmptyCell, PlayerX}

	// When: the board is reset
	board.Reset()

	// Then: every cell is empty and can be placed on again
	require.True(t, board.IsEmpty())
	require.Equal(t, 0, board.Count(PlayerX))
	require.True(t, board.Place(0, PlayerO))
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, EmptyCell, EmptyCell.Opponent())
}

func TestRandomMark(t *testing.T) {
	// Given: a seeded source
	rng := rand.New(rand.NewSource(1))

	// When: drawing many starting players
	seen := map[Mark]int{}
	for i := 0; i < 200; i++ {
		seen[RandomMark(rng)]++
	}

	// Then: both players start sometimes and nobody else ever does
	require.Len(t, seen, 2)
	assert.Positive(t, seen[PlayerX])
	assert.Positive(t, seen[PlayerO])
}

func TestOutcome(t *testing.T) {
	t.Run("Winner", func(t *testing.T) {
		assert.Equal(t, PlayerX, OutcomeXWins.Winner())
		assert.Equal(t, PlayerO, OutcomeOWins.Winner())
		assert.Equal(t, EmptyCell, OutcomeDraw.Winner())
		assert.Equal(t, EmptyCell, OutcomeNone.Winner())
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "winner: X", OutcomeXWins.String())
		assert.Equal(t, "winner: O", OutcomeOWins.String())
		assert.Equal(t, "draw", OutcomeDraw.String())
	})

	t.Run("OutcomeFor", func(t *testing.T) {
		assert.Equal(t, OutcomeXWins, OutcomeFor(PlayerX))
		assert.Equal(t, OutcomeOWins, OutcomeFor(PlayerO))
		assert.Equal(t, OutcomeNone, OutcomeFor(EmptyCell))
		assert.False(t, OutcomeNone.IsTerminal())
		assert.True(t, OutcomeDraw.IsTerminal())
	})
}

func TestRowCol(t *testing.T) {
	assert.Equal(t, 0, Row(2))
	assert.Equal(t, 2, Col(2))
	assert.Equal(t, 2, Row(7))
	assert.Equal(t, 1, Col(7))
}

func TestNewSession(t *testing.T) {
	// When: a session is created
	session := NewSession()

	// Then: it waits on the start menu with an empty board
	require.NotEmpty(t, session.ID)
	assert.Equal(t, OverlayStartMenu, session.Overlay)
	assert.Equal(t, PhaseAwaitingInput, session.Phase)
	assert.True(t, session.IsBlocked())
	assert.True(t, session.Board.IsEmpty())
}

func TestSession_Menu(t *testing.T) {
	t.Run("Start menu", func(t *testing.T) {
		title, button := NewSession().Menu()

		assert.Equal(t, "3D Tic-Tac-Toe", title)
		assert.Equal(t, "Start", button)
	})

	t.Run("End menu names the result", func(t *testing.T) {
		session := NewSession()
		session.Overlay = OverlayEndMenu
		session.Result = OutcomeOWins

		title, button := session.Menu()

		assert.Equal(t, "winner: O", title)
		assert.Equal(t, "Restart", button)

		session.Result = OutcomeDraw
		title, _ = session.Menu()
		assert.Equal(t, "draw", title)
	})

	t.Run("No overlay", func(t *testing.T) {
		session := NewSession()
		session.Overlay = OverlayNone

		title, button := session.Menu()

		assert.Empty(t, title)
		assert.Empty(t, button)
	})
}
