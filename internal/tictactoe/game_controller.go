package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe3d/internal/entity"
)

// WinCombos lists the winning triples in evaluation order: rows, columns,
// diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate - classifies the board. The first matching triple decides the winner.
func Evaluate(board entity.Board) entity.Outcome {
	if line, ok := WinningLine(board); ok {
		return entity.OutcomeFor(board[line[0]])
	}

	// the game will continue until all the squares are full
	if board.IsFull() {
		return entity.OutcomeDraw
	}

	return entity.OutcomeNone
}

// WinningLine - returns the first triple held by a single player.
func WinningLine(board entity.Board) ([3]int, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return combo, true
		}
	}

	return [3]int{}, false
}
