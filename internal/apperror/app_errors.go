package apperror

import "errors"

// Rejection reasons for a pick. They are logged, never shown: every one of
// them is a silent no-op for the player.
var (
	ErrInputBlocked = errors.New("input is blocked by a menu")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameDecided  = errors.New("game is already decided")
)
