package apperror

import "errors"

var (
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrNotPlayersTurn    = errors.New("it's not the player's turn")
	ErrRoundOver         = errors.New("round is already over")
	ErrNoLegalMoves      = errors.New("no legal moves")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)
