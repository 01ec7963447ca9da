// Package ai picks moves for the bot side. Hard plays a full minimax
// search and never loses; medium and easy are deliberately beatable.
package ai

import (
	"fmt"
	"math/rand"

	"github.com/rsgames/tictactoe-desktop/internal/apperror"
	"github.com/rsgames/tictactoe-desktop/internal/entity"
	"github.com/rsgames/tictactoe-desktop/internal/rules"
)

// Engine chooses moves for one side. The random source is explicit so
// easy and medium games are reproducible under a fixed seed.
type Engine struct {
	rng *rand.Rand
}

// New creates an engine seeded with the given value.
func New(seed int64) *Engine {
	return &Engine{
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec // game moves, not secrets
	}
}

// ChooseMove returns the cell the engine plays for side on the given board.
// Calling it on a terminal board is a caller bug and returns ErrNoLegalMoves.
func (that *Engine) ChooseMove(board entity.Board, side entity.Mark, difficulty entity.Difficulty) (int, error) {
	moves := rules.LegalMoves(board)
	if len(moves) == 0 {
		return 0, fmt.Errorf("%w: board is terminal", apperror.ErrNoLegalMoves)
	}

	switch difficulty {
	case entity.DifficultyEasy:
		return that.randomMove(moves), nil
	case entity.DifficultyMedium:
		return that.tacticalMove(board, side, moves), nil
	default:
		return bestMove(board, side, moves), nil
	}
}

// randomMove plays a uniformly random legal move.
func (that *Engine) randomMove(moves []int) int {
	return moves[that.rng.Intn(len(moves))]
}

// tacticalMove takes an immediate win, otherwise blocks the opponent's
// immediate win, otherwise plays randomly. One ply of lookahead.
func (that *Engine) tacticalMove(board entity.Board, side entity.Mark, moves []int) int {
	if cell, ok := winningCell(board, side, moves); ok {
		return cell
	}

	if cell, ok := winningCell(board, side.Opponent(), moves); ok {
		return cell
	}

	return that.randomMove(moves)
}

// winningCell finds a cell that completes a line for mark, if one exists.
func winningCell(board entity.Board, mark entity.Mark, moves []int) (int, bool) {
	for _, cell := range moves {
		next := board
		next[cell] = mark
		if rules.Winner(next).WinnerMark() == mark {
			return cell, true
		}
	}
	return 0, false
}
