package ai

import (
	"math"

	"github.com/rsgames/tictactoe-desktop/internal/entity"
	"github.com/rsgames/tictactoe-desktop/internal/rules"
)

// terminalScore bounds the leaf scores. A win at depth d scores
// terminalScore-d, so faster wins beat slower ones and slow losses beat
// fast ones. The deepest tree is 9 plies, well inside the bound.
const terminalScore = 10

// bestMove runs a full minimax over every legal move and returns the
// best-scoring one for side. Ties break toward the lowest cell index,
// which makes hard play fully deterministic.
func bestMove(board entity.Board, side entity.Mark, moves []int) int {
	best := moves[0]
	bestScore := math.MinInt

	for _, cell := range moves {
		next := board
		next[cell] = side
		if score := minimax(next, side, side.Opponent(), 1); score > bestScore {
			bestScore = score
			best = cell
		}
	}

	return best
}

// minimax scores the board for self, with turn to move, searching to the
// end of the game. The whole tree is at most 9 plies so there is no
// depth cutoff.
func minimax(board entity.Board, self, turn entity.Mark, depth int) int {
	result := rules.Winner(board)
	switch {
	case result == entity.ResultDraw:
		return 0
	case result.WinnerMark() == self:
		return terminalScore - depth
	case result.IsTerminal():
		return depth - terminalScore
	}

	if turn == self {
		best := math.MinInt
		for _, cell := range rules.LegalMoves(board) {
			next := board
			next[cell] = turn
			if score := minimax(next, self, turn.Opponent(), depth+1); score > best {
				best = score
			}
		}
		return best
	}

	best := math.MaxInt
	for _, cell := range rules.LegalMoves(board) {
		next := board
		next[cell] = turn
		if score := minimax(next, self, turn.Opponent(), depth+1); score < best {
			best = score
		}
	}
	return best
}
