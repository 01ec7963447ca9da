package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsgames/tictactoe-desktop/internal/entity"
)

const (
	x = entity.MarkX
	o = entity.MarkO
	e = entity.MarkEmpty
)

func TestWinner(t *testing.T) {
	t.Run("X completes the top row", func(t *testing.T) {
		// Given: X on {0,1}, O on {3,4}
		board := entity.Board{
			x, x, e,
			o, o, e,
			e, e, e,
		}

		// When: X plays cell 2
		require.NoError(t, board.Apply(2, x))

		// Then: X wins
		assert.Equal(t, entity.ResultXWins, Winner(board))
	})

	t.Run("O wins on a column", func(t *testing.T) {
		// Given: O holding the left column
		board := entity.Board{
			o, x, x,
			o, x, e,
			o, e, e,
		}

		// Then: O wins
		assert.Equal(t, entity.ResultOWins, Winner(board))
	})

	t.Run("X wins on a diagonal", func(t *testing.T) {
		board := entity.Board{
			x, o, e,
			o, x, e,
			e, e, x,
		}

		assert.Equal(t, entity.ResultXWins, Winner(board))
	})

	t.Run("Full board with no line is a draw", func(t *testing.T) {
		// Given: a fully occupied board with no three-in-a-row
		board := entity.Board{
			o, x, o,
			o, x, x,
			x, o, o,
		}

		// Then: the result is a draw
		assert.Equal(t, entity.ResultDraw, Winner(board))
	})

	t.Run("Open board is in progress", func(t *testing.T) {
		board := entity.Board{
			x, o, e,
			e, x, e,
			e, e, o,
		}

		assert.Equal(t, entity.ResultInProgress, Winner(board))
	})

	t.Run("Empty board is in progress", func(t *testing.T) {
		assert.Equal(t, entity.ResultInProgress, Winner(entity.NewBoard()))
	})

	t.Run("Idempotent without mutation", func(t *testing.T) {
		// Given: any board
		board := entity.Board{
			x, x, x,
			o, o, e,
			e, e, e,
		}

		// When: evaluated twice
		first := Winner(board)
		second := Winner(board)

		// Then: both calls agree
		assert.Equal(t, first, second)
		assert.Equal(t, entity.ResultXWins, first)
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("Empty board offers all cells in order", func(t *testing.T) {
		moves := LegalMoves(entity.NewBoard())

		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, moves)
	})

	t.Run("Terminal board offers nothing", func(t *testing.T) {
		// Given: a board X already won
		board := entity.Board{
			x, x, x,
			o, o, e,
			e, e, e,
		}

		// Then: no moves are legal even though cells are free
		assert.Empty(t, LegalMoves(board))
		assert.True(t, IsTerminal(board))
	})
}

// TestLegalMoves_PartitionsBoard walks the game tree from the empty
// board and checks, for every reachable position, that the legal moves
// and the occupied cells are disjoint and together cover all 9 cells,
// and that Winner yields exactly one result.
func TestLegalMoves_PartitionsBoard(t *testing.T) {
	var walk func(board entity.Board, turn entity.Mark)
	walk = func(board entity.Board, turn entity.Mark) {
		moves := LegalMoves(board)

		seen := make(map[int]bool, entity.BoardSize)
		for _, cell := range moves {
			require.True(t, board.IsFree(cell), "legal move %d is occupied", cell)
			require.False(t, seen[cell], "cell %d listed twice", cell)
			seen[cell] = true
		}

		result := Winner(board)
		if result.IsTerminal() {
			require.Empty(t, moves)
			return
		}

		occupied := 0
		for cell := 0; cell < entity.BoardSize; cell++ {
			if !board.IsFree(cell) {
				occupied++
				require.False(t, seen[cell])
			}
		}
		require.Equal(t, entity.BoardSize, occupied+len(moves))

		for _, cell := range moves {
			next := board
			next[cell] = turn
			walk(next, turn.Opponent())
		}
	}

	walk(entity.NewBoard(), entity.MarkX)
}
