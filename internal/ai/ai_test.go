package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsgames/tictactoe-desktop/internal/apperror"
	"github.com/rsgames/tictactoe-desktop/internal/entity"
	"github.com/rsgames/tictactoe-desktop/internal/rules"
)

const (
	x = entity.MarkX
	o = entity.MarkO
	e = entity.MarkEmpty
)

func TestChooseMove_TerminalBoard(t *testing.T) {
	// Given: a board X already won
	board := entity.Board{
		x, x, x,
		o, o, e,
		e, e, e,
	}

	// When: the engine is asked for a move
	engine := New(1)
	_, err := engine.ChooseMove(board, o, entity.DifficultyHard)

	// Then: the precondition violation is reported
	assert.ErrorIs(t, err, apperror.ErrNoLegalMoves)
}

// TestHard_NeverLoses plays the hard engine as O against every legal
// sequence of X moves. Whatever X tries, X must never win.
func TestHard_NeverLoses(t *testing.T) {
	engine := New(1)

	var play func(t *testing.T, board entity.Board)
	play = func(t *testing.T, board entity.Board) {
		for _, cell := range rules.LegalMoves(board) {
			next := board
			next[cell] = x

			result := rules.Winner(next)
			require.NotEqual(t, entity.ResultXWins, result, "X forced a win:\n%s", next)
			if result.IsTerminal() {
				continue
			}

			aiCell, err := engine.ChooseMove(next, o, entity.DifficultyHard)
			require.NoError(t, err)
			require.NoError(t, next.Apply(aiCell, o))

			if rules.Winner(next).IsTerminal() {
				continue
			}

			play(t, next)
		}
	}

	play(t, entity.NewBoard())
}

// TestHard_SelfPlayDraws lets two hard engines finish a round from each
// of the nine openings. Perfect play on both sides always draws.
func TestHard_SelfPlayDraws(t *testing.T) {
	for opening := 0; opening < entity.BoardSize; opening++ {
		board := entity.NewBoard()
		require.NoError(t, board.Apply(opening, x))

		engine := New(1)
		turn := o
		for !rules.IsTerminal(board) {
			cell, err := engine.ChooseMove(board, turn, entity.DifficultyHard)
			require.NoError(t, err)
			require.NoError(t, board.Apply(cell, turn))
			turn = turn.Opponent()
		}

		assert.Equal(t, entity.ResultDraw, rules.Winner(board), "opening %d:\n%s", opening, board)
	}
}

func TestHard_Deterministic(t *testing.T) {
	// Given: a mid-game board
	board := entity.Board{
		x, e, e,
		e, o, e,
		e, e, x,
	}

	// When: the hard engine chooses twice
	engine := New(1)
	first, err := engine.ChooseMove(board, o, entity.DifficultyHard)
	require.NoError(t, err)
	second, err := engine.ChooseMove(board, o, entity.DifficultyHard)
	require.NoError(t, err)

	// Then: it picks the same cell both times
	assert.Equal(t, first, second)
}

func TestHard_TakesImmediateWin(t *testing.T) {
	// Given: O can complete the middle row on cell 5
	board := entity.Board{
		x, x, e,
		o, o, e,
		x, e, e,
	}

	// When: the hard engine moves
	engine := New(1)
	cell, err := engine.ChooseMove(board, o, entity.DifficultyHard)
	require.NoError(t, err)

	// Then: it wins on the spot rather than blocking
	assert.Equal(t, 5, cell)
}

func TestMedium_TakesImmediateWin(t *testing.T) {
	// Given: O can complete the middle row on cell 5
	board := entity.Board{
		x, x, e,
		o, o, e,
		x, e, e,
	}

	// When: the medium engine moves
	engine := New(1)
	cell, err := engine.ChooseMove(board, o, entity.DifficultyMedium)
	require.NoError(t, err)

	// Then: it takes the win
	assert.Equal(t, 5, cell)
}

func TestMedium_BlocksImmediateLoss(t *testing.T) {
	// Given: X threatens the top row on cell 2 and O has no win of its own
	board := entity.Board{
		x, x, e,
		e, o, e,
		e, e, e,
	}

	// When: the medium engine moves
	engine := New(1)
	cell, err := engine.ChooseMove(board, o, entity.DifficultyMedium)
	require.NoError(t, err)

	// Then: it blocks
	assert.Equal(t, 2, cell)
}

func TestEasy_PlaysLegalMove(t *testing.T) {
	// Given: a board with three free cells
	board := entity.Board{
		x, o, x,
		o, x, o,
		e, e, e,
	}

	// When: the easy engine moves repeatedly with a fixed seed
	engine := New(42)
	for i := 0; i < 20; i++ {
		cell, err := engine.ChooseMove(board, x, entity.DifficultyEasy)
		require.NoError(t, err)

		// Then: every choice is one of the free cells
		assert.Contains(t, []int{6, 7, 8}, cell)
	}
}

func TestEasy_Reproducible(t *testing.T) {
	// Given: two engines with the same seed
	first := New(7)
	second := New(7)

	board := entity.NewBoard()

	// Then: they produce the same sequence of easy moves
	for i := 0; i < 5; i++ {
		a, err := first.ChooseMove(board, x, entity.DifficultyEasy)
		require.NoError(t, err)
		b, err := second.ChooseMove(board, x, entity.DifficultyEasy)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}
