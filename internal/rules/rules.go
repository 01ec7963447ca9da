// Package rules evaluates tic-tac-toe boards: winning lines, draws and
// legal moves. Everything here is a pure function of the board value.
package rules

import "github.com/rsgames/tictactoe-desktop/internal/entity"

// WinLines are the 8 three-in-a-row combinations: 3 rows, 3 columns, 2 diagonals.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Winner returns the result of the board: a win for either mark, a draw
// when the board is full with no line, or in-progress otherwise.
func Winner(board entity.Board) entity.Result {
	for _, line := range WinLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != entity.MarkEmpty && a == b && b == c {
			return entity.ResultForWinner(a)
		}
	}

	if board.IsFull() {
		return entity.ResultDraw
	}

	return entity.ResultInProgress
}

// LegalMoves returns the free cells in index order.
// The slice is empty when the board is terminal.
func LegalMoves(board entity.Board) []int {
	if Winner(board) != entity.ResultInProgress {
		return nil
	}

	moves := make([]int, 0, entity.BoardSize)
	for cell, mark := range board {
		if mark == entity.MarkEmpty {
			moves = append(moves, cell)
		}
	}

	return moves
}

// IsTerminal reports whether the board has a winner or no free cells left.
func IsTerminal(board entity.Board) bool {
	return Winner(board) != entity.ResultInProgress
}
