package entity

import (
	"fmt"
	"strings"

	"github.com/rsgames/tictactoe-desktop/internal/apperror"
)

// Mark is a single cell value: X, O or empty.
type Mark string

const (
	MarkEmpty Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

// Opponent returns the other playing mark. Empty stays empty.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return MarkEmpty
	}
}

func (that Mark) String() string {
	if that == MarkEmpty {
		return " "
	}
	return string(that)
}

// BoardSize is the number of cells on the board.
const BoardSize = 9

// Board is the 3x3 grid in row-major order. It is a value type: handing
// a Board to another component always hands over an independent copy.
type Board [BoardSize]Mark

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

func (that Board) Cell(cell int) Mark {
	if cell < 0 || cell >= BoardSize {
		return MarkEmpty
	}
	return that[cell]
}

func (that Board) IsFree(cell int) bool {
	return cell >= 0 && cell < BoardSize && that[cell] == MarkEmpty
}

func (that Board) IsFull() bool {
	for _, mark := range that {
		if mark == MarkEmpty {
			return false
		}
	}
	return true
}

// Apply places mark on the given cell.
func (that *Board) Apply(cell int, mark Mark) error {
	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that[cell] != MarkEmpty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that[cell] = mark

	return nil
}

func (that Board) String() string {
	var builder strings.Builder
	for row := range 3 {
		if row > 0 {
			builder.WriteByte('\n')
		}
		for col := range 3 {
			if col > 0 {
				builder.WriteByte('|')
			}
			builder.WriteString(that[row*3+col].String())
		}
	}
	return builder.String()
}
