package entity

// Result is the outcome of a round. It is always derived from the board
// by the rules engine, never stored next to it.
type Result string

const (
	ResultInProgress Result = "in_progress"
	ResultXWins      Result = "x_wins"
	ResultOWins      Result = "o_wins"
	ResultDraw       Result = "draw"
)

// IsTerminal reports whether the round is over.
func (that Result) IsTerminal() bool {
	return that != ResultInProgress
}

// WinnerMark returns the winning mark, or empty for draws and ongoing rounds.
func (that Result) WinnerMark() Mark {
	switch that {
	case ResultXWins:
		return MarkX
	case ResultOWins:
		return MarkO
	default:
		return MarkEmpty
	}
}

// ResultForWinner maps a winning mark to its result.
func ResultForWinner(mark Mark) Result {
	switch mark {
	case MarkX:
		return ResultXWins
	case MarkO:
		return ResultOWins
	default:
		return ResultInProgress
	}
}
