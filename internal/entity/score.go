package entity

// Score counts round outcomes for the current session. It is owned by
// the controller and survives round resets.
type Score struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Draws int `json:"draws"`
}

// Record adds a finished round's result to the counters.
// In-progress results are ignored.
func (that *Score) Record(result Result) {
	switch result {
	case ResultXWins:
		that.XWins++
	case ResultOWins:
		that.OWins++
	case ResultDraw:
		that.Draws++
	}
}

func (that *Score) Reset() {
	*that = Score{}
}
