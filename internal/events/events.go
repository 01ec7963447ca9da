// Package events defines the notifications the game controller publishes
// for its collaborators. The controller never renders or plays sound
// itself; the terminal UI and the bell player subscribe to these.
package events

import "github.com/rsgames/tictactoe-desktop/internal/entity"

type Type string

const (
	TypeRoundStarted      Type = "round_started"
	TypeRoundReset        Type = "round_reset"
	TypeRoundEnded        Type = "round_ended"
	TypePlayerMoved       Type = "player_moved"
	TypeAIMoved           Type = "ai_moved"
	TypeInvalidMove       Type = "invalid_move"
	TypeDifficultyChanged Type = "difficulty_changed"
	TypeScoreReset        Type = "score_reset"
)

// Event is a single controller notification. Board and Score are value
// snapshots taken when the event was published; subscribers may keep
// them without copying.
type Event struct {
	Type    Type
	RoundID string

	Board entity.Board
	Score entity.Score

	// Cell and Mark are set for move events, including rejected ones.
	Cell int
	Mark entity.Mark

	// Result is set on round_ended.
	Result entity.Result

	// Difficulty is set on difficulty_changed and round_started.
	Difficulty entity.Difficulty
}
