// Package tictactoe holds the game controller: the state machine that
// orchestrates player and AI turns, keeps the session score and
// publishes events for the UI and sound collaborators.
package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/twipi/pubsub"

	"github.com/rsgames/tictactoe-desktop/internal/apperror"
	"github.com/rsgames/tictactoe-desktop/internal/entity"
	"github.com/rsgames/tictactoe-desktop/internal/events"
	"github.com/rsgames/tictactoe-desktop/internal/rules"
)

// State is the controller's turn state.
type State string

const (
	StateAwaitingPlayerMove State = "awaiting_player_move"
	StateAwaitingAIMove     State = "awaiting_ai_move"
	StateRoundOver          State = "round_over"
)

type moveEngine interface {
	ChooseMove(board entity.Board, side entity.Mark, difficulty entity.Difficulty) (int, error)
}

// Controller owns the board, the score and the turn state. The player
// is X and always moves first; the engine plays O. All methods must be
// called from a single goroutine (the UI loop); events are fanned out
// to subscribers on the listener goroutine started by Start.
type Controller struct {
	logger *slog.Logger
	engine moveEngine

	board      entity.Board
	state      State
	score      entity.Score
	difficulty entity.Difficulty
	roundID    string

	playerMark entity.Mark
	aiMark     entity.Mark

	eventCh  chan events.Event
	eventSub pubsub.Subscriber[events.Event]
}

// New creates a controller for a fresh round and announces it.
func New(logger *slog.Logger, engine moveEngine, difficulty entity.Difficulty) *Controller {
	that := &Controller{
		logger:     logger.With("component", "controller"),
		engine:     engine,
		state:      StateAwaitingPlayerMove,
		difficulty: difficulty,
		roundID:    uuid.NewString(),
		playerMark: entity.MarkX,
		aiMark:     entity.MarkO,
		eventCh:    make(chan events.Event, 64),
	}

	that.publish(events.Event{Type: events.TypeRoundStarted, Difficulty: difficulty})

	return that
}

// Start pumps published events to subscribers until ctx is canceled.
func (that *Controller) Start(ctx context.Context) error {
	return that.eventSub.Listen(ctx, that.eventCh)
}

// Subscribe registers ch to receive every event the controller publishes.
func (that *Controller) Subscribe(ch chan<- events.Event) {
	that.eventSub.Subscribe(ch, func(events.Event) bool { return true })
}

func (that *Controller) Unsubscribe(ch chan<- events.Event) {
	that.eventSub.Unsubscribe(ch)
}

// HandleCellClick plays the player's mark on cell and, if the round is
// still open, lets the AI answer. Illegal clicks leave all state
// untouched and are reported both as an invalid_move event and an error.
func (that *Controller) HandleCellClick(cell int) error {
	switch that.state {
	case StateRoundOver:
		that.publish(events.Event{Type: events.TypeInvalidMove, Cell: cell, Mark: that.playerMark})
		return fmt.Errorf("click on cell %d: %w", cell, apperror.ErrRoundOver)
	case StateAwaitingAIMove:
		that.publish(events.Event{Type: events.TypeInvalidMove, Cell: cell, Mark: that.playerMark})
		return fmt.Errorf("click on cell %d: %w", cell, apperror.ErrNotPlayersTurn)
	}

	if err := that.board.Apply(cell, that.playerMark); err != nil {
		that.publish(events.Event{Type: events.TypeInvalidMove, Cell: cell, Mark: that.playerMark})
		return fmt.Errorf("invalid move: %w", err)
	}

	that.logger.Debug("player moved", "round_id", that.roundID, "cell", cell)
	that.publish(events.Event{Type: events.TypePlayerMoved, Cell: cell, Mark: that.playerMark})

	if that.finishIfTerminal() {
		return nil
	}

	that.state = StateAwaitingAIMove

	return that.playAITurn()
}

// playAITurn asks the engine for a move and applies it. The engine
// failing to produce a legal move here is a controller bug, not a user
// condition; the wrapped error is meant to take the app down.
func (that *Controller) playAITurn() error {
	cell, err := that.engine.ChooseMove(that.board, that.aiMark, that.difficulty)
	if err != nil {
		return fmt.Errorf("engine could not choose a move: %w", err)
	}

	if err := that.board.Apply(cell, that.aiMark); err != nil {
		return fmt.Errorf("engine chose an illegal move: %w", err)
	}

	that.logger.Debug("ai moved", "round_id", that.roundID, "cell", cell, "difficulty", that.difficulty)
	that.publish(events.Event{Type: events.TypeAIMoved, Cell: cell, Mark: that.aiMark})

	if !that.finishIfTerminal() {
		that.state = StateAwaitingPlayerMove
	}

	return nil
}

// finishIfTerminal closes the round when the board is terminal and
// records the result in the score.
func (that *Controller) finishIfTerminal() bool {
	result := rules.Winner(that.board)
	if !result.IsTerminal() {
		return false
	}

	that.state = StateRoundOver
	that.score.Record(result)

	that.logger.Info("round ended", "round_id", that.roundID, "result", result)
	that.publish(events.Event{Type: events.TypeRoundEnded, Result: result})

	return true
}

// Reset clears the board and starts a new round. The score is preserved.
func (that *Controller) Reset() {
	that.publish(events.Event{Type: events.TypeRoundReset})

	that.board = entity.NewBoard()
	that.state = StateAwaitingPlayerMove
	that.roundID = uuid.NewString()

	that.logger.Info("new round", "round_id", that.roundID, "difficulty", that.difficulty)
	that.publish(events.Event{Type: events.TypeRoundStarted, Difficulty: that.difficulty})
}

// ResetScore zeroes the session counters.
func (that *Controller) ResetScore() {
	that.score.Reset()
	that.publish(events.Event{Type: events.TypeScoreReset})
}

// SetDifficulty switches the AI strength, effective from the next AI move.
func (that *Controller) SetDifficulty(difficulty entity.Difficulty) {
	that.difficulty = difficulty
	that.logger.Info("difficulty changed", "difficulty", difficulty)
	that.publish(events.Event{Type: events.TypeDifficultyChanged, Difficulty: difficulty})
}

func (that *Controller) Board() entity.Board { return that.board }

func (that *Controller) State() State { return that.state }

func (that *Controller) Score() entity.Score { return that.score }

func (that *Controller) Difficulty() entity.Difficulty { return that.difficulty }

// publish stamps the event with the current round, board and score and
// queues it for the listener. A full queue means nothing is draining
// events (listener not started); dropping beats blocking the UI loop.
func (that *Controller) publish(ev events.Event) {
	ev.RoundID = that.roundID
	ev.Board = that.board
	ev.Score = that.score

	select {
	case that.eventCh <- ev:
	default:
		that.logger.Warn("event queue full, dropping event", "type", ev.Type)
	}
}
