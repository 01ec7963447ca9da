// Package terminal is the interactive front end: it renders the board
// to stdout and translates typed commands into controller calls. It
// owns no game state; everything it shows comes from controller events.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rsgames/tictactoe-desktop/internal/apperror"
	"github.com/rsgames/tictactoe-desktop/internal/entity"
	"github.com/rsgames/tictactoe-desktop/internal/events"
)

type gameController interface {
	HandleCellClick(cell int) error
	Reset()
	ResetScore()
	SetDifficulty(difficulty entity.Difficulty)
}

// UI reads commands from in and writes the game to out.
type UI struct {
	logger *slog.Logger
	game   gameController
	in     io.Reader
	out    io.Writer

	handlers map[string]func(args []string) error
}

func New(logger *slog.Logger, game gameController, in io.Reader, out io.Writer) *UI {
	that := &UI{
		logger: logger.With("component", "ui"),
		game:   game,
		in:     in,
		out:    out,
	}

	that.handlers = map[string]func(args []string) error{
		"n": that.handleNewRound,
		"d": that.handleDifficulty,
		"s": that.handleScoreReset,
		"h": that.handleHelp,
	}

	return that
}

// Run drives the UI until the user quits, input hits EOF or ctx is
// canceled. The caller subscribes eventCh to the controller before its
// event listener starts, so events published during wiring (the opening
// round_started above all) are never lost. Reading stdin cannot be
// interrupted portably, so input runs on its own goroutine and the loop
// selects on lines and events.
func (that *UI) Run(ctx context.Context, eventCh <-chan events.Event) error {
	lineCh := make(chan string, 1)
	go that.readLines(lineCh)

	that.printHelp()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventCh:
			that.render(ev)

		case line, ok := <-lineCh:
			// Show everything that already happened before acting on
			// the next command.
			that.drainEvents(eventCh)

			if !ok {
				return nil
			}
			if strings.EqualFold(line, "q") {
				that.printf("Bye!\n")
				return nil
			}
			if err := that.dispatch(line); err != nil {
				return err
			}
		}
	}
}

func (that *UI) drainEvents(eventCh <-chan events.Event) {
	for {
		select {
		case ev := <-eventCh:
			that.render(ev)
		default:
			return
		}
	}
}

func (that *UI) readLines(lineCh chan<- string) {
	defer close(lineCh)

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		lineCh <- strings.TrimSpace(scanner.Text())
	}
}

// dispatch routes one input line. Rejected moves are not errors here:
// the controller reports them through invalid_move events, which the
// render loop turns into a message. Anything else is fatal.
func (that *UI) dispatch(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	if cell, err := strconv.Atoi(fields[0]); err == nil {
		return that.handleCell(cell)
	}

	handler, ok := that.handlers[strings.ToLower(fields[0])]
	if !ok {
		that.printf("Unknown command %q. Type h for help.\n", fields[0])
		return nil
	}

	return handler(fields[1:])
}

func (that *UI) handleCell(cell int) error {
	// Cells are shown to the user as 1..9, the board indexes 0..8.
	err := that.game.HandleCellClick(cell - 1)
	if err == nil {
		return nil
	}

	if errors.Is(err, apperror.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrRoundOver) ||
		errors.Is(err, apperror.ErrNotPlayersTurn) {
		that.logger.Debug("move rejected", "cell", cell, "error", err)
		return nil
	}

	return fmt.Errorf("move on cell %d failed: %w", cell, err)
}

func (that *UI) handleNewRound([]string) error {
	that.game.Reset()
	return nil
}

func (that *UI) handleDifficulty(args []string) error {
	if len(args) == 0 {
		that.printf("Usage: d easy|medium|hard\n")
		return nil
	}

	difficulty, err := entity.ParseDifficulty(args[0])
	if err != nil {
		that.printf("Unknown difficulty %q. Try easy, medium or hard.\n", args[0])
		return nil
	}

	that.game.SetDifficulty(difficulty)
	return nil
}

func (that *UI) handleScoreReset([]string) error {
	that.game.ResetScore()
	return nil
}

func (that *UI) handleHelp([]string) error {
	that.printHelp()
	return nil
}

func (that *UI) render(ev events.Event) {
	switch ev.Type {
	case events.TypeRoundStarted:
		that.printf("\nNew round. You are X, the AI is O. Difficulty: %s.\n", ev.Difficulty)
		that.printBoard(ev.Board)

	case events.TypeAIMoved:
		that.printf("AI plays cell %d.\n", ev.Cell+1)
		that.printBoard(ev.Board)

	case events.TypeInvalidMove:
		that.printf("Cell %d is not playable.\n", ev.Cell+1)

	case events.TypeRoundEnded:
		that.printBoard(ev.Board)
		switch ev.Result {
		case entity.ResultXWins:
			that.printf("You win!\n")
		case entity.ResultOWins:
			that.printf("The AI wins.\n")
		case entity.ResultDraw:
			that.printf("It's a draw.\n")
		}
		that.printScore(ev.Score)
		that.printf("Type n for a new round.\n")

	case events.TypeDifficultyChanged:
		that.printf("Difficulty set to %s.\n", ev.Difficulty)

	case events.TypeScoreReset:
		that.printScore(ev.Score)
	}
}

// printBoard shows marks where played and the cell number where free.
func (that *UI) printBoard(board entity.Board) {
	var builder strings.Builder

	for row := range 3 {
		if row > 0 {
			builder.WriteString("---+---+---\n")
		}
		for col := range 3 {
			if col > 0 {
				builder.WriteByte('|')
			}
			cell := row*3 + col
			if mark := board.Cell(cell); mark != entity.MarkEmpty {
				builder.WriteString(fmt.Sprintf(" %s ", mark))
			} else {
				builder.WriteString(fmt.Sprintf(" %d ", cell+1))
			}
		}
		builder.WriteByte('\n')
	}

	that.printf("%s", builder.String())
}

func (that *UI) printScore(score entity.Score) {
	that.printf("Score: you %d, AI %d, draws %d.\n", score.XWins, score.OWins, score.Draws)
}

func (that *UI) printHelp() {
	that.printf("Commands: 1-9 play a cell, n new round, d <easy|medium|hard> difficulty, s reset score, h help, q quit.\n")
}

func (that *UI) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("could not write to terminal", "error", err)
	}
}
