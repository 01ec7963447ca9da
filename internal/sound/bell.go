// Package sound turns controller events into terminal-bell feedback.
// The terminal bell has no pitch or amplitude control, so "volume"
// scales the number of rings per cue.
package sound

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/rsgames/tictactoe-desktop/internal/entity"
	"github.com/rsgames/tictactoe-desktop/internal/events"
)

const bell = "\a"

const (
	ringGap = 50 * time.Millisecond
	cueGap  = 100 * time.Millisecond
)

// cue is one audible unit: duration is in ring-units before volume scaling.
type cue struct {
	duration int
}

var cues = map[events.Type]cue{
	events.TypeRoundStarted:      {duration: 2},
	events.TypeRoundReset:        {duration: 1},
	events.TypePlayerMoved:       {duration: 1},
	events.TypeAIMoved:           {duration: 1},
	events.TypeInvalidMove:       {duration: 1},
	events.TypeDifficultyChanged: {duration: 1},
}

// Round outcomes get a three-tone sequence instead of a single cue:
// rising for a player win, falling for a loss, flat for a draw.
var sequences = map[entity.Result][]cue{
	entity.ResultXWins: {{duration: 1}, {duration: 2}, {duration: 3}},
	entity.ResultOWins: {{duration: 3}, {duration: 2}, {duration: 1}},
	entity.ResultDraw:  {{duration: 1}, {duration: 1}, {duration: 1}},
}

// Player writes bell characters to a terminal in response to events.
type Player struct {
	logger  *slog.Logger
	out     io.Writer
	volume  float64
	enabled bool
}

// NewPlayer creates a bell player writing to out. Volume is clamped to [0,1].
func NewPlayer(logger *slog.Logger, out io.Writer, volume float64, enabled bool) *Player {
	that := &Player{
		logger:  logger.With("component", "sound"),
		out:     out,
		enabled: enabled,
	}
	that.SetVolume(volume)
	return that
}

// SetVolume adjusts the ring scaling. Values outside [0,1] are clamped.
func (that *Player) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	that.volume = volume
}

// Run consumes events from ch until ctx is canceled or ch closes.
func (that *Player) Run(ctx context.Context, ch <-chan events.Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			that.Play(ev)
		}
	}
}

// Play rings the cue mapped to the event, if any.
func (that *Player) Play(ev events.Event) {
	if !that.enabled {
		return
	}

	if ev.Type == events.TypeRoundEnded {
		that.playSequence(sequences[ev.Result])
		return
	}

	if c, ok := cues[ev.Type]; ok {
		that.ring(c)
	}
}

func (that *Player) playSequence(seq []cue) {
	for i, c := range seq {
		if i > 0 {
			time.Sleep(cueGap)
		}
		that.ring(c)
	}
}

// ring writes the bell character. At least one ring per cue so low
// volume still gives audible feedback; zero volume is what the enabled
// switch is for.
func (that *Player) ring(c cue) {
	rings := int(that.volume * float64(c.duration))
	if rings < 1 {
		rings = 1
	}

	for i := 0; i < rings; i++ {
		if i > 0 {
			time.Sleep(ringGap)
		}
		if _, err := io.WriteString(that.out, bell); err != nil {
			that.logger.Error("could not ring terminal bell", "error", err)
			return
		}
	}
}
