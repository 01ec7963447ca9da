package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rsgames/tictactoe-desktop/internal/ai"
	"github.com/rsgames/tictactoe-desktop/internal/config"
	"github.com/rsgames/tictactoe-desktop/internal/entity"
	"github.com/rsgames/tictactoe-desktop/internal/events"
	"github.com/rsgames/tictactoe-desktop/internal/sound"
	"github.com/rsgames/tictactoe-desktop/internal/tictactoe"
	"github.com/rsgames/tictactoe-desktop/internal/ui/terminal"
)

// RunApp - wires the engine, controller, sound player and terminal UI
// together and runs them until the user quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	difficulty, err := entity.ParseDifficulty(conf.Difficulty)
	if err != nil {
		return fmt.Errorf("configured difficulty: %w", err)
	}

	seed := conf.AISeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine := ai.New(seed)
	controller := tictactoe.New(logger, engine, difficulty)

	bellPlayer := sound.NewPlayer(logger, os.Stdout, conf.Sound.Volume, conf.Sound.Enabled)
	soundCh := make(chan events.Event, 16)
	controller.Subscribe(soundCh)
	defer controller.Unsubscribe(soundCh)

	ui := terminal.New(logger, controller, os.Stdin, os.Stdout)

	// Both channels must be subscribed before the listener starts, or
	// the opening round_started event races the subscription and can be
	// fanned out to nobody.
	uiCh := make(chan events.Event, 16)
	controller.Subscribe(uiCh)
	defer controller.Unsubscribe(uiCh)

	log.Info("Starting game", "difficulty", difficulty, "sound", conf.Sound.Enabled)

	errg, ctx := errgroup.WithContext(ctx)

	errg.Go(func() error {
		return controller.Start(ctx)
	})

	errg.Go(func() error {
		return bellPlayer.Run(ctx, soundCh)
	})

	errg.Go(func() error {
		// The UI returning means the user quit; take the rest down too.
		defer cancel()
		return ui.Run(ctx, uiCh)
	})

	if err := errg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("game loop error: %w", err)
	}

	return nil
}
