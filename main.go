package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	app "github.com/rsgames/tictactoe-desktop/internal"
	"github.com/rsgames/tictactoe-desktop/internal/config"
)

var (
	configPath = "config.yml"
	difficulty = ""
	aiSeed     = int64(0)
)

func init() {
	pflag.StringVarP(&configPath, "config", "c", configPath, "path to the config file")
	pflag.StringVarP(&difficulty, "difficulty", "d", difficulty, "override difficulty: easy, medium or hard")
	pflag.Int64Var(&aiSeed, "seed", aiSeed, "override the AI random seed (0 = seed from the clock)")
	pflag.Parse()
}

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config, applying flag overrides.
func initConfig() *config.Config {
	conf := config.MustLoad(configPath)

	if difficulty != "" {
		conf.Difficulty = difficulty
	}
	if aiSeed != 0 {
		conf.AISeed = aiSeed
	}

	return conf
}

// initialize logger. Logs go to stderr: stdout belongs to the game board.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
