package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Difficulty string `yaml:"difficulty" env:"DIFFICULTY" env-default:"hard"`

	// AISeed seeds the engine's random source; 0 means seed from the
	// clock. Fixed seeds make easy/medium games reproducible.
	AISeed int64 `yaml:"ai-seed" env:"AI_SEED" env-default:"0"`

	Sound Sound `yaml:"sound"`
}

type Sound struct {
	Enabled bool    `yaml:"enabled" env:"SOUND_ENABLED" env-default:"true"`
	Volume  float64 `yaml:"volume" env:"SOUND_VOLUME" env-default:"0.7"`
}

// MustLoad - reads the config file when present, otherwise falls back
// to environment variables and defaults.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, config); err != nil {
			panic(fmt.Errorf("unable to load config file: %w", err))
		}
		return config
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to read config from environment: %w", err))
	}

	return config
}
