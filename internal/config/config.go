package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/battleship/internal/entity"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"BATTLESHIP_LOG_LEVEL" env-default:"info"`
	Seed     uint64  `yaml:"seed" env:"BATTLESHIP_SEED" env-default:"0"`
	Game     Game    `yaml:"game"`
	Console  Console `yaml:"console"`
}

type Game struct {
	BoardSize              int   `yaml:"board-size" env:"BATTLESHIP_BOARD_SIZE" env-default:"10"`
	Fleet                  []int `yaml:"fleet" env:"BATTLESHIP_FLEET" env-default:"4,3,3,2,2,2,1,1,1,1"`
	PlacementAttempts      int   `yaml:"placement-attempts" env:"BATTLESHIP_PLACEMENT_ATTEMPTS" env-default:"1000"`
	RevealSunkSurroundings bool  `yaml:"reveal-sunk-surroundings" env:"BATTLESHIP_REVEAL_SUNK_SURROUNDINGS"`
}

type Console struct {
	ComputerDelay time.Duration `yaml:"computer-delay" env:"BATTLESHIP_COMPUTER_DELAY" env-default:"1s"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Rules().Validate(); err != nil {
		return nil, fmt.Errorf("invalid game section: %w", err)
	}

	return config, nil
}

// LoadEnv reads configuration from the environment only, for running without config.yml.
func LoadEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := config.Rules().Validate(); err != nil {
		return nil, fmt.Errorf("invalid game section: %w", err)
	}

	return config, nil
}

func (that *Config) Rules() entity.Rules {
	return entity.Rules{
		BoardSize: that.Game.BoardSize,
		Fleet:     that.Game.Fleet,
	}
}
