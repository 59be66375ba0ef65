package config

import "github.com/caarlos0/env/v11"

type GameConfig struct {
	GridSize      int      `env:"GRID_SIZE" envDefault:"3"`
	Symbols       []string `env:"SYMBOLS" envSeparator:"," envDefault:"A,S,D,Q,E"`
	RowMultiplier int64    `env:"ROW_MULTIPLIER" envDefault:"5"`
}

func LoadGame() (GameConfig, error) {
	var cfg GameConfig
	err := env.Parse(&cfg)
	return cfg, err
}
