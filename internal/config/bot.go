package config

import "github.com/caarlos0/env/v11"

type BotConfig struct {
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:8080"`
	Bet       int64  `env:"BOT_BET" envDefault:"10"`
	Spins     int    `env:"BOT_SPINS" envDefault:"100"`
	DelayMS   int    `env:"BOT_DELAY_MS" envDefault:"200"`
}

func LoadBot() (BotConfig, error) {
	var cfg BotConfig
	err := env.Parse(&cfg)
	return cfg, err
}
