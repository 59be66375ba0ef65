package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	Account        string `env:"ACCOUNT" envDefault:"player"`
	InitialBalance int64  `env:"INITIAL_BALANCE" envDefault:"1000"`

	// Restores the account to InitialBalance on boot. Debug aid, off by
	// default so restarts keep the persisted balance.
	ResetBalanceOnStart bool `env:"RESET_BALANCE_ON_START" envDefault:"false"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
