package main

import (
	"context"
	"net/http"
	"time"

	"neon-slots/internal/app/slot"
	"neon-slots/internal/config"
	"neon-slots/internal/game"
	"neon-slots/internal/logging"
	"neon-slots/internal/store"
	httptransport "neon-slots/internal/transport/http"
	"neon-slots/internal/wallet"

	"github.com/rs/zerolog/log"
)

func main() {
	logCfg, err := config.LoadLog()
	if err != nil {
		panic(err)
	}
	logging.Init(logCfg)
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal().Err(err).Msg("load server config failed")
	}
	gameCfg, err := config.LoadGame()
	if err != nil {
		log.Fatal().Err(err).Msg("load game config failed")
	}

	st := store.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.InitialBalance)
	defer st.Close()
	if err := st.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("redis ping failed")
	}

	ledger := wallet.New(st, cfg.Account)
	// Seeding must finish before the first request can observe the
	// account.
	if err := ledger.Init(context.Background(), cfg.InitialBalance); err != nil {
		log.Fatal().Err(err).Msg("balance init failed")
	}
	if cfg.ResetBalanceOnStart {
		if err := st.Reset(context.Background(), cfg.Account, cfg.InitialBalance); err != nil {
			log.Fatal().Err(err).Msg("balance reset failed")
		}
		log.Info().Str("account", cfg.Account).Int64("balance", cfg.InitialBalance).Msg("balance reset")
	}

	gen := game.NewGenerator(game.Config{
		GridSize:      gameCfg.GridSize,
		Symbols:       gameCfg.Symbols,
		RowMultiplier: gameCfg.RowMultiplier,
	}, game.NewSeededSource())

	svc := slot.NewService(ledger, gen)
	r := httptransport.NewRouter(svc, st)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.HTTPAddr).Str("account", cfg.Account).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}
