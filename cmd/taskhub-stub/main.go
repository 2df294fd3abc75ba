package main

import (
	"github.com/taskhub/taskhub-client/internal/config"
	"github.com/taskhub/taskhub-client/internal/stubserver"
	"github.com/taskhub/taskhub-client/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	e := stubserver.New(cfg.Stub.JWTSecret, cfg.Stub.TokenTTL, log)

	log.Info().Str("port", cfg.Stub.Port).Msg("stub services listening")
	if err := e.Start(":" + cfg.Stub.Port); err != nil {
		log.Fatal().Err(err).Msg("stub server stopped")
	}
}
