package main

import (
	"eyeslot/config"
	"eyeslot/di"
	"eyeslot/helper"
	"eyeslot/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg, ""); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
