package main

import (
	"os"

	_ "quickestimate/docs"
	"quickestimate/internal/adapter/http/routes"
	"quickestimate/internal/config"
	"quickestimate/internal/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           QuickEstimate API
// @version         1.0
// @description     Voice recording to PDF job estimate service.

// @host localhost:8080

// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info", "json")
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	if err := routes.Run(cfg); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}
