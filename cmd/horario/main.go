package main

import (
	"context"
	"os"
	"time"

	"github.com/lgalvis/horario/internal/calendar"
	"github.com/lgalvis/horario/internal/cli"
	"github.com/lgalvis/horario/internal/config"
	"github.com/lgalvis/horario/internal/db"
	"github.com/lgalvis/horario/pkg/logger"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("configuration failed")
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	time.Local = mustLoadLocation(log, cfg.Timezone)

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", cfg.DBPath).Msg("database init failed")
	}

	oracle := calendar.NewOracle(calendar.Colombia2024_2025)
	app, err := cli.NewApp(db.NewRepositories(database), oracle, log)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}

	if err := app.Run(os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func mustLoadLocation(log zerolog.Logger, name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Str("tz", name).Msg("invalid timezone, falling back to UTC")
		return time.UTC
	}
	return location
}
