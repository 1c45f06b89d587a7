package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/minesweeper/internal/httpserver"
	"github.com/robalobadob/minesweeper/internal/presets"
	"github.com/robalobadob/minesweeper/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if getEnv("LOG_FORMAT", "json") == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if err := presets.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load board presets")
	}

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, httpserver.ConfigFromEnv())
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Int("presets", len(presets.All())).Msg("starting go-server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
