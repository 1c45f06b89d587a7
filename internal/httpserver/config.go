package httpserver

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/minesweeper/internal/board"
)

// Config carries the server's tunables. Start from DefaultConfig; New only
// fills zero strings, secrets, TTL and MaxCells, never the density.
type Config struct {
	ClientOrigin   string        // CORS origin (CLIENT_ORIGIN)
	TokenSecret    []byte        // HS256 key for owner tokens (OWNER_TOKEN_SECRET)
	TokenTTL       time.Duration // owner token lifetime (OWNER_TOKEN_TTL_HOURS)
	DailySalt      string        // key for the daily seed (DAILY_SALT)
	DailyPreset    string        // preset used for /daily (DAILY_PRESET)
	DefaultDensity float64       // density when a request names none (BOARD_DENSITY)
	MaxCells       int           // upper bound on requested boards (MAX_CELLS)
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		ClientOrigin:   "http://localhost:5173",
		TokenSecret:    []byte("dev_secret_change_me"),
		TokenTTL:       24 * time.Hour,
		DailySalt:      "local_dev_salt",
		DailyPreset:    "classic",
		DefaultDensity: board.DefaultDensity,
		MaxCells:       10000,
	}
}

// ConfigFromEnv reads Config from the environment (after godotenv has run).
func ConfigFromEnv() Config {
	def := DefaultConfig()
	cfg := Config{
		ClientOrigin:   getEnv("CLIENT_ORIGIN", def.ClientOrigin),
		TokenSecret:    []byte(getEnv("OWNER_TOKEN_SECRET", string(def.TokenSecret))),
		TokenTTL:       time.Duration(envInt("OWNER_TOKEN_TTL_HOURS", int(def.TokenTTL/time.Hour))) * time.Hour,
		DailySalt:      getEnv("DAILY_SALT", def.DailySalt),
		DailyPreset:    getEnv("DAILY_PRESET", def.DailyPreset),
		DefaultDensity: def.DefaultDensity,
		MaxCells:       envInt("MAX_CELLS", def.MaxCells),
	}
	if v := os.Getenv("BOARD_DENSITY"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err == nil && d >= 0 && d < 1 {
			cfg.DefaultDensity = d
		} else {
			log.Warn().Err(err).Str("BOARD_DENSITY", v).Msg("ignoring bad density")
		}
	}
	return cfg
}

// withDefaults fills zero fields that have no meaningful zero value.
// DefaultDensity is left alone: 0 is a valid density.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.ClientOrigin == "" {
		c.ClientOrigin = def.ClientOrigin
	}
	if len(c.TokenSecret) == 0 {
		c.TokenSecret = def.TokenSecret
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = def.TokenTTL
	}
	if c.DailyPreset == "" {
		c.DailyPreset = def.DailyPreset
	}
	if c.MaxCells <= 0 {
		c.MaxCells = def.MaxCells
	}
	return c
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Warn().Str(k, v).Msg("ignoring non-integer env value")
	}
	return def
}
