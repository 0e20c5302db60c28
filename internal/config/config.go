package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Mikkode/bingo/internal/game"
)

// Config is the server configuration.
type Config struct {
	Addr           string // Address to listen on
	VariantFile    string // Optional TOML file with an extra variant
	DefaultWinners int    // Winner count used by the API when none is given
}

// Load reads an optional .env file from the working directory, then the BINGO_* environment variables.
func Load() (Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit .env path; a missing file is not an error.
func LoadFrom(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading %s: %w", envFile, err)
	}

	c := Config{
		Addr:           envOr("BINGO_ADDR", "localhost:8080"),
		VariantFile:    os.Getenv("BINGO_VARIANT_FILE"),
		DefaultWinners: game.DefaultWinners,
	}

	if v := os.Getenv("BINGO_DEFAULT_WINNERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > game.BatchSize {
			return Config{}, fmt.Errorf("invalid BINGO_DEFAULT_WINNERS %q: want an integer between 0 and %d", v, game.BatchSize)
		}
		c.DefaultWinners = n
	}
	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
