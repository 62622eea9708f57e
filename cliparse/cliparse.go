package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port           int
	DatabaseURL    string
	SQLitePath     string
	AccessPassword string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("study-randomizer", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Postgres URL of the primary schedule store")
	fs.StringVar(&cfg.SQLitePath, "f", "", "Path of the local fallback database file")

	// Secret (prefer env variable, but allow CLI for dev)
	fs.StringVar(&cfg.AccessPassword, "access-password", "", "Shared access password (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3418 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.SQLitePath == "" {
		cfg.SQLitePath = os.Getenv("FALLBACK_DB_PATH")
		if cfg.SQLitePath == "" {
			cfg.SQLitePath = "schedule-fallback.db"
		}
	}

	// Secret - MUST be provided
	if cfg.AccessPassword == "" {
		cfg.AccessPassword = os.Getenv("ACCESS_PASSWORD")
	}
	if cfg.AccessPassword == "" {
		return Config{}, errors.New("ACCESS_PASSWORD required")
	}

	return cfg, nil
}
