package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries everything the composition root needs to wire the store.
// It is built once in main and passed down; nothing reads the environment
// after Load returns.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string
	// SeedOnStart regenerates the development dataset at startup.
	SeedOnStart bool
	// SeedValue drives the deterministic dataset generator.
	SeedValue int64
}

// Load reads configuration from the environment, after sourcing .env if one
// exists. Every value has a development default.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg := &Config{
		DBPath:    "ischool.db",
		SeedValue: 42,
	}

	if path := os.Getenv("DB_PATH"); path != "" {
		cfg.DBPath = path
	}
	if os.Getenv("SEED_ON_START") == "true" {
		cfg.SeedOnStart = true
	}
	if raw := os.Getenv("SEED_VALUE"); raw != "" {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Printf("Ignoring invalid SEED_VALUE %q: %v", raw, err)
		} else {
			cfg.SeedValue = value
		}
	}

	return cfg
}
