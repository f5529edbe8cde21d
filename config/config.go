package config

import (
	"os"
	"strconv"
)

// Config gathers the environment settings read at startup. The .env file is
// loaded by main before this runs. JWT settings are read where they are
// used, in utils/auth.go.
type Config struct {
	Port            string
	EnableScheduler bool
}

func Load() Config {
	cfg := Config{
		Port:            os.Getenv("PORT"),
		EnableScheduler: true,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if env := os.Getenv("ENABLE_SCHEDULER"); env != "" {
		if b, err := strconv.ParseBool(env); err == nil {
			cfg.EnableScheduler = b
		}
	}
	return cfg
}
