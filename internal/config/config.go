// Package config loads bot configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the bot needs at startup.
type Config struct {
	DiscordToken string     `env:"DISCORD_TOKEN,required"`
	DBPath       string     `env:"RIVERWARDEN_DB" envDefault:"data/riverwarden.db"`
	GuildID      string     `env:"RIVERWARDEN_GUILD"` // empty registers commands globally
	LogLevel     slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
