package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string `mapstructure:"APP_ENV"`
	Server   ServerConfig
	Seed     SeedConfig
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

type ServerConfig struct {
	Port    string        `mapstructure:"SERVER_PORT"`
	Timeout time.Duration `mapstructure:"SERVER_TIMEOUT"`
}

type SeedConfig struct {
	Dir string `mapstructure:"SEED_DATA_DIR"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_TIMEOUT", "30s")
	viper.SetDefault("LOG_LEVEL", "info")

	var cfg Config

	cfg.AppEnv = viper.GetString("APP_ENV")
	cfg.Server.Port = viper.GetString("SERVER_PORT")
	cfg.Server.Timeout = viper.GetDuration("SERVER_TIMEOUT")
	cfg.Seed.Dir = viper.GetString("SEED_DATA_DIR")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")

	return &cfg, nil
}
