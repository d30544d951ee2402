package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config carries the process-level settings shared by the CLI commands.
// Batch parameters (counts, seed) are per-invocation flags, not config.
type Config struct {
	Env         string `mapstructure:"ENV"`
	Port        string `mapstructure:"PORT"`
	OutputDir   string `mapstructure:"OUTPUT_DIR"`
	CatalogPath string `mapstructure:"CATALOG_PATH"`
	Minify      bool   `mapstructure:"MINIFY"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBMaxConns  int32  `mapstructure:"DB_MAX_CONNS"`
	DBMinConns  int32  `mapstructure:"DB_MIN_CONNS"`
}

// Load reads configuration from the environment and an optional .env file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8000")
	v.SetDefault("OUTPUT_DIR", "output")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("PORT")
	v.BindEnv("OUTPUT_DIR")
	v.BindEnv("CATALOG_PATH")
	v.BindEnv("MINIFY")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

// IsDev returns true in development mode, which switches logging to the
// console writer.
func (c *Config) IsDev() bool {
	return strings.EqualFold(c.Env, "development")
}
