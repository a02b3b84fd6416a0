package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"clinical-rx/internal/ports/storage"

	"github.com/spf13/viper"
)

// devSecret solo se usa con ENV=development y SECRET_KEY vacío.
const devSecret = "clinical-rx-development-secret-do-not-use"

type Config struct {
	AppName string `mapstructure:"APP_NAME"`
	Port    string `mapstructure:"PORT"`
	Env     string `mapstructure:"ENV"`

	StoreMode      string `mapstructure:"STORE_MODE"`
	DBDSN          string `mapstructure:"DB_DSN"`
	DBMaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns int    `mapstructure:"DB_MAX_IDLE_CONNS"`

	SecretKey                string `mapstructure:"SECRET_KEY"`
	AccessTokenExpireMinutes int    `mapstructure:"ACCESS_TOKEN_EXPIRE_MINUTES"`

	MirrorSeed         bool   `mapstructure:"MIRROR_SEED"`
	MirrorSeedPassword string `mapstructure:"MIRROR_SEED_PASSWORD"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// UsingDevSecret queda en true cuando Validate cae al secreto de desarrollo.
	UsingDevSecret bool `mapstructure:"-"`
}

var keys = []string{
	"APP_NAME", "PORT", "ENV",
	"STORE_MODE", "DB_DSN", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	"SECRET_KEY", "ACCESS_TOKEN_EXPIRE_MINUTES",
	"MIRROR_SEED", "MIRROR_SEED_PASSWORD",
	"LOG_LEVEL", "LOG_FORMAT",
}

// Load lee .env (opcional) y variables de entorno, y valida.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "clinical-rx")
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("STORE_MODE", string(storage.ModeMemory))
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	v.SetDefault("MIRROR_SEED", true)
	v.SetDefault("MIRROR_SEED_PASSWORD", "password")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// .env es opcional
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	mode, err := storage.ParseMode(c.StoreMode)
	if err != nil {
		return fmt.Errorf("STORE_MODE: %w", err)
	}
	c.StoreMode = string(mode)

	if mode == storage.ModePostgres && strings.TrimSpace(c.DBDSN) == "" {
		return errors.New("DB_DSN is required when STORE_MODE=postgres")
	}
	if c.AccessTokenExpireMinutes < 0 {
		return errors.New("ACCESS_TOKEN_EXPIRE_MINUTES must be >= 0")
	}

	if strings.TrimSpace(c.SecretKey) == "" {
		if !c.IsDev() {
			return errors.New("SECRET_KEY is required outside development")
		}
		c.SecretKey = devSecret
		c.UsingDevSecret = true
	}
	return nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) Mode() storage.Mode {
	m, _ := storage.ParseMode(c.StoreMode)
	return m
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
