package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Store     StoreConfig     `mapstructure:"store"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// StoreConfig selects the record store backend. The memory backend loads the
// CSV snapshot at startup; sqlite seeds itself from the CSV on first run;
// postgres expects an already provisioned products table.
type StoreConfig struct {
	Backend     string `mapstructure:"backend"` // "memory", "sqlite" or "postgres"
	CSVPath     string `mapstructure:"csv_path"`
	SQLitePath  string `mapstructure:"sqlite_path"`
	DatabaseURL string `mapstructure:"database_url"`
}

type RateLimitConfig struct {
	PerSecond int `mapstructure:"per_second"`
	Burst     int `mapstructure:"burst"`
}

// Load reads configuration from an optional config.yaml and PRODUCTS_*
// environment variables, applying defaults and validating once at startup.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("PRODUCTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; environment variables and defaults apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("store.backend", "memory")
	v.SetDefault("store.csv_path", "data/amazon.csv")
	v.SetDefault("store.sqlite_path", "amazon_products.db")
	// registered so PRODUCTS_STORE_DATABASE_URL binds through AutomaticEnv
	v.SetDefault("store.database_url", "")

	v.SetDefault("ratelimit.per_second", 10)
	v.SetDefault("ratelimit.burst", 30)
}

func validate(config *Config) error {
	switch config.Store.Backend {
	case "memory":
		if config.Store.CSVPath == "" {
			return fmt.Errorf("store csv_path is required for the memory backend")
		}
	case "sqlite":
		if config.Store.SQLitePath == "" {
			return fmt.Errorf("store sqlite_path is required for the sqlite backend")
		}
	case "postgres":
		if config.Store.DatabaseURL == "" {
			return fmt.Errorf("store database_url is required for the postgres backend (set PRODUCTS_STORE_DATABASE_URL)")
		}
	default:
		return fmt.Errorf("store backend must be 'memory', 'sqlite' or 'postgres', got: %s", config.Store.Backend)
	}

	if config.RateLimit.PerSecond < 1 || config.RateLimit.Burst < 1 {
		return fmt.Errorf("rate limit per_second and burst must be positive")
	}

	return nil
}
