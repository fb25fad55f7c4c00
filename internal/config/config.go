package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Deployment modes. The mode selects the coin-catalog strategy once at
// startup; nothing branches on it per call.
const (
	ModeDevnet  = "devnet"
	ModeMainnet = "mainnet"
)

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	NodeURL       string
	Mode          string
	ModuleAddress string
	CatalogPath   string
	PgDSN         string
	ReadTimeout   time.Duration
	LogLevel      string
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("QUERIER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("mode", ModeDevnet)
	v.SetDefault("catalog", "./data/mainnet-coin-list.json")
	v.SetDefault("read-timeout", 5*time.Second)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		NodeURL:       v.GetString("node"),
		Mode:          v.GetString("mode"),
		ModuleAddress: v.GetString("module-address"),
		CatalogPath:   v.GetString("catalog"),
		PgDSN:         v.GetString("pg-dsn"),
		ReadTimeout:   v.GetDuration("read-timeout"),
		LogLevel:      v.GetString("log-level"),
	}

	if cfg.Mode != ModeDevnet && cfg.Mode != ModeMainnet {
		return Config{}, fmt.Errorf("unknown mode %q", cfg.Mode)
	}

	return cfg, nil
}
