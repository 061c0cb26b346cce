package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration.
type Config struct {
	LogLevel  string          `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string          `mapstructure:"log_format" validate:"oneof=text json"`
	CacheDir  string          `mapstructure:"cache_dir" validate:"required"`
	Source    SourceConfig    `mapstructure:"source"`
	Countries CountriesConfig `mapstructure:"countries"`
	Server    ServerConfig    `mapstructure:"server"`
	Batch     BatchConfig     `mapstructure:"batch"`
}

// SourceConfig describes where the postal code export is fetched from.
type SourceConfig struct {
	URL        string        `mapstructure:"url" validate:"required,url"`
	Page       string        `mapstructure:"page" validate:"required"`
	UserAgent  string        `mapstructure:"user_agent" validate:"required"`
	Timeout    time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxRetries int           `mapstructure:"max_retries" validate:"gte=0,lte=10"`
}

// CountriesConfig selects the canonical country list. DatabaseURL wins over File;
// with neither set the embedded list is used.
type CountriesConfig struct {
	File        string `mapstructure:"file"`
	DatabaseURL string `mapstructure:"database_url" validate:"omitempty,url"`
	Query       string `mapstructure:"query"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// BatchConfig configures batch validation.
type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency" validate:"gte=1,lte=64"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		CacheDir:  DefaultCacheDir(),
		Source: SourceConfig{
			URL:        DefaultWikiURL,
			Page:       DefaultPage,
			UserAgent:  DefaultUserAgent,
			Timeout:    DefaultTimeout,
			MaxRetries: DefaultMaxRetries,
		},
		Server: ServerConfig{
			Addr:            DefaultServerAddr,
			ShutdownTimeout: 10 * time.Second,
		},
		Batch: BatchConfig{
			Concurrency: DefaultBatchConcurrency,
		},
	}
}

// Load builds the configuration from defaults, an optional config file, a .env
// file in the working directory and ZIPZAP_* environment variables, in
// increasing order of precedence. configFile may be empty.
func Load(configFile string) (*Config, error) {
	// A missing .env is normal.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName(AppName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	return nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("cache_dir", d.CacheDir)
	v.SetDefault("source.url", d.Source.URL)
	v.SetDefault("source.page", d.Source.Page)
	v.SetDefault("source.user_agent", d.Source.UserAgent)
	v.SetDefault("source.timeout", d.Source.Timeout)
	v.SetDefault("source.max_retries", d.Source.MaxRetries)
	v.SetDefault("countries.file", d.Countries.File)
	v.SetDefault("countries.database_url", d.Countries.DatabaseURL)
	v.SetDefault("countries.query", d.Countries.Query)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("batch.concurrency", d.Batch.Concurrency)
}
