package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string  `mapstructure:"env"`        // current application environment (local, dev, production etc)
	TelegramAPIToken string  `mapstructure:"-"`          // Telegram API token loaded from environment
	Debug            bool    `mapstructure:"debug"`      // enables telegram-bot-api debug output
	ImagesDir        string  `mapstructure:"images_dir"` // directory with <house>.png result images
	ShareURL         string  `mapstructure:"share_url"`  // link shared together with the result text
	Quiz             Quiz    `mapstructure:"quiz"`       // quiz session section
	Janitor          Janitor `mapstructure:"janitor"`    // idle session cleanup section
}

// Quiz contains quiz session parameters.
type Quiz struct {
	SessionTTL time.Duration `mapstructure:"session_ttl"` // sessions idle for longer are dropped
}

// Janitor contains the cleanup schedule.
type Janitor struct {
	Schedule string `mapstructure:"schedule"` // cron spec, e.g. "@every 10m"
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// A missing .env file is fine, the environment may already be set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("debug", false)
	v.SetDefault("images_dir", "assets/images")
	v.SetDefault("share_url", "")
	v.SetDefault("quiz.session_ttl", "24h")
	v.SetDefault("janitor.schedule", "@every 10m")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("env", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	if cfg.Quiz.SessionTTL <= 0 {
		return nil, fmt.Errorf("quiz.session_ttl must be positive, got %s", cfg.Quiz.SessionTTL)
	}

	return &cfg, nil
}
