// Package config manages application configuration from a YAML file,
// BOT_* environment variables, and default values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrConfiguration indicates the configuration could not be loaded or is invalid.
var ErrConfiguration = errors.New("configuration error")

// Config defines the application configuration parameters. Values can be
// set via config.yaml or environment variables prefixed with BOT_
// (e.g. BOT_TELEGRAM_TOKEN).
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Messages  MessagesConfig  `mapstructure:"messages"`
}

// LoggerConfig controls log level and output format.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds the bot credentials and the single admin identity.
// The admin is the only user allowed to manage tasks and the only
// recipient of the daily digest.
type TelegramConfig struct {
	Token       string `mapstructure:"token"         validate:"required"`
	AdminUserID int64  `mapstructure:"admin_user_id" validate:"required,gt=0"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// SchedulerConfig controls the digest delivery loop and background jobs.
type SchedulerConfig struct {
	// CheckInterval is how often the delivery loop compares the wall clock
	// against the configured delivery time. Minute-level granularity is
	// all the delivery contract needs.
	CheckInterval time.Duration `mapstructure:"check_interval" validate:"min=1s,max=10m"`

	// Tasks maps background job names to their cron schedules.
	Tasks map[string]TaskConfig `mapstructure:"tasks" validate:"dive"`
}

// TaskConfig configures a single background scheduled job.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
}

// MessagesConfig holds user-facing bot messages.
type MessagesConfig struct {
	Welcome              string `mapstructure:"welcome"`
	AdminPanel           string `mapstructure:"admin_panel"`
	ErrorUnauthorizedMsg string `mapstructure:"error_unauthorized"`
	ErrorGeneralMsg      string `mapstructure:"error_general"`
}

// LoadConfig loads and validates configuration from:
//  1. Default values
//  2. The YAML file at configPath (optional)
//  3. BOT_* environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Allow missing config file; env and defaults still apply.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: failed to read config file: %v", ErrConfiguration, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrConfiguration, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return cfg, nil
}
