// Package config layers defaults, an optional YAML file, JUMPTABLE_* environment
// variables and command-line flags into a Config.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/aretw0/jumptable/internal/display"
	"github.com/aretw0/jumptable/internal/logging"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	StoreFile   = "file"
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "JUMPTABLE"

// Config holds every setting of the program.
type Config struct {
	Dir   string `mapstructure:"dir" yaml:"dir"`
	Store string `mapstructure:"store" yaml:"store"`

	RedisAddr     string        `mapstructure:"redis_addr" yaml:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password" yaml:"-"`
	RedisDB       int           `mapstructure:"redis_db" yaml:"redis_db"`
	RedisPrefix   string        `mapstructure:"redis_prefix" yaml:"redis_prefix"`
	LockTimeout   time.Duration `mapstructure:"lock_timeout" yaml:"lock_timeout"`

	StoreTimeout time.Duration `mapstructure:"store_timeout" yaml:"store_timeout"`

	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`

	Clear  string `mapstructure:"clear" yaml:"clear"`
	Color  bool   `mapstructure:"color" yaml:"color"`
	Banner bool   `mapstructure:"banner" yaml:"banner"`

	LogLevel slog.Level `mapstructure:"log_level" yaml:"log_level"`
	LogFile  string     `mapstructure:"log_file" yaml:"log_file"`
	Debug    bool       `mapstructure:"debug" yaml:"debug"`

	MetricsAddr string        `mapstructure:"metrics_addr" yaml:"metrics_addr"`
	ServeAddr   string        `mapstructure:"serve_addr" yaml:"serve_addr"`
	ReadTimeout time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`

	// ConfigFile is the file that was read, if any. Not read from the file itself.
	ConfigFile string `mapstructure:"-" yaml:"-"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("dir", ".")
	v.SetDefault("store", StoreFile)
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("redis_prefix", "jumptable:")
	v.SetDefault("lock_timeout", 2*time.Second)
	v.SetDefault("store_timeout", 3*time.Second)
	v.SetDefault("sqlite_path", "jumptable.db")
	v.SetDefault("clear", display.ModeAuto)
	v.SetDefault("color", true)
	v.SetDefault("banner", true)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_file", "")
	v.SetDefault("debug", false)
	v.SetDefault("metrics_addr", "")
	v.SetDefault("serve_addr", "127.0.0.1:8080")
	v.SetDefault("read_timeout", 5*time.Second)
}

// Load builds a Config. flags may be nil; only flags whose names match a key are used.
// The file named by the "config" flag is required to exist; otherwise jumptable.yaml
// is looked up in the data directory and in $HOME/.jumptable, and may be absent.
func Load(v *viper.Viper, flags *pflag.FlagSet) (*Config, error) {
	SetDefaults(v)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("jumptable")
		v.SetConfigType("yaml")
		v.AddConfigPath(v.GetString("dir"))
		v.AddConfigPath("$HOME/.jumptable")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		stringToLevelHook(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()
	cfg.Store = strings.ToLower(cfg.Store)
	cfg.Clear = strings.ToLower(cfg.Clear)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreFile, StoreMemory, StoreRedis, StoreSQLite:
	default:
		return fmt.Errorf("invalid store %q: want file, memory, redis or sqlite", c.Store)
	}
	switch c.Clear {
	case display.ModeAuto, display.ModeANSI, display.ModeCommand, display.ModeNone:
	default:
		return fmt.Errorf("invalid clear mode %q: want auto, ansi, command or none", c.Clear)
	}
	return nil
}

// YAML renders the effective configuration. Secrets are omitted.
func (c *Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(out), nil
}

func stringToLevelHook() mapstructure.DecodeHookFuncType {
	levelType := reflect.TypeOf(slog.Level(0))
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != levelType {
			return data, nil
		}
		level, err := logging.ParseLevel(data.(string))
		if err != nil {
			return nil, fmt.Errorf("invalid log_level %q: %w", data, err)
		}
		return level, nil
	}
}
