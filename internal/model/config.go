package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	// ToastDurationMS is how long a toast stays visible before it starts
	// dismissing itself.
	ToastDurationMS int `mapstructure:"toast_duration_ms" yaml:"toast_duration_ms"`

	// MaxToasts caps the number of toasts shown at once.
	MaxToasts int `mapstructure:"max_toasts" yaml:"max_toasts"`

	SkeletonVariant string `mapstructure:"skeleton_variant" yaml:"skeleton_variant"`
	SkeletonCount   int    `mapstructure:"skeleton_count" yaml:"skeleton_count"`
	SkeletonColumns int    `mapstructure:"skeleton_columns" yaml:"skeleton_columns"`
}

// ToastDuration returns ToastDurationMS as a time.Duration.
func (d DisplayConfig) ToastDuration() time.Duration {
	return time.Duration(d.ToastDurationMS) * time.Millisecond
}

// Placeholder returns the skeleton request shown while the feed loads.
func (d DisplayConfig) Placeholder() PlaceholderRequest {
	return PlaceholderRequest{
		Variant: d.SkeletonVariant,
		Count:   d.SkeletonCount,
		Columns: d.SkeletonColumns,
	}
}

// FeedConfig points at the alert/trade fixture supplied by the caller.
type FeedConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// LogConfig controls the file logger. The terminal is owned by the UI,
// so logs never go to stdout.
type LogConfig struct {
	Path  string `mapstructure:"path" yaml:"path"`
	Level string `mapstructure:"level" yaml:"level"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Feed    FeedConfig    `mapstructure:"feed" yaml:"feed"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// configDir returns ~/.config/tradealerts, or the working directory when
// the home directory cannot be resolved.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "tradealerts")
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/tradealerts/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// DefaultAppConfig returns the configuration used when no file exists.
func DefaultAppConfig() *AppConfig {
	dir := configDir()
	return &AppConfig{
		Display: DisplayConfig{
			ToastDurationMS: 5000,
			MaxToasts:       3,
			SkeletonVariant: "alert",
			SkeletonCount:   5,
			SkeletonColumns: 1,
		},
		Feed: FeedConfig{
			Path: filepath.Join(dir, "feed.yaml"),
		},
		Log: LogConfig{
			Path:  filepath.Join(dir, "tradealerts.log"),
			Level: "info",
		},
	}
}

// setDefaults registers every default on v so missing keys resolve to
// sensible values.
func setDefaults(v *viper.Viper) {
	d := DefaultAppConfig()
	v.SetDefault("display.toast_duration_ms", d.Display.ToastDurationMS)
	v.SetDefault("display.max_toasts", d.Display.MaxToasts)
	v.SetDefault("display.skeleton_variant", d.Display.SkeletonVariant)
	v.SetDefault("display.skeleton_count", d.Display.SkeletonCount)
	v.SetDefault("display.skeleton_columns", d.Display.SkeletonColumns)
	v.SetDefault("feed.path", d.Feed.Path)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.level", d.Log.Level)
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	return loadInto(v, path)
}

// LoadConfigWith is LoadConfig on a caller-prepared viper instance, so
// command-line flags bound with BindPFlag take precedence over the file.
func LoadConfigWith(v *viper.Viper, path string) (*AppConfig, error) {
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	return loadInto(v, path)
}

func loadInto(v *viper.Viper, path string) (*AppConfig, error) {
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := DefaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Display.ToastDurationMS <= 0 {
		cfg.Display.ToastDurationMS = 5000
	}
	if cfg.Display.MaxToasts <= 0 {
		cfg.Display.MaxToasts = 3
	}
	if cfg.Display.SkeletonCount < 0 {
		cfg.Display.SkeletonCount = 0
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("display", cfg.Display)
	v.Set("feed", cfg.Feed)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
