// Package config loads the filmphoto command configuration from an optional
// file and FILMPHOTO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/gogpu/filmphoto"
)

// ErrUnknownPreset is returned when a preset name matches neither a
// configured nor a built-in preset.
var ErrUnknownPreset = errors.New("config: unknown preset")

// Config is the command configuration.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`

	// Preset is the parameter set applied before command-line overrides.
	Preset string `mapstructure:"preset" validate:"required"`

	// Seed makes grain reproducible when set.
	Seed *uint64 `mapstructure:"seed"`

	Stamp StampConfig `mapstructure:"stamp"`

	// Presets are user-defined parameter sets keyed by case-folded name.
	// Fields missing from a preset keep their identity values.
	Presets map[string]filmphoto.Params `mapstructure:"-"`
}

// StampConfig controls the date-back imprint.
type StampConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// Layout is a time.Format layout for the imprinted date.
	Layout string `mapstructure:"layout" validate:"required"`
}

// Defaults
const (
	DefaultLogLevel    = "warn"
	DefaultPreset      = "auto"
	DefaultStampLayout = "'06 1 2"
)

var validate = validator.New()

// Load reads the configuration. path may be empty, in which case only
// defaults and environment variables apply. Environment variables use the
// FILMPHOTO_ prefix with dots replaced by underscores, for example
// FILMPHOTO_STAMP_ENABLED.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FILMPHOTO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("preset", DefaultPreset)
	v.SetDefault("stamp.enabled", false)
	v.SetDefault("stamp.layout", DefaultStampLayout)
	if err := v.BindEnv("seed"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	presets, err := loadPresets(v)
	if err != nil {
		return nil, err
	}
	cfg.Presets = presets

	slog.Debug("Loaded configuration", "file", v.ConfigFileUsed(), "preset", cfg.Preset, "presets", len(cfg.Presets))

	return &cfg, nil
}

// loadPresets decodes every presets.<name> block on top of the identity
// parameters and validates it.
func loadPresets(v *viper.Viper) (map[string]filmphoto.Params, error) {
	raw := v.GetStringMap("presets")
	presets := make(map[string]filmphoto.Params, len(raw))

	for name := range raw {
		p := filmphoto.DefaultParams()
		if err := v.UnmarshalKey("presets."+name, &p); err != nil {
			return nil, fmt.Errorf("unmarshal preset %q: %w", name, err)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("validate preset %q: %w", name, err)
		}
		presets[filmphoto.PresetKey(name)] = p
	}

	return presets, nil
}

// ResolvePreset looks name up among the configured presets, then the
// built-in ones.
func (c *Config) ResolvePreset(name string) (filmphoto.Params, error) {
	if p, ok := c.Presets[filmphoto.PresetKey(name)]; ok {
		return p, nil
	}
	if p, ok := filmphoto.Preset(name); ok {
		return p, nil
	}
	return filmphoto.Params{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Level returns LogLevel as a slog.Level.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}
