// Package config loads the seismo command configuration from flags,
// SEISMO_* environment variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable.
const EnvPrefix = "SEISMO"

// ErrInvalid is returned when a configuration value is out of range.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the resolved command configuration.
type Config struct {
	LogLevel  string `mapstructure:"log_level" validate:"oneof=trace debug info warn warning error disabled off"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=console json"`
	Output    string `mapstructure:"output" validate:"oneof=json yaml"`

	CornerFrequency float64 `mapstructure:"corner_frequency" validate:"gt=0"`
	SampleRate      float64 `mapstructure:"sample_rate" validate:"gte=0"`
	Damping         float64 `mapstructure:"damping" validate:"gte=0"`
	BracketRatio    float64 `mapstructure:"bracket_ratio" validate:"gt=0,lte=1"`
	FFT             string  `mapstructure:"fft" validate:"oneof=radix2 planned"`
	Workers         int     `mapstructure:"workers" validate:"gte=0"`
	RecordWorkers   int     `mapstructure:"record_workers" validate:"gte=0"`
	SmoothOctave    int     `mapstructure:"smooth_octave" validate:"gte=0"`

	Arrival Arrival `mapstructure:"arrival"`
}

// Arrival holds the STA/LTA trigger settings in seconds.
type Arrival struct {
	ShortWindow float64 `mapstructure:"short_window" validate:"gt=0"`
	LongWindow  float64 `mapstructure:"long_window" validate:"gtfield=ShortWindow"`
	Trigger     float64 `mapstructure:"trigger" validate:"gt=0"`
}

// SetDefaults registers every key so that environment variables resolve
// during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("output", "json")

	v.SetDefault("corner_frequency", 0.05)
	v.SetDefault("sample_rate", 0.0)
	v.SetDefault("damping", 0.05)
	v.SetDefault("bracket_ratio", 0.05)
	v.SetDefault("fft", "radix2")
	v.SetDefault("workers", 0)
	v.SetDefault("record_workers", 0)
	v.SetDefault("smooth_octave", 0)

	v.SetDefault("arrival.short_window", 0.5)
	v.SetDefault("arrival.long_window", 5.0)
	v.SetDefault("arrival.trigger", 3.0)
}

// New returns a viper instance with defaults and environment lookup
// configured. A non-empty file is read as the config file.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}
	return v, nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.Output = strings.ToLower(cfg.Output)
	cfg.FFT = strings.ToLower(cfg.FFT)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and reports every failing field.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

