package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	SeedPolicyReference = "reference"
	SeedPolicyRandom    = "random"
	SeedPolicyPatterns  = "patterns"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width               int      `json:"width" toml:"width"`
	Height              int      `json:"height" toml:"height"`
	FrameRate           Duration `json:"frame_rate" toml:"frame_rate"`
	AutoRestart         bool     `json:"auto_restart" toml:"auto_restart"`
	StagnationThreshold int      `json:"stagnation_threshold" toml:"stagnation_threshold"`
	MaxGenerations      int      `json:"max_generations" toml:"max_generations"`
	RandomDensity       float64  `json:"random_density" toml:"random_density"`
	InjectionCount      int      `json:"injection_count" toml:"injection_count"`
	SeedPolicy          string   `json:"seed_policy" toml:"seed_policy"`
	Seed                int64    `json:"seed" toml:"seed"`
	HistorySize         int      `json:"history_size" toml:"history_size"`
	LogLevel            string   `json:"log_level" toml:"log_level"`
	Color               bool     `json:"color" toml:"color"`
	// MetricsAddr is where /metrics is served; empty disables the server
	MetricsAddr         string   `json:"metrics_addr" toml:"metrics_addr"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               64,
		Height:              64,
		FrameRate:           Duration(150 * time.Millisecond),
		AutoRestart:         true,
		StagnationThreshold: 5,
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		InjectionCount:      3,
		SeedPolicy:          SeedPolicyReference,
		Seed:                1,
		HistorySize:         5,
		LogLevel:            "info",
	}
}

// LoadConfig loads configuration from a JSON or TOML file, chosen by
// extension. Fields missing from the file keep their defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		if _, err = toml.Decode(string(data), &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to decode toml from file: %+v", filename)
		}
	default:
		if err = json.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
		}
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}
	return config, nil
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return errors.Wrapf(ErrInvalidConfig, "grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "frame_rate must not be negative, got %s", c.FrameRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "random_density must be within [0,1], got %v", c.RandomDensity)
	case c.StagnationThreshold < 0 || c.MaxGenerations < 0 || c.InjectionCount < 0:
		return errors.Wrap(ErrInvalidConfig, "thresholds and counts must not be negative")
	}

	switch c.SeedPolicy {
	case SeedPolicyReference, SeedPolicyRandom, SeedPolicyPatterns:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown seed_policy %q", c.SeedPolicy)
	}
	return nil
}

// Duration is a time.Duration that decodes from either a string such as
// "150ms" or a plain number of nanoseconds
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).String()
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*d = Duration(v)
	case string:
		return d.UnmarshalText([]byte(v))
	default:
		return errors.Errorf("invalid duration %s", string(b))
	}
	return nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", string(text))
	}
	*d = Duration(parsed)
	return nil
}
