// Package config loads the YAML configuration of the twopointers CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables that override file values.
const (
	EnvLogLevel  = "TWOPOINTERS_LOG_LEVEL"
	EnvScenarios = "TWOPOINTERS_SCENARIOS"
)

// Config is the full CLI configuration, as read from a YAML file.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Harness HarnessConfig `yaml:"harness"`
}

// LogConfig selects the zap logger level and encoder.
type LogConfig struct {
	Level  string `yaml:"level" default:"info"`
	Format string `yaml:"format" default:"console"` // console or json
}

// HarnessConfig tells the run command where scenarios come from and whether
// strategies are traced.
type HarnessConfig struct {
	Scenarios string       `yaml:"scenarios"` // path to a scenario file; empty means random
	Trace     bool         `yaml:"trace" default:"false"`
	Random    RandomConfig `yaml:"random"`
}

// RandomConfig bounds the generated scenarios. Values are drawn from [Min, Max).
type RandomConfig struct {
	Count int `yaml:"count" default:"20"`
	Size  int `yaml:"size" default:"12"`
	Min   int `yaml:"min" default:"-10"`
	Max   int `yaml:"max" default:"11"`
}

// Default returns the configuration used when no file is given: every field
// holds the value of its default struct tag.
func Default() *Config {
	cfg := &Config{}
	if err := setDefaults(reflect.ValueOf(cfg).Elem()); err != nil {
		panic(err)
	}

	return cfg
}

// setDefaults walks the exported fields of the struct v, descending into
// nested structs, and decodes each default tag as a YAML scalar into its
// field.
func setDefaults(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		field := v.Field(i)
		if field.Kind() == reflect.Struct {
			if err := setDefaults(field); err != nil {
				return err
			}
			continue
		}
		tag, ok := sf.Tag.Lookup("default")
		if !ok {
			continue
		}
		if err := yaml.Unmarshal([]byte(tag), field.Addr().Interface()); err != nil {
			return fmt.Errorf("config: default of %s.%s: %w", t.Name(), sf.Name, err)
		}
	}

	return nil
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvScenarios); v != "" {
		c.Harness.Scenarios = v
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}

	r := c.Harness.Random
	if r.Count < 0 {
		return fmt.Errorf("%w: harness.random.count %d < 0", ErrInvalidConfig, r.Count)
	}
	if r.Size < 0 {
		return fmt.Errorf("%w: harness.random.size %d < 0", ErrInvalidConfig, r.Size)
	}
	if r.Min >= r.Max {
		return fmt.Errorf("%w: harness.random.min %d must be below max %d", ErrInvalidConfig, r.Min, r.Max)
	}

	return nil
}
