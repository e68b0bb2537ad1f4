// Package config provides configuration loading and validation for lensctl.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/authcorp/lenskit/codec"
	apperrors "github.com/authcorp/lenskit/errors"
	"github.com/authcorp/lenskit/logging"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LENSCTL_"

// Config holds lensctl settings. Precedence: environment, then file, then
// defaults.
type Config struct {
	Log     LogConfig     `json:"log" yaml:"log"`
	Output  OutputConfig  `json:"output" yaml:"output"`
	Service ServiceConfig `json:"service" yaml:"service"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `json:"level" yaml:"level" env:"LOG_LEVEL"`
}

// OutputConfig configures how documents are printed. An empty format means
// "same as the input file".
type OutputConfig struct {
	Format string `json:"format" yaml:"format" env:"OUTPUT_FORMAT"`
}

// ServiceConfig names the process in log lines.
type ServiceConfig struct {
	Name string `json:"name" yaml:"name" env:"SERVICE_NAME"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log:     LogConfig{Level: "warn"},
		Service: ServiceConfig{Name: "lensctl"},
	}
}

// Loader reads configuration from a file and the environment.
type Loader struct {
	// Environment replaces the process environment when non-nil.
	Environment map[string]string
}

// Load returns defaults overlaid with the file at path (skipped when path is
// empty) and then with environment overrides.
func (l Loader) Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	opts := env.Options{Prefix: EnvPrefix, Environment: l.Environment}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid environment configuration")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load is Loader{}.Load(path).
func Load(path string) (Config, error) {
	return Loader{}.Load(path)
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return apperrors.Wrap(err, apperrors.ErrCodeNotFound, "config file not found")
		}
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to read config file")
	}

	if codec.FormatOf(path) == codec.FormatYAML {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeValidation, "failed to parse YAML config")
		}
		return nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, "failed to parse JSON config")
	}
	return nil
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	var problems []string
	if _, ok := logging.LookupLevel(c.Log.Level); !ok {
		problems = append(problems, fmt.Sprintf("log.level %q", c.Log.Level))
	}
	if c.Output.Format != "" {
		if _, err := codec.ParseFormat(c.Output.Format); err != nil {
			problems = append(problems, fmt.Sprintf("output.format %q", c.Output.Format))
		}
	}
	if strings.TrimSpace(c.Service.Name) == "" {
		problems = append(problems, "service.name is empty")
	}
	if len(problems) > 0 {
		return apperrors.Validation("invalid config: " + strings.Join(problems, ", "))
	}
	return nil
}
