// SPDX-License-Identifier: MIT

// Package config holds the clusterviz CLI configuration, loaded from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/katalvlaran/clusterviz/ellipse"
	"github.com/katalvlaran/clusterviz/render"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Environment variables that override file values.
const (
	EnvDataDir  = "CLUSTERVIZ_DATA_DIR"
	EnvLogLevel = "CLUSTERVIZ_LOG_LEVEL"
)

// Config is the full CLI configuration.
type Config struct {
	Estimator EstimatorConfig `yaml:"estimator"`
	Input     InputConfig     `yaml:"input"`
	Render    RenderConfig    `yaml:"render"`
	Workers   int             `yaml:"workers"` // 0 = one per CPU
	Logging   LoggingConfig   `yaml:"logging"`
}

// EstimatorConfig mirrors ellipse.Options.
type EstimatorConfig struct {
	NStd float64 `yaml:"n_std"`
	Size int     `yaml:"size"`
}

// InputConfig describes where confounder tables live and how they are delimited.
type InputConfig struct {
	DataDir   string `yaml:"data_dir"`
	Delimiter string `yaml:"delimiter"` // single character
}

// RenderConfig configures chart output.
type RenderConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Format string `yaml:"format"` // svg, png
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Estimator: EstimatorConfig{
			NStd: ellipse.DefaultNStd,
			Size: ellipse.DefaultSize,
		},
		Input: InputConfig{
			DataDir:   "data",
			Delimiter: ",",
		},
		Render: RenderConfig{
			Title:  render.DefaultTitle,
			Width:  render.DefaultWidth,
			Height: render.DefaultHeight,
			Format: string(render.FormatSVG),
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults; unknown keys are rejected. Environment overrides are applied
// last.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		cfg.applyEnvOverrides()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes c to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: mkdir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.Input.DataDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.EstimatorOptions().Validate(); err != nil {
		return fmt.Errorf("%w: estimator: %w", ErrInvalid, err)
	}
	if _, err := c.Delimiter(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	}
	if c.Render.Width < 0 || c.Render.Height < 0 {
		return fmt.Errorf("%w: render size %dx%d", ErrInvalid, c.Render.Width, c.Render.Height)
	}
	if c.Render.Format != "" {
		if _, err := render.ParseFormat(c.Render.Format); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// EstimatorOptions converts the estimator section.
func (c *Config) EstimatorOptions() ellipse.Options {
	return ellipse.Options{NStd: c.Estimator.NStd, Size: c.Estimator.Size}
}

// RenderOptions converts the render section. An invalid format is left for
// render.Confounders to reject.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Title:  c.Render.Title,
		Width:  c.Render.Width,
		Height: c.Render.Height,
		Format: render.Format(c.Render.Format),
	}
}

// Delimiter returns the input delimiter as a rune.
func (c *Config) Delimiter() (rune, error) {
	d := c.Input.Delimiter
	if d == "" {
		return ',', nil
	}
	r, size := utf8.DecodeRuneInString(d)
	if size != len(d) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("%w: delimiter must be a single character, got %q", ErrInvalid, d)
	}

	return r, nil
}

// Level parses the logging level.
func (c *Config) Level() (zapcore.Level, error) {
	if c.Logging.Level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return lvl, fmt.Errorf("%w: logging: %w", ErrInvalid, err)
	}

	return lvl, nil
}
