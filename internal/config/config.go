// SPDX-License-Identifier: MIT

// Package config holds the sparsecalc driver configuration: where results are
// written, how operands are parsed and how the CLI logs.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sparsemat/matrix"
)

// ErrInvalidConfig marks a configuration that failed Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all sparsecalc configuration.
type Config struct {
	// OutputDir is the directory operation results are written to.
	OutputDir string `yaml:"output_dir"`

	// Outputs names the result file of each operation.
	Outputs OutputsConfig `yaml:"outputs"`

	// Parse configures how operand files are read.
	Parse ParseConfig `yaml:"parse"`

	// Logging configures the CLI logger.
	Logging LoggingConfig `yaml:"logging"`
}

// OutputsConfig names the result file per operation.
type OutputsConfig struct {
	Add      string `yaml:"add"`
	Subtract string `yaml:"subtract"`
	Multiply string `yaml:"multiply"`
}

// ParseConfig configures operand parsing.
type ParseConfig struct {
	ReadAhead      bool `yaml:"read_ahead"`
	Buffers        int  `yaml:"buffers"`
	BufferSize     int  `yaml:"buffer_size"`
	AllowNonFinite bool `yaml:"allow_non_finite"` // accept NaN/±Inf values
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the built-in configuration. The output file names
// match the historical driver: addition_result.txt and friends. Unlike the
// matrix package, the CLI reads operands with read-ahead enabled.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: ".",
		Outputs: OutputsConfig{
			Add:      "addition_result.txt",
			Subtract: "subtraction_result.txt",
			Multiply: "multiplication_result.txt",
		},
		Parse: ParseConfig{
			ReadAhead:  true,
			Buffers:    matrix.DefaultReadAheadBuffers,
			BufferSize: matrix.DefaultReadAheadSize,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML file on top of DefaultConfig. An empty path yields the
// defaults; a path that cannot be read is an error since it was asked for.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir must not be empty", ErrInvalidConfig)
	}
	for name, file := range map[string]string{
		"outputs.add":      c.Outputs.Add,
		"outputs.subtract": c.Outputs.Subtract,
		"outputs.multiply": c.Outputs.Multiply,
	} {
		if file == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, name)
		}
	}
	if c.Parse.ReadAhead && (c.Parse.Buffers <= 0 || c.Parse.BufferSize <= 0) {
		return fmt.Errorf("%w: parse.buffers and parse.buffer_size must be > 0 with read_ahead", ErrInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalidConfig, err)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.format must be json or console, got %q", ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}

// MatrixOptions translates the parse section into matrix options.
func (c *Config) MatrixOptions() []matrix.Option {
	var opts []matrix.Option
	if c.Parse.ReadAhead {
		opts = append(opts, matrix.WithReadAhead(c.Parse.Buffers, c.Parse.BufferSize))
	} else {
		opts = append(opts, matrix.WithNoReadAhead())
	}
	if c.Parse.AllowNonFinite {
		opts = append(opts, matrix.WithNoValidateNaNInf())
	}

	return opts
}
