// Package config loads and validates tilesolve settings from YAML.
//
// Precedence is flags > file > defaults: the CLI starts from Default(),
// overlays the file given with --config, then applies explicitly set flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every parse and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full tilesolve configuration.
type Config struct {
	Puzzle PuzzleConfig `yaml:"puzzle"`
	Search SearchConfig `yaml:"search"`
	Log    LogConfig    `yaml:"log"`
}

// PuzzleConfig describes the board to scramble and how to solve it.
type PuzzleConfig struct {
	Rows         int    `yaml:"rows" validate:"min=1,max=32"`
	Cols         int    `yaml:"cols" validate:"min=1,max=32"`
	ShuffleSteps int    `yaml:"shuffle_steps" validate:"min=0"`
	Seed         int64  `yaml:"seed"` // 0 picks a time-based seed
	Heuristic    string `yaml:"heuristic" validate:"oneof=manhattan misplaced zero"`
}

// SearchConfig bounds the engine.
type SearchConfig struct {
	MaxExpansions int           `yaml:"max_expansions" validate:"min=0"` // 0 = unlimited
	Timeout       time.Duration `yaml:"timeout" validate:"min=0"`        // 0 = none
	Reopen        bool          `yaml:"reopen"`
}

// LogConfig selects the logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		p := sl.Current().Interface().(PuzzleConfig)
		if p.Rows*p.Cols < 2 {
			sl.ReportError(p.Cols, "Cols", "cols", "minarea", "2")
		}
	}, PuzzleConfig{})
	return v
}

// Default returns the configuration used when nothing else is given: a
// 4×4 board scrambled by 30 random moves, solved with Manhattan distance.
func Default() Config {
	return Config{
		Puzzle: PuzzleConfig{
			Rows:         4,
			Cols:         4,
			ShuffleSteps: 30,
			Heuristic:    "manhattan",
		},
		Search: SearchConfig{},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Parse overlays YAML data on Default() and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: parse: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}
