package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/model"
)

// Config holds the configuration for the game
type Config struct {
	// Width and Height of 0 size the grid to the terminal.
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	Pattern             string        `json:"pattern"`
	RandomDensity       float64       `json:"random_density"`
	RandomSeed          int64         `json:"random_seed"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	MaxGenerations      int           `json:"max_generations"`
	Interactive         bool          `json:"interactive"`
	StartPaused         bool          `json:"start_paused"`
	LogLevel            string        `json:"log_level"`
	LogFile             string        `json:"log_file"`
}

// hclConfig mirrors Config for HCL files. Absent attributes stay nil and keep the defaults.
type hclConfig struct {
	Width               *int     `hcl:"width,optional"`
	Height              *int     `hcl:"height,optional"`
	FrameRate           *string  `hcl:"frame_rate,optional"`
	Pattern             *string  `hcl:"pattern,optional"`
	RandomDensity       *float64 `hcl:"random_density,optional"`
	RandomSeed          *int64   `hcl:"random_seed,optional"`
	AutoRestart         *bool    `hcl:"auto_restart,optional"`
	StagnationThreshold *int     `hcl:"stagnation_threshold,optional"`
	UseMemoryPool       *bool    `hcl:"use_memory_pool,optional"`
	MaxGenerations      *int     `hcl:"max_generations,optional"`
	Interactive         *bool    `hcl:"interactive,optional"`
	StartPaused         *bool    `hcl:"start_paused,optional"`
	LogLevel            *string  `hcl:"log_level,optional"`
	LogFile             *string  `hcl:"log_file,optional"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               64,
		Height:              64,
		FrameRate:           100 * time.Millisecond,
		Pattern:             model.PatternFormula,
		RandomDensity:       0.5,
		RandomSeed:          1,
		AutoRestart:         false,
		StagnationThreshold: 5,
		UseMemoryPool:       true,
		MaxGenerations:      0, // run until interrupted
		Interactive:         true,
		StartPaused:         false,
		LogLevel:            "info",
	}
}

// LoadConfig loads configuration from a JSON file, or an HCL file when the name ends in .hcl
func LoadConfig(filename string) (Config, error) {
	if strings.EqualFold(filepath.Ext(filename), ".hcl") {
		return loadHCLConfig(filename)
	}

	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

func loadHCLConfig(filename string) (Config, error) {
	config := DefaultConfig()

	file, diags := hclparse.NewParser().ParseHCLFile(filename)
	if diags.HasErrors() {
		return config, errors.Wrapf(diags, "[LoadConfig] failed to parse file: %+v", filename)
	}

	var raw hclConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return config, errors.Wrapf(diags, "[LoadConfig] failed to decode file: %+v", filename)
	}

	if raw.FrameRate != nil {
		d, err := time.ParseDuration(*raw.FrameRate)
		if err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] invalid frame_rate in file: %+v", filename)
		}
		config.FrameRate = d
	}
	assign(&config.Width, raw.Width)
	assign(&config.Height, raw.Height)
	assign(&config.Pattern, raw.Pattern)
	assign(&config.RandomDensity, raw.RandomDensity)
	assign(&config.RandomSeed, raw.RandomSeed)
	assign(&config.AutoRestart, raw.AutoRestart)
	assign(&config.StagnationThreshold, raw.StagnationThreshold)
	assign(&config.UseMemoryPool, raw.UseMemoryPool)
	assign(&config.MaxGenerations, raw.MaxGenerations)
	assign(&config.Interactive, raw.Interactive)
	assign(&config.StartPaused, raw.StartPaused)
	assign(&config.LogLevel, raw.LogLevel)
	assign(&config.LogFile, raw.LogFile)

	return config, nil
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Validate reports the first setting that cannot drive a game
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return errors.Errorf("[Validate] grid size %dx%d must not be negative", c.Height, c.Width)
	case c.FrameRate <= 0:
		return errors.Errorf("[Validate] frame rate %v must be positive", c.FrameRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random density %v outside [0, 1]", c.RandomDensity)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Validate] max generations %d must not be negative", c.MaxGenerations)
	case c.StagnationThreshold <= 0:
		return errors.Errorf("[Validate] stagnation threshold %d must be positive", c.StagnationThreshold)
	case !slices.Contains(model.PatternNames, c.Pattern):
		return errors.Wrapf(model.ErrUnknownPattern, "[Validate] %q, want one of %s",
			c.Pattern, strings.Join(model.PatternNames, ", "))
	}
	return nil
}
