package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-gol/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"width": 32,
		"height": 16,
		"frame_rate": 50000000,
		"pattern": "random",
		"random_seed": 7,
		"auto_restart": true
	}`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 32, config.Width)
	assert.Equal(t, 16, config.Height)
	assert.Equal(t, 50*time.Millisecond, config.FrameRate)
	assert.Equal(t, model.PatternRandom, config.Pattern)
	assert.Equal(t, int64(7), config.RandomSeed)
	assert.True(t, config.AutoRestart)
	// untouched fields keep their defaults
	assert.Equal(t, DefaultConfig().RandomDensity, config.RandomDensity)
	assert.Equal(t, DefaultConfig().LogLevel, config.LogLevel)
}

func TestLoadConfig_HCL(t *testing.T) {
	path := writeFile(t, "life.hcl", `
width        = 40
height       = 20
frame_rate   = "250ms"
pattern      = "gliders"
interactive  = false
max_generations = 12
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 40, config.Width)
	assert.Equal(t, 20, config.Height)
	assert.Equal(t, 250*time.Millisecond, config.FrameRate)
	assert.Equal(t, model.PatternGliders, config.Pattern)
	assert.False(t, config.Interactive)
	assert.Equal(t, 12, config.MaxGenerations)
	assert.Equal(t, DefaultConfig().StagnationThreshold, config.StagnationThreshold)
	assert.NoError(t, config.Validate())
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorContains(t, err, "failed to read file")
	})

	t.Run("bad json", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "config.json", `{"width": "wide"}`))
		assert.ErrorContains(t, err, "failed to unmarshal")
	})

	t.Run("hcl syntax", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "life.hcl", `width = `))
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("hcl unknown attribute", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "life.hcl", `speed = 3`))
		assert.ErrorContains(t, err, "failed to decode")
	})

	t.Run("hcl bad duration", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "life.hcl", `frame_rate = "fast"`))
		assert.ErrorContains(t, err, "invalid frame_rate")
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"negative width", func(c *Config) { c.Width = -1 }},
		{"negative height", func(c *Config) { c.Height = -3 }},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"density above one", func(c *Config) { c.RandomDensity = 1.5 }},
		{"negative density", func(c *Config) { c.RandomDensity = -0.1 }},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -1 }},
		{"zero stagnation threshold", func(c *Config) { c.StagnationThreshold = 0 }},
		{"unknown pattern", func(c *Config) { c.Pattern = "acorn" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			assert.Error(t, config.Validate())
		})
	}

	t.Run("terminal sized grid", func(t *testing.T) {
		config := DefaultConfig()
		config.Width, config.Height = 0, 0
		assert.NoError(t, config.Validate())
	})

	t.Run("unknown pattern sentinel", func(t *testing.T) {
		config := DefaultConfig()
		config.Pattern = "acorn"
		assert.True(t, errors.Is(config.Validate(), model.ErrUnknownPattern))
	})
}
