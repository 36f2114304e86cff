package csg

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults for the processor configuration.
const (
	DefaultMaxDepth = 50
	DefaultMaxNodes = 10000
	DefaultSegments = 32
)

// Config controls a conversion run. The zero value is not usable; start
// from DefaultConfig or LoadConfig.
type Config struct {
	// EnableLogging turns on diagnostic logging through Logger (or the
	// default slog logger when Logger is nil).
	EnableLogging bool `yaml:"enable_logging"`

	// EnableOptimization is accepted but reserved; the converter does not
	// rewrite trees yet.
	EnableOptimization bool `yaml:"enable_optimization"`

	// EnableValidation is advisory for callers: the processor never
	// auto-invokes Validate, consumers call it explicitly.
	EnableValidation bool `yaml:"enable_validation"`

	// MaxDepth bounds the recursion; deeper branches fail with
	// MAX_DEPTH_EXCEEDED while their siblings continue.
	MaxDepth int `yaml:"max_depth"`

	// MaxNodes is an advisory budget. The walk is not truncated; a
	// finished tree above the budget gets a warning diagnostic.
	MaxNodes int `yaml:"max_nodes"`

	// DefaultMaterial is attached to every converted primitive.
	DefaultMaterial Material `yaml:"default_material"`

	// Logger receives diagnostics when EnableLogging is set.
	Logger *slog.Logger `yaml:"-"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		EnableOptimization: true,
		EnableValidation:   true,
		MaxDepth:           DefaultMaxDepth,
		MaxNodes:           DefaultMaxNodes,
		DefaultMaterial:    DefaultMaterial(),
	}
}

// DefaultMaterial returns the material attached to primitives when the
// source specifies none.
func DefaultMaterial() Material {
	return Material{
		Color:     [4]float64{0.8, 0.8, 0.8, 1.0},
		Metalness: 0.1,
		Roughness: 0.4,
		Opacity:   1.0,
	}
}

// LoadConfig reads a YAML config file over the defaults, so a partial
// file only overrides the keys it names.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("csg: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("csg: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// logger resolves the effective logger for a run.
func (c Config) logger() *slog.Logger {
	if !c.EnableLogging {
		return slog.New(slog.DiscardHandler)
	}
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
