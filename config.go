package bucketfeed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the configuration for a Dataset.
//
// All dimensions are in pixels. The defaults reproduce a 1024x1024 area
// budget with 64-pixel block granularity.
type Config struct {
	// BatchSize is the number of items per batch. Every batch holds items
	// assigned to the same bucket; the last batch drawn from a bucket may be
	// shorter. Required (no default).
	BatchSize int `yaml:"batchSize"`

	// TargetArea is the pixel-area budget every bucket approximates.
	// Must be divisible by Step squared.
	TargetArea int `yaml:"targetArea"`

	// MinSize is the minimum admitted bucket dimension (inclusive).
	// Must be a multiple of Step.
	MinSize int `yaml:"minSize"`

	// MaxSize is the maximum admitted bucket dimension (inclusive).
	// Must be a multiple of Step and >= MinSize.
	MaxSize int `yaml:"maxSize"`

	// Step is the block granularity of the downstream resolution; every
	// bucket dimension is a multiple of it. Typically 64 for latent models.
	Step int `yaml:"step"`

	// Seed is the base random seed. Each worker derives its own seed from
	// (Seed, workerID), so reproducibility is per (configuration, seed) pair.
	Seed uint64 `yaml:"seed"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// BatchSize is intentionally left zero: it depends on accelerator memory and
// must be set by the caller.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		TargetArea: 1024 * 1024,
		MinSize:    512,
		MaxSize:    2048,
		Step:       64,
		Seed:       42,
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// BatchSize is never defaulted; Validate rejects a zero batch size.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.TargetArea == 0 {
		cfg.TargetArea = defaults.TargetArea
	}
	if cfg.MinSize == 0 {
		cfg.MinSize = defaults.MinSize
	}
	if cfg.MaxSize == 0 {
		cfg.MaxSize = defaults.MaxSize
	}
	if cfg.Step == 0 {
		cfg.Step = defaults.Step
	}
	if cfg.Seed == 0 {
		cfg.Seed = defaults.Seed
	}
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Hard Validation Rules:
//   - BatchSize > 0
//   - Step > 0
//   - TargetArea > 0 and divisible by Step*Step (block granularity)
//   - 0 < MinSize <= MaxSize, both multiples of Step
//
// A configuration that passes Validate can still produce an empty bucket
// table (bounds too tight for the area budget); that is caught at dataset
// construction, before any worker starts.
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.BatchSize <= 0 {
		return fmt.Errorf("%w: BatchSize must be > 0, got %d", ErrInvalidConfig, cfg.BatchSize)
	}
	if cfg.Step <= 0 {
		return fmt.Errorf("%w: Step must be > 0, got %d", ErrInvalidConfig, cfg.Step)
	}
	if cfg.TargetArea <= 0 {
		return fmt.Errorf("%w: TargetArea must be > 0, got %d", ErrInvalidConfig, cfg.TargetArea)
	}
	if cfg.TargetArea%(cfg.Step*cfg.Step) != 0 {
		return fmt.Errorf(
			"%w: TargetArea (%d) must be divisible by Step^2 (%d)",
			ErrInvalidConfig, cfg.TargetArea, cfg.Step*cfg.Step,
		)
	}
	if cfg.MinSize <= 0 || cfg.MaxSize < cfg.MinSize {
		return fmt.Errorf(
			"%w: size bounds must satisfy 0 < MinSize <= MaxSize, got [%d, %d]",
			ErrInvalidConfig, cfg.MinSize, cfg.MaxSize,
		)
	}
	if cfg.MinSize%cfg.Step != 0 || cfg.MaxSize%cfg.Step != 0 {
		return fmt.Errorf(
			"%w: size bounds [%d, %d] must be multiples of Step (%d)",
			ErrInvalidConfig, cfg.MinSize, cfg.MaxSize, cfg.Step,
		)
	}

	return nil
}

// LoadConfig reads a YAML configuration file, applies defaults and validates.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - *Config: Loaded configuration
//   - error: Read, parse or validation error
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// TestConfig returns a configuration optimized for fast test execution.
//
// The area budget is 16x smaller than the production default, producing a
// small bucket table that keeps assignment tests quick. Use DefaultConfig()
// for production datasets.
//
// Returns:
//   - Config: Configuration with a small bucket table for tests
func TestConfig() Config {
	return Config{
		BatchSize:  4,
		TargetArea: 256 * 256,
		MinSize:    128,
		MaxSize:    512,
		Step:       64,
		Seed:       42,
	}
}
