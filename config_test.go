package bucketfeed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 1024*1024, cfg.TargetArea)
	require.Equal(t, 512, cfg.MinSize)
	require.Equal(t, 2048, cfg.MaxSize)
	require.Equal(t, 64, cfg.Step)
	require.Equal(t, uint64(42), cfg.Seed)
	require.Zero(t, cfg.BatchSize, "batch size has no default")
}

func TestSetDefaults(t *testing.T) {
	cfg := Config{BatchSize: 8}
	SetDefaults(&cfg)

	require.Equal(t, 8, cfg.BatchSize)
	require.Equal(t, 1024*1024, cfg.TargetArea)
	require.Equal(t, 512, cfg.MinSize)
	require.Equal(t, 2048, cfg.MaxSize)
	require.Equal(t, 64, cfg.Step)
	require.Equal(t, uint64(42), cfg.Seed)

	// Explicit values are preserved.
	cfg = Config{BatchSize: 2, TargetArea: 256 * 256, MinSize: 128, MaxSize: 512, Step: 64, Seed: 7}
	SetDefaults(&cfg)
	require.Equal(t, 256*256, cfg.TargetArea)
	require.Equal(t, uint64(7), cfg.Seed)
}

func TestConfigValidate(t *testing.T) {
	valid := TestConfig()
	require.NoError(t, valid.Validate())

	t.Run("zero batch size", func(t *testing.T) {
		cfg := TestConfig()
		cfg.BatchSize = 0
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("negative step", func(t *testing.T) {
		cfg := TestConfig()
		cfg.Step = -64
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("area not divisible by step squared", func(t *testing.T) {
		cfg := TestConfig()
		cfg.TargetArea = 256*256 + 64
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("inverted size bounds", func(t *testing.T) {
		cfg := TestConfig()
		cfg.MinSize, cfg.MaxSize = cfg.MaxSize, cfg.MinSize
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("bounds not step-aligned", func(t *testing.T) {
		cfg := TestConfig()
		cfg.MinSize = 130
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	cfg := TestConfig()

	data, err := yaml.Marshal(&cfg)
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Equal(t, cfg, decoded)
}

func TestLoadConfig(t *testing.T) {
	t.Run("loads, defaults and validates", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bucketfeed.yaml")
		content := "batchSize: 8\ntargetArea: 65536\nminSize: 128\nmaxSize: 512\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, 8, cfg.BatchSize)
		require.Equal(t, 65536, cfg.TargetArea)
		require.Equal(t, 64, cfg.Step, "step defaulted")
		require.Equal(t, uint64(42), cfg.Seed, "seed defaulted")
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bucketfeed.yaml")
		require.NoError(t, os.WriteFile(path, []byte("batchSize: 0\n"), 0o600))

		_, err := LoadConfig(path)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bucketfeed.yaml")
		require.NoError(t, os.WriteFile(path, []byte("batchSize: [oops\n"), 0o600))

		_, err := LoadConfig(path)
		require.Error(t, err)
	})
}

func TestTestConfig(t *testing.T) {
	cfg := TestConfig()
	require.NoError(t, cfg.Validate())
	require.Less(t, cfg.TargetArea, DefaultConfig().TargetArea)
}
