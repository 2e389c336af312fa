package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
player:
  move_speed: 7.5
gravity:
  multiplier: 2
run:
  collectible_target: 3
`))
	require.NoError(t, err)

	assert.Equal(t, float32(7.5), cfg.Player.MoveSpeed)
	assert.Equal(t, float32(2), cfg.Gravity.Multiplier)
	assert.Equal(t, 3, cfg.Run.CollectibleTarget)
	// untouched keys keep defaults
	assert.Equal(t, float32(5), cfg.Player.JumpForce)
	assert.Equal(t, float32(9.81), cfg.Gravity.Constant)
	assert.Equal(t, float32(1000), cfg.Player.FreeFallProbeDistance)
}

func TestValidateRanges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"multiplier_low", func(c *Config) { c.Gravity.Multiplier = 0.5 }},
		{"multiplier_high", func(c *Config) { c.Gravity.Multiplier = 11 }},
		{"time_limit_high", func(c *Config) { c.Run.TimeLimit = 601 }},
		{"no_target", func(c *Config) { c.Run.CollectibleTarget = 0 }},
		{"zero_radius", func(c *Config) { c.Player.GroundCheckRadius = 0 }},
		{"turn_smoothing", func(c *Config) { c.Player.TurnSmoothTime = 0 }},
		{"fixed_step", func(c *Config) { c.Window.FixedStep = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Gravity.Multiplier = 20
	cfg.Run.CollectibleTarget = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gravity.multiplier")
	assert.Contains(t, err.Error(), "run.collectible_target")
}

func TestMultiplierBoundsAccepted(t *testing.T) {
	for _, m := range []float32{1, 10} {
		cfg := Default()
		cfg.Gravity.Multiplier = m
		assert.NoError(t, cfg.Validate())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("player: [unclosed"))
	require.Error(t, err)
}

func TestWatchDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  move_speed: 5\n"), 0o644))

	w, err := Watch(path, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("player:\n  move_speed: 9\n"), 0o644))

	select {
	case cfg := <-w.Updates:
		require.NotNil(t, cfg)
		assert.Equal(t, float32(9), cfg.Player.MoveSpeed)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}

// A save that lands in two quick writes is read once it settles.
func TestWatchReadsFinalWriteOfBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  move_speed: 5\n"), 0o644))

	w, err := Watch(path, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("player:\n  move_speed: ["), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("player:\n  move_speed: 7\n"), 0o644))

	select {
	case cfg := <-w.Updates:
		require.NotNil(t, cfg)
		assert.Equal(t, float32(7), cfg.Player.MoveSpeed)
	case <-time.After(2 * time.Second):
		t.Fatal("final write was never reloaded")
	}
}

func TestWatchCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	w, err := Watch(path, nil)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load("../../configs/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
