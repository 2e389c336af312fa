package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "debug",
		"INFO":    "info",
		"warn":    "warn",
		"error":   "error",
		"verbose": "info",
		"":        "info",
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in).String(), "input %q", in)
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	log, err := New(Config{Level: "debug", Format: "json", File: path})
	require.NoError(t, err)

	log.Info("gravity committed", zap.String("axis", "+X"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"axis":"+X"`)
}

func TestNewRespectsLevel(t *testing.T) {
	log, err := New(Config{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.InfoLevel))
	assert.True(t, log.Core().Enabled(zap.WarnLevel))
}

func TestVec3(t *testing.T) {
	f := Vec3("dir", 0, -1, 0)
	assert.Equal(t, "(0.000, -1.000, 0.000)", f.String)
}
