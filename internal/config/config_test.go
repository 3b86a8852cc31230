package config

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "fail", cfg.Build.Overflow)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, 1.2, cfg.Viewer.ZoomStep)
	assert.Equal(t, Layers{Points: true, Lines: true, Fills: true, Borders: true}, cfg.Viewer.Layers)
	assert.False(t, cfg.Dump)
	assert.Empty(t, cfg.File)
}

// config files are decoded over the defaults, so missing keys keep them
func TestFileOverridesDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, toml.Unmarshal([]byte(`
[build]
overflow = "skip"

[log]
level = "DEBUG"
file = "geomesh.log"

[viewer]
zoom_step = 1.5

[viewer.layers]
fills = false
`), &cfg))
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "skip", cfg.Build.Overflow)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "geomesh.log", cfg.Log.File)
	assert.Equal(t, 1.5, cfg.Viewer.ZoomStep)
	assert.Equal(t, Layers{Points: true, Lines: true, Fills: false, Borders: true}, cfg.Viewer.Layers)

	opts, err := cfg.MeshOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 1)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"bad overflow", func(c *Config) { c.Build.Overflow = "wrap" }, "build.overflow"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad zoom", func(c *Config) { c.Viewer.ZoomStep = 1 }, "zoom_step"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMeshOptionsBadPolicy(t *testing.T) {
	cfg := Default()
	cfg.Build.Overflow = "wrap"
	_, err := cfg.MeshOptions()
	assert.Error(t, err)
}

func TestEncodeReadsBack(t *testing.T) {
	cfg := Default()
	cfg.Build.Overflow = "skip"
	cfg.Viewer.Layers.Points = false
	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))
	assert.Contains(t, buf.String(), "[viewer.layers]")

	cfg.File = "shapes.wkt"
	cfg.Dump = true
	assert.NotContains(t, buf.String(), "dump")

	got := Default()
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, cfg.Build, got.Build)
	assert.Equal(t, cfg.Log, got.Log)
	assert.Equal(t, cfg.Viewer, got.Viewer)
	assert.Empty(t, got.File, "command line fields are not written")
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("Error")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, l)

	_, err = ParseLevel("debug+2")
	assert.Error(t, err)
}
