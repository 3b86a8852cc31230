// Package config holds the geomesh settings.
//
// Defaults come from the default struct tags. The command line reads
// config.toml over them and maps flags onto the same fields, see
// cogentcore.org/core/cli.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cogentcore.org/core/cli"
	"github.com/pelletier/go-toml/v2"

	"geomesh/internal/mesh"
)

// Config is the configuration information for the geomesh command.
type Config struct {

	// File is the geometry file to view or dump.
	File string `posarg:"0" required:"-" toml:"-"`

	// Dump prints the compiled mesh summary instead of starting the viewer.
	Dump bool `flag:"d,dump" toml:"-"`

	// PrintConfig writes the effective settings as TOML and exits.
	PrintConfig bool `flag:"print-config" toml:"-"`

	// Build configures mesh building.
	Build Build `toml:"build"`

	// Log configures logging.
	Log Log `toml:"log"`

	// Viewer configures the terminal viewer.
	Viewer Viewer `toml:"viewer"`
}

type Build struct {

	// Overflow is what to do with a polyline whose indices pass the uint32
	// range: fail or skip.
	Overflow string `toml:"overflow" default:"fail" flag:"o,overflow"`
}

type Log struct {

	// Level is debug, info, warn or error.
	Level string `toml:"level" default:"info" flag:"log-level"`

	// File receives log records. Empty disables logging.
	File string `toml:"file" flag:"l,log"`
}

type Viewer struct {
	Layers Layers `toml:"layers"`

	// ZoomStep is the factor applied by one zoom key press.
	ZoomStep float64 `toml:"zoom_step" default:"1.2" flag:"zoom-step"`
}

// Layers are the layers visible when the viewer starts.
type Layers struct {
	Points  bool `toml:"points" default:"true"`
	Lines   bool `toml:"lines" default:"true"`
	Fills   bool `toml:"fills" default:"true"`
	Borders bool `toml:"borders" default:"true"`
}

// Default returns the built-in settings.
func Default() Config {
	var c Config
	if err := cli.SetFromDefaults(&c); err != nil {
		panic(err)
	}
	return c
}

// Encode writes the file settings of c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks the enumerated and numeric fields.
func (c Config) Validate() error {
	if _, err := mesh.ParseOverflowPolicy(c.Build.Overflow); err != nil {
		return fmt.Errorf("config: build.overflow: %w", err)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if c.Viewer.ZoomStep <= 1 {
		return fmt.Errorf("config: viewer.zoom_step must be greater than 1, got %v", c.Viewer.ZoomStep)
	}
	return nil
}

// ParseLevel parses debug, info, warn or error (case-insensitive).
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "debug", "info", "warn", "error":
		if err := l.UnmarshalText([]byte(name)); err != nil {
			return 0, err
		}
		return l, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// Level returns the parsed log level, info when invalid.
func (c Config) Level() slog.Level {
	l, err := ParseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// MeshOptions converts the build settings into mesh build options.
func (c Config) MeshOptions() ([]mesh.Option, error) {
	p, err := mesh.ParseOverflowPolicy(c.Build.Overflow)
	if err != nil {
		return nil, err
	}
	return []mesh.Option{mesh.WithOverflowPolicy(p)}, nil
}
