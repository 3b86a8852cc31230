package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"cogentcore.org/core/cli"
	tea "github.com/charmbracelet/bubbletea"

	"geomesh/internal/config"
	"geomesh/internal/mesh"
	"geomesh/internal/tui"
)

func main() {
	opts := cli.DefaultOptions("geomesh", "Geomesh compiles 2-D geometry into GPU meshes and shows them in a terminal viewer.")
	opts.PrintSuccess = false
	cli.Run(opts, &config.Config{}, &cli.Cmd[*config.Config]{
		Func: Run,
		Name: "geomesh",
		Doc:  "Run views the geometry file, or prints its mesh summary with -dump.",
		Root: true,
	})
}

// Run views the geometry file, or prints its mesh summary with -dump.
func Run(cfg *config.Config) error {
	return run(cfg, os.Stdout, os.Stderr)
}

func run(cfg *config.Config, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.PrintConfig {
		return cfg.Encode(stdout)
	}

	closeLog, err := setupLogging(*cfg, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	opts, err := cfg.MeshOptions()
	if err != nil {
		return err
	}

	if cfg.Dump {
		if cfg.File == "" {
			return errors.New("-dump needs a file argument")
		}
		return dump(stdout, cfg.File, opts)
	}

	vopts := tui.Options{
		ShowPoints:  cfg.Viewer.Layers.Points,
		ShowLines:   cfg.Viewer.Layers.Lines,
		ShowFills:   cfg.Viewer.Layers.Fills,
		ShowBorders: cfg.Viewer.Layers.Borders,
		ZoomStep:    cfg.Viewer.ZoomStep,
		Build:       opts,
	}
	var m tui.Model
	if cfg.File != "" {
		m = tui.NewWithPath(vopts, cfg.File)
	} else {
		m = tui.New(vopts)
	}
	slog.Info("viewer starting", "file", cfg.File, "overflow", cfg.Build.Overflow)
	return tui.Run(m)
}

// setupLogging installs the slog default and the mesh package logger. The
// viewer owns the terminal, so without a log file it logs nothing; -dump
// falls back to stderr. The returned func puts the previous loggers back so
// errors reported after run reach the terminal.
func setupLogging(cfg config.Config, stderr io.Writer) (func(), error) {
	prev := slog.Default()
	restore := func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
		mesh.SetLogger(nil)
	}
	hopts := &slog.HandlerOptions{Level: cfg.Level()}
	switch {
	case cfg.Log.File != "":
		f, err := tea.LogToFile(cfg.Log.File, "geomesh")
		if err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
		logger := slog.New(slog.NewTextHandler(f, hopts))
		slog.SetDefault(logger)
		mesh.SetLogger(logger)
		return func() {
			restore()
			log.SetPrefix("")
			f.Close()
		}, nil
	case cfg.Dump:
		logger := slog.New(slog.NewTextHandler(stderr, hopts))
		slog.SetDefault(logger)
		mesh.SetLogger(logger)
	default:
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}
	return restore, nil
}
