package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"fieldviz/app"
	"fieldviz/config"
	"fieldviz/hal"
	"fieldviz/internal/buildinfo"
	"fieldviz/sketch/sim"
)

// setFlags collects repeated -set name=value flags.
type setFlags []string

func (s *setFlags) String() string { return strings.Join(*s, ",") }

func (s *setFlags) Set(v string) error {
	if !strings.Contains(v, "=") && v != "resetField" {
		return fmt.Errorf("want name=value, got %q", v)
	}
	*s = append(*s, v)
	return nil
}

func main() {
	var (
		headless hal.HeadlessConfig
		terminal bool
		sketch   string
		cfgPath  string
		sets     setFlags
		screen   hal.Screen
		version  bool
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless and terminal mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless and terminal mode (0 = run forever).")
	flag.BoolVar(&terminal, "terminal", false, "Render into the terminal.")
	flag.StringVar(&sketch, "sketch", "", "Sketch preset: planar or volume (default planar, or the config file's kind).")
	flag.StringVar(&cfgPath, "config", "", "INI config file.")
	flag.Var(&sets, "set", "Apply name=value after startup; repeatable.")
	flag.IntVar(&screen.Width, "width", 0, "Framebuffer width in pixels.")
	flag.IntVar(&screen.Height, "height", 0, "Framebuffer height in pixels.")
	flag.BoolVar(&version, "version", false, "Print build info and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Long())
		return
	}

	cfg, err := loadConfig(sketch, cfgPath, &screen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.Sets = sets
	newApp := func(h hal.HAL) (func() error, error) { return app.New(h, cfg) }

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case headless.Enabled:
		headless.Screen = screen
		err = hal.RunHeadless(ctx, newApp, headless)
	case terminal:
		err = hal.RunTerminal(ctx, newApp, hal.TerminalConfig{Hz: headless.Hz, Ticks: headless.Ticks})
	default:
		err = hal.RunWindow(newApp, hal.WindowConfig{Title: "fieldviz " + cfg.Sketch.Name, Screen: screen})
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig layers the preset, the config file and the size flags. -sketch
// wins over the file's kind; explicit -width/-height win over [view].
func loadConfig(sketch, path string, screen *hal.Screen) (app.Config, error) {
	var file *config.File
	if path != "" {
		f, err := config.Load(path)
		if err != nil {
			return app.Config{}, err
		}
		file = f
	}

	kind := sketch
	if kind == "" && file != nil {
		kind = file.Kind()
	}
	if kind == "" {
		kind = "planar"
	}
	preset, err := sim.Preset(kind)
	if err != nil {
		return app.Config{}, fmt.Errorf("-sketch: %w", err)
	}

	if file != nil {
		if err := file.Apply(&preset); err != nil {
			return app.Config{}, fmt.Errorf("%s: %w", path, err)
		}
		w, h := file.Size()
		if screen.Width <= 0 {
			screen.Width = w
		}
		if screen.Height <= 0 {
			screen.Height = h
		}
	}
	return app.Config{Sketch: preset}, nil
}
