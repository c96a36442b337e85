// Package main provides sheetmenu, a terminal demo of the bottom sheet menu.
// Press o (or click the Open button) to slide the sheet up, then pick an
// option, click outside the sheet, or drag it down to dismiss it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/sheetmenu/pkg/config"
	"github.com/entrhq/sheetmenu/pkg/logging"
	"github.com/entrhq/sheetmenu/pkg/menu"
)

const version = "0.1.0"

// Config holds the command line configuration
type Config struct {
	MenuPath    string
	ConfigPath  string
	DumpConfig  bool
	ShowVersion bool
	Debug       bool
}

func main() {
	cfg := parseFlags()

	if cfg.ShowVersion {
		fmt.Printf("sheetmenu v%s\n", version)
		return
	}

	if err := config.Initialize(cfg.ConfigPath); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.DumpConfig {
		if err := dumpConfig(os.Stdout, config.GetSheet()); err != nil {
			log.Fatalf("Failed to dump config: %v", err)
		}
		return
	}

	m := menu.Default()
	if cfg.MenuPath != "" {
		loaded, err := menu.Load(cfg.MenuPath)
		if err != nil {
			log.Fatalf("Menu error: %v", err)
		}
		m = loaded
	}

	if runErr := run(cfg, m); runErr != nil {
		log.Fatalf("Application error: %v", runErr)
	}
}

// parseFlags parses command line flags
func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.MenuPath, "menu", "", "Path to a menu file (YAML); defaults to the built-in menu")
	flag.StringVar(&cfg.ConfigPath, "config", "", "Path to the settings file (default: ~/.sheetmenu/config.json)")
	flag.BoolVar(&cfg.DumpConfig, "dump-config", false, "Print the effective settings and exit")
	flag.BoolVar(&cfg.Debug, "debug", false, "Write debug output to the log file")
	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "sheetmenu - A bottom sheet menu for the terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: sheetmenu [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  %s  Directory for log files\n", logging.EnvLogDir)
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sheetmenu\n")
		fmt.Fprintf(os.Stderr, "  sheetmenu -menu menu.yaml\n")
		fmt.Fprintf(os.Stderr, "  sheetmenu -config ./config.json -dump-config\n")
	}

	flag.Parse()
	return cfg
}

// run starts the terminal program
func run(cfg *Config, m *menu.Menu) error {
	logger, err := logging.NewLogger("sheetmenu")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer logger.Close()

	if !cfg.Debug {
		logging.SetLevel(logging.LevelInfo)
	}
	logger.Infof("starting sheetmenu v%s (session %s)", version, logger.SessionID())

	a, err := newApp(m, config.GetSheet(), logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program failed: %w", err)
	}
	return nil
}
