// Package menu loads the option list shown in the sheet.
package menu

import (
	"fmt"
	"os"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Menu is the YAML menu file.
type Menu struct {
	Title   string   `yaml:"title"`   // Heading shown above the options
	Options []string `yaml:"options"` // Option labels, in display order
	Hide    []string `yaml:"hide"`    // Glob patterns for options to leave out
}

// Default returns the built-in menu.
func Default() *Menu {
	return &Menu{
		Title: "Post options",
		Options: []string{
			"Save this image",
			"Delete post",
			"More info",
			"Follow account",
		},
	}
}

// Load reads and validates a menu file.
func Load(path string) (*Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}

	var m Menu
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse menu file %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid menu file %s: %w", path, err)
	}
	return &m, nil
}

// Validate checks that the menu has options and that every pattern compiles.
func (m *Menu) Validate() error {
	if len(m.Options) == 0 {
		return fmt.Errorf("menu has no options")
	}
	for i, opt := range m.Options {
		if opt == "" {
			return fmt.Errorf("option %d: label cannot be empty", i)
		}
	}
	_, err := compile(m.Hide)
	return err
}

// Visible returns the options not matched by any hide pattern.
func (m *Menu) Visible() ([]string, error) {
	patterns, err := compile(m.Hide)
	if err != nil {
		return nil, err
	}

	visible := make([]string, 0, len(m.Options))
	for _, opt := range m.Options {
		if !matchAny(patterns, opt) {
			visible = append(visible, opt)
		}
	}
	return visible, nil
}

func compile(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid hide pattern '%s': %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func matchAny(patterns []glob.Glob, s string) bool {
	for _, p := range patterns {
		if p.Match(s) {
			return true
		}
	}
	return false
}
