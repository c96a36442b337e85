package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/entrhq/sheetmenu/pkg/config"
)

// dumpConfig writes the effective sheet settings as highlighted JSON.
func dumpConfig(w io.Writer, section *config.SheetSection) error {
	data, err := json.MarshalIndent(map[string]interface{}{
		section.ID(): section.Data(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := quick.Highlight(w, string(data)+"\n", "json", "terminal256", "monokai"); err != nil {
		return fmt.Errorf("failed to highlight settings: %w", err)
	}
	return nil
}
