// Package configtest isolates the global config manager in tests.
package configtest

import (
	"path/filepath"
	"testing"

	"github.com/entrhq/sheetmenu/pkg/config"
)

// WithGlobalManager initializes global config backed by a temp file and
// resets it when the test ends. seed, if non-nil, may adjust the sheet
// section before fn runs.
func WithGlobalManager(t *testing.T, seed func(*config.SheetSection)) {
	t.Helper()

	config.ResetGlobalManager()
	if err := config.Initialize(filepath.Join(t.TempDir(), "config.json")); err != nil {
		t.Fatalf("failed to initialize config: %v", err)
	}
	t.Cleanup(config.ResetGlobalManager)

	if seed != nil {
		seed(config.GetSheet())
	}
}
