package config

import (
	"sync"
)

var (
	// globalManager is the singleton configuration manager instance
	globalManager *Manager
	globalMu      sync.Mutex
)

// Initialize creates the global configuration manager, registers the default
// sections and loads them from configPath. An empty path uses
// ~/.sheetmenu/config.json.
func Initialize(configPath string) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	store, err := NewFileStore(configPath)
	if err != nil {
		return err
	}

	manager := NewManager(store)
	if err := manager.RegisterSection(NewSheetSection()); err != nil {
		return err
	}
	if err := manager.LoadAll(); err != nil {
		return err
	}

	globalManager = manager
	return nil
}

// Global returns the global configuration manager.
// Panics if Initialize has not been called.
func Global() *Manager {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalManager == nil {
		panic("config not initialized: call config.Initialize first")
	}
	return globalManager
}

// IsInitialized returns true if the global configuration has been initialized.
func IsInitialized() bool {
	globalMu.Lock()
	defer globalMu.Unlock()
	return globalManager != nil
}

// ResetGlobalManager drops the global manager. Tests use it to isolate runs.
func ResetGlobalManager() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalManager = nil
}

// GetSheet returns the sheet section from global config, or defaults when
// config is not initialized.
func GetSheet() *SheetSection {
	if !IsInitialized() {
		return NewSheetSection()
	}

	section, ok := Global().GetSection(SectionIDSheet)
	if !ok {
		return NewSheetSection()
	}

	sheet, ok := section.(*SheetSection)
	if !ok {
		return NewSheetSection()
	}
	return sheet
}
