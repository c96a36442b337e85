package logging

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// setupTestDir points the package at a temporary log directory and resets
// the process-wide session state.
func setupTestDir(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	t.Setenv(EnvLogDir, tempDir)

	reset := func() {
		logDir = ""
		initErr = nil
		initOnce = sync.Once{}
		sessionID = ""
		sessionIDOnce = sync.Once{}
		SetLevel(LevelDebug)
	}
	reset()
	t.Cleanup(reset)
	return tempDir
}

func readLog(t *testing.T, l *Logger) string {
	t.Helper()
	content, err := os.ReadFile(l.LogPath())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestNewLogger(t *testing.T) {
	dir := setupTestDir(t)

	logger, err := NewLogger("sheet")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	if logger.component != "sheet" {
		t.Errorf("Expected component 'sheet', got %q", logger.component)
	}
	if logger.SessionID() == "" {
		t.Error("Expected non-empty session ID")
	}
	if filepath.Dir(logger.LogPath()) != dir {
		t.Errorf("Expected log in %s, got %s", dir, logger.LogPath())
	}
	if _, err := os.Stat(logger.LogPath()); os.IsNotExist(err) {
		t.Errorf("Log file does not exist at %s", logger.LogPath())
	}
}

func TestLoggerFormatting(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("test")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	logger.Printf("Test message %d", 123)
	logger.Debugf("Debug message")
	logger.Infof("Info message")
	logger.Warnf("Warning message")
	logger.Errorf("Error message")

	logContent := readLog(t, logger)
	expectedPatterns := []string{
		"[test] [INFO] Test message 123",
		"[test] [DEBUG] Debug message",
		"[test] [INFO] Info message",
		"[test] [WARN] Warning message",
		"[test] [ERROR] Error message",
	}
	for _, pattern := range expectedPatterns {
		if !strings.Contains(logContent, pattern) {
			t.Errorf("Log content missing expected pattern: %q\nContent:\n%s", pattern, logContent)
		}
	}
}

func TestSetLevelFiltersOutput(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("test")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	SetLevel(LevelWarn)
	logger.Debugf("hidden debug")
	logger.Infof("hidden info")
	logger.Warnf("visible warn")

	logContent := readLog(t, logger)
	if strings.Contains(logContent, "hidden") {
		t.Errorf("Expected debug and info to be filtered, got:\n%s", logContent)
	}
	if !strings.Contains(logContent, "visible warn") {
		t.Errorf("Expected warning in log, got:\n%s", logContent)
	}
}

func TestWithSharesOutput(t *testing.T) {
	setupTestDir(t)

	parent, err := NewLogger("app")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer parent.Close()

	child := parent.With("bottomsheet")
	child.Infof("from child")
	parent.Infof("from parent")

	if child.LogPath() != parent.LogPath() {
		t.Errorf("Expected same log path, got %q and %q", child.LogPath(), parent.LogPath())
	}
	logContent := readLog(t, parent)
	if !strings.Contains(logContent, "[bottomsheet] [INFO] from child") {
		t.Errorf("Log missing child entry:\n%s", logContent)
	}
	if !strings.Contains(logContent, "[app] [INFO] from parent") {
		t.Errorf("Log missing parent entry:\n%s", logContent)
	}
}

func TestMultipleComponentsShareSession(t *testing.T) {
	setupTestDir(t)

	logger1, err := NewLogger("component1")
	if err != nil {
		t.Fatalf("Failed to create logger1: %v", err)
	}
	defer logger1.Close()

	logger2, err := NewLogger("component2")
	if err != nil {
		t.Fatalf("Failed to create logger2: %v", err)
	}
	defer logger2.Close()

	if logger1.SessionID() != logger2.SessionID() {
		t.Errorf("Expected same session ID, got %q and %q", logger1.SessionID(), logger2.SessionID())
	}
	if logger1.LogPath() != logger2.LogPath() {
		t.Errorf("Expected same log path, got %q and %q", logger1.LogPath(), logger2.LogPath())
	}
}

func TestDiscard(t *testing.T) {
	setupTestDir(t)

	logger := Discard("quiet")
	logger.Errorf("nothing to see")
	if logger.LogPath() != "" {
		t.Errorf("Expected empty log path, got %q", logger.LogPath())
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestLoggerClose(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("test")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("First close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Second close failed: %v", err)
	}
}

func TestLogPathFormat(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("test")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	fileName := filepath.Base(logger.LogPath())
	if !strings.HasSuffix(fileName, "-sheetmenu.log") {
		t.Errorf("Expected log file to end with '-sheetmenu.log', got %q", fileName)
	}
	sessionPart := strings.TrimSuffix(fileName, "-sheetmenu.log")
	if sessionPart != logger.SessionID() {
		t.Errorf("Expected file name to start with session ID %q, got %q", logger.SessionID(), sessionPart)
	}
}

func TestLevelString(t *testing.T) {
	if LevelWarn.String() != "WARN" {
		t.Errorf("Expected WARN, got %q", LevelWarn.String())
	}
	if Level(9).String() != "LEVEL(9)" {
		t.Errorf("Expected LEVEL(9), got %q", Level(9).String())
	}
}
