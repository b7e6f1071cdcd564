package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestLogger_BasicLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelDebug)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Debug("debug message")
	logger.Info("info %s", "message")
	logger.Warn("warning message")
	logger.Error("error message")
	_ = logger.Close()

	logContent := readLog(t, logPath)

	for _, want := range []string{
		`level=debug msg="debug message"`,
		`level=info msg="info message"`,
		`level=warning msg="warning message"`,
		`level=error msg="error message"`,
	} {
		if !strings.Contains(logContent, want) {
			t.Errorf("log does not contain %q:\n%s", want, logContent)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelWarn)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")
	_ = logger.Close()

	logContent := readLog(t, logPath)

	if strings.Contains(logContent, "debug message") {
		t.Error("Debug message should have been filtered")
	}
	if strings.Contains(logContent, "info message") {
		t.Error("Info message should have been filtered")
	}
	if !strings.Contains(logContent, "warning message") {
		t.Error("Warning message should be present")
	}
	if !strings.Contains(logContent, "error message") {
		t.Error("Error message should be present")
	}
}

func TestLogger_FilePermissions(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	logger.Info("test message")
	_ = logger.Close()

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Log file permissions = %o, want %o", info.Mode().Perm(), 0600)
	}
}

func TestLogger_AppendMode(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger1, err := New(logPath, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	logger1.Info("first message")
	_ = logger1.Close()

	logger2, err := New(logPath, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	logger2.Info("second message")
	_ = logger2.Close()

	logContent := readLog(t, logPath)
	if !strings.Contains(logContent, "first message") || !strings.Contains(logContent, "second message") {
		t.Errorf("expected both messages, got:\n%s", logContent)
	}
}

func TestLogger_Disabled(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Info("enabled message")
	logger.SetEnabled(false)
	logger.Info("disabled message")
	logger.SetEnabled(true)
	logger.Info("enabled again")
	_ = logger.Close()

	logContent := readLog(t, logPath)

	if !strings.Contains(logContent, "enabled message") {
		t.Error("First message not found")
	}
	if strings.Contains(logContent, "disabled message") {
		t.Error("Disabled message should not be present")
	}
	if !strings.Contains(logContent, "enabled again") {
		t.Error("Third message not found")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{" error ", LevelError},
		{"unknown", LevelWarn},
		{"", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := ParseLevel(tt.input); result != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if result := tt.level.String(); result != tt.expected {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, result, tt.expected)
		}
	}
}

func TestLogger_Writer(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelDebug)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	_, _ = logger.Writer(LevelInfo).Write([]byte("message from writer\n"))
	_ = logger.Close()

	if !strings.Contains(readLog(t, logPath), `msg="message from writer"`) {
		t.Error("Writer message not found in log")
	}
}

func TestLogger_NilIsSafe(t *testing.T) {
	var logger *Logger

	if err := logger.Close(); err != nil {
		t.Errorf("Close() on nil logger should return nil, got %v", err)
	}
	logger.SetEnabled(true)
	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")
}

func TestGlobalLogger_NilDefault(t *testing.T) {
	saved := GetLogger()
	SetDefault(nil)
	defer SetDefault(saved)

	Debug("test debug")
	Info("test info")
	Warn("test warn")
	Error("test error")

	if err := Close(); err != nil {
		t.Errorf("Close() with nil default logger should return nil, got %v", err)
	}
	if GetLogger() != nil {
		t.Error("GetLogger() should return nil")
	}
}

func TestGlobalLogger_WithLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelDebug)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	saved := GetLogger()
	SetDefault(logger)
	defer SetDefault(saved)

	Debug("debug message")
	Info("info message")

	if GetLogger() != logger {
		t.Errorf("GetLogger() should return the default logger")
	}
	if err := Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	logContent := readLog(t, logPath)
	if !strings.Contains(logContent, "debug message") || !strings.Contains(logContent, "info message") {
		t.Errorf("expected global messages in log, got:\n%s", logContent)
	}
}

func TestNew_MkdirAllError(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "afile")
	if err := os.WriteFile(filePath, nil, 0600); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	_, err := New(filepath.Join(filePath, "subdir", "test.log"), LevelInfo)
	if err == nil {
		t.Fatal("New() should fail when path contains a file as directory")
	}
	if !strings.Contains(err.Error(), "create log directory") {
		t.Errorf("Error should mention directory creation, got: %v", err)
	}
}

func TestNopLogger(t *testing.T) {
	nop := NopLogger{}

	nop.Debug("test %s", "debug")
	nop.Info("test %s", "info")
	nop.Warn("test %s", "warn")
	nop.Error("test %s", "error")

	if err := nop.Close(); err != nil {
		t.Errorf("NopLogger.Close() = %v", err)
	}
}
