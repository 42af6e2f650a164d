package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// chdirTemp runs the test from a scratch directory so logs/ never lands in the source tree
func chdirTemp(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Cleanup(func() { slog.SetDefault(slog.New(slog.DiscardHandler)) })
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	chdirTemp(t)

	logFile := setupLogging(false)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}

	if slog.Default().Enabled(context.Background(), slog.LevelError) {
		t.Error("Expected default logger to drop records when debug=false")
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	chdirTemp(t)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	logPath := filepath.Join(logDir, logFileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatal("Expected log file to be created")
	}

	slog.Debug("test log message", "k", 1)

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	chdirTemp(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)

	// Write just over 10MB
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}
