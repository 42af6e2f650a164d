package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "slapper.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the default slog logger to logs/slapper.log when debug is set.
// Without debug every record is dropped so nothing reaches the terminal under tcell.
// An existing log over maxLogSize is renamed with a timestamp before a fresh one is opened.
func setupLogging(debug bool) *os.File {
	if !debug {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("slapper-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return f
}
