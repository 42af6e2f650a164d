package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/lixenwraith/slapper/config"
	"github.com/lixenwraith/slapper/constants"
	"github.com/lixenwraith/slapper/storage"
	"github.com/lixenwraith/slapper/storage/sqlite"
)

// openStore opens the configured backend; on failure the counter runs in memory for the session
func openStore(cfg *config.Config) storage.KV {
	kv, err := openBackend(cfg)
	if err != nil {
		slog.Warn("store unavailable, counter will not persist", "backend", cfg.StoreBackend, "error", err)
		return storage.NewMemory()
	}
	slog.Info("store opened", "backend", cfg.StoreBackend, "dir", cfg.DataDir)

	if db, ok := kv.(*sqlite.Store); ok {
		if at, found, err := db.UpdatedAt(constants.CounterKey); err != nil {
			slog.Warn("counter timestamp unavailable", "error", err)
		} else if found {
			slog.Info("last slap recorded", "at", at.Format(time.RFC3339), "ago", humanize.Time(at))
		}
	}
	return kv
}

func openBackend(cfg *config.Config) (storage.KV, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return storage.NewMemory(), nil
	case config.BackendFile:
		return storage.NewFileKV(cfg.DataDir)
	default:
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return sqlite.Open(filepath.Join(cfg.DataDir, constants.SQLiteFileName))
	}
}
