package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileKV stores each key in its own file under a base directory.
// Writes go to a temp file that is synced and renamed over the target.
type FileKV struct {
	basePath string

	mu     sync.Mutex
	closed bool
}

// NewFileKV creates a file store rooted at basePath, the directory is created on first write
func NewFileKV(basePath string) (*FileKV, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	return &FileKV{basePath: filepath.Clean(basePath)}, nil
}

// FilePath returns the path holding key
func (f *FileKV) FilePath(key string) string {
	return filepath.Join(f.basePath, key)
}

func (f *FileKV) Get(key string) (string, bool, error) {
	key, err := cleanKey(key)
	if err != nil {
		return "", false, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return "", false, ErrClosed
	}

	data, err := os.ReadFile(f.FilePath(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), true, nil
}

func (f *FileKV) Set(key, value string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}

	if err := os.MkdirAll(f.basePath, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(f.basePath, "."+key+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err := os.Rename(tmpName, f.FilePath(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

func (f *FileKV) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return nil
}

// cleanKey rejects keys that would escape the base directory
func cleanKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrEmptyKey
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return key, nil
}
