// Package storage provides the local key-value stores backing the persisted lifetime counter.
package storage

import (
	"errors"
	"strings"
	"sync"
)

// Sentinel errors
var (
	ErrEmptyKey = errors.New("storage key is required")
	ErrClosed   = errors.New("storage is closed")
)

// KV is a string key-value store, last write wins
type KV interface {
	// Get returns the value for key, ok=false when absent
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

// Memory is an in-process KV used by tests and as the fallback backend
type Memory struct {
	mu     sync.RWMutex
	data   map[string]string
	closed bool
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, ErrEmptyKey
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", false, ErrClosed
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.data[key] = value
	return nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}
