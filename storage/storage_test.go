package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCounter_RoundTripOverBackends(t *testing.T) {
	file, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}

	backends := map[string]KV{
		"memory": NewMemory(),
		"file":   file,
	}

	for name, kv := range backends {
		t.Run(name, func(t *testing.T) {
			c := NewCounter(kv, "slapCount")

			if _, ok, err := c.Read(); err != nil || ok {
				t.Fatalf("Expected absent counter, got ok=%v err=%v", ok, err)
			}
			for _, v := range []int64{1, 2, 99} {
				if err := c.Write(v); err != nil {
					t.Fatalf("write %d: %v", v, err)
				}
				got, ok, err := c.Read()
				if err != nil || !ok || got != v {
					t.Errorf("Expected %d, got %d ok=%v err=%v", v, got, ok, err)
				}
			}

			raw, _, _ := kv.Get("slapCount")
			if raw != "99" {
				t.Errorf("Expected decimal encoding %q, got %q", "99", raw)
			}
		})
	}
}

func TestCounter_CorruptValuesReadAsAbsent(t *testing.T) {
	for _, raw := range []string{"", "abc", "-3", "1.5", "9999999999999999999999"} {
		kv := NewMemory()
		kv.Set("slapCount", raw)

		if v, ok, err := NewCounter(kv, "slapCount").Read(); err != nil || ok {
			t.Errorf("raw %q: expected absent, got %d ok=%v err=%v", raw, v, ok, err)
		}
	}

	kv := NewMemory()
	kv.Set("slapCount", " 42\n")
	if v, ok, _ := NewCounter(kv, "slapCount").Read(); !ok || v != 42 {
		t.Errorf("Expected surrounding whitespace to be tolerated, got %d ok=%v", v, ok)
	}
}

func TestCounter_WrapsBackendErrors(t *testing.T) {
	kv := NewMemory()
	kv.Close()
	c := NewCounter(kv, "slapCount")

	if _, _, err := c.Read(); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed from Read, got %v", err)
	}
	if err := c.Write(1); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed from Write, got %v", err)
	}
}

func TestFileKV_CreatesDirAndLeavesNoTempFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	kv, err := NewFileKV(dir)
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}

	if err := kv.Set("slapCount", "5"); err != nil {
		t.Fatalf("set: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "slapCount" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("Expected only the key file, got %v", names)
	}
}

func TestFileKV_RejectsEscapingKeys(t *testing.T) {
	kv, _ := NewFileKV(t.TempDir())

	for _, key := range []string{"../x", "a/b", `a\b`, "..", ""} {
		if err := kv.Set(key, "1"); err == nil {
			t.Errorf("Expected key %q to be rejected", key)
		}
	}
	if _, err := NewFileKV(""); err == nil {
		t.Error("Expected empty base path to be rejected")
	}
}

func TestMemory_Closed(t *testing.T) {
	m := NewMemory()
	m.Close()
	if err := m.Set("k", "v"); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed, got %v", err)
	}
	if _, _, err := m.Get(" "); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("Expected ErrEmptyKey, got %v", err)
	}
}
