package storage

import (
	"fmt"
	"strconv"
	"strings"
)

// Counter is a single non-negative integer kept under a fixed key, encoded as a decimal string
type Counter struct {
	kv  KV
	key string
}

// NewCounter binds a counter to key in kv
func NewCounter(kv KV, key string) *Counter {
	return &Counter{kv: kv, key: key}
}

// Read returns the stored value; unparsable or negative values report ok=false
func (c *Counter) Read() (int64, bool, error) {
	raw, ok, err := c.kv.Get(c.key)
	if err != nil {
		return 0, false, fmt.Errorf("read counter %s: %w", c.key, err)
	}
	if !ok {
		return 0, false, nil
	}

	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v < 0 {
		return 0, false, nil
	}
	return v, true, nil
}

// Write stores value
func (c *Counter) Write(value int64) error {
	if err := c.kv.Set(c.key, strconv.FormatInt(value, 10)); err != nil {
		return fmt.Errorf("write counter %s: %w", c.key, err)
	}
	return nil
}
