// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/slapper/constants"
)

// Store backends
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Color modes
const (
	ColorAuto = "auto"
	ColorMono = "mono"
)

// Config is the runtime configuration, every field maps to a SLAPPER_ variable
type Config struct {
	StoreBackend    string  `env:"STORE_BACKEND" envDefault:"sqlite"`
	DataDir         string  `env:"DATA_DIR" envDefault:"data"`
	AudioEnabled    bool    `env:"AUDIO_ENABLED" envDefault:"true"`
	MasterVolume    float64 `env:"MASTER_VOLUME" envDefault:"0.7"`
	CountdownTarget string  `env:"COUNTDOWN_TARGET" envDefault:"2024-10-31T00:00:00Z"`
	Mode            string  `env:"MODE" envDefault:"Slap"`
	CharacterID     int     `env:"CHARACTER" envDefault:"1"`
	Debug           bool    `env:"DEBUG" envDefault:"false"`
	ColorMode       string  `env:"COLOR" envDefault:"auto"`
}

// Load reads envFile if present, then the process environment
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "SLAPPER_"}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration with no environment applied
func Default() *Config {
	return &Config{
		StoreBackend:    BackendSQLite,
		DataDir:         constants.DefaultDataDir,
		AudioEnabled:    true,
		MasterVolume:    constants.DefaultMasterVolume,
		CountdownTarget: constants.DefaultCountdownTarget,
		Mode:            "Slap",
		CharacterID:     1,
		ColorMode:       ColorAuto,
	}
}

// Validate clamps volume and rejects unknown backends, color modes or malformed dates
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}

	switch c.ColorMode {
	case ColorAuto, ColorMono:
	default:
		return fmt.Errorf("unknown color mode %q", c.ColorMode)
	}

	if c.MasterVolume < 0 {
		c.MasterVolume = 0
	}
	if c.MasterVolume > 1 {
		c.MasterVolume = 1
	}

	if _, err := time.Parse(time.RFC3339, c.CountdownTarget); err != nil {
		return fmt.Errorf("countdown target: %w", err)
	}
	return nil
}
