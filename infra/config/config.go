// Package config loads the settings of the hopfield tool from json or yaml files
// and applies environment overrides on top.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/drakos74/hopfield/internal/model"
	"github.com/drakos74/hopfield/internal/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	EnvDataset  = "HOPFIELD_DATASET"
	EnvStore    = "HOPFIELD_STORE"
	EnvStoreDir = "HOPFIELD_STORE_PATH"
	EnvSeed     = "HOPFIELD_SEED"
	EnvLogLevel = "HOPFIELD_LOG_LEVEL"
	EnvConfig   = "HOPFIELD_CONFIG"
)

// StoreType selects the weight matrix persistence.
type StoreType string

const (
	JsonStore   StoreType = "json"
	SQLiteStore StoreType = "sqlite"
	MemoryStore StoreType = "memory"
	VoidStore   StoreType = "void"
)

// Config contains all the settings.
type Config struct {
	Dataset string        `json:"dataset" yaml:"dataset"`
	Seed    int64         `json:"seed" yaml:"seed"`
	Store   StoreConfig   `json:"store" yaml:"store"`
	Corrupt model.Policy  `json:"corrupt" yaml:"corrupt"`
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// StoreConfig configures where trained matrices are kept.
type StoreConfig struct {
	Type StoreType `json:"type" yaml:"type"`
	// Path is the root directory for json, or the database file for sqlite.
	Path string `json:"path" yaml:"path"`
}

// MetricsConfig configures the prometheus endpoint, an empty address disables it.
type MetricsConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// LogConfig configures the global logger.
type LogConfig struct {
	Level   string `json:"level" yaml:"level"`
	Console bool   `json:"console" yaml:"console"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Dataset: "dataset",
		Store: StoreConfig{
			Type: JsonStore,
			Path: storage.DefaultDir,
		},
		Corrupt: model.DefaultPolicy(),
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// Load reads the config file on top of the defaults.
// The format is picked from the extension.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("config '%s' does not exist: %w", path, model.NotFoundErr)
		}
		return cfg, fmt.Errorf("could not load config '%s': %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(b, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format '%s': %w", ext, model.InvalidInputErr)
	}
	if err != nil {
		return cfg, fmt.Errorf("could not unmarshal config '%s': %v: %w", path, err, model.FormatErr)
	}
	cfg.Corrupt.Method = model.ParseMethod(string(cfg.Corrupt.Method))

	log.Debug().Str("path", path).Msg("loaded config")
	return cfg, nil
}

// FromEnv applies the environment overrides.
func FromEnv(cfg Config) (Config, error) {
	if v, ok := os.LookupEnv(EnvDataset); ok {
		cfg.Dataset = v
	}
	if v, ok := os.LookupEnv(EnvStore); ok {
		cfg.Store.Type = StoreType(v)
	}
	if v, ok := os.LookupEnv(EnvStoreDir); ok {
		cfg.Store.Path = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("could not parse %s '%s': %w", EnvSeed, v, model.InvalidInputErr)
		}
		cfg.Seed = seed
	}
	return cfg, nil
}

// Validate checks the config before any work is done.
func (c Config) Validate() error {
	switch c.Store.Type {
	case JsonStore, SQLiteStore:
		if c.Store.Path == "" {
			return fmt.Errorf("store '%s' needs a path: %w", c.Store.Type, model.InvalidInputErr)
		}
	case MemoryStore, VoidStore:
	default:
		return fmt.Errorf("unknown store type '%s': %w", c.Store.Type, model.InvalidInputErr)
	}
	if err := c.Corrupt.Validate(); err != nil {
		return fmt.Errorf("invalid corruption config: %w", err)
	}
	if _, err := c.Log.ZerologLevel(); err != nil {
		return err
	}
	return nil
}

// ZerologLevel parses the configured level.
func (l LogConfig) ZerologLevel() (zerolog.Level, error) {
	if l.Level == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(l.Level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level '%s': %w", l.Level, model.InvalidInputErr)
	}
	return level, nil
}
