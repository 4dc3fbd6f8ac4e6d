package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drakos74/hopfield/infra/config"
	"github.com/drakos74/hopfield/internal/memory"
	"github.com/drakos74/hopfield/internal/metrics"
	"github.com/drakos74/hopfield/internal/storage"
	jsonstore "github.com/drakos74/hopfield/internal/storage/file/json"
	sqlstore "github.com/drakos74/hopfield/internal/storage/sql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	shard   = "hopfield"
	runsDir = "runs"
)

// env holds everything a command needs, close must be called when done.
type env struct {
	cfg    config.Config
	memory *memory.Memory
	// served is closed once the metrics server has stopped.
	served chan struct{}
	close  func() error
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return config.Config{}, fmt.Errorf("could not load env file '%s': %w", envFile, err)
		}
	}

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}

	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return cfg, err
		}
	}
	cfg, err := config.FromEnv(cfg)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	level, _ := cfg.Log.ZerologLevel()
	zerolog.SetGlobalLevel(level)
	if cfg.Log.Console {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})
	}
	return cfg, nil
}

func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	var (
		store   storage.Persistence
		history *jsonstore.Logger
		closer  = func() error { return nil }
	)
	switch cfg.Store.Type {
	case config.JsonStore:
		store, err = jsonstore.BlobShardAt(cfg.Store.Path, storage.WeightsTable)(shard)
		history = jsonstore.NewLogger(filepath.Join(cfg.Store.Path, runsDir))
	case config.SQLiteStore:
		var db *sql.DB
		db, err = sqlstore.Open(cfg.Store.Path, storage.WeightsTable)
		if err == nil {
			closer = db.Close
			store, err = sqlstore.Shard(db, storage.WeightsTable)(shard)
		}
	case config.MemoryStore:
		store, err = jsonstore.LocalShard()(shard)
	case config.VoidStore:
		store, err = storage.VoidShard(storage.WeightsTable)(shard)
	}
	if err != nil {
		return nil, fmt.Errorf("could not create '%s' storage: %w", cfg.Store.Type, err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	served := make(chan struct{})
	if cfg.Metrics.Addr != "" {
		go func(addr string) {
			defer close(served)
			if err := metrics.Serve(ctx, addr); err != nil {
				log.Error().Err(err).Str("addr", addr).Msg("metrics server stopped")
			}
		}(cfg.Metrics.Addr)
	} else {
		close(served)
	}

	m := memory.New(store).WithSeed(cfg.Seed)
	if history != nil {
		m = m.WithHistory(history)
	}
	log.Debug().
		Str("store", string(cfg.Store.Type)).
		Str("path", cfg.Store.Path).
		Int64("seed", m.Seed()).
		Msg("memory ready")

	return &env{
		cfg:    cfg,
		memory: m,
		served: served,
		close: func() error {
			cancel()
			<-served
			return closer()
		},
	}, nil
}

func key(cmd *cobra.Command) storage.Key {
	label, _ := cmd.Flags().GetString("label")
	return storage.Key{Label: label}
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
