// Package sql persists values as json documents in a sqlite table.
package sql

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/drakos74/hopfield/internal/model"
	"github.com/drakos74/hopfield/internal/storage"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const driver = "sqlite"

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteStorage stores one json document per key and shard.
type SQLiteStorage struct {
	db    *sql.DB
	table string
	shard string
}

// Open opens (or creates) the database at path and makes sure the table exists.
// Use ":memory:" for a throwaway database.
func Open(path, table string) (*sql.DB, error) {
	if !identifier.MatchString(table) {
		return nil, fmt.Errorf("invalid table name '%s': %w", table, model.InvalidInputErr)
	}
	db, err := sql.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("could not open database '%s': %w", path, err)
	}
	// a single connection keeps ':memory:' databases alive and serialises writes
	db.SetMaxOpenConns(1)

	_, err = db.Exec(fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
	shard TEXT NOT NULL,
	label TEXT NOT NULL,
	value TEXT NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (shard, label)
)`, table))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create table '%s': %w", table, err)
	}
	log.Debug().Str("path", path).Str("table", table).Msg("opened sqlite storage")
	return db, nil
}

// Shard creates shards on top of the given database table.
func Shard(db *sql.DB, table string) storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		if !identifier.MatchString(table) {
			return nil, fmt.Errorf("invalid table name '%s': %w", table, model.InvalidInputErr)
		}
		return &SQLiteStorage{db: db, table: table, shard: shard}, nil
	}
}

func (s *SQLiteStorage) Store(k storage.Key, value interface{}) error {
	if err := k.Validate(); err != nil {
		return err
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not encode value for '%s': %w", k.Label, err)
	}
	_, err = s.db.Exec(fmt.Sprintf(
		`INSERT OR REPLACE INTO %s (shard, label, value, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)`, s.table),
		s.shard, k.Label, string(b))
	if err != nil {
		return fmt.Errorf("could not store '%s': %w", k.Label, err)
	}
	return nil
}

func (s *SQLiteStorage) Load(k storage.Key, value interface{}) error {
	if err := k.Validate(); err != nil {
		return err
	}
	var v string
	err := s.db.QueryRow(fmt.Sprintf(`SELECT value FROM %s WHERE shard = ? AND label = ?`, s.table),
		s.shard, k.Label).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("no row for '%s': %w", k.Label, storage.NotFoundErr)
		}
		return fmt.Errorf("could not load '%s': %v: %w", k.Label, err, storage.CouldNotLoadErr)
	}
	if err := json.Unmarshal([]byte(v), value); err != nil {
		return fmt.Errorf("could not decode '%s': %v: %w", k.Label, err, storage.CouldNotLoadErr)
	}
	return nil
}
