package storage

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/drakos74/hopfield/internal/model"
)

const (
	// WeightsTable holds trained weight matrices.
	WeightsTable = "weights"
	// DefaultLabel is the key label used when none is given.
	DefaultLabel = "default"
)

var (
	// DefaultDir is the root directory of file based storage.
	DefaultDir = "file-storage"
)

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

var (
	NotFoundErr     = fmt.Errorf("stored value %w", model.NotFoundErr)
	CouldNotLoadErr = errors.New("could not load")
)

var label = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// Key is the storage key of a record.
type Key struct {
	Label string `json:"label"`
}

// Path is the file friendly representation of the key.
func (k Key) Path() string {
	return k.Label
}

// Validate checks that the label can be used as a file name or table key.
func (k Key) Validate() error {
	if !label.MatchString(k.Label) {
		return fmt.Errorf("invalid storage label '%s': %w", k.Label, model.InvalidInputErr)
	}
	return nil
}

// Persistence stores and loads values by key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}
