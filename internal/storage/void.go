package storage

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// VoidStorage discards everything, nothing can be loaded back.
type VoidStorage struct {
	shard string
}

// NewVoidStorage creates a void storage for the shard.
func NewVoidStorage(shard string) *VoidStorage {
	return &VoidStorage{shard: shard}
}

func (d VoidStorage) Store(k Key, value interface{}) error {
	log.Debug().Str("shard", d.shard).Str("label", k.Label).Msg("discarding value")
	return nil
}

func (d VoidStorage) Load(k Key, value interface{}) error {
	return fmt.Errorf("'%s' in void shard '%s': %w", k.Label, d.shard, NotFoundErr)
}

// VoidShard creates void shards, used when the results should not be kept.
func VoidShard(table string) Shard {
	return func(shard string) (Persistence, error) {
		return NewVoidStorage(table + "/" + shard), nil
	}
}
