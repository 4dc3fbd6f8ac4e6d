package json

import (
	"path/filepath"

	"github.com/drakos74/hopfield/internal/storage"
	"github.com/rs/zerolog/log"
)

// BlobStorage stores every key as a json file under <path>/<table>/<shard>.
type BlobStorage struct {
	path  string
	table string
	shard string
	debug bool
}

// BlobShardAt creates json blob shards for the given table under root.
func BlobShardAt(root, table string) storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return NewJsonBlob(root, table, shard, false), nil
	}
}

// NewJsonBlob creates a blob storage.
// table has the same schema
// shard is a logical split
func NewJsonBlob(root, table, shard string, debug bool) *BlobStorage {
	return &BlobStorage{
		path:  root,
		table: table,
		shard: shard,
		debug: debug,
	}
}

func (s BlobStorage) dir() string {
	return filepath.Join(s.path, s.table, s.shard)
}

func (s BlobStorage) Store(k storage.Key, value interface{}) error {
	if err := k.Validate(); err != nil {
		return err
	}
	p := s.dir()
	err := Save(p, k.Path(), value)
	if err == nil && s.debug {
		log.Debug().Str("path", p).Str("file", k.Path()).Msg("stored json file")
	}
	return err
}

func (s BlobStorage) Load(k storage.Key, value interface{}) error {
	if err := k.Validate(); err != nil {
		return err
	}
	return Load(s.dir(), k.Path(), value)
}
