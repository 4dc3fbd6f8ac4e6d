package sql

import (
	"path/filepath"
	"testing"

	"github.com/drakos74/hopfield/internal/model"
	"github.com/drakos74/hopfield/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStorage(t *testing.T) {
	db, err := Open(":memory:", storage.WeightsTable)
	require.NoError(t, err)
	defer db.Close()

	shard, err := Shard(db, storage.WeightsTable)("test")
	require.NoError(t, err)

	w, err := model.NewWeightMatrix(2, []int{0, 4, 4, 0})
	require.NoError(t, err)

	k := storage.Key{Label: "digits"}
	var loaded model.WeightMatrix
	err = shard.Load(k, &loaded)
	assert.ErrorIs(t, err, storage.NotFoundErr)

	require.NoError(t, shard.Store(k, w))
	require.NoError(t, shard.Load(k, &loaded))
	assert.Equal(t, w.Cells(), loaded.Cells())

	// replace
	w2, err := model.NewWeightMatrix(1, []int{0})
	require.NoError(t, err)
	require.NoError(t, shard.Store(k, w2))
	require.NoError(t, shard.Load(k, &loaded))
	assert.Equal(t, 1, loaded.Size())

	// shards are isolated
	other, err := Shard(db, storage.WeightsTable)("other")
	require.NoError(t, err)
	err = other.Load(k, &loaded)
	assert.ErrorIs(t, err, storage.NotFoundErr)
}

func TestSQLiteStorage_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hopfield.db")

	db, err := Open(path, storage.WeightsTable)
	require.NoError(t, err)
	shard, err := Shard(db, storage.WeightsTable)("test")
	require.NoError(t, err)
	require.NoError(t, shard.Store(storage.Key{Label: "kept"}, []int{1, 2, 3}))
	require.NoError(t, db.Close())

	db, err = Open(path, storage.WeightsTable)
	require.NoError(t, err)
	defer db.Close()
	shard, err = Shard(db, storage.WeightsTable)("test")
	require.NoError(t, err)
	var v []int
	require.NoError(t, shard.Load(storage.Key{Label: "kept"}, &v))
	assert.Equal(t, []int{1, 2, 3}, v)
}

func TestSQLiteStorage_Errors(t *testing.T) {
	_, err := Open(":memory:", "weights; DROP TABLE x")
	assert.ErrorIs(t, err, model.InvalidInputErr)

	_, err = Shard(nil, "bad name")("test")
	assert.ErrorIs(t, err, model.InvalidInputErr)

	db, err := Open(":memory:", storage.WeightsTable)
	require.NoError(t, err)
	defer db.Close()
	shard, err := Shard(db, storage.WeightsTable)("test")
	require.NoError(t, err)
	err = shard.Store(storage.Key{Label: "a b"}, 1)
	assert.ErrorIs(t, err, model.InvalidInputErr)
}
