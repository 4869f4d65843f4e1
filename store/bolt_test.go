package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/tally/store"
)

func TestBoltSaveLoad(t *testing.T) {
	db := store.Bolt{Path: filepath.Join(t.TempDir(), "data", "tally.db")}
	ctx := context.Background()

	require.NoError(t, db.Save(ctx, "save.json", sampleDocument()))

	other := &store.Document{Completed: 3, Tasks: []string{"Autosaved"}}
	require.NoError(t, db.Save(ctx, "autosave.json", other))

	got, err := db.Load(ctx, "save.json")
	require.NoError(t, err)

	if diff := cmp.Diff(sampleDocument(), got); diff != "" {
		t.Errorf("load mismatch (-want +got):\n%s", diff)
	}

	got, err = db.Load(ctx, "autosave.json")
	require.NoError(t, err)

	assert.Equal(t, []string{"Autosaved"}, got.Tasks)
	assert.Equal(t, uint64(3), got.Completed)
}

func TestBoltLoadMissing(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tally.db")

	_, err := store.Bolt{Path: path}.Load(ctx, "save.json")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, store.Bolt{Path: path}.Save(ctx, "save.json", sampleDocument()))

	_, err = store.Bolt{Path: path}.Load(ctx, "autosave.json")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestBoltLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tally.db")

	held, err := bolt.Open(path, 0o600, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = held.Close()
	})

	db := store.Bolt{Path: path, Timeout: 50 * time.Millisecond}

	err = db.Save(context.Background(), "save.json", sampleDocument())
	assert.ErrorIs(t, err, store.ErrLocked)
	assert.Equal(t, "locked", store.Kind(err))
}

func TestBoltInvalidName(t *testing.T) {
	db := store.Bolt{Path: filepath.Join(t.TempDir(), "tally.db")}

	err := db.Save(context.Background(), "a/b", sampleDocument())
	assert.ErrorIs(t, err, store.ErrInvalidPath)
}
