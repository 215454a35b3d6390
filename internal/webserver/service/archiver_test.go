package service_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mdouchement/treesnap/internal/database"
	"github.com/mdouchement/treesnap/internal/storage"
	"github.com/mdouchement/treesnap/internal/tree"
	"github.com/mdouchement/treesnap/internal/webserver/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (database.Client, storage.Backend, string) {
	t.Helper()

	db, err := database.StormOpen(filepath.Join(t.TempDir(), "treesnap.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	backend := storage.NewFileSystem(t.TempDir())

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("hello"), 0644))

	return db, backend, root
}

func TestArchiver(t *testing.T) {
	db, backend, root := setup(t)

	archiver := service.NewArchiver(db, backend, root, tree.NewRuleset(nil, nil, nil), 0)

	snapshot, err := archiver.Archive()
	require.NoError(t, err)

	assert.NotEmpty(t, snapshot.ID)
	assert.Equal(t, root, snapshot.Root)
	assert.Equal(t, 1, snapshot.Files)
	assert.Equal(t, 0, snapshot.Dirs)
	assert.NotEmpty(t, snapshot.Checksum)
	assert.True(t, snapshot.TTL.IsZero())
	assert.True(t, backend.Exist(snapshot.Key))

	//

	r, err := backend.Reader(snapshot.Key)
	require.NoError(t, err)
	payload, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	assert.Equal(t, snapshot.Size, int64(len(payload)))
	assert.Contains(t, string(payload), "FILE TREE:\n")

	//

	recorded, err := db.FindSnapshot(snapshot.ID)
	assert.NoError(t, err)
	assert.Equal(t, snapshot.Checksum, recorded.Checksum)
}

func TestArchiverTTL(t *testing.T) {
	db, backend, root := setup(t)

	archiver := service.NewArchiver(db, backend, root, tree.NewRuleset(nil, nil, nil), time.Hour)

	snapshot, err := archiver.Archive()
	require.NoError(t, err)
	assert.True(t, snapshot.TTL.After(time.Now()))
}

func TestDestroyer(t *testing.T) {
	db, backend, root := setup(t)

	archiver := service.NewArchiver(db, backend, root, tree.NewRuleset(nil, nil, nil), 0)
	snapshot, err := archiver.Archive()
	require.NoError(t, err)

	require.NoError(t, service.NewSnapshotDestroyer(db, backend, snapshot).Destroy())

	assert.False(t, backend.Exist(snapshot.Key))
	_, err = db.FindSnapshot(snapshot.ID)
	assert.True(t, db.IsNotFound(err))
}
