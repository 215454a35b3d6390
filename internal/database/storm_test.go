package database_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mdouchement/treesnap/internal/database"
	"github.com/mdouchement/treesnap/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) database.Client {
	t.Helper()

	db, err := database.StormOpen(filepath.Join(t.TempDir(), "treesnap.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestStormSave(t *testing.T) {
	db := setup(t)

	snapshot := &model.Snapshot{Root: "/data", Key: "k1.txt", Size: 42}
	require.NoError(t, db.Save(snapshot))

	assert.NotEmpty(t, snapshot.ID)
	assert.False(t, snapshot.CreatedAt.IsZero())
	assert.False(t, snapshot.UpdatedAt.IsZero())
}

func TestStormSnapshotInteractions(t *testing.T) {
	db := setup(t)

	s1 := &model.Snapshot{Root: "/data", Key: "k1.txt"}
	require.NoError(t, db.Save(s1))

	time.Sleep(10 * time.Millisecond) // CreatedAt drives the ordering

	s2 := &model.Snapshot{Root: "/data", Key: "k2.txt"}
	require.NoError(t, db.Save(s2))

	//

	snapshots, err := db.AllSnapshots()
	assert.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, s1.ID, snapshots[0].ID)
	assert.Equal(t, s2.ID, snapshots[1].ID)

	//

	snapshot, err := db.FindSnapshot(s1.ID)
	assert.NoError(t, err)
	assert.Equal(t, "k1.txt", snapshot.Key)

	//

	snapshot, err = db.LastSnapshot()
	assert.NoError(t, err)
	assert.Equal(t, s2.ID, snapshot.ID)

	//

	snapshots, err = db.FindSnapshotsByRoot("/data")
	assert.NoError(t, err)
	assert.Len(t, snapshots, 2)

	snapshots, err = db.FindSnapshotsByRoot("/other")
	assert.NoError(t, err)
	assert.Len(t, snapshots, 0)

	//

	assert.NoError(t, db.DeleteSnapshot(s1.ID))

	_, err = db.FindSnapshot(s1.ID)
	assert.True(t, db.IsNotFound(err))
}

func TestStormAllSnapshotsEmpty(t *testing.T) {
	db := setup(t)

	snapshots, err := db.AllSnapshots()
	assert.NoError(t, err)
	assert.Len(t, snapshots, 0)
}
