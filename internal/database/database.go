package database

import (
	"github.com/mdouchement/treesnap/internal/model"
)

type (
	// A Client can interacts with the database.
	Client interface {
		// Save inserts or updates the entry in database with the given model.
		Save(m model.Model) error
		// Delete deletes the entry in database with the given model.
		Delete(m model.Model) error
		// Close the database.
		Close() error
		// IsNotFound returns true if err is nil or a not found error.
		IsNotFound(err error) bool

		SnapshotInteraction
	}

	// A SnapshotInteraction defines all the methods used to interact with a snapshot record.
	SnapshotInteraction interface {
		AllSnapshots() ([]*model.Snapshot, error)
		FindSnapshot(id string) (*model.Snapshot, error)
		FindSnapshotsByRoot(root string) ([]*model.Snapshot, error)
		LastSnapshot() (*model.Snapshot, error)
		DeleteSnapshot(id string) error
	}
)
